package model

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hupe1980/agentic3d/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockModel_Generate(t *testing.T) {
	m := NewMockModel("mock-1", ProviderMock)
	m.AddResponse("make a cube", "cube([10,10,10]);")

	respCh, errCh := m.Generate(context.Background(), Request{
		Messages: []core.Message{core.NewTextMessage(core.RoleUser, "make a cube")},
	})

	resp, err := Collect(context.Background(), respCh, errCh)
	require.NoError(t, err)
	assert.Equal(t, "cube([10,10,10]);", resp.Message.Text())
	assert.Equal(t, "stop", resp.FinishReason)
	assert.Len(t, m.Requests(), 1)
}

func TestMockModel_Streaming(t *testing.T) {
	m := NewMockModel("mock-1", ProviderMock)

	respCh, _ := m.Generate(context.Background(), Request{
		Messages: []core.Message{core.NewTextMessage(core.RoleUser, "hi")},
		Stream:   true,
	})

	var partials int
	var final Response
	for r := range respCh {
		if r.Partial {
			partials++
			continue
		}
		final = r
	}

	assert.Equal(t, len("Mock response to: hi"), partials)
	assert.Equal(t, "Mock response to: hi", final.Message.Text())
}

func TestMockModel_CancelWithUnreadStream(t *testing.T) {
	m := NewMockModel("mock-1", ProviderMock)
	m.AddResponse("hi", "0123456789abcdef")

	ctx, cancel := context.WithCancel(context.Background())
	respCh, errCh := m.Generate(ctx, Request{
		Messages: []core.Message{core.NewTextMessage(core.RoleUser, "hi")},
		Stream:   true,
	})
	cancel()

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("generator did not stop after cancel")
	}

	var n int
	for range respCh {
		n++
	}
	assert.LessOrEqual(t, n, 16)
}

func TestMockModel_NoMessages(t *testing.T) {
	m := NewMockModel("mock-1", ProviderMock)

	respCh, errCh := m.Generate(context.Background(), Request{})

	_, err := Collect(context.Background(), respCh, errCh)
	assert.EqualError(t, err, "no messages provided")
}

func TestCollect_PartialFallback(t *testing.T) {
	respCh := make(chan Response, 2)
	errCh := make(chan error)
	respCh <- Response{Partial: true, Message: core.NewTextMessage(core.RoleAssistant, "ab")}
	respCh <- Response{Partial: true, Message: core.NewTextMessage(core.RoleAssistant, "c")}
	close(respCh)
	close(errCh)

	resp, err := Collect(context.Background(), respCh, errCh)
	require.NoError(t, err)
	assert.Equal(t, "abc", resp.Message.Text())
}

func TestCollect_Error(t *testing.T) {
	respCh := make(chan Response)
	errCh := make(chan error, 1)
	errCh <- errors.New("boom")
	close(respCh)
	close(errCh)

	_, err := Collect(context.Background(), respCh, errCh)
	assert.EqualError(t, err, "boom")
}

func TestCollect_Empty(t *testing.T) {
	respCh := make(chan Response)
	errCh := make(chan error)
	close(respCh)
	close(errCh)

	_, err := Collect(context.Background(), respCh, errCh)
	assert.Error(t, err)
}

func TestCollect_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Collect(ctx, make(chan Response), make(chan error))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConfig_String(t *testing.T) {
	cfg := Config{Provider: ProviderOpenAI, Model: "gpt-4o", APIKey: "secret"}
	assert.Equal(t, "openai/gpt-4o", cfg.String())
	assert.NotContains(t, cfg.String(), "secret")
}
