package termination

import (
	"testing"

	"github.com/hupe1980/agentic3d/core"
	"github.com/stretchr/testify/assert"
)

func text(s string) core.Message { return core.NewTextMessage(core.RoleAssistant, s) }

func TestNever(t *testing.T) {
	r := Never{}
	assert.False(t, r.IsTermination(text(Terminate)))
	assert.False(t, r.IsTermination(core.Message{}))
	assert.Equal(t, "never", r.String())
}

func TestSuffix(t *testing.T) {
	r := NewSuffix(Terminate)

	tests := []struct {
		name string
		msg  core.Message
		want bool
	}{
		{"sentinel at end", text("Looks great. TERMINATE"), true},
		{"trailing whitespace", text("Looks great. TERMINATE \n\t"), true},
		{"sentinel only", text("TERMINATE"), true},
		{"no sentinel", text("Looks great."), false},
		{"empty", text(""), false},
		{"whitespace only", text("   "), false},
		{"sentinel not at end", text("TERMINATE now please"), false},
		{"match sentinel", text("done TERMINATE_MATCH"), false},
		{"absent content", core.Message{Role: core.RoleUser}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.IsTermination(tt.msg))
		})
	}
}

func TestContains(t *testing.T) {
	r := NewContains(TerminateMatch)

	tests := []struct {
		name string
		msg  core.Message
		want bool
	}{
		{"at end", text("the render matches TERMINATE_MATCH"), true},
		{"at start", text("TERMINATE_MATCH the render matches"), true},
		{"embedded", text("xxTERMINATE_MATCHxx"), true},
		{"plain terminate", text("TERMINATE"), false},
		{"empty", text(""), false},
		{"absent content", core.Message{Role: core.RoleUser}, false},
		{"image only", core.Message{Content: []core.Part{core.ImagePart{URL: "u"}}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.IsTermination(tt.msg))
		})
	}

	assert.Equal(t, `contains("TERMINATE_MATCH")`, r.String())
}
