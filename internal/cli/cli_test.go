package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/hupe1980/agentic3d/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
llm:
  provider: mock
system_messages:
  generator: You write OpenSCAD code.
  feedback: Compare renders.
  prompt_improver: Improve prompts.
log:
  level: error
`

func writeConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "agentic3d.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testConfig), 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestAgentsCmd(t *testing.T) {
	out, err := run(t, "agents", "--config", writeConfig(t), "--env-file", filepath.Join(t.TempDir(), "none.env"))
	require.NoError(t, err)
	assert.Equal(t, "designer\nopenscad_generator\nfeedback\nprompt_improver\n", out)
}

func TestAskCmd(t *testing.T) {
	out, err := run(t, "ask", "openscad_generator_agent", "a", "cube", "--config", writeConfig(t))
	require.NoError(t, err)
	assert.Contains(t, out, "[openscad_generator]\nMock response to: a cube\n")
	assert.Contains(t, out, "terminate: false")
}

func TestAskCmd_UnknownRole(t *testing.T) {
	_, err := run(t, "ask", "critic_agent", "hi", "--config", writeConfig(t))
	assert.EqualError(t, err, `role "critic_agent" is not configured`)
}

func TestAskCmd_MissingConfig(t *testing.T) {
	_, err := run(t, "agents", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestUserMessage(t *testing.T) {
	img := filepath.Join(t.TempDir(), "render.png")
	require.NoError(t, os.WriteFile(img, []byte{1, 2, 3}, 0o600))

	msg, err := userMessage("does it match?", []string{img})
	require.NoError(t, err)

	assert.Equal(t, core.RoleUser, msg.Role)
	assert.Equal(t, "does it match?", msg.Text())
	require.Len(t, msg.Images(), 1)
	assert.Equal(t, "image/png", msg.Images()[0].MimeType)

	_, err = userMessage("x", []string{filepath.Join(t.TempDir(), "missing.png")})
	assert.Error(t, err)
}
