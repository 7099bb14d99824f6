package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hupe1980/agentic3d/builder"
	"github.com/hupe1980/agentic3d/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
llm:
  provider: openai
  model: gpt-4o-mini
  api_key: ${AGENTIC3D_TEST_KEY}
  temperature: 0.2
num_versions: 4
system_messages:
  generator: |
    You write OpenSCAD code.
  feedback: Compare the render with the description.
  prompt_improver: Improve the prompt.
roles:
  - user_designer_agent
  - openscad_generator_agent
log:
  level: debug
  format: json
`

func TestParse(t *testing.T) {
	t.Setenv("AGENTIC3D_TEST_KEY", "sk-test")

	cfg, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	temp := 0.2
	assert.Equal(t, model.Config{
		Provider:    model.ProviderOpenAI,
		Model:       "gpt-4o-mini",
		APIKey:      "sk-test",
		Temperature: &temp,
	}, cfg.LLM)
	assert.Equal(t, 4, cfg.NumVersions)
	assert.Equal(t, "You write OpenSCAD code.\n", cfg.SystemMessages.Generator)
	assert.Equal(t, "Improve the prompt.", cfg.SystemMessages.PromptImprover)
	assert.Empty(t, cfg.SystemMessages.Critic)
	assert.Equal(t, []string{builder.RoleDesigner, builder.RoleGenerator}, cfg.Roles)
	assert.Equal(t, LogConfig{Level: "debug", Format: "json"}, cfg.Log)
}

func TestParse_SystemMessagesVerbatim(t *testing.T) {
	t.Setenv("AGENTIC3D_TEST_KEY", "sk-test")
	t.Setenv("fn", "should-not-leak")

	cfg, err := Parse([]byte(`
llm:
  api_key: ${AGENTIC3D_TEST_KEY}
system_messages:
  generator: "Always set $fn=64 for smooth circles."
  feedback: "Reply as {{code}} blocks; $HOME stays; }} too."
`))
	require.NoError(t, err)

	assert.Equal(t, "sk-test", cfg.LLM.APIKey)
	assert.Equal(t, "Always set $fn=64 for smooth circles.", cfg.SystemMessages.Generator)
	assert.Equal(t, "Reply as {{code}} blocks; $HOME stays; }} too.", cfg.SystemMessages.Feedback)
}

func TestParse_Templating(t *testing.T) {
	cfg, err := Parse([]byte(`
render_templates: true
template_vars:
  printer: Prusa MK4
system_messages:
  generator: "Target {{.printer}}."
`))
	require.NoError(t, err)

	assert.True(t, cfg.RenderTemplates)
	assert.Equal(t, map[string]any{"printer": "Prusa MK4"}, cfg.TemplateVars)
	assert.Equal(t, "Target {{.printer}}.", cfg.SystemMessages.Generator)
}

func TestParse_Temperature(t *testing.T) {
	cfg, err := Parse([]byte("llm:\n  temperature: 0\n"))
	require.NoError(t, err)
	require.NotNil(t, cfg.LLM.Temperature)
	assert.Zero(t, *cfg.LLM.Temperature)

	cfg, err = Parse([]byte("llm:\n  model: gpt-4o\n"))
	require.NoError(t, err)
	assert.Nil(t, cfg.LLM.Temperature)
}

func TestParse_Defaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-env")

	cfg, err := Parse([]byte("system_messages:\n  generator: g\n"))
	require.NoError(t, err)

	assert.Equal(t, model.ProviderOpenAI, cfg.LLM.Provider)
	assert.Equal(t, DefaultOpenAIModel, cfg.LLM.Model)
	assert.Equal(t, "sk-env", cfg.LLM.APIKey)
	assert.Equal(t, builder.DefaultNumVersions, cfg.NumVersions)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestParse_AnthropicDefaults(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "ak-env")

	cfg, err := Parse([]byte("llm:\n  provider: anthropic\n"))
	require.NoError(t, err)

	assert.Equal(t, DefaultAnthropicModel, cfg.LLM.Model)
	assert.Equal(t, "ak-env", cfg.LLM.APIKey)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("llm: [unclosed"))
	assert.Error(t, err)

	_, err = Parse([]byte("num_versions: -1\n"))
	assert.ErrorContains(t, err, "num_versions")

	_, err = Parse([]byte("log:\n  format: xml\n"))
	assert.ErrorContains(t, err, "log.format")
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	cfgFile := filepath.Join(dir, "agentic3d.yaml")

	require.NoError(t, os.WriteFile(envFile, []byte("AGENTIC3D_DOTENV_KEY=sk-dotenv\n"), 0o600))
	require.NoError(t, os.WriteFile(cfgFile, []byte("llm:\n  api_key: ${AGENTIC3D_DOTENV_KEY}\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("AGENTIC3D_DOTENV_KEY") })

	cfg, err := Load(cfgFile, envFile)
	require.NoError(t, err)
	assert.Equal(t, "sk-dotenv", cfg.LLM.APIKey)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load("")
	assert.ErrorIs(t, err, ErrNoConfig)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"), filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
