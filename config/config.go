// Package config loads the agentic3d configuration: the shared LLM
// configuration, system messages, the critic's version count and logging
// settings. Files are YAML; ${VAR} references in the llm section are
// expanded from the environment after optional .env files have been loaded.
// System messages are taken verbatim.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/hupe1980/agentic3d/builder"
	"github.com/hupe1980/agentic3d/model"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrNoConfig is returned by Load when no path is given.
var ErrNoConfig = errors.New("no configuration file given")

// Default model per provider.
const (
	DefaultOpenAIModel    = "gpt-4o"
	DefaultAnthropicModel = "claude-3-5-sonnet-20241022"
)

// LogConfig selects log level and format (json or text).
type LogConfig struct {
	Level  string `yaml:"level,omitempty"`
	Format string `yaml:"format,omitempty"`
}

// Config is the root configuration document.
type Config struct {
	LLM            model.Config           `yaml:"llm"`
	NumVersions    int                    `yaml:"num_versions,omitempty"`
	SystemMessages builder.SystemMessages `yaml:"system_messages"`
	Roles          []string               `yaml:"roles,omitempty"`
	Log            LogConfig              `yaml:"log,omitempty"`

	// RenderTemplates renders system messages as Go templates
	// ({{.num_versions}} plus TemplateVars) before the agents are built.
	RenderTemplates bool           `yaml:"render_templates,omitempty"`
	TemplateVars    map[string]any `yaml:"template_vars,omitempty"`
}

// Load reads .env files (missing ones are skipped) and then parses the
// YAML file at path.
func Load(path string, envFiles ...string) (*Config, error) {
	if path == "" {
		return nil, ErrNoConfig
	}

	if err := LoadEnv(envFiles...); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	return Parse(data)
}

// LoadEnv loads variables from the given .env files (default ".env")
// without overriding variables already set. Missing files are ignored.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load env file %s: %w", f, err)
		}
	}
	return nil
}

// Parse decodes data, expands environment references in the llm section
// and fills defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Config{}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.expandEnv()
	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// expandEnv resolves ${VAR} references in the llm section only; prompts
// mention OpenSCAD special variables such as $fn.
func (c *Config) expandEnv() {
	c.LLM.Provider = os.ExpandEnv(c.LLM.Provider)
	c.LLM.Model = os.ExpandEnv(c.LLM.Model)
	c.LLM.APIKey = os.ExpandEnv(c.LLM.APIKey)
	c.LLM.BaseURL = os.ExpandEnv(c.LLM.BaseURL)
}

func (c *Config) applyDefaults() {
	if c.LLM.Provider == "" {
		c.LLM.Provider = model.ProviderOpenAI
	}
	if c.LLM.Model == "" {
		switch c.LLM.Provider {
		case model.ProviderAnthropic:
			c.LLM.Model = DefaultAnthropicModel
		default:
			c.LLM.Model = DefaultOpenAIModel
		}
	}
	if c.LLM.APIKey == "" {
		switch c.LLM.Provider {
		case model.ProviderOpenAI:
			c.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		case model.ProviderAnthropic:
			c.LLM.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		}
	}
	if c.NumVersions == 0 {
		c.NumVersions = builder.DefaultNumVersions
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

func (c *Config) validate() error {
	if c.NumVersions < 0 {
		return fmt.Errorf("num_versions must not be negative, got %d", c.NumVersions)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}
	return nil
}
