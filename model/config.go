package model

import "fmt"

// Provider identifiers accepted in Config.Provider.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderMock      = "mock"
)

// Config is the LLM configuration shared by all agents: which backend,
// which model, and how to reach it. It is read-only once handed out.
type Config struct {
	Provider    string   `yaml:"provider"`
	Model       string   `yaml:"model"`
	APIKey      string   `yaml:"api_key,omitempty"`
	BaseURL     string   `yaml:"base_url,omitempty"`
	Temperature *float64 `yaml:"temperature,omitempty"` // nil keeps the provider default
	MaxTokens   int64    `yaml:"max_tokens,omitempty"`
}

// String renders the config without credentials.
func (c Config) String() string {
	return fmt.Sprintf("%s/%s", c.Provider, c.Model)
}
