// Package agentic3d provides a high-level façade that turns a loaded
// configuration into a ready agent builder. Most applications interact with
// this package by:
//  1. Loading a config.Config (config.Load)
//  2. Calling New to resolve the configured model and build the agents
//  3. Handing builder.GetAllAgents() to their conversation orchestrator
//
// Lower-level wiring (custom models, registries, loggers) is available via
// Options or by using the builder package directly.
package agentic3d

import (
	"fmt"

	anthropicsdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/hupe1980/agentic3d/builder"
	"github.com/hupe1980/agentic3d/config"
	"github.com/hupe1980/agentic3d/logging"
	"github.com/hupe1980/agentic3d/model"
	"github.com/hupe1980/agentic3d/model/anthropic"
	"github.com/hupe1980/agentic3d/model/openai"
)

// Options configures New.
type Options struct {
	// Model overrides the model resolved from the configuration.
	Model model.Model
	// Registry supplies role factories (defaults to builder.DefaultRegistry()).
	Registry *builder.Registry
	// EnableStreaming turns on streaming generation for every agent.
	EnableStreaming bool
	// Logger (defaults to a structured logger configured from cfg.Log)
	Logger logging.Logger
}

// NewModel resolves the provider named in cfg into a model.Model.
func NewModel(cfg model.Config) (model.Model, error) {
	switch cfg.Provider {
	case "", model.ProviderOpenAI:
		return openai.NewModel(func(o *openai.Options) {
			if cfg.Model != "" {
				o.Model = cfg.Model
			}
			if cfg.Temperature != nil {
				o.Temperature = *cfg.Temperature
			}
			if cfg.MaxTokens != 0 {
				o.MaxCompletionTokens = cfg.MaxTokens
			}
			o.APIKey = cfg.APIKey
			o.BaseURL = cfg.BaseURL
		}), nil
	case model.ProviderAnthropic:
		return anthropic.NewModel(func(o *anthropic.Options) {
			if cfg.Model != "" {
				o.Model = anthropicsdk.Model(cfg.Model)
			}
			if cfg.Temperature != nil {
				o.Temperature = *cfg.Temperature
			}
			if cfg.MaxTokens != 0 {
				o.MaxTokens = cfg.MaxTokens
			}
			o.APIKey = cfg.APIKey
			o.BaseURL = cfg.BaseURL
		}), nil
	case model.ProviderMock:
		name := cfg.Model
		if name == "" {
			name = "mock"
		}
		return model.NewMockModel(name, model.ProviderMock), nil
	default:
		return nil, fmt.Errorf("unsupported llm provider %q", cfg.Provider)
	}
}

// NewLogger builds the structured logger described by cfg.
func NewLogger(cfg config.LogConfig) (*logging.StructuredLogger, error) {
	level, err := logging.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	return logging.NewSlogLogger(level, cfg.Format, false), nil
}

// New resolves the configured model and builds the agents.
func New(cfg *config.Config, optFns ...func(o *Options)) (*builder.Builder, error) {
	opts := Options{}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Logger == nil {
		l, err := NewLogger(cfg.Log)
		if err != nil {
			return nil, err
		}
		opts.Logger = l.WithComponent("builder")
	}

	llm := opts.Model
	if llm == nil {
		m, err := NewModel(cfg.LLM)
		if err != nil {
			return nil, err
		}
		llm = m
	}

	opts.Logger.Debug("agentic3d.model.resolved", "llm", cfg.LLM.String())

	return builder.New(llm, cfg.SystemMessages, func(o *builder.Options) {
		o.Registry = opts.Registry
		o.Roles = cfg.Roles
		o.NumVersions = cfg.NumVersions
		o.RenderTemplates = cfg.RenderTemplates
		o.TemplateVars = cfg.TemplateVars
		o.EnableStreaming = opts.EnableStreaming
		o.Logger = opts.Logger
	})
}
