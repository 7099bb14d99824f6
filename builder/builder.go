package builder

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"os"

	"github.com/hupe1980/agentic3d/agent"
	"github.com/hupe1980/agentic3d/core"
	"github.com/hupe1980/agentic3d/internal/util"
	"github.com/hupe1980/agentic3d/logging"
	"github.com/hupe1980/agentic3d/model"
	"github.com/hupe1980/agentic3d/termination"
)

// DefaultNumVersions bounds the critic's consecutive auto replies when
// Options.NumVersions is unset.
const DefaultNumVersions = 3

// ErrUnknownRole is returned by New when a requested role has no factory.
var ErrUnknownRole = errors.New("unknown agent role")

// SystemMessages holds the role instructions. Commander, Coder and Critic
// are only used when their roles are part of Options.Roles.
type SystemMessages struct {
	Generator      string `yaml:"generator"`
	Feedback       string `yaml:"feedback"`
	PromptImprover string `yaml:"prompt_improver"`
	Commander      string `yaml:"commander,omitempty"`
	Coder          string `yaml:"coder,omitempty"`
	Critic         string `yaml:"critic,omitempty"`
}

// Options configures a Builder.
type Options struct {
	// Registry supplies role factories (defaults to DefaultRegistry()).
	Registry *Registry
	// Roles is the ordered construction sequence (defaults to DefaultRoles).
	Roles []string
	// NumVersions caps the critic's consecutive auto replies.
	NumVersions int
	// RenderTemplates renders system messages as Go templates before use.
	// Messages are taken verbatim otherwise.
	RenderTemplates bool
	// TemplateVars are exposed to rendered system messages; setting them
	// turns rendering on. "num_versions" is always set.
	TemplateVars map[string]any
	// EnableStreaming turns on streaming generation for every agent.
	EnableStreaming bool
	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// Builder constructs the configured agents once and exposes them as an
// ordered slice and a role-keyed map holding the same instances.
type Builder struct {
	llm             model.Model
	numVersions     int
	enableStreaming bool
	logger          logging.Logger
	allAgents       []core.Agent
	allAgentsDict   map[string]core.Agent
}

// New builds every role in opts.Roles, in order, sharing llm across agents.
// System messages are passed through as-is unless template rendering is
// enabled. Errors from template rendering or role factories are returned
// unchanged in the chain.
func New(llm model.Model, msgs SystemMessages, optFns ...func(o *Options)) (*Builder, error) {
	opts := Options{
		Registry:    DefaultRegistry(),
		Roles:       DefaultRoles,
		NumVersions: DefaultNumVersions,
		Logger:      logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Registry == nil {
		opts.Registry = DefaultRegistry()
	}
	if len(opts.Roles) == 0 {
		opts.Roles = DefaultRoles
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}

	rendered := msgs
	if opts.RenderTemplates || len(opts.TemplateVars) > 0 {
		vars := map[string]any{}
		maps.Copy(vars, opts.TemplateVars)
		vars["num_versions"] = opts.NumVersions

		var err error
		if rendered, err = renderMessages(msgs, opts.Roles, vars); err != nil {
			return nil, err
		}
	}

	b := &Builder{
		llm:             llm,
		numVersions:     opts.NumVersions,
		enableStreaming: opts.EnableStreaming,
		logger:          opts.Logger,
		allAgents:       make([]core.Agent, 0, len(opts.Roles)),
		allAgentsDict:   make(map[string]core.Agent, len(opts.Roles)),
	}

	for _, role := range opts.Roles {
		factory, ok := opts.Registry.Lookup(role)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownRole, role)
		}

		a, err := factory(b, rendered)
		if err != nil {
			return nil, fmt.Errorf("build %s: %w", role, err)
		}

		b.allAgents = append(b.allAgents, a)
		b.allAgentsDict[role] = a

		b.logger.Debug("builder.agent.built", "role", role, "agent", a.Name())
	}

	b.logger.Info("builder.ready", "agents", len(b.allAgents))

	return b, nil
}

// renderMessages renders the system messages of the given roles. Messages
// of roles outside the sequence are left untouched.
func renderMessages(msgs SystemMessages, roles []string, vars map[string]any) (SystemMessages, error) {
	fields := map[string]struct {
		name string
		ptr  *string
	}{
		RoleGenerator:      {"generator", &msgs.Generator},
		RoleFeedback:       {"feedback", &msgs.Feedback},
		RolePromptImprover: {"prompt_improver", &msgs.PromptImprover},
		RoleCommander:      {"commander", &msgs.Commander},
		RoleCoder:          {"coder", &msgs.Coder},
		RoleCritic:         {"critic", &msgs.Critic},
	}
	for _, role := range roles {
		f, ok := fields[role]
		if !ok {
			continue
		}
		out, err := util.RenderTemplate(*f.ptr, vars)
		if err != nil {
			return SystemMessages{}, fmt.Errorf("render %s system message: %w", f.name, err)
		}
		*f.ptr = out
		delete(fields, role)
	}
	return msgs, nil
}

func (b *Builder) commonOptions(o *agent.ConversableAgentOptions) {
	o.Logger = b.logger
	o.EnableStreaming = b.enableStreaming
}

// BuildDesignerAgent builds the agent standing in for the person who wants
// something modeled. It never asks for human input, auto-replies at most
// once, never executes code and terminates on messages ending in TERMINATE.
func (b *Builder) BuildDesignerAgent() *agent.ConversableAgent {
	return agent.NewUserProxyAgent("designer", b.llm, b.commonOptions, func(o *agent.ConversableAgentOptions) {
		o.HumanInputMode = agent.HumanInputNever
		o.CodeExecution = false
		o.MaxConsecutiveAutoReply = 1
		o.TerminationRule = termination.NewSuffix(termination.Terminate)
	})
}

// BuildGeneratorAgent builds the agent that writes OpenSCAD code from the
// description. It keeps the default termination behavior.
func (b *Builder) BuildGeneratorAgent(systemMessage string) *agent.ConversableAgent {
	return agent.NewConversableAgent("openscad_generator", b.llm, b.commonOptions, func(o *agent.ConversableAgentOptions) {
		o.SystemMessage = systemMessage
	})
}

// BuildFeedbackAgent builds the multimodal agent that critiques a rendered
// image against the description.
func (b *Builder) BuildFeedbackAgent(systemMessage string) *agent.ConversableAgent {
	return agent.NewMultimodalAgent("feedback", b.llm, b.commonOptions, func(o *agent.ConversableAgentOptions) {
		o.SystemMessage = systemMessage
		o.HumanInputMode = agent.HumanInputNever
		o.TerminationRule = termination.NewContains(termination.TerminateMatch)
	})
}

// BuildPromptImproverAgent builds the agent that revises the designer's prompt.
func (b *Builder) BuildPromptImproverAgent(systemMessage string) *agent.ConversableAgent {
	return agent.NewConversableAgent("prompt_improver", b.llm, b.commonOptions, func(o *agent.ConversableAgentOptions) {
		o.SystemMessage = systemMessage
		o.HumanInputMode = agent.HumanInputNever
		o.MaxConsecutiveAutoReply = 1
		o.TerminationRule = termination.NewContains(termination.TerminateMatch)
	})
}

// BuildCommanderAgent builds the assistant coordinating coder and critic.
func (b *Builder) BuildCommanderAgent(systemMessage string) *agent.ConversableAgent {
	return agent.NewAssistantAgent("commander", b.llm, b.commonOptions, func(o *agent.ConversableAgentOptions) {
		o.SystemMessage = systemMessage
		o.MaxConsecutiveAutoReply = 10
	})
}

// BuildCoderAgent builds an assistant that writes code.
func (b *Builder) BuildCoderAgent(systemMessage string) *agent.ConversableAgent {
	return agent.NewAssistantAgent("Coder", b.llm, b.commonOptions, func(o *agent.ConversableAgentOptions) {
		o.SystemMessage = systemMessage
	})
}

// BuildCriticAgent builds the multimodal critic reviewing up to NumVersions renders.
func (b *Builder) BuildCriticAgent(systemMessage string) *agent.ConversableAgent {
	return agent.NewMultimodalAgent("Critics", b.llm, b.commonOptions, func(o *agent.ConversableAgentOptions) {
		o.SystemMessage = systemMessage
		o.HumanInputMode = agent.HumanInputNever
		o.MaxConsecutiveAutoReply = b.numVersions
	})
}

// GetAllAgents returns the agents in construction order.
func (b *Builder) GetAllAgents() []core.Agent {
	out := make([]core.Agent, len(b.allAgents))
	copy(out, b.allAgents)
	return out
}

// GetAllAgentsDict returns the agents keyed by role.
func (b *Builder) GetAllAgentsDict() map[string]core.Agent {
	return maps.Clone(b.allAgentsDict)
}

// Agent returns the agent built for role.
func (b *Builder) Agent(role string) (core.Agent, bool) {
	a, ok := b.allAgentsDict[role]
	return a, ok
}

// PrintAgents writes each agent's name to stdout, one per line.
func (b *Builder) PrintAgents() {
	_ = b.FprintAgents(os.Stdout)
}

// FprintAgents writes each agent's name to w, one per line, in
// construction order.
func (b *Builder) FprintAgents(w io.Writer) error {
	for _, a := range b.allAgents {
		if _, err := fmt.Fprintln(w, a.Name()); err != nil {
			return err
		}
	}
	return nil
}
