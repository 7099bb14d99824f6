package builder

import (
	"sort"

	"github.com/hupe1980/agentic3d/core"
)

// Role keys, as exposed by GetAllAgentsDict.
const (
	RoleDesigner       = "user_designer_agent"
	RoleGenerator      = "openscad_generator_agent"
	RoleFeedback       = "feedback_agent"
	RolePromptImprover = "prompt_improver_agent"
	RoleCommander      = "commander_agent"
	RoleCoder          = "coder_agent"
	RoleCritic         = "critic_agent"
)

// DefaultRoles is the construction sequence used when Options.Roles is empty.
var DefaultRoles = []string{RoleDesigner, RoleGenerator, RoleFeedback, RolePromptImprover}

// RoleFactory builds the agent for one role. msgs holds the rendered system
// messages passed to New.
type RoleFactory func(b *Builder, msgs SystemMessages) (core.Agent, error)

// Registry maps role keys to factories. It is not safe for concurrent
// mutation; populate it before calling New.
type Registry struct {
	factories map[string]RoleFactory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]RoleFactory)}
}

// DefaultRegistry returns a registry holding every built-in role.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(RoleDesigner, func(b *Builder, _ SystemMessages) (core.Agent, error) {
		return b.BuildDesignerAgent(), nil
	})
	r.Register(RoleGenerator, func(b *Builder, msgs SystemMessages) (core.Agent, error) {
		return b.BuildGeneratorAgent(msgs.Generator), nil
	})
	r.Register(RoleFeedback, func(b *Builder, msgs SystemMessages) (core.Agent, error) {
		return b.BuildFeedbackAgent(msgs.Feedback), nil
	})
	r.Register(RolePromptImprover, func(b *Builder, msgs SystemMessages) (core.Agent, error) {
		return b.BuildPromptImproverAgent(msgs.PromptImprover), nil
	})
	r.Register(RoleCommander, func(b *Builder, msgs SystemMessages) (core.Agent, error) {
		return b.BuildCommanderAgent(msgs.Commander), nil
	})
	r.Register(RoleCoder, func(b *Builder, msgs SystemMessages) (core.Agent, error) {
		return b.BuildCoderAgent(msgs.Coder), nil
	})
	r.Register(RoleCritic, func(b *Builder, msgs SystemMessages) (core.Agent, error) {
		return b.BuildCriticAgent(msgs.Critic), nil
	})
	return r
}

// Register adds or replaces the factory for role.
func (r *Registry) Register(role string, f RoleFactory) {
	r.factories[role] = f
}

// Lookup returns the factory for role.
func (r *Registry) Lookup(role string) (RoleFactory, bool) {
	f, ok := r.factories[role]
	return f, ok
}

// Roles returns the registered role keys in sorted order.
func (r *Registry) Roles() []string {
	roles := make([]string, 0, len(r.factories))
	for role := range r.factories {
		roles = append(roles, role)
	}
	sort.Strings(roles)
	return roles
}
