package agent

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/agentic3d/core"
	"github.com/hupe1980/agentic3d/internal/util"
	"github.com/hupe1980/agentic3d/logging"
	"github.com/hupe1980/agentic3d/model"
	"github.com/hupe1980/agentic3d/termination"
)

// HumanInputMode controls when an orchestrator should ask a human for input
// on behalf of the agent.
type HumanInputMode string

const (
	// HumanInputAlways asks for human input on every turn.
	HumanInputAlways HumanInputMode = "ALWAYS"
	// HumanInputTerminate asks only when a termination message arrives or
	// the auto-reply limit is reached.
	HumanInputTerminate HumanInputMode = "TERMINATE"
	// HumanInputNever never asks; the agent replies automatically.
	HumanInputNever HumanInputMode = "NEVER"
)

const (
	// DefaultMaxConsecutiveAutoReply is the auto-reply limit when none is configured.
	DefaultMaxConsecutiveAutoReply = 100

	// DefaultSystemMessage is used by conversable agents without a system message.
	DefaultSystemMessage = "You are a helpful AI Assistant."

	// DefaultAssistantSystemMessage is used by assistant agents without a system message.
	DefaultAssistantSystemMessage = "You are a helpful AI assistant. Solve tasks using your coding and language skills. Reply \"TERMINATE\" in the end when everything is done."
)

var _ core.Agent = (*ConversableAgent)(nil)

// ConversableAgentOptions configures a ConversableAgent instance.
//
// Use functional options with NewConversableAgent to override defaults.
type ConversableAgentOptions struct {
	SystemMessage           string
	Description             string
	HumanInputMode          HumanInputMode
	MaxConsecutiveAutoReply int
	CodeExecution           bool
	Multimodal              bool
	EnableStreaming         bool
	TerminationRule         termination.Rule
	Logger                  logging.Logger
}

// ConversableAgent is a model-backed participant in a multi-agent
// conversation. It embeds BaseAgent for identity and carries the
// configuration an orchestrator consults: human input mode, auto-reply
// limit, code-execution flag and termination rule.
type ConversableAgent struct {
	BaseAgent
	llm                     model.Model
	systemMessage           string
	humanInputMode          HumanInputMode
	maxConsecutiveAutoReply int
	codeExecution           bool
	multimodal              bool
	enableStreaming         bool
	terminationRule         termination.Rule
	logger                  logging.Logger
}

// NewConversableAgent creates a conversable agent with these defaults:
//   - DefaultSystemMessage
//   - HumanInputTerminate
//   - DefaultMaxConsecutiveAutoReply auto replies
//   - code execution disabled, text only, no streaming
//   - termination.Never
func NewConversableAgent(name string, llm model.Model, optFns ...func(o *ConversableAgentOptions)) *ConversableAgent {
	opts := ConversableAgentOptions{
		SystemMessage:           DefaultSystemMessage,
		HumanInputMode:          HumanInputTerminate,
		MaxConsecutiveAutoReply: DefaultMaxConsecutiveAutoReply,
		TerminationRule:         termination.Never{},
		Logger:                  logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return newConversableAgent(name, llm, opts)
}

// NewUserProxyAgent creates an agent standing in for the human requester.
// It defaults to HumanInputAlways, an empty system message and code
// execution enabled.
func NewUserProxyAgent(name string, llm model.Model, optFns ...func(o *ConversableAgentOptions)) *ConversableAgent {
	return NewConversableAgent(name, llm, append([]func(o *ConversableAgentOptions){func(o *ConversableAgentOptions) {
		o.SystemMessage = ""
		o.HumanInputMode = HumanInputAlways
		o.CodeExecution = true
		o.Description = "A user that can run code and provide feedback to other agents."
	}}, optFns...)...)
}

// NewAssistantAgent creates an agent that never asks for human input and
// uses DefaultAssistantSystemMessage unless overridden.
func NewAssistantAgent(name string, llm model.Model, optFns ...func(o *ConversableAgentOptions)) *ConversableAgent {
	return NewConversableAgent(name, llm, append([]func(o *ConversableAgentOptions){func(o *ConversableAgentOptions) {
		o.SystemMessage = DefaultAssistantSystemMessage
		o.HumanInputMode = HumanInputNever
	}}, optFns...)...)
}

// NewMultimodalAgent creates a conversable agent that forwards image parts
// to its model.
func NewMultimodalAgent(name string, llm model.Model, optFns ...func(o *ConversableAgentOptions)) *ConversableAgent {
	return NewConversableAgent(name, llm, append([]func(o *ConversableAgentOptions){func(o *ConversableAgentOptions) {
		o.Multimodal = true
	}}, optFns...)...)
}

func newConversableAgent(name string, llm model.Model, opts ConversableAgentOptions) *ConversableAgent {
	if opts.TerminationRule == nil {
		opts.TerminationRule = termination.Never{}
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}
	return &ConversableAgent{
		BaseAgent:               NewBaseAgent(name, opts.Description),
		llm:                     llm,
		systemMessage:           opts.SystemMessage,
		humanInputMode:          opts.HumanInputMode,
		maxConsecutiveAutoReply: opts.MaxConsecutiveAutoReply,
		codeExecution:           opts.CodeExecution,
		multimodal:              opts.Multimodal,
		enableStreaming:         opts.EnableStreaming,
		terminationRule:         opts.TerminationRule,
		logger:                  opts.Logger,
	}
}

// SystemMessage returns the instruction string defining the agent's role.
func (a *ConversableAgent) SystemMessage() string { return a.systemMessage }

// LLM returns the language model instance.
func (a *ConversableAgent) LLM() model.Model { return a.llm }

// HumanInputMode returns when the orchestrator should ask a human.
func (a *ConversableAgent) HumanInputMode() HumanInputMode { return a.humanInputMode }

// MaxConsecutiveAutoReply returns the auto-reply limit.
func (a *ConversableAgent) MaxConsecutiveAutoReply() int { return a.maxConsecutiveAutoReply }

// IsCodeExecutionEnabled reports whether code in received messages may be executed.
func (a *ConversableAgent) IsCodeExecutionEnabled() bool { return a.codeExecution }

// IsMultimodal reports whether image parts are forwarded to the model.
func (a *ConversableAgent) IsMultimodal() bool { return a.multimodal }

// IsStreamingEnabled returns whether streaming responses are enabled.
func (a *ConversableAgent) IsStreamingEnabled() bool { return a.enableStreaming }

// TerminationRule returns the rule behind IsTerminationMsg.
func (a *ConversableAgent) TerminationRule() termination.Rule { return a.terminationRule }

// IsTerminationMsg implements core.Agent.
func (a *ConversableAgent) IsTerminationMsg(msg core.Message) bool {
	return a.terminationRule.IsTermination(msg)
}

// CanAutoReply reports whether another automatic reply is allowed after
// sent consecutive auto replies.
func (a *ConversableAgent) CanAutoReply(sent int) bool {
	return sent < a.maxConsecutiveAutoReply
}

// GenerateReply sends the system message and history to the model and
// returns the assistant message authored by this agent. Image parts are
// dropped unless the agent is multimodal.
func (a *ConversableAgent) GenerateReply(ctx context.Context, history []core.Message) (core.Message, error) {
	if a.llm == nil {
		return core.Message{}, fmt.Errorf("agent %s has no model configured", a.Name())
	}

	msgs := history
	if !a.multimodal {
		msgs = make([]core.Message, len(history))
		for i, m := range history {
			msgs[i] = m.WithoutImages()
		}
	}

	req := model.Request{
		Instructions: a.systemMessage,
		Messages:     msgs,
		Stream:       a.enableStreaming,
	}

	a.logger.Debug("agent.reply.start", "agent", a.Name(), "messages", len(msgs))

	start := time.Now()
	respCh, errCh := a.llm.Generate(ctx, req)
	resp, err := model.Collect(ctx, respCh, errCh)
	a.logCall(resp, time.Since(start), err)

	if err != nil {
		return core.Message{}, fmt.Errorf("agent %s: %w", a.Name(), err)
	}

	return core.Message{
		ID:      util.NewID(),
		Role:    core.RoleAssistant,
		Name:    a.Name(),
		Content: resp.Message.Content,
	}, nil
}

func (a *ConversableAgent) logCall(resp model.Response, dur time.Duration, err error) {
	tokens := 0
	if resp.Usage != nil {
		tokens = resp.Usage.TotalTokens
	}
	if l, ok := a.logger.(interface {
		LogLLMCall(model string, tokens int, dur time.Duration, err error)
	}); ok {
		l.LogLLMCall(a.llm.Info().Name, tokens, dur, err)
		return
	}
	if err != nil {
		a.logger.Error("agent.reply.error", "agent", a.Name(), "error", err.Error())
		return
	}
	a.logger.Debug("agent.reply.complete", "agent", a.Name(), "tokens", tokens, "duration", dur)
}
