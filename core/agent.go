package core

import "context"

// Agent defines the surface a conversation orchestrator needs from a
// configured participant.
//
// Implementations must:
//   - Respect context cancellation in GenerateReply
//   - Be safe to share once constructed (configuration is immutable)
type Agent interface {
	Name() string
	Description() string
	SystemMessage() string
	// IsTerminationMsg reports whether msg ends this agent's participation.
	IsTerminationMsg(msg Message) bool
	// GenerateReply produces the agent's next message for the given history.
	GenerateReply(ctx context.Context, history []Message) (Message, error)
}
