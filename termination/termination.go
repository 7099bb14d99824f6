// Package termination provides the rules agents use to decide whether a
// message ends their participation in a conversation. Rules form a closed
// set of variants chosen per role at construction time.
package termination

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/hupe1980/agentic3d/core"
)

// Sentinel tokens recognized by the built-in roles.
const (
	Terminate      = "TERMINATE"
	TerminateMatch = "TERMINATE_MATCH"
)

// Rule decides whether a message is a termination message.
type Rule interface {
	IsTermination(msg core.Message) bool
	fmt.Stringer
}

// Never is the default rule; it never terminates.
type Never struct{}

// IsTermination implements Rule.
func (Never) IsTermination(core.Message) bool { return false }

func (Never) String() string { return "never" }

// Suffix terminates when the message content, with trailing whitespace
// removed, is non-empty and ends with Sentinel.
type Suffix struct {
	Sentinel string
}

// NewSuffix returns a Suffix rule for sentinel.
func NewSuffix(sentinel string) Suffix { return Suffix{Sentinel: sentinel} }

// IsTermination implements Rule.
func (r Suffix) IsTermination(msg core.Message) bool {
	text := msg.Text()
	if text == "" {
		return false
	}
	return strings.HasSuffix(strings.TrimRightFunc(text, unicode.IsSpace), r.Sentinel)
}

func (r Suffix) String() string { return fmt.Sprintf("suffix(%q)", r.Sentinel) }

// Contains terminates when the message has content containing Sentinel
// anywhere.
type Contains struct {
	Sentinel string
}

// NewContains returns a Contains rule for sentinel.
func NewContains(sentinel string) Contains { return Contains{Sentinel: sentinel} }

// IsTermination implements Rule.
func (r Contains) IsTermination(msg core.Message) bool {
	if !msg.HasContent() {
		return false
	}
	return strings.Contains(msg.Text(), r.Sentinel)
}

func (r Contains) String() string { return fmt.Sprintf("contains(%q)", r.Sentinel) }
