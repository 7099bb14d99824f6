package core

import (
	"encoding/base64"
	"strings"
)

// Part represents a polymorphic segment of role-based content. Concrete part
// types implement the unexported isPart marker enabling a closed set.
type Part interface{ isPart() }

// TextPart is a plain text content segment.
type TextPart struct {
	Text     string         // Plain UTF-8 text
	Metadata map[string]any // Optional producer-provided metadata
}

// isPart implements the Part interface for TextPart.
func (TextPart) isPart() {}

// ImagePart is an image segment consumed by multimodal agents, e.g. a
// rendered view of a generated model.
type ImagePart struct {
	URL      string // External retrieval URI (if not inlined)
	Data     []byte // Raw image bytes (if inlined)
	MimeType string // e.g. image/png
	Metadata map[string]any
}

// isPart implements the Part interface for ImagePart.
func (ImagePart) isPart() {}

// DataURL returns the image as a URL, inlining Data as a base64 data URL
// when no external URL is set.
func (p ImagePart) DataURL() string {
	if p.URL != "" {
		return p.URL
	}
	mime := p.MimeType
	if mime == "" {
		mime = "image/png"
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(p.Data)
}

// Role names used in messages.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one conversational turn. A nil Content means the message
// carries no content at all, which differs from empty content.
type Message struct {
	ID      string `json:"id,omitempty"`
	Role    string `json:"role,omitempty"` // Conversation role (user, assistant, system)
	Name    string `json:"name,omitempty"` // Authoring agent
	Content []Part `json:"content"`        // Ordered heterogeneous parts
}

// NewTextMessage creates a message holding a single text part.
func NewTextMessage(role, text string) Message {
	return Message{Role: role, Content: []Part{TextPart{Text: text}}}
}

// HasContent reports whether the message carries a content field.
func (m Message) HasContent() bool { return m.Content != nil }

// Text concatenates all text parts in order.
func (m Message) Text() string {
	var sb strings.Builder
	for _, p := range m.Content {
		if tp, ok := p.(TextPart); ok {
			sb.WriteString(tp.Text)
		}
	}
	return sb.String()
}

// Images returns the image parts of the message.
func (m Message) Images() []ImagePart {
	var images []ImagePart
	for _, p := range m.Content {
		if ip, ok := p.(ImagePart); ok {
			images = append(images, ip)
		}
	}
	return images
}

// WithoutImages returns a copy of the message with image parts removed.
// Content stays non-nil when the original had content.
func (m Message) WithoutImages() Message {
	if m.Content == nil {
		return m
	}
	parts := make([]Part, 0, len(m.Content))
	for _, p := range m.Content {
		if _, ok := p.(ImagePart); ok {
			continue
		}
		parts = append(parts, p)
	}
	m.Content = parts
	return m
}
