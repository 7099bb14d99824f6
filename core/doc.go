// Package core provides the foundational domain types shared by agentic3d
// packages:
//
//   - Message / Part (role based conversational content, text and images)
//   - Agent (the capability surface exposed to conversation orchestrators)
//
// The package keeps implementation concerns (model providers, concrete agent
// kinds, the factory) out of scope so every other package can depend on it
// without cycles.
package core
