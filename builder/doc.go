// Package builder provides the agent factory for agentic3d. A Builder
// constructs the configured conversational agents (designer, OpenSCAD
// generator, feedback, prompt improver) from system-message strings and a
// shared model, then exposes them as an ordered slice and a role-keyed map
// for a conversation orchestrator.
//
// Roles are produced by RoleFactory funcs held in a Registry. The default
// registry also carries the commander, coder and critic roles, which are not
// part of the default construction sequence and can be enabled via
// Options.Roles. New roles are added by registering a factory; the
// construction sequence itself does not change.
//
// Usage:
//
//	b, err := builder.New(llm, builder.SystemMessages{
//		Generator:      generatorPrompt,
//		Feedback:       feedbackPrompt,
//		PromptImprover: improverPrompt,
//	})
//	if err != nil { ... }
//	for _, a := range b.GetAllAgents() { ... }
package builder
