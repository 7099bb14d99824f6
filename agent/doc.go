// Package agent contains the configurable conversational agents the
// builder hands to a conversation orchestrator. The package focuses on two
// concerns:
//
//  1. Identity plumbing shared by all agents (BaseAgent)
//  2. A model-backed conversable agent (ConversableAgent) with role presets:
//     user proxy, assistant and multimodal
//
// Agents are configured once through functional options and are immutable
// afterwards. Turn-taking and stopping are left to the orchestrator, which
// consults IsTerminationMsg and CanAutoReply.
package agent
