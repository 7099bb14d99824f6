// Package model defines the provider‑agnostic abstractions and concrete
// helpers for interacting with language models inside agentic3d.
//
// Core goals:
//   - Unify streaming + non‑streaming generation behind a single interface
//   - Carry multimodal (text + image) messages to providers that accept them
//   - Keep request/response shapes minimal and transport independent
//   - Facilitate lightweight mocking for tests (MockModel)
//
// Providers (e.g. OpenAI, Anthropic) implement the Model interface from this
// package so agents remain decoupled from vendor SDKs. Config is the shared
// LLM configuration handed to every agent the builder creates.
package model
