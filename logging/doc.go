// Package logging provides a minimal logging interface and adapters for agentic3d.
//
// The Logger interface defines the standard logging methods (Debug, Info, Warn, Error)
// that the builder and agents use for observability. This package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - StructuredLogger with component context and LLM call helpers
//   - NoOpLogger for silent operation (testing, minimal setups)
//
// Usage:
//
//	logger := logging.NewSlogLogger(logging.LogLevelInfo, "json", false)
//	b, err := builder.New(llm, msgs, func(o *builder.Options) { o.Logger = logger })
package logging
