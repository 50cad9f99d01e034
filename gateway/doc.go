// Package gateway defines the boundary to external LLM completion endpoints.
// The Gateway interface is the single leaf dependency of all agents: one
// (system prompt, user message) pair in, one raw completion out. Provider
// adapters live in subpackages (perplexity, anthropic); select an
// implementation at wiring time and depend only on the interfaces in your
// code.
//
// Transport failures and non-success API statuses are hard failures returned
// as errors. The gateway performs no retries; retry policy, if any, belongs
// to the caller.
package gateway
