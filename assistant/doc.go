// Package assistant composes the router, the specialized agents and the
// executor into the end-to-end "message in, reply out" pipeline. One turn is
// a single sequential chain of blocking calls: router LLM call, specialized
// agent LLM call, executor dispatch, zero or more tool calls. The two LLM
// calls are sequential by necessity (the second depends on the first's
// output); no shared state is mutated within a turn.
//
// The orchestrator owns the "is this JSON? does it contain an action?"
// decision: specialized agent output with an action key is handed to the
// executor, anything else is returned verbatim as a conversational answer.
package assistant
