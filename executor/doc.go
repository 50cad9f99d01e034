// Package executor implements the action dispatch core: it validates an
// action descriptor produced by a specialized agent, normalizes its payload,
// invokes the matching external tool boundary and returns a uniform result
// envelope.
//
// The executor's public contract returns, never raises: JSON-decode failures,
// missing or unknown action tags and downstream tool failures are all
// reported inside the envelope. The only hard failures returned as Go errors
// are malformed domain data (date/time literals that fail every parse
// fallback) and LLM gateway transport failures during summarization.
package executor
