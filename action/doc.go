// Package action defines the JSON-action contract between a specialized
// agent's free-text LLM output and the executor. An action descriptor is
// produced by untrusted text generation and must be treated as possibly
// malformed, partially present, or embedded in extraneous quoting; Decode
// applies the lenient decode policy and the typed payload accessors apply
// per-action defaults in a single validating step.
package action
