// Package agent contains the prompt-bound agents of the assistant pipeline.
// An Agent pairs a fixed, hand-authored system prompt with an LLM gateway;
// every invocation is stateless and independent (no conversation memory).
//
// Two levels of agents exist:
//
//  1. The Router, whose prompt forces classification of the user message
//     into one of a closed enum of specialized agent names.
//  2. Specialized agents (calendar, email, contacts, researcher, news),
//     whose prompts instruct the model to respond with exactly one JSON
//     action descriptor, or free text if no action applies.
//
// The Name enum is the single source of truth for the routable agent set:
// the router prompt enumerates it and the orchestrator's dispatch map is
// keyed by it, so the two cannot drift.
package agent
