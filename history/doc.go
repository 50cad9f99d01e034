// Package history records completed assistant turns for later analysis. A
// Recorder converts the (user message, agent response) pair into a structured
// Record via an LLM call and persists it through the Store interface.
// Recording runs as a detached background task after the reply is computed:
// it must never block or affect the returned reply, and its failures are
// diagnostic-logged only.
//
// The Store interface is the persistence boundary; the in-memory
// implementation below suits tests and ephemeral demo servers, durable
// deployments supply their own backend at wiring time.
package history
