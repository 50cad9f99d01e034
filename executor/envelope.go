package executor

// Envelope is the executor's uniform result shape: a mapping carrying either
// a "status" key (recognized action, executed) or an "error" key (malformed
// or unrecognized input), never both at the top level. Callers branch on key
// presence alone; downstream tool failures appear nested inside the
// action-specific payload, not at the top level.
type Envelope map[string]any

// IsError reports whether the envelope is error-shaped.
func (e Envelope) IsError() bool {
	_, ok := e["error"]
	return ok
}

// Status returns the envelope's status tag, or "" for error envelopes.
func (e Envelope) Status() string {
	s, _ := e["status"].(string)
	return s
}

func statusEnvelope(status string, kv ...any) Envelope {
	e := Envelope{"status": status}
	for i := 0; i+1 < len(kv); i += 2 {
		e[kv[i].(string)] = kv[i+1]
	}
	return e
}

func errorEnvelope(message string, kv ...any) Envelope {
	e := Envelope{"error": message}
	for i := 0; i+1 < len(kv); i += 2 {
		e[kv[i].(string)] = kv[i+1]
	}
	return e
}
