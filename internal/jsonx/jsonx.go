// Package jsonx implements the defensive JSON decode policy applied to
// LLM-generated text. Model output is treated as an untrusted payload: it may
// be valid JSON, a JSON document wrapped in an extra layer of string quoting,
// fenced in markdown, or structurally damaged (trailing commas, single
// quotes). DecodeLenient tries progressively more forgiving strategies and
// reports failure only when none of them produce a JSON document.
package jsonx

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// ErrNotJSON indicates that no decode strategy produced valid JSON.
var ErrNotJSON = errors.New("jsonx: input is not decodable as JSON")

// DecodeLenient unmarshals raw into v, tolerating the quirks of
// LLM-generated JSON. Strategies, in order:
//
//  1. Plain json.Unmarshal of the trimmed input.
//  2. Strip one layer of surrounding quotes (some models emit a JSON-encoded
//     string literal rather than raw JSON) and retry.
//  3. Strip markdown code fences, if present, and retry.
//  4. Run the input through jsonrepair and decode the repaired text.
//
// The first successful strategy wins. On total failure ErrNotJSON is
// returned wrapped with the last underlying decode error.
func DecodeLenient(raw string, v any) error {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ErrNotJSON
	}

	if err := json.Unmarshal([]byte(trimmed), v); err == nil {
		return nil
	}

	if unquoted, ok := stripQuotes(trimmed); ok {
		if err := json.Unmarshal([]byte(unquoted), v); err == nil {
			return nil
		}
	}

	if unfenced, ok := stripFences(trimmed); ok {
		if err := json.Unmarshal([]byte(unfenced), v); err == nil {
			return nil
		}
	}

	repaired, err := jsonrepair.JSONRepair(trimmed)
	if err != nil {
		return errors.Join(ErrNotJSON, err)
	}
	if err := json.Unmarshal([]byte(repaired), v); err != nil {
		return errors.Join(ErrNotJSON, err)
	}
	return nil
}

// stripQuotes removes one layer of surrounding double quotes and unescapes
// the interior if the input is a JSON string literal.
func stripQuotes(s string) (string, bool) {
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return "", false
	}
	// The input may itself be a valid JSON string literal; decoding it
	// yields the embedded document with escapes resolved.
	var inner string
	if err := json.Unmarshal([]byte(s), &inner); err == nil {
		return strings.TrimSpace(inner), true
	}
	return strings.TrimSpace(s[1 : len(s)-1]), true
}

// stripFences removes a markdown code fence (``` or ```json) wrapping the input.
func stripFences(s string) (string, bool) {
	if !strings.HasPrefix(s, "```") {
		return "", false
	}
	body := strings.TrimPrefix(s, "```")
	if idx := strings.IndexByte(body, '\n'); idx >= 0 {
		// Drop the language hint line ("json", "JSON", ...).
		first := strings.TrimSpace(body[:idx])
		if first == "" || strings.EqualFold(first, "json") {
			body = body[idx+1:]
		}
	}
	body = strings.TrimSuffix(strings.TrimSpace(body), "```")
	return strings.TrimSpace(body), true
}
