// Package extract implements the shared policy for pulling JSON objects out
// of free-form LLM responses.
//
// The locator is a deliberate heuristic, not a parser: it takes the substring
// between the first '{' and the last '}' in the response and hands it to
// encoding/json. Responses routinely wrap the payload in prose or code
// fences, and the scan handles those; it will mis-extract when the prose
// itself contains brace characters. That limitation is accepted and kept
// as-is rather than hardened, so extraction behavior stays predictable.
package extract

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/urabe-chihiro/resume-ai/internal/llm"
)

// ErrNoJSON indicates the response contains no '{'...'}' span to parse.
var ErrNoJSON = errors.New("no JSON object found in response")

// ParseError indicates the located span was not valid JSON.
type ParseError struct {
	Cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse extracted JSON: %v", e.Cause)
}

func (e *ParseError) Unwrap() error { return e.Cause }

// locate returns the substring between the first '{' and the last '}'
// inclusive, or ErrNoJSON when no such span exists.
func locate(raw string) (string, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return "", ErrNoJSON
	}
	return raw[start : end+1], nil
}

// locateParsable scans the raw text first; the bracket scan on the raw
// response is the contract and must win whenever its span parses. Only when
// that span is unusable does the fence-stripped form get a second scan,
// which rescues fenced payloads followed by trailing prose braces.
func locateParsable(raw string) (string, error) {
	span, err := locate(raw)
	if err == nil && json.Valid([]byte(span)) {
		return span, nil
	}

	if stripped := llm.CleanJSONBlock(raw); stripped != raw {
		if fallback, fbErr := locate(stripped); fbErr == nil && json.Valid([]byte(fallback)) {
			return fallback, nil
		}
	}

	if err != nil {
		return "", err
	}
	return span, nil
}

// Extract locates and parses a JSON object in raw. When expectedKey is
// non-empty and present in the parsed object, the value under that key is
// returned; otherwise the whole object is. Callers always receive a typed
// failure, never a panic.
func Extract(raw string, expectedKey string) (any, error) {
	span, err := locateParsable(raw)
	if err != nil {
		return nil, err
	}

	var obj map[string]any
	if err := json.Unmarshal([]byte(span), &obj); err != nil {
		return nil, &ParseError{Cause: err}
	}

	if expectedKey != "" {
		if value, ok := obj[expectedKey]; ok {
			return value, nil
		}
	}
	return obj, nil
}

// Into locates the JSON object in raw and unmarshals it into v. Used when
// the caller knows the concrete shape it expects.
func Into(raw string, v any) error {
	span, err := locateParsable(raw)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(span), v); err != nil {
		return &ParseError{Cause: err}
	}
	return nil
}
