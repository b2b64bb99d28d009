package extraction

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// fenceRe matches a triple-backtick marker and an optional language tag.
var fenceRe = regexp.MustCompile("```[A-Za-z0-9_+-]*")

// Payload is a validated model response of shape {"tasks": [...]}.
// Elements are kept raw; normalization happens in the service.
type Payload struct {
	Tasks []json.RawMessage
}

// Sanitize recovers a JSON object from an arbitrary model response and checks
// that it carries a tasks array. Failures wrap ErrParseFailure or
// ErrValidationFailure. It never panics.
func Sanitize(raw string) (Payload, error) {
	obj, err := Recover(raw)
	if err != nil {
		return Payload{}, err
	}
	return Validate(obj)
}

// Recover returns the first decodable JSON object in raw. The text is tried
// as-is first, so backticks inside string values survive; only then are code
// fences stripped. For each form the whole text is tried before the span
// between the first '{' and the last '}'.
func Recover(raw string) (map[string]json.RawMessage, error) {
	if obj, ok := findObject(strings.TrimSpace(raw)); ok {
		return obj, nil
	}

	text := strings.TrimSpace(StripFences(raw))
	if obj, ok := findObject(text); ok {
		return obj, nil
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end < start {
		return nil, fmt.Errorf("%w: no {...} span found", ErrParseFailure)
	}
	return nil, fmt.Errorf("%w: {...} span is not a JSON object", ErrParseFailure)
}

func findObject(text string) (map[string]json.RawMessage, bool) {
	if obj, ok := decodeObject(text); ok {
		return obj, true
	}
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end < start {
		return nil, false
	}
	return decodeObject(text[start : end+1])
}

// Validate checks that obj has a "tasks" field holding an array.
func Validate(obj map[string]json.RawMessage) (Payload, error) {
	rawTasks, ok := obj["tasks"]
	if !ok {
		return Payload{}, fmt.Errorf("%w: missing tasks field", ErrValidationFailure)
	}

	trimmed := strings.TrimSpace(string(rawTasks))
	if !strings.HasPrefix(trimmed, "[") {
		return Payload{}, fmt.Errorf("%w: tasks is not an array", ErrValidationFailure)
	}

	var tasks []json.RawMessage
	if err := json.Unmarshal(rawTasks, &tasks); err != nil {
		return Payload{}, fmt.Errorf("%w: %v", ErrValidationFailure, err)
	}
	return Payload{Tasks: tasks}, nil
}

// StripFences removes every triple-backtick marker from s.
func StripFences(s string) string {
	return fenceRe.ReplaceAllString(s, "")
}

func decodeObject(s string) (map[string]json.RawMessage, bool) {
	if s == "" {
		return nil, false
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(s), &obj); err != nil || obj == nil {
		return nil, false
	}
	return obj, true
}
