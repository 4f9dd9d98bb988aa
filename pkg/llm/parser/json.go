package parser

import (
	"errors"
	"strings"
)

// ErrNoJSONObject is returned when a response contains no brace-delimited object.
var ErrNoJSONObject = errors.New("no JSON object found in response")

// ExtractObject returns the span from the first '{' to the last '}' in text,
// after removing thinking blocks and markdown code fences. The span is not
// validated; callers decode it and handle syntax errors themselves.
func ExtractObject(text string) (string, error) {
	text = StripThinking(text)
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end < start {
		return "", ErrNoJSONObject
	}
	return text[start : end+1], nil
}
