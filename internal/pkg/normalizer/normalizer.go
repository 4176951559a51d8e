package normalizer

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/futig/docgen-backend/internal/entity"
)

// Confidence reported for parsed and substituted content.
const (
	ParsedConfidence   = 0.85
	FallbackConfidence = 0.3
)

// Status tags the outcome of a single parse attempt.
type Status int

const (
	StatusParseFailure Status = iota
	StatusShapeMismatch
	StatusParsed
)

func (s Status) String() string {
	switch s {
	case StatusParsed:
		return "parsed"
	case StatusShapeMismatch:
		return "shape_mismatch"
	default:
		return "parse_failure"
	}
}

// Attempt is the result of one step of the parser chain.
type Attempt struct {
	Step   string
	Status Status
	Value  json.RawMessage
}

type step struct {
	name  string
	input func(trimmed, unfenced string, shape entity.OutputShape) string
}

// Steps run in order; the first one that parses decides the outcome.
var steps = []step{
	{name: "direct", input: func(trimmed, _ string, _ entity.OutputShape) string { return trimmed }},
	{name: "fence", input: func(_, unfenced string, _ entity.OutputShape) string { return unfenced }},
	{name: "span", input: func(_, unfenced string, shape entity.OutputShape) string { return ShapeSpan(unfenced, shape) }},
}

// Extract runs the parser chain over raw model text. A value of the wrong
// shape stops the chain with StatusShapeMismatch. A list shape accepts a
// single object, which is wrapped into a one-element list.
func Extract(raw string, shape entity.OutputShape) Attempt {
	trimmed := strings.TrimSpace(raw)
	unfenced := StripFence(trimmed)

	last := Attempt{Step: "none", Status: StatusParseFailure}
	for _, s := range steps {
		candidate := strings.TrimSpace(s.input(trimmed, unfenced, shape))
		if candidate == "" {
			continue
		}
		if !json.Valid([]byte(candidate)) {
			last = Attempt{Step: s.name, Status: StatusParseFailure}
			continue
		}
		return checkShape(s.name, json.RawMessage(candidate), shape)
	}
	return last
}

func checkShape(name string, value json.RawMessage, shape entity.OutputShape) Attempt {
	switch value[0] {
	case '{':
		if shape == entity.ShapeList {
			wrapped := make([]byte, 0, len(value)+2)
			wrapped = append(wrapped, '[')
			wrapped = append(wrapped, value...)
			wrapped = append(wrapped, ']')
			return Attempt{Step: name, Status: StatusParsed, Value: wrapped}
		}
		return Attempt{Step: name, Status: StatusParsed, Value: value}
	case '[':
		if shape == entity.ShapeList {
			return Attempt{Step: name, Status: StatusParsed, Value: value}
		}
	}
	return Attempt{Step: name, Status: StatusShapeMismatch, Value: value}
}

// StripFence removes a surrounding triple-backtick fence with or without a
// language tag. Text without a leading fence is returned unchanged.
func StripFence(text string) string {
	t := strings.TrimSpace(text)
	if !strings.HasPrefix(t, "```") {
		return t
	}
	t = t[3:]
	if nl := strings.IndexByte(t, '\n'); nl >= 0 {
		tag := strings.TrimSpace(t[:nl])
		if !strings.ContainsAny(tag, "{[") {
			t = t[nl+1:]
		}
	} else {
		t = strings.TrimLeft(t, "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")
	}
	t = strings.TrimSpace(t)
	t = strings.TrimSuffix(t, "```")
	return strings.TrimSpace(t)
}

// ShapeSpan scans every balanced span in text, left to right, and returns
// the first one that is valid JSON of the wanted shape. Object shapes only
// consider spans opened by '{'. List shapes take a '{' span or a '[' span
// holding at least one object, so bracketed prose like "[1]" is skipped.
func ShapeSpan(text string, shape entity.OutputShape) string {
	openers := "{"
	if shape == entity.ShapeList {
		openers = "{["
	}

	for i := 0; i < len(text); i++ {
		if strings.IndexByte(openers, text[i]) < 0 {
			continue
		}
		span := spanAt(text, i)
		if span == "" || !json.Valid([]byte(span)) {
			continue
		}
		if span[0] == '[' && !holdsObject(span) {
			continue
		}
		return span
	}
	return ""
}

func holdsObject(list string) bool {
	var items []json.RawMessage
	if err := json.Unmarshal([]byte(list), &items); err != nil {
		return false
	}
	for _, item := range items {
		if IsObject(item) {
			return true
		}
	}
	return false
}

// spanAt returns the balanced span opened at text[start], ignoring brackets
// inside JSON strings. It returns "" when the span never closes.
func spanAt(text string, start int) string {
	var stack []byte
	inString, escaped := false, false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			stack = append(stack, '}')
		case '[':
			stack = append(stack, ']')
		case '}', ']':
			if len(stack) == 0 || stack[len(stack)-1] != c {
				return ""
			}
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				return text[start : i+1]
			}
		}
	}
	return ""
}

// ObjectResult is normalized object-shaped output.
type ObjectResult struct {
	Content    *entity.StructuredContent
	Attempt    Attempt
	Confidence float64
	Degraded   bool
}

// NormalizeObject parses raw into StructuredContent, substituting fallback()
// when the chain does not produce an object. It never fails.
func NormalizeObject(raw string, fallback func() *entity.StructuredContent) ObjectResult {
	attempt := Extract(raw, entity.ShapeObject)
	if attempt.Status == StatusParsed {
		content := entity.NewStructuredContent()
		if err := json.Unmarshal(attempt.Value, content); err == nil {
			return ObjectResult{Content: content, Attempt: attempt, Confidence: ParsedConfidence}
		}
		attempt.Status = StatusParseFailure
	}

	return ObjectResult{
		Content:    fallback(),
		Attempt:    attempt,
		Confidence: FallbackConfidence,
		Degraded:   true,
	}
}

// ListResult is normalized list-shaped output.
type ListResult struct {
	Items      []json.RawMessage
	Attempt    Attempt
	Confidence float64
	Degraded   bool
}

// NormalizeList parses raw into list items, substituting fallback(raw) when
// the chain does not produce a list or object. It never fails.
func NormalizeList(raw string, fallback func(raw string) []json.RawMessage) ListResult {
	attempt := Extract(raw, entity.ShapeList)
	if attempt.Status == StatusParsed {
		var items []json.RawMessage
		if err := json.Unmarshal(attempt.Value, &items); err == nil {
			return ListResult{Items: items, Attempt: attempt, Confidence: ParsedConfidence}
		}
		attempt.Status = StatusParseFailure
	}

	return ListResult{
		Items:      fallback(raw),
		Attempt:    attempt,
		Confidence: FallbackConfidence,
		Degraded:   true,
	}
}

// NormalizeText trims model text and strips a fence if one wraps it.
func NormalizeText(raw string) string {
	return StripFence(strings.TrimSpace(raw))
}

// IsObject reports whether an item decodes as a JSON object.
func IsObject(item json.RawMessage) bool {
	trimmed := bytes.TrimSpace(item)
	return len(trimmed) > 0 && trimmed[0] == '{'
}
