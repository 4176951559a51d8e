package normalizer

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/futig/docgen-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fallbackContent() *entity.StructuredContent {
	c := entity.NewStructuredContent()
	c.Set("fallback", map[string]any{"title": "Fallback", "content": "canned"})
	return c
}

func TestNormalizeObjectFenceIsTransparent(t *testing.T) {
	payload := `{"introduction": {"title": "Intro", "content": "Text"}, "remedies": {"title": "Remedies", "content": "More"}}`

	var want map[string]any
	require.NoError(t, json.Unmarshal([]byte(payload), &want))

	inputs := map[string]string{
		"plain":           payload,
		"padded":          "\n\n  " + payload + "  \n",
		"fenced":          "```\n" + payload + "\n```",
		"fenced with tag": "```json\n" + payload + "\n```",
		"single line":     "```json " + payload + "```",
		"prose":           "Sure! Here is the document:\n" + payload + "\nLet me know if you need changes.",
		"prose and fence": "Here you go:\n```json\n" + payload + "\n```\nThanks",
	}

	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			res := NormalizeObject(input, fallbackContent)
			assert.Equal(t, StatusParsed, res.Attempt.Status)
			assert.False(t, res.Degraded)
			assert.Equal(t, ParsedConfidence, res.Confidence)
			assert.Equal(t, want, res.Content.ToMap())

			keys := []string{}
			for _, s := range res.Content.Sections() {
				keys = append(keys, s.Key)
			}
			assert.Equal(t, []string{"introduction", "remedies"}, keys)
		})
	}
}

func TestNormalizeObjectGarbageFallsBack(t *testing.T) {
	inputs := []string{
		"",
		"I'm sorry, I cannot help with that.",
		"{not json at all",
		"```json\n{\"a\": }\n```",
		`["a", "list", "instead"]`,
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			var res ObjectResult
			assert.NotPanics(t, func() {
				res = NormalizeObject(input, fallbackContent)
			})
			assert.True(t, res.Degraded)
			assert.Equal(t, fallbackContent().ToMap(), res.Content.ToMap())
			assert.Less(t, res.Confidence, ParsedConfidence)
		})
	}
}

func TestExtractTagsShapeMismatch(t *testing.T) {
	attempt := Extract(`[{"a": 1}]`, entity.ShapeObject)
	assert.Equal(t, StatusShapeMismatch, attempt.Status)
	assert.Equal(t, "direct", attempt.Step)

	attempt = Extract("no json here", entity.ShapeObject)
	assert.Equal(t, StatusParseFailure, attempt.Status)

	attempt = Extract("text {\"a\": \"}\"} tail", entity.ShapeObject)
	assert.Equal(t, StatusParsed, attempt.Status)
	assert.Equal(t, "span", attempt.Step)
	assert.JSONEq(t, `{"a": "}"}`, string(attempt.Value))
}

func TestNormalizeListWrapsSingleObject(t *testing.T) {
	fallback := func(raw string) []json.RawMessage {
		return []json.RawMessage{json.RawMessage(`{"extracted_text": "fallback"}`)}
	}

	res := NormalizeList("```json\n{\"vendor_name\": \"Acme\"}\n```", fallback)
	require.Len(t, res.Items, 1)
	assert.False(t, res.Degraded)
	assert.JSONEq(t, `{"vendor_name": "Acme"}`, string(res.Items[0]))

	res = NormalizeList(`[{"vendor_name": "A"}, {"vendor_name": "B"}]`, fallback)
	assert.Len(t, res.Items, 2)

	res = NormalizeList("total: twelve dollars", fallback)
	assert.True(t, res.Degraded)
	assert.Equal(t, FallbackConfidence, res.Confidence)
	require.Len(t, res.Items, 1)
	assert.True(t, IsObject(res.Items[0]))
}

func TestSpanAt(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "abc", want: ""},
		{in: "x {\"a\": [1, 2]} y {\"b\": 2}", want: "{\"a\": [1, 2]}"},
		{in: "x [1, {\"a\": \"]\"}] y", want: "[1, {\"a\": \"]\"}]"},
		{in: "x {\"a\": 1", want: ""},
		{in: "x {\"a\": \"\\\"}\"} y", want: "{\"a\": \"\\\"}\"}"},
	}

	for _, tt := range tests {
		start := strings.IndexAny(tt.in, "{[")
		if start < 0 {
			assert.Empty(t, tt.want, tt.in)
			continue
		}
		assert.Equal(t, tt.want, spanAt(tt.in, start), tt.in)
	}
}

func TestNormalizeObjectSkipsBracketedProse(t *testing.T) {
	const body = `{"title": {"title": "NDA", "content": "Between Acme and Globex"}}`
	inputs := []string{
		"Here is the NDA [as requested]: " + body,
		"Sections [1] and [2] follow. " + body,
		"Draft {v2} below:\n" + body + "\nLet me know [if needed].",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			res := NormalizeObject(input, fallbackContent)
			assert.False(t, res.Degraded)
			assert.Equal(t, "span", res.Attempt.Step)
			assert.Equal(t, StatusParsed, res.Attempt.Status)
			assert.Equal(t, ParsedConfidence, res.Confidence)
			assert.Equal(t, []string{"title"}, sectionKeys(res.Content))
		})
	}
}

func TestShapeSpan(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		shape entity.OutputShape
		want  string
	}{
		{name: "object after citation", in: `see [1] then {"a": 1}`, shape: entity.ShapeObject, want: `{"a": 1}`},
		{name: "object after invalid braces", in: `use {name} as {"a": 1}`, shape: entity.ShapeObject, want: `{"a": 1}`},
		{name: "no object", in: `only [1, 2]`, shape: entity.ShapeObject, want: ""},
		{name: "list of objects", in: `items [1]: [{"a": 1}, {"b": 2}]`, shape: entity.ShapeList, want: `[{"a": 1}, {"b": 2}]`},
		{name: "list falls back to object", in: `see [1] {"a": 1}`, shape: entity.ShapeList, want: `{"a": 1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShapeSpan(tt.in, tt.shape))
		})
	}
}

func TestNormalizeListSkipsBracketedProse(t *testing.T) {
	fallback := func(raw string) []json.RawMessage {
		return []json.RawMessage{json.RawMessage(`{"extracted_text": "fallback"}`)}
	}

	res := NormalizeList(`Receipts [2 of 2]: [{"vendor_name": "A"}, {"vendor_name": "B"}]`, fallback)
	assert.False(t, res.Degraded)
	assert.Len(t, res.Items, 2)
}

func TestStripFence(t *testing.T) {
	assert.Equal(t, "plain", StripFence("plain"))
	assert.Equal(t, "{}", StripFence("```json\n{}\n```"))
	assert.Equal(t, "{}", StripFence("```\n{}\n```"))
	assert.Equal(t, "hello", NormalizeText("  ```text\nhello\n```  "))
}

func sectionKeys(c *entity.StructuredContent) []string {
	keys := []string{}
	for _, s := range c.Sections() {
		keys = append(keys, s.Key)
	}
	return keys
}
