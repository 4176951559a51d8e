package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Reserved metadata keys. Renderers skip them when walking sections.
const (
	KeyDocumentTitle       = "document_title"
	KeyDocumentDate        = "document_date"
	KeyDocumentDatetime    = "document_datetime"
	KeyGenerationTimestamp = "generation_timestamp"
)

// IsReservedKey reports whether key holds document metadata rather than a section.
func IsReservedKey(key string) bool {
	switch key {
	case KeyDocumentTitle, KeyDocumentDate, KeyDocumentDatetime, KeyGenerationTimestamp:
		return true
	default:
		return false
	}
}

// Section is one top-level entry of StructuredContent.
type Section struct {
	Key   string
	Value any
}

// StructuredContent is a JSON object whose top-level keys keep their
// insertion order. Nested values are plain decoded JSON.
type StructuredContent struct {
	sections []Section
	index    map[string]int
}

func NewStructuredContent() *StructuredContent {
	return &StructuredContent{index: make(map[string]int)}
}

func (c *StructuredContent) Len() int {
	if c == nil {
		return 0
	}
	return len(c.sections)
}

// Sections returns the entries in insertion order.
func (c *StructuredContent) Sections() []Section {
	if c == nil {
		return nil
	}
	out := make([]Section, len(c.sections))
	copy(out, c.sections)
	return out
}

func (c *StructuredContent) Get(key string) (any, bool) {
	if c == nil {
		return nil, false
	}
	i, ok := c.index[key]
	if !ok {
		return nil, false
	}
	return c.sections[i].Value, true
}

// Set replaces an existing value in place or appends a new key.
func (c *StructuredContent) Set(key string, value any) {
	if c.index == nil {
		c.index = make(map[string]int)
	}
	if i, ok := c.index[key]; ok {
		c.sections[i].Value = value
		return
	}
	c.index[key] = len(c.sections)
	c.sections = append(c.sections, Section{Key: key, Value: value})
}

// String returns the value for key when it is a non-empty string.
func (c *StructuredContent) String(key string) string {
	v, ok := c.Get(key)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// Section returns the value for key when it is a JSON object.
func (c *StructuredContent) Section(key string) map[string]any {
	v, ok := c.Get(key)
	if !ok {
		return nil
	}
	m, _ := v.(map[string]any)
	return m
}

// ToMap drops ordering.
func (c *StructuredContent) ToMap() map[string]any {
	out := make(map[string]any, c.Len())
	if c == nil {
		return out
	}
	for _, s := range c.sections {
		out[s.Key] = s.Value
	}
	return out
}

// Map applies fn to every top-level value.
func (c *StructuredContent) Map(fn func(any) any) {
	if c == nil {
		return
	}
	for i := range c.sections {
		c.sections[i].Value = fn(c.sections[i].Value)
	}
}

func (c *StructuredContent) Clone() *StructuredContent {
	out := NewStructuredContent()
	for _, s := range c.Sections() {
		out.Set(s.Key, s.Value)
	}
	return out
}

func (c *StructuredContent) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("%w: structured content must be a JSON object", ErrInvalidFormat)
	}

	c.sections = nil
	c.index = make(map[string]int)

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("%w: unexpected token %v", ErrInvalidFormat, tok)
		}

		var value any
		if err := dec.Decode(&value); err != nil {
			return err
		}
		c.Set(key, value)
	}

	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

func (c *StructuredContent) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, s := range c.Sections() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(s.Key)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(s.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
