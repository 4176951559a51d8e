package entity

import (
	"bytes"
	"encoding/json"
	"strings"
)

// NotProvided is rendered in place of any absent request field.
const NotProvided = "N/A"

// FieldValue is a request field rendered as prompt text. It accepts any JSON
// value: strings are kept as-is, string lists are joined with ", ", anything
// else keeps its compact JSON form.
type FieldValue string

func (v *FieldValue) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*v = ""
		return nil
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*v = FieldValue(strings.TrimSpace(s))
		return nil
	case '[':
		var list []string
		if err := json.Unmarshal(trimmed, &list); err == nil {
			*v = FieldValue(strings.Join(list, ", "))
			return nil
		}
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, trimmed); err != nil {
		return err
	}
	*v = FieldValue(buf.String())
	return nil
}

// IsSet reports whether the field carries a non-empty value.
func (v FieldValue) IsSet() bool {
	return strings.TrimSpace(string(v)) != ""
}

// Or returns the value, or fallback when the field is absent.
func (v FieldValue) Or(fallback string) string {
	if !v.IsSet() {
		return fallback
	}
	return string(v)
}

// String renders the value with the NotProvided placeholder.
func (v FieldValue) String() string {
	return v.Or(NotProvided)
}

// Field is a labelled request value enumerated into prompts.
type Field struct {
	Label string
	Value FieldValue
}
