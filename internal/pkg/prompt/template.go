package prompt

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/futig/docgen-backend/internal/entity"
)

const (
	noFencesRule = "Do not wrap the output in markdown code fences and do not add any conversational text before or after it."
	jsonIntro    = "Return ONLY valid JSON with exactly this structure:"
	textIntro    = "Structure your answer as plain text covering, in order:"
	textRule     = "Write plain text paragraphs and simple numbered or dashed lists. Do not use markdown code fences."
)

// Template is a prompt for one content kind, parameterized by a typed record.
type Template struct {
	Name        string
	Aliases     []string
	Kind        entity.ContentKind
	Title       string
	Description string
	// Category and FilePrefix name rendered artifacts: <category>/<prefix>_<slug>.
	Category   string
	FilePrefix string

	Role          string
	FieldsHeading string
	Task          string
	Schema        string
	Rules         []string
	Shape         entity.OutputShape

	NewRecord    func() entity.Record
	Fallback     func(rec entity.Record) *entity.StructuredContent
	ListFallback func(raw string) []json.RawMessage
}

// Build renders the prompt. Output depends only on the request; the current
// date, when wanted, is injected by the caller through req.Now.
func (t *Template) Build(req *entity.ContentRequest) *entity.PromptSpec {
	var b strings.Builder

	b.WriteString(t.Role)
	b.WriteString("\n\n")

	if !req.Now.IsZero() {
		fmt.Fprintf(&b, "Today's date is %s. Use it wherever the output needs the current date.\n\n", req.Now.Format(entity.DateLayout))
	}

	if req.Record != nil {
		heading := t.FieldsHeading
		if heading == "" {
			heading = "Information"
		}
		fmt.Fprintf(&b, "%s:\n", heading)
		for _, f := range req.Record.Fields() {
			fmt.Fprintf(&b, "- %s: %s\n", f.Label, f.Value)
		}
		b.WriteString("\n")
	}

	if t.Task != "" {
		b.WriteString(t.Task)
		b.WriteString("\n\n")
	}

	if t.Shape == entity.ShapeText {
		b.WriteString(textIntro)
		b.WriteString("\n")
		b.WriteString(t.Schema)
		b.WriteString("\n\n")
	} else {
		b.WriteString(jsonIntro)
		b.WriteString("\n")
		b.WriteString(t.Schema)
		b.WriteString("\n\n")
	}

	for _, rule := range t.Rules {
		b.WriteString(rule)
		b.WriteString("\n")
	}

	if t.Shape == entity.ShapeText {
		b.WriteString(textRule)
	} else {
		b.WriteString(noFencesRule)
	}

	return &entity.PromptSpec{
		Kind:        t.Kind,
		Instruction: b.String(),
		Schema:      t.Schema,
		Shape:       t.Shape,
		Attachments: req.Attachments,
	}
}

// FallbackContent returns the fixed content substituted for unparsable
// object output. Templates without one degrade to an empty structure.
func (t *Template) FallbackContent(rec entity.Record) *entity.StructuredContent {
	if t.Fallback == nil {
		return entity.NewStructuredContent()
	}
	return t.Fallback(rec)
}

// FallbackItems returns the fixed items substituted for unparsable list output.
func (t *Template) FallbackItems(raw string) []json.RawMessage {
	if t.ListFallback == nil {
		return []json.RawMessage{}
	}
	return t.ListFallback(raw)
}

// Record decodes a JSON payload into a fresh record of the template's type.
// Unknown fields are ignored; an empty payload yields an empty record.
func (t *Template) Record(payload json.RawMessage) (entity.Record, error) {
	if t.NewRecord == nil {
		return nil, fmt.Errorf("%w: %s takes no input record", entity.ErrUnsupportedContentType, t.Name)
	}
	rec := t.NewRecord()
	if len(payload) == 0 || string(payload) == "null" {
		return rec, nil
	}
	if err := json.Unmarshal(payload, rec); err != nil {
		return nil, fmt.Errorf("%w: %s info: %v", entity.ErrInvalidParameter, t.Name, err)
	}
	return rec, nil
}

// FieldNames lists the JSON names of the record's fields.
func (t *Template) FieldNames() []string {
	if t.NewRecord == nil {
		return nil
	}
	data, err := json.Marshal(t.NewRecord())
	if err != nil {
		return nil
	}
	var c entity.StructuredContent
	if err := json.Unmarshal(data, &c); err != nil {
		return nil
	}
	names := make([]string, 0, c.Len())
	for _, s := range c.Sections() {
		names = append(names, s.Key)
	}
	return names
}

func recordAs[T any](rec entity.Record) *T {
	if v, ok := any(rec).(*T); ok && v != nil {
		return v
	}
	return new(T)
}

// section is a {"title", "content"} pair used by legal templates.
func section(title, content string) map[string]any {
	return map[string]any{"title": title, "content": content}
}
