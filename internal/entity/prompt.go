package entity

// OutputShape is the top-level JSON shape a prompt asks the model for.
type OutputShape int

const (
	ShapeObject OutputShape = iota
	ShapeList
	ShapeText
)

func (s OutputShape) String() string {
	switch s {
	case ShapeObject:
		return "object"
	case ShapeList:
		return "list"
	case ShapeText:
		return "text"
	default:
		return "unknown"
	}
}

// Attachment is binary input sent next to the prompt text.
type Attachment struct {
	Name     string
	MIMEType string
	Data     []byte
}

// PromptSpec is a rendered instruction plus its attachments and the output
// schema the model is told to follow.
type PromptSpec struct {
	Kind        ContentKind
	Instruction string
	Schema      string
	Shape       OutputShape
	Attachments []Attachment
}

// HasImages reports whether the prompt carries binary attachments.
func (p *PromptSpec) HasImages() bool {
	return len(p.Attachments) > 0
}
