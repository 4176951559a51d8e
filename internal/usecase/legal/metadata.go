package legal

import (
	"strings"
	"time"

	"github.com/futig/docgen-backend/internal/entity"
)

const (
	datePlaceholder     = "[DATE]"
	datetimePlaceholder = "[DATETIME]"

	cdaTitle = "CONFIDENTIALITY DISCLOSURE AGREEMENT"
)

// Finalize returns a copy of content with date placeholders replaced in
// every string and the reserved metadata keys set.
func Finalize(content *entity.StructuredContent, kind entity.ContentKind, now time.Time) *entity.StructuredContent {
	date := now.Format(entity.DateLayout)
	datetime := now.Format(entity.DatetimeLayout)
	replacer := strings.NewReplacer(datetimePlaceholder, datetime, datePlaceholder, date)

	out := content.Clone()
	out.Map(func(v any) any { return replaceStrings(v, replacer) })

	if kind == entity.KindCDA {
		out.Set(entity.KeyDocumentTitle, cdaTitle)
	}
	out.Set(entity.KeyDocumentDate, date)
	out.Set(entity.KeyDocumentDatetime, datetime)
	out.Set(entity.KeyGenerationTimestamp, now.Format(time.RFC3339))
	return out
}

func replaceStrings(v any, r *strings.Replacer) any {
	switch t := v.(type) {
	case string:
		return r.Replace(t)
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[k] = replaceStrings(item, r)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = replaceStrings(item, r)
		}
		return out
	default:
		return v
	}
}
