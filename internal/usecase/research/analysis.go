package research

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/futig/docgen-backend/internal/entity"
	"github.com/futig/docgen-backend/internal/pkg/prompt"
)

// overviewLimit bounds the overview taken from unstructured model text.
const overviewLimit = 500

// toAnalysis maps summarizer output onto the fixed analysis fields.
func toAnalysis(out *entity.GeneratedContent) entity.MarketAnalysis {
	if out.Degraded {
		return rawAnalysis(out.Raw)
	}

	c := out.Content
	return entity.MarketAnalysis{
		MarketOverview:  textField(c, "market_overview"),
		KeyInsights:     listField(c, "key_insights"),
		MarketSize:      textField(c, "market_size"),
		Competitors:     listField(c, "competitors"),
		Trends:          listField(c, "trends"),
		Opportunities:   listField(c, "opportunities"),
		Challenges:      listField(c, "challenges"),
		Recommendations: listField(c, "recommendations"),
	}
}

// rawAnalysis keeps unparsable model text readable: the first part becomes
// the overview, the next part a single insight.
func rawAnalysis(raw string) entity.MarketAnalysis {
	text := strings.TrimSpace(raw)
	runes := []rune(text)

	a := entity.MarketAnalysis{
		MarketOverview:  text,
		KeyInsights:     []string{text},
		MarketSize:      prompt.DataNotAvailable,
		Competitors:     []string{},
		Trends:          []string{},
		Opportunities:   []string{},
		Challenges:      []string{},
		Recommendations: []string{},
		RawAnalysis:     text,
	}
	if len(runes) > overviewLimit {
		a.MarketOverview = string(runes[:overviewLimit])
		a.KeyInsights = []string{string(runes[overviewLimit:min(len(runes), 2*overviewLimit)])}
	}
	return a
}

func textField(c *entity.StructuredContent, key string) string {
	v, ok := c.Get(key)
	if !ok || v == nil {
		return prompt.DataNotAvailable
	}
	if s := stringify(v); s != "" {
		return s
	}
	return prompt.DataNotAvailable
}

func listField(c *entity.StructuredContent, key string) []string {
	out := []string{}
	v, ok := c.Get(key)
	if !ok {
		return out
	}

	items, isList := v.([]any)
	if !isList {
		items = []any{v}
	}
	for _, item := range items {
		if s := stringify(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// stringify renders list entries the model returned as objects, e.g.
// {"name": "Acme", "description": "..."}, as "Acme: ...".
func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case map[string]any:
		name, _ := t["name"].(string)
		desc, _ := t["description"].(string)
		switch {
		case name != "" && desc != "":
			return name + ": " + desc
		case name != "":
			return name
		}
		data, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(data)
	default:
		return strings.TrimSpace(fmt.Sprint(t))
	}
}
