package insight

import (
	"strings"

	"github.com/futig/docgen-backend/internal/entity"
)

const (
	// MaxPerList caps every extracted list.
	MaxPerList = 5
	// minLineLength is the shortest line kept; shorter ones are headings or stray bullets.
	minLineLength = 10
)

var (
	recommendationMarkers = []string{"recommend", "suggest", "should", "consider"}
	insightMarkers        = []string{"insight", "key finding", "important", "note that"}
	actionMarkers         = []string{"action", "implement", "start", "begin", "next step"}
)

// Recommendations returns lines that read as advice.
func Recommendations(text string) []string {
	return extract(text, recommendationMarkers)
}

// Findings returns lines that read as insights.
func Findings(text string) []string {
	return extract(text, insightMarkers)
}

// ActionItems returns lines that read as concrete steps.
func ActionItems(text string) []string {
	return extract(text, actionMarkers)
}

// Extract runs all three extractions over the same text.
func Extract(text string) entity.Insights {
	return entity.Insights{
		Recommendations: Recommendations(text),
		Insights:        Findings(text),
		ActionItems:     ActionItems(text),
	}
}

func extract(text string, markers []string) []string {
	out := []string{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if len(line) < minLineLength {
			continue
		}
		lower := strings.ToLower(line)
		for _, m := range markers {
			if strings.Contains(lower, m) {
				out = append(out, line)
				break
			}
		}
		if len(out) == MaxPerList {
			break
		}
	}
	return out
}
