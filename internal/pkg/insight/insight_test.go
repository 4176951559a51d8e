package insight

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	text := strings.Join([]string{
		"## Summary",
		"We recommend cutting cloud spend by 20%.",
		"Should do",
		"Key finding: marketing CAC doubled since Q2.",
		"It is important to extend runway past 18 months.",
		"Next step: renegotiate the office lease.",
		"Implement weekly burn reviews with the team.",
	}, "\n")

	got := Extract(text)
	assert.Equal(t, []string{"We recommend cutting cloud spend by 20%."}, got.Recommendations)
	assert.Equal(t, []string{
		"Key finding: marketing CAC doubled since Q2.",
		"It is important to extend runway past 18 months.",
	}, got.Insights)
	assert.Equal(t, []string{
		"Next step: renegotiate the office lease.",
		"Implement weekly burn reviews with the team.",
	}, got.ActionItems)
}

func TestExtractCapsAndDropsShortLines(t *testing.T) {
	var lines []string
	for i := 0; i < 8; i++ {
		lines = append(lines, fmt.Sprintf("You should consider option %d carefully.", i))
	}
	lines = append(lines, "  should  ")

	got := Recommendations(strings.Join(lines, "\n"))
	assert.Len(t, got, MaxPerList)
	assert.Equal(t, "You should consider option 0 carefully.", got[0])

	assert.Empty(t, ActionItems("nothing to see here at all"))
	assert.NotNil(t, ActionItems(""))
}

func TestExtractKeepsTenCharacterLines(t *testing.T) {
	text := "I suggest.\nsuggest it"
	assert.Equal(t, []string{"I suggest.", "suggest it"}, Recommendations(text))
	assert.Empty(t, Recommendations("suggest X"))
}
