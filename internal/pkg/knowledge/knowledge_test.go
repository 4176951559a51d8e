package knowledge

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/futig/docgen-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoadMergesFilesWithBuiltins(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "safe_notes.txt"), []byte("A SAFE converts to equity at the next priced round."), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "topics.yaml"), []byte(`
- topic: accelerators
  text: Accelerators trade a small equity stake for mentorship and demo day access.
- topic: funding_types
  text: Overridden funding text.
`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("topic: [unterminated"), 0o644))

	s, err := Load(dir, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, []string{TopicStartupBasics, TopicLegalClauses, TopicFundingTypes, "safe_notes", "accelerators"}, s.Topics())

	text, ok := s.Get(TopicFundingTypes)
	require.True(t, ok)
	assert.Equal(t, "Overridden funding text.", text)
}

func TestLoadMissingDirUsesBuiltins(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "absent"), zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, len(Builtin()), s.Len())
}

func TestRetrieve(t *testing.T) {
	s := NewSnapshot(Builtin()...)

	matches := s.Retrieve("How do vesting schedules work?")
	assert.Equal(t, []string{TopicLegalClauses}, Sources(matches))
	assert.Contains(t, Context(matches), "From legal_clauses: Common startup legal clauses")

	assert.Empty(t, s.Retrieve("   "))
	assert.Equal(t, noContext, Context(nil))
}

func TestSnapshotIgnoresEmptyEntries(t *testing.T) {
	s := NewSnapshot(entity.KnowledgeEntry{Topic: "", Text: "x"}, entity.KnowledgeEntry{Topic: "a", Text: " "})
	assert.Equal(t, 0, s.Len())
}
