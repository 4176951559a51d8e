package knowledge

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/futig/docgen-backend/internal/entity"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const (
	TopicStartupBasics = "startup_basics"
	TopicLegalClauses  = "legal_clauses"
	TopicFundingTypes  = "funding_types"

	// excerptLength bounds how much of one entry goes into a prompt.
	excerptLength = 500
	noContext     = "No specific context found."
)

// Builtin returns the topics every snapshot starts with.
func Builtin() []entity.KnowledgeEntry {
	return []entity.KnowledgeEntry{
		{
			Topic: TopicStartupBasics,
			Text: "Startup fundamentals include: business model validation, market research, MVP development, " +
				"funding strategies, legal structure, team building, and growth planning. " +
				"Key stages: ideation, validation, MVP, growth, scaling.",
		},
		{
			Topic: TopicLegalClauses,
			Text: "Common startup legal clauses: equity distribution, vesting schedules, non-disclosure agreements, " +
				"employment terms, intellectual property rights, investment terms, board composition, liquidation preferences.",
		},
		{
			Topic: TopicFundingTypes,
			Text: "Startup funding stages: Pre-seed, Seed, Series A/B/C, Bridge rounds. " +
				"Funding sources: bootstrapping, friends & family, angel investors, venture capital, crowdfunding, government grants.",
		},
	}
}

// Snapshot is an immutable topic -> text mapping. It is safe for concurrent
// readers; a changed knowledge base means building a new Snapshot.
type Snapshot struct {
	topics  []string
	entries map[string]string
}

// NewSnapshot copies entries. A later entry replaces an earlier one with the
// same topic.
func NewSnapshot(entries ...entity.KnowledgeEntry) *Snapshot {
	s := &Snapshot{entries: make(map[string]string, len(entries))}
	for _, e := range entries {
		topic := strings.TrimSpace(e.Topic)
		text := strings.TrimSpace(e.Text)
		if topic == "" || text == "" {
			continue
		}
		if _, ok := s.entries[topic]; !ok {
			s.topics = append(s.topics, topic)
		}
		s.entries[topic] = text
	}
	return s
}

// Load builds a snapshot from the built-in topics plus *.txt and *.yaml files
// in dir. A missing dir is not an error; unreadable files are logged and skipped.
func Load(dir string, logger *zap.Logger) (*Snapshot, error) {
	entries := Builtin()
	if dir == "" {
		return NewSnapshot(entries...), nil
	}

	if _, err := os.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			logger.Warn("knowledge base directory not found, using built-in topics", zap.String("dir", dir))
			return NewSnapshot(entries...), nil
		}
		return nil, fmt.Errorf("stat knowledge base: %w", err)
	}

	files, err := listFiles(dir)
	if err != nil {
		return nil, err
	}

	for _, path := range files {
		loaded, err := loadFile(path)
		if err != nil {
			logger.Error("failed to load knowledge base file", zap.String("file", path), zap.Error(err))
			continue
		}
		entries = append(entries, loaded...)
		logger.Info("loaded knowledge base file", zap.String("file", filepath.Base(path)), zap.Int("entries", len(loaded)))
	}

	s := NewSnapshot(entries...)
	logger.Info("knowledge base loaded", zap.Int("topics", s.Len()))
	return s, nil
}

func listFiles(dir string) ([]string, error) {
	var files []string
	for _, pattern := range []string{"*.txt", "*.yaml", "*.yml"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, fmt.Errorf("glob knowledge base: %w", err)
		}
		files = append(files, matches...)
	}
	sort.Strings(files)
	return files, nil
}

func loadFile(path string) ([]entity.KnowledgeEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if filepath.Ext(path) == ".txt" {
		topic := strings.TrimSuffix(filepath.Base(path), ".txt")
		return []entity.KnowledgeEntry{{Topic: topic, Text: string(data)}}, nil
	}

	var list []entity.KnowledgeEntry
	if err := yaml.Unmarshal(data, &list); err == nil {
		return list, nil
	}

	var single entity.KnowledgeEntry
	if err := yaml.Unmarshal(data, &single); err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrInvalidFormat, err)
	}
	if single.Topic == "" {
		single.Topic = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return []entity.KnowledgeEntry{single}, nil
}

func (s *Snapshot) Len() int {
	return len(s.topics)
}

// Get returns the text of a topic.
func (s *Snapshot) Get(topic string) (string, bool) {
	text, ok := s.entries[topic]
	return text, ok
}

// Topics returns topic names in load order.
func (s *Snapshot) Topics() []string {
	out := make([]string, len(s.topics))
	copy(out, s.topics)
	return out
}

// Match is one retrieved entry.
type Match struct {
	Topic   string
	Excerpt string
}

// Retrieve returns entries whose text contains any word of the query,
// in load order.
func (s *Snapshot) Retrieve(query string) []Match {
	words := strings.Fields(strings.ToLower(query))
	if len(words) == 0 {
		return nil
	}

	var matches []Match
	for _, topic := range s.topics {
		text := s.entries[topic]
		lower := strings.ToLower(text)
		for _, w := range words {
			if strings.Contains(lower, w) {
				matches = append(matches, Match{Topic: topic, Excerpt: excerpt(text)})
				break
			}
		}
	}
	return matches
}

// Context renders matches as prompt reference text.
func Context(matches []Match) string {
	if len(matches) == 0 {
		return noContext
	}
	parts := make([]string, 0, len(matches))
	for _, m := range matches {
		parts = append(parts, fmt.Sprintf("From %s: %s", m.Topic, m.Excerpt))
	}
	return strings.Join(parts, "\n\n")
}

// Sources lists matched topics without duplicates.
func Sources(matches []Match) []string {
	out := []string{}
	seen := make(map[string]struct{}, len(matches))
	for _, m := range matches {
		if _, ok := seen[m.Topic]; ok {
			continue
		}
		seen[m.Topic] = struct{}{}
		out = append(out, m.Topic)
	}
	return out
}

func excerpt(text string) string {
	r := []rune(text)
	if len(r) <= excerptLength {
		return text
	}
	return string(r[:excerptLength]) + "..."
}
