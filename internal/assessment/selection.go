package assessment

import (
	"math/rand"

	"github.com/testiq/backend/internal/catalog"
	"github.com/testiq/backend/internal/models"
)

// defaultQuestionCount is used when a duration or test_type label is
// unrecognized.
const defaultQuestionCount = 10

var durationCounts = map[string]int{
	"short":  5,
	"medium": 10,
	"long":   20,
}

var testTypeCounts = map[string]int{
	"quick":         20,
	"standard":      30,
	"comprehensive": 50,
}

// TargetCount resolves the requested question count from the config's
// duration or test_type label.
func TargetCount(cfg models.TestConfig) int {
	if cfg.TestType != "" {
		if n, ok := testTypeCounts[cfg.TestType]; ok {
			return n
		}
		return defaultQuestionCount
	}
	if n, ok := durationCounts[cfg.Duration]; ok {
		return n
	}
	return defaultQuestionCount
}

// Selector picks question subsets from the catalog. The random source is
// injected so tests can fix the seed.
type Selector struct {
	catalog *catalog.Catalog
	rng     *rand.Rand
}

func NewSelector(c *catalog.Catalog, rng *rand.Rand) *Selector {
	return &Selector{catalog: c, rng: rng}
}

// Select filters and samples the catalog for one session. If the strict
// category+difficulty filter yields fewer than the target count, the
// difficulty constraint is dropped and the filter re-run on category alone.
// A catalog with fewer matches than requested returns what is available.
func (s *Selector) Select(cfg models.TestConfig) []models.QuestionRecord {
	count := TargetCount(cfg)

	// Age/test-type variant: uniform sample of the whole bank.
	if cfg.TestType != "" {
		return s.sample(s.catalog.Questions(), count)
	}

	matchCategory := func(q *models.QuestionRecord) bool {
		for _, t := range cfg.QuestionTypes {
			if t == models.CategoryAll || models.Category(t) == q.Category {
				return true
			}
		}
		return false
	}

	filtered := s.catalog.Filter(func(q *models.QuestionRecord) bool {
		return q.Difficulty == cfg.Difficulty && matchCategory(q)
	})

	if len(filtered) < count {
		filtered = s.catalog.Filter(matchCategory)
	}

	return s.sample(filtered, count)
}

// sample shuffles in place and truncates to at most n records.
func (s *Selector) sample(questions []models.QuestionRecord, n int) []models.QuestionRecord {
	s.rng.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})
	if len(questions) > n {
		questions = questions[:n]
	}
	return questions
}
