package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/testiq/backend/internal/models"
)

// Catalog is the fixed question bank, loaded once at startup. It is
// read-only afterwards and safe for concurrent use.
type Catalog struct {
	questions []models.QuestionRecord
}

// Load reads the question bank from a JSON asset and validates every record.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var questions []models.QuestionRecord
	if err := json.Unmarshal(data, &questions); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("catalog %s contains no questions", path)
	}

	return New(questions)
}

// New builds a catalog from already-decoded records, validating each one.
func New(questions []models.QuestionRecord) (*Catalog, error) {
	for i := range questions {
		if err := validate(&questions[i]); err != nil {
			return nil, fmt.Errorf("catalog question %d: %w", i, err)
		}
	}
	return &Catalog{questions: questions}, nil
}

func validate(q *models.QuestionRecord) error {
	if q.QuestionText == "" {
		return fmt.Errorf("empty question text")
	}
	if len(q.Options) == 0 {
		return fmt.Errorf("no answer options")
	}
	if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
		return fmt.Errorf("correct_answer %d out of range for %d options", q.CorrectAnswer, len(q.Options))
	}
	if !models.ValidCategories[q.Category] {
		return fmt.Errorf("unknown category %q", q.Category)
	}
	if !models.ValidDifficulties[q.Difficulty] {
		return fmt.Errorf("unknown difficulty %q", q.Difficulty)
	}
	if q.Weight < 0 {
		return fmt.Errorf("negative weight %d", q.Weight)
	}
	return nil
}

func (c *Catalog) Len() int {
	return len(c.questions)
}

// Questions returns a copy of the full bank so callers can reorder freely.
func (c *Catalog) Questions() []models.QuestionRecord {
	out := make([]models.QuestionRecord, len(c.questions))
	copy(out, c.questions)
	return out
}

// Filter returns the records matching the predicate, in catalog order.
func (c *Catalog) Filter(keep func(*models.QuestionRecord) bool) []models.QuestionRecord {
	var out []models.QuestionRecord
	for i := range c.questions {
		if keep(&c.questions[i]) {
			out = append(out, c.questions[i])
		}
	}
	return out
}
