package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/testiq/backend/internal/models"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "questions.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeCatalog(t, `[
		{"question_text": "2+2?", "options": ["3", "4"], "correct_answer": 1, "category": "math", "difficulty": "easy"},
		{"question_text": "odd one out", "options": ["a", "b", "c"], "correct_answer": 0, "category": "verbal", "difficulty": "hard", "weight": 2}
	]`)

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Len() != 2 {
		t.Errorf("Len = %d, want 2", c.Len())
	}

	qs := c.Questions()
	if qs[0].EffectiveWeight() != 1 {
		t.Errorf("default weight = %d, want 1", qs[0].EffectiveWeight())
	}
	if qs[1].EffectiveWeight() != 2 {
		t.Errorf("explicit weight = %d, want 2", qs[1].EffectiveWeight())
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadEmptyBank(t *testing.T) {
	path := writeCatalog(t, `[]`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for empty catalog")
	}
}

func TestLoadRejectsBadRecords(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			"answer index out of range",
			`[{"question_text": "q", "options": ["a", "b"], "correct_answer": 2, "category": "math", "difficulty": "easy"}]`,
		},
		{
			"negative answer index",
			`[{"question_text": "q", "options": ["a", "b"], "correct_answer": -1, "category": "math", "difficulty": "easy"}]`,
		},
		{
			"no options",
			`[{"question_text": "q", "options": [], "correct_answer": 0, "category": "math", "difficulty": "easy"}]`,
		},
		{
			"unknown category",
			`[{"question_text": "q", "options": ["a"], "correct_answer": 0, "category": "trivia", "difficulty": "easy"}]`,
		},
		{
			"unknown difficulty",
			`[{"question_text": "q", "options": ["a"], "correct_answer": 0, "category": "math", "difficulty": "brutal"}]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeCatalog(t, tt.content)
			if _, err := Load(path); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestFilter(t *testing.T) {
	c, err := New([]models.QuestionRecord{
		{QuestionText: "a", Options: []string{"x"}, Category: models.CategoryMath, Difficulty: models.DifficultyEasy},
		{QuestionText: "b", Options: []string{"x"}, Category: models.CategoryVerbal, Difficulty: models.DifficultyEasy},
		{QuestionText: "c", Options: []string{"x"}, Category: models.CategoryMath, Difficulty: models.DifficultyHard},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	got := c.Filter(func(q *models.QuestionRecord) bool {
		return q.Category == models.CategoryMath
	})
	if len(got) != 2 {
		t.Fatalf("filtered %d, want 2", len(got))
	}
	if got[0].QuestionText != "a" || got[1].QuestionText != "c" {
		t.Error("filter must preserve catalog order")
	}
}

func TestQuestionsReturnsCopy(t *testing.T) {
	c, err := New([]models.QuestionRecord{
		{QuestionText: "a", Options: []string{"x"}, Category: models.CategoryMath, Difficulty: models.DifficultyEasy},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	qs := c.Questions()
	qs[0].QuestionText = "mutated"

	if c.Questions()[0].QuestionText != "a" {
		t.Error("catalog must not observe caller mutations")
	}
}
