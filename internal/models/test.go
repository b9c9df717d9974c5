package models

import "time"

type Category string

const (
	CategoryPattern Category = "pattern"
	CategoryLogical Category = "logical"
	CategoryMath    Category = "math"
	CategoryVerbal  Category = "verbal"
	CategoryMatrix  Category = "matrix_reasoning"
)

var ValidCategories = map[Category]bool{
	CategoryPattern: true,
	CategoryLogical: true,
	CategoryMath:    true,
	CategoryVerbal:  true,
	CategoryMatrix:  true,
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

var ValidDifficulties = map[Difficulty]bool{
	DifficultyEasy:   true,
	DifficultyMedium: true,
	DifficultyHard:   true,
}

// CategoryAll is the wildcard accepted in TestConfig.QuestionTypes.
const CategoryAll = "all"

// ── Core Structs ───────────────────────────────────────

// PatternCell is one cell of a matrix-reasoning grid.
type PatternCell struct {
	Pattern string `json:"pattern"`
}

// PatternData carries the grid metadata for matrix-reasoning questions.
type PatternData struct {
	Grid [][]PatternCell `json:"grid"`
}

// QuestionRecord is a catalog entry. Records are immutable after the
// catalog is loaded; CorrectAnswer indexes into Options.
type QuestionRecord struct {
	QuestionText     string       `json:"question_text"`
	Options          []string     `json:"options"`
	CorrectAnswer    int          `json:"correct_answer"`
	Category         Category     `json:"category"`
	Difficulty       Difficulty   `json:"difficulty"`
	Weight           int          `json:"weight,omitempty"`
	PatternData      *PatternData `json:"pattern_data,omitempty"`
	Explanation      string       `json:"explanation,omitempty"`
	TimeLimitSeconds int          `json:"time_limit_seconds,omitempty"`
}

// EffectiveWeight returns the question's weight, defaulting to 1.
func (q *QuestionRecord) EffectiveWeight() int {
	if q.Weight <= 0 {
		return 1
	}
	return q.Weight
}

// PublicQuestion is the projection served to test-takers. It never
// carries the correct-answer index.
type PublicQuestion struct {
	ID           string       `json:"id"`
	QuestionText string       `json:"question_text"`
	Options      []string     `json:"options"`
	Category     Category     `json:"category"`
	PatternData  *PatternData `json:"pattern_data,omitempty"`
}

// ToPublic strips the answer key for serving. The ID is the question's
// position within the session, stringified.
func (q *QuestionRecord) ToPublic(id string) PublicQuestion {
	return PublicQuestion{
		ID:           id,
		QuestionText: q.QuestionText,
		Options:      q.Options,
		Category:     q.Category,
		PatternData:  q.PatternData,
	}
}

// TestConfig drives question selection. Either the duration/types/difficulty
// fields or the age/test-type fields are set, depending on which variant the
// client speaks.
type TestConfig struct {
	Duration      string     `json:"duration,omitempty"`
	QuestionTypes []string   `json:"question_types,omitempty"`
	Difficulty    Difficulty `json:"difficulty,omitempty"`
	Age           int        `json:"age,omitempty"`
	TestType      string     `json:"test_type,omitempty"`
}

// TestSession is the private session record. It includes correct answers
// and is never returned to the requester.
type TestSession struct {
	TestID    string           `json:"test_id"`
	Questions []QuestionRecord `json:"questions"`
	Config    TestConfig       `json:"config"`
	Timestamp time.Time        `json:"timestamp"`
}

// TestResult is the scored outcome of one submission.
type TestResult struct {
	ID               string             `json:"id"`
	TestID           string             `json:"test_id"`
	CorrectAnswers   int                `json:"correct_answers"`
	TotalQuestions   int                `json:"total_questions"`
	IQScore          int                `json:"iq_score"`
	Percentile       float64            `json:"percentile"`
	CategoryScores   map[string]float64 `json:"category_scores,omitempty"`
	Age              *int               `json:"age,omitempty"`
	TimeTakenSeconds *float64           `json:"time_taken_seconds,omitempty"`
	Timestamp        time.Time          `json:"timestamp"`
}

// ── Request Types ─────────────────────────────────────

type SubmitTestRequest struct {
	TestID           string   `json:"test_id"`
	Answers          []int    `json:"answers"`
	TimeTakenSeconds *float64 `json:"time_taken_seconds,omitempty"`
	Age              *int     `json:"age,omitempty"`
}

type CertificateRequest struct {
	TestID string `json:"test_id"`
	Name   string `json:"name"`
	Email  string `json:"email,omitempty"`
}

// ── Response Types ────────────────────────────────────

type StartTestResponse struct {
	TestID          string           `json:"test_id"`
	Questions       []PublicQuestion `json:"questions"`
	DurationMinutes int              `json:"duration_minutes"`
}

type StatsResponse struct {
	TotalTests int     `json:"total_tests"`
	AverageIQ  float64 `json:"average_iq"`
	Status     string  `json:"status"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
