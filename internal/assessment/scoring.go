package assessment

import (
	"math"

	"github.com/testiq/backend/internal/models"
)

// GradeSummary is the outcome of comparing submitted answers against a
// session's question list.
type GradeSummary struct {
	Correct        int
	TotalQuestions int
	Percentage     float64
	CategoryScores map[string]float64
}

// Grade compares answers to questions by position. Answers beyond the
// question list are ignored. Percentage is weighted: correct weight over
// attempted weight. A zero attempted weight yields 0, never an error.
func Grade(questions []models.QuestionRecord, answers []int) GradeSummary {
	var weightedCorrect, weightedTotal int
	categoryCorrect := make(map[string]int)
	categoryTotal := make(map[string]int)
	correct := 0

	for i, answer := range answers {
		if i >= len(questions) {
			break
		}
		q := &questions[i]
		w := q.EffectiveWeight()
		weightedTotal += w
		categoryTotal[string(q.Category)]++
		if answer == q.CorrectAnswer {
			correct++
			weightedCorrect += w
			categoryCorrect[string(q.Category)]++
		}
	}

	percentage := 0.0
	if weightedTotal > 0 {
		percentage = float64(weightedCorrect) / float64(weightedTotal) * 100
	}

	// Categories with no attempted questions are omitted entirely.
	var categoryScores map[string]float64
	if len(categoryTotal) > 0 {
		categoryScores = make(map[string]float64, len(categoryTotal))
		for cat, total := range categoryTotal {
			pct := 100 * float64(categoryCorrect[cat]) / float64(total)
			categoryScores[cat] = math.Round(pct*10) / 10
		}
	}

	return GradeSummary{
		Correct:        correct,
		TotalQuestions: len(questions),
		Percentage:     percentage,
		CategoryScores: categoryScores,
	}
}

// RawScore maps a percentage onto the unadjusted scale: 50% sits at 100
// and every point of accuracy moves the score by 0.6. Truncated, then
// clamped to [80, 140].
func RawScore(percentage float64) int {
	score := int(100 + (percentage-50)*0.6)
	if score < 80 {
		return 80
	}
	if score > 140 {
		return 140
	}
	return score
}

// ageFactors divides the base score for the taker's age bracket. Ages
// outside every bracket get factor 1.0.
var ageFactors = []struct {
	minAge, maxAge int // [minAge, maxAge)
	factor         float64
}{
	{10, 15, 0.85},
	{15, 20, 0.92},
	{20, 30, 1.00},
	{30, 40, 0.98},
	{40, 50, 0.95},
	{50, 60, 0.92},
	{60, 100, 0.88},
}

// AgeFactor returns the normalization divisor for an age.
func AgeFactor(age int) float64 {
	for _, b := range ageFactors {
		if age >= b.minAge && age < b.maxAge {
			return b.factor
		}
	}
	return 1.00
}

// AgeAdjustedScore divides the base score by the age factor before
// rounding. Note the wider clamp than RawScore: [70, 160].
func AgeAdjustedScore(percentage float64, age int) int {
	base := 100 + (percentage-50)*0.6
	score := int(math.Round(base / AgeFactor(age)))
	if score < 70 {
		return 70
	}
	if score > 160 {
		return 160
	}
	return score
}

// percentileBands maps final scores to population percentiles, checked
// highest threshold first.
var percentileBands = []struct {
	minScore   int
	percentile float64
}{
	{145, 99.9},
	{130, 98.0},
	{120, 91.0},
	{110, 75.0},
	{100, 50.0},
	{90, 25.0},
	{80, 9.0},
}

// Percentile estimates relative standing for a final score.
func Percentile(score int) float64 {
	for _, b := range percentileBands {
		if score >= b.minScore {
			return b.percentile
		}
	}
	return 2.0
}
