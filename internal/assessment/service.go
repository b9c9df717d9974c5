package assessment

import (
	"fmt"
	"log"
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/testiq/backend/internal/models"
)

type Service struct {
	store    Store
	selector *Selector
}

func NewService(store Store, selector *Selector) *Service {
	return &Service{store: store, selector: selector}
}

// StartTest selects a question subset for the config, persists the private
// session, and returns the public projection.
func (s *Service) StartTest(cfg models.TestConfig) (*models.StartTestResponse, error) {
	selected := s.selector.Select(cfg)

	session := &models.TestSession{
		TestID:    uuid.New().String(),
		Questions: selected,
		Config:    cfg,
		Timestamp: time.Now().UTC(),
	}

	if err := s.store.SaveSession(session); err != nil {
		return nil, fmt.Errorf("start test: %w", err)
	}

	public := make([]models.PublicQuestion, len(selected))
	for i := range selected {
		public[i] = selected[i].ToPublic(strconv.Itoa(i))
	}

	return &models.StartTestResponse{
		TestID:          session.TestID,
		Questions:       public,
		DurationMinutes: len(selected),
	}, nil
}

// SubmitTest scores a submission against its stored session and persists
// the result. A second submission for the same session writes a fresh
// result record; nothing is merged.
func (s *Service) SubmitTest(req models.SubmitTestRequest) (*models.TestResult, error) {
	session, err := s.store.GetSession(req.TestID)
	if err != nil {
		return nil, err
	}

	summary := Grade(session.Questions, req.Answers)

	var score int
	if req.Age != nil {
		score = AgeAdjustedScore(summary.Percentage, *req.Age)
	} else {
		score = RawScore(summary.Percentage)
	}

	result := &models.TestResult{
		ID:               uuid.New().String(),
		TestID:           req.TestID,
		CorrectAnswers:   summary.Correct,
		TotalQuestions:   summary.TotalQuestions,
		IQScore:          score,
		Percentile:       Percentile(score),
		CategoryScores:   summary.CategoryScores,
		Age:              req.Age,
		TimeTakenSeconds: req.TimeTakenSeconds,
		Timestamp:        time.Now().UTC(),
	}

	if err := s.store.SaveResult(result); err != nil {
		return nil, fmt.Errorf("submit test: %w", err)
	}
	return result, nil
}

// Stats reports stored-result aggregates. A store failure degrades to the
// zero response rather than erroring.
func (s *Service) Stats() models.StatsResponse {
	total, avg, err := s.store.Stats()
	if err != nil {
		log.Printf("[service] Stats degraded: %v", err)
		return models.StatsResponse{Status: "operational"}
	}
	return models.StatsResponse{
		TotalTests: total,
		AverageIQ:  math.Round(avg*10) / 10,
		Status:     "operational",
	}
}
