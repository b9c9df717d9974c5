package assessment

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/testiq/backend/internal/models"
)

var (
	ErrSessionNotFound = errors.New("test session not found")
	ErrResultNotFound  = errors.New("test result not found")
)

// Store is the persistence contract for sessions and results: point reads
// and writes keyed by test id, plus the aggregate used by /stats.
type Store interface {
	SaveSession(session *models.TestSession) error
	GetSession(testID string) (*models.TestSession, error)
	SaveResult(result *models.TestResult) error
	GetResult(testID string) (*models.TestResult, error)
	Stats() (total int, averageIQ float64, err error)
}

// DBStore keeps sessions and results as JSON documents in Postgres, one
// row per session and one row per submission.
type DBStore struct {
	db *sql.DB
}

func NewDBStore(db *sql.DB) *DBStore {
	return &DBStore{db: db}
}

func (s *DBStore) SaveSession(session *models.TestSession) error {
	doc, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO test_sessions (test_id, doc) VALUES ($1, $2)`,
		session.TestID, doc,
	)
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *DBStore) GetSession(testID string) (*models.TestSession, error) {
	var doc []byte
	err := s.db.QueryRow(
		`SELECT doc FROM test_sessions WHERE test_id = $1`,
		testID,
	).Scan(&doc)
	if err == sql.ErrNoRows {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	var session models.TestSession
	if err := json.Unmarshal(doc, &session); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return &session, nil
}

func (s *DBStore) SaveResult(result *models.TestResult) error {
	doc, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO test_results (test_id, doc) VALUES ($1, $2)`,
		result.TestID, doc,
	)
	if err != nil {
		return fmt.Errorf("save result: %w", err)
	}
	return nil
}

// GetResult returns the most recent result for a session. Repeat
// submissions append rows, so latest wins here.
func (s *DBStore) GetResult(testID string) (*models.TestResult, error) {
	var doc []byte
	err := s.db.QueryRow(
		`SELECT doc FROM test_results WHERE test_id = $1 ORDER BY created_at DESC, id DESC LIMIT 1`,
		testID,
	).Scan(&doc)
	if err == sql.ErrNoRows {
		return nil, ErrResultNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get result: %w", err)
	}

	var result models.TestResult
	if err := json.Unmarshal(doc, &result); err != nil {
		return nil, fmt.Errorf("unmarshal result: %w", err)
	}
	return &result, nil
}

func (s *DBStore) Stats() (int, float64, error) {
	var total int
	var avg float64
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(AVG((doc->>'iq_score')::numeric), 0) FROM test_results`,
	).Scan(&total, &avg)
	if err != nil {
		return 0, 0, fmt.Errorf("stats: %w", err)
	}
	return total, avg, nil
}
