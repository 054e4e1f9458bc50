package storage

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
)

// QuizAttempt is one graded quiz answer.
type QuizAttempt struct {
	AttemptID string
	Kind      string
	Target    string
	Correct   int
	Total     int
	CreatedAt time.Time
}

// TargetStats aggregates attempts on one target.
type TargetStats struct {
	Kind     string
	Target   string
	Attempts int
	Passed   int
	Correct  int
	Total    int
}

// Accuracy returns the share of correct stickers.
func (s TargetStats) Accuracy() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Total)
}

// QuizAttemptRepository records quiz results.
type QuizAttemptRepository struct {
	db *DB
}

// NewQuizAttemptRepository creates a new quiz attempt repository.
func NewQuizAttemptRepository(db *DB) *QuizAttemptRepository {
	return &QuizAttemptRepository{db: db}
}

// Record stores an attempt and returns its ID.
func (r *QuizAttemptRepository) Record(kind, target string, correct, total int) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	_, err := r.db.Exec(`
		INSERT INTO quiz_attempts (attempt_id, kind, target, correct, total, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, id, kind, target, correct, total, createdAt.Format(time.RFC3339))
	if err != nil {
		return "", errors.Wrap(err, "failed to record quiz attempt")
	}
	return id, nil
}

// List returns the most recent attempts, newest first.
func (r *QuizAttemptRepository) List(limit int) ([]QuizAttempt, error) {
	rows, err := r.db.Query(`
		SELECT attempt_id, kind, target, correct, total, created_at
		FROM quiz_attempts
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list quiz attempts")
	}
	defer rows.Close()

	var attempts []QuizAttempt
	for rows.Next() {
		var a QuizAttempt
		var createdAt string
		if err := rows.Scan(&a.AttemptID, &a.Kind, &a.Target, &a.Correct, &a.Total, &createdAt); err != nil {
			return nil, errors.Wrap(err, "failed to scan quiz attempt")
		}
		a.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		attempts = append(attempts, a)
	}
	return attempts, rows.Err()
}

// Stats aggregates attempts per kind and target, weakest targets first.
func (r *QuizAttemptRepository) Stats() ([]TargetStats, error) {
	rows, err := r.db.Query(`
		SELECT kind, target, COUNT(*),
		       SUM(CASE WHEN correct = total THEN 1 ELSE 0 END),
		       SUM(correct), SUM(total)
		FROM quiz_attempts
		GROUP BY kind, target
		ORDER BY CAST(SUM(correct) AS REAL) / MAX(SUM(total), 1), kind, target
	`)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get quiz stats")
	}
	defer rows.Close()

	var stats []TargetStats
	for rows.Next() {
		var s TargetStats
		if err := rows.Scan(&s.Kind, &s.Target, &s.Attempts, &s.Passed, &s.Correct, &s.Total); err != nil {
			return nil, errors.Wrap(err, "failed to scan quiz stats")
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

// Count returns the number of recorded attempts.
func (r *QuizAttemptRepository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM quiz_attempts").Scan(&count); err != nil {
		return 0, errors.Wrap(err, "failed to count quiz attempts")
	}
	return count, nil
}
