// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bogdanripa/quizz/models"
)

var (
	// ErrNotFound means the quizz id does not exist.
	ErrNotFound = errors.New("quizz not found")
	// ErrInvalidStatus means the requested status is not one of the ten
	// known values.
	ErrInvalidStatus = errors.New("invalid status")
)

// Store carries every quizz session operation. All mutations run as a
// single transaction against the session's rows, so a failed call leaves
// prior persisted state untouched and two concurrent writers to distinct
// keys cannot lose each other's rows.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// CreateQuizz creates a new session with status collecting and no
// participants or votes, and returns its generated id.
func (s *Store) CreateQuizz() (string, error) {
	quizzID := uuid.NewString()
	now := time.Now()

	_, err := s.db.Exec(`
		INSERT INTO quizz (id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
	`, quizzID, models.StatusCollecting, now, now)

	if err != nil {
		return "", fmt.Errorf("failed to insert quizz: %w", err)
	}

	return quizzID, nil
}

// GetStatus returns the session's current status.
func (s *Store) GetStatus(quizzID string) (string, error) {
	var status string
	err := s.db.QueryRow(`
		SELECT status FROM quizz WHERE id = $1
	`, quizzID).Scan(&status)

	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to query status: %w", err)
	}

	return status, nil
}

// SetStatus replaces the session's status unconditionally and returns the
// stored value. Any of the ten valid statuses is accepted as the next one,
// including moving backward or skipping steps: the moderator has full
// control, and there is deliberately no adjacency table here. Callers that
// want a stricter sequence can gate on GetStatus before calling.
func (s *Store) SetStatus(quizzID, status string) (string, error) {
	if !models.IsValidStatus(status) {
		return "", ErrInvalidStatus
	}

	res, err := s.db.Exec(`
		UPDATE quizz SET status = $1, updated_at = $2 WHERE id = $3
	`, status, time.Now(), quizzID)

	if err != nil {
		return "", fmt.Errorf("failed to update status: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return "", fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return "", ErrNotFound
	}

	return status, nil
}

// exists checks for the quizz inside an open transaction so mutations on
// unknown ids fail with ErrNotFound instead of writing orphan rows.
func exists(tx *sql.Tx, quizzID string) error {
	var one int
	err := tx.QueryRow(`SELECT 1 FROM quizz WHERE id = $1`, quizzID).Scan(&one)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to query quizz: %w", err)
	}
	return nil
}

// touch bumps the session's updated_at inside a mutation transaction.
func touch(tx *sql.Tx, quizzID string) error {
	_, err := tx.Exec(`UPDATE quizz SET updated_at = $1 WHERE id = $2`, time.Now(), quizzID)
	if err != nil {
		return fmt.Errorf("failed to touch quizz: %w", err)
	}
	return nil
}
