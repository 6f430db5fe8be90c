// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/bogdanripa/quizz/models"
)

// answerColumn maps each category to its participant answer column. The
// category set is closed, so the column names below are the only ones ever
// interpolated into SQL.
var answerColumn = map[models.Category]string{
	models.CategoryExplorer:     "explorer",
	models.CategoryIntrospector: "introspector",
	models.CategoryComparer:     "comparer",
	models.CategoryRecommender:  "recommender",
}

// SubmitAnswers upserts a participant's full answer set. A resubmission
// replaces all four answers wholesale, never merging field-by-field; a new
// participantId appends a participant at the next position. The merger is
// phase-agnostic: late or corrected submissions must not be silently
// dropped, so the current status is never consulted.
func (s *Store) SubmitAnswers(quizzID, participantID string, answers models.Answers) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := exists(tx, quizzID); err != nil {
		return err
	}

	var position int
	err = tx.QueryRow(`
		SELECT COALESCE(MAX(position), 0) + 1 FROM participant WHERE quizz_id = $1
	`, quizzID).Scan(&position)
	if err != nil {
		return fmt.Errorf("failed to compute participant position: %w", err)
	}

	// On conflict the original position is kept, so resubmitting never
	// moves a participant in the enumeration order.
	_, err = tx.Exec(`
		INSERT INTO participant (quizz_id, participant_id, explorer, introspector, comparer, recommender, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (quizz_id, participant_id) DO UPDATE SET
			explorer = EXCLUDED.explorer,
			introspector = EXCLUDED.introspector,
			comparer = EXCLUDED.comparer,
			recommender = EXCLUDED.recommender
	`, quizzID, participantID, answers.Explorer, answers.Introspector, answers.Comparer, answers.Recommender, position)

	if err != nil {
		return fmt.Errorf("failed to upsert participant: %w", err)
	}

	if err := touch(tx, quizzID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit answers: %w", err)
	}

	return nil
}

// Answers returns the answerable entries for one category: every
// participant whose answer is non-empty after trimming, keyed by
// participant id with the raw untrimmed text, in insertion order.
// Two transactions that raced to the same position sort by participant
// id, so the enumeration order stays deterministic either way.
func (s *Store) Answers(quizzID string, category models.Category) ([]models.AnswerEntry, error) {
	var one int
	err := s.db.QueryRow(`SELECT 1 FROM quizz WHERE id = $1`, quizzID).Scan(&one)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query quizz: %w", err)
	}

	rows, err := s.db.Query(`
		SELECT participant_id, `+answerColumn[category]+`
		FROM participant
		WHERE quizz_id = $1
		ORDER BY position, participant_id
	`, quizzID)
	if err != nil {
		return nil, fmt.Errorf("failed to query answers: %w", err)
	}
	defer rows.Close()

	entries := []models.AnswerEntry{}
	for rows.Next() {
		var entry models.AnswerEntry
		if err := rows.Scan(&entry.ID, &entry.Text); err != nil {
			return nil, fmt.Errorf("failed to scan answer: %w", err)
		}
		if strings.TrimSpace(entry.Text) == "" {
			continue
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// ParticipantSummary reports the total participant count and how many of
// them have at least one non-blank answer.
func (s *Store) ParticipantSummary(quizzID string) (models.ParticipantSummary, error) {
	var summary models.ParticipantSummary

	var one int
	err := s.db.QueryRow(`SELECT 1 FROM quizz WHERE id = $1`, quizzID).Scan(&one)
	if err == sql.ErrNoRows {
		return summary, ErrNotFound
	}
	if err != nil {
		return summary, fmt.Errorf("failed to query quizz: %w", err)
	}

	rows, err := s.db.Query(`
		SELECT explorer, introspector, comparer, recommender
		FROM participant
		WHERE quizz_id = $1
	`, quizzID)
	if err != nil {
		return summary, fmt.Errorf("failed to query participants: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var explorer, introspector, comparer, recommender string
		if err := rows.Scan(&explorer, &introspector, &comparer, &recommender); err != nil {
			return summary, fmt.Errorf("failed to scan participant: %w", err)
		}

		summary.ParticipantsCount++
		if strings.TrimSpace(explorer) != "" ||
			strings.TrimSpace(introspector) != "" ||
			strings.TrimSpace(comparer) != "" ||
			strings.TrimSpace(recommender) != "" {
			summary.SubmittedCount++
		}
	}

	return summary, rows.Err()
}
