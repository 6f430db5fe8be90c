// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	"github.com/bogdanripa/quizz/models"
)

// RecordVote upserts a voter's full selection set for one category: one
// vote row per (quizz, category, voter), replaced wholesale on
// resubmission. An empty selections slice is a legal abstention. Selection
// ids are stored as-is; ids that never match an answer are simply never
// counted, so votes cast against a withdrawn or not-yet-submitted answer
// do not error.
func (s *Store) RecordVote(quizzID string, category models.Category, voterID string, selections []string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := exists(tx, quizzID); err != nil {
		return err
	}

	_, err = tx.Exec(`
		INSERT INTO vote (quizz_id, category, voter_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (quizz_id, category, voter_id) DO NOTHING
	`, quizzID, category, voterID)
	if err != nil {
		return fmt.Errorf("failed to upsert vote: %w", err)
	}

	// Full replacement: drop prior selections, then write the new set in
	// submission order.
	_, err = tx.Exec(`
		DELETE FROM vote_selection WHERE quizz_id = $1 AND category = $2 AND voter_id = $3
	`, quizzID, category, voterID)
	if err != nil {
		return fmt.Errorf("failed to clear selections: %w", err)
	}

	for idx, selection := range selections {
		_, err = tx.Exec(`
			INSERT INTO vote_selection (quizz_id, category, voter_id, idx, selection)
			VALUES ($1, $2, $3, $4, $5)
		`, quizzID, category, voterID, idx, selection)
		if err != nil {
			return fmt.Errorf("failed to insert selection: %w", err)
		}
	}

	if err := touch(tx, quizzID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit vote: %w", err)
	}

	return nil
}

// VoteSummary reports the total participant count (the denominator for
// progress display, deliberately not filtered to answerable entries) and
// the number of vote records cast in the category.
func (s *Store) VoteSummary(quizzID string, category models.Category) (models.VoteSummary, error) {
	var summary models.VoteSummary

	var one int
	err := s.db.QueryRow(`SELECT 1 FROM quizz WHERE id = $1`, quizzID).Scan(&one)
	if err == sql.ErrNoRows {
		return summary, ErrNotFound
	}
	if err != nil {
		return summary, fmt.Errorf("failed to query quizz: %w", err)
	}

	err = s.db.QueryRow(`
		SELECT COUNT(*) FROM participant WHERE quizz_id = $1
	`, quizzID).Scan(&summary.ParticipantsCount)
	if err != nil {
		return summary, fmt.Errorf("failed to count participants: %w", err)
	}

	err = s.db.QueryRow(`
		SELECT COUNT(*) FROM vote WHERE quizz_id = $1 AND category = $2
	`, quizzID, category).Scan(&summary.VotesCount)
	if err != nil {
		return summary, fmt.Errorf("failed to count votes: %w", err)
	}

	return summary, nil
}
