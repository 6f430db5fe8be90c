// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"fmt"
	"sort"

	"github.com/bogdanripa/quizz/models"
)

// Results computes the ranked tally for one category, fresh on every call:
//
//  1. Build the answerable entries (non-blank trimmed answers, insertion
//     order) and start every entry at count 0, so an answer nobody voted
//     for still appears.
//  2. Count every stored selection that matches an answerable id;
//     selections referencing unknown ids are ignored and never create
//     phantom entries.
//  3. Sort descending by count with a stable sort, so ties keep the
//     answerable enumeration order.
func (s *Store) Results(quizzID string, category models.Category) ([]models.ResultEntry, error) {
	answers, err := s.Answers(quizzID, category)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(answers))
	for _, answer := range answers {
		counts[answer.ID] = 0
	}

	rows, err := s.db.Query(`
		SELECT selection FROM vote_selection WHERE quizz_id = $1 AND category = $2
	`, quizzID, category)
	if err != nil {
		return nil, fmt.Errorf("failed to query selections: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var selection string
		if err := rows.Scan(&selection); err != nil {
			return nil, fmt.Errorf("failed to scan selection: %w", err)
		}
		if _, ok := counts[selection]; ok {
			counts[selection]++
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	results := make([]models.ResultEntry, len(answers))
	for i, answer := range answers {
		results[i] = models.ResultEntry{
			ID:    answer.ID,
			Text:  answer.Text,
			Count: counts[answer.ID],
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Count > results[j].Count
	})

	return results, nil
}
