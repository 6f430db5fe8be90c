// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
//
// Timestamps are written from Go rather than via column defaults so the
// same DDL runs on both postgres and sqlite.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Quizz sessions
CREATE TABLE IF NOT EXISTS quizz (
    id TEXT PRIMARY KEY,
    status TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL
);

-- Participants: one row per (quizz, participant), one answer column per
-- category. position records insertion order for stable result ties.
CREATE TABLE IF NOT EXISTS participant (
    quizz_id TEXT NOT NULL REFERENCES quizz(id) ON DELETE CASCADE,
    participant_id TEXT NOT NULL,
    explorer TEXT NOT NULL DEFAULT '',
    introspector TEXT NOT NULL DEFAULT '',
    comparer TEXT NOT NULL DEFAULT '',
    recommender TEXT NOT NULL DEFAULT '',
    position INTEGER NOT NULL,
    PRIMARY KEY (quizz_id, participant_id)
);

CREATE INDEX IF NOT EXISTS idx_participant_quizz_id ON participant(quizz_id);

-- Votes: one row per (quizz, category, voter). Votes carry no ordering;
-- tallies enumerate in participant order, never vote order.
CREATE TABLE IF NOT EXISTS vote (
    quizz_id TEXT NOT NULL REFERENCES quizz(id) ON DELETE CASCADE,
    category TEXT NOT NULL,
    voter_id TEXT NOT NULL,
    PRIMARY KEY (quizz_id, category, voter_id)
);

CREATE INDEX IF NOT EXISTS idx_vote_quizz_category ON vote(quizz_id, category);

-- Vote selections: the ordered selection set belonging to one vote row.
-- Selections are opaque participant ids and are not foreign-keyed: a
-- selection may reference an answer that never existed, and tallying
-- simply ignores it.
CREATE TABLE IF NOT EXISTS vote_selection (
    quizz_id TEXT NOT NULL,
    category TEXT NOT NULL,
    voter_id TEXT NOT NULL,
    idx INTEGER NOT NULL,
    selection TEXT NOT NULL,
    PRIMARY KEY (quizz_id, category, voter_id, idx),
    FOREIGN KEY (quizz_id, category, voter_id)
        REFERENCES vote(quizz_id, category, voter_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_vote_selection_vote ON vote_selection(quizz_id, category, voter_id);
`
