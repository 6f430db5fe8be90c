// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db holds the schema and the Store, the single home of quizz
session state and its consistency rules.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
The same DDL and statements run on both postgres (lib/pq) and sqlite
(modernc.org/sqlite): placeholders are $N and timestamps are written from Go.

# Tables

  - quizz: session id and status
  - participant: one row per (quizz, participant) with four answer columns
  - vote: one row per (quizz, category, voter)
  - vote_selection: the ordered selection set belonging to a vote

# Store

Store wraps *sql.DB with the session operations:

	st := db.New(conn)
	quizzID, err := st.CreateQuizz()

Status:

	st.GetStatus(quizzID)
	st.SetStatus(quizzID, models.StatusVoting1)

SetStatus accepts any of the ten valid statuses in any order - the
moderator has full control and no adjacency is enforced. Unknown values
fail with ErrInvalidStatus.

Answers and votes:

	st.SubmitAnswers(quizzID, participantID, answers)
	st.RecordVote(quizzID, category, voterID, selections)

Both are wholesale upserts keyed by participant and (category, voter)
respectively: the latest write replaces the record, resubmission never
duplicates. Both run in one transaction per call.

Reads:

	st.Answers(quizzID, category)
	st.Results(quizzID, category)
	st.ParticipantSummary(quizzID)
	st.VoteSummary(quizzID, category)

Results recomputes the tally from scratch on every call; entries keep
insertion order on ties via a stable sort.

# Errors

	ErrNotFound      - unknown quizz id
	ErrInvalidStatus - status outside the ten-value enumeration

Anything else is a wrapped store failure.
*/
package db
