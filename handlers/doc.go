// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the quizz API.

# Handler Types

Each handler is a struct with store and config dependencies:

  - QuizzHandler: Session creation and status (the moderator's surface)
  - AnswerHandler: Answer submission, listing, and participant summary
  - VoteHandler: Vote recording and vote summary
  - ResultsHandler: Ranked tallies per category

Handlers are created via constructor functions that accept *db.Store and
Config:

	quizzHandler := handlers.NewQuizzHandler(st, cfg)

# Session Flow

A session walks the ten-stage status sequence under moderator control:

	POST /quizz              → Create (status starts at collecting)
	GET  /quizz/{id}/status  → GetStatus (polled by every client)
	POST /quizz/{id}/status  → SetStatus (any valid status, any order)

# Participant Flow

	POST /quizz/{id}/participants         → Submit (wholesale upsert)
	GET  /quizz/{id}/participants/summary → Summary
	GET  /quizz/{id}/{category}           → List answerable entries

# Voting Flow

	POST /quizz/{id}/votes/{category}         → Record (wholesale upsert)
	GET  /quizz/{id}/votes/{category}/summary → Summary
	GET  /quizz/{id}/{category}/results       → ranked tallies

# Category Dispatch

The four categories share generic handlers: the {category} path segment is
parsed with models.ParseCategory and anything outside the closed set gets
a bare 404, matching what an unrouted path would return. There are no
per-category handler copies.
*/
package handlers
