// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the quizz API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(st, cfg)

# Endpoints

Health:

	GET /health

Session management (moderator):

	POST /quizz              - Create session
	GET  /quizz/{id}/status  - Current status (polled)
	POST /quizz/{id}/status  - Set status

Participants:

	POST /quizz/{id}/participants         - Submit/replace answers
	GET  /quizz/{id}/participants/summary - Progress counters

Per category ({category} is one of explorer, introspector, comparer, recommender):

	GET  /quizz/{id}/{category}               - Answerable entries
	POST /quizz/{id}/votes/{category}         - Record/replace vote
	GET  /quizz/{id}/{category}/results       - Ranked tallies
	GET  /quizz/{id}/votes/{category}/summary - Vote counters

# Wildcard Precedence

Go 1.22+ routing prefers literal segments, so GET /quizz/{id}/status is
matched before GET /quizz/{id}/{category}. Segments that parse to no known
category return 404 from the handler, indistinguishable from an unrouted
path.

# Handler Initialization

The router creates handler instances with dependency injection:

	quizzHandler := handlers.NewQuizzHandler(st, cfg)
	answerHandler := handlers.NewAnswerHandler(st, cfg)
	voteHandler := handlers.NewVoteHandler(st, cfg)
	resultsHandler := handlers.NewResultsHandler(st, cfg)

All handlers receive the session store and configuration.
*/
package router
