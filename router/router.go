// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/bogdanripa/quizz/cliparse"
	"github.com/bogdanripa/quizz/db"
	"github.com/bogdanripa/quizz/handlers"
	"github.com/bogdanripa/quizz/middleware"
)

func NewRouter(st *db.Store, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	quizzHandler := handlers.NewQuizzHandler(st, cfg)
	answerHandler := handlers.NewAnswerHandler(st, cfg)
	voteHandler := handlers.NewVoteHandler(st, cfg)
	resultsHandler := handlers.NewResultsHandler(st, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Session management (moderator operations)
	mux.HandleFunc("POST /quizz", middleware.WithLogging(quizzHandler.Create))
	mux.HandleFunc("GET /quizz/{id}/status", middleware.WithLogging(quizzHandler.GetStatus))
	mux.HandleFunc("POST /quizz/{id}/status", middleware.WithLogging(quizzHandler.SetStatus))

	// Participant operations
	mux.HandleFunc("POST /quizz/{id}/participants", middleware.WithLogging(answerHandler.Submit))
	mux.HandleFunc("GET /quizz/{id}/participants/summary", middleware.WithLogging(answerHandler.Summary))

	// Per-category operations; literal segments like "status" or
	// "participants" win over the {category} wildcard, and the handlers
	// 404 on segments outside the four known categories.
	mux.HandleFunc("GET /quizz/{id}/{category}", middleware.WithLogging(answerHandler.List))
	mux.HandleFunc("GET /quizz/{id}/{category}/results", middleware.WithLogging(resultsHandler.Get))
	mux.HandleFunc("POST /quizz/{id}/votes/{category}", middleware.WithLogging(voteHandler.Record))
	mux.HandleFunc("GET /quizz/{id}/votes/{category}/summary", middleware.WithLogging(voteHandler.Summary))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("quizz API v1"))
	})

	// Greeting route kept from the original deployment for liveness pokes
	mux.HandleFunc("GET /{name}", middleware.WithLogging(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("hello " + r.PathValue("name")))
	}))

	return mux
}
