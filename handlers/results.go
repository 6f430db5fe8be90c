// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/bogdanripa/quizz/cliparse"
	"github.com/bogdanripa/quizz/db"
	"github.com/bogdanripa/quizz/middleware"
	"github.com/bogdanripa/quizz/models"
)

type ResultsHandler struct {
	st  *db.Store
	cfg cliparse.Config
}

func NewResultsHandler(st *db.Store, cfg cliparse.Config) *ResultsHandler {
	return &ResultsHandler{st: st, cfg: cfg}
}

// Get handles GET /quizz/:id/{category}/results
// Tallies are recomputed from stored answers and votes on every call, so
// the response always reflects the latest writes. Results are visible in
// any status; the client decides when to show them.
func (h *ResultsHandler) Get(w http.ResponseWriter, r *http.Request) {
	quizzID := r.PathValue("id")

	category, ok := models.ParseCategory(r.PathValue("category"))
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	results, err := h.st.Results(quizzID, category)
	if err == db.ErrNotFound {
		middleware.ErrorResponse(w, http.StatusNotFound, "Quiz not found")
		return
	}
	if err != nil {
		slog.Error("failed to load results", "error", err, "quizz_id", quizzID, "category", category)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load results")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ResultsResponse{Results: results})
}
