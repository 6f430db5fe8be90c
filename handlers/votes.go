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

type VoteHandler struct {
	st  *db.Store
	cfg cliparse.Config
}

func NewVoteHandler(st *db.Store, cfg cliparse.Config) *VoteHandler {
	return &VoteHandler{st: st, cfg: cfg}
}

// Record handles POST /quizz/:id/votes/{category}
func (h *VoteHandler) Record(w http.ResponseWriter, r *http.Request) {
	quizzID := r.PathValue("id")

	category, ok := models.ParseCategory(r.PathValue("category"))
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	var req models.RecordVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// A nil slice means selections was missing or null. An empty array is
	// a legal abstention and passes.
	if req.VoterID == "" || req.Selections == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "voterId and selections are required")
		return
	}

	err := h.st.RecordVote(quizzID, category, req.VoterID, req.Selections)
	if err == db.ErrNotFound {
		middleware.ErrorResponse(w, http.StatusNotFound, "Quiz not found")
		return
	}
	if err != nil {
		slog.Error("failed to save votes", "error", err, "quizz_id", quizzID, "category", category)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save votes")
		return
	}

	slog.Info("vote recorded", "quizz_id", quizzID, "category", category, "voter_id", req.VoterID,
		"selections", len(req.Selections))

	middleware.JSONResponse(w, http.StatusOK, models.OKResponse{OK: true})
}

// Summary handles GET /quizz/:id/votes/{category}/summary
func (h *VoteHandler) Summary(w http.ResponseWriter, r *http.Request) {
	quizzID := r.PathValue("id")

	category, ok := models.ParseCategory(r.PathValue("category"))
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	summary, err := h.st.VoteSummary(quizzID, category)
	if err == db.ErrNotFound {
		middleware.ErrorResponse(w, http.StatusNotFound, "Quiz not found")
		return
	}
	if err != nil {
		slog.Error("failed to load vote summary", "error", err, "quizz_id", quizzID, "category", category)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load vote summary")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, summary)
}
