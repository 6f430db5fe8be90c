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

type QuizzHandler struct {
	st  *db.Store
	cfg cliparse.Config
}

func NewQuizzHandler(st *db.Store, cfg cliparse.Config) *QuizzHandler {
	return &QuizzHandler{st: st, cfg: cfg}
}

// Create handles POST /quizz
func (h *QuizzHandler) Create(w http.ResponseWriter, r *http.Request) {
	quizzID, err := h.st.CreateQuizz()
	if err != nil {
		slog.Error("failed to create quizz", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create quiz")
		return
	}

	slog.Info("quizz created", "quizz_id", quizzID)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateQuizzResponse{
		QuizzID: quizzID,
	})
}

// GetStatus handles GET /quizz/:id/status
// This is the endpoint every participant polls while waiting for the
// moderator to advance the session.
func (h *QuizzHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	quizzID := r.PathValue("id")

	status, err := h.st.GetStatus(quizzID)
	if err == db.ErrNotFound {
		middleware.ErrorResponse(w, http.StatusNotFound, "Quiz not found")
		return
	}
	if err != nil {
		slog.Error("failed to fetch status", "error", err, "quizz_id", quizzID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch status")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.StatusResponse{Status: status})
}

// SetStatus handles POST /quizz/:id/status
func (h *QuizzHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	quizzID := r.PathValue("id")

	var req models.SetStatusRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Status == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "status is required")
		return
	}

	status, err := h.st.SetStatus(quizzID, req.Status)
	if err == db.ErrInvalidStatus {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid status")
		return
	}
	if err == db.ErrNotFound {
		middleware.ErrorResponse(w, http.StatusNotFound, "Quiz not found")
		return
	}
	if err != nil {
		slog.Error("failed to update status", "error", err, "quizz_id", quizzID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update status")
		return
	}

	slog.Info("status updated", "quizz_id", quizzID, "status", status)

	middleware.JSONResponse(w, http.StatusOK, models.StatusResponse{Status: status})
}
