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

type AnswerHandler struct {
	st  *db.Store
	cfg cliparse.Config
}

func NewAnswerHandler(st *db.Store, cfg cliparse.Config) *AnswerHandler {
	return &AnswerHandler{st: st, cfg: cfg}
}

// Submit handles POST /quizz/:id/participants
// Upserts the participant's full answer set. Submissions are accepted in
// any session status: a late or corrected submission must not be dropped.
func (h *AnswerHandler) Submit(w http.ResponseWriter, r *http.Request) {
	quizzID := r.PathValue("id")

	var req models.SubmitAnswersRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.ParticipantID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "participantId is required")
		return
	}

	err := h.st.SubmitAnswers(quizzID, req.ParticipantID, req.Answers)
	if err == db.ErrNotFound {
		middleware.ErrorResponse(w, http.StatusNotFound, "Quiz not found")
		return
	}
	if err != nil {
		slog.Error("failed to save answers", "error", err, "quizz_id", quizzID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save answers")
		return
	}

	slog.Info("answers submitted", "quizz_id", quizzID, "participant_id", req.ParticipantID)

	middleware.JSONResponse(w, http.StatusOK, models.OKResponse{OK: true})
}

// Summary handles GET /quizz/:id/participants/summary
func (h *AnswerHandler) Summary(w http.ResponseWriter, r *http.Request) {
	quizzID := r.PathValue("id")

	summary, err := h.st.ParticipantSummary(quizzID)
	if err == db.ErrNotFound {
		middleware.ErrorResponse(w, http.StatusNotFound, "Quiz not found")
		return
	}
	if err != nil {
		slog.Error("failed to load participant summary", "error", err, "quizz_id", quizzID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load participant summary")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, summary)
}

// List handles GET /quizz/:id/{category}
// One generic handler serves all four categories; the response object is
// keyed by the category name, e.g. {"explorer": [{id, text}, ...]}.
func (h *AnswerHandler) List(w http.ResponseWriter, r *http.Request) {
	quizzID := r.PathValue("id")

	category, ok := models.ParseCategory(r.PathValue("category"))
	if !ok {
		// Not one of the four known segments, so no route exists here.
		w.WriteHeader(http.StatusNotFound)
		return
	}

	entries, err := h.st.Answers(quizzID, category)
	if err == db.ErrNotFound {
		middleware.ErrorResponse(w, http.StatusNotFound, "Quiz not found")
		return
	}
	if err != nil {
		slog.Error("failed to load answers", "error", err, "quizz_id", quizzID, "category", category)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load "+string(category)+" answers")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, map[string][]models.AnswerEntry{
		string(category): entries,
	})
}
