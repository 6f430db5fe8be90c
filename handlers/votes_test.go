// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bogdanripa/quizz/db"
	"github.com/bogdanripa/quizz/models"
	"github.com/bogdanripa/quizz/testutil"
)

func TestRecordVote(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewVoteHandler(db.New(conn), cfg)

	quizzID := testutil.CreateTestQuizz(t, conn, models.StatusVoting1)
	testutil.AddTestParticipant(t, conn, quizzID, "p1", models.Answers{Explorer: "A"})

	tests := []struct {
		name           string
		quizzID        string
		category       string
		requestBody    interface{}
		expectedStatus int
	}{
		{
			name:           "valid vote",
			quizzID:        quizzID,
			category:       "explorer",
			requestBody:    models.RecordVoteRequest{VoterID: "v1", Selections: []string{"p1"}},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "abstention with empty selections",
			quizzID:        quizzID,
			category:       "explorer",
			requestBody:    models.RecordVoteRequest{VoterID: "v2", Selections: []string{}},
			expectedStatus: http.StatusOK,
		},
		{
			name:     "selections referencing nobody are stored",
			quizzID:  quizzID,
			category: "explorer",
			requestBody: models.RecordVoteRequest{
				VoterID:    "v3",
				Selections: []string{"ghost"},
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing voterId",
			quizzID:        quizzID,
			category:       "explorer",
			requestBody:    map[string]interface{}{"selections": []string{"p1"}},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing selections",
			quizzID:        quizzID,
			category:       "explorer",
			requestBody:    map[string]interface{}{"voterId": "v1"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "null selections",
			quizzID:        quizzID,
			category:       "explorer",
			requestBody:    map[string]interface{}{"voterId": "v1", "selections": nil},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown category",
			quizzID:        quizzID,
			category:       "judger",
			requestBody:    models.RecordVoteRequest{VoterID: "v1", Selections: []string{"p1"}},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "unknown quizz",
			quizzID:        "no-such-quizz",
			category:       "explorer",
			requestBody:    models.RecordVoteRequest{VoterID: "v1", Selections: []string{"p1"}},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/quizz/"+tt.quizzID+"/votes/"+tt.category, tt.requestBody, nil)
			req.SetPathValue("id", tt.quizzID)
			req.SetPathValue("category", tt.category)
			w := httptest.NewRecorder()

			handler.Record(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
		})
	}
}

func TestRecordVoteReplaces(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewVoteHandler(db.New(conn), cfg)

	quizzID := testutil.CreateTestQuizz(t, conn, models.StatusVoting3)
	testutil.AddTestParticipant(t, conn, quizzID, "p1", models.Answers{Comparer: "A"})
	testutil.AddTestParticipant(t, conn, quizzID, "p2", models.Answers{Comparer: "B"})

	for _, selections := range [][]string{{"p1", "p2"}, {"p2"}} {
		body := models.RecordVoteRequest{VoterID: "v1", Selections: selections}
		req := testutil.MakeRequest("POST", "/quizz/"+quizzID+"/votes/comparer", body, nil)
		req.SetPathValue("id", quizzID)
		req.SetPathValue("category", "comparer")
		w := httptest.NewRecorder()

		handler.Record(w, req)
		testutil.AssertStatus(t, w, http.StatusOK)
	}

	// One vote record, reflecting only the latest selections.
	var voteCount, selectionCount int
	if err := conn.QueryRow(
		"SELECT COUNT(*) FROM vote WHERE quizz_id = $1 AND category = 'comparer'", quizzID,
	).Scan(&voteCount); err != nil {
		t.Fatalf("Failed to count votes: %v", err)
	}
	if err := conn.QueryRow(
		"SELECT COUNT(*) FROM vote_selection WHERE quizz_id = $1 AND category = 'comparer'", quizzID,
	).Scan(&selectionCount); err != nil {
		t.Fatalf("Failed to count selections: %v", err)
	}

	if voteCount != 1 {
		t.Errorf("Expected 1 vote record, got %d", voteCount)
	}
	if selectionCount != 1 {
		t.Errorf("Expected 1 selection after replacement, got %d", selectionCount)
	}
}

func TestVoteSummaryEndpoint(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewVoteHandler(db.New(conn), cfg)

	quizzID := testutil.CreateTestQuizz(t, conn, models.StatusVoting1)
	testutil.AddTestParticipant(t, conn, quizzID, "p1", models.Answers{Explorer: "A"})
	testutil.AddTestParticipant(t, conn, quizzID, "p2", models.Answers{})
	testutil.CastTestVote(t, conn, quizzID, models.CategoryExplorer, "v1", []string{"p1"})

	req := testutil.MakeRequest("GET", "/quizz/"+quizzID+"/votes/explorer/summary", nil, nil)
	req.SetPathValue("id", quizzID)
	req.SetPathValue("category", "explorer")
	w := httptest.NewRecorder()

	handler.Summary(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.VoteSummary
	testutil.AssertJSON(t, w, &resp)
	if resp.ParticipantsCount != 2 || resp.VotesCount != 1 {
		t.Errorf("Expected counts 2/1, got %d/%d", resp.ParticipantsCount, resp.VotesCount)
	}
}
