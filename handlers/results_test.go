// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/bogdanripa/quizz/db"
	"github.com/bogdanripa/quizz/models"
	"github.com/bogdanripa/quizz/testutil"
)

func TestGetResults(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewResultsHandler(db.New(conn), cfg)

	quizzID := testutil.CreateTestQuizz(t, conn, models.StatusResults1)
	testutil.AddTestParticipant(t, conn, quizzID, "p1", models.Answers{Explorer: "Mountains"})
	testutil.AddTestParticipant(t, conn, quizzID, "p2", models.Answers{Explorer: "Sea"})
	testutil.AddTestParticipant(t, conn, quizzID, "p3", models.Answers{Explorer: ""})
	testutil.CastTestVote(t, conn, quizzID, models.CategoryExplorer, "v1", []string{"p1", "p2"})
	testutil.CastTestVote(t, conn, quizzID, models.CategoryExplorer, "v2", []string{"p2"})

	req := testutil.MakeRequest("GET", "/quizz/"+quizzID+"/explorer/results", nil, nil)
	req.SetPathValue("id", quizzID)
	req.SetPathValue("category", "explorer")
	w := httptest.NewRecorder()

	handler.Get(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.ResultsResponse
	testutil.AssertJSON(t, w, &resp)

	want := []models.ResultEntry{
		{ID: "p2", Text: "Sea", Count: 2},
		{ID: "p1", Text: "Mountains", Count: 1},
	}
	if !reflect.DeepEqual(resp.Results, want) {
		t.Errorf("Expected results %+v, got %+v", want, resp.Results)
	}
}

func TestGetResultsNoVotes(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewResultsHandler(db.New(conn), cfg)

	quizzID := testutil.CreateTestQuizz(t, conn, models.StatusResults2)
	testutil.AddTestParticipant(t, conn, quizzID, "p1", models.Answers{Introspector: "Patience"})

	req := testutil.MakeRequest("GET", "/quizz/"+quizzID+"/introspector/results", nil, nil)
	req.SetPathValue("id", quizzID)
	req.SetPathValue("category", "introspector")
	w := httptest.NewRecorder()

	handler.Get(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.ResultsResponse
	testutil.AssertJSON(t, w, &resp)

	want := []models.ResultEntry{{ID: "p1", Text: "Patience", Count: 0}}
	if !reflect.DeepEqual(resp.Results, want) {
		t.Errorf("Expected zeroed results %+v, got %+v", want, resp.Results)
	}
}

func TestGetResultsUnknownCategory(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewResultsHandler(db.New(conn), cfg)

	quizzID := testutil.CreateTestQuizz(t, conn, models.StatusResults1)

	req := testutil.MakeRequest("GET", "/quizz/"+quizzID+"/judger/results", nil, nil)
	req.SetPathValue("id", quizzID)
	req.SetPathValue("category", "judger")
	w := httptest.NewRecorder()

	handler.Get(w, req)

	testutil.AssertStatus(t, w, http.StatusNotFound)
	if w.Body.Len() != 0 {
		t.Errorf("Expected empty body for unknown category, got %q", w.Body.String())
	}
}

func TestGetResultsUnknownQuizz(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewResultsHandler(db.New(conn), cfg)

	req := testutil.MakeRequest("GET", "/quizz/no-such-quizz/recommender/results", nil, nil)
	req.SetPathValue("id", "no-such-quizz")
	req.SetPathValue("category", "recommender")
	w := httptest.NewRecorder()

	handler.Get(w, req)

	testutil.AssertStatus(t, w, http.StatusNotFound)

	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Error != "Quiz not found" {
		t.Errorf("Expected error 'Quiz not found', got %q", resp.Error)
	}
}
