// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/bogdanripa/quizz/cliparse"
	"github.com/bogdanripa/quizz/db"
	"github.com/bogdanripa/quizz/models"
)

// SetupTestDB creates a fresh in-memory sqlite database with the full
// schema. Each call returns an isolated database; limiting the pool to one
// connection keeps every statement on the same in-memory instance.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// SetupTestStore wraps SetupTestDB in a Store.
func SetupTestStore(t *testing.T) *db.Store {
	t.Helper()
	return db.New(SetupTestDB(t))
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3000,
		DatabaseURL:  ":memory:",
		DatabaseType: "sqlite",
	}
}

// CreateTestQuizz inserts a quizz with the given status and returns its id
func CreateTestQuizz(t *testing.T, conn *sql.DB, status string) string {
	t.Helper()

	quizzID := uuid.NewString()
	now := time.Now()
	_, err := conn.Exec(`
		INSERT INTO quizz (id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
	`, quizzID, status, now, now)
	if err != nil {
		t.Fatalf("Failed to create test quizz: %v", err)
	}

	return quizzID
}

// AddTestParticipant inserts a participant with the given answers at the
// next position
func AddTestParticipant(t *testing.T, conn *sql.DB, quizzID, participantID string, answers models.Answers) {
	t.Helper()

	var position int
	err := conn.QueryRow(`
		SELECT COALESCE(MAX(position), 0) + 1 FROM participant WHERE quizz_id = $1
	`, quizzID).Scan(&position)
	if err != nil {
		t.Fatalf("Failed to compute participant position: %v", err)
	}

	_, err = conn.Exec(`
		INSERT INTO participant (quizz_id, participant_id, explorer, introspector, comparer, recommender, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, quizzID, participantID, answers.Explorer, answers.Introspector, answers.Comparer, answers.Recommender, position)
	if err != nil {
		t.Fatalf("Failed to create test participant: %v", err)
	}
}

// CastTestVote inserts a vote with its selections
func CastTestVote(t *testing.T, conn *sql.DB, quizzID string, category models.Category, voterID string, selections []string) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO vote (quizz_id, category, voter_id)
		VALUES ($1, $2, $3)
	`, quizzID, category, voterID)
	if err != nil {
		t.Fatalf("Failed to create test vote: %v", err)
	}

	for idx, selection := range selections {
		_, err := conn.Exec(`
			INSERT INTO vote_selection (quizz_id, category, voter_id, idx, selection)
			VALUES ($1, $2, $3, $4, $5)
		`, quizzID, category, voterID, idx, selection)
		if err != nil {
			t.Fatalf("Failed to create test selection: %v", err)
		}
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
