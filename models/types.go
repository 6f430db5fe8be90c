package models

// Quizz status constants. A quizz moves through ten stages: answers are
// collected, then each category gets a voting round followed by a results
// round, and the session ends on finish.
const (
	StatusCollecting = "collecting"
	StatusVoting1    = "voting1"
	StatusResults1   = "results1"
	StatusVoting2    = "voting2"
	StatusResults2   = "results2"
	StatusVoting3    = "voting3"
	StatusResults3   = "results3"
	StatusVoting4    = "voting4"
	StatusResults4   = "results4"
	StatusFinish     = "finish"
)

// Statuses lists every valid status in moderator order.
var Statuses = []string{
	StatusCollecting,
	StatusVoting1,
	StatusResults1,
	StatusVoting2,
	StatusResults2,
	StatusVoting3,
	StatusResults3,
	StatusVoting4,
	StatusResults4,
	StatusFinish,
}

// IsValidStatus reports whether s is one of the ten known statuses.
func IsValidStatus(s string) bool {
	for _, status := range Statuses {
		if s == status {
			return true
		}
	}
	return false
}

// Category identifies one of the four fixed answer/vote topics.
type Category string

const (
	CategoryExplorer     Category = "explorer"
	CategoryIntrospector Category = "introspector"
	CategoryComparer     Category = "comparer"
	CategoryRecommender  Category = "recommender"
)

// Categories lists the four categories in their fixed round order.
var Categories = []Category{
	CategoryExplorer,
	CategoryIntrospector,
	CategoryComparer,
	CategoryRecommender,
}

// ParseCategory maps a path segment to a Category. Returns false for
// anything outside the closed set.
func ParseCategory(s string) (Category, bool) {
	switch Category(s) {
	case CategoryExplorer, CategoryIntrospector, CategoryComparer, CategoryRecommender:
		return Category(s), true
	}
	return "", false
}

// Request types

type SetStatusRequest struct {
	Status string `json:"status"`
}

// Answers holds one free-text answer per category. Missing JSON fields
// decode to "", which means "not yet answered".
type Answers struct {
	Explorer     string `json:"explorer"`
	Introspector string `json:"introspector"`
	Comparer     string `json:"comparer"`
	Recommender  string `json:"recommender"`
}

type SubmitAnswersRequest struct {
	ParticipantID string  `json:"participantId"`
	Answers       Answers `json:"answers"`
}

// RecordVoteRequest carries a voter's full selection set for one category.
// A nil Selections means the field was absent (or null) in the request body,
// which is rejected; an empty array is a legal abstention.
type RecordVoteRequest struct {
	VoterID    string   `json:"voterId"`
	Selections []string `json:"selections"`
}

// Response types

type CreateQuizzResponse struct {
	QuizzID string `json:"quizzId"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

type OKResponse struct {
	OK bool `json:"ok"`
}

type ParticipantSummary struct {
	ParticipantsCount int `json:"participantsCount"`
	SubmittedCount    int `json:"submittedCount"`
}

type VoteSummary struct {
	ParticipantsCount int `json:"participantsCount"`
	VotesCount        int `json:"votesCount"`
}

// Domain types

// AnswerEntry is one participant's answer for a single category, keyed by
// the participant's id. Text is the raw, untrimmed submission.
type AnswerEntry struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// ResultEntry is an AnswerEntry plus its vote tally.
type ResultEntry struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Count int    `json:"count"`
}

type ResultsResponse struct {
	Results []ResultEntry `json:"results"`
}

// Error response

type ErrorResponse struct {
	Error string `json:"error"`
}
