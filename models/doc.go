// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - SetStatusRequest: status
  - SubmitAnswersRequest: participantId, answers
  - RecordVoteRequest: voterId, selections

# Response Types

Types for JSON responses:

  - CreateQuizzResponse: quizzId
  - StatusResponse: status
  - OKResponse: ok
  - ParticipantSummary: participantsCount, submittedCount
  - VoteSummary: participantsCount, votesCount
  - ResultsResponse: results
  - ErrorResponse: error

# Domain Types

Internal data structures:

  - Answers: one free-text answer per category
  - AnswerEntry: a participant's answer for one category
  - ResultEntry: an answer with its vote tally

# Constants

Status values (the ten-stage session sequence):

	StatusCollecting → StatusVoting1 → StatusResults1 → ... → StatusVoting4
	→ StatusResults4 → StatusFinish

IsValidStatus checks membership; Statuses lists them in moderator order.

Categories (closed enumeration):

	CategoryExplorer     = "explorer"
	CategoryIntrospector = "introspector"
	CategoryComparer     = "comparer"
	CategoryRecommender  = "recommender"

ParseCategory maps URL path segments to Category values so per-category
endpoints share one generic handler instead of four copies.
*/
package models
