// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the quizz API server.

quizz runs live group polling sessions: participants submit free-text
answers across four fixed categories, then vote on each other's answers in
four rounds while a moderator advances the session status and everyone
polls for live tallies.

# Starting the Server

The server reads configuration from a .env file, environment variables, or
CLI flags:

	DATABASE_URL=quizz.db go run main.go

Or with flags:

	go run main.go -p 3000 -d "postgres://..." -t postgres

# Configuration

Required settings:

  - DATABASE_URL (-d): connection string (sqlite path or postgres URL)

Optional settings:

  - PORT (-p): Server port (default: 3000)
  - DATABASE_TYPE (-t): "sqlite" (default) or "postgres"

# Architecture

The server uses a handler-based architecture with dependency injection:

  - db: schema creation and the session Store (status machine, answer
    merging, vote recording, tallying)
  - handlers: HTTP request handlers (quizz, answers, votes, results)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: status/category enumerations and wire types
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
