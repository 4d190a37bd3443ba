// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/campus-ballot/cliparse"
	"github.com/danielhkuo/campus-ballot/handlers"
	"github.com/danielhkuo/campus-ballot/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(db, cfg)
	votingHandler := handlers.NewVotingHandler(db, cfg)
	resultsHandler := handlers.NewResultsHandler(db, cfg)
	electionHandler := handlers.NewElectionHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Authentication
	mux.HandleFunc("POST /auth/login", middleware.WithLogging(authHandler.Login))
	mux.HandleFunc("POST /auth/logout", middleware.WithLogging(middleware.RequireStudent(db, authHandler.Logout)))
	mux.HandleFunc("GET /auth/me", middleware.WithLogging(middleware.RequireStudent(db, authHandler.Me)))

	// Voting (authenticated students)
	mux.HandleFunc("POST /votes", middleware.WithLogging(middleware.RequireStudent(db, votingHandler.SubmitBallot)))
	mux.HandleFunc("GET /votes/me", middleware.WithLogging(middleware.RequireStudent(db, votingHandler.GetMyVotes)))

	// Election info and results (public)
	mux.HandleFunc("GET /election/status", middleware.WithLogging(electionHandler.GetStatus))
	mux.HandleFunc("GET /positions", middleware.WithLogging(resultsHandler.GetPositions))
	mux.HandleFunc("GET /results", middleware.WithLogging(resultsHandler.GetResults))
	mux.HandleFunc("GET /results/position/{id}", middleware.WithLogging(resultsHandler.GetPositionResults))

	// Election administration
	mux.HandleFunc("POST /admin/elections", middleware.WithLogging(electionHandler.CreateElection))
	mux.HandleFunc("PUT /admin/election/status", middleware.WithLogging(electionHandler.UpdateStatus))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("campus-ballot API v1"))
	})

	return mux
}
