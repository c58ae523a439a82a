package http

import (
	nethttp "net/http"

	"match-alerts-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/matches/live", handler.LiveMatches)
	mux.HandleFunc("/matches/upcoming", handler.UpcomingMatches)
	mux.HandleFunc("/matches/alerted", handler.AlertedMatches)
	mux.HandleFunc("/matches/", handler.MatchByID)
	mux.HandleFunc("/preferences", handler.Preferences)
	mux.HandleFunc("/alerts/custom", handler.CustomAlerts)
	mux.HandleFunc("/catalog", handler.Catalog)
	return mux
}
