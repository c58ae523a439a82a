package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"match-alerts-service/internal/app/matches"
	appprefs "match-alerts-service/internal/app/prefs"
	"match-alerts-service/internal/catalog"
	"match-alerts-service/internal/poller"
	"match-alerts-service/internal/push"
)

// defaultUserID keys preference records when the caller does not identify
// itself; the service runs without authentication.
const defaultUserID = "default"

// Handler wires HTTP routes to the application services.
type Handler struct {
	matches      *matches.Service
	prefs        *appprefs.Service
	logger       *slog.Logger
	pollerStatus func() poller.Status
	pushStatus   func() push.Status
}

// NewHandler constructs a Handler. The status funcs may be nil when the
// corresponding component is not running.
func NewHandler(matchSvc *matches.Service, prefSvc *appprefs.Service, logger *slog.Logger, pollerStatus func() poller.Status, pushStatus func() push.Status) *Handler {
	return &Handler{
		matches:      matchSvc,
		prefs:        prefSvc,
		logger:       logger,
		pollerStatus: pollerStatus,
		pushStatus:   pushStatus,
	}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r, h.logger) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic and exposes feed/channel health so a
// front end can indicate stale or disconnected state.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r, h.logger) {
		return
	}

	body := map[string]any{"status": "ready"}
	ready := true

	if h.pollerStatus != nil {
		st := h.pollerStatus()
		body["poller"] = map[string]any{
			"consecutiveFailures": st.ConsecutiveFailures,
			"lastError":           st.LastError,
		}
		if !st.IsReady() {
			ready = false
			if st.LastError != "" {
				body["status"] = st.LastError
			} else {
				body["status"] = "not ready"
			}
		}
	}
	if h.pushStatus != nil {
		st := h.pushStatus()
		body["push"] = map[string]any{
			"connected": st.Connected,
			"closed":    st.Closed,
			"attempts":  st.Attempts,
			"lastError": st.LastError,
		}
	}

	status := http.StatusOK
	if !ready {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, body, h.logger)
}

// LiveMatches returns the reconciled live set.
func (h *Handler) LiveMatches(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r, h.logger) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"matches": h.matches.LiveMatches()}, h.logger)
}

// UpcomingMatches returns the reconciled upcoming set.
func (h *Handler) UpcomingMatches(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r, h.logger) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"matches": h.matches.UpcomingMatches()}, h.logger)
}

// AlertedMatches returns live matches with at least one firing alert for
// the calling user.
func (h *Handler) AlertedMatches(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)

	alerted, err := h.matches.AlertedMatches(r.Context(), userID(r))
	if err != nil {
		logger.Error("alerted matches failed", "error", err)
		writeError(w, r, http.StatusInternalServerError, "preferences unavailable", h.logger)
		return
	}
	if alerted == nil {
		alerted = []matches.AlertedMatch{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"matches": alerted}, h.logger)
}

// MatchByID returns a single match by id.
func (h *Handler) MatchByID(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r, h.logger) {
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/matches/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, r, http.StatusNotFound, "match not found", h.logger)
		return
	}
	m, ok := h.matches.MatchByID(id)
	if !ok {
		writeError(w, r, http.StatusNotFound, "match not found", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, m, h.logger)
}

// Catalog lists each sport's alertable event types for form rendering.
func (h *Handler) Catalog(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r, h.logger) {
		return
	}

	type entry struct {
		Key     string `json:"key"`
		Label   string `json:"label"`
		HasData bool   `json:"hasData"`
	}
	body := make(map[string][]entry)
	for _, sport := range catalog.Sports() {
		descs := catalog.EventTypes(sport)
		entries := make([]entry, 0, len(descs))
		for _, d := range descs {
			entries = append(entries, entry{Key: d.Key, Label: d.Label, HasData: d.HasData})
		}
		body[sport] = entries
	}
	writeJSON(w, http.StatusOK, body, h.logger)
}

func requireGet(w http.ResponseWriter, r *http.Request, logger *slog.Logger) bool {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", logger)
		return false
	}
	return true
}

// userID resolves the caller identity: header first, then query parameter,
// then the shared default.
func userID(r *http.Request) string {
	if id := strings.TrimSpace(r.Header.Get("X-User-ID")); id != "" {
		return id
	}
	if id := strings.TrimSpace(r.URL.Query().Get("user")); id != "" {
		return id
	}
	return defaultUserID
}
