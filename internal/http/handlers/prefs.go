package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"match-alerts-service/internal/domain/alerts"
	prefstore "match-alerts-service/internal/prefs"
)

// Preferences serves GET and POST for the user's alert preferences.
// GET always returns a renderable document, defaulted when the user has
// never saved. POST accepts a full or partial document, merges it, and
// returns the persisted result; validation failures are client-correctable
// 400s and a no-op write is a 409.
func (h *Handler) Preferences(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.getPreferences(w, r)
	case http.MethodPost:
		h.savePreferences(w, r)
	default:
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
	}
}

func (h *Handler) getPreferences(w http.ResponseWriter, r *http.Request) {
	p, err := h.prefs.Get(r.Context(), userID(r))
	if err != nil {
		loggerFromContext(r, h.logger).Error("load preferences failed", "error", err)
		writeError(w, r, http.StatusInternalServerError, "preferences unavailable", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, p, h.logger)
}

func (h *Handler) savePreferences(w http.ResponseWriter, r *http.Request) {
	var update alerts.AlertPreferences
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid preferences document: "+err.Error(), h.logger)
		return
	}

	merged, err := h.prefs.Save(r.Context(), userID(r), update)
	if err != nil {
		h.writePrefsError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, merged, h.logger)
}

// CustomAlerts serves the append-only quick store of ad-hoc alert
// definitions. A structurally identical resubmission is a 409, distinct
// from validation failures.
func (h *Handler) CustomAlerts(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listCustomAlerts(w, r)
	case http.MethodPost:
		h.addCustomAlert(w, r)
	default:
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
	}
}

func (h *Handler) listCustomAlerts(w http.ResponseWriter, r *http.Request) {
	list, err := h.prefs.ListCustom(r.Context(), userID(r))
	if err != nil {
		loggerFromContext(r, h.logger).Error("list custom alerts failed", "error", err)
		writeError(w, r, http.StatusInternalServerError, "alerts unavailable", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"alerts": list}, h.logger)
}

func (h *Handler) addCustomAlert(w http.ResponseWriter, r *http.Request) {
	var a alerts.Alert
	if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid alert document: "+err.Error(), h.logger)
		return
	}

	stored, err := h.prefs.QuickAdd(r.Context(), userID(r), a)
	if err != nil {
		h.writePrefsError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, stored, h.logger)
}

func (h *Handler) writePrefsError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, prefstore.ErrDuplicate):
		writeConflict(w, r, err.Error(), h.logger)
	case errors.Is(err, alerts.ErrInvalidPreferences):
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
	default:
		loggerFromContext(r, h.logger).Error("save failed", "error", err)
		writeError(w, r, http.StatusInternalServerError, "save failed", h.logger)
	}
}
