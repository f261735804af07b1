package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/mergington/activities/metrics"
	"github.com/mergington/activities/roster"
)

// UnregisterHandler handles requests to remove a student from an activity.
type UnregisterHandler struct {
	logger   *slog.Logger
	store    RosterStore
	recorder RosterRecorder
}

// NewUnregisterHandler creates a new UnregisterHandler.
func NewUnregisterHandler(logger *slog.Logger, store RosterStore, recorder RosterRecorder) *UnregisterHandler {
	return &UnregisterHandler{
		logger:   logger,
		store:    store,
		recorder: recorder,
	}
}

// ServeHTTP implements http.Handler.
func (h *UnregisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	activity := r.PathValue("activity")
	email := r.URL.Query().Get("email")
	if email == "" {
		writeJSON(w, http.StatusBadRequest, DetailResponse{Detail: "Email is required"})
		return
	}

	err := h.store.Unregister(activity, email)
	switch {
	case errors.Is(err, roster.ErrActivityNotFound):
		h.recorder.RecordUnregister(activity, metrics.StatusNotFound)
		writeJSON(w, http.StatusNotFound, DetailResponse{Detail: "Activity not found"})
		return
	case errors.Is(err, roster.ErrNotSignedUp):
		h.recorder.RecordUnregister(activity, metrics.StatusRejected)
		writeJSON(w, http.StatusBadRequest, DetailResponse{Detail: "Student is not signed up for this activity"})
		return
	case err != nil:
		h.logger.Error("unregister failed", "activity", activity, "email", email, "error", err)
		writeJSON(w, http.StatusInternalServerError, DetailResponse{Detail: err.Error()})
		return
	}

	h.logger.Info("student unregistered", "activity", activity, "email", email)
	h.recorder.RecordUnregister(activity, metrics.StatusOK)
	h.recorder.ObserveSizes(h.store.Sizes())

	writeJSON(w, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Unregistered %s from %s", email, activity),
	})
}
