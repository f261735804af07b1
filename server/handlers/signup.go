package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/mergington/activities/metrics"
	"github.com/mergington/activities/roster"
)

// SignupHandler handles requests to register a student for an activity.
type SignupHandler struct {
	logger   *slog.Logger
	store    RosterStore
	recorder RosterRecorder
}

// NewSignupHandler creates a new SignupHandler.
func NewSignupHandler(logger *slog.Logger, store RosterStore, recorder RosterRecorder) *SignupHandler {
	return &SignupHandler{
		logger:   logger,
		store:    store,
		recorder: recorder,
	}
}

// ServeHTTP implements http.Handler.
func (h *SignupHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	activity := r.PathValue("activity")
	email := r.URL.Query().Get("email")
	if email == "" {
		writeJSON(w, http.StatusBadRequest, DetailResponse{Detail: "Email is required"})
		return
	}

	err := h.store.Signup(activity, email)
	switch {
	case errors.Is(err, roster.ErrActivityNotFound):
		h.recorder.RecordSignup(activity, metrics.StatusNotFound)
		writeJSON(w, http.StatusNotFound, DetailResponse{Detail: "Activity not found"})
		return
	case errors.Is(err, roster.ErrAlreadySignedUp):
		h.recorder.RecordSignup(activity, metrics.StatusRejected)
		writeJSON(w, http.StatusBadRequest, DetailResponse{Detail: "Student is already signed up"})
		return
	case err != nil:
		h.logger.Error("signup failed", "activity", activity, "email", email, "error", err)
		writeJSON(w, http.StatusInternalServerError, DetailResponse{Detail: err.Error()})
		return
	}

	h.logger.Info("student signed up", "activity", activity, "email", email)
	h.recorder.RecordSignup(activity, metrics.StatusOK)
	h.recorder.ObserveSizes(h.store.Sizes())

	writeJSON(w, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Signed up %s for %s", email, activity),
	})
}
