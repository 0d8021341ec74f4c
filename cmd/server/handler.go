package main

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"fbcal-backend/lib/scrapers/facebook"
)

type birthdayExporter interface {
	GetBirthdays(ctx context.Context, email, password string) (string, error)
}

type exportRequest struct {
	Email    string `json:"email"`
	Password string `json:"pass"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse{Error: message})
}

// handleExport runs the whole export under the submitted credentials
// and hands the ics back as a download.
func handleExport(exporter birthdayExporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req exportRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		if err != nil || req.Email == "" || req.Password == "" {
			writeError(w, http.StatusBadRequest, "expected a json body with email and pass")
			return
		}

		ics, err := exporter.GetBirthdays(r.Context(), req.Email, req.Password)
		if err != nil {
			status, message := classifyError(err)
			slog.ErrorContext(r.Context(), "birthday export failed", "err", err)
			writeError(w, status, message)
			return
		}

		w.Header().Set("Content-Type", "text/calendar")
		w.Header().Set("Content-Disposition", `attachment; filename=birthdays.ics`)
		w.Write([]byte(ics))
	}
}

// classifyError maps scraping failures onto responses without leaking
// internals: credential problems are the caller's, everything else is
// an upstream failure.
func classifyError(err error) (int, string) {
	switch {
	case errors.Is(err, facebook.ErrLoginRejected):
		return http.StatusUnauthorized, "login was rejected, check your credentials"
	case errors.Is(err, facebook.ErrCheckpointRequired):
		return http.StatusForbidden, "additional verification required, log in from a browser first"
	default:
		return http.StatusBadGateway, "could not extract birthdays"
	}
}
