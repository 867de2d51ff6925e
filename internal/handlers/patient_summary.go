package handlers

//go:generate mockgen -source=patient_summary.go -destination=patient_summary_mock_test.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-health-portal/internal/identity"
	"github.com/sbilibin2017/gw-health-portal/internal/logger"
	"github.com/sbilibin2017/gw-health-portal/internal/models"
	"github.com/sbilibin2017/gw-health-portal/internal/services"
)

// SessionReader resolves the caller's session.
type SessionReader interface {
	SessionFromRequest(ctx context.Context, r *http.Request) (*identity.Session, error)
}

// PatientSummaryReader defines the interface that the service must implement.
type PatientSummaryReader interface {
	Summary(ctx context.Context, userID string) (*models.PatientSummary, error)
}

// PatientSummaryErrorResponse represents an error response for the patient summary
// swagger:model PatientSummaryErrorResponse
type PatientSummaryErrorResponse struct {
	// Error message
	// default: Patient information not found
	Error string `json:"error"`
}

// NewPatientSummaryHandler returns an HTTP handler for the signed-in patient's health summary.
// @Summary Get patient summary
// @Description Returns biomarker counts, biological age and the assigned doctor of the signed-in patient.
// @Tags patient
// @Produce json
// @Success 200 {object} models.PatientSummary
// @Failure 401 {object} handlers.PatientSummaryErrorResponse "You must be logged in to access this resource"
// @Failure 404 {object} handlers.PatientSummaryErrorResponse "Patient information not found"
// @Failure 500 {object} handlers.PatientSummaryErrorResponse "Failed to fetch patient data"
// @Router /patient/summary [get]
// @Security CookieAuth
func NewPatientSummaryHandler(svc PatientSummaryReader, sessions SessionReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromContext(ctx)

		w.Header().Set("Content-Type", "application/json")

		session, err := sessions.SessionFromRequest(ctx, r)
		if err != nil {
			log.Warnw("patient summary without session", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(PatientSummaryErrorResponse{Error: "You must be logged in to access this resource"})
			return
		}

		summary, err := svc.Summary(ctx, session.UserID)
		if errors.Is(err, services.ErrPatientInfoNotFound) {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(PatientSummaryErrorResponse{Error: "Patient information not found"})
			return
		}
		if err != nil {
			log.Errorw("failed to fetch patient summary", "userID", session.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(PatientSummaryErrorResponse{Error: "Failed to fetch patient data"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(summary)
	}
}
