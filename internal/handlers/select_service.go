package handlers

//go:generate mockgen -source=select_service.go -destination=select_service_mock_test.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-health-portal/internal/logger"
	"github.com/sbilibin2017/gw-health-portal/internal/models"
	"github.com/sbilibin2017/gw-health-portal/internal/services"
)

// ServiceSelector defines the interface that the service must implement.
type ServiceSelector interface {
	Select(ctx context.Context, in models.SelectServiceInput) (*models.UserService, error)
}

// SelectServiceRequest represents the JSON body for selecting a service
// swagger:model SelectServiceRequest
type SelectServiceRequest struct {
	// Catalog ID of the service
	// required: true
	// default: 2
	ServiceID string `json:"serviceId"`

	// Identity provider ID of the patient
	// required: true
	// default: 7c9e6679-7425-40de-944b-e07fc1f90ae7
	UserID string `json:"userId"`

	// Requested slot, free text or RFC3339
	// default: Tomorrow 9:00 AM
	AppointmentDate *string `json:"appointmentDate"`

	// Patient notes
	Notes *string `json:"notes"`
}

// SelectServiceResponse represents a successful selection
// swagger:model SelectServiceResponse
type SelectServiceResponse struct {
	// Success message
	// default: Service selected successfully
	Message string `json:"message"`

	// Stored user_services row
	Data *models.UserService `json:"data"`
}

// SelectServiceErrorResponse represents an error response for selecting a service
// swagger:model SelectServiceErrorResponse
type SelectServiceErrorResponse struct {
	// Error message
	// default: Service not found
	Error string `json:"error"`
}

// selectionError maps a selection failure to a status and a message for the patient.
func selectionError(err error) (int, string) {
	var storeErr *services.StoreError
	switch {
	case errors.Is(err, services.ErrServiceIDRequired),
		errors.Is(err, services.ErrUserIDRequired):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, services.ErrServiceNotFound):
		return http.StatusNotFound, err.Error()
	case errors.As(err, &storeErr):
		return http.StatusInternalServerError, "Failed to select service: " + storeErr.Error()
	default:
		return http.StatusInternalServerError, "An unexpected error occurred: " + err.Error()
	}
}

// NewSelectServiceHandler returns an HTTP handler that records a patient selecting a service.
// @Summary Select a service
// @Description Validates the request, checks that the service exists and stores an Active selection. Empty appointmentDate and notes are stored as null. Resubmitting creates another selection.
// @Tags services
// @Accept json
// @Produce json
// @Param request body handlers.SelectServiceRequest true "Select Service Request"
// @Success 200 {object} handlers.SelectServiceResponse "Service selected successfully"
// @Failure 400 {object} handlers.SelectServiceErrorResponse "Invalid request format, Service ID is required or User ID is required"
// @Failure 404 {object} handlers.SelectServiceErrorResponse "Service not found"
// @Failure 500 {object} handlers.SelectServiceErrorResponse "Failed to select service"
// @Router /services/select [post]
func NewSelectServiceHandler(svc ServiceSelector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromContext(ctx)

		w.Header().Set("Content-Type", "application/json")

		var req SelectServiceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Errorw("failed to decode select service request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SelectServiceErrorResponse{Error: "Invalid request format"})
			return
		}

		row, err := svc.Select(ctx, models.SelectServiceInput{
			ServiceID:       req.ServiceID,
			UserID:          req.UserID,
			AppointmentDate: req.AppointmentDate,
			Notes:           req.Notes,
		})
		if err != nil {
			status, msg := selectionError(err)
			log.Warnw("service selection failed", "serviceID", req.ServiceID, "userID", req.UserID, "status", status, "error", err)
			w.WriteHeader(status)
			json.NewEncoder(w).Encode(SelectServiceErrorResponse{Error: msg})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(SelectServiceResponse{
			Message: "Service selected successfully",
			Data:    row,
		})
	}
}
