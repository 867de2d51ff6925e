package handlers

//go:generate mockgen -source=my_services.go -destination=my_services_mock_test.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-health-portal/internal/identity"
	"github.com/sbilibin2017/gw-health-portal/internal/logger"
	"github.com/sbilibin2017/gw-health-portal/internal/models"
)

// MyServicesReader defines the interface that the service must implement.
type MyServicesReader interface {
	List(ctx context.Context, userID string) ([]models.UserServiceDetails, error)
}

// MyServicesView is the content of my_services.html.
type MyServicesView struct {
	Services []models.UserServiceDetails
	Error    string
}

// NewMyServicesPage returns the handler listing the user's selections.
func NewMyServicesPage(svc MyServicesReader, rd *Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := identity.FromContext(r.Context())
		if !ok {
			http.Redirect(w, r, "/auth/login", http.StatusTemporaryRedirect)
			return
		}

		rows, err := svc.List(r.Context(), session.UserID)
		if err != nil {
			logger.FromContext(r.Context()).Errorw("failed to load user services", "userID", session.UserID, "error", err)
			rd.Render(w, r, http.StatusInternalServerError, "my_services.html", "My Services", MyServicesView{
				Error: "Failed to load your services. Please try again.",
			})
			return
		}

		rd.Render(w, r, http.StatusOK, "my_services.html", "My Services", MyServicesView{Services: rows})
	}
}
