package handlers

//go:generate mockgen -source=dashboard.go -destination=dashboard_mock_test.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-health-portal/internal/identity"
	"github.com/sbilibin2017/gw-health-portal/internal/models"
)

// drawServiceID is the catalog entry the appointment card links to.
const drawServiceID = "3"

// DashboardReader defines the interface that the service must implement.
type DashboardReader interface {
	Dashboard(ctx context.Context, userID string) *models.Dashboard
}

// DashboardView is the content of dashboard.html.
type DashboardView struct {
	Greeting    string
	Placeholder bool
	Unavailable bool
	Summary     models.PatientSummary
	Services    []models.Service

	DrawServiceID string
}

// NewDashboardPage returns the home page handler.
func NewDashboardPage(svc DashboardReader, rd *Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := identity.FromContext(r.Context())
		if !ok {
			http.Redirect(w, r, "/auth/login", http.StatusTemporaryRedirect)
			return
		}

		dashboard := svc.Dashboard(r.Context(), session.UserID)

		greeting := dashboard.User.DisplayName()
		if greeting == "" {
			greeting = session.Email
		}

		rd.Render(w, r, http.StatusOK, "dashboard.html", "Dashboard", DashboardView{
			Greeting:    greeting,
			Placeholder: dashboard.Variant == models.DashboardPlaceholder,
			Unavailable: dashboard.Variant == models.DashboardUnavailable,
			Summary:     dashboard.Summary,
			Services:    dashboard.Services,

			DrawServiceID: drawServiceID,
		})
	}
}
