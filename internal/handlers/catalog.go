package handlers

//go:generate mockgen -source=catalog.go -destination=catalog_mock_test.go -package=handlers

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-health-portal/internal/booking"
	"github.com/sbilibin2017/gw-health-portal/internal/identity"
	"github.com/sbilibin2017/gw-health-portal/internal/logger"
	"github.com/sbilibin2017/gw-health-portal/internal/models"
	"github.com/sbilibin2017/gw-health-portal/internal/services"
)

// CatalogReader defines the interface that the service must implement.
type CatalogReader interface {
	List(ctx context.Context) ([]models.Service, error)
	Get(ctx context.Context, id string) (*models.Service, error)
}

// ServicesView is the content of services.html.
type ServicesView struct {
	Services []models.Service
	Error    string
}

// ServiceDetailView is the content of service_detail.html.
type ServiceDetailView struct {
	Service  *models.Service
	Form     *booking.Form
	Dates    []string
	SignedIn bool
	Booked   bool
	Error    string
}

// NewServicesPage returns the catalog page handler.
func NewServicesPage(svc CatalogReader, rd *Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.List(r.Context())
		if err != nil {
			logger.FromContext(r.Context()).Errorw("failed to load services", "error", err)
			rd.Render(w, r, http.StatusInternalServerError, "services.html", "Services", ServicesView{
				Error: "Failed to load services. Please try again.",
			})
			return
		}

		rd.Render(w, r, http.StatusOK, "services.html", "Services", ServicesView{Services: list})
	}
}

// loadService renders the 404 or error page itself when the service cannot be shown.
func loadService(w http.ResponseWriter, r *http.Request, svc CatalogReader, rd *Renderer) (*models.Service, bool) {
	id := chi.URLParam(r, "id")

	service, err := svc.Get(r.Context(), id)
	if errors.Is(err, services.ErrServiceNotFound) {
		rd.NotFound(w, r)
		return nil, false
	}
	if err != nil {
		logger.FromContext(r.Context()).Errorw("failed to load service", "serviceID", id, "error", err)
		rd.Render(w, r, http.StatusInternalServerError, "error.html", "Error", ErrorView{
			Heading:  "Something went wrong",
			Message:  "Failed to load this service. Please try again.",
			RetryURL: r.URL.Path,
		})
		return nil, false
	}
	return service, true
}

func newBookingForm(r *http.Request, serviceID string) (*booking.Form, bool) {
	session, ok := identity.FromContext(r.Context())
	userID := ""
	if ok {
		userID = session.UserID
	}
	return booking.NewForm(serviceID, userID, booking.ScheduleFor(serviceID)), ok
}

// NewServiceDetailPage returns the service page handler. The query
// parameters date and time drive the booking form, so picking a date is a
// link without a time and always clears the previous time.
func NewServiceDetailPage(svc CatalogReader, rd *Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		service, ok := loadService(w, r, svc, rd)
		if !ok {
			return
		}

		form, signedIn := newBookingForm(r, service.ID)
		query := r.URL.Query()
		if date := query.Get("date"); date != "" && form.SelectDate(date) == nil {
			if slot := query.Get("time"); slot != "" {
				form.SelectTime(slot)
			}
		}

		rd.Render(w, r, http.StatusOK, "service_detail.html", service.Title, ServiceDetailView{
			Service:  service,
			Form:     form,
			Dates:    form.Schedule.Dates(),
			SignedIn: signedIn,
			Booked:   query.Get("booked") == "1",
		})
	}
}

// NewBookServicePage returns the handler of the booking form post. A
// successful booking redirects back to the service page; a failed one
// re-renders the form with the selection kept.
func NewBookServicePage(svc CatalogReader, submitter booking.Submitter, rd *Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromContext(ctx)

		service, ok := loadService(w, r, svc, rd)
		if !ok {
			return
		}

		form, signedIn := newBookingForm(r, service.ID)
		if err := r.ParseForm(); err != nil {
			log.Warnw("failed to parse booking form", "error", err)
		}
		form.Notes = r.PostFormValue("notes")
		if date := r.PostFormValue("date"); date != "" && form.SelectDate(date) == nil {
			if slot := r.PostFormValue("time"); slot != "" {
				form.SelectTime(slot)
			}
		}

		err := form.Submit(ctx, submitter)
		if err == nil {
			http.Redirect(w, r, "/services/"+url.PathEscape(service.ID)+"?booked=1", http.StatusSeeOther)
			return
		}

		status, msg := http.StatusUnprocessableEntity, err.Error()
		if form.State() == booking.StateFailed {
			status, msg = selectionError(err)
		}
		log.Warnw("booking failed", "serviceID", service.ID, "state", form.State(), "error", err)

		rd.Render(w, r, status, "service_detail.html", service.Title, ServiceDetailView{
			Service:  service,
			Form:     form,
			Dates:    form.Schedule.Dates(),
			SignedIn: signedIn,
			Error:    msg,
		})
	}
}
