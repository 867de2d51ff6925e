package handlers

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/csrf"
	"github.com/samber/lo"
	"github.com/sbilibin2017/gw-health-portal/internal/booking"
	"github.com/sbilibin2017/gw-health-portal/internal/identity"
	"github.com/sbilibin2017/gw-health-portal/internal/logger"
	"github.com/yuin/goldmark"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

const missingValue = "—"

var pages = []string{
	"dashboard.html",
	"services.html",
	"service_detail.html",
	"my_services.html",
	"login.html",
	"error.html",
}

// Page is what every template receives.
type Page struct {
	Title     string
	Session   *identity.Session
	CSRFField template.HTML
	Content   any
}

// ErrorView is the content of error.html.
type ErrorView struct {
	Heading  string
	Message  string
	RetryURL string
	BackURL  string
}

// Renderer renders the embedded page templates.
type Renderer struct {
	pages map[string]*template.Template
	md    goldmark.Markdown
}

// NewRenderer parses every page together with the layout.
func NewRenderer() (*Renderer, error) {
	rd := &Renderer{
		pages: make(map[string]*template.Template, len(pages)),
		md:    goldmark.New(),
	}

	funcs := template.FuncMap{
		"markdown":    rd.markdown,
		"appointment": booking.FormatAppointmentDate,
		"num":         formatNumber,
		"text":        formatText,
		"doctor":      formatDoctorName,
		"ageDelta":    formatAgeDelta,
		"initial":     initial,
		"flag":        lo.FromPtr[bool],
	}

	for _, page := range pages {
		tmpl, err := template.New(page).Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		rd.pages[page] = tmpl
	}
	return rd, nil
}

// Render writes page with the given status. The page is rendered into a
// buffer first so template errors still produce a clean 500.
func (rd *Renderer) Render(w http.ResponseWriter, r *http.Request, status int, page, title string, content any) {
	log := logger.FromContext(r.Context())

	tmpl, ok := rd.pages[page]
	if !ok {
		log.Errorw("unknown page template", "page", page)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	session, _ := identity.FromContext(r.Context())
	data := Page{
		Title:     title,
		Session:   session,
		CSRFField: csrf.TemplateField(r),
		Content:   content,
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		log.Errorw("failed to render page", "page", page, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

// NotFound renders the 404 page.
func (rd *Renderer) NotFound(w http.ResponseWriter, r *http.Request) {
	rd.Render(w, r, http.StatusNotFound, "error.html", "Not found", ErrorView{
		Heading: "Page not found",
		Message: "The page you are looking for does not exist.",
		BackURL: "/",
	})
}

// StaticHandler serves the embedded assets under /static/.
func StaticHandler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}

// markdown renders a service description. Raw HTML in the source is not
// passed through.
func (rd *Renderer) markdown(src string) template.HTML {
	var buf bytes.Buffer
	if err := rd.md.Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(buf.String())
}

func formatNumber(v *float64) string {
	if v == nil {
		return missingValue
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func formatText(v *string) string {
	if v == nil || *v == "" {
		return missingValue
	}
	return *v
}

// formatDoctorName renders a doctor's name with a single ", MD" suffix.
func formatDoctorName(v *string) string {
	if v == nil || *v == "" {
		return missingValue
	}
	return strings.TrimSuffix(*v, ", MD") + ", MD"
}

// formatAgeDelta renders a years difference as "15 years younger".
func formatAgeDelta(v *float64) string {
	if v == nil {
		return missingValue
	}
	word := "older"
	if *v < 0 {
		word = "younger"
	}
	return strconv.FormatFloat(math.Abs(*v), 'f', -1, 64) + " years " + word
}

// initial is the avatar letter shown for a signed-in user.
func initial(s string) string {
	for _, r := range s {
		return strings.ToUpper(string(r))
	}
	return "U"
}
