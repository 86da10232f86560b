package console

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/sitehub-erp/sitehub/internal/access"
	"github.com/sitehub-erp/sitehub/internal/shared"
	"github.com/sitehub-erp/sitehub/internal/view"
)

// navLinks is the full navigation surface; the gate narrows it to the
// links the current role may use.
var navLinks = []access.NavLink{
	{Label: "Administration", Target: "admin.html"},
	{Label: "Store", Target: "store.html"},
	{Label: "Supply Chain", Target: "scm.html"},
	{Label: "Planning & Billing", Target: "planning-billing.html"},
	{Label: "Accounts & Banking", Target: "accounts-banking.html"},
}

// publicTemplates maps public pages to their templates.
var publicTemplates = map[string]string{
	"index.html":           "pages/landing.html",
	"login.html":           "pages/login.html",
	"signup.html":          "pages/signup.html",
	"forgot-password.html": "pages/forgot-password.html",
	"reset-password.html":  "pages/reset-password.html",
}

// Handler wires HTTP endpoints for the console pages.
type Handler struct {
	logger         *slog.Logger
	registry       *Registry
	templates      *view.Engine
	sessionManager *shared.SessionManager
	csrfManager    *shared.CSRFManager
	gate           *access.Gate
	validator      *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, registry *Registry, templates *view.Engine, sessions *shared.SessionManager, csrf *shared.CSRFManager, gate *access.Gate) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		logger:         logger,
		registry:       registry,
		templates:      templates,
		sessionManager: sessions,
		csrfManager:    csrf,
		gate:           gate,
		validator:      validator.New(),
	}
}

// MountRoutes registers the gated console routes on the provided
// router. Logout is mounted separately since it must work from any
// page regardless of the grant.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.showHome)
	r.Get("/{page}", h.showPage)
	r.Post("/{page}/tables/{table}/rows", h.createRow)
	r.Post("/{page}/tables/{table}/rows/{index}", h.updateRow)
}

func (h *Handler) showHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/"+access.HomePage, http.StatusSeeOther)
}

func (h *Handler) showPage(w http.ResponseWriter, r *http.Request) {
	page := chi.URLParam(r, "page")

	if h.registry.Has(page) {
		h.showConsolePage(w, r, page)
		return
	}
	if template, ok := publicTemplates[page]; ok {
		h.render(w, r, template, page, nil)
		return
	}
	http.NotFound(w, r)
}

func (h *Handler) showConsolePage(w http.ResponseWriter, r *http.Request, page string) {
	query := r.URL.Query()
	pageView, err := h.registry.View(page, query.Get("tab"), query)
	if err != nil {
		h.logger.Error("build page view", slog.String("page", page), slog.Any("error", err))
		http.NotFound(w, r)
		return
	}
	h.render(w, r, "pages/console.html", page, pageView)
}

func (h *Handler) createRow(w http.ResponseWriter, r *http.Request) {
	page := chi.URLParam(r, "page")
	tableID := chi.URLParam(r, "table")

	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	form, values, ok := h.boundForm(w, r, page, tableID)
	if !ok {
		return
	}

	if err := h.registry.AppendRow(page, tableID, form.Build(values)); err != nil {
		h.logger.Error("append row", slog.String("table", tableID), slog.Any("error", err))
		http.NotFound(w, r)
		return
	}
	h.flash(r, "success", "%s saved.", form.Title)
	h.redirectBack(w, r, page)
}

func (h *Handler) updateRow(w http.ResponseWriter, r *http.Request) {
	page := chi.URLParam(r, "page")
	tableID := chi.URLParam(r, "table")
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	form, values, ok := h.boundForm(w, r, page, tableID)
	if !ok {
		return
	}

	if err := h.registry.UpdateRow(page, tableID, index, form.Build(values)); err != nil {
		h.logger.Error("update row", slog.String("table", tableID), slog.Int("index", index), slog.Any("error", err))
		http.NotFound(w, r)
		return
	}
	h.flash(r, "success", "%s updated.", form.Title)
	h.redirectBack(w, r, page)
}

// boundForm looks up the table's form descriptor, collects its field
// values from the request and validates required fields. On a
// validation failure the user is sent back with an error toast.
func (h *Handler) boundForm(w http.ResponseWriter, r *http.Request, page, tableID string) (*Form, map[string]string, bool) {
	form, err := h.registry.Form(page, tableID)
	if err != nil {
		http.NotFound(w, r)
		return nil, nil, false
	}

	values := make(map[string]string, len(form.Fields))
	for _, field := range form.Fields {
		value := r.PostFormValue(field.Name)
		if field.Required {
			if err := h.validator.Var(value, "required"); err != nil {
				h.flash(r, "error", "%s is required.", field.Label)
				h.redirectBack(w, r, page)
				return nil, nil, false
			}
		}
		values[field.Name] = value
	}
	return form, values, true
}

// Logout clears the persisted role and destroys the session.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.gate.Forget(ctx)
	if sess := shared.SessionFromContext(ctx); sess != nil {
		h.sessionManager.Destroy(sess)
	}
	http.Redirect(w, r, "/"+access.LoginPage, http.StatusSeeOther)
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, template, page string, data any) {
	ctx := r.Context()
	sess := shared.SessionFromContext(ctx)
	grant := access.GrantFromContext(ctx)

	var csrfToken string
	if h.csrfManager != nil && sess != nil {
		csrfToken, _ = h.csrfManager.EnsureToken(ctx, sess)
	}
	var flash *shared.FlashMessage
	if sess != nil {
		flash = sess.PopFlash()
	}

	viewData := view.TemplateData{
		Title:       "SiteHub",
		CSRFToken:   csrfToken,
		Flash:       flash,
		CurrentPage: page,
		Role:        string(grant.Role()),
		Nav:         access.FilterNavigation(grant, navLinks),
		Data:        data,
	}
	if err := h.templates.Render(w, template, viewData); err != nil {
		h.logger.Error("render page", slog.String("page", page), slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// redirectBack returns to the page that submitted a form, keeping the
// active tab selected.
func (h *Handler) redirectBack(w http.ResponseWriter, r *http.Request, page string) {
	target := "/" + page
	if tab := r.PostFormValue("tab"); tab != "" {
		target += "?tab=" + tab
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (h *Handler) flash(r *http.Request, kind, format string, args ...any) {
	if sess := shared.SessionFromContext(r.Context()); sess != nil {
		sess.AddFlash(shared.FlashMessage{Kind: kind, Message: fmt.Sprintf(format, args...)})
	}
}
