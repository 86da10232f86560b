package access

import (
	"fmt"
	"strings"

	"github.com/sitehub-erp/sitehub/internal/shared"
)

// Role is an enumerated identity class controlling page access.
type Role string

const (
	// RoleAdmin manages users and company documents.
	RoleAdmin Role = "admin"
	// RoleStore manages inventory and stock movements.
	RoleStore Role = "store"
	// RoleSCM manages vendors and purchase orders.
	RoleSCM Role = "scm"
	// RolePlanning manages projects and billing.
	RolePlanning Role = "planning"
	// RoleAccounts manages invoices and payments.
	RoleAccounts Role = "accounts"
)

const (
	// HomePage is the identifier used when the path carries no page.
	HomePage = "index.html"
	// LoginPage receives sessions with no resolvable role.
	LoginPage = "login.html"
)

// roleRoutes maps each role to its ordered permitted pages. The first
// entry is the role's default landing page.
var roleRoutes = map[Role][]string{
	RoleAdmin:    {"admin.html"},
	RoleStore:    {"store.html"},
	RoleSCM:      {"scm.html"},
	RolePlanning: {"planning-billing.html"},
	RoleAccounts: {"accounts-banking.html"},
}

// publicPages are reachable without any role.
var publicPages = map[string]struct{}{
	"login.html":           {},
	"signup.html":          {},
	"forgot-password.html": {},
	"reset-password.html":  {},
	"index.html":           {},
}

// KnownRole reports whether value names a configured role.
func KnownRole(value string) bool {
	_, ok := roleRoutes[Role(value)]
	return ok
}

// ParseRole validates a raw role value from a query or store.
func ParseRole(value string) (Role, error) {
	if !KnownRole(value) {
		return "", fmt.Errorf("access: role %q: %w", value, shared.ErrUnknownRole)
	}
	return Role(value), nil
}

// Roles returns the configured role set.
func Roles() []Role {
	roles := make([]Role, 0, len(roleRoutes))
	for role := range roleRoutes {
		roles = append(roles, role)
	}
	return roles
}

// PublicPage reports whether page is reachable without a role.
func PublicPage(page string) bool {
	_, ok := publicPages[page]
	return ok
}

// Grant is the immutable per-request authorization state. It is built
// once per page load from the navigation query and the persisted store
// and never mutated afterwards.
type Grant struct {
	role  Role
	pages []string
}

// NewGrant builds a Grant for a known role. The zero Grant carries no role.
func NewGrant(role Role) Grant {
	permitted, ok := roleRoutes[role]
	if !ok {
		return Grant{}
	}
	pages := make([]string, len(permitted))
	copy(pages, permitted)
	return Grant{role: role, pages: pages}
}

// Role returns the granted role, empty when none resolved.
func (g Grant) Role() Role {
	return g.role
}

// Valid reports whether the grant carries a resolved role.
func (g Grant) Valid() bool {
	return g.role != ""
}

// Permits reports whether the role may view page.
func (g Grant) Permits(page string) bool {
	for _, p := range g.pages {
		if p == page {
			return true
		}
	}
	return false
}

// DefaultPage returns the role's landing page.
func (g Grant) DefaultPage() string {
	if len(g.pages) == 0 {
		return LoginPage
	}
	return g.pages[0]
}

// Pages returns a copy of the permitted page list.
func (g Grant) Pages() []string {
	pages := make([]string, len(g.pages))
	copy(pages, g.pages)
	return pages
}

// Decision is the outcome of authorizing a page view.
type Decision struct {
	Allow      bool
	RedirectTo string
}

// Authorize decides whether a grant may view page. Public pages are
// always allowed; an empty grant is sent to the login page; a known
// role lands on its default page when the page is not permitted.
// A redirect is terminal for the request that receives it.
func Authorize(g Grant, page string) Decision {
	if PublicPage(page) {
		return Decision{Allow: true}
	}
	if !g.Valid() {
		return Decision{RedirectTo: LoginPage}
	}
	if !g.Permits(page) {
		return Decision{RedirectTo: g.DefaultPage()}
	}
	return Decision{Allow: true}
}

// NavLink is one entry on the navigation surface.
type NavLink struct {
	Label  string
	Target string
}

// FilterNavigation returns only the links whose normalized target the
// grant permits. Every visible target is a member of the grant's page
// list, so a roleless session sees no navigation at all.
func FilterNavigation(g Grant, links []NavLink) []NavLink {
	visible := make([]NavLink, 0, len(links))
	for _, link := range links {
		if g.Permits(NormalizeTarget(link.Target)) {
			visible = append(visible, link)
		}
	}
	return visible
}

// NormalizeTarget strips leading path separators from a link target.
func NormalizeTarget(target string) string {
	return strings.TrimLeft(target, "/")
}

// PageFromPath extracts the page identifier from a request path: the
// last path segment, or the home page when the path names none.
func PageFromPath(path string) string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return HomePage
	}
	if idx := strings.LastIndex(trimmed, "/"); idx >= 0 {
		trimmed = trimmed[idx+1:]
	}
	if trimmed == "" {
		return HomePage
	}
	return trimmed
}

// RequestPage resolves which page a request is about. Row mutation
// routes nest under the page ("/store.html/tables/…"), so the first
// page-like segment wins; otherwise this matches PageFromPath.
func RequestPage(path string) string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return HomePage
	}
	for _, segment := range strings.Split(trimmed, "/") {
		if strings.HasSuffix(segment, ".html") {
			return segment
		}
	}
	return PageFromPath(path)
}
