package access

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitehub-erp/sitehub/internal/shared"
)

func TestAuthorizeAllowsPermittedAndPublicPages(t *testing.T) {
	for _, role := range Roles() {
		grant := NewGrant(role)
		for _, page := range grant.Pages() {
			decision := Authorize(grant, page)
			assert.True(t, decision.Allow, "role %s should view %s", role, page)
		}
		decision := Authorize(grant, "login.html")
		assert.True(t, decision.Allow, "public pages are open to %s", role)
	}
}

func TestAuthorizeRedirectsToDefaultLandingPage(t *testing.T) {
	for _, role := range Roles() {
		grant := NewGrant(role)
		decision := Authorize(grant, "not-a-page.html")
		require.False(t, decision.Allow)
		assert.Equal(t, grant.DefaultPage(), decision.RedirectTo)
		assert.True(t, grant.Permits(decision.RedirectTo), "redirect target must be permitted for %s", role)
	}
}

func TestAuthorizeStoreRoleCannotReachInventoryPage(t *testing.T) {
	grant := NewGrant(RoleStore)
	decision := Authorize(grant, "inventory.html")
	require.False(t, decision.Allow)
	assert.Equal(t, "store.html", decision.RedirectTo)
}

func TestAuthorizeWithoutRoleRedirectsToLogin(t *testing.T) {
	decision := Authorize(Grant{}, "admin.html")
	require.False(t, decision.Allow)
	assert.Equal(t, LoginPage, decision.RedirectTo)

	decision = Authorize(Grant{}, "signup.html")
	assert.True(t, decision.Allow)
}

func TestFilterNavigationHidesForbiddenTargets(t *testing.T) {
	links := []NavLink{
		{Label: "Admin", Target: "/admin.html"},
		{Label: "Store", Target: "store.html"},
		{Label: "SCM", Target: "/scm.html"},
		{Label: "Login", Target: "login.html"},
	}

	grant := NewGrant(RoleStore)
	visible := FilterNavigation(grant, links)
	require.Len(t, visible, 1)
	assert.Equal(t, "Store", visible[0].Label)

	// Visible targets are always drawn from the grant's own page list.
	for _, link := range visible {
		assert.True(t, grant.Permits(NormalizeTarget(link.Target)),
			"visible link %q must be permitted", link.Target)
	}
}

func TestFilterNavigationEmptyGrantHidesEverything(t *testing.T) {
	links := []NavLink{
		{Label: "Store", Target: "store.html"},
		{Label: "Login", Target: "login.html"},
	}
	assert.Empty(t, FilterNavigation(Grant{}, links))
}

func TestParseRole(t *testing.T) {
	role, err := ParseRole("planning")
	require.NoError(t, err)
	assert.Equal(t, RolePlanning, role)

	for _, value := range []string{"", "superuser", "Admin"} {
		_, err := ParseRole(value)
		require.Error(t, err, "value %q", value)
		assert.True(t, errors.Is(err, shared.ErrUnknownRole))
	}
}

func TestPageFromPath(t *testing.T) {
	cases := map[string]string{
		"":                      HomePage,
		"/":                     HomePage,
		"/store.html":           "store.html",
		"/console/scm.html":     "scm.html",
		"planning-billing.html": "planning-billing.html",
	}
	for path, want := range cases {
		assert.Equal(t, want, PageFromPath(path), "path %q", path)
	}
}

func TestRequestPage(t *testing.T) {
	cases := map[string]string{
		"/":                                 HomePage,
		"/store.html":                       "store.html",
		"/store.html/tables/inventory/rows": "store.html",
		"/scm.html/tables/vendors/rows/2":   "scm.html",
		"/logout":                           "logout",
		"/console/planning-billing.html":    "planning-billing.html",
		"/admin.html/tables/users/rows/0":   "admin.html",
	}
	for path, want := range cases {
		assert.Equal(t, want, RequestPage(path), "path %q", path)
	}
}

func TestNewGrantUnknownRoleIsEmpty(t *testing.T) {
	grant := NewGrant(Role("intruder"))
	assert.False(t, grant.Valid())
	assert.Equal(t, LoginPage, grant.DefaultPage())
}
