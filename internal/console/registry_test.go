package console

import (
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitehub-erp/sitehub/internal/shared"
)

func TestRegistrySeedsAllRolePages(t *testing.T) {
	registry := NewRegistry()
	for _, page := range []string{"admin.html", "store.html", "scm.html", "planning-billing.html", "accounts-banking.html"} {
		assert.True(t, registry.Has(page), page)
	}
	assert.False(t, registry.Has("inventory.html"))
}

func TestViewDefaultsToFirstTab(t *testing.T) {
	registry := NewRegistry()

	view, err := registry.View("store.html", "", url.Values{})
	require.NoError(t, err)
	assert.Equal(t, "inventory", view.TabID)
	require.Len(t, view.Tables, 1)
	assert.Equal(t, "inventory", view.Tables[0].ID)
}

func TestViewSelectsRequestedTab(t *testing.T) {
	registry := NewRegistry()

	view, err := registry.View("store.html", "movements", url.Values{})
	require.NoError(t, err)
	assert.Equal(t, "movements", view.TabID)
	require.Len(t, view.Tables, 1)
	assert.Equal(t, "movements", view.Tables[0].ID)

	var active int
	for _, tab := range view.Tabs {
		if tab.Active {
			active++
			assert.Equal(t, "movements", tab.ID)
		}
	}
	assert.Equal(t, 1, active)
}

func TestViewUnknownTabFallsBackToFirst(t *testing.T) {
	registry := NewRegistry()

	view, err := registry.View("admin.html", "payroll", url.Values{})
	require.NoError(t, err)
	assert.Equal(t, "users", view.TabID)
}

func TestViewAppliesQueryFilters(t *testing.T) {
	registry := NewRegistry()

	view, err := registry.View("store.html", "inventory", url.Values{"q": {"cement"}})
	require.NoError(t, err)
	rows := view.Tables[0].VisibleRows()
	require.Len(t, rows, 1)
	assert.Contains(t, rows[0].Cells[1], "Cement")
}

func TestViewDoesNotMutateSeedState(t *testing.T) {
	registry := NewRegistry()

	_, err := registry.View("store.html", "inventory", url.Values{"q": {"nothing matches this"}})
	require.NoError(t, err)

	view, err := registry.View("store.html", "inventory", url.Values{})
	require.NoError(t, err)
	assert.Len(t, view.Tables[0].VisibleRows(), 4, "a filtered request must not hide rows for later requests")
}

func TestViewUnknownPage(t *testing.T) {
	registry := NewRegistry()

	_, err := registry.View("payroll.html", "", url.Values{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, shared.ErrNotFound))
}

func TestAppendRowIsVisibleToNextView(t *testing.T) {
	registry := NewRegistry()

	err := registry.AppendRow("store.html", "inventory", []string{"MAT-099", "River Sand", "Raw Materials", "300", "Tons", "In Stock"})
	require.NoError(t, err)

	view, err := registry.View("store.html", "inventory", url.Values{"q": {"river sand"}})
	require.NoError(t, err)
	rows := view.Tables[0].VisibleRows()
	require.Len(t, rows, 1, "new rows are subject to the same filter pass")
	assert.Equal(t, "MAT-099", rows[0].Cells[0])

	// Newest first.
	view, err = registry.View("store.html", "inventory", url.Values{})
	require.NoError(t, err)
	assert.Equal(t, "MAT-099", view.Tables[0].Rows[0].Cells[0])
}

func TestUpdateRow(t *testing.T) {
	registry := NewRegistry()

	cells, err := registry.Row("admin.html", "users", 0)
	require.NoError(t, err)
	cells[4] = "Inactive"
	require.NoError(t, registry.UpdateRow("admin.html", "users", 0, cells))

	updated, err := registry.Row("admin.html", "users", 0)
	require.NoError(t, err)
	assert.Equal(t, "Inactive", updated[4])
}

func TestUpdateRowOutOfRange(t *testing.T) {
	registry := NewRegistry()
	err := registry.UpdateRow("admin.html", "users", 99, []string{"x"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, shared.ErrNotFound))
}

func TestFormLookup(t *testing.T) {
	registry := NewRegistry()

	form, err := registry.Form("scm.html", "purchase-orders")
	require.NoError(t, err)
	assert.Equal(t, "Create Purchase Order", form.Title)

	_, err = registry.Form("scm.html", "ledger")
	assert.True(t, errors.Is(err, shared.ErrNotFound))
}
