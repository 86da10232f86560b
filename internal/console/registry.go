package console

import (
	"fmt"
	"net/url"
	"sync"

	"github.com/sitehub-erp/sitehub/internal/shared"
	"github.com/sitehub-erp/sitehub/internal/tablefilter"
)

// Registry holds every console page and its in-memory table state.
// Row mutations live only for the lifetime of the process.
type Registry struct {
	mu    sync.RWMutex
	pages map[string]*Page
	order []string
}

// NewRegistry returns a registry seeded with the console pages.
func NewRegistry() *Registry {
	r := &Registry{pages: make(map[string]*Page)}
	for _, page := range seedPages() {
		r.pages[page.ID] = page
		r.order = append(r.order, page.ID)
	}
	return r
}

// Has reports whether a console page with the given id exists.
func (r *Registry) Has(pageID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.pages[pageID]
	return ok
}

// Pages returns page ids in registration order.
func (r *Registry) Pages() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, len(r.order))
	copy(ids, r.order)
	return ids
}

// View snapshots a page with the active tab's tables filtered by the
// request query. Tables outside the active tab are left untouched.
func (r *Registry) View(pageID, tabID string, query url.Values) (*PageView, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	page, ok := r.pages[pageID]
	if !ok {
		return nil, fmt.Errorf("console: page %s: %w", pageID, shared.ErrNotFound)
	}

	active := page.ActiveTab(tabID)
	view := &PageView{ID: page.ID, Title: page.Title}
	for _, tab := range page.Tabs {
		view.Tabs = append(view.Tabs, TabMeta{ID: tab.ID, Label: tab.Label, Active: tab == active})
	}
	if active == nil {
		return view, nil
	}
	view.TabID = active.ID

	controls := BindControls(active.Controls, query)
	for _, spec := range active.Controls {
		view.Controls = append(view.Controls, ControlView{ControlSpec: spec, Value: query.Get(spec.Name)})
	}

	tables := make([]*tablefilter.Table, 0, len(active.Tables))
	for _, table := range active.Tables {
		tables = append(tables, cloneTable(table))
	}
	tablefilter.Apply(tables, controls)
	view.Tables = tables
	view.Forms = active.Forms
	return view, nil
}

// Form returns the create/edit descriptor for a table on a page.
func (r *Registry) Form(pageID, tableID string) (*Form, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	page, ok := r.pages[pageID]
	if !ok {
		return nil, fmt.Errorf("console: page %s: %w", pageID, shared.ErrNotFound)
	}
	for _, tab := range page.Tabs {
		for _, form := range tab.Forms {
			if form.TableID == tableID {
				return form, nil
			}
		}
	}
	return nil, fmt.Errorf("console: form for table %s: %w", tableID, shared.ErrNotFound)
}

// AppendRow inserts a new row at the top of a table, matching the
// console's newest-first presentation. The next filter pass treats it
// like any other row.
func (r *Registry) AppendRow(pageID, tableID string, cells []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	table, err := r.table(pageID, tableID)
	if err != nil {
		return err
	}
	rows := make([]tablefilter.Row, 0, len(table.Rows)+1)
	rows = append(rows, tablefilter.Row{Cells: cells})
	rows = append(rows, table.Rows...)
	table.Rows = rows
	return nil
}

// UpdateRow replaces the cells of an existing row.
func (r *Registry) UpdateRow(pageID, tableID string, index int, cells []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	table, err := r.table(pageID, tableID)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(table.Rows) {
		return fmt.Errorf("console: row %d in table %s: %w", index, tableID, shared.ErrNotFound)
	}
	table.Rows[index].Cells = cells
	return nil
}

// Row returns a copy of one row's cells, for edit prefill.
func (r *Registry) Row(pageID, tableID string, index int) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	table, err := r.table(pageID, tableID)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(table.Rows) {
		return nil, fmt.Errorf("console: row %d in table %s: %w", index, tableID, shared.ErrNotFound)
	}
	cells := make([]string, len(table.Rows[index].Cells))
	copy(cells, table.Rows[index].Cells)
	return cells, nil
}

func (r *Registry) table(pageID, tableID string) (*tablefilter.Table, error) {
	page, ok := r.pages[pageID]
	if !ok {
		return nil, fmt.Errorf("console: page %s: %w", pageID, shared.ErrNotFound)
	}
	for _, tab := range page.Tabs {
		for _, table := range tab.Tables {
			if table.ID == tableID {
				return table, nil
			}
		}
	}
	return nil, fmt.Errorf("console: table %s: %w", tableID, shared.ErrNotFound)
}

func cloneTable(src *tablefilter.Table) *tablefilter.Table {
	dst := &tablefilter.Table{
		ID:      src.ID,
		Title:   src.Title,
		Columns: src.Columns,
		DateCol: src.DateCol,
		Rows:    make([]tablefilter.Row, len(src.Rows)),
	}
	for i, row := range src.Rows {
		cells := make([]string, len(row.Cells))
		copy(cells, row.Cells)
		dst.Rows[i] = tablefilter.Row{Cells: cells}
	}
	return dst
}
