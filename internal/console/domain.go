package console

import (
	"net/url"

	"github.com/sitehub-erp/sitehub/internal/tablefilter"
)

// ControlKind identifies which filter slot a control binds to.
type ControlKind string

const (
	// ControlSearch is the free-text query box. One per container.
	ControlSearch ControlKind = "search"
	// ControlSelect is a categorical dropdown. Any number per container.
	ControlSelect ControlKind = "select"
	// ControlMonth is a month picker. One per container.
	ControlMonth ControlKind = "month"
	// ControlDateFrom is the inclusive start of a date range.
	ControlDateFrom ControlKind = "date-from"
	// ControlDateTo is the inclusive end of a date range.
	ControlDateTo ControlKind = "date-to"
)

// ControlSpec declares one filter control and the query parameter it
// binds to. Controls are declared per tab, so each slot is named up
// front instead of discovered from markup.
type ControlSpec struct {
	Name    string
	Label   string
	Kind    ControlKind
	Options []string // select only; the first option is the "All …" placeholder
}

// ControlView pairs a spec with its bound request value for rendering.
type ControlView struct {
	ControlSpec
	Value string
}

// BindControls fills the engine's named slots from request query
// values. Single-instance slots keep the first spec that claims them.
func BindControls(specs []ControlSpec, values url.Values) tablefilter.Controls {
	var controls tablefilter.Controls
	for _, spec := range specs {
		raw := values.Get(spec.Name)
		switch spec.Kind {
		case ControlSearch:
			if controls.Query == "" {
				controls.Query = raw
			}
		case ControlSelect:
			label := raw
			if label == "" && len(spec.Options) > 0 {
				label = spec.Options[0]
			}
			controls.Selects = append(controls.Selects, tablefilter.SelectFilter{Name: spec.Name, Label: label})
		case ControlMonth:
			if controls.Month == "" {
				controls.Month = raw
			}
		case ControlDateFrom:
			if controls.DateFrom == "" {
				controls.DateFrom = raw
			}
		case ControlDateTo:
			if controls.DateTo == "" {
				controls.DateTo = raw
			}
		}
	}
	return controls
}

// FieldKind identifies a form input type.
type FieldKind string

const (
	// FieldText is a plain text input.
	FieldText FieldKind = "text"
	// FieldSelect is a dropdown of fixed options.
	FieldSelect FieldKind = "select"
	// FieldDate is a date input.
	FieldDate FieldKind = "date"
	// FieldNumber is a numeric input.
	FieldNumber FieldKind = "number"
)

// FormField describes one input of an entity form.
type FormField struct {
	Name        string
	Label       string
	Kind        FieldKind
	Options     []string
	Placeholder string
	Required    bool
}

// Form describes the modal-style create/edit surface for one table.
// Build turns submitted values into a rendered row in column order.
type Form struct {
	TableID     string
	Title       string
	SubmitLabel string
	Fields      []FormField
	Build       func(values map[string]string) []string
}

// Tab is one container on a page. Only the active tab's tables are
// filtered on a request; the others are not visible anyway.
type Tab struct {
	ID       string
	Label    string
	Controls []ControlSpec
	Tables   []*tablefilter.Table
	Forms    []*Form
}

// Page is one console screen.
type Page struct {
	ID    string
	Title string
	Tabs  []*Tab
}

// ActiveTab returns the tab with the given id, defaulting to the first.
// Pages without a tabbed layout hold a single unnamed tab.
func (p *Page) ActiveTab(id string) *Tab {
	if len(p.Tabs) == 0 {
		return nil
	}
	if id != "" {
		for _, tab := range p.Tabs {
			if tab.ID == id {
				return tab
			}
		}
	}
	return p.Tabs[0]
}

// TabMeta is the rendering summary of one tab.
type TabMeta struct {
	ID     string
	Label  string
	Active bool
}

// PageView is a filtered snapshot of a page for one request.
type PageView struct {
	ID       string
	Title    string
	Tabs     []TabMeta
	TabID    string
	Controls []ControlView
	Tables   []*tablefilter.Table
	Forms    []*Form
}
