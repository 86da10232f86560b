package console

import (
	"time"

	"github.com/sitehub-erp/sitehub/internal/tablefilter"
)

// renderedDate formats dates the way most console cells display them.
func renderedDate(t time.Time) string {
	return t.Format("Jan 02 2006")
}

func valueOr(values map[string]string, key, fallback string) string {
	if v := values[key]; v != "" {
		return v
	}
	return fallback
}

// submittedDate renders a date field value, falling back to today.
// Date inputs submit YYYY-MM-DD; cells keep the human-readable style.
func submittedDate(values map[string]string, key string) string {
	raw := values[key]
	if raw == "" {
		return renderedDate(time.Now())
	}
	if parsed, ok := tablefilter.ParseLooseDate(raw); ok {
		return renderedDate(parsed)
	}
	return raw
}

func searchControl() ControlSpec {
	return ControlSpec{Name: "q", Label: "Search", Kind: ControlSearch}
}

func selectControl(name, label string, options ...string) ControlSpec {
	return ControlSpec{Name: name, Label: label, Kind: ControlSelect, Options: options}
}

func monthControl(name, label string) ControlSpec {
	return ControlSpec{Name: name, Label: label, Kind: ControlMonth}
}

func dateRangeControls() []ControlSpec {
	return []ControlSpec{
		{Name: "from", Label: "From", Kind: ControlDateFrom},
		{Name: "to", Label: "To", Kind: ControlDateTo},
	}
}

// seedPages builds the console's five role areas with their tables,
// filter controls, and create/edit forms. Cell text deliberately mixes
// the date styles the loose parser must handle.
func seedPages() []*Page {
	return []*Page{
		adminPage(),
		storePage(),
		scmPage(),
		planningPage(),
		accountsPage(),
	}
}

func adminPage() *Page {
	users := &tablefilter.Table{
		ID:      "users",
		Title:   "User Management",
		Columns: []string{"Name", "Email", "Role", "Department", "Status"},
		DateCol: -1,
		Rows: []tablefilter.Row{
			{Cells: []string{"Dian Pratama", "dian@sitehub.local", "Administrator", "IT", "Active"}},
			{Cells: []string{"Rina Wijaya", "rina@sitehub.local", "Project Manager", "Projects", "Active"}},
			{Cells: []string{"Bud Santoso", "budi@sitehub.local", "Procurement Manager", "SCM", "Inactive"}},
			{Cells: []string{"Sari Lestari", "sari@sitehub.local", "Finance Manager", "Finance", "Active"}},
		},
	}
	documents := &tablefilter.Table{
		ID:      "documents",
		Title:   "Company Documents",
		Columns: []string{"Name", "Type", "Category", "Uploaded", "Size"},
		DateCol: 3,
		Rows: []tablefilter.Row{
			{Cells: []string{"Safety Handbook", "PDF", "Operations", "Jan 05 2026", "2.4 MB"}},
			{Cells: []string{"Vendor Contract Template", "DOCX", "Legal", "2026-01-18", "310 KB"}},
			{Cells: []string{"Q4 Finance Summary", "XLSX", "Financial", "Dec 22, 2025", "1.1 MB"}},
		},
	}
	return &Page{
		ID:    "admin.html",
		Title: "Administration",
		Tabs: []*Tab{
			{
				ID:    "users",
				Label: "Users",
				Controls: []ControlSpec{
					searchControl(),
					selectControl("role", "Role", "All Roles", "Administrator", "Project Manager", "Procurement Manager", "Finance Manager"),
					selectControl("status", "Status", "All Status", "Active", "Inactive"),
				},
				Tables: []*tablefilter.Table{users},
				Forms: []*Form{{
					TableID:     "users",
					Title:       "Add User",
					SubmitLabel: "Save User",
					Fields: []FormField{
						{Name: "name", Label: "Full Name", Kind: FieldText, Placeholder: "Enter full name", Required: true},
						{Name: "email", Label: "Email Address", Kind: FieldText, Placeholder: "name@company.com", Required: true},
						{Name: "role", Label: "Role", Kind: FieldSelect, Options: []string{"Administrator", "Project Manager", "Procurement Manager", "Finance Manager"}},
						{Name: "department", Label: "Department", Kind: FieldText, Placeholder: "IT / Projects / SCM"},
						{Name: "status", Label: "Status", Kind: FieldSelect, Options: []string{"Active", "Inactive"}},
					},
					Build: func(values map[string]string) []string {
						return []string{
							values["name"],
							values["email"],
							valueOr(values, "role", "Administrator"),
							values["department"],
							valueOr(values, "status", "Active"),
						}
					},
				}},
			},
			{
				ID:    "documents",
				Label: "Documents",
				Controls: []ControlSpec{
					searchControl(),
					selectControl("type", "Type", "All Types", "PDF", "XLSX", "DOCX"),
					selectControl("category", "Category", "All Categories", "Technical", "Financial", "Legal", "Operations"),
					monthControl("month", "Uploaded In"),
				},
				Tables: []*tablefilter.Table{documents},
				Forms: []*Form{{
					TableID:     "documents",
					Title:       "Upload Document",
					SubmitLabel: "Upload",
					Fields: []FormField{
						{Name: "name", Label: "Document Name", Kind: FieldText, Required: true},
						{Name: "type", Label: "Type", Kind: FieldSelect, Options: []string{"PDF", "XLSX", "DOCX"}},
						{Name: "category", Label: "Category", Kind: FieldSelect, Options: []string{"Technical", "Financial", "Legal", "Operations"}},
					},
					Build: func(values map[string]string) []string {
						return []string{
							values["name"],
							valueOr(values, "type", "PDF"),
							valueOr(values, "category", "Technical"),
							renderedDate(time.Now()),
							"—",
						}
					},
				}},
			},
		},
	}
}

func storePage() *Page {
	inventory := &tablefilter.Table{
		ID:      "inventory",
		Title:   "Inventory",
		Columns: []string{"Code", "Item", "Category", "Qty", "Unit", "Status"},
		DateCol: -1,
		Rows: []tablefilter.Row{
			{Cells: []string{"MAT-001", "Cement (OPC 53)", "Raw Materials", "850", "Bags", "In Stock"}},
			{Cells: []string{"MAT-002", "Steel Rebar 12mm", "Raw Materials", "120", "Tons", "Low Stock"}},
			{Cells: []string{"TLS-014", "Concrete Mixer", "Tools & Equipment", "4", "Units", "In Stock"}},
			{Cells: []string{"SFT-007", "Safety Helmet", "Safety Items", "0", "Pcs", "Out of Stock"}},
		},
	}
	movements := &tablefilter.Table{
		ID:      "movements",
		Title:   "Stock Movements",
		Columns: []string{"Date", "Item", "Type", "Qty", "Warehouse"},
		DateCol: 0,
		Rows: []tablefilter.Row{
			{Cells: []string{"Jan 12 2026", "Cement (OPC 53)", "Stock In", "200", "WH-North"}},
			{Cells: []string{"Jan 20 2026", "Steel Rebar 12mm", "Stock Out", "15", "WH-North"}},
			{Cells: []string{"2026-02-03", "Safety Helmet", "Transfer", "40", "WH-South"}},
		},
	}
	return &Page{
		ID:    "store.html",
		Title: "Store",
		Tabs: []*Tab{
			{
				ID:    "inventory",
				Label: "Inventory",
				Controls: []ControlSpec{
					searchControl(),
					selectControl("category", "Category", "All Categories", "Raw Materials", "Finished Goods", "Tools & Equipment", "Safety Items"),
					selectControl("status", "Status", "All Status", "In Stock", "Low Stock", "Out of Stock"),
				},
				Tables: []*tablefilter.Table{inventory},
				Forms: []*Form{{
					TableID:     "inventory",
					Title:       "Add Item",
					SubmitLabel: "Save Item",
					Fields: []FormField{
						{Name: "code", Label: "Item Code", Kind: FieldText, Placeholder: "MAT-000", Required: true},
						{Name: "item", Label: "Item Name", Kind: FieldText, Required: true},
						{Name: "category", Label: "Category", Kind: FieldSelect, Options: []string{"Raw Materials", "Finished Goods", "Tools & Equipment", "Safety Items"}},
						{Name: "qty", Label: "Quantity", Kind: FieldNumber},
						{Name: "unit", Label: "Unit", Kind: FieldText, Placeholder: "Bags / Tons / Pcs"},
						{Name: "status", Label: "Status", Kind: FieldSelect, Options: []string{"In Stock", "Low Stock", "Out of Stock"}},
					},
					Build: func(values map[string]string) []string {
						return []string{
							values["code"],
							values["item"],
							valueOr(values, "category", "Raw Materials"),
							valueOr(values, "qty", "0"),
							values["unit"],
							valueOr(values, "status", "In Stock"),
						}
					},
				}},
			},
			{
				ID:    "movements",
				Label: "Stock Movements",
				Controls: []ControlSpec{
					searchControl(),
					selectControl("type", "Type", "All Types", "Stock In", "Stock Out", "Transfer"),
					monthControl("month", "Month"),
				},
				Tables: []*tablefilter.Table{movements},
				Forms: []*Form{{
					TableID:     "movements",
					Title:       "Record Movement",
					SubmitLabel: "Record",
					Fields: []FormField{
						{Name: "date", Label: "Date", Kind: FieldDate},
						{Name: "item", Label: "Item", Kind: FieldText, Required: true},
						{Name: "type", Label: "Type", Kind: FieldSelect, Options: []string{"Stock In", "Stock Out", "Transfer"}},
						{Name: "qty", Label: "Quantity", Kind: FieldNumber, Required: true},
						{Name: "warehouse", Label: "Warehouse", Kind: FieldText, Placeholder: "WH-North"},
					},
					Build: func(values map[string]string) []string {
						return []string{
							submittedDate(values, "date"),
							values["item"],
							valueOr(values, "type", "Stock In"),
							values["qty"],
							values["warehouse"],
						}
					},
				}},
			},
		},
	}
}

func scmPage() *Page {
	vendors := &tablefilter.Table{
		ID:      "vendors",
		Title:   "Vendors",
		Columns: []string{"Vendor", "Contact", "Category", "Rating", "Status"},
		DateCol: -1,
		Rows: []tablefilter.Row{
			{Cells: []string{"PT Beton Jaya", "sales@betonjaya.co.id", "Raw Materials", "4.6", "Active"}},
			{Cells: []string{"CV Mesin Utama", "info@mesinutama.co.id", "Equipment", "4.1", "Active"}},
			{Cells: []string{"PT Logistik Cepat", "ops@logcepat.co.id", "Services", "3.8", "Blacklisted"}},
		},
	}
	orders := &tablefilter.Table{
		ID:      "purchase-orders",
		Title:   "Purchase Orders",
		Columns: []string{"PO #", "Vendor", "Order Date", "Amount", "Status"},
		DateCol: 2,
		Rows: []tablefilter.Row{
			{Cells: []string{"PO-2026-0114", "PT Beton Jaya", "Jan 14 2026", "Rp 182,500,000", "Approved"}},
			{Cells: []string{"PO-2026-0122", "CV Mesin Utama", "2026-01-22", "Rp 74,000,000", "Pending Approval"}},
			{Cells: []string{"PO-2026-0201", "PT Beton Jaya", "Feb 02 2026", "Rp 96,250,000", "In Transit"}},
		},
	}
	requests := &tablefilter.Table{
		ID:      "material-requests",
		Title:   "Material Requests",
		Columns: []string{"Request #", "Project", "Requested", "Priority", "Status"},
		DateCol: 2,
		Rows: []tablefilter.Row{
			{Cells: []string{"MR-0088", "Tower A", "Jan 08 2026", "High", "Approved"}},
			{Cells: []string{"MR-0093", "Warehouse Ext", "Jan 27 2026", "Medium", "Pending"}},
			{Cells: []string{"MR-0095", "Tower A", "Feb 10, 2026", "Low", "Processing"}},
		},
	}
	return &Page{
		ID:    "scm.html",
		Title: "Supply Chain",
		Tabs: []*Tab{
			{
				ID:    "vendors",
				Label: "Vendors",
				Controls: []ControlSpec{
					searchControl(),
					selectControl("category", "Category", "All Categories", "Raw Materials", "Equipment", "Services"),
					selectControl("status", "Status", "All Status", "Active", "Inactive", "Blacklisted"),
				},
				Tables: []*tablefilter.Table{vendors},
				Forms: []*Form{{
					TableID:     "vendors",
					Title:       "Add Vendor",
					SubmitLabel: "Save Vendor",
					Fields: []FormField{
						{Name: "vendor", Label: "Vendor Name", Kind: FieldText, Required: true},
						{Name: "contact", Label: "Contact", Kind: FieldText, Placeholder: "email or phone"},
						{Name: "category", Label: "Category", Kind: FieldSelect, Options: []string{"Raw Materials", "Equipment", "Services"}},
						{Name: "rating", Label: "Rating", Kind: FieldNumber, Placeholder: "0.0 – 5.0"},
						{Name: "status", Label: "Status", Kind: FieldSelect, Options: []string{"Active", "Inactive", "Blacklisted"}},
					},
					Build: func(values map[string]string) []string {
						return []string{
							values["vendor"],
							values["contact"],
							valueOr(values, "category", "Raw Materials"),
							valueOr(values, "rating", "0.0"),
							valueOr(values, "status", "Active"),
						}
					},
				}},
			},
			{
				ID:    "purchase-orders",
				Label: "Purchase Orders",
				Controls: append([]ControlSpec{
					searchControl(),
					selectControl("status", "Status", "All Status", "Draft", "Pending Approval", "Approved", "In Transit", "Delivered"),
				}, dateRangeControls()...),
				Tables: []*tablefilter.Table{orders},
				Forms: []*Form{{
					TableID:     "purchase-orders",
					Title:       "Create Purchase Order",
					SubmitLabel: "Create PO",
					Fields: []FormField{
						{Name: "number", Label: "PO Number", Kind: FieldText, Placeholder: "PO-2026-0000", Required: true},
						{Name: "vendor", Label: "Vendor", Kind: FieldText, Required: true},
						{Name: "date", Label: "Order Date", Kind: FieldDate},
						{Name: "amount", Label: "Amount", Kind: FieldText, Placeholder: "Rp 0"},
						{Name: "status", Label: "Status", Kind: FieldSelect, Options: []string{"Draft", "Pending Approval", "Approved", "In Transit", "Delivered"}},
					},
					Build: func(values map[string]string) []string {
						return []string{
							values["number"],
							values["vendor"],
							submittedDate(values, "date"),
							valueOr(values, "amount", "Rp 0"),
							valueOr(values, "status", "Draft"),
						}
					},
				}},
			},
			{
				ID:    "material-requests",
				Label: "Material Requests",
				Controls: []ControlSpec{
					searchControl(),
					selectControl("priority", "Priority", "All Priorities", "High", "Medium", "Low"),
					selectControl("status", "Status", "All Status", "Pending", "Approved", "Processing", "Fulfilled"),
					monthControl("month", "Requested In"),
				},
				Tables: []*tablefilter.Table{requests},
				Forms: []*Form{{
					TableID:     "material-requests",
					Title:       "New Material Request",
					SubmitLabel: "Submit Request",
					Fields: []FormField{
						{Name: "number", Label: "Request Number", Kind: FieldText, Placeholder: "MR-0000", Required: true},
						{Name: "project", Label: "Project", Kind: FieldText, Required: true},
						{Name: "priority", Label: "Priority", Kind: FieldSelect, Options: []string{"High", "Medium", "Low"}},
						{Name: "status", Label: "Status", Kind: FieldSelect, Options: []string{"Pending", "Approved", "Processing", "Fulfilled"}},
					},
					Build: func(values map[string]string) []string {
						return []string{
							values["number"],
							values["project"],
							renderedDate(time.Now()),
							valueOr(values, "priority", "Medium"),
							valueOr(values, "status", "Pending"),
						}
					},
				}},
			},
		},
	}
}

func planningPage() *Page {
	projects := &tablefilter.Table{
		ID:      "projects",
		Title:   "Projects",
		Columns: []string{"Code", "Project", "Client", "Start Date", "Status"},
		DateCol: 3,
		Rows: []tablefilter.Row{
			{Cells: []string{"PRJ-21", "Tower A", "Acme Builders", "Nov 03 2025", "In Progress"}},
			{Cells: []string{"PRJ-24", "Warehouse Ext", "PT Gudang Prima", "2026-01-12", "Planning"}},
			{Cells: []string{"PRJ-19", "Bridge Rehab", "City Works", "Aug 18 2025", "On Hold"}},
		},
	}
	clients := &tablefilter.Table{
		ID:      "clients",
		Title:   "Clients",
		Columns: []string{"Client", "Type", "Contact", "Status"},
		DateCol: -1,
		Rows: []tablefilter.Row{
			{Cells: []string{"Acme Builders", "Corporate", "procure@acme.co.id", "Active"}},
			{Cells: []string{"City Works", "Government", "tender@cityworks.go.id", "Active"}},
			{Cells: []string{"Pak Haris", "Individual", "+62 811 000 123", "Inactive"}},
		},
	}
	workforce := &tablefilter.Table{
		ID:      "workforce",
		Title:   "Workforce",
		Columns: []string{"Name", "Category", "Assigned Project", "Status"},
		DateCol: -1,
		Rows: []tablefilter.Row{
			{Cells: []string{"Joko Susilo", "Mason", "Tower A", "Active"}},
			{Cells: []string{"Agus Salim", "Electrician", "Warehouse Ext", "Active"}},
			{Cells: []string{"Made Putra", "Carpenter", "Bridge Rehab", "Inactive"}},
		},
	}
	return &Page{
		ID:    "planning-billing.html",
		Title: "Planning & Billing",
		Tabs: []*Tab{
			{
				ID:    "projects",
				Label: "Projects",
				Controls: append([]ControlSpec{
					searchControl(),
					selectControl("status", "Status", "All Status", "Planning", "In Progress", "On Hold", "Completed"),
				}, dateRangeControls()...),
				Tables: []*tablefilter.Table{projects},
				Forms: []*Form{{
					TableID:     "projects",
					Title:       "Add Project",
					SubmitLabel: "Save Project",
					Fields: []FormField{
						{Name: "code", Label: "Project Code", Kind: FieldText, Placeholder: "PRJ-00", Required: true},
						{Name: "project", Label: "Project Name", Kind: FieldText, Required: true},
						{Name: "client", Label: "Client", Kind: FieldText},
						{Name: "start", Label: "Start Date", Kind: FieldDate},
						{Name: "status", Label: "Status", Kind: FieldSelect, Options: []string{"Planning", "In Progress", "On Hold", "Completed"}},
					},
					Build: func(values map[string]string) []string {
						return []string{
							values["code"],
							values["project"],
							values["client"],
							submittedDate(values, "start"),
							valueOr(values, "status", "Planning"),
						}
					},
				}},
			},
			{
				ID:    "clients",
				Label: "Clients",
				Controls: []ControlSpec{
					searchControl(),
					selectControl("type", "Type", "All Types", "Corporate", "Individual", "Government"),
					selectControl("status", "Status", "All Status", "Active", "Inactive"),
				},
				Tables: []*tablefilter.Table{clients},
				Forms: []*Form{{
					TableID:     "clients",
					Title:       "Add Client",
					SubmitLabel: "Save Client",
					Fields: []FormField{
						{Name: "client", Label: "Client Name", Kind: FieldText, Required: true},
						{Name: "type", Label: "Type", Kind: FieldSelect, Options: []string{"Corporate", "Individual", "Government"}},
						{Name: "contact", Label: "Contact", Kind: FieldText},
						{Name: "status", Label: "Status", Kind: FieldSelect, Options: []string{"Active", "Inactive"}},
					},
					Build: func(values map[string]string) []string {
						return []string{
							values["client"],
							valueOr(values, "type", "Corporate"),
							values["contact"],
							valueOr(values, "status", "Active"),
						}
					},
				}},
			},
			{
				ID:    "workforce",
				Label: "Workforce",
				Controls: []ControlSpec{
					searchControl(),
					selectControl("category", "Category", "All Categories", "Mason", "Carpenter", "Electrician", "Plumber"),
					selectControl("status", "Status", "All Status", "Active", "Inactive"),
				},
				Tables: []*tablefilter.Table{workforce},
				Forms: []*Form{{
					TableID:     "workforce",
					Title:       "Add Worker",
					SubmitLabel: "Save Worker",
					Fields: []FormField{
						{Name: "name", Label: "Full Name", Kind: FieldText, Required: true},
						{Name: "category", Label: "Category", Kind: FieldSelect, Options: []string{"Mason", "Carpenter", "Electrician", "Plumber"}},
						{Name: "project", Label: "Assigned Project", Kind: FieldText},
						{Name: "status", Label: "Status", Kind: FieldSelect, Options: []string{"Active", "Inactive"}},
					},
					Build: func(values map[string]string) []string {
						return []string{
							values["name"],
							valueOr(values, "category", "Mason"),
							values["project"],
							valueOr(values, "status", "Active"),
						}
					},
				}},
			},
		},
	}
}

func accountsPage() *Page {
	invoices := &tablefilter.Table{
		ID:      "invoices",
		Title:   "Invoices",
		Columns: []string{"Invoice #", "Client", "Issue Date", "Due Date", "Amount", "Status"},
		// Issue date governs the date filters even though the row also
		// carries a due date.
		DateCol: 2,
		Rows: []tablefilter.Row{
			{Cells: []string{"INV-104", "Acme Builders", "Jan 15 2026", "Feb 15 2026", "Rp 310,000,000", "Sent"}},
			{Cells: []string{"INV-101", "City Works", "2025-12-20", "2026-01-20", "Rp 95,500,000", "Overdue"}},
			{Cells: []string{"INV-106", "PT Gudang Prima", "Feb 02 2026", "Mar 02 2026", "Rp 48,750,000", "Draft"}},
		},
	}
	payments := &tablefilter.Table{
		ID:      "payments",
		Title:   "Payments",
		Columns: []string{"Date", "Party", "Type", "Method", "Amount", "Status"},
		DateCol: 0,
		Rows: []tablefilter.Row{
			{Cells: []string{"Jan 22 2026", "Acme Builders", "Received", "Bank Transfer", "Rp 150,000,000", "Cleared"}},
			{Cells: []string{"Jan 30 2026", "PT Beton Jaya", "Made", "Check", "Rp 82,000,000", "Pending"}},
			{Cells: []string{"2026-02-05", "City Works", "Received", "Online", "Rp 95,500,000", "Cleared"}},
		},
	}
	return &Page{
		ID:    "accounts-banking.html",
		Title: "Accounts & Banking",
		Tabs: []*Tab{
			{
				ID:    "invoices",
				Label: "Invoices",
				Controls: append([]ControlSpec{
					searchControl(),
					selectControl("status", "Status", "All Status", "Draft", "Sent", "Paid", "Overdue", "Pending"),
				}, dateRangeControls()...),
				Tables: []*tablefilter.Table{invoices},
				Forms: []*Form{{
					TableID:     "invoices",
					Title:       "Create Invoice",
					SubmitLabel: "Create Invoice",
					Fields: []FormField{
						{Name: "number", Label: "Invoice Number", Kind: FieldText, Placeholder: "INV-000", Required: true},
						{Name: "client", Label: "Client", Kind: FieldText, Required: true},
						{Name: "issue", Label: "Issue Date", Kind: FieldDate},
						{Name: "due", Label: "Due Date", Kind: FieldDate},
						{Name: "amount", Label: "Amount", Kind: FieldText, Placeholder: "Rp 0"},
						{Name: "status", Label: "Status", Kind: FieldSelect, Options: []string{"Draft", "Sent", "Paid", "Overdue", "Pending"}},
					},
					Build: func(values map[string]string) []string {
						return []string{
							values["number"],
							values["client"],
							submittedDate(values, "issue"),
							submittedDate(values, "due"),
							valueOr(values, "amount", "Rp 0"),
							valueOr(values, "status", "Draft"),
						}
					},
				}},
			},
			{
				ID:    "payments",
				Label: "Payments",
				Controls: []ControlSpec{
					searchControl(),
					selectControl("type", "Type", "All Types", "Received", "Made"),
					selectControl("method", "Method", "All Methods", "Bank Transfer", "Check", "Cash", "Online"),
					monthControl("month", "Month"),
				},
				Tables: []*tablefilter.Table{payments},
				Forms: []*Form{{
					TableID:     "payments",
					Title:       "Record Payment",
					SubmitLabel: "Record Payment",
					Fields: []FormField{
						{Name: "date", Label: "Date", Kind: FieldDate},
						{Name: "party", Label: "Party", Kind: FieldText, Required: true},
						{Name: "type", Label: "Type", Kind: FieldSelect, Options: []string{"Received", "Made"}},
						{Name: "method", Label: "Method", Kind: FieldSelect, Options: []string{"Bank Transfer", "Check", "Cash", "Online"}},
						{Name: "amount", Label: "Amount", Kind: FieldText, Placeholder: "Rp 0", Required: true},
						{Name: "status", Label: "Status", Kind: FieldSelect, Options: []string{"Cleared", "Pending"}},
					},
					Build: func(values map[string]string) []string {
						return []string{
							submittedDate(values, "date"),
							values["party"],
							valueOr(values, "type", "Received"),
							valueOr(values, "method", "Bank Transfer"),
							values["amount"],
							valueOr(values, "status", "Cleared"),
						}
					},
				}},
			},
		},
	}
}
