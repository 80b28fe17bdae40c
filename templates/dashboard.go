package templates

import "github.com/a-h/templ"

// StatsData are the dashboard summary counters.
type StatsData struct {
	TotalQuotations    int
	TotalSubscriptions int
	ThisWeek           int
	Pending            int
}

// QuotationRow is one line of the quotations table.
type QuotationRow struct {
	ID          string
	FullName    string
	Email       string
	Company     string
	ProductType string
	Quantity    int
	Timeline    string
	Budget      string
	Date        string
	Status      string
}

// SubscriptionRow is one line of the subscriptions table.
type SubscriptionRow struct {
	ID       string
	Email    string
	Source   string
	Date     string
	Status   string
	Attempts int
}

// DashboardData feeds the owner dashboard view.
type DashboardData struct {
	Stats         StatsData
	ActiveTab     string // "quotations" or "emails"
	SearchTerm    string
	Quotations    []QuotationRow
	Subscriptions []SubscriptionRow
}

// DashboardLoginPage renders the password gate.
func DashboardLoginPage(failed bool) templ.Component {
	return page("Dashboard Access", func(w *htmlWriter) {
		w.f(`<div class="login-card"><h1>Dashboard Access</h1>`)
		if failed {
			w.f(`<p class="field-error">Incorrect password. Please try again.</p>`)
		}
		w.f(`<form method="post" action="/dashboard/login">`)
		w.f(`<label>Enter Password <input type="password" name="password" placeholder="Dashboard password"></label>`)
		w.f(`<button type="submit">Access Dashboard</button>`)
		w.f(`</form></div>`)
	})
}

// DashboardPage renders the owner dashboard: stats, search, and the active
// collection table.
func DashboardPage(data DashboardData) templ.Component {
	return page("PrintCraft Dashboard", func(w *htmlWriter) {
		w.f(`<header class="dash-header"><h1>PrintCraft Dashboard</h1>`)
		w.f(`<form method="post" action="/dashboard/logout"><button type="submit">Logout</button></form>`)
		w.f(`</header>`)

		w.f(`<div class="stats">`)
		writeStat(w, "Total Quotations", data.Stats.TotalQuotations)
		writeStat(w, "Email Subscribers", data.Stats.TotalSubscriptions)
		writeStat(w, "This Week", data.Stats.ThisWeek)
		writeStat(w, "Pending Delivery", data.Stats.Pending)
		w.f(`</div>`)

		w.f(`<nav class="tabs">`)
		w.f(`<a href="/?dashboard=true&tab=quotations"%s>Quotations</a>`, activeClass(data.ActiveTab == "quotations"))
		w.f(`<a href="/?dashboard=true&tab=emails"%s>Subscriptions</a>`, activeClass(data.ActiveTab == "emails"))
		w.f(`</nav>`)

		w.f(`<div class="toolbar">`)
		w.f(`<input type="search" name="q" value="%s" placeholder="Search..." `, esc(data.SearchTerm))
		w.f(`hx-get="/dashboard/%s/search" hx-target="#records" hx-trigger="input changed delay:300ms, search">`, tabSlug(data.ActiveTab))
		w.f(`<a href="/dashboard/export/%s/csv">Export CSV</a>`, tabSlug(data.ActiveTab))
		w.f(`<a href="/dashboard/export/%s/excel">Export Excel</a>`, tabSlug(data.ActiveTab))
		w.f(`</div>`)

		w.f(`<div id="records">`)
		if data.ActiveTab == "emails" {
			writeSubscriptionRows(w, data.Subscriptions)
		} else {
			writeQuotationRows(w, data.Quotations)
		}
		w.f(`</div>`)
	})
}

// QuotationRowsFragment renders the quotations table body for htmx search.
func QuotationRowsFragment(rows []QuotationRow) templ.Component {
	return fragment(func(w *htmlWriter) {
		writeQuotationRows(w, rows)
	})
}

// SubscriptionRowsFragment renders the subscriptions table body for htmx
// search.
func SubscriptionRowsFragment(rows []SubscriptionRow) templ.Component {
	return fragment(func(w *htmlWriter) {
		writeSubscriptionRows(w, rows)
	})
}

func writeQuotationRows(w *htmlWriter, rows []QuotationRow) {
	w.f(`<table><thead><tr><th>Name</th><th>Email</th><th>Company</th><th>Product</th><th>Qty</th><th>Date</th><th>Status</th><th></th></tr></thead><tbody>`)
	if len(rows) == 0 {
		w.f(`<tr><td colspan="8" class="empty">No quotation requests found.</td></tr>`)
	}
	for _, r := range rows {
		w.f(`<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%d</td><td>%s</td>`,
			esc(r.FullName), esc(r.Email), esc(r.Company), esc(r.ProductType), r.Quantity, esc(r.Date))
		w.f(`<td><span class="badge badge-%s">%s</span></td>`, esc(r.Status), esc(r.Status))
		w.f(`<td><a href="/dashboard/quotations/%s">View</a> `, esc(r.ID))
		w.f(`<button hx-delete="/dashboard/quotations/%s" hx-target="#records" hx-confirm="Delete this quotation request?">Delete</button></td></tr>`, esc(r.ID))
	}
	w.f(`</tbody></table>`)
}

func writeSubscriptionRows(w *htmlWriter, rows []SubscriptionRow) {
	w.f(`<table><thead><tr><th>Email</th><th>Source</th><th>Date</th><th>Status</th><th>Attempts</th><th></th></tr></thead><tbody>`)
	if len(rows) == 0 {
		w.f(`<tr><td colspan="6" class="empty">No subscriptions found.</td></tr>`)
	}
	for _, r := range rows {
		w.f(`<tr><td>%s</td><td>%s</td><td>%s</td>`, esc(r.Email), esc(r.Source), esc(r.Date))
		w.f(`<td><span class="badge badge-%s">%s</span></td><td>%d</td>`, esc(r.Status), esc(r.Status), r.Attempts)
		w.f(`<td>`)
		if r.Status == "pending" {
			w.f(`<button hx-post="/dashboard/subscriptions/%s/retry" hx-target="#records">Retry</button> `, esc(r.ID))
		}
		w.f(`<button hx-delete="/dashboard/subscriptions/%s" hx-target="#records" hx-confirm="Remove this subscription?">Delete</button></td></tr>`, esc(r.ID))
	}
	w.f(`</tbody></table>`)
}

func writeStat(w *htmlWriter, label string, value int) {
	w.f(`<div class="stat"><p>%s</p><p class="stat-value">%d</p></div>`, esc(label), value)
}

func activeClass(active bool) string {
	if active {
		return ` class="active"`
	}
	return ""
}

func tabSlug(tab string) string {
	if tab == "emails" {
		return "subscriptions"
	}
	return "quotations"
}
