package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"printcraft/store"
	"printcraft/templates"
)

// HandleQuotationSearch filters the quotations table by the search term.
// An empty term returns the full collection in original order.
// Route: GET /dashboard/quotations/search?q=...
func HandleQuotationSearch(st store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		recs, err := st.Quotations()
		if err != nil {
			log.Printf("dashboard_search: could not load quotations: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Could not load quotations.")
		}

		term := e.Request.URL.Query().Get("q")
		rows := quotationRows(store.FilterQuotations(recs, term))
		component := templates.QuotationRowsFragment(rows)
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleSubscriptionSearch filters the subscriptions table by email.
// Route: GET /dashboard/subscriptions/search?q=...
func HandleSubscriptionSearch(st store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		recs, err := st.Subscriptions()
		if err != nil {
			log.Printf("dashboard_search: could not load subscriptions: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Could not load subscriptions.")
		}

		term := e.Request.URL.Query().Get("q")
		rows := subscriptionRows(store.FilterSubscriptions(recs, term))
		component := templates.SubscriptionRowsFragment(rows)
		return component.Render(e.Request.Context(), e.Response)
	}
}
