package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"printcraft/store"
	"printcraft/templates"
)

// HandleQuotationDelete removes a quotation request. Deleting an id that is
// no longer present is a no-op, so double-clicks resolve cleanly.
// Route: DELETE /dashboard/quotations/{id}
func HandleQuotationDelete(st store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return e.String(http.StatusBadRequest, "Missing quotation ID")
		}

		if err := st.DeleteQuotation(id); err != nil {
			log.Printf("record_delete: could not delete quotation %s: %v", id, err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to delete quotation.")
		}

		SetToast(e, "success", "The quotation request has been removed.")

		recs, err := st.Quotations()
		if err != nil {
			log.Printf("record_delete: could not reload quotations: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Could not load quotations.")
		}
		component := templates.QuotationRowsFragment(quotationRows(recs))
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleSubscriptionDelete removes an email subscription.
// Route: DELETE /dashboard/subscriptions/{id}
func HandleSubscriptionDelete(st store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return e.String(http.StatusBadRequest, "Missing subscription ID")
		}

		if err := st.DeleteSubscription(id); err != nil {
			log.Printf("record_delete: could not delete subscription %s: %v", id, err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to delete subscription.")
		}

		SetToast(e, "success", "The email subscription has been removed.")

		recs, err := st.Subscriptions()
		if err != nil {
			log.Printf("record_delete: could not reload subscriptions: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Could not load subscriptions.")
		}
		component := templates.SubscriptionRowsFragment(subscriptionRows(recs))
		return component.Render(e.Request.Context(), e.Response)
	}
}
