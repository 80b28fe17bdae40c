package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"printcraft/services"
	"printcraft/store"
	"printcraft/templates"
)

// HandleSubscriptionRetry re-sends a pending subscription to the form relay.
// Every attempt increments the record's attempt counter; only a successful
// relay call moves the record to "submitted".
// Route: POST /dashboard/subscriptions/{id}/retry
func HandleSubscriptionRetry(st store.Store, relay *services.FormRelay) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return e.String(http.StatusBadRequest, "Missing subscription ID")
		}

		rec, err := st.SubscriptionByID(id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return e.String(http.StatusNotFound, "Subscription not found")
			}
			log.Printf("subscription_retry: could not load subscription %s: %v", id, err)
			return ErrorToast(e, http.StatusInternalServerError, "Could not load subscription.")
		}

		rec.Attempts++
		relayErr := relay.Send(e.Request.Context(), services.SubscriptionRelayFields(rec))
		if relayErr == nil {
			rec.Status = store.StatusSubmitted
		}

		if err := st.UpdateSubscription(rec); err != nil {
			log.Printf("subscription_retry: could not update subscription %s: %v", id, err)
			return ErrorToast(e, http.StatusInternalServerError, "Could not update subscription.")
		}

		if relayErr != nil {
			log.Printf("subscription_retry: relay failed for %s: %v", id, relayErr)
			SetToast(e, "error", "Retry failed; the subscription is still pending.")
		} else {
			SetToast(e, "success", "Subscription delivered to the inbox relay.")
		}

		recs, err := st.Subscriptions()
		if err != nil {
			log.Printf("subscription_retry: could not reload subscriptions: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Could not load subscriptions.")
		}
		component := templates.SubscriptionRowsFragment(subscriptionRows(recs))
		return component.Render(e.Request.Context(), e.Response)
	}
}
