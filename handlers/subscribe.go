package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase/core"

	"printcraft/services"
	"printcraft/store"
)

// HandleSubscribe records an email subscription. The record is appended
// first (which also rejects duplicates), then relayed; the relay outcome is
// written back as status + attempts.
// Route: POST /subscriptions
func HandleSubscribe(st store.Store, relay *services.FormRelay) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		rec := store.SubscriptionRecord{
			Email:  strings.TrimSpace(e.Request.FormValue("email")),
			Source: "website",
			Status: store.StatusPending,
		}

		err := st.AddSubscription(&rec)
		switch {
		case errors.Is(err, store.ErrInvalidEmail):
			return ErrorToast(e, http.StatusBadRequest, "Please enter a valid email address.")
		case errors.Is(err, store.ErrDuplicateSubscription):
			return ErrorToast(e, http.StatusConflict, "This email is already subscribed to our daily promotions.")
		case err != nil:
			log.Printf("subscribe: could not save subscription: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		rec.Attempts = 1
		relayErr := relay.Send(e.Request.Context(), services.SubscriptionRelayFields(rec))
		if relayErr == nil {
			rec.Status = store.StatusSubmitted
		} else {
			log.Printf("subscribe: relay failed for %s: %v", rec.Email, relayErr)
		}
		if err := st.UpdateSubscription(rec); err != nil {
			log.Printf("subscribe: could not update subscription %s: %v", rec.ID, err)
		}

		if relayErr != nil {
			SetToast(e, "warning", "You're on the list, but confirmation could not be sent yet.")
			return e.String(http.StatusOK, "")
		}
		SetToast(e, "success", "Successfully subscribed! You'll receive exclusive offers starting tomorrow.")
		return e.String(http.StatusOK, "")
	}
}
