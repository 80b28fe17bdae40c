package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase/core"

	"printcraft/store"
)

// HandleQuotationEmailUpdate corrects the contact email on a quotation
// request. Typo fixes here let a reply reach the customer without asking
// them to resubmit.
// Route: POST /dashboard/quotations/{id}/email
func HandleQuotationEmailUpdate(st store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return e.String(http.StatusBadRequest, "Missing quotation ID")
		}

		email := strings.TrimSpace(e.Request.FormValue("email"))

		err := st.UpdateQuotationEmail(id, email)
		switch {
		case errors.Is(err, store.ErrInvalidEmail):
			return ErrorToast(e, http.StatusBadRequest, "Please enter a valid email address.")
		case errors.Is(err, store.ErrNotFound):
			return e.String(http.StatusNotFound, "Quotation not found")
		case err != nil:
			log.Printf("email_update: could not update email for %s: %v", id, err)
			return ErrorToast(e, http.StatusInternalServerError, "Could not update the email address.")
		}

		SetToast(e, "success", "Contact email updated to "+email+".")
		e.Response.Header().Set("HX-Refresh", "true")
		return e.String(http.StatusOK, "")
	}
}
