package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase/core"

	"printcraft/services"
	"printcraft/store"
)

// HandleReplySend delivers an owner reply for a quotation request and records
// the attempt in the reply history. A failed delivery is recorded too, with
// the delivery error, so the history shows what was attempted.
// Route: POST /dashboard/quotations/{id}/replies
func HandleReplySend(st store.Store, mailer *services.EmailJSClient) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return e.String(http.StatusBadRequest, "Missing quotation ID")
		}

		subject := strings.TrimSpace(e.Request.FormValue("subject"))
		message := strings.TrimSpace(e.Request.FormValue("message"))
		if subject == "" || message == "" {
			return ErrorToast(e, http.StatusBadRequest, "Subject and message are required.")
		}

		rec, err := st.QuotationByID(id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return e.String(http.StatusNotFound, "Quotation not found")
			}
			log.Printf("reply_send: could not load quotation %s: %v", id, err)
			return ErrorToast(e, http.StatusInternalServerError, "Could not load quotation.")
		}

		if !mailer.Configured() {
			return ErrorToast(e, http.StatusConflict, services.ErrNotConfigured.Error())
		}

		reply := store.ReplyRecord{
			Subject:   subject,
			Message:   message,
			Timestamp: time.Now(),
			Status:    store.ReplySent,
		}

		sendErr := mailer.SendReply(e.Request.Context(), services.ReplyEmail{
			ToEmail: rec.Email,
			ToName:  rec.FullName,
			Subject: subject,
			Message: message,
		})
		if sendErr != nil {
			reply.Status = store.ReplyFailed
			reply.Error = sendErr.Error()
		}

		if err := st.AppendReply(id, reply); err != nil {
			log.Printf("reply_send: could not record reply for %s: %v", id, err)
			return ErrorToast(e, http.StatusInternalServerError, "Could not record the reply.")
		}

		if sendErr != nil {
			log.Printf("reply_send: delivery failed for %s: %v", id, sendErr)
			SetToast(e, "error", "Reply could not be delivered: "+sendErr.Error())
			e.Response.Header().Set("HX-Refresh", "true")
			return e.String(http.StatusOK, "")
		}

		SetToast(e, "success", "Reply sent to "+rec.Email+".")
		e.Response.Header().Set("HX-Refresh", "true")
		return e.String(http.StatusOK, "")
	}
}
