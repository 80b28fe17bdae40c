package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"printcraft/services"
	"printcraft/store"
)

func configuredMailer(t *testing.T, status int, body string) *services.EmailJSClient {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	c := services.NewEmailJSClient("svc", "tpl", "key")
	c.Endpoint = srv.URL
	return c
}

func replyRequest(id string, fields url.Values) *http.Request {
	req := newFormRequest("/dashboard/quotations/"+id+"/replies", fields)
	req.SetPathValue("id", id)
	return req
}

func TestHandleReplySend_Success(t *testing.T) {
	st := store.NewMemory()
	q := store.QuotationRecord{FullName: "Maria Santos", Email: "maria@example.com", Status: store.StatusSubmitted}
	st.AddQuotation(&q)

	handler := HandleReplySend(st, configuredMailer(t, http.StatusOK, "OK"))
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(nil, replyRequest(q.ID, url.Values{
		"subject": {"Your quotation"},
		"message": {"Details attached."},
	}), rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !strings.Contains(rec.Header().Get("HX-Trigger"), "success") {
		t.Errorf("expected success toast, got %q", rec.Header().Get("HX-Trigger"))
	}

	got, _ := st.QuotationByID(q.ID)
	if got.Status != store.StatusReplied {
		t.Errorf("status = %q, want %q", got.Status, store.StatusReplied)
	}
	if len(got.Replies) != 1 {
		t.Fatalf("expected 1 reply, got %d", len(got.Replies))
	}
	r := got.Replies[0]
	if r.Subject != "Your quotation" || r.Status != store.ReplySent || r.Error != "" {
		t.Errorf("reply = %+v", r)
	}
}

func TestHandleReplySend_DeliveryFailureRecorded(t *testing.T) {
	st := store.NewMemory()
	q := store.QuotationRecord{FullName: "Maria Santos", Email: "maria@example.com", Status: store.StatusSubmitted}
	st.AddQuotation(&q)

	handler := HandleReplySend(st, configuredMailer(t, http.StatusBadGateway, "upstream down"))
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(nil, replyRequest(q.ID, url.Values{
		"subject": {"Your quotation"},
		"message": {"Details attached."},
	}), rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !strings.Contains(rec.Header().Get("HX-Trigger"), "error") {
		t.Errorf("expected error toast, got %q", rec.Header().Get("HX-Trigger"))
	}

	got, _ := st.QuotationByID(q.ID)
	if got.Status != store.StatusSubmitted {
		t.Errorf("failed delivery changed status to %q", got.Status)
	}
	if len(got.Replies) != 1 {
		t.Fatalf("expected the failed attempt recorded, got %d replies", len(got.Replies))
	}
	r := got.Replies[0]
	if r.Status != store.ReplyFailed || r.Error == "" {
		t.Errorf("reply = %+v", r)
	}
}

func TestHandleReplySend_MissingFields(t *testing.T) {
	st := store.NewMemory()
	q := store.QuotationRecord{FullName: "Maria Santos", Email: "maria@example.com"}
	st.AddQuotation(&q)

	handler := HandleReplySend(st, configuredMailer(t, http.StatusOK, "OK"))

	for _, fields := range []url.Values{
		{"message": {"no subject"}},
		{"subject": {"no message"}},
		{"subject": {"  "}, "message": {"  "}},
	} {
		rec := httptest.NewRecorder()
		e := newTestRequestEvent(nil, replyRequest(q.ID, fields), rec)
		if err := handler(e); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if rec.Code != http.StatusBadRequest {
			t.Errorf("fields %v: status = %d, want 400", fields, rec.Code)
		}
	}

	got, _ := st.QuotationByID(q.ID)
	if len(got.Replies) != 0 {
		t.Errorf("invalid input recorded %d replies", len(got.Replies))
	}
}

func TestHandleReplySend_Unconfigured(t *testing.T) {
	st := store.NewMemory()
	q := store.QuotationRecord{FullName: "Maria Santos", Email: "maria@example.com"}
	st.AddQuotation(&q)

	handler := HandleReplySend(st, services.NewEmailJSClient("", "", ""))
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(nil, replyRequest(q.ID, url.Values{
		"subject": {"Your quotation"},
		"message": {"Details attached."},
	}), rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "not configured") {
		t.Errorf("body = %q", rec.Body.String())
	}

	got, _ := st.QuotationByID(q.ID)
	if len(got.Replies) != 0 {
		t.Error("unconfigured mailer recorded a reply attempt")
	}
}

func TestHandleReplySend_UnknownQuotation(t *testing.T) {
	st := store.NewMemory()
	handler := HandleReplySend(st, configuredMailer(t, http.StatusOK, "OK"))

	rec := httptest.NewRecorder()
	e := newTestRequestEvent(nil, replyRequest("missing", url.Values{
		"subject": {"Subject"},
		"message": {"Message"},
	}), rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
