package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"printcraft/store"
)

func TestHandleSubscribe_Valid(t *testing.T) {
	st := store.NewMemory()
	handler := HandleSubscribe(st, okRelay(t))

	req := newFormRequest("/subscriptions", url.Values{"email": {"juan@example.com"}})
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(nil, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}

	recs, _ := st.Subscriptions()
	if len(recs) != 1 {
		t.Fatalf("expected 1 subscription, got %d", len(recs))
	}
	s := recs[0]
	if s.Status != store.StatusSubmitted {
		t.Errorf("status = %q, want %q", s.Status, store.StatusSubmitted)
	}
	if s.Attempts != 1 {
		t.Errorf("attempts = %d, want 1", s.Attempts)
	}
	if s.Source != "website" {
		t.Errorf("source = %q", s.Source)
	}
}

func TestHandleSubscribe_Duplicate(t *testing.T) {
	st := store.NewMemory()
	existing := store.SubscriptionRecord{Email: "juan@example.com", Status: store.StatusSubmitted}
	st.AddSubscription(&existing)

	handler := HandleSubscribe(st, okRelay(t))
	req := newFormRequest("/subscriptions", url.Values{"email": {"JUAN@example.com"}})
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(nil, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "already subscribed") {
		t.Errorf("body = %q", rec.Body.String())
	}

	recs, _ := st.Subscriptions()
	if len(recs) != 1 {
		t.Errorf("duplicate was stored, have %d records", len(recs))
	}
}

func TestHandleSubscribe_InvalidEmail(t *testing.T) {
	st := store.NewMemory()
	handler := HandleSubscribe(st, okRelay(t))

	for _, email := range []string{"", "no-at", "two words@x.com"} {
		req := newFormRequest("/subscriptions", url.Values{"email": {email}})
		rec := httptest.NewRecorder()
		e := newTestRequestEvent(nil, req, rec)

		if err := handler(e); err != nil {
			t.Fatalf("handler error for %q: %v", email, err)
		}
		if rec.Code != http.StatusBadRequest {
			t.Errorf("email %q: status = %d, want 400", email, rec.Code)
		}
	}

	recs, _ := st.Subscriptions()
	if len(recs) != 0 {
		t.Errorf("invalid emails were stored: %d records", len(recs))
	}
}

func TestHandleSubscribe_RelayFailureLeavesPending(t *testing.T) {
	st := store.NewMemory()
	handler := HandleSubscribe(st, failingRelay(t))

	req := newFormRequest("/subscriptions", url.Values{"email": {"juan@example.com"}})
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(nil, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	recs, _ := st.Subscriptions()
	if len(recs) != 1 {
		t.Fatalf("expected record kept despite relay failure, got %d", len(recs))
	}
	if recs[0].Status != store.StatusPending {
		t.Errorf("status = %q, want %q", recs[0].Status, store.StatusPending)
	}
	if recs[0].Attempts != 1 {
		t.Errorf("attempts = %d, want 1", recs[0].Attempts)
	}
	if !strings.Contains(rec.Header().Get("HX-Trigger"), "warning") {
		t.Errorf("expected warning toast, got %q", rec.Header().Get("HX-Trigger"))
	}
}
