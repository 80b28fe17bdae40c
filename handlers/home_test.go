package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"printcraft/collections"
	"printcraft/store"
	"printcraft/testhelpers"
)

func TestHandleHome_Landing(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	if err := collections.Seed(app); err != nil {
		t.Fatalf("seed error: %v", err)
	}
	st := store.NewMemory()
	gate := NewPasswordGate("secret")

	handler := HandleHome(app, st, gate)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		"Custom Notebooks",
		"Branded Pens",
		"Custom T-Shirts",
		"Corporate Jackets",
		"Maria Santos", // first testimonial
	)
}

func TestHandleHome_DashboardRequiresLogin(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	st := store.NewMemory()
	gate := NewPasswordGate("secret")

	handler := HandleHome(app, st, gate)
	req := httptest.NewRequest(http.MethodGet, "/?dashboard=true", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "password") {
		t.Error("expected login form")
	}
	if strings.Contains(body, "Total Quotations") {
		t.Error("dashboard rendered without a session")
	}
}

func TestHandleHome_DashboardWithSession(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	st := store.NewMemory()
	q := store.QuotationRecord{FullName: "Maria Santos", Email: "maria@example.com", Status: store.StatusPending}
	st.AddQuotation(&q)
	s := store.SubscriptionRecord{Email: "juan@example.com", Status: store.StatusSubmitted}
	st.AddSubscription(&s)

	gate := NewPasswordGate("secret")
	token, _ := gate.Login("secret")

	handler := HandleHome(app, st, gate)
	req := httptest.NewRequest(http.MethodGet, "/?dashboard=true", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		"Maria Santos",
		"pending",
	)
}

func TestHandleHome_DashboardEmailsTab(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	st := store.NewMemory()
	s := store.SubscriptionRecord{Email: "juan@example.com", Status: store.StatusSubmitted, Attempts: 1}
	st.AddSubscription(&s)

	gate := NewPasswordGate("secret")
	token, _ := gate.Login("secret")

	handler := HandleHome(app, st, gate)
	req := httptest.NewRequest(http.MethodGet, "/?dashboard=true&tab=emails", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "juan@example.com")
}
