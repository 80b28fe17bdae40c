package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"printcraft/store"
)

func TestFormRelay_Send(t *testing.T) {
	var gotContentType, gotAccept, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotAccept = r.Header.Get("Accept")
		buf := make([]byte, r.ContentLength)
		r.Body.Read(buf)
		gotBody = string(buf)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	relay := NewFormRelay(srv.URL)
	fields := url.Values{}
	fields.Set("email", "maria@example.com")

	if err := relay.Send(context.Background(), fields); err != nil {
		t.Fatalf("Send error: %v", err)
	}
	if gotContentType != "application/x-www-form-urlencoded" {
		t.Errorf("Content-Type = %q", gotContentType)
	}
	if gotAccept != "application/json" {
		t.Errorf("Accept = %q", gotAccept)
	}
	if !strings.Contains(gotBody, "email=maria%40example.com") {
		t.Errorf("body = %q, missing encoded email", gotBody)
	}
}

func TestFormRelay_SendRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"error":"form is disabled"}`))
	}))
	defer srv.Close()

	relay := NewFormRelay(srv.URL)
	err := relay.Send(context.Background(), url.Values{})
	if err == nil {
		t.Fatal("expected error for non-2xx response")
	}

	var relayErr *RelayError
	if !errors.As(err, &relayErr) {
		t.Fatalf("expected *RelayError, got %T", err)
	}
	if relayErr.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("status = %d", relayErr.StatusCode)
	}
	if !strings.Contains(relayErr.Error(), "form is disabled") {
		t.Errorf("error message = %q", relayErr.Error())
	}
}

func TestFormRelay_SendNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse the connection

	relay := NewFormRelay(srv.URL)
	if err := relay.Send(context.Background(), url.Values{}); err == nil {
		t.Fatal("expected error when the endpoint is unreachable")
	}
}

func TestQuotationRelayFields(t *testing.T) {
	rec := store.QuotationRecord{
		FullName:    "Maria Santos",
		Email:       "maria@example.com",
		ProductType: "shirt",
		Quantity:    120,
		PrintSpecs:  store.PrintSpecs{Front: true, Size: "A4", Colors: "Full Color"},
		HasLogo:     true,
	}

	fields := QuotationRelayFields(rec)
	if fields.Get("fullName") != "Maria Santos" {
		t.Errorf("fullName = %q", fields.Get("fullName"))
	}
	if fields.Get("quantity") != "120" {
		t.Errorf("quantity = %q", fields.Get("quantity"))
	}
	if fields.Get("_replyto") != "maria@example.com" {
		t.Errorf("_replyto = %q", fields.Get("_replyto"))
	}
	if fields.Get("_subject") != "Quotation request from Maria Santos" {
		t.Errorf("_subject = %q", fields.Get("_subject"))
	}
	if !strings.Contains(fields.Get("printSpecs"), `"front":true`) {
		t.Errorf("printSpecs = %q", fields.Get("printSpecs"))
	}
	if fields.Get("hasLogo") != "true" {
		t.Errorf("hasLogo = %q", fields.Get("hasLogo"))
	}
}

func TestSubscriptionRelayFields(t *testing.T) {
	fields := SubscriptionRelayFields(store.SubscriptionRecord{
		Email:  "juan@example.com",
		Source: "footer",
	})
	if fields.Get("email") != "juan@example.com" {
		t.Errorf("email = %q", fields.Get("email"))
	}
	if fields.Get("source") != "footer" {
		t.Errorf("source = %q", fields.Get("source"))
	}
}
