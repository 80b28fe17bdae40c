package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func TestHandleEstimate(t *testing.T) {
	tests := []struct {
		name   string
		fields url.Values
		want   string
	}{
		{
			"discounted notebooks with front print",
			url.Values{
				"product_type": {"notebook"},
				"quantity":     {"50"},
				"print_front":  {"on"},
				"timeline":     {"standard"},
			},
			"₱7,900",
		},
		{
			"expedited shirts full options",
			url.Values{
				"product_type": {"shirt"},
				"quantity":     {"120"},
				"print_front":  {"on"},
				"print_back":   {"on"},
				"custom_logo":  {"on"},
				"timeline":     {"expedited"},
			},
			"₱51,818",
		},
		{
			"no product selected",
			url.Values{"quantity": {"50"}},
			"₱0",
		},
		{
			"garbage quantity clamps to one",
			url.Values{"product_type": {"pen"}, "quantity": {"abc"}},
			"₱25",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := HandleEstimate()
			req := newFormRequest("/quote/estimate", tt.fields)
			rec := httptest.NewRecorder()
			e := newTestRequestEvent(nil, req, rec)

			if err := handler(e); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != http.StatusOK {
				t.Errorf("status = %d", rec.Code)
			}
			body := rec.Body.String()
			if !strings.Contains(body, tt.want) {
				t.Errorf("expected estimate %q in body:\n%s", tt.want, body)
			}
		})
	}
}
