package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"printcraft/store"
)

// FormRelay posts form submissions to the third-party intake endpoint that
// forwards them to the owner's inbox. A failed relay is recoverable: the
// caller keeps the record locally with status "pending".
type FormRelay struct {
	URL    string
	Client *http.Client
}

// NewFormRelay returns a relay for the given intake URL using the default
// HTTP client (no timeout beyond the platform default; there is no retry
// scheduler).
func NewFormRelay(intakeURL string) *FormRelay {
	return &FormRelay{URL: intakeURL, Client: http.DefaultClient}
}

// RelayError carries the intake endpoint's error response.
type RelayError struct {
	StatusCode int
	Message    string
}

func (e *RelayError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("relay rejected submission (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("relay rejected submission (%d)", e.StatusCode)
}

// Send posts the fields form-encoded with Accept: application/json.
// Success is inferred from an HTTP 2xx response.
func (r *FormRelay) Send(ctx context.Context, fields url.Values) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.URL,
		strings.NewReader(fields.Encode()))
	if err != nil {
		return fmt.Errorf("build relay request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := r.Client.Do(req)
	if err != nil {
		return fmt.Errorf("relay request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	// The intake service reports failures as {"error": "..."}.
	var body struct {
		Error string `json:"error"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&body)
	return &RelayError{StatusCode: resp.StatusCode, Message: body.Error}
}

// QuotationRelayFields builds the form payload for a quotation request.
// Print specs travel as a JSON blob, matching the intake template.
func QuotationRelayFields(q store.QuotationRecord) url.Values {
	specs, _ := json.Marshal(q.PrintSpecs)

	fields := url.Values{}
	fields.Set("fullName", q.FullName)
	fields.Set("email", q.Email)
	fields.Set("phone", q.Phone)
	fields.Set("company", q.Company)
	fields.Set("productType", q.ProductType)
	fields.Set("quantity", strconv.Itoa(q.Quantity))
	fields.Set("printSpecs", string(specs))
	fields.Set("timeline", q.Timeline)
	fields.Set("budget", q.Budget)
	fields.Set("description", q.Description)
	fields.Set("hasLogo", strconv.FormatBool(q.HasLogo))
	fields.Set("logoDescription", q.LogoDescription)
	fields.Set("_replyto", q.Email)
	fields.Set("_subject", fmt.Sprintf("Quotation request from %s", q.FullName))
	return fields
}

// SubscriptionRelayFields builds the form payload for an email subscription.
func SubscriptionRelayFields(s store.SubscriptionRecord) url.Values {
	fields := url.Values{}
	fields.Set("email", s.Email)
	fields.Set("source", s.Source)
	fields.Set("_subject", "New promotions subscriber")
	return fields
}
