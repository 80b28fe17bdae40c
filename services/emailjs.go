package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// DefaultEmailJSEndpoint is the transactional-email send API.
const DefaultEmailJSEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

// ErrNotConfigured is returned when a reply is attempted without the three
// required EmailJS configuration values. Sending is not attempted.
var ErrNotConfigured = errors.New("email service is not configured: set EMAILJS_SERVICE_ID, EMAILJS_TEMPLATE_ID and EMAILJS_PUBLIC_KEY")

// EmailJSClient sends owner replies through the EmailJS transactional API.
type EmailJSClient struct {
	ServiceID  string
	TemplateID string
	PublicKey  string

	// SenderName and ReplyTo label outgoing mail.
	SenderName string
	ReplyTo    string

	Endpoint string
	Client   *http.Client
}

// NewEmailJSClient builds a client from configuration values. Any of the
// three identifiers may be empty; Configured reports whether sending is
// possible.
func NewEmailJSClient(serviceID, templateID, publicKey string) *EmailJSClient {
	return &EmailJSClient{
		ServiceID:  serviceID,
		TemplateID: templateID,
		PublicKey:  publicKey,
		SenderName: "PrintCraft Team",
		ReplyTo:    "info@printcraft.ph",
		Endpoint:   DefaultEmailJSEndpoint,
		Client:     http.DefaultClient,
	}
}

// Configured reports whether all three required values are present.
func (c *EmailJSClient) Configured() bool {
	return c.ServiceID != "" && c.TemplateID != "" && c.PublicKey != ""
}

// ReplyEmail is one owner reply addressed to a quotation's contact.
type ReplyEmail struct {
	ToEmail string
	ToName  string
	Subject string
	Message string
}

// SendReply delivers a reply through EmailJS. It returns ErrNotConfigured
// without attempting anything when configuration is missing. Delivery errors
// include actionable guidance when the response matches a known
// misconfiguration.
func (c *EmailJSClient) SendReply(ctx context.Context, reply ReplyEmail) error {
	if !c.Configured() {
		return ErrNotConfigured
	}

	payload := map[string]any{
		"service_id":  c.ServiceID,
		"template_id": c.TemplateID,
		"user_id":     c.PublicKey,
		"template_params": map[string]string{
			"to_email":  reply.ToEmail,
			"to_name":   reply.ToName,
			"from_name": c.SenderName,
			"subject":   reply.Subject,
			"message":   reply.Message,
			"reply_to":  c.ReplyTo,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build email request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return fmt.Errorf("email request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	return fmt.Errorf("email send failed (%d): %s", resp.StatusCode, diagnoseEmailJS(resp.StatusCode, string(respBody)))
}

// diagnoseEmailJS maps known EmailJS failure patterns to guidance the owner
// can act on; anything else passes through verbatim.
func diagnoseEmailJS(status int, body string) string {
	switch {
	case strings.Contains(body, "non-browser applications"):
		return "API calls from servers are disabled for this account; enable them in EmailJS security settings"
	case strings.Contains(body, "service ID not found") || strings.Contains(body, "The service ID"):
		return "the configured EMAILJS_SERVICE_ID does not exist"
	case strings.Contains(body, "template ID not found") || strings.Contains(body, "The template ID"):
		return "the configured EMAILJS_TEMPLATE_ID does not exist"
	case status == http.StatusForbidden && strings.Contains(body, "Public Key"):
		return "the configured EMAILJS_PUBLIC_KEY is invalid"
	case body == "":
		return "no response body"
	}
	return body
}
