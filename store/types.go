// Package store implements the submission store: append-only collections of
// quotation requests and email subscriptions with read/filter/delete
// operations for the owner dashboard. The Store interface can be backed by
// PocketBase collections or by memory, swappable at construction time.
package store

import "time"

// Status values shared by quotation and subscription records.
// A record is "pending" when the outbound relay call failed and the record
// was kept locally only, "submitted" once the relay accepted it, and
// "replied" (quotations only) once an owner reply was delivered.
const (
	StatusSubmitted = "submitted"
	StatusPending   = "pending"
	StatusReplied   = "replied"
)

// Reply delivery outcomes.
const (
	ReplySent   = "sent"
	ReplyFailed = "failed"
)

// PrintSpecs describes the print options chosen on the quotation form.
type PrintSpecs struct {
	Front  bool   `json:"front"`
	Back   bool   `json:"back"`
	Size   string `json:"size"`
	Colors string `json:"colors"`
}

// ReplyRecord is one owner reply sent (or attempted) for a quotation request.
type ReplyRecord struct {
	ID        string    `json:"id"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Status    string    `json:"status"` // "sent" or "failed"
	Error     string    `json:"error,omitempty"`
}

// QuotationRecord is a persisted quotation request submission.
// FullName and Email are mandatory; the remaining contact fields are
// optional. Replies are append-only and owned exclusively by the record.
type QuotationRecord struct {
	ID string `json:"id"`

	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Company  string `json:"company"`

	ProductType string     `json:"productType"`
	Quantity    int        `json:"quantity"`
	PrintSpecs  PrintSpecs `json:"printSpecs"`
	Timeline    string     `json:"timeline"`
	Budget      string     `json:"budget"`

	Description     string `json:"description"`
	HasLogo         bool   `json:"hasLogo"`
	LogoDescription string `json:"logoDescription"`

	EstimatedCost int `json:"estimatedCost"`

	Timestamp time.Time     `json:"timestamp"`
	Status    string        `json:"status"`
	Replies   []ReplyRecord `json:"replies,omitempty"`
}

// SubscriptionRecord is a persisted email subscription.
// Attempts counts relay delivery attempts, including manual retries.
type SubscriptionRecord struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"`
	Status    string    `json:"status"`
	Attempts  int       `json:"attempts"`
}
