package store

import (
	"errors"
	"strings"
)

var (
	// ErrDuplicateSubscription is returned when a subscription with the same
	// email (compared case-insensitively) already exists.
	ErrDuplicateSubscription = errors.New("email is already subscribed")

	// ErrNotFound is returned when an operation references a record id that
	// is not in the collection.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidEmail is returned when an email fails intake validation.
	ErrInvalidEmail = errors.New("invalid email address")
)

// Store is the submission store contract shared by the public forms and the
// owner dashboard. Appends preserve invocation order; deletes are idempotent.
type Store interface {
	// AddQuotation appends a quotation request. The implementation assigns
	// ID and Timestamp when they are unset and writes them back to q.
	AddQuotation(q *QuotationRecord) error
	// Quotations returns all quotation requests in append order.
	Quotations() ([]QuotationRecord, error)
	QuotationByID(id string) (QuotationRecord, error)
	// DeleteQuotation removes a quotation by id. Unknown ids are a no-op.
	DeleteQuotation(id string) error
	// UpdateQuotationEmail corrects a record's contact email in place.
	// The new email must pass the same validation as subscription intake.
	UpdateQuotationEmail(id, email string) error
	// AppendReply appends a reply to a quotation's reply sequence. Only a
	// reply with status "sent" transitions the record status to "replied".
	// Returns ErrNotFound for an unknown quotation id.
	AppendReply(quotationID string, reply ReplyRecord) error

	// AddSubscription appends an email subscription, rejecting duplicates
	// with ErrDuplicateSubscription and malformed emails with
	// ErrInvalidEmail. ID and Timestamp are assigned when unset.
	AddSubscription(s *SubscriptionRecord) error
	// Subscriptions returns all subscriptions in append order.
	Subscriptions() ([]SubscriptionRecord, error)
	SubscriptionByID(id string) (SubscriptionRecord, error)
	// DeleteSubscription removes a subscription by id. Unknown ids are a no-op.
	DeleteSubscription(id string) error
	// UpdateSubscription persists retry bookkeeping (status, attempts).
	UpdateSubscription(s SubscriptionRecord) error
}

// ValidEmail reports whether an email passes intake validation:
// it must contain "@" and no whitespace.
func ValidEmail(email string) bool {
	if !strings.Contains(email, "@") {
		return false
	}
	return !strings.ContainsAny(email, " \t\r\n")
}

// sameEmail compares two subscription emails for the duplicate check.
// Comparison ignores case and surrounding whitespace.
func sameEmail(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
