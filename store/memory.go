package store

import (
	"time"

	"github.com/pocketbase/pocketbase/tools/security"
)

// Memory is an in-memory Store used in tests and anywhere persistence is not
// wanted. Records are held in append order.
type Memory struct {
	quotations    []QuotationRecord
	subscriptions []SubscriptionRecord
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) AddQuotation(q *QuotationRecord) error {
	if q.ID == "" {
		q.ID = security.RandomString(15)
	}
	if q.Timestamp.IsZero() {
		q.Timestamp = time.Now()
	}
	m.quotations = append(m.quotations, cloneQuotation(*q))
	return nil
}

func (m *Memory) Quotations() ([]QuotationRecord, error) {
	out := make([]QuotationRecord, 0, len(m.quotations))
	for _, q := range m.quotations {
		out = append(out, cloneQuotation(q))
	}
	return out, nil
}

func (m *Memory) QuotationByID(id string) (QuotationRecord, error) {
	for _, q := range m.quotations {
		if q.ID == id {
			return cloneQuotation(q), nil
		}
	}
	return QuotationRecord{}, ErrNotFound
}

func (m *Memory) DeleteQuotation(id string) error {
	for i, q := range m.quotations {
		if q.ID == id {
			m.quotations = append(m.quotations[:i], m.quotations[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *Memory) UpdateQuotationEmail(id, email string) error {
	if !ValidEmail(email) {
		return ErrInvalidEmail
	}
	for i := range m.quotations {
		if m.quotations[i].ID == id {
			m.quotations[i].Email = email
			return nil
		}
	}
	return ErrNotFound
}

func (m *Memory) AppendReply(quotationID string, reply ReplyRecord) error {
	for i := range m.quotations {
		if m.quotations[i].ID != quotationID {
			continue
		}
		if reply.ID == "" {
			reply.ID = security.RandomString(15)
		}
		if reply.Timestamp.IsZero() {
			reply.Timestamp = time.Now()
		}
		m.quotations[i].Replies = append(m.quotations[i].Replies, reply)
		if reply.Status == ReplySent {
			m.quotations[i].Status = StatusReplied
		}
		return nil
	}
	return ErrNotFound
}

func (m *Memory) AddSubscription(s *SubscriptionRecord) error {
	if !ValidEmail(s.Email) {
		return ErrInvalidEmail
	}
	for _, existing := range m.subscriptions {
		if sameEmail(existing.Email, s.Email) {
			return ErrDuplicateSubscription
		}
	}
	if s.ID == "" {
		s.ID = security.RandomString(15)
	}
	if s.Timestamp.IsZero() {
		s.Timestamp = time.Now()
	}
	m.subscriptions = append(m.subscriptions, *s)
	return nil
}

func (m *Memory) Subscriptions() ([]SubscriptionRecord, error) {
	out := make([]SubscriptionRecord, len(m.subscriptions))
	copy(out, m.subscriptions)
	return out, nil
}

func (m *Memory) SubscriptionByID(id string) (SubscriptionRecord, error) {
	for _, s := range m.subscriptions {
		if s.ID == id {
			return s, nil
		}
	}
	return SubscriptionRecord{}, ErrNotFound
}

func (m *Memory) DeleteSubscription(id string) error {
	for i, s := range m.subscriptions {
		if s.ID == id {
			m.subscriptions = append(m.subscriptions[:i], m.subscriptions[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *Memory) UpdateSubscription(s SubscriptionRecord) error {
	for i := range m.subscriptions {
		if m.subscriptions[i].ID == s.ID {
			m.subscriptions[i] = s
			return nil
		}
	}
	return ErrNotFound
}

func cloneQuotation(q QuotationRecord) QuotationRecord {
	if len(q.Replies) > 0 {
		replies := make([]ReplyRecord, len(q.Replies))
		copy(replies, q.Replies)
		q.Replies = replies
	}
	return q
}
