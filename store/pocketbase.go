package store

import (
	"fmt"

	"github.com/pocketbase/pocketbase/core"
)

// Collection names used by the PocketBase backing.
const (
	QuotationsCollection    = "quotation_requests"
	RepliesCollection       = "quotation_replies"
	SubscriptionsCollection = "email_subscriptions"
)

// PocketBase is a Store backed by PocketBase collections. Ids and creation
// timestamps come from PocketBase itself, so rapid successive submissions
// cannot collide the way timestamp-derived ids would.
type PocketBase struct {
	app core.App
}

// NewPocketBase returns a Store persisting to the given app's collections.
// collections.Setup must have run before the store is used.
func NewPocketBase(app core.App) *PocketBase {
	return &PocketBase{app: app}
}

func (p *PocketBase) AddQuotation(q *QuotationRecord) error {
	col, err := p.app.FindCollectionByNameOrId(QuotationsCollection)
	if err != nil {
		return fmt.Errorf("find quotations collection: %w", err)
	}

	record := core.NewRecord(col)
	record.Set("full_name", q.FullName)
	record.Set("email", q.Email)
	record.Set("phone", q.Phone)
	record.Set("company", q.Company)
	record.Set("product_type", q.ProductType)
	record.Set("quantity", q.Quantity)
	record.Set("print_front", q.PrintSpecs.Front)
	record.Set("print_back", q.PrintSpecs.Back)
	record.Set("print_size", q.PrintSpecs.Size)
	record.Set("print_colors", q.PrintSpecs.Colors)
	record.Set("timeline", q.Timeline)
	record.Set("budget", q.Budget)
	record.Set("description", q.Description)
	record.Set("has_logo", q.HasLogo)
	record.Set("logo_description", q.LogoDescription)
	record.Set("estimated_cost", q.EstimatedCost)
	record.Set("status", q.Status)

	if err := p.app.Save(record); err != nil {
		return fmt.Errorf("save quotation: %w", err)
	}

	q.ID = record.Id
	q.Timestamp = record.GetDateTime("created").Time()
	return nil
}

func (p *PocketBase) Quotations() ([]QuotationRecord, error) {
	col, err := p.app.FindCollectionByNameOrId(QuotationsCollection)
	if err != nil {
		return nil, fmt.Errorf("find quotations collection: %w", err)
	}

	records, err := p.app.FindAllRecords(col)
	if err != nil {
		return nil, fmt.Errorf("list quotations: %w", err)
	}

	out := make([]QuotationRecord, 0, len(records))
	for _, rec := range records {
		q, err := p.quotationFromRecord(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, nil
}

func (p *PocketBase) QuotationByID(id string) (QuotationRecord, error) {
	rec, err := p.app.FindRecordById(QuotationsCollection, id)
	if err != nil {
		return QuotationRecord{}, ErrNotFound
	}
	return p.quotationFromRecord(rec)
}

func (p *PocketBase) DeleteQuotation(id string) error {
	rec, err := p.app.FindRecordById(QuotationsCollection, id)
	if err != nil {
		return nil // absent id is a no-op
	}
	if err := p.app.Delete(rec); err != nil {
		return fmt.Errorf("delete quotation %s: %w", id, err)
	}
	return nil
}

func (p *PocketBase) UpdateQuotationEmail(id, email string) error {
	if !ValidEmail(email) {
		return ErrInvalidEmail
	}
	rec, err := p.app.FindRecordById(QuotationsCollection, id)
	if err != nil {
		return ErrNotFound
	}
	rec.Set("email", email)
	if err := p.app.Save(rec); err != nil {
		return fmt.Errorf("update quotation email: %w", err)
	}
	return nil
}

func (p *PocketBase) AppendReply(quotationID string, reply ReplyRecord) error {
	quotation, err := p.app.FindRecordById(QuotationsCollection, quotationID)
	if err != nil {
		return ErrNotFound
	}

	col, err := p.app.FindCollectionByNameOrId(RepliesCollection)
	if err != nil {
		return fmt.Errorf("find replies collection: %w", err)
	}

	rec := core.NewRecord(col)
	rec.Set("request", quotationID)
	rec.Set("subject", reply.Subject)
	rec.Set("message", reply.Message)
	rec.Set("status", reply.Status)
	rec.Set("error", reply.Error)
	if err := p.app.Save(rec); err != nil {
		return fmt.Errorf("save reply: %w", err)
	}

	if reply.Status == ReplySent && quotation.GetString("status") != StatusReplied {
		quotation.Set("status", StatusReplied)
		if err := p.app.Save(quotation); err != nil {
			return fmt.Errorf("mark quotation replied: %w", err)
		}
	}
	return nil
}

func (p *PocketBase) AddSubscription(s *SubscriptionRecord) error {
	if !ValidEmail(s.Email) {
		return ErrInvalidEmail
	}

	existing, err := p.Subscriptions()
	if err != nil {
		return err
	}
	for _, sub := range existing {
		if sameEmail(sub.Email, s.Email) {
			return ErrDuplicateSubscription
		}
	}

	col, err := p.app.FindCollectionByNameOrId(SubscriptionsCollection)
	if err != nil {
		return fmt.Errorf("find subscriptions collection: %w", err)
	}

	record := core.NewRecord(col)
	record.Set("email", s.Email)
	record.Set("source", s.Source)
	record.Set("status", s.Status)
	record.Set("attempts", s.Attempts)
	if err := p.app.Save(record); err != nil {
		return fmt.Errorf("save subscription: %w", err)
	}

	s.ID = record.Id
	s.Timestamp = record.GetDateTime("created").Time()
	return nil
}

func (p *PocketBase) Subscriptions() ([]SubscriptionRecord, error) {
	col, err := p.app.FindCollectionByNameOrId(SubscriptionsCollection)
	if err != nil {
		return nil, fmt.Errorf("find subscriptions collection: %w", err)
	}

	records, err := p.app.FindAllRecords(col)
	if err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}

	out := make([]SubscriptionRecord, 0, len(records))
	for _, rec := range records {
		out = append(out, subscriptionFromRecord(rec))
	}
	return out, nil
}

func (p *PocketBase) SubscriptionByID(id string) (SubscriptionRecord, error) {
	rec, err := p.app.FindRecordById(SubscriptionsCollection, id)
	if err != nil {
		return SubscriptionRecord{}, ErrNotFound
	}
	return subscriptionFromRecord(rec), nil
}

func (p *PocketBase) DeleteSubscription(id string) error {
	rec, err := p.app.FindRecordById(SubscriptionsCollection, id)
	if err != nil {
		return nil // absent id is a no-op
	}
	if err := p.app.Delete(rec); err != nil {
		return fmt.Errorf("delete subscription %s: %w", id, err)
	}
	return nil
}

func (p *PocketBase) UpdateSubscription(s SubscriptionRecord) error {
	rec, err := p.app.FindRecordById(SubscriptionsCollection, s.ID)
	if err != nil {
		return ErrNotFound
	}
	rec.Set("email", s.Email)
	rec.Set("source", s.Source)
	rec.Set("status", s.Status)
	rec.Set("attempts", s.Attempts)
	if err := p.app.Save(rec); err != nil {
		return fmt.Errorf("update subscription: %w", err)
	}
	return nil
}

func (p *PocketBase) quotationFromRecord(rec *core.Record) (QuotationRecord, error) {
	q := QuotationRecord{
		ID:       rec.Id,
		FullName: rec.GetString("full_name"),
		Email:    rec.GetString("email"),
		Phone:    rec.GetString("phone"),
		Company:  rec.GetString("company"),

		ProductType: rec.GetString("product_type"),
		Quantity:    rec.GetInt("quantity"),
		PrintSpecs: PrintSpecs{
			Front:  rec.GetBool("print_front"),
			Back:   rec.GetBool("print_back"),
			Size:   rec.GetString("print_size"),
			Colors: rec.GetString("print_colors"),
		},
		Timeline: rec.GetString("timeline"),
		Budget:   rec.GetString("budget"),

		Description:     rec.GetString("description"),
		HasLogo:         rec.GetBool("has_logo"),
		LogoDescription: rec.GetString("logo_description"),

		EstimatedCost: rec.GetInt("estimated_cost"),

		Timestamp: rec.GetDateTime("created").Time(),
		Status:    rec.GetString("status"),
	}

	replies, err := p.app.FindRecordsByFilter(
		RepliesCollection,
		"request = {:id}",
		"created",
		0, 0,
		map[string]any{"id": rec.Id},
	)
	if err != nil {
		replies = nil
	}
	for _, r := range replies {
		q.Replies = append(q.Replies, ReplyRecord{
			ID:        r.Id,
			Subject:   r.GetString("subject"),
			Message:   r.GetString("message"),
			Timestamp: r.GetDateTime("created").Time(),
			Status:    r.GetString("status"),
			Error:     r.GetString("error"),
		})
	}

	return q, nil
}

func subscriptionFromRecord(rec *core.Record) SubscriptionRecord {
	return SubscriptionRecord{
		ID:        rec.Id,
		Email:     rec.GetString("email"),
		Timestamp: rec.GetDateTime("created").Time(),
		Source:    rec.GetString("source"),
		Status:    rec.GetString("status"),
		Attempts:  rec.GetInt("attempts"),
	}
}
