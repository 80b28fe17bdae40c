package store_test

import (
	"errors"
	"testing"

	"printcraft/store"
	"printcraft/testhelpers"
)

func TestPocketBase_QuotationRoundTrip(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	st := store.NewPocketBase(app)

	q := store.QuotationRecord{
		FullName:    "Maria Santos",
		Email:       "maria@example.com",
		Phone:       "0917 123 4567",
		Company:     "Santos Trading",
		ProductType: "notebook",
		Quantity:    50,
		PrintSpecs:  store.PrintSpecs{Front: true, Size: "A4", Colors: "Full Color"},
		Timeline:    "standard",
		Budget:      "5k-10k",
		HasLogo:     true,
		LogoDescription: "Company crest on cover",
		EstimatedCost:   7900,
		Status:          store.StatusSubmitted,
	}
	if err := st.AddQuotation(&q); err != nil {
		t.Fatalf("AddQuotation error: %v", err)
	}
	if q.ID == "" {
		t.Fatal("expected PocketBase-assigned ID")
	}
	if q.Timestamp.IsZero() {
		t.Error("expected creation timestamp")
	}

	got, err := st.QuotationByID(q.ID)
	if err != nil {
		t.Fatalf("QuotationByID error: %v", err)
	}
	if got.FullName != "Maria Santos" || got.EstimatedCost != 7900 {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if !got.PrintSpecs.Front || got.PrintSpecs.Back {
		t.Errorf("print specs mismatch: %+v", got.PrintSpecs)
	}
	if !got.HasLogo || got.LogoDescription != "Company crest on cover" {
		t.Errorf("logo fields mismatch: %+v", got)
	}
}

func TestPocketBase_QuotationsAppendOrder(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	st := store.NewPocketBase(app)

	for _, name := range []string{"First", "Second", "Third"} {
		q := store.QuotationRecord{FullName: name, Email: name + "@example.com", Status: store.StatusSubmitted}
		if err := st.AddQuotation(&q); err != nil {
			t.Fatalf("AddQuotation(%s) error: %v", name, err)
		}
	}

	recs, err := st.Quotations()
	if err != nil {
		t.Fatalf("Quotations error: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("expected 3 records, got %d", len(recs))
	}
}

func TestPocketBase_DeleteQuotationIdempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	st := store.NewPocketBase(app)
	rec := testhelpers.CreateTestQuotation(t, app, "Delete Me", "d@example.com")

	if err := st.DeleteQuotation(rec.Id); err != nil {
		t.Fatalf("delete error: %v", err)
	}
	if err := st.DeleteQuotation(rec.Id); err != nil {
		t.Fatalf("second delete should be a no-op, got: %v", err)
	}
	if _, err := st.QuotationByID(rec.Id); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestPocketBase_AppendReply(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	st := store.NewPocketBase(app)
	rec := testhelpers.CreateTestQuotation(t, app, "Replied To", "r@example.com")

	err := st.AppendReply(rec.Id, store.ReplyRecord{
		Subject: "Delivery failed",
		Message: "...",
		Status:  store.ReplyFailed,
		Error:   "timeout",
	})
	if err != nil {
		t.Fatalf("AppendReply error: %v", err)
	}
	got, _ := st.QuotationByID(rec.Id)
	if got.Status != store.StatusSubmitted {
		t.Errorf("failed reply changed status to %q", got.Status)
	}

	err = st.AppendReply(rec.Id, store.ReplyRecord{
		Subject: "Your quotation",
		Message: "Details attached.",
		Status:  store.ReplySent,
	})
	if err != nil {
		t.Fatalf("AppendReply error: %v", err)
	}
	got, _ = st.QuotationByID(rec.Id)
	if got.Status != store.StatusReplied {
		t.Errorf("status = %q, want %q", got.Status, store.StatusReplied)
	}
	if len(got.Replies) != 2 {
		t.Fatalf("expected 2 replies, got %d", len(got.Replies))
	}
	if got.Replies[0].Error != "timeout" {
		t.Errorf("first reply error = %q", got.Replies[0].Error)
	}

	if err := st.AppendReply("missing", store.ReplyRecord{Status: store.ReplySent}); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestPocketBase_UpdateQuotationEmail(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	st := store.NewPocketBase(app)
	rec := testhelpers.CreateTestQuotation(t, app, "Typo", "typo@exmaple.com")

	if err := st.UpdateQuotationEmail(rec.Id, "typo@example.com"); err != nil {
		t.Fatalf("UpdateQuotationEmail error: %v", err)
	}
	got, _ := st.QuotationByID(rec.Id)
	if got.Email != "typo@example.com" {
		t.Errorf("email = %q", got.Email)
	}

	if err := st.UpdateQuotationEmail(rec.Id, "bad email"); !errors.Is(err, store.ErrInvalidEmail) {
		t.Errorf("expected ErrInvalidEmail, got %v", err)
	}
	if err := st.UpdateQuotationEmail("missing", "ok@example.com"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestPocketBase_SubscriptionLifecycle(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	st := store.NewPocketBase(app)

	s := store.SubscriptionRecord{Email: "juan@example.com", Source: "footer", Status: store.StatusPending, Attempts: 1}
	if err := st.AddSubscription(&s); err != nil {
		t.Fatalf("AddSubscription error: %v", err)
	}
	if s.ID == "" {
		t.Fatal("expected PocketBase-assigned ID")
	}

	dup := store.SubscriptionRecord{Email: "JUAN@example.com"}
	if err := st.AddSubscription(&dup); !errors.Is(err, store.ErrDuplicateSubscription) {
		t.Errorf("expected ErrDuplicateSubscription, got %v", err)
	}

	bad := store.SubscriptionRecord{Email: "not an email"}
	if err := st.AddSubscription(&bad); !errors.Is(err, store.ErrInvalidEmail) {
		t.Errorf("expected ErrInvalidEmail, got %v", err)
	}

	s.Status = store.StatusSubmitted
	s.Attempts = 2
	if err := st.UpdateSubscription(s); err != nil {
		t.Fatalf("UpdateSubscription error: %v", err)
	}
	got, err := st.SubscriptionByID(s.ID)
	if err != nil {
		t.Fatalf("SubscriptionByID error: %v", err)
	}
	if got.Status != store.StatusSubmitted || got.Attempts != 2 {
		t.Errorf("update not persisted: %+v", got)
	}

	if err := st.DeleteSubscription(s.ID); err != nil {
		t.Fatalf("DeleteSubscription error: %v", err)
	}
	if err := st.DeleteSubscription(s.ID); err != nil {
		t.Fatalf("repeat delete should be a no-op, got: %v", err)
	}
}
