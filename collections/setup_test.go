package collections_test

import (
	"testing"

	"printcraft/collections"
	"printcraft/testhelpers"

	"github.com/pocketbase/pocketbase/core"
)

var expectedCollections = []string{
	"products",
	"testimonials",
	"quotation_requests",
	"quotation_replies",
	"email_subscriptions",
}

func TestSetup_CreatesCollections(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	for _, name := range expectedCollections {
		if _, err := app.FindCollectionByNameOrId(name); err != nil {
			t.Errorf("expected collection %q to exist: %v", name, err)
		}
	}
}

func TestSetup_Idempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	// Setup already ran in NewTestApp; running again must not fail or
	// duplicate anything.
	collections.Setup(app)

	for _, name := range expectedCollections {
		if _, err := app.FindCollectionByNameOrId(name); err != nil {
			t.Errorf("collection %q missing after second run: %v", name, err)
		}
	}
}

func TestSetup_QuotationFields(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	col, err := app.FindCollectionByNameOrId("quotation_requests")
	if err != nil {
		t.Fatalf("quotation_requests missing: %v", err)
	}

	for _, field := range []string{
		"full_name", "email", "phone", "company",
		"product_type", "quantity", "print_front", "print_back",
		"print_size", "print_colors", "timeline", "budget",
		"description", "has_logo", "logo_description",
		"estimated_cost", "status", "created",
	} {
		if col.Fields.GetByName(field) == nil {
			t.Errorf("quotation_requests missing field %q", field)
		}
	}
}

func TestSetup_ReplyCascadeDelete(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	quotation := testhelpers.CreateTestQuotation(t, app, "Cascade", "c@example.com")
	reply := testhelpers.CreateTestReply(t, app, quotation.Id, "Re: your request", "sent")

	if err := app.Delete(quotation); err != nil {
		t.Fatalf("delete quotation error: %v", err)
	}

	if _, err := app.FindRecordById("quotation_replies", reply.Id); err == nil {
		t.Error("expected reply to be cascade-deleted with its quotation")
	}
}

func TestSetup_SubscriptionStatusValues(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	col, err := app.FindCollectionByNameOrId("email_subscriptions")
	if err != nil {
		t.Fatalf("email_subscriptions missing: %v", err)
	}

	field, ok := col.Fields.GetByName("status").(*core.SelectField)
	if !ok {
		t.Fatal("status is not a select field")
	}
	if len(field.Values) != 2 || field.Values[0] != "submitted" || field.Values[1] != "pending" {
		t.Errorf("status values = %v", field.Values)
	}
}
