// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"printcraft/collections"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestQuotation creates a quotation request record and returns it.
func CreateTestQuotation(t *testing.T, app *pocketbase.PocketBase, fullName, email string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("quotation_requests")
	if err != nil {
		t.Fatalf("failed to find quotation_requests collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("full_name", fullName)
	record.Set("email", email)
	record.Set("product_type", "notebook")
	record.Set("quantity", 50)
	record.Set("print_front", true)
	record.Set("print_size", "A4")
	record.Set("print_colors", "Full Color")
	record.Set("timeline", "standard")
	record.Set("estimated_cost", 9900)
	record.Set("status", "submitted")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test quotation: %v", err)
	}

	return record
}

// CreateTestSubscription creates an email subscription record and returns it.
func CreateTestSubscription(t *testing.T, app *pocketbase.PocketBase, email string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("email_subscriptions")
	if err != nil {
		t.Fatalf("failed to find email_subscriptions collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("email", email)
	record.Set("source", "footer")
	record.Set("status", "submitted")
	record.Set("attempts", 1)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test subscription: %v", err)
	}

	return record
}

// CreateTestReply creates a reply record linked to a quotation request.
func CreateTestReply(t *testing.T, app *pocketbase.PocketBase, requestID, subject, status string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("quotation_replies")
	if err != nil {
		t.Fatalf("failed to find quotation_replies collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("request", requestID)
	record.Set("subject", subject)
	record.Set("message", "Thanks for reaching out.")
	record.Set("status", status)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test reply: %v", err)
	}

	return record
}

// AssertHTMLContains checks that body contains all specified fragments.
func AssertHTMLContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected HTML to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

// AssertHXRedirect checks that the response has an HX-Redirect header with the expected URL.
func AssertHXRedirect(t *testing.T, headerVal, expectedURL string) {
	t.Helper()

	if headerVal != expectedURL {
		t.Errorf("expected HX-Redirect %q, got %q", expectedURL, headerVal)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
