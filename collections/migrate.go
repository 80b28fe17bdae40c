package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
)

// MigrateSubscriptionAttempts backfills the attempts counter and status on
// subscription records created before those fields existed.
// Safe to call on every startup -- returns early if nothing to migrate.
func MigrateSubscriptionAttempts(app *pocketbase.PocketBase) error {
	col, err := app.FindCollectionByNameOrId("email_subscriptions")
	if err != nil {
		return fmt.Errorf("migrate: could not find email_subscriptions collection: %w", err)
	}

	records, err := app.FindAllRecords(col)
	if err != nil {
		return fmt.Errorf("migrate: could not query subscriptions: %w", err)
	}

	migrated := 0
	for _, rec := range records {
		changed := false
		if rec.GetInt("attempts") == 0 {
			rec.Set("attempts", 1)
			changed = true
		}
		if rec.GetString("status") == "" {
			rec.Set("status", "submitted")
			changed = true
		}
		if !changed {
			continue
		}
		if err := app.Save(rec); err != nil {
			return fmt.Errorf("migrate: could not update subscription %s: %w", rec.Id, err)
		}
		migrated++
	}

	if migrated > 0 {
		log.Printf("migrate: backfilled %d subscription record(s)\n", migrated)
	}
	return nil
}
