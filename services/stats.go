package services

import (
	"time"

	"printcraft/store"
)

// DashboardStats are the summary counters shown at the top of the owner
// dashboard.
type DashboardStats struct {
	TotalQuotations    int
	TotalSubscriptions int
	ThisWeek           int // quotations received in the last 7 days
	Pending            int // quotations awaiting relay delivery
}

// ComputeStats derives the dashboard counters from the two collections.
func ComputeStats(quotations []store.QuotationRecord, subscriptions []store.SubscriptionRecord, now time.Time) DashboardStats {
	stats := DashboardStats{
		TotalQuotations:    len(quotations),
		TotalSubscriptions: len(subscriptions),
	}

	weekAgo := now.AddDate(0, 0, -7)
	for _, q := range quotations {
		if q.Timestamp.After(weekAgo) {
			stats.ThisWeek++
		}
		if q.Status == store.StatusPending {
			stats.Pending++
		}
	}
	return stats
}
