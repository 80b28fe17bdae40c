package handlers

import (
	"net/http"
	"time"

	"printcraft/services"
	"printcraft/store"
	"printcraft/templates"
)

// displayDate renders a timestamp for dashboard tables.
func displayDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// formBool interprets a checkbox/boolean form value.
func formBool(r *http.Request, name string) bool {
	v := r.FormValue(name)
	return v == "on" || v == "true"
}

// defaultQuotationForm returns the detailed form's initial state.
func defaultQuotationForm() templates.QuotationFormData {
	return templates.QuotationFormData{
		Quantity:    50,
		PrintFront:  true,
		PrintSize:   "A4",
		PrintColors: "Full Color",
		Timeline:    services.TimelineStandard,

		ProductOptions:  services.FormProductOptions,
		SizeOptions:     services.PrintSizeOptions,
		ColorOptions:    services.PrintColorOptions,
		TimelineOptions: services.FormTimelineOptions,
		BudgetOptions:   services.BudgetOptions,

		Errors: make(map[string]string),
	}
}

func quotationRows(recs []store.QuotationRecord) []templates.QuotationRow {
	rows := make([]templates.QuotationRow, 0, len(recs))
	for _, r := range recs {
		rows = append(rows, templates.QuotationRow{
			ID:          r.ID,
			FullName:    r.FullName,
			Email:       r.Email,
			Company:     r.Company,
			ProductType: r.ProductType,
			Quantity:    r.Quantity,
			Timeline:    r.Timeline,
			Budget:      r.Budget,
			Date:        displayDate(r.Timestamp),
			Status:      r.Status,
		})
	}
	return rows
}

func subscriptionRows(recs []store.SubscriptionRecord) []templates.SubscriptionRow {
	rows := make([]templates.SubscriptionRow, 0, len(recs))
	for _, r := range recs {
		rows = append(rows, templates.SubscriptionRow{
			ID:       r.ID,
			Email:    r.Email,
			Source:   r.Source,
			Date:     displayDate(r.Timestamp),
			Status:   r.Status,
			Attempts: r.Attempts,
		})
	}
	return rows
}
