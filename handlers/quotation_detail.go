package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase/core"

	"printcraft/services"
	"printcraft/store"
	"printcraft/templates"
)

// HandleQuotationDetail renders a single quotation request with its reply
// history and reply form.
// Route: GET /dashboard/quotations/{id}
func HandleQuotationDetail(st store.Store, mailer *services.EmailJSClient) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return e.String(http.StatusBadRequest, "Missing quotation ID")
		}

		rec, err := st.QuotationByID(id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return e.String(http.StatusNotFound, "Quotation not found")
			}
			log.Printf("quotation_detail: could not load quotation %s: %v", id, err)
			return e.String(http.StatusInternalServerError, "Could not load quotation")
		}

		component := templates.QuotationDetailPage(quotationDetail(rec, mailer.Configured()))
		return component.Render(e.Request.Context(), e.Response)
	}
}

func quotationDetail(rec store.QuotationRecord, emailConfigured bool) templates.QuotationDetailData {
	replies := make([]templates.ReplyView, 0, len(rec.Replies))
	for _, r := range rec.Replies {
		replies = append(replies, templates.ReplyView{
			Subject: r.Subject,
			Message: r.Message,
			Date:    displayDate(r.Timestamp),
			Status:  r.Status,
			Error:   r.Error,
		})
	}

	return templates.QuotationDetailData{
		ID:       rec.ID,
		FullName: rec.FullName,
		Email:    rec.Email,
		Phone:    rec.Phone,
		Company:  rec.Company,

		ProductType: rec.ProductType,
		Quantity:    rec.Quantity,
		PrintSides:  printSidesLabel(rec.PrintSpecs),
		PrintSize:   rec.PrintSpecs.Size,
		PrintColors: rec.PrintSpecs.Colors,
		Timeline:    rec.Timeline,
		Budget:      rec.Budget,

		Description:     rec.Description,
		HasLogo:         rec.HasLogo,
		LogoDescription: rec.LogoDescription,

		Estimate: services.FormatPHP(rec.EstimatedCost),
		Date:     displayDate(rec.Timestamp),
		Status:   rec.Status,

		Replies:         replies,
		EmailConfigured: emailConfigured,
	}
}

// printSidesLabel summarizes which sides of the item get printed.
func printSidesLabel(specs store.PrintSpecs) string {
	var sides []string
	if specs.Front {
		sides = append(sides, "Front")
	}
	if specs.Back {
		sides = append(sides, "Back")
	}
	if len(sides) == 0 {
		return "None"
	}
	return strings.Join(sides, " & ")
}
