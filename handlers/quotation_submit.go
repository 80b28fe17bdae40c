package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase/core"
	"github.com/spf13/cast"

	"printcraft/services"
	"printcraft/store"
	"printcraft/templates"
)

// HandleQuotationSubmit validates and persists a detailed quote request.
// The record is appended locally whether or not the relay delivers it; a
// failed relay only downgrades the record status to "pending".
// Route: POST /quotations
func HandleQuotationSubmit(st store.Store, relay *services.FormRelay) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		form := defaultQuotationForm()
		form.FullName = strings.TrimSpace(e.Request.FormValue("full_name"))
		form.Email = strings.TrimSpace(e.Request.FormValue("email"))
		form.Phone = strings.TrimSpace(e.Request.FormValue("phone"))
		form.Company = strings.TrimSpace(e.Request.FormValue("company"))
		form.ProductType = e.Request.FormValue("product_type")
		form.Quantity = services.NormalizeQuantity(cast.ToInt(e.Request.FormValue("quantity")))
		form.PrintFront = formBool(e.Request, "print_front")
		form.PrintBack = formBool(e.Request, "print_back")
		form.PrintSize = e.Request.FormValue("print_size")
		form.PrintColors = e.Request.FormValue("print_colors")
		form.Timeline = e.Request.FormValue("timeline")
		form.Budget = e.Request.FormValue("budget")
		form.Description = strings.TrimSpace(e.Request.FormValue("description"))
		form.HasLogo = formBool(e.Request, "has_logo")
		form.LogoDescription = strings.TrimSpace(e.Request.FormValue("logo_description"))

		if form.FullName == "" {
			form.Errors["full_name"] = "Full name is required"
		}
		if form.Email == "" {
			form.Errors["email"] = "Email is required"
		} else if !store.ValidEmail(form.Email) {
			form.Errors["email"] = "Please enter a valid email address"
		}
		if form.ProductType == "" {
			form.Errors["product_type"] = "Please select a product"
		}

		if len(form.Errors) > 0 {
			SetToast(e, "warning", "Please fill in all required fields.")
			component := templates.QuotationFormFragment(form)
			return component.Render(e.Request.Context(), e.Response)
		}

		rec := store.QuotationRecord{
			FullName:    form.FullName,
			Email:       form.Email,
			Phone:       form.Phone,
			Company:     form.Company,
			ProductType: form.ProductType,
			Quantity:    form.Quantity,
			PrintSpecs: store.PrintSpecs{
				Front:  form.PrintFront,
				Back:   form.PrintBack,
				Size:   form.PrintSize,
				Colors: form.PrintColors,
			},
			Timeline:        form.Timeline,
			Budget:          form.Budget,
			Description:     form.Description,
			HasLogo:         form.HasLogo,
			LogoDescription: form.LogoDescription,
			EstimatedCost: services.EstimateCost(services.QuoteConfig{
				ProductType: form.ProductType,
				Quantity:    form.Quantity,
				PrintFront:  form.PrintFront,
				PrintBack:   form.PrintBack,
				CustomLogo:  form.HasLogo,
				Timeline:    form.Timeline,
			}),
			Status: store.StatusSubmitted,
		}

		relayErr := relay.Send(e.Request.Context(), services.QuotationRelayFields(rec))
		if relayErr != nil {
			log.Printf("quotation_submit: relay failed: %v", relayErr)
			rec.Status = store.StatusPending
		}

		if err := st.AddQuotation(&rec); err != nil {
			log.Printf("quotation_submit: could not save quotation: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		if relayErr != nil {
			SetToast(e, "error", "Could not send your request. It was saved and we will follow up from our side.")
			component := templates.QuotationFormFragment(form)
			return component.Render(e.Request.Context(), e.Response)
		}

		SetToast(e, "success", "Quote request submitted! We'll get back to you within 24 hours.")
		component := templates.QuotationFormFragment(defaultQuotationForm())
		return component.Render(e.Request.Context(), e.Response)
	}
}
