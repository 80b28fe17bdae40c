package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase/core"
	"github.com/spf13/cast"

	"printcraft/services"
	"printcraft/templates"
)

// HandleEstimate recomputes the calculator estimate from the full submitted
// configuration. The client re-posts on every change so a stale cost is
// never displayed.
// Route: POST /quote/estimate
func HandleEstimate() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		cfg := services.QuoteConfig{
			ProductType: e.Request.FormValue("product_type"),
			Quantity:    services.NormalizeQuantity(cast.ToInt(e.Request.FormValue("quantity"))),
			PrintFront:  formBool(e.Request, "print_front"),
			PrintBack:   formBool(e.Request, "print_back"),
			CustomLogo:  formBool(e.Request, "custom_logo"),
			Timeline:    e.Request.FormValue("timeline"),
		}

		cost := services.EstimateCost(cfg)
		component := templates.EstimateFragment(services.FormatPHP(cost))
		return component.Render(e.Request.Context(), e.Response)
	}
}
