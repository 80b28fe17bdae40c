package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"printcraft/services"
	"printcraft/store"
	"printcraft/templates"
)

// HandleHome serves the site's single route. The marketing page renders by
// default; ?dashboard=true switches to the owner dashboard (login view until
// a session exists). There is no separate dashboard path.
// Route: GET /
func HandleHome(app *pocketbase.PocketBase, st store.Store, gate Authenticator) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		query := e.Request.URL.Query()
		if query.Get("dashboard") == "true" {
			if !sessionValid(gate, e.Request) {
				component := templates.DashboardLoginPage(query.Get("failed") == "1")
				return component.Render(e.Request.Context(), e.Response)
			}
			return renderDashboard(e, st, query.Get("tab"), "")
		}

		data := templates.LandingData{
			Products:     loadProducts(app),
			Testimonials: loadTestimonials(app),
			Calculator: templates.CalculatorData{
				ProductOptions: services.CalculatorProductOptions,
				ProductLabels:  services.ProductLabels,
				Quantity:       50,
				PrintFront:     true,
				Timeline:       services.TimelineStandard,
				Estimate:       services.FormatPHP(0),
			},
			Form: defaultQuotationForm(),
		}

		component := templates.LandingPage(data)
		return component.Render(e.Request.Context(), e.Response)
	}
}

// renderDashboard builds and renders the dashboard view for the given tab.
func renderDashboard(e *core.RequestEvent, st store.Store, tab, searchTerm string) error {
	if tab != "emails" {
		tab = "quotations"
	}

	quotations, err := st.Quotations()
	if err != nil {
		log.Printf("dashboard: could not load quotations: %v", err)
		return ErrorToast(e, http.StatusInternalServerError, "Could not load dashboard data.")
	}
	subscriptions, err := st.Subscriptions()
	if err != nil {
		log.Printf("dashboard: could not load subscriptions: %v", err)
		return ErrorToast(e, http.StatusInternalServerError, "Could not load dashboard data.")
	}

	stats := services.ComputeStats(quotations, subscriptions, time.Now())

	data := templates.DashboardData{
		Stats: templates.StatsData{
			TotalQuotations:    stats.TotalQuotations,
			TotalSubscriptions: stats.TotalSubscriptions,
			ThisWeek:           stats.ThisWeek,
			Pending:            stats.Pending,
		},
		ActiveTab:     tab,
		SearchTerm:    searchTerm,
		Quotations:    quotationRows(store.FilterQuotations(quotations, searchTerm)),
		Subscriptions: subscriptionRows(store.FilterSubscriptions(subscriptions, searchTerm)),
	}

	component := templates.DashboardPage(data)
	return component.Render(e.Request.Context(), e.Response)
}

func loadProducts(app *pocketbase.PocketBase) []templates.ProductCard {
	col, err := app.FindCollectionByNameOrId("products")
	if err != nil {
		log.Printf("home: products collection not found: %v", err)
		return nil
	}
	records, err := app.FindRecordsByFilter(col, "id != ''", "sort_order", 0, 0, nil)
	if err != nil {
		log.Printf("home: could not load products: %v", err)
		return nil
	}

	cards := make([]templates.ProductCard, 0, len(records))
	for _, rec := range records {
		cards = append(cards, templates.ProductCard{
			Slug:      rec.GetString("slug"),
			Name:      rec.GetString("name"),
			UnitPrice: services.FormatPHP(rec.GetInt("unit_price")),
			Features:  rec.GetString("features"),
			Popular:   rec.GetBool("popular"),
		})
	}
	return cards
}

func loadTestimonials(app *pocketbase.PocketBase) []templates.Testimonial {
	col, err := app.FindCollectionByNameOrId("testimonials")
	if err != nil {
		log.Printf("home: testimonials collection not found: %v", err)
		return nil
	}
	records, err := app.FindRecordsByFilter(col, "id != ''", "sort_order", 0, 0, nil)
	if err != nil {
		log.Printf("home: could not load testimonials: %v", err)
		return nil
	}

	out := make([]templates.Testimonial, 0, len(records))
	for _, rec := range records {
		out = append(out, templates.Testimonial{
			Name:        rec.GetString("name"),
			Company:     rec.GetString("company"),
			Role:        rec.GetString("role"),
			Message:     rec.GetString("message"),
			Rating:      rec.GetInt("rating"),
			ProjectType: rec.GetString("project_type"),
		})
	}
	return out
}
