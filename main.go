package main

import (
	"log"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"printcraft/collections"
	"printcraft/config"
	"printcraft/handlers"
	"printcraft/services"
	"printcraft/store"
)

func main() {
	cfg := config.Load()

	app := pocketbase.New()

	// Create collections and seed data on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		if err := collections.MigrateSubscriptionAttempts(app); err != nil {
			log.Printf("Warning: subscription migration failed: %v", err)
		}
		return se.Next()
	})

	st := store.NewPocketBase(app)
	relay := services.NewFormRelay(cfg.RelayURL)
	mailer := services.NewEmailJSClient(cfg.EmailJSServiceID, cfg.EmailJSTemplateID, cfg.EmailJSPublicKey)
	gate := handlers.NewPasswordGate(cfg.DashboardPassword)

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// Serve static files from ./static
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

		// ── Public site ──────────────────────────────────────────
		se.Router.GET("/", handlers.HandleHome(app, st, gate))
		se.Router.POST("/quote/estimate", handlers.HandleEstimate())
		se.Router.POST("/quotations", handlers.HandleQuotationSubmit(st, relay))
		se.Router.POST("/subscriptions", handlers.HandleSubscribe(st, relay))

		// ── Dashboard session ────────────────────────────────────
		se.Router.POST("/dashboard/login", handlers.HandleDashboardLogin(gate))
		se.Router.POST("/dashboard/logout", handlers.HandleDashboardLogout(gate))

		// ── Dashboard (gated) ────────────────────────────────────
		se.Router.GET("/dashboard/quotations/search",
			handlers.RequireGate(gate, handlers.HandleQuotationSearch(st)))
		se.Router.GET("/dashboard/subscriptions/search",
			handlers.RequireGate(gate, handlers.HandleSubscriptionSearch(st)))

		// Exports (before /quotations/{id} so "export" never matches as an ID)
		se.Router.GET("/dashboard/export/{collection}/csv",
			handlers.RequireGate(gate, handlers.HandleExportCSV(st)))
		se.Router.GET("/dashboard/export/{collection}/excel",
			handlers.RequireGate(gate, handlers.HandleExportExcel(st)))

		se.Router.GET("/dashboard/quotations/{id}",
			handlers.RequireGate(gate, handlers.HandleQuotationDetail(st, mailer)))
		se.Router.DELETE("/dashboard/quotations/{id}",
			handlers.RequireGate(gate, handlers.HandleQuotationDelete(st)))
		se.Router.GET("/dashboard/quotations/{id}/pdf",
			handlers.RequireGate(gate, handlers.HandleQuotationPDF(st)))
		se.Router.POST("/dashboard/quotations/{id}/replies",
			handlers.RequireGate(gate, handlers.HandleReplySend(st, mailer)))
		se.Router.POST("/dashboard/quotations/{id}/email",
			handlers.RequireGate(gate, handlers.HandleQuotationEmailUpdate(st)))

		se.Router.DELETE("/dashboard/subscriptions/{id}",
			handlers.RequireGate(gate, handlers.HandleSubscriptionDelete(st)))
		se.Router.POST("/dashboard/subscriptions/{id}/retry",
			handlers.RequireGate(gate, handlers.HandleSubscriptionRetry(st, relay)))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
