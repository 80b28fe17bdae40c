package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase/core"

	"printcraft/services"
	"printcraft/store"
)

// HandleExportCSV streams a dashboard collection as a CSV download.
// An empty collection responds with plain text and no attachment headers.
// Route: GET /dashboard/export/{collection}/csv
func HandleExportCSV(st store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		collection := e.Request.PathValue("collection")

		var (
			csv string
			err error
		)
		switch collection {
		case "quotations":
			var recs []store.QuotationRecord
			if recs, err = st.Quotations(); err == nil {
				csv, err = services.QuotationsCSV(recs)
			}
		case "subscriptions":
			var recs []store.SubscriptionRecord
			if recs, err = st.Subscriptions(); err == nil {
				csv, err = services.SubscriptionsCSV(recs)
			}
		default:
			return e.String(http.StatusNotFound, "Unknown collection")
		}

		if errors.Is(err, services.ErrNoData) {
			return e.String(http.StatusOK, "No data to export.")
		}
		if err != nil {
			log.Printf("export: csv export of %s failed: %v", collection, err)
			return e.String(http.StatusInternalServerError, "Export failed")
		}

		filename := services.ExportFilename(collection, "csv", time.Now())
		e.Response.Header().Set("Content-Type", "text/csv; charset=utf-8")
		e.Response.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
		return e.String(http.StatusOK, csv)
	}
}

// HandleExportExcel streams a dashboard collection as a styled Excel workbook.
// Route: GET /dashboard/export/{collection}/excel
func HandleExportExcel(st store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		collection := e.Request.PathValue("collection")
		now := time.Now()

		var (
			table services.ExportTable
			err   error
		)
		switch collection {
		case "quotations":
			var recs []store.QuotationRecord
			if recs, err = st.Quotations(); err == nil {
				table = services.QuotationsTable(recs)
			}
		case "subscriptions":
			var recs []store.SubscriptionRecord
			if recs, err = st.Subscriptions(); err == nil {
				table = services.SubscriptionsTable(recs)
			}
		default:
			return e.String(http.StatusNotFound, "Unknown collection")
		}
		if err != nil {
			log.Printf("export: could not load %s: %v", collection, err)
			return e.String(http.StatusInternalServerError, "Export failed")
		}

		data, err := services.GenerateExcel(table, now)
		if errors.Is(err, services.ErrNoData) {
			return e.String(http.StatusOK, "No data to export.")
		}
		if err != nil {
			log.Printf("export: excel export of %s failed: %v", collection, err)
			return e.String(http.StatusInternalServerError, "Export failed")
		}

		filename := services.ExportFilename(collection, "xlsx", now)
		e.Response.Header().Set("Content-Type",
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
		_, err = e.Response.Write(data)
		return err
	}
}

// HandleQuotationPDF renders one quotation request as a PDF download.
// Route: GET /dashboard/quotations/{id}/pdf
func HandleQuotationPDF(st store.Store) func(*core.RequestEvent) error {
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
			log.Printf("export: could not load quotation %s: %v", id, err)
			return e.String(http.StatusInternalServerError, "Could not load quotation")
		}

		data, err := services.QuotationPDF(rec)
		if err != nil {
			log.Printf("export: pdf generation failed for %s: %v", id, err)
			return e.String(http.StatusInternalServerError, "PDF generation failed")
		}

		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition",
			`attachment; filename="quotation-`+rec.ID+`.pdf"`)
		_, err = e.Response.Write(data)
		return err
	}
}
