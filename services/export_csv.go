package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"printcraft/store"
)

// ErrNoData signals that an export was requested for an empty collection.
// This is a user-facing condition (shown as a toast), not a failure.
var ErrNoData = errors.New("no data to export")

// QuotationsCSVHeader is the fixed header row for quotation exports.
const QuotationsCSVHeader = "Name,Email,Phone,Company,Product Type,Quantity,Timeline,Budget,Date,Status"

// SubscriptionsCSVHeader is the fixed header row for subscription exports.
const SubscriptionsCSVHeader = "Email,Source,Date Subscribed"

// QuotationsCSV serializes the full quotation collection to CSV text.
// Every field is quoted; dates are rendered as a short date without time.
func QuotationsCSV(recs []store.QuotationRecord) (string, error) {
	if len(recs) == 0 {
		return "", ErrNoData
	}

	var b strings.Builder
	b.WriteString(QuotationsCSVHeader + "\n")
	for _, r := range recs {
		writeCSVRow(&b,
			r.FullName,
			r.Email,
			r.Phone,
			r.Company,
			r.ProductType,
			strconv.Itoa(r.Quantity),
			r.Timeline,
			r.Budget,
			exportDate(r.Timestamp),
			r.Status,
		)
	}
	return b.String(), nil
}

// SubscriptionsCSV serializes the full subscription collection to CSV text.
func SubscriptionsCSV(recs []store.SubscriptionRecord) (string, error) {
	if len(recs) == 0 {
		return "", ErrNoData
	}

	var b strings.Builder
	b.WriteString(SubscriptionsCSVHeader + "\n")
	for _, r := range recs {
		writeCSVRow(&b, r.Email, r.Source, exportDate(r.Timestamp))
	}
	return b.String(), nil
}

// ExportFilename builds the download name for a collection export,
// e.g. "quotations-export-2026-08-31.csv".
func ExportFilename(collection, ext string, now time.Time) string {
	return fmt.Sprintf("%s-export-%s.%s", collection, now.Format("2006-01-02"), ext)
}

// exportDate renders a timestamp as a short date, no time component.
func exportDate(t time.Time) string {
	return t.Format("1/2/2006")
}

// writeCSVRow writes one row with every field quoted. Embedded quotes are
// doubled per RFC 4180.
func writeCSVRow(b *strings.Builder, fields ...string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(f, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}
