package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"printcraft/store"
)

// QuotationPDF renders one quotation request as a PDF document using
// maroto/v2: customer block, project specification table, estimated cost.
func QuotationPDF(rec store.QuotationRecord) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		Build()

	m := maroto.New(cfg)

	addQuotationHeader(m, rec)
	addCustomerBlock(m, rec)
	addSpecTable(m, rec)
	addEstimateBlock(m, rec)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

func addQuotationHeader(m core.Maroto, rec store.QuotationRecord) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New("Quotation Request", props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
		row.New(8).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("Reference: %s", rec.ID), props.Text{
					Size:  9,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Date: %s", exportDate(rec.Timestamp)), props.Text{
					Size:  9,
					Align: align.Right,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
		),
		row.New(4),
	)
}

func addCustomerBlock(m core.Maroto, rec store.QuotationRecord) {
	addSectionTitle(m, "Customer")
	addDetailRow(m, "Name", rec.FullName)
	addDetailRow(m, "Email", rec.Email)
	if rec.Phone != "" {
		addDetailRow(m, "Phone", rec.Phone)
	}
	if rec.Company != "" {
		addDetailRow(m, "Company", rec.Company)
	}
	m.AddRows(row.New(4))
}

func addSpecTable(m core.Maroto, rec store.QuotationRecord) {
	addSectionTitle(m, "Project")

	label := ProductLabels[rec.ProductType]
	if label == "" {
		label = rec.ProductType
	}
	addDetailRow(m, "Product", label)
	addDetailRow(m, "Quantity", fmt.Sprintf("%d", rec.Quantity))
	addDetailRow(m, "Print Sides", printSides(rec.PrintSpecs))
	addDetailRow(m, "Print Size", rec.PrintSpecs.Size)
	addDetailRow(m, "Print Colors", rec.PrintSpecs.Colors)
	addDetailRow(m, "Timeline", rec.Timeline)
	if rec.Budget != "" {
		addDetailRow(m, "Budget", rec.Budget)
	}
	if rec.HasLogo {
		addDetailRow(m, "Logo", rec.LogoDescription)
	}
	if rec.Description != "" {
		addDetailRow(m, "Notes", rec.Description)
	}
	m.AddRows(row.New(4))
}

func addEstimateBlock(m core.Maroto, rec store.QuotationRecord) {
	m.AddRows(
		row.New(10).Add(
			col.New(8).Add(
				text.New("Estimated Cost", props.Text{
					Size:  11,
					Style: fontstyle.Bold,
				}),
			),
			col.New(4).Add(
				text.New(FormatPHP(rec.EstimatedCost), props.Text{
					Size:  11,
					Style: fontstyle.Bold,
					Align: align.Right,
				}),
			),
		),
		row.New(6).Add(
			col.New(12).Add(
				text.New("Final price may vary based on specifications.", props.Text{
					Size:  8,
					Color: &props.Color{Red: 120, Green: 120, Blue: 120},
				}),
			),
		),
	)
}

func addSectionTitle(m core.Maroto, title string) {
	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New(title, props.Text{
					Size:  12,
					Style: fontstyle.Bold,
				}),
			),
		),
	)
}

func addDetailRow(m core.Maroto, label, value string) {
	m.AddRows(
		row.New(6).Add(
			col.New(3).Add(
				text.New(label, props.Text{
					Size:  9,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
			col.New(9).Add(
				text.New(value, props.Text{Size: 9}),
			),
		),
	)
}

func printSides(specs store.PrintSpecs) string {
	switch {
	case specs.Front && specs.Back:
		return "Front and back"
	case specs.Front:
		return "Front only"
	case specs.Back:
		return "Back only"
	default:
		return "No print"
	}
}
