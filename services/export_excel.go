package services

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"printcraft/store"
)

// ExportColumn defines a column in a dashboard Excel export.
type ExportColumn struct {
	Header string
	Width  float64 // column width in Excel units
}

// ExportTable holds everything needed to render one export sheet.
type ExportTable struct {
	Title   string
	Columns []ExportColumn
	Rows    [][]string
}

// QuotationsTable builds the Excel export table for quotation requests.
func QuotationsTable(recs []store.QuotationRecord) ExportTable {
	table := ExportTable{
		Title: "Quotation Requests",
		Columns: []ExportColumn{
			{Header: "Name", Width: 25},
			{Header: "Email", Width: 30},
			{Header: "Phone", Width: 18},
			{Header: "Company", Width: 25},
			{Header: "Product Type", Width: 16},
			{Header: "Quantity", Width: 10},
			{Header: "Timeline", Width: 12},
			{Header: "Budget", Width: 14},
			{Header: "Estimated Cost", Width: 16},
			{Header: "Date", Width: 12},
			{Header: "Status", Width: 12},
		},
	}
	for _, r := range recs {
		table.Rows = append(table.Rows, []string{
			r.FullName,
			r.Email,
			r.Phone,
			r.Company,
			r.ProductType,
			strconv.Itoa(r.Quantity),
			r.Timeline,
			r.Budget,
			FormatPHP(r.EstimatedCost),
			exportDate(r.Timestamp),
			r.Status,
		})
	}
	return table
}

// SubscriptionsTable builds the Excel export table for email subscriptions.
func SubscriptionsTable(recs []store.SubscriptionRecord) ExportTable {
	table := ExportTable{
		Title: "Email Subscriptions",
		Columns: []ExportColumn{
			{Header: "Email", Width: 32},
			{Header: "Source", Width: 14},
			{Header: "Status", Width: 12},
			{Header: "Attempts", Width: 10},
			{Header: "Date Subscribed", Width: 16},
		},
	}
	for _, r := range recs {
		table.Rows = append(table.Rows, []string{
			r.Email,
			r.Source,
			r.Status,
			strconv.Itoa(r.Attempts),
			exportDate(r.Timestamp),
		})
	}
	return table
}

// GenerateExcel creates an Excel workbook from an export table.
// Returns ErrNoData when the table has no rows.
func GenerateExcel(table ExportTable, now time.Time) ([]byte, error) {
	if len(table.Rows) == 0 {
		return nil, ErrNoData
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := table.Title
	if len(sheetName) > 31 {
		sheetName = sheetName[:31]
	}

	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	subtitleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("create subtitle style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#333333"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
			WrapText:   true,
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	dataStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
		Alignment: &excelize.Alignment{
			Vertical: "center",
			WrapText: true,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create data style: %w", err)
	}

	for i, col := range table.Columns {
		letter := colName(i)
		f.SetColWidth(sheetName, letter, letter, col.Width)
	}

	lastCol := colName(len(table.Columns) - 1)

	// Row 1: title. Row 2: record count and export date. Row 4: headers.
	f.MergeCell(sheetName, "A1", lastCol+"1")
	f.SetCellValue(sheetName, "A1", table.Title)
	f.SetCellStyle(sheetName, "A1", lastCol+"1", titleStyle)

	f.MergeCell(sheetName, "A2", lastCol+"2")
	f.SetCellValue(sheetName, "A2",
		fmt.Sprintf("Total: %d records — exported %s", len(table.Rows), now.Format("2006-01-02")))
	f.SetCellStyle(sheetName, "A2", lastCol+"2", subtitleStyle)

	for i, col := range table.Columns {
		cell := fmt.Sprintf("%s4", colName(i))
		f.SetCellValue(sheetName, cell, col.Header)
	}
	f.SetCellStyle(sheetName, "A4", lastCol+"4", headerStyle)

	f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      4,
		TopLeftCell: "A5",
		ActivePane:  "bottomLeft",
	})

	for rowIdx, rowData := range table.Rows {
		rowStr := strconv.Itoa(rowIdx + 5)
		for colIdx, value := range rowData {
			cell := colName(colIdx) + rowStr
			f.SetCellValue(sheetName, cell, sanitizeExcelCell(value))
		}
		f.SetCellStyle(sheetName, "A"+rowStr, lastCol+rowStr, dataStyle)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

func thinBorders() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "#999999", Style: 1},
		{Type: "right", Color: "#999999", Style: 1},
		{Type: "top", Color: "#999999", Style: 1},
		{Type: "bottom", Color: "#999999", Style: 1},
	}
}

// sanitizeExcelCell neutralizes values that spreadsheet apps would treat as
// formulas.
func sanitizeExcelCell(v string) string {
	if v == "" {
		return v
	}
	switch v[0] {
	case '=', '+', '-', '@':
		return "'" + v
	}
	if strings.HasPrefix(v, "\t") || strings.HasPrefix(v, "\r") {
		return "'" + v
	}
	return v
}

// colName converts a 0-based column index to an Excel column letter
// (A, B, ..., Z, AA, ...).
func colName(index int) string {
	name := ""
	for index >= 0 {
		name = string(rune('A'+index%26)) + name
		index = index/26 - 1
	}
	return name
}
