package services

// CalculatorProductOptions are the product choices on the instant calculator,
// in display order.
var CalculatorProductOptions = []string{
	ProductNotebook,
	ProductPen,
	ProductShirt,
	ProductJacket,
}

// ProductLabels maps product types to their display names.
var ProductLabels = map[string]string{
	ProductNotebook: "Custom Notebooks",
	ProductPen:      "Branded Pens",
	ProductShirt:    "Custom T-Shirts",
	ProductJacket:   "Corporate Jackets",
}

// FormProductOptions are the product choices on the detailed quotation form.
// The form is broader than the calculator: multi-product and free-form
// requests are quoted manually.
var FormProductOptions = []string{
	ProductNotebook,
	ProductPen,
	ProductShirt,
	ProductJacket,
	"multiple",
	"other",
}

// PrintSizeOptions for the quotation form.
var PrintSizeOptions = []string{"A4", "A5", "letter", "custom"}

// PrintColorOptions for the quotation form.
var PrintColorOptions = []string{"Full Color", "1 Color", "2 Color", "Black Only"}

// FormTimelineOptions for the quotation form. "rush" is quoted manually and
// is not part of the calculator's estimate.
var FormTimelineOptions = []string{TimelineStandard, TimelineExpedited, "rush"}

// BudgetOptions for the quotation form.
var BudgetOptions = []string{"under-5k", "5k-15k", "15k-30k", "30k-50k", "over-50k"}
