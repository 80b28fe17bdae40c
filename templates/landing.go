package templates

import "github.com/a-h/templ"

// ProductCard is one catalog entry on the landing page.
type ProductCard struct {
	Slug      string
	Name      string
	UnitPrice string // formatted, e.g. "₱120"
	Features  string
	Popular   bool
}

// Testimonial is one carousel entry.
type Testimonial struct {
	Name        string
	Company     string
	Role        string
	Message     string
	Rating      int
	ProjectType string
}

// CalculatorData carries the calculator's current configuration and result.
type CalculatorData struct {
	ProductOptions []string
	ProductLabels  map[string]string
	ProductType    string
	Quantity       int
	PrintFront     bool
	PrintBack      bool
	CustomLogo     bool
	Timeline       string
	Estimate       string // formatted cost
}

// QuotationFormData carries the detailed form's values and field errors for
// re-rendering after a failed validation.
type QuotationFormData struct {
	FullName        string
	Email           string
	Phone           string
	Company         string
	ProductType     string
	Quantity        int
	PrintFront      bool
	PrintBack       bool
	PrintSize       string
	PrintColors     string
	Timeline        string
	Budget          string
	Description     string
	HasLogo         bool
	LogoDescription string

	ProductOptions  []string
	SizeOptions     []string
	ColorOptions    []string
	TimelineOptions []string
	BudgetOptions   []string

	Errors map[string]string
}

// LandingData feeds the landing page.
type LandingData struct {
	Products     []ProductCard
	Testimonials []Testimonial
	Calculator   CalculatorData
	Form         QuotationFormData
}

// LandingPage renders the marketing page: catalog, calculator, quotation
// form, testimonials and the subscription widget.
func LandingPage(data LandingData) templ.Component {
	return page("PrintCraft — Custom Merchandise Printing", func(w *htmlWriter) {
		w.f(`<header class="hero"><h1>PrintCraft</h1>`)
		w.f(`<p>Custom merchandise printing for your business</p></header>`)

		w.f(`<section id="products"><h2>Products</h2><div class="product-grid">`)
		for _, p := range data.Products {
			w.f(`<div class="product-card%s">`, popularClass(p.Popular))
			w.f(`<h3>%s</h3><p class="price">From %s</p><p class="features">%s</p>`,
				esc(p.Name), esc(p.UnitPrice), esc(p.Features))
			w.f(`</div>`)
		}
		w.f(`</div></section>`)

		w.f(`<section id="calculator"><h2>Instant Quote Calculator</h2>`)
		writeCalculator(w, data.Calculator)
		w.f(`</section>`)

		w.f(`<section id="quotation"><h2>Get Your Detailed Quote</h2>`)
		writeQuotationForm(w, data.Form)
		w.f(`</section>`)

		w.f(`<section id="clients"><h2>Trusted by Industry Leaders</h2><div class="testimonials">`)
		for _, t := range data.Testimonials {
			w.f(`<blockquote class="testimonial"><p>%s</p>`, esc(t.Message))
			w.f(`<footer>%s, %s — %s</footer></blockquote>`,
				esc(t.Name), esc(t.Role), esc(t.Company))
		}
		w.f(`</div></section>`)

		w.f(`<section id="subscribe"><h2>Subscribe to Daily Promotions</h2>`)
		writeSubscriptionWidget(w)
		w.f(`</section>`)
	})
}

// EstimateFragment renders the recomputed estimate for an htmx swap.
func EstimateFragment(estimate string) templ.Component {
	return fragment(func(w *htmlWriter) {
		writeEstimate(w, estimate)
	})
}

// QuotationFormFragment re-renders the detailed form, preserving entered
// values and showing field errors.
func QuotationFormFragment(data QuotationFormData) templ.Component {
	return fragment(func(w *htmlWriter) {
		writeQuotationForm(w, data)
	})
}

func writeCalculator(w *htmlWriter, data CalculatorData) {
	// every input change re-posts the whole configuration; a stale estimate
	// is never displayed
	w.f(`<form id="calc" hx-post="/quote/estimate" hx-target="#estimate" hx-trigger="change, input delay:300ms from:[name='quantity']">`)

	w.f(`<label>Product Type <select name="product_type">`)
	w.f(`<option value="">Select product</option>`)
	for _, opt := range data.ProductOptions {
		w.f(`<option value="%s"%s>%s</option>`, esc(opt), selected(opt, data.ProductType), esc(data.ProductLabels[opt]))
	}
	w.f(`</select></label>`)

	w.f(`<label>Quantity <input type="number" name="quantity" min="1" value="%d"></label>`, data.Quantity)
	w.f(`<p class="hint">Discounts: 10%% off 50+, 15%% off 100+</p>`)

	w.f(`<label><input type="checkbox" name="print_front"%s> Front print (+₱50 each)</label>`, checked(data.PrintFront))
	w.f(`<label><input type="checkbox" name="print_back"%s> Back print (+₱40 each)</label>`, checked(data.PrintBack))
	w.f(`<label><input type="checkbox" name="custom_logo"%s> Custom logo design (+₱500 one-time)</label>`, checked(data.CustomLogo))

	w.f(`<label>Production Timeline <select name="timeline">`)
	w.f(`<option value="standard"%s>Standard (7-10 days)</option>`, selected("standard", data.Timeline))
	w.f(`<option value="expedited"%s>Expedited (3-5 days) +30%%</option>`, selected("expedited", data.Timeline))
	w.f(`</select></label>`)

	w.f(`<div id="estimate">`)
	writeEstimate(w, data.Estimate)
	w.f(`</div>`)
	w.f(`</form>`)
}

func writeEstimate(w *htmlWriter, estimate string) {
	w.f(`<h4>Estimated Cost</h4><div class="estimate-amount">%s</div>`, esc(estimate))
	w.f(`<p class="hint">*Final price may vary based on specifications</p>`)
}

func writeQuotationForm(w *htmlWriter, data QuotationFormData) {
	w.f(`<form id="quotation-form" hx-post="/quotations" hx-target="#quotation-form" hx-swap="outerHTML" hx-disabled-elt="find button">`)

	w.f(`<fieldset><legend>Contact Information</legend>`)
	writeTextField(w, "full_name", "Full Name *", data.FullName, data.Errors["full_name"])
	writeTextField(w, "email", "Email *", data.Email, data.Errors["email"])
	writeTextField(w, "phone", "Phone", data.Phone, "")
	writeTextField(w, "company", "Company", data.Company, "")
	w.f(`</fieldset>`)

	w.f(`<fieldset><legend>Project Details</legend>`)
	w.f(`<label>Product Type * <select name="product_type">`)
	w.f(`<option value="">Select product</option>`)
	for _, opt := range data.ProductOptions {
		w.f(`<option value="%s"%s>%s</option>`, esc(opt), selected(opt, data.ProductType), esc(opt))
	}
	w.f(`</select></label>`)
	if msg := data.Errors["product_type"]; msg != "" {
		w.f(`<p class="field-error">%s</p>`, esc(msg))
	}

	w.f(`<label>Quantity <input type="number" name="quantity" min="1" value="%d"></label>`, data.Quantity)
	w.f(`<label><input type="checkbox" name="print_front"%s> Front print</label>`, checked(data.PrintFront))
	w.f(`<label><input type="checkbox" name="print_back"%s> Back print</label>`, checked(data.PrintBack))

	writeSelect(w, "print_size", "Print Size", data.SizeOptions, data.PrintSize)
	writeSelect(w, "print_colors", "Print Colors", data.ColorOptions, data.PrintColors)
	writeSelect(w, "timeline", "Timeline", data.TimelineOptions, data.Timeline)
	writeSelect(w, "budget", "Budget Range", data.BudgetOptions, data.Budget)
	w.f(`</fieldset>`)

	w.f(`<fieldset><legend>Additional Information</legend>`)
	w.f(`<label>Project Description <textarea name="description">%s</textarea></label>`, esc(data.Description))
	w.f(`<label><input type="checkbox" name="has_logo"%s> I have a logo</label>`, checked(data.HasLogo))
	w.f(`<label>Logo Description <textarea name="logo_description">%s</textarea></label>`, esc(data.LogoDescription))
	w.f(`</fieldset>`)

	w.f(`<button type="submit">Submit Quote Request</button>`)
	w.f(`</form>`)
}

func writeSubscriptionWidget(w *htmlWriter) {
	w.f(`<form hx-post="/subscriptions" hx-swap="none" hx-disabled-elt="find button">`)
	w.f(`<input type="email" name="email" placeholder="Enter your email address" required>`)
	w.f(`<button type="submit">Subscribe</button>`)
	w.f(`<p class="hint">Join 500+ customers getting daily deals. Unsubscribe at any time.</p>`)
	w.f(`</form>`)
}

func writeTextField(w *htmlWriter, name, label, value, errMsg string) {
	w.f(`<label>%s <input type="text" name="%s" value="%s"></label>`, esc(label), name, esc(value))
	if errMsg != "" {
		w.f(`<p class="field-error">%s</p>`, esc(errMsg))
	}
}

func writeSelect(w *htmlWriter, name, label string, options []string, current string) {
	w.f(`<label>%s <select name="%s">`, esc(label), name)
	for _, opt := range options {
		w.f(`<option value="%s"%s>%s</option>`, esc(opt), selected(opt, current), esc(opt))
	}
	w.f(`</select></label>`)
}

func popularClass(popular bool) string {
	if popular {
		return " popular"
	}
	return ""
}
