package templates

import (
	"strconv"

	"github.com/a-h/templ"
)

// ReplyView is one reply in a quotation's history.
type ReplyView struct {
	Subject string
	Message string
	Date    string
	Status  string
	Error   string
}

// QuotationDetailData feeds the quotation detail view.
type QuotationDetailData struct {
	ID       string
	FullName string
	Email    string
	Phone    string
	Company  string

	ProductType string
	Quantity    int
	PrintSides  string
	PrintSize   string
	PrintColors string
	Timeline    string
	Budget      string

	Description     string
	HasLogo         bool
	LogoDescription string

	Estimate string
	Date     string
	Status   string

	Replies []ReplyView

	// EmailConfigured disables the reply form with guidance when the
	// transactional-email service has no credentials.
	EmailConfigured bool
}

// QuotationDetailPage renders one quotation request with its reply history
// and the reply form.
func QuotationDetailPage(data QuotationDetailData) templ.Component {
	return page("Quotation Request Details", func(w *htmlWriter) {
		w.f(`<a href="/?dashboard=true">&larr; Back to dashboard</a>`)
		w.f(`<h1>Quotation Request Details</h1>`)
		w.f(`<span class="badge badge-%s">%s</span>`, esc(data.Status), esc(data.Status))

		w.f(`<section><h2>Customer Information</h2><dl>`)
		writeDetail(w, "Full Name", data.FullName)
		writeDetail(w, "Email", data.Email)
		writeDetail(w, "Phone", data.Phone)
		writeDetail(w, "Company", data.Company)
		w.f(`</dl>`)

		w.f(`<form hx-post="/dashboard/quotations/%s/email" hx-swap="none">`, esc(data.ID))
		w.f(`<label>Correct Email <input type="text" name="email" value="%s"></label>`, esc(data.Email))
		w.f(`<button type="submit">Update</button></form>`)
		w.f(`</section>`)

		w.f(`<section><h2>Project Details</h2><dl>`)
		writeDetail(w, "Product Type", data.ProductType)
		writeDetail(w, "Quantity", strconv.Itoa(data.Quantity))
		writeDetail(w, "Print Sides", data.PrintSides)
		writeDetail(w, "Print Size", data.PrintSize)
		writeDetail(w, "Print Colors", data.PrintColors)
		writeDetail(w, "Timeline", data.Timeline)
		writeDetail(w, "Budget", data.Budget)
		writeDetail(w, "Estimated Cost", data.Estimate)
		writeDetail(w, "Submitted", data.Date)
		if data.Description != "" {
			writeDetail(w, "Description", data.Description)
		}
		if data.HasLogo {
			writeDetail(w, "Logo", data.LogoDescription)
		}
		w.f(`</dl>`)
		w.f(`<a href="/dashboard/quotations/%s/pdf">Download PDF</a>`, esc(data.ID))
		w.f(`</section>`)

		w.f(`<section><h2>Replies</h2>`)
		if len(data.Replies) == 0 {
			w.f(`<p class="empty">No replies sent yet.</p>`)
		}
		for _, r := range data.Replies {
			w.f(`<div class="reply reply-%s"><p class="reply-subject">%s</p>`, esc(r.Status), esc(r.Subject))
			w.f(`<p>%s</p><p class="hint">%s — %s</p>`, esc(r.Message), esc(r.Date), esc(r.Status))
			if r.Error != "" {
				w.f(`<p class="field-error">%s</p>`, esc(r.Error))
			}
			w.f(`</div>`)
		}

		if data.EmailConfigured {
			w.f(`<form hx-post="/dashboard/quotations/%s/replies" hx-swap="none" hx-disabled-elt="find button">`, esc(data.ID))
			w.f(`<label>Subject <input type="text" name="subject"></label>`)
			w.f(`<label>Message <textarea name="message"></textarea></label>`)
			w.f(`<button type="submit">Send Reply</button></form>`)
		} else {
			w.f(`<p class="field-error">Email service is not configured. Set EMAILJS_SERVICE_ID, EMAILJS_TEMPLATE_ID and EMAILJS_PUBLIC_KEY to send replies.</p>`)
		}
		w.f(`</section>`)
	})
}

func writeDetail(w *htmlWriter, label, value string) {
	if value == "" {
		return
	}
	w.f(`<dt>%s</dt><dd>%s</dd>`, esc(label), esc(value))
}
