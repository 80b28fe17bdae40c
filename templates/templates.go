// Package templates renders the site's server-side views as templ
// components. The markup is deliberately lean; presentation is handled by
// the stylesheet under /static.
package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// page wraps a body renderer in the shared HTML shell. htmx comes from the
// CDN; the site stylesheet and toast script are served from /static.
func page(title string, body func(w *htmlWriter)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.f(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		hw.f(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		hw.f(`<title>%s</title>`, esc(title))
		hw.f(`<script src="https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js"></script>`)
		hw.f(`<link rel="stylesheet" href="/static/site.css">`)
		hw.f(`</head><body>`)
		body(hw)
		hw.f(`<div id="toast-container"></div><script src="/static/toast.js"></script>`)
		hw.f(`</body></html>`)
		return hw.err
	})
}

// fragment renders a body without the page shell, for htmx swaps.
func fragment(body func(w *htmlWriter)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		body(hw)
		return hw.err
	})
}

// htmlWriter accumulates the first write error so component bodies can stay
// linear.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (hw *htmlWriter) f(format string, args ...any) {
	if hw.err != nil {
		return
	}
	_, hw.err = fmt.Fprintf(hw.w, format, args...)
}

func esc(s string) string {
	return templ.EscapeString(s)
}

// selected returns the option attribute when values match.
func selected(value, current string) string {
	if value == current {
		return " selected"
	}
	return ""
}

// checked returns the checkbox attribute when on is true.
func checked(on bool) string {
	if on {
		return " checked"
	}
	return ""
}
