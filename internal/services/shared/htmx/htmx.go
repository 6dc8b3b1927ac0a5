// Package htmx renders templ components for full navigations and htmx swaps.
package htmx

import (
	"bytes"
	"html"
	"log"
	"net/http"
	"strings"

	"github.com/a-h/templ"
)

// RequestHeader is set by htmx on every request it issues.
const RequestHeader = "HX-Request"

// IsHTMXRequest reports whether the request was initiated by htmx.
func IsHTMXRequest(r *http.Request) bool {
	if r == nil {
		return false
	}
	return strings.EqualFold(r.Header.Get(RequestHeader), "true")
}

// TitleTag formats an escaped `<title>` element.
func TitleTag(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return ""
	}
	return "<title>" + html.EscapeString(title) + "</title>"
}

// Render writes component with status. Rendering happens into a buffer first
// so a failing component never leaves a half-written page behind.
func Render(w http.ResponseWriter, r *http.Request, status int, component templ.Component) {
	body, ok := renderBody(r, component)
	if !ok {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	write(w, status, body)
}

// RenderPage writes the full page for plain navigations. For htmx swaps only
// the page's <main> content is sent, prefixed with a title tag so htmx can
// update the document title.
func RenderPage(w http.ResponseWriter, r *http.Request, status int, page templ.Component, title string) {
	body, ok := renderBody(r, page)
	if !ok {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if IsHTMXRequest(r) {
		if content, found := extractMainContent(body); found {
			body = content
		}
		body = prependTitle(body, TitleTag(title))
	}
	write(w, status, body)
}

func renderBody(r *http.Request, component templ.Component) ([]byte, bool) {
	if component == nil {
		return nil, true
	}
	var buf bytes.Buffer
	if err := component.Render(r.Context(), &buf); err != nil {
		log.Printf("render %s: %v", r.URL.Path, err)
		return nil, false
	}
	return buf.Bytes(), true
}

func write(w http.ResponseWriter, status int, body []byte) {
	if status == 0 {
		status = http.StatusOK
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func prependTitle(body []byte, title string) []byte {
	if title == "" || bytes.Contains(bytes.ToLower(body), []byte("<title")) {
		return body
	}
	out := make([]byte, 0, len(title)+len(body))
	out = append(out, title...)
	return append(out, body...)
}

func extractMainContent(body []byte) ([]byte, bool) {
	start := bytes.Index(body, []byte("<main"))
	if start < 0 {
		return nil, false
	}
	openClose := bytes.IndexByte(body[start:], '>')
	if openClose < 0 {
		return nil, false
	}
	contentStart := start + openClose + 1
	end := bytes.Index(body[contentStart:], []byte("</main>"))
	if end < 0 {
		return nil, false
	}
	return body[contentStart : contentStart+end], true
}
