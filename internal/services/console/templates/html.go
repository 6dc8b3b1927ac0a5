package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// htmlWriter writes markup and keeps the first error, so components can emit
// a sequence of writes and check once at the end.
type htmlWriter struct {
	w   io.Writer
	err error
}

func newHTMLWriter(w io.Writer) *htmlWriter {
	return &htmlWriter{w: w}
}

// raw writes trusted markup.
func (h *htmlWriter) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

// text writes escaped text content.
func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

// attr writes ` name="value"` with value escaped.
func (h *htmlWriter) attr(name, value string) {
	h.raw(" " + name + `="` + templ.EscapeString(value) + `"`)
}

// attrIf writes a boolean attribute when on is true.
func (h *htmlWriter) attrIf(on bool, name string) {
	if on {
		h.raw(" " + name)
	}
}

// urlAttr writes an attribute holding a URL, dropping unsafe schemes.
func (h *htmlWriter) urlAttr(name, value string) {
	h.attr(name, string(templ.URL(value)))
}

// elem writes `<tag attrs>text</tag>`.
func (h *htmlWriter) elem(tag, class, text string) {
	h.raw("<" + tag)
	if class != "" {
		h.attr("class", class)
	}
	h.raw(">")
	h.text(text)
	h.raw("</" + tag + ">")
}

func (h *htmlWriter) component(ctx context.Context, c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(ctx, h.w)
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
