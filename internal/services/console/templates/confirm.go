package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// ConfirmDeleteView provides data for the no-script delete confirmation.
type ConfirmDeleteView struct {
	Message   string
	Action    string
	CancelURL string
}

// ConfirmDeletePage asks before deleting when the browser runs without htmx.
func ConfirmDeletePage(page PageContext, view ConfirmDeleteView) templ.Component {
	heading := T(page.Loc, "confirm.heading")
	return Layout(heading, page, templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.elem("h1", "", heading)
		h.elem("p", "", view.Message)
		h.raw(`<form method="post" class="confirm" hx-boost="false"`)
		h.urlAttr("action", view.Action)
		h.raw(`><button type="submit" class="btn btn-error">`)
		h.text(T(page.Loc, "confirm.submit"))
		h.raw("</button> ")
		h.link(view.CancelURL, "btn", T(page.Loc, "common.cancel"))
		h.raw("</form>")
		return h.err
	}))
}
