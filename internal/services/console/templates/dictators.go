package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/arenacontrol/internal/services/console/arena"
	"github.com/louisbranch/arenacontrol/internal/services/console/routepath"
)

// DictatorsTableID is the element the dictators table swaps into.
const DictatorsTableID = "dictators-table"

// DictatorsTableView provides data for the dictators table fragment.
type DictatorsTableView struct {
	Dictators []arena.Dictator
	Alert     *Alert
}

// DictatorFormView provides data for the new and edit dictator forms.
type DictatorFormView struct {
	// DictatorID is empty on the new form.
	DictatorID string
	Form       arena.DictatorForm
	Errors     arena.FieldErrors
	Token      string
	Alert      *Alert
}

// Editing reports whether the form updates an existing dictator.
func (v DictatorFormView) Editing() bool {
	return v.DictatorID != ""
}

func (v DictatorFormView) action() string {
	if v.Editing() {
		return routepath.DictatorEdit(v.DictatorID)
	}
	return routepath.DictatorsNew
}

// DictatorsPage renders the dictators screen with a lazily loaded table.
func DictatorsPage(page PageContext) templ.Component {
	return Layout(T(page.Loc, "dictators.title"), page, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw(`<header class="page-header">`)
		h.elem("h1", "", T(page.Loc, "dictators.heading"))
		h.raw(`<a class="btn btn-primary"`)
		h.urlAttr("href", routepath.DictatorsNew)
		h.raw(">")
		h.text(T(page.Loc, "dictators.new_link"))
		h.raw("</a></header>")
		h.component(ctx, LazyLoad(routepath.DictatorsTable, T(page.Loc, "common.loading")))
		return h.err
	}))
}

// DictatorsTable renders one row per dictator in response order.
func DictatorsTable(view DictatorsTableView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw("<div")
		h.attr("id", DictatorsTableID)
		h.raw(">")
		h.component(ctx, AlertBanner(view.Alert))
		if len(view.Dictators) == 0 {
			h.elem("p", "empty", T(loc, "dictators.empty"))
			h.raw("</div>")
			return h.err
		}
		h.raw(`<table class="table"><thead><tr>`)
		for _, key := range []string{"dictators.col.name", "dictators.col.territory", "dictators.col.slaves", "dictators.col.loyalty", "common.actions"} {
			h.elem("th", "", T(loc, key))
		}
		h.raw("</tr></thead><tbody>")
		for _, d := range view.Dictators {
			h.raw("<tr")
			h.attr("data-id", d.ID)
			h.raw(">")
			h.elem("td", "", d.Name)
			h.elem("td", "", d.Territory)
			h.elem("td", "", itoa(d.NumberOfSlaves))
			h.elem("td", "", itoa(d.LoyaltyToCarolina))
			h.raw(`<td class="actions">`)
			h.link(routepath.DictatorEdit(d.ID), "btn btn-sm", T(loc, "common.edit"))
			h.deleteLink(routepath.DictatorDelete(d.ID), DictatorsTableID, T(loc, "common.delete"), T(loc, "dictators.confirm_delete"))
			h.link(routepath.DictatorContestants(d.ID), "btn btn-sm", T(loc, "dictators.manage_contestants"))
			h.raw("</td></tr>")
		}
		h.raw("</tbody></table></div>")
		return h.err
	})
}

// DictatorFormPage renders the new or edit dictator page with the form inline.
func DictatorFormPage(page PageContext, view DictatorFormView) templ.Component {
	heading := dictatorFormHeading(page.Loc, view.Editing())
	return Layout(heading, page, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.elem("h1", "", heading)
		h.component(ctx, DictatorForm(view, page.Loc))
		return h.err
	}))
}

// DictatorEditPage renders the edit page; the form loads once the dictator
// has been fetched.
func DictatorEditPage(page PageContext, dictatorID string) templ.Component {
	heading := dictatorFormHeading(page.Loc, true)
	return Layout(heading, page, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.elem("h1", "", heading)
		h.component(ctx, LazyLoad(routepath.DictatorEditForm(dictatorID), T(page.Loc, "common.loading")))
		return h.err
	}))
}

// DictatorForm renders the dictator form with any field errors.
func DictatorForm(view DictatorFormView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw(`<div class="form-panel">`)
		h.component(ctx, AlertBanner(view.Alert))
		h.formOpen("dictator-form", view.action(), view.Token)
		h.input(inputField{
			Name:     arena.FieldName,
			Label:    T(loc, "dictators.field.name"),
			Value:    view.Form.Name,
			Error:    fieldMessage(loc, view.Errors, arena.FieldName),
			Required: true,
		})
		h.input(inputField{
			Name:     arena.FieldTerritory,
			Label:    T(loc, "dictators.field.territory"),
			Value:    view.Form.Territory,
			Error:    fieldMessage(loc, view.Errors, arena.FieldTerritory),
			Required: true,
		})
		h.input(inputField{
			Name:     arena.FieldNumberOfSlaves,
			Label:    T(loc, "dictators.field.number_of_slaves"),
			Type:     "number",
			Value:    view.Form.NumberOfSlaves,
			Min:      "0",
			Error:    fieldMessage(loc, view.Errors, arena.FieldNumberOfSlaves),
			Required: true,
		})
		h.input(inputField{
			Name:     arena.FieldLoyaltyToCarolina,
			Label:    T(loc, "dictators.field.loyalty"),
			Type:     "number",
			Value:    view.Form.LoyaltyToCarolina,
			Min:      "0",
			Max:      "100",
			Error:    fieldMessage(loc, view.Errors, arena.FieldLoyaltyToCarolina),
			Required: true,
		})
		h.input(inputField{
			Name:     arena.FieldEmail,
			Label:    T(loc, "dictators.field.email"),
			Type:     "email",
			Value:    view.Form.Email,
			Error:    fieldMessage(loc, view.Errors, arena.FieldEmail),
			Required: true,
		})
		h.input(inputField{
			Name:     arena.FieldPassword,
			Label:    T(loc, "dictators.field.password"),
			Type:     "password",
			Error:    fieldMessage(loc, view.Errors, arena.FieldPassword),
			Required: true,
		})
		submit := "dictators.submit.create"
		if view.Editing() {
			submit = "dictators.submit.update"
		}
		h.formClose(T(loc, submit), T(loc, "common.submitting"))
		h.raw("</div>")
		return h.err
	})
}

func dictatorFormHeading(loc Localizer, editing bool) string {
	if editing {
		return T(loc, "dictators.edit.heading")
	}
	return T(loc, "dictators.new.heading")
}

func (h *htmlWriter) link(href, class, label string) {
	h.raw("<a")
	if class != "" {
		h.attr("class", class)
	}
	h.urlAttr("href", href)
	h.raw(">")
	h.text(label)
	h.raw("</a>")
}

// deleteLink posts to action through htmx after a confirm prompt and swaps
// the table identified by targetID. Without htmx the link opens the
// confirmation page at the same URL.
func (h *htmlWriter) deleteLink(action, targetID, label, confirm string) {
	h.raw(`<a class="btn btn-sm btn-error" hx-swap="outerHTML"`)
	h.urlAttr("href", action)
	h.urlAttr("hx-post", action)
	h.attr("hx-confirm", confirm)
	h.attr("hx-target", "#"+targetID)
	h.raw(">")
	h.text(label)
	h.raw("</a>")
}
