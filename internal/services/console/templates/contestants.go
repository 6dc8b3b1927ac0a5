package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/arenacontrol/internal/services/console/arena"
	"github.com/louisbranch/arenacontrol/internal/services/console/routepath"
)

// ContestantsTableID is the element the contestants table swaps into.
const ContestantsTableID = "contestants-table"

// ContestantsTableView provides data for one dictator's contestants fragment.
type ContestantsTableView struct {
	DictatorID string
	// DictatorName is empty when the dictator could not be loaded.
	DictatorName string
	Contestants  []arena.Contestant
	Alert        *Alert
}

// ContestantFormView provides data for the new and edit contestant forms.
type ContestantFormView struct {
	DictatorID string
	// ContestantID is empty on the new form.
	ContestantID string
	Form         arena.ContestantForm
	Errors       arena.FieldErrors
	Token        string
	Alert        *Alert
}

// Editing reports whether the form updates an existing contestant.
func (v ContestantFormView) Editing() bool {
	return v.ContestantID != ""
}

func (v ContestantFormView) action() string {
	if v.Editing() {
		return routepath.ContestantEdit(v.DictatorID, v.ContestantID)
	}
	return routepath.DictatorContestantsNew(v.DictatorID)
}

// ContestantsPage renders the contestants screen of one dictator. The
// heading arrives with the table, once the dictator has been fetched.
func ContestantsPage(page PageContext, dictatorID string) templ.Component {
	return Layout(T(page.Loc, "contestants.title"), page, LazyLoad(routepath.DictatorContestantsTable(dictatorID), T(page.Loc, "common.loading")))
}

// ContestantsHeading formats the screen heading for a dictator name.
func ContestantsHeading(loc Localizer, dictatorName string) string {
	if dictatorName == "" {
		dictatorName = T(loc, "contestants.unknown_dictator")
	}
	return T(loc, "contestants.heading", dictatorName)
}

// ContestantsTable renders the heading and one row per contestant.
func ContestantsTable(view ContestantsTableView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw("<div")
		h.attr("id", ContestantsTableID)
		h.raw(">")
		h.raw(`<header class="page-header">`)
		h.elem("h1", "", ContestantsHeading(loc, view.DictatorName))
		h.link(routepath.DictatorContestantsNew(view.DictatorID), "btn btn-primary", T(loc, "contestants.new_link"))
		h.raw("</header>")
		h.component(ctx, AlertBanner(view.Alert))
		if len(view.Contestants) == 0 {
			h.elem("p", "empty", T(loc, "contestants.empty"))
			h.raw("</div>")
			return h.err
		}
		h.raw(`<table class="table"><thead><tr>`)
		for _, key := range []string{
			"contestants.col.name",
			"contestants.col.nickname",
			"contestants.col.origin",
			"contestants.col.strength",
			"contestants.col.agility",
			"contestants.col.status",
			"common.actions",
		} {
			h.elem("th", "", T(loc, key))
		}
		h.raw("</tr></thead><tbody>")
		for _, c := range view.Contestants {
			h.raw("<tr")
			h.attr("data-id", c.ID)
			h.raw(">")
			h.elem("td", "", c.Name)
			h.elem("td", "", c.Nickname)
			h.elem("td", "", c.Origin)
			h.elem("td", "", itoa(c.Strength))
			h.elem("td", "", itoa(c.Agility))
			h.elem("td", "", statusLabel(loc, c.Status))
			h.raw(`<td class="actions">`)
			h.link(routepath.ContestantEdit(view.DictatorID, c.ID), "btn btn-sm", T(loc, "common.edit"))
			h.deleteLink(
				routepath.ContestantDelete(view.DictatorID, c.ID),
				ContestantsTableID,
				T(loc, "common.delete"),
				T(loc, "contestants.confirm_delete"),
			)
			h.raw("</td></tr>")
		}
		h.raw("</tbody></table></div>")
		return h.err
	})
}

// ContestantFormPage renders the new or edit contestant page with the form inline.
func ContestantFormPage(page PageContext, view ContestantFormView) templ.Component {
	heading := contestantFormHeading(page.Loc, view.Editing())
	return Layout(heading, page, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.elem("h1", "", heading)
		h.component(ctx, ContestantForm(view, page.Loc))
		return h.err
	}))
}

// ContestantEditPage renders the edit page; the form loads once the
// contestant has been fetched.
func ContestantEditPage(page PageContext, dictatorID, contestantID string) templ.Component {
	heading := contestantFormHeading(page.Loc, true)
	return Layout(heading, page, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.elem("h1", "", heading)
		h.component(ctx, LazyLoad(routepath.ContestantEditForm(dictatorID, contestantID), T(page.Loc, "common.loading")))
		return h.err
	}))
}

// ContestantForm renders the contestant form. Credentials are only asked for
// on creation.
func ContestantForm(view ContestantFormView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw(`<div class="form-panel">`)
		h.component(ctx, AlertBanner(view.Alert))
		h.formOpen("contestant-form", view.action(), view.Token)
		for _, f := range []struct {
			name, key, value string
		}{
			{arena.FieldName, "contestants.field.name", view.Form.Name},
			{arena.FieldNickname, "contestants.field.nickname", view.Form.Nickname},
			{arena.FieldOrigin, "contestants.field.origin", view.Form.Origin},
		} {
			h.input(inputField{
				Name:     f.name,
				Label:    T(loc, f.key),
				Value:    f.value,
				Error:    fieldMessage(loc, view.Errors, f.name),
				Required: true,
			})
		}
		for _, f := range []struct {
			name, key, value, min, max string
		}{
			{arena.FieldStrength, "contestants.field.strength", view.Form.Strength, "1", "100"},
			{arena.FieldAgility, "contestants.field.agility", view.Form.Agility, "1", "100"},
			{arena.FieldWins, "contestants.field.wins", view.Form.Wins, "0", ""},
			{arena.FieldLosses, "contestants.field.losses", view.Form.Losses, "0", ""},
		} {
			h.input(inputField{
				Name:     f.name,
				Label:    T(loc, f.key),
				Type:     "number",
				Value:    f.value,
				Min:      f.min,
				Max:      f.max,
				Error:    fieldMessage(loc, view.Errors, f.name),
				Required: true,
			})
		}
		options := make([]selectOption, 0, len(arena.Statuses))
		for _, status := range arena.Statuses {
			options = append(options, selectOption{Value: string(status), Label: statusLabel(loc, status)})
		}
		h.selectInput(selectField{
			Name:        arena.FieldStatus,
			Label:       T(loc, "contestants.col.status"),
			Placeholder: T(loc, "contestants.field.status"),
			Options:     options,
			Selected:    view.Form.Status,
			Error:       fieldMessage(loc, view.Errors, arena.FieldStatus),
		})
		if !view.Editing() {
			h.input(inputField{
				Name:     arena.FieldEmail,
				Label:    T(loc, "contestants.field.email"),
				Type:     "email",
				Value:    view.Form.Email,
				Error:    fieldMessage(loc, view.Errors, arena.FieldEmail),
				Required: true,
			})
			h.input(inputField{
				Name:     arena.FieldPassword,
				Label:    T(loc, "contestants.field.password"),
				Type:     "password",
				Error:    fieldMessage(loc, view.Errors, arena.FieldPassword),
				Required: true,
			})
		}
		submit := "contestants.submit.create"
		if view.Editing() {
			submit = "contestants.submit.update"
		}
		h.formClose(T(loc, submit), T(loc, "common.submitting"))
		h.raw("</div>")
		return h.err
	})
}

func contestantFormHeading(loc Localizer, editing bool) string {
	if editing {
		return T(loc, "contestants.edit.heading")
	}
	return T(loc, "contestants.new.heading")
}

// statusLabel localizes known statuses and shows unknown ones verbatim.
func statusLabel(loc Localizer, status arena.Status) string {
	if !status.Valid() {
		return string(status)
	}
	return T(loc, "status."+string(status))
}
