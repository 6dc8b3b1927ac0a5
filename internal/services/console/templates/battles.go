package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
	"github.com/louisbranch/arenacontrol/internal/services/console/arena"
	"github.com/louisbranch/arenacontrol/internal/services/console/routepath"
)

// BattleHistoryTableID is the element the battle history swaps into.
const BattleHistoryTableID = "battle-history-table"

// BattleRow is one battle with contestant ids resolved to names.
type BattleRow struct {
	ID          string
	Date        string
	Contestant1 string
	Contestant2 string
	Winner      string
	Death       string
	Injuries    string
}

// BattleHistoryView provides data for the battle history fragment.
type BattleHistoryView struct {
	Rows  []BattleRow
	Alert *Alert
}

// BattleFormView provides data for the new battle form.
type BattleFormView struct {
	// Contestants fill the contestant and winner selects.
	Contestants []arena.Contestant
	Form        arena.BattleForm
	Errors      arena.FieldErrors
	Token       string
	Alert       *Alert
}

// BuildBattleRows resolves every contestant reference through names. Ids
// missing from names render as the localized "Unknown".
func BuildBattleRows(battles []arena.Battle, names arena.NameLookup, loc Localizer) []BattleRow {
	unknown := T(loc, "battles.unknown")
	resolve := func(id string) string {
		if name, ok := names.Lookup(id); ok {
			return name
		}
		return unknown
	}
	rows := make([]BattleRow, 0, len(battles))
	for _, b := range battles {
		death := T(loc, "battles.death.no")
		if b.DeathOccurred {
			death = T(loc, "battles.death.yes")
		}
		rows = append(rows, BattleRow{
			ID:          b.ID,
			Date:        b.Day(),
			Contestant1: resolve(b.Contestant1),
			Contestant2: resolve(b.Contestant2),
			Winner:      resolve(b.WinnerID),
			Death:       death,
			Injuries:    b.Injuries,
		})
	}
	return rows
}

// BattleHistoryPage renders the battle history screen with a lazily loaded table.
func BattleHistoryPage(page PageContext) templ.Component {
	return Layout(T(page.Loc, "battles.history.title"), page, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw(`<header class="page-header">`)
		h.elem("h1", "", T(page.Loc, "battles.history.heading"))
		h.link(routepath.BattlesNew, "btn btn-primary", T(page.Loc, "battles.start.link"))
		h.raw("</header>")
		h.component(ctx, LazyLoad(routepath.BattlesHistoryTable, T(page.Loc, "common.loading")))
		return h.err
	}))
}

// BattleHistoryTable renders one row per battle in response order.
func BattleHistoryTable(view BattleHistoryView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw("<div")
		h.attr("id", BattleHistoryTableID)
		h.raw(">")
		h.component(ctx, AlertBanner(view.Alert))
		if len(view.Rows) == 0 {
			h.elem("p", "empty", T(loc, "battles.empty"))
			h.raw("</div>")
			return h.err
		}
		h.raw(`<table class="table"><thead><tr>`)
		for _, key := range []string{
			"battles.col.date",
			"battles.col.contestant_1",
			"battles.col.contestant_2",
			"battles.col.winner",
			"battles.col.deaths",
			"battles.col.injuries",
		} {
			h.elem("th", "", T(loc, key))
		}
		h.raw("</tr></thead><tbody>")
		for _, row := range view.Rows {
			h.raw("<tr")
			h.attr("data-id", row.ID)
			h.raw(">")
			h.elem("td", "", row.Date)
			h.elem("td", "", row.Contestant1)
			h.elem("td", "", row.Contestant2)
			h.elem("td", "", row.Winner)
			h.elem("td", "", row.Death)
			h.elem("td", "", row.Injuries)
			h.raw("</tr>")
		}
		h.raw("</tbody></table></div>")
		return h.err
	})
}

// BattleFormPage renders the new battle page.
func BattleFormPage(page PageContext, view BattleFormView) templ.Component {
	heading := T(page.Loc, "battles.new.heading")
	return Layout(heading, page, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.elem("h1", "", heading)
		h.component(ctx, BattleForm(view, page.Loc))
		return h.err
	}))
}

// BattleForm renders the battle form. Contestants are listed as
// "Name (Nickname)" in every select.
func BattleForm(view BattleFormView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		options := make([]selectOption, 0, len(view.Contestants))
		for _, c := range view.Contestants {
			options = append(options, selectOption{Value: c.ID, Label: c.Label()})
		}

		h := newHTMLWriter(w)
		h.raw(`<div class="form-panel">`)
		h.component(ctx, AlertBanner(view.Alert))
		h.formOpen("battle-form", routepath.BattlesNew, view.Token)
		for _, f := range []struct {
			name, key, selected string
		}{
			{arena.FieldContestant1, "battles.field.contestant_1", view.Form.Contestant1},
			{arena.FieldContestant2, "battles.field.contestant_2", view.Form.Contestant2},
			{arena.FieldWinnerID, "battles.field.winner", view.Form.WinnerID},
		} {
			h.selectInput(selectField{
				Name:        f.name,
				Label:       T(loc, f.key),
				Placeholder: T(loc, f.key),
				Options:     options,
				Selected:    f.selected,
				Error:       fieldMessage(loc, view.Errors, f.name),
			})
		}
		h.selectInput(selectField{
			Name:  arena.FieldDeathOccurred,
			Label: T(loc, "battles.col.deaths"),
			Options: []selectOption{
				{Value: "false", Label: T(loc, "battles.field.no_death")},
				{Value: "true", Label: T(loc, "battles.field.death")},
			},
			Selected: strconv.FormatBool(view.Form.Death()),
		})
		h.textarea(inputField{
			Name:     arena.FieldInjuries,
			Label:    T(loc, "battles.field.injuries"),
			Value:    view.Form.Injuries,
			Error:    fieldMessage(loc, view.Errors, arena.FieldInjuries),
			Required: true,
		})
		h.input(inputField{
			Name:     arena.FieldDate,
			Label:    T(loc, "battles.field.date"),
			Type:     "date",
			Value:    view.Form.Date,
			Error:    fieldMessage(loc, view.Errors, arena.FieldDate),
			Required: true,
		})
		h.formClose(T(loc, "battles.submit"), T(loc, "common.submitting"))
		h.raw("</div>")
		return h.err
	})
}
