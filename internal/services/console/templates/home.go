package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/arenacontrol/internal/services/console/routepath"
)

type card struct {
	Title string
	Body  string
	Link  string
	URL   string
}

// HomePage renders the landing page with the dictators and battles cards.
func HomePage(page PageContext) templ.Component {
	return Layout("", page, hub(T(page.Loc, "home.heading"), []card{
		{
			Title: T(page.Loc, "home.dictators.title"),
			Body:  T(page.Loc, "home.dictators.body"),
			Link:  T(page.Loc, "home.dictators.link"),
			URL:   routepath.Dictators,
		},
		{
			Title: T(page.Loc, "home.battles.title"),
			Body:  T(page.Loc, "home.battles.body"),
			Link:  T(page.Loc, "home.battles.link"),
			URL:   routepath.Battles,
		},
	}))
}

// BattlesHubPage renders the battle hub with the new battle and history cards.
func BattlesHubPage(page PageContext) templ.Component {
	return Layout(T(page.Loc, "battles.title"), page, hub(T(page.Loc, "battles.heading"), []card{
		{
			Title: T(page.Loc, "battles.start.title"),
			Body:  T(page.Loc, "battles.start.body"),
			Link:  T(page.Loc, "battles.start.link"),
			URL:   routepath.BattlesNew,
		},
		{
			Title: T(page.Loc, "battles.history.title"),
			Body:  T(page.Loc, "battles.history.body"),
			Link:  T(page.Loc, "battles.history.link"),
			URL:   routepath.BattlesHistory,
		},
	}))
}

func hub(heading string, cards []card) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.elem("h1", "", heading)
		h.raw(`<div class="cards">`)
		for _, c := range cards {
			h.raw(`<section class="card">`)
			h.elem("h2", "card-title", c.Title)
			h.elem("p", "", c.Body)
			h.raw(`<a class="btn btn-primary"`)
			h.urlAttr("href", c.URL)
			h.raw(">")
			h.text(c.Link)
			h.raw("</a></section>")
		}
		h.raw("</div>")
		return h.err
	})
}
