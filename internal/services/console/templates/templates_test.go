package templates

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/louisbranch/arenacontrol/internal/services/console/arena"
	"github.com/louisbranch/arenacontrol/internal/services/console/i18n"
	"golang.org/x/text/language"
)

func render(t *testing.T, component templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := component.Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.String()
}

func englishPage() PageContext {
	return PageContext{Lang: "en", Loc: i18n.Printer(language.English), CurrentPath: "/dictators"}
}

func TestTWithoutLocalizerReturnsKey(t *testing.T) {
	t.Parallel()

	if got := T(nil, "nav.home"); got != "nav.home" {
		t.Fatalf("T(nil) = %q", got)
	}
}

func TestLazyLoadTargetsItself(t *testing.T) {
	t.Parallel()

	got := render(t, LazyLoad("/dictators/table", "Loading..."))
	for _, want := range []string{
		`hx-get="/dictators/table"`,
		`hx-trigger="load"`,
		`hx-target="this"`,
		`hx-swap="outerHTML"`,
		`<span class="sr-only">Loading...</span>`,
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("LazyLoad missing %q: %s", want, got)
		}
	}
}

func TestLayoutRendersNavigationAndNotice(t *testing.T) {
	t.Parallel()

	page := englishPage()
	page.CurrentQuery = "x=1"
	page.Notice = &Alert{Kind: AlertSuccess, Message: "Dictator created!"}
	got := render(t, DictatorsPage(page))

	for _, want := range []string{
		`<a class="brand" href="/">🏠 Arena Control</a>`,
		`<main id="main" class="container">`,
		`class="alert alert-success"`,
		"Dictator created!",
		`href="/dictators?lang=es&amp;x=1"`,
		"<title>Dictators | Arena Control</title>",
		`hx-get="/dictators/table"`,
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("page missing %q: %s", want, got)
		}
	}
}

func TestAlertBannerSkipsEmpty(t *testing.T) {
	t.Parallel()

	if got := render(t, AlertBanner(nil)); got != "" {
		t.Fatalf("nil alert = %q", got)
	}
	got := render(t, AlertBanner(&Alert{Kind: AlertError, Message: "<boom>"}))
	if !strings.Contains(got, `role="alert"`) || !strings.Contains(got, "&lt;boom&gt;") {
		t.Fatalf("error alert = %q", got)
	}
}

func TestBuildBattleRowsResolvesNames(t *testing.T) {
	t.Parallel()

	names := arena.NewNameLookup([]arena.Contestant{{ID: "A", Name: "Alice"}, {ID: "B", Name: "Bob"}})
	rows := BuildBattleRows([]arena.Battle{
		{ID: "1", Contestant1: "A", Contestant2: "B", WinnerID: "B", Date: "2024-05-01T10:00:00Z"},
		{ID: "2", Contestant1: "A", Contestant2: "Z", WinnerID: "Z", DeathOccurred: true},
	}, names, i18n.Printer(language.English))

	if len(rows) != 2 {
		t.Fatalf("rows = %d", len(rows))
	}
	first := rows[0]
	if first.Contestant1 != "Alice" || first.Contestant2 != "Bob" || first.Winner != "Bob" {
		t.Fatalf("first row = %+v", first)
	}
	if first.Date != "2024-05-01" || first.Death != "No" {
		t.Fatalf("first row = %+v", first)
	}
	second := rows[1]
	if second.Contestant2 != "Unknown" || second.Winner != "Unknown" || second.Death != "Yes" {
		t.Fatalf("second row = %+v", second)
	}
}

func TestBattleHistoryTableRendersRowsInOrder(t *testing.T) {
	t.Parallel()

	got := render(t, BattleHistoryTable(BattleHistoryView{Rows: []BattleRow{
		{ID: "1", Contestant1: "Alice"},
		{ID: "2", Contestant1: "Carol"},
	}}, i18n.Printer(language.English)))
	if strings.Index(got, "Alice") > strings.Index(got, "Carol") {
		t.Fatalf("rows out of order: %s", got)
	}
	empty := render(t, BattleHistoryTable(BattleHistoryView{}, i18n.Printer(language.English)))
	if !strings.Contains(empty, "No battles recorded yet.") {
		t.Fatalf("empty table = %s", empty)
	}
}

func TestDictatorsTableActions(t *testing.T) {
	t.Parallel()

	got := render(t, DictatorsTable(DictatorsTableView{
		Dictators: []arena.Dictator{{ID: "d1", Name: "Carolina", Territory: "North", NumberOfSlaves: 3, LoyaltyToCarolina: 90}},
	}, i18n.Printer(language.English)))

	for _, want := range []string{
		`id="dictators-table"`,
		`href="/dictators/d1/edit"`,
		`hx-post="/dictators/d1/delete"`,
		`hx-confirm="Are you sure you want to delete this dictator?"`,
		`hx-target="#dictators-table"`,
		`href="/dictators/d1/contestants"`,
		"<td>90</td>",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("table missing %q: %s", want, got)
		}
	}
}

func TestDictatorFormShowsErrorsAndNeverEchoesPassword(t *testing.T) {
	t.Parallel()

	form := arena.DictatorForm{Name: "", LoyaltyToCarolina: "150", Password: "secret"}
	_, errs := form.Validate()
	got := render(t, DictatorForm(DictatorFormView{DictatorID: "d1", Form: form, Errors: errs, Token: "tok"}, i18n.Printer(language.English)))

	for _, want := range []string{
		`action="/dictators/d1/edit"`,
		`hx-disabled-elt="find button[type=submit]"`,
		`name="submission_token" value="tok"`,
		"Name is required",
		"Must be between 0 and 100",
		"Password must be at least 12 characters",
		`value="150"`,
		"Update Dictator",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("form missing %q: %s", want, got)
		}
	}
	if strings.Contains(got, `value="secret"`) {
		t.Fatalf("password echoed: %s", got)
	}
}

func TestSubmitButtonCarriesSubmittingLabel(t *testing.T) {
	t.Parallel()

	got := render(t, DictatorForm(DictatorFormView{Token: "tok"}, i18n.Printer(language.English)))
	want := `<button type="submit" class="btn btn-primary"><span class="submit-label">Create Dictator</span><span class="submitting-label">Saving...</span></button>`
	if !strings.Contains(got, want) {
		t.Fatalf("submit button = %s", got)
	}
	if strings.Contains(got, "data-submitting-label") {
		t.Fatalf("unused data attribute rendered: %s", got)
	}
}

func TestContestantFormCredentialsOnlyOnCreate(t *testing.T) {
	t.Parallel()

	loc := i18n.Printer(language.English)
	create := render(t, ContestantForm(ContestantFormView{DictatorID: "d1"}, loc))
	if !strings.Contains(create, `name="email"`) || !strings.Contains(create, `action="/dictators/d1/contestants/new"`) {
		t.Fatalf("create form = %s", create)
	}
	if !strings.Contains(create, `<option value="" selected>Select Status</option>`) {
		t.Fatalf("create form missing status placeholder: %s", create)
	}

	edit := render(t, ContestantForm(ContestantFormView{
		DictatorID:   "d1",
		ContestantID: "c1",
		Form:         arena.ContestantForm{Status: "Dead"},
	}, loc))
	if strings.Contains(edit, `name="email"`) || strings.Contains(edit, `name="password"`) {
		t.Fatalf("edit form asks for credentials: %s", edit)
	}
	if !strings.Contains(edit, `<option value="Dead" selected>Dead</option>`) {
		t.Fatalf("edit form status not selected: %s", edit)
	}
}

func TestContestantsHeadingFallsBack(t *testing.T) {
	t.Parallel()

	loc := i18n.Printer(language.English)
	if got := ContestantsHeading(loc, ""); got != "🧍 Contestants of ..." {
		t.Fatalf("heading = %q", got)
	}
	if got := ContestantsHeading(loc, "Carolina"); got != "🧍 Contestants of Carolina" {
		t.Fatalf("heading = %q", got)
	}
}

func TestBattleFormListsContestantLabels(t *testing.T) {
	t.Parallel()

	got := render(t, BattleForm(BattleFormView{
		Contestants: []arena.Contestant{{ID: "c1", Name: "Alice", Nickname: "Ace"}},
		Form:        arena.BattleForm{DeathOccurred: "true", Contestant1: "c1"},
	}, i18n.Printer(language.English)))

	for _, want := range []string{
		`<option value="c1" selected>Alice (Ace)</option>`,
		`<option value="true" selected>Death Occurred</option>`,
		`type="date"`,
		`action="/battles/new"`,
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("battle form missing %q: %s", want, got)
		}
	}
}

func TestConfirmDeletePagePostsWithoutBoost(t *testing.T) {
	t.Parallel()

	got := render(t, ConfirmDeletePage(englishPage(), ConfirmDeleteView{
		Message:   "Sure?",
		Action:    "/dictators/d1/delete",
		CancelURL: "/dictators",
	}))
	if !strings.Contains(got, `hx-boost="false" action="/dictators/d1/delete"`) {
		t.Fatalf("confirm form = %s", got)
	}
}

func TestHomePageLinksScreens(t *testing.T) {
	t.Parallel()

	got := render(t, HomePage(englishPage()))
	for _, want := range []string{`href="/dictators"`, `href="/battles"`, "Go to Dictators", "Go to Battles"} {
		if !strings.Contains(got, want) {
			t.Fatalf("home missing %q", want)
		}
	}
	hub := render(t, BattlesHubPage(englishPage()))
	for _, want := range []string{`href="/battles/new"`, `href="/battles/history"`} {
		if !strings.Contains(hub, want) {
			t.Fatalf("battles hub missing %q", want)
		}
	}
}
