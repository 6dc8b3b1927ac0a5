package routepath

import "testing"

func TestTopLevelRoutes(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		Root:                "/",
		StaticPrefix:        "/static/",
		Dictators:           "/dictators",
		DictatorsTable:      "/dictators/table",
		DictatorsNew:        "/dictators/new",
		Battles:             "/battles",
		BattlesNew:          "/battles/new",
		BattlesHistory:      "/battles/history",
		BattlesHistoryTable: "/battles/history/table",
	}
	for got, want := range tests {
		if got != want {
			t.Fatalf("route = %q, want %q", got, want)
		}
	}
}

func TestDictatorBuilders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		got  string
		want string
	}{
		{Dictator("d-1"), "/dictators/d-1"},
		{DictatorEdit("d-1"), "/dictators/d-1/edit"},
		{DictatorEditForm("d-1"), "/dictators/d-1/edit/form"},
		{DictatorDelete("d-1"), "/dictators/d-1/delete"},
		{DictatorContestants("d-1"), "/dictators/d-1/contestants"},
		{DictatorContestantsTable("d-1"), "/dictators/d-1/contestants/table"},
		{DictatorContestantsNew("d-1"), "/dictators/d-1/contestants/new"},
		{ContestantEdit("d-1", "c-2"), "/dictators/d-1/contestants/c-2/edit"},
		{ContestantEditForm("d-1", "c-2"), "/dictators/d-1/contestants/c-2/edit/form"},
		{ContestantDelete("d-1", "c-2"), "/dictators/d-1/contestants/c-2/delete"},
	}
	for _, tc := range tests {
		if tc.got != tc.want {
			t.Fatalf("builder = %q, want %q", tc.got, tc.want)
		}
	}
}

func TestBuildersEscapeSegments(t *testing.T) {
	t.Parallel()

	if got := Dictator(" a/b "); got != "/dictators/a%2Fb" {
		t.Fatalf("Dictator = %q", got)
	}
	if got := Contestant("d 1", "c?2"); got != "/dictators/d%201/contestants/c%3F2" {
		t.Fatalf("Contestant = %q", got)
	}
}
