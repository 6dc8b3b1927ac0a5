package arena

import (
	"net/url"
	"reflect"
	"strings"
	"testing"
)

func validDictatorForm() DictatorForm {
	return DictatorForm{
		Name:              "X",
		Territory:         "T",
		NumberOfSlaves:    "5",
		LoyaltyToCarolina: "50",
		Email:             "x@x.com",
		Password:          "123456789012",
	}
}

func TestDictatorFormValidateAccepts(t *testing.T) {
	t.Parallel()

	got, errs := validDictatorForm().Validate()
	if errs != nil {
		t.Fatalf("Validate errors = %v", errs)
	}
	want := Dictator{Name: "X", Territory: "T", NumberOfSlaves: 5, LoyaltyToCarolina: 50, Email: "x@x.com", Password: "123456789012"}
	if got != want {
		t.Fatalf("dictator = %+v, want %+v", got, want)
	}
}

func TestDictatorFormValidateRejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*DictatorForm)
		field   string
		wantKey string
	}{
		{name: "blank name", mutate: func(f *DictatorForm) { f.Name = "  " }, field: FieldName, wantKey: "validation.name_required"},
		{name: "blank territory", mutate: func(f *DictatorForm) { f.Territory = "" }, field: FieldTerritory, wantKey: "validation.territory_required"},
		{name: "negative slaves", mutate: func(f *DictatorForm) { f.NumberOfSlaves = "-1" }, field: FieldNumberOfSlaves, wantKey: "validation.min"},
		{name: "fractional slaves", mutate: func(f *DictatorForm) { f.NumberOfSlaves = "2.5" }, field: FieldNumberOfSlaves, wantKey: "validation.integer"},
		{name: "blank slaves", mutate: func(f *DictatorForm) { f.NumberOfSlaves = "" }, field: FieldNumberOfSlaves, wantKey: "validation.integer"},
		{name: "loyalty above range", mutate: func(f *DictatorForm) { f.LoyaltyToCarolina = "101" }, field: FieldLoyaltyToCarolina, wantKey: "validation.range"},
		{name: "loyalty below range", mutate: func(f *DictatorForm) { f.LoyaltyToCarolina = "-1" }, field: FieldLoyaltyToCarolina, wantKey: "validation.range"},
		{name: "bad email", mutate: func(f *DictatorForm) { f.Email = "not-an-email" }, field: FieldEmail, wantKey: "validation.email"},
		{name: "display name email", mutate: func(f *DictatorForm) { f.Email = "X <x@x.com>" }, field: FieldEmail, wantKey: "validation.email"},
		{name: "short password", mutate: func(f *DictatorForm) { f.Password = "12345678901" }, field: FieldPassword, wantKey: "validation.password_min"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			form := validDictatorForm()
			tc.mutate(&form)
			_, errs := form.Validate()
			if len(errs) != 1 {
				t.Fatalf("errors = %v, want exactly one", errs)
			}
			fe, ok := errs.For(tc.field)
			if !ok {
				t.Fatalf("no error for %s in %v", tc.field, errs)
			}
			if fe.Key != tc.wantKey {
				t.Fatalf("key = %q, want %q", fe.Key, tc.wantKey)
			}
		})
	}
}

func TestPasswordMinimumBoundary(t *testing.T) {
	t.Parallel()

	form := validDictatorForm()
	form.Password = strings.Repeat("a", 11)
	_, errs := form.Validate()
	fe, ok := errs.For(FieldPassword)
	if !ok {
		t.Fatal("11 character password accepted")
	}
	if !reflect.DeepEqual(fe.Args, []any{PasswordMinLength}) {
		t.Fatalf("args = %v, want [12]", fe.Args)
	}

	form.Password = strings.Repeat("a", 12)
	if _, errs := form.Validate(); errs != nil {
		t.Fatalf("12 character password rejected: %v", errs)
	}
}

func TestDictatorFormFromRecordClearsPassword(t *testing.T) {
	t.Parallel()

	form := DictatorFormFromRecord(Dictator{ID: "d1", Name: "N", NumberOfSlaves: 3, LoyaltyToCarolina: 99, Email: "n@n.io", Password: "secretsecret"})
	if form.Password != "" {
		t.Fatalf("password = %q, want empty", form.Password)
	}
	if form.NumberOfSlaves != "3" || form.LoyaltyToCarolina != "99" {
		t.Fatalf("numbers = %q/%q", form.NumberOfSlaves, form.LoyaltyToCarolina)
	}
}

func validContestantValues() url.Values {
	return url.Values{
		FieldName:     {"Spartacus"},
		FieldNickname: {"Thracian"},
		FieldOrigin:   {"Thrace"},
		FieldStrength: {"90"},
		FieldAgility:  {"80"},
		FieldWins:     {"12"},
		FieldLosses:   {"0"},
		FieldStatus:   {"Alive"},
		FieldEmail:    {"s@rome.it"},
		FieldPassword: {"gladiator1234"},
	}
}

func TestContestantFormValidateCreate(t *testing.T) {
	t.Parallel()

	got, errs := ContestantFormFromValues(validContestantValues()).ValidateCreate()
	if errs != nil {
		t.Fatalf("errors = %v", errs)
	}
	want := Contestant{Name: "Spartacus", Nickname: "Thracian", Origin: "Thrace", Strength: 90, Agility: 80, Wins: 12, Losses: 0, Status: StatusAlive, Email: "s@rome.it", Password: "gladiator1234"}
	if got != want {
		t.Fatalf("contestant = %+v, want %+v", got, want)
	}
}

func TestContestantFormValidateUpdateIgnoresCredentials(t *testing.T) {
	t.Parallel()

	values := validContestantValues()
	values.Del(FieldEmail)
	values.Del(FieldPassword)
	got, errs := ContestantFormFromValues(values).ValidateUpdate()
	if errs != nil {
		t.Fatalf("errors = %v", errs)
	}
	if got.Email != "" || got.Password != "" {
		t.Fatalf("credentials leaked into update: %+v", got)
	}
}

func TestContestantFormValidateRejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		field   string
		value   string
		wantKey string
	}{
		{field: FieldNickname, value: "", wantKey: "validation.nickname_required"},
		{field: FieldOrigin, value: " ", wantKey: "validation.origin_required"},
		{field: FieldStrength, value: "0", wantKey: "validation.range"},
		{field: FieldStrength, value: "101", wantKey: "validation.range"},
		{field: FieldAgility, value: "abc", wantKey: "validation.integer"},
		{field: FieldStrength, value: "50.5", wantKey: "validation.integer"},
		{field: FieldWins, value: "1.5", wantKey: "validation.integer"},
		{field: FieldWins, value: "-3", wantKey: "validation.min"},
		{field: FieldLosses, value: "-1", wantKey: "validation.min"},
		{field: FieldStatus, value: "", wantKey: "validation.status"},
		{field: FieldStatus, value: "Retired", wantKey: "validation.status"},
	}
	for _, tc := range tests {
		t.Run(tc.field+"="+tc.value, func(t *testing.T) {
			t.Parallel()
			values := validContestantValues()
			values.Set(tc.field, tc.value)
			_, errs := ContestantFormFromValues(values).ValidateCreate()
			fe, ok := errs.For(tc.field)
			if !ok || fe.Key != tc.wantKey {
				t.Fatalf("errors = %v, want %s on %s", errs, tc.wantKey, tc.field)
			}
		})
	}
}

func TestContestantFormRoundTripsRecord(t *testing.T) {
	t.Parallel()

	record := Contestant{ID: "c1", Name: "Crixus", Nickname: "Undefeated", Origin: "Gaul", Strength: 95, Agility: 60, Wins: 30, Losses: 1, Status: StatusDead}
	got, errs := ContestantFormFromRecord(record).ValidateUpdate()
	if errs != nil {
		t.Fatalf("errors = %v", errs)
	}
	record.ID = ""
	if got != record {
		t.Fatalf("round trip = %+v, want %+v", got, record)
	}
}

const (
	aliceID = "6f1c2b1e-3a4d-4c5e-8f90-1a2b3c4d5e6f"
	bobID   = "0d9e8f7a-6b5c-4d3e-9f2a-1b0c9d8e7f6a"
)

func TestBattleFormValidate(t *testing.T) {
	t.Parallel()

	form := BattleForm{Contestant1: aliceID, Contestant2: bobID, WinnerID: bobID, DeathOccurred: "true", Injuries: "broken arm", Date: "2024-03-09"}
	got, errs := form.Validate()
	if errs != nil {
		t.Fatalf("errors = %v", errs)
	}
	want := Battle{Contestant1: aliceID, Contestant2: bobID, WinnerID: bobID, DeathOccurred: true, Injuries: "broken arm", Date: "2024-03-09"}
	if got != want {
		t.Fatalf("battle = %+v, want %+v", got, want)
	}
}

func TestBattleFormValidateRejects(t *testing.T) {
	t.Parallel()

	form := BattleForm{Contestant1: "alice", Contestant2: bobID, WinnerID: "", DeathOccurred: "false", Injuries: "", Date: "09/03/2024"}
	_, errs := form.Validate()
	for field, key := range map[string]string{
		FieldContestant1: "validation.uuid",
		FieldWinnerID:    "validation.uuid",
		FieldInjuries:    "validation.injuries_required",
		FieldDate:        "validation.date",
	} {
		fe, ok := errs.For(field)
		if !ok || fe.Key != key {
			t.Fatalf("errors = %v, want %s on %s", errs, key, field)
		}
	}
	if _, ok := errs.For(FieldContestant2); ok {
		t.Fatalf("valid contestant_2 rejected: %v", errs)
	}
}

func TestBattleFormNormalizesTimestampDate(t *testing.T) {
	t.Parallel()

	form := BattleForm{Contestant1: aliceID, Contestant2: bobID, WinnerID: aliceID, Injuries: "none", Date: "2024-03-09T10:00:00Z"}
	got, errs := form.Validate()
	if errs != nil {
		t.Fatalf("errors = %v", errs)
	}
	if got.Date != "2024-03-09" || got.DeathOccurred {
		t.Fatalf("battle = %+v", got)
	}
}
