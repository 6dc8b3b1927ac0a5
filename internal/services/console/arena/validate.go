package arena

import (
	"fmt"
	"net/mail"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// PasswordMinLength is the shortest password accepted for any account.
const PasswordMinLength = 12

// Form field names. They match the JSON names sent to the backend.
const (
	FieldName              = "name"
	FieldTerritory         = "territory"
	FieldNumberOfSlaves    = "number_of_slaves"
	FieldLoyaltyToCarolina = "loyalty_to_Carolina"
	FieldEmail             = "email"
	FieldPassword          = "password"
	FieldNickname          = "nickname"
	FieldOrigin            = "origin"
	FieldStrength          = "strength"
	FieldAgility           = "agility"
	FieldWins              = "wins"
	FieldLosses            = "losses"
	FieldStatus            = "status"
	FieldContestant1       = "contestant_1"
	FieldContestant2       = "contestant_2"
	FieldWinnerID          = "winner_id"
	FieldDeathOccurred     = "death_occurred"
	FieldInjuries          = "injuries"
	FieldDate              = "date"
)

// FieldError is one rejected field. Key names a message catalog entry and
// Args fills its verbs.
type FieldError struct {
	Field string
	Key   string
	Args  []any
}

// FieldErrors collects every rejected field of one form.
type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Field+": "+fe.Key)
	}
	return "invalid form: " + strings.Join(parts, "; ")
}

// For returns the first error recorded for field.
func (e FieldErrors) For(field string) (FieldError, bool) {
	for _, fe := range e {
		if fe.Field == field {
			return fe, true
		}
	}
	return FieldError{}, false
}

type checker struct {
	errs FieldErrors
}

func (c *checker) fail(field, key string, args ...any) {
	c.errs = append(c.errs, FieldError{Field: field, Key: key, Args: args})
}

func (c *checker) required(field, value, key string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		c.fail(field, key)
	}
	return value
}

// integer parses value as a whole number within [min, max]. A negative max
// means unbounded.
func (c *checker) integer(field, value string, min, max int) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		c.fail(field, "validation.integer")
		return 0
	}
	switch {
	case max >= 0 && (n < min || n > max):
		c.fail(field, "validation.range", min, max)
	case n < min:
		c.fail(field, "validation.min", min)
	}
	return n
}

func (c *checker) email(value string) string {
	value = strings.TrimSpace(value)
	if !validEmail(value) {
		c.fail(FieldEmail, "validation.email")
	}
	return value
}

func (c *checker) password(value string) string {
	if utf8.RuneCountInString(value) < PasswordMinLength {
		c.fail(FieldPassword, "validation.password_min", PasswordMinLength)
	}
	return value
}

func (c *checker) uuid(field, value string) string {
	value = strings.TrimSpace(value)
	if err := uuid.Validate(value); err != nil {
		c.fail(field, "validation.uuid")
	}
	return value
}

func (c *checker) result() FieldErrors {
	if len(c.errs) == 0 {
		return nil
	}
	return c.errs
}

func validEmail(value string) bool {
	if value == "" {
		return false
	}
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return false
	}
	at := strings.LastIndexByte(value, '@')
	domain := value[at+1:]
	return strings.Contains(domain, ".") && !strings.HasSuffix(domain, ".")
}

// DictatorForm holds a dictator form exactly as submitted.
type DictatorForm struct {
	Name              string
	Territory         string
	NumberOfSlaves    string
	LoyaltyToCarolina string
	Email             string
	Password          string
}

// DictatorFormFromValues reads a submitted dictator form.
func DictatorFormFromValues(values url.Values) DictatorForm {
	return DictatorForm{
		Name:              values.Get(FieldName),
		Territory:         values.Get(FieldTerritory),
		NumberOfSlaves:    values.Get(FieldNumberOfSlaves),
		LoyaltyToCarolina: values.Get(FieldLoyaltyToCarolina),
		Email:             values.Get(FieldEmail),
		Password:          values.Get(FieldPassword),
	}
}

// DictatorFormFromRecord pre-fills an edit form. The password is left blank.
func DictatorFormFromRecord(d Dictator) DictatorForm {
	return DictatorForm{
		Name:              d.Name,
		Territory:         d.Territory,
		NumberOfSlaves:    strconv.Itoa(d.NumberOfSlaves),
		LoyaltyToCarolina: strconv.Itoa(d.LoyaltyToCarolina),
		Email:             d.Email,
	}
}

// Validate converts the form into a Dictator or reports every bad field.
func (f DictatorForm) Validate() (Dictator, FieldErrors) {
	var c checker
	d := Dictator{
		Name:              c.required(FieldName, f.Name, "validation.name_required"),
		Territory:         c.required(FieldTerritory, f.Territory, "validation.territory_required"),
		NumberOfSlaves:    c.integer(FieldNumberOfSlaves, f.NumberOfSlaves, 0, -1),
		LoyaltyToCarolina: c.integer(FieldLoyaltyToCarolina, f.LoyaltyToCarolina, 0, 100),
		Email:             c.email(f.Email),
		Password:          c.password(f.Password),
	}
	return d, c.result()
}

// ContestantForm holds a contestant form exactly as submitted. Email and
// Password are only present on the create form.
type ContestantForm struct {
	Name     string
	Nickname string
	Origin   string
	Strength string
	Agility  string
	Wins     string
	Losses   string
	Status   string
	Email    string
	Password string
}

// ContestantFormFromValues reads a submitted contestant form.
func ContestantFormFromValues(values url.Values) ContestantForm {
	return ContestantForm{
		Name:     values.Get(FieldName),
		Nickname: values.Get(FieldNickname),
		Origin:   values.Get(FieldOrigin),
		Strength: values.Get(FieldStrength),
		Agility:  values.Get(FieldAgility),
		Wins:     values.Get(FieldWins),
		Losses:   values.Get(FieldLosses),
		Status:   values.Get(FieldStatus),
		Email:    values.Get(FieldEmail),
		Password: values.Get(FieldPassword),
	}
}

// ContestantFormFromRecord pre-fills an edit form.
func ContestantFormFromRecord(c Contestant) ContestantForm {
	return ContestantForm{
		Name:     c.Name,
		Nickname: c.Nickname,
		Origin:   c.Origin,
		Strength: strconv.Itoa(c.Strength),
		Agility:  strconv.Itoa(c.Agility),
		Wins:     strconv.Itoa(c.Wins),
		Losses:   strconv.Itoa(c.Losses),
		Status:   string(c.Status),
	}
}

// ValidateCreate validates a new contestant, credentials included.
func (f ContestantForm) ValidateCreate() (Contestant, FieldErrors) {
	var c checker
	contestant := f.validate(&c)
	contestant.Email = c.email(f.Email)
	contestant.Password = c.password(f.Password)
	return contestant, c.result()
}

// ValidateUpdate validates an edited contestant. Credentials are not part of
// the edit form and are never sent.
func (f ContestantForm) ValidateUpdate() (Contestant, FieldErrors) {
	var c checker
	contestant := f.validate(&c)
	return contestant, c.result()
}

func (f ContestantForm) validate(c *checker) Contestant {
	status := Status(strings.TrimSpace(f.Status))
	if !status.Valid() {
		c.fail(FieldStatus, "validation.status")
	}
	return Contestant{
		Name:     c.required(FieldName, f.Name, "validation.name_required"),
		Nickname: c.required(FieldNickname, f.Nickname, "validation.nickname_required"),
		Origin:   c.required(FieldOrigin, f.Origin, "validation.origin_required"),
		Strength: c.integer(FieldStrength, f.Strength, 1, 100),
		Agility:  c.integer(FieldAgility, f.Agility, 1, 100),
		Wins:     c.integer(FieldWins, f.Wins, 0, -1),
		Losses:   c.integer(FieldLosses, f.Losses, 0, -1),
		Status:   status,
	}
}

// BattleForm holds a battle form exactly as submitted.
type BattleForm struct {
	Contestant1   string
	Contestant2   string
	WinnerID      string
	DeathOccurred string
	Injuries      string
	Date          string
}

// BattleFormFromValues reads a submitted battle form.
func BattleFormFromValues(values url.Values) BattleForm {
	return BattleForm{
		Contestant1:   values.Get(FieldContestant1),
		Contestant2:   values.Get(FieldContestant2),
		WinnerID:      values.Get(FieldWinnerID),
		DeathOccurred: values.Get(FieldDeathOccurred),
		Injuries:      values.Get(FieldInjuries),
		Date:          values.Get(FieldDate),
	}
}

// Validate converts the form into a Battle dated YYYY-MM-DD.
func (f BattleForm) Validate() (Battle, FieldErrors) {
	var c checker
	b := Battle{
		Contestant1:   c.uuid(FieldContestant1, f.Contestant1),
		Contestant2:   c.uuid(FieldContestant2, f.Contestant2),
		WinnerID:      c.uuid(FieldWinnerID, f.WinnerID),
		DeathOccurred: parseFlag(f.DeathOccurred),
		Injuries:      c.required(FieldInjuries, f.Injuries, "validation.injuries_required"),
	}
	date, err := parseDate(f.Date)
	if err != nil {
		c.fail(FieldDate, "validation.date")
	} else {
		b.Date = date.Format(DateLayout)
	}
	return b, c.result()
}

// Death reports whether the form marks the battle as deadly.
func (f BattleForm) Death() bool {
	return parseFlag(f.DeathOccurred)
}

func parseFlag(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "on", "1", "yes":
		return true
	default:
		return false
	}
}

func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("date is required")
	}
	if parsed, err := time.Parse(DateLayout, value); err == nil {
		return parsed, nil
	}
	return time.Parse(time.RFC3339, value)
}
