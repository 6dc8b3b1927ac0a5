// Package arena defines the records exchanged with the arena backend and the
// form rules applied before any of them is sent.
package arena

import (
	"strings"
	"time"
)

// DateLayout is the calendar-date format battles are exchanged in.
const DateLayout = "2006-01-02"

// Dictator is a top-level managed entity owning contestants.
type Dictator struct {
	ID                string `json:"id,omitempty"`
	Name              string `json:"name"`
	Territory         string `json:"territory"`
	NumberOfSlaves    int    `json:"number_of_slaves"`
	LoyaltyToCarolina int    `json:"loyalty_to_Carolina"`
	Email             string `json:"email,omitempty"`
	// Password is write-only: it is sent on create and update and never shown.
	Password string `json:"password,omitempty"`
}

// Status is a contestant's standing in the arena.
type Status string

const (
	StatusAlive   Status = "Alive"
	StatusEscaped Status = "Escaped"
	StatusDead    Status = "Dead"
	StatusFree    Status = "Free"
)

// Statuses lists every valid status in display order.
var Statuses = []Status{StatusAlive, StatusEscaped, StatusDead, StatusFree}

// Valid reports whether s is one of Statuses.
func (s Status) Valid() bool {
	for _, candidate := range Statuses {
		if s == candidate {
			return true
		}
	}
	return false
}

// Contestant belongs to one dictator and fights in battles.
type Contestant struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name"`
	Nickname string `json:"nickname"`
	Origin   string `json:"origin"`
	Strength int    `json:"strength"`
	Agility  int    `json:"agility"`
	Wins     int    `json:"wins"`
	Losses   int    `json:"losses"`
	Status   Status `json:"status"`
	// Email and Password are only collected when a contestant is created.
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
}

// Label renders the contestant for selection lists as "Name (Nickname)".
func (c Contestant) Label() string {
	if strings.TrimSpace(c.Nickname) == "" {
		return c.Name
	}
	return c.Name + " (" + c.Nickname + ")"
}

// Battle pairs two contestants with an outcome.
type Battle struct {
	ID            string `json:"id,omitempty"`
	Contestant1   string `json:"contestant_1"`
	Contestant2   string `json:"contestant_2"`
	WinnerID      string `json:"winner_id"`
	DeathOccurred bool   `json:"death_occurred"`
	Injuries      string `json:"injuries"`
	Date          string `json:"date"`
}

// Day returns the battle date as YYYY-MM-DD. Timestamps are truncated to
// their calendar day; unparseable values are returned unchanged.
func (b Battle) Day() string {
	raw := strings.TrimSpace(b.Date)
	if _, err := time.Parse(DateLayout, raw); err == nil {
		return raw
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02 15:04:05"} {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed.Format(DateLayout)
		}
	}
	return raw
}
