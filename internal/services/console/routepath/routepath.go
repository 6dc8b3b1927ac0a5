// Package routepath names every console URL so handlers, route modules, and
// templates agree on them.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root         = "/"
	StaticPrefix = "/static/"
)

const (
	Dictators       = "/dictators"
	DictatorsTable  = "/dictators/table"
	DictatorsNew    = "/dictators/new"
	DictatorsPrefix = "/dictators/"
)

const (
	Battles             = "/battles"
	BattlesNew          = "/battles/new"
	BattlesHistory      = "/battles/history"
	BattlesHistoryTable = "/battles/history/table"
	BattlesPrefix       = "/battles/"
)

func Dictator(dictatorID string) string {
	return Dictators + "/" + escapeSegment(dictatorID)
}

func DictatorEdit(dictatorID string) string {
	return Dictator(dictatorID) + "/edit"
}

func DictatorEditForm(dictatorID string) string {
	return DictatorEdit(dictatorID) + "/form"
}

func DictatorDelete(dictatorID string) string {
	return Dictator(dictatorID) + "/delete"
}

func DictatorContestants(dictatorID string) string {
	return Dictator(dictatorID) + "/contestants"
}

func DictatorContestantsTable(dictatorID string) string {
	return DictatorContestants(dictatorID) + "/table"
}

func DictatorContestantsNew(dictatorID string) string {
	return DictatorContestants(dictatorID) + "/new"
}

func Contestant(dictatorID, contestantID string) string {
	return DictatorContestants(dictatorID) + "/" + escapeSegment(contestantID)
}

func ContestantEdit(dictatorID, contestantID string) string {
	return Contestant(dictatorID, contestantID) + "/edit"
}

func ContestantEditForm(dictatorID, contestantID string) string {
	return ContestantEdit(dictatorID, contestantID) + "/form"
}

func ContestantDelete(dictatorID, contestantID string) string {
	return Contestant(dictatorID, contestantID) + "/delete"
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}
