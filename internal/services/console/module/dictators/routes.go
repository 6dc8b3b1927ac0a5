// Package dictators routes the dictator screens and the contestant screens
// nested under each dictator.
package dictators

import (
	"net/http"
	"strings"

	routepath "github.com/louisbranch/arenacontrol/internal/services/console/routepath"
	sharedroute "github.com/louisbranch/arenacontrol/internal/services/shared/route"
)

// Service defines dictator and contestant handlers consumed by this route module.
type Service interface {
	HandleDictatorsPage(w http.ResponseWriter, r *http.Request)
	HandleDictatorsTable(w http.ResponseWriter, r *http.Request)
	HandleDictatorCreate(w http.ResponseWriter, r *http.Request)
	HandleDictatorEdit(w http.ResponseWriter, r *http.Request, dictatorID string)
	HandleDictatorEditForm(w http.ResponseWriter, r *http.Request, dictatorID string)
	HandleDictatorDelete(w http.ResponseWriter, r *http.Request, dictatorID string)
	HandleContestantsPage(w http.ResponseWriter, r *http.Request, dictatorID string)
	HandleContestantsTable(w http.ResponseWriter, r *http.Request, dictatorID string)
	HandleContestantCreate(w http.ResponseWriter, r *http.Request, dictatorID string)
	HandleContestantEdit(w http.ResponseWriter, r *http.Request, dictatorID string, contestantID string)
	HandleContestantEditForm(w http.ResponseWriter, r *http.Request, dictatorID string, contestantID string)
	HandleContestantDelete(w http.ResponseWriter, r *http.Request, dictatorID string, contestantID string)
}

// route matches a fixed-length path whose literal segments sit at known
// indexes; every other segment is an id.
type route struct {
	length   int
	literals map[int]string
	handle   func(Service, http.ResponseWriter, *http.Request, []string)
}

func (d route) matches(parts []string) bool {
	if len(parts) != d.length {
		return false
	}
	for index, value := range d.literals {
		if parts[index] != value {
			return false
		}
	}
	return true
}

var routes = []route{
	{
		length:   2,
		literals: map[int]string{1: "edit"},
		handle: func(s Service, w http.ResponseWriter, r *http.Request, p []string) {
			s.HandleDictatorEdit(w, r, p[0])
		},
	},
	{
		length:   3,
		literals: map[int]string{1: "edit", 2: "form"},
		handle: func(s Service, w http.ResponseWriter, r *http.Request, p []string) {
			s.HandleDictatorEditForm(w, r, p[0])
		},
	},
	{
		length:   2,
		literals: map[int]string{1: "delete"},
		handle: func(s Service, w http.ResponseWriter, r *http.Request, p []string) {
			s.HandleDictatorDelete(w, r, p[0])
		},
	},
	{
		length:   2,
		literals: map[int]string{1: "contestants"},
		handle: func(s Service, w http.ResponseWriter, r *http.Request, p []string) {
			s.HandleContestantsPage(w, r, p[0])
		},
	},
	{
		length:   3,
		literals: map[int]string{1: "contestants", 2: "table"},
		handle: func(s Service, w http.ResponseWriter, r *http.Request, p []string) {
			s.HandleContestantsTable(w, r, p[0])
		},
	},
	{
		length:   3,
		literals: map[int]string{1: "contestants", 2: "new"},
		handle: func(s Service, w http.ResponseWriter, r *http.Request, p []string) {
			s.HandleContestantCreate(w, r, p[0])
		},
	},
	{
		length:   4,
		literals: map[int]string{1: "contestants", 3: "edit"},
		handle: func(s Service, w http.ResponseWriter, r *http.Request, p []string) {
			s.HandleContestantEdit(w, r, p[0], p[2])
		},
	},
	{
		length:   5,
		literals: map[int]string{1: "contestants", 3: "edit", 4: "form"},
		handle: func(s Service, w http.ResponseWriter, r *http.Request, p []string) {
			s.HandleContestantEditForm(w, r, p[0], p[2])
		},
	},
	{
		length:   4,
		literals: map[int]string{1: "contestants", 3: "delete"},
		handle: func(s Service, w http.ResponseWriter, r *http.Request, p []string) {
			s.HandleContestantDelete(w, r, p[0], p[2])
		},
	},
}

// dispatch runs the matching route with the most literal segments, so
// ".../contestants/table" wins over ".../contestants/{id}".
func dispatch(service Service, w http.ResponseWriter, r *http.Request, parts []string) bool {
	best := -1
	bestLiterals := -1
	for index, candidate := range routes {
		if !candidate.matches(parts) {
			continue
		}
		if len(candidate.literals) > bestLiterals {
			best, bestLiterals = index, len(candidate.literals)
		}
	}
	if best < 0 {
		return false
	}
	routes[best].handle(service, w, r, parts)
	return true
}

// RegisterRoutes wires dictator routes into the provided mux.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	mux.HandleFunc(routepath.Dictators, service.HandleDictatorsPage)
	mux.HandleFunc(routepath.DictatorsTable, service.HandleDictatorsTable)
	mux.HandleFunc(routepath.DictatorsNew, service.HandleDictatorCreate)
	mux.HandleFunc(routepath.DictatorsPrefix, func(w http.ResponseWriter, r *http.Request) {
		HandleDictatorPath(w, r, service)
	})
}

// HandleDictatorPath parses dictator subroutes and dispatches to service handlers.
func HandleDictatorPath(w http.ResponseWriter, r *http.Request, service Service) {
	if service == nil {
		http.NotFound(w, r)
		return
	}
	if sharedroute.RedirectTrailingSlash(w, r) {
		return
	}

	suffix := strings.TrimPrefix(r.URL.Path, routepath.DictatorsPrefix)
	parts := strings.FieldsFunc(suffix, func(c rune) bool { return c == '/' })
	if !dispatch(service, w, r, parts) {
		http.NotFound(w, r)
	}
}
