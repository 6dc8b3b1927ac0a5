// Package battles routes the battle hub, the new battle form, and battle history.
package battles

import (
	"net/http"

	routepath "github.com/louisbranch/arenacontrol/internal/services/console/routepath"
	sharedroute "github.com/louisbranch/arenacontrol/internal/services/shared/route"
)

// Service defines battle handlers consumed by this route module.
type Service interface {
	HandleBattlesHub(w http.ResponseWriter, r *http.Request)
	HandleBattleCreate(w http.ResponseWriter, r *http.Request)
	HandleBattleHistory(w http.ResponseWriter, r *http.Request)
	HandleBattleHistoryTable(w http.ResponseWriter, r *http.Request)
}

// RegisterRoutes wires battle routes into the provided mux.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	mux.HandleFunc(routepath.Battles, service.HandleBattlesHub)
	mux.HandleFunc(routepath.BattlesNew, service.HandleBattleCreate)
	mux.HandleFunc(routepath.BattlesHistory, service.HandleBattleHistory)
	mux.HandleFunc(routepath.BattlesHistoryTable, service.HandleBattleHistoryTable)
	mux.HandleFunc(routepath.BattlesPrefix, func(w http.ResponseWriter, r *http.Request) {
		if sharedroute.RedirectTrailingSlash(w, r) {
			return
		}
		http.NotFound(w, r)
	})
}
