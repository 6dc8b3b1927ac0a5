// Package home routes the landing page.
package home

import (
	"net/http"

	routepath "github.com/louisbranch/arenacontrol/internal/services/console/routepath"
	sharedroute "github.com/louisbranch/arenacontrol/internal/services/shared/route"
)

// Service defines the home handler consumed by this route module.
type Service interface {
	HandleHome(w http.ResponseWriter, r *http.Request)
}

// RegisterRoutes wires the landing page. The root pattern also catches every
// unmatched path, which answers 404 after trailing-slash normalization.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	mux.HandleFunc(routepath.Root, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == routepath.Root {
			service.HandleHome(w, r)
			return
		}
		if sharedroute.RedirectTrailingSlash(w, r) {
			return
		}
		http.NotFound(w, r)
	})
}
