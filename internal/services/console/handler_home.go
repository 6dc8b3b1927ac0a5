package console

import (
	"net/http"

	"github.com/louisbranch/arenacontrol/internal/services/console/templates"
	"github.com/louisbranch/arenacontrol/internal/services/shared/htmx"
	"github.com/louisbranch/arenacontrol/internal/services/shared/httpx"
)

// handleHome renders the landing page.
func (h *Handler) handleHome(w http.ResponseWriter, r *http.Request) {
	if !httpx.MethodAllowed(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	loc, lang := h.localizer(w, r)
	page := h.pageContext(w, r, loc, lang)
	htmx.RenderPage(w, r, http.StatusOK, templates.HomePage(page), loc.Sprintf("app.title"))
}

// handleBattlesHub renders the battle hub.
func (h *Handler) handleBattlesHub(w http.ResponseWriter, r *http.Request) {
	if !httpx.MethodAllowed(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	loc, lang := h.localizer(w, r)
	page := h.pageContext(w, r, loc, lang)
	htmx.RenderPage(w, r, http.StatusOK, templates.BattlesHubPage(page), loc.Sprintf("battles.title"))
}
