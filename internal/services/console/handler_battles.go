package console

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/louisbranch/arenacontrol/internal/services/console/arena"
	"github.com/louisbranch/arenacontrol/internal/services/console/routepath"
	"github.com/louisbranch/arenacontrol/internal/services/console/templates"
	"github.com/louisbranch/arenacontrol/internal/services/shared/htmx"
	"github.com/louisbranch/arenacontrol/internal/services/shared/httpx"
	"golang.org/x/sync/errgroup"
)

const formBattleCreate = "battle.create"

// handleBattleHistory renders the battle history screen shell.
func (h *Handler) handleBattleHistory(w http.ResponseWriter, r *http.Request) {
	if !httpx.MethodAllowed(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	loc, lang := h.localizer(w, r)
	page := h.pageContext(w, r, loc, lang)
	htmx.RenderPage(w, r, http.StatusOK, templates.BattleHistoryPage(page), loc.Sprintf("battles.history.title"))
}

// handleBattleHistoryTable fetches battles and contestants in parallel, then
// renders battles with contestant names resolved through one lookup.
func (h *Handler) handleBattleHistoryTable(w http.ResponseWriter, r *http.Request) {
	if !httpx.MethodAllowed(w, r, http.MethodGet) {
		return
	}
	loc, _ := h.localizer(w, r)
	ctx := r.Context()

	var (
		g           errgroup.Group
		battles     []arena.Battle
		contestants []arena.Contestant
	)
	g.Go(func() error {
		list, err := h.backend.ListBattles(ctx)
		if err != nil {
			return fmt.Errorf("list battles: %w", err)
		}
		battles = list
		return nil
	})
	g.Go(func() error {
		list, err := h.backend.ListContestants(ctx)
		if err != nil {
			return fmt.Errorf("list contestants: %w", err)
		}
		contestants = list
		return nil
	})
	err := g.Wait()
	if requestGone(r) {
		return
	}

	view := templates.BattleHistoryView{}
	if err != nil {
		log.Printf("battle history: %v", err)
		view.Alert = errorAlert(loc, "error.battles_load")
	}
	view.Rows = templates.BuildBattleRows(battles, arena.NewNameLookup(contestants), loc)
	htmx.Render(w, r, http.StatusOK, templates.BattleHistoryTable(view, loc))
}

// handleBattleCreate renders the new battle form and accepts its posts.
// Successful battles land on the history screen.
func (h *Handler) handleBattleCreate(w http.ResponseWriter, r *http.Request) {
	if !httpx.MethodAllowed(w, r, http.MethodGet, http.MethodPost) {
		return
	}
	loc, lang := h.localizer(w, r)
	ctx := r.Context()
	if r.Method == http.MethodGet {
		page := h.pageContext(w, r, loc, lang)
		view := templates.BattleFormView{}
		contestants, err := h.battleContestants(ctx)
		view.Contestants = contestants
		view.Token, view.Alert = h.issueToken(ctx, formBattleCreate, loc)
		if err != nil {
			view.Alert = errorAlert(loc, "error.contestants_load")
		}
		if requestGone(r) {
			return
		}
		h.renderBattleForm(w, r, page, view, http.StatusOK)
		return
	}

	if !requireSameOrigin(w, r, loc) {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	page := h.pageContext(w, r, loc, lang)
	view := templates.BattleFormView{
		Form:  arena.BattleFormFromValues(r.PostForm),
		Token: r.PostForm.Get(templates.SubmissionTokenField),
	}
	battle, errs := view.Form.Validate()
	if errs != nil {
		view.Errors = errs
		view.Alert = errorAlert(loc, "error.validation")
		view.Contestants, _ = h.battleContestants(ctx)
		if requestGone(r) {
			return
		}
		h.renderBattleForm(w, r, page, view, http.StatusUnprocessableEntity)
		return
	}

	result := h.submit(r, loc, formBattleCreate, view.Token, "error.battle_create", func(ctx context.Context) error {
		return h.backend.CreateBattle(ctx, battle)
	})
	if result.alert == nil {
		finishSubmission(w, r, "notice.battle_created", routepath.BattlesHistory)
		return
	}
	view.Contestants, _ = h.battleContestants(ctx)
	if requestGone(r) {
		return
	}
	view.Alert, view.Token = result.alert, result.token
	h.renderBattleForm(w, r, page, view, result.status)
}

// battleContestants loads the select options. A failure is logged and
// leaves the selects empty.
func (h *Handler) battleContestants(ctx context.Context) ([]arena.Contestant, error) {
	list, err := h.backend.ListContestants(ctx)
	if err != nil {
		log.Printf("list contestants: %v", err)
		return nil, err
	}
	return list, nil
}

func (h *Handler) renderBattleForm(w http.ResponseWriter, r *http.Request, page templates.PageContext, view templates.BattleFormView, status int) {
	htmx.RenderPage(w, r, formStatus(r, status), templates.BattleFormPage(page, view), page.Loc.Sprintf("battles.new.heading"))
}
