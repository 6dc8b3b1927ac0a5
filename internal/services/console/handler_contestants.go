package console

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/louisbranch/arenacontrol/internal/services/console/arena"
	"github.com/louisbranch/arenacontrol/internal/services/console/routepath"
	"github.com/louisbranch/arenacontrol/internal/services/console/templates"
	"github.com/louisbranch/arenacontrol/internal/services/shared/flash"
	"github.com/louisbranch/arenacontrol/internal/services/shared/htmx"
	"github.com/louisbranch/arenacontrol/internal/services/shared/httpx"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/message"
)

const (
	formContestantCreate = "contestant.create"
	formContestantUpdate = "contestant.update"
)

// errNotOwned is returned for a contestant missing from the list of the
// dictator named in the URL.
var errNotOwned = errors.New("contestant not listed under dictator")

// ownedContestant checks that contestantID belongs to dictatorID. Contestant
// records carry no owner, so membership comes from the dictator's list.
func (h *Handler) ownedContestant(ctx context.Context, dictatorID, contestantID string) error {
	list, err := h.backend.ListDictatorContestants(ctx, dictatorID)
	if err != nil {
		return fmt.Errorf("list contestants of dictator %s: %w", dictatorID, err)
	}
	for _, c := range list {
		if c.ID == contestantID {
			return nil
		}
	}
	return fmt.Errorf("contestant %s, dictator %s: %w", contestantID, dictatorID, errNotOwned)
}

// ownershipAlert maps an ownedContestant failure to an alert and status.
func ownershipAlert(loc *message.Printer, err error, failureKey string) (*templates.Alert, int) {
	if errors.Is(err, errNotOwned) {
		return errorAlert(loc, "error.contestant_not_owned"), http.StatusNotFound
	}
	return errorAlert(loc, failureKey), http.StatusBadGateway
}

// handleContestantsPage renders the contestants screen shell of one dictator.
func (h *Handler) handleContestantsPage(w http.ResponseWriter, r *http.Request, dictatorID string) {
	if !httpx.MethodAllowed(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	loc, lang := h.localizer(w, r)
	page := h.pageContext(w, r, loc, lang)
	htmx.RenderPage(w, r, http.StatusOK, templates.ContestantsPage(page, dictatorID), loc.Sprintf("contestants.title"))
}

// handleContestantsTable fetches the dictator and its contestants in parallel
// and renders the heading and table.
func (h *Handler) handleContestantsTable(w http.ResponseWriter, r *http.Request, dictatorID string) {
	if !httpx.MethodAllowed(w, r, http.MethodGet) {
		return
	}
	loc, _ := h.localizer(w, r)
	view := h.contestantsTable(r.Context(), loc, dictatorID)
	if requestGone(r) {
		return
	}
	htmx.Render(w, r, http.StatusOK, templates.ContestantsTable(view, loc))
}

// contestantsTable loads both halves independently: a missing dictator only
// blanks the heading name, a failed list shows the error alert.
func (h *Handler) contestantsTable(ctx context.Context, loc *message.Printer, dictatorID string) templates.ContestantsTableView {
	view := templates.ContestantsTableView{DictatorID: dictatorID}

	var g errgroup.Group
	g.Go(func() error {
		dictator, err := h.backend.GetDictator(ctx, dictatorID)
		if err != nil {
			log.Printf("get dictator %s: %v", dictatorID, err)
			return nil
		}
		view.DictatorName = dictator.Name
		return nil
	})
	var contestants []arena.Contestant
	g.Go(func() error {
		list, err := h.backend.ListDictatorContestants(ctx, dictatorID)
		if err != nil {
			return fmt.Errorf("list contestants of dictator %s: %w", dictatorID, err)
		}
		contestants = list
		return nil
	})
	if err := g.Wait(); err != nil {
		log.Printf("%v", err)
		view.Alert = errorAlert(loc, "error.contestants_load")
	}
	view.Contestants = contestants
	return view
}

// handleContestantCreate renders the new contestant form and accepts its posts.
func (h *Handler) handleContestantCreate(w http.ResponseWriter, r *http.Request, dictatorID string) {
	if !httpx.MethodAllowed(w, r, http.MethodGet, http.MethodPost) {
		return
	}
	loc, lang := h.localizer(w, r)
	if r.Method == http.MethodGet {
		page := h.pageContext(w, r, loc, lang)
		view := templates.ContestantFormView{DictatorID: dictatorID}
		view.Token, view.Alert = h.issueToken(r.Context(), recordForm(formContestantCreate, dictatorID), loc)
		h.renderContestantForm(w, r, page, view, http.StatusOK)
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
	view := templates.ContestantFormView{
		DictatorID: dictatorID,
		Form:       arena.ContestantFormFromValues(r.PostForm),
		Token:      r.PostForm.Get(templates.SubmissionTokenField),
	}
	contestant, errs := view.Form.ValidateCreate()
	if errs != nil {
		view.Errors = errs
		view.Alert = errorAlert(loc, "error.validation")
		h.renderContestantForm(w, r, page, view, http.StatusUnprocessableEntity)
		return
	}

	result := h.submit(r, loc, recordForm(formContestantCreate, dictatorID), view.Token, "error.contestant_create", func(ctx context.Context) error {
		return h.backend.CreateContestant(ctx, dictatorID, contestant)
	})
	if result.alert == nil {
		finishSubmission(w, r, "notice.contestant_created", routepath.DictatorContestants(dictatorID))
		return
	}
	if requestGone(r) {
		return
	}
	view.Alert, view.Token = result.alert, result.token
	h.renderContestantForm(w, r, page, view, result.status)
}

// handleContestantEdit renders the edit page shell and accepts edit posts.
func (h *Handler) handleContestantEdit(w http.ResponseWriter, r *http.Request, dictatorID string, contestantID string) {
	if !httpx.MethodAllowed(w, r, http.MethodGet, http.MethodPost) {
		return
	}
	loc, lang := h.localizer(w, r)
	if r.Method == http.MethodGet {
		page := h.pageContext(w, r, loc, lang)
		htmx.RenderPage(w, r, http.StatusOK, templates.ContestantEditPage(page, dictatorID, contestantID), loc.Sprintf("contestants.edit.heading"))
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
	view := templates.ContestantFormView{
		DictatorID:   dictatorID,
		ContestantID: contestantID,
		Form:         arena.ContestantFormFromValues(r.PostForm),
		Token:        r.PostForm.Get(templates.SubmissionTokenField),
	}
	contestant, errs := view.Form.ValidateUpdate()
	if errs != nil {
		view.Errors = errs
		view.Alert = errorAlert(loc, "error.validation")
		h.renderContestantForm(w, r, page, view, http.StatusUnprocessableEntity)
		return
	}

	if err := h.ownedContestant(r.Context(), dictatorID, contestantID); err != nil {
		log.Printf("update contestant: %v", err)
		if requestGone(r) {
			return
		}
		var status int
		view.Alert, status = ownershipAlert(loc, err, "error.contestant_update")
		h.renderContestantForm(w, r, page, view, status)
		return
	}

	result := h.submit(r, loc, recordForm(formContestantUpdate, contestantID), view.Token, "error.contestant_update", func(ctx context.Context) error {
		return h.backend.UpdateContestant(ctx, contestantID, contestant)
	})
	if result.alert == nil {
		finishSubmission(w, r, "notice.contestant_updated", routepath.DictatorContestants(dictatorID))
		return
	}
	if requestGone(r) {
		return
	}
	view.Alert, view.Token = result.alert, result.token
	h.renderContestantForm(w, r, page, view, result.status)
}

// handleContestantEditForm fetches the contestant and renders its pre-filled form.
func (h *Handler) handleContestantEditForm(w http.ResponseWriter, r *http.Request, dictatorID string, contestantID string) {
	if !httpx.MethodAllowed(w, r, http.MethodGet) {
		return
	}
	loc, _ := h.localizer(w, r)
	if err := h.ownedContestant(r.Context(), dictatorID, contestantID); err != nil {
		log.Printf("load contestant form: %v", err)
		if requestGone(r) {
			return
		}
		alert, _ := ownershipAlert(loc, err, "error.contestant_load")
		htmx.Render(w, r, http.StatusOK, templates.AlertBanner(alert))
		return
	}
	contestant, err := h.backend.GetContestant(r.Context(), contestantID)
	if requestGone(r) {
		return
	}
	if err != nil {
		log.Printf("get contestant %s: %v", contestantID, err)
		htmx.Render(w, r, http.StatusOK, templates.AlertBanner(errorAlert(loc, "error.contestant_load")))
		return
	}
	view := templates.ContestantFormView{
		DictatorID:   dictatorID,
		ContestantID: contestantID,
		Form:         arena.ContestantFormFromRecord(contestant),
	}
	view.Token, view.Alert = h.issueToken(r.Context(), recordForm(formContestantUpdate, contestantID), loc)
	htmx.Render(w, r, http.StatusOK, templates.ContestantForm(view, loc))
}

// handleContestantDelete confirms on GET and deletes on POST, like dictators.
func (h *Handler) handleContestantDelete(w http.ResponseWriter, r *http.Request, dictatorID string, contestantID string) {
	if !httpx.MethodAllowed(w, r, http.MethodGet, http.MethodPost) {
		return
	}
	loc, lang := h.localizer(w, r)
	listURL := routepath.DictatorContestants(dictatorID)
	if r.Method == http.MethodGet {
		page := h.pageContext(w, r, loc, lang)
		htmx.RenderPage(w, r, http.StatusOK, templates.ConfirmDeletePage(page, templates.ConfirmDeleteView{
			Message:   loc.Sprintf("contestants.confirm_delete"),
			Action:    routepath.ContestantDelete(dictatorID, contestantID),
			CancelURL: listURL,
		}), loc.Sprintf("confirm.heading"))
		return
	}

	if !requireSameOrigin(w, r, loc) {
		return
	}
	if err := h.ownedContestant(r.Context(), dictatorID, contestantID); err != nil {
		log.Printf("delete contestant: %v", err)
		key := "error.contestant_delete"
		if errors.Is(err, errNotOwned) {
			key = "error.contestant_not_owned"
		}
		if !htmx.IsHTMXRequest(r) {
			finishDelete(w, r, flash.Error(key), listURL)
			return
		}
		renderDeleteFailure(w, r, errorAlert(loc, key))
		return
	}
	if err := h.backend.DeleteContestant(r.Context(), contestantID); err != nil {
		log.Printf("delete contestant %s: %v", contestantID, err)
		if !htmx.IsHTMXRequest(r) {
			finishDelete(w, r, flash.Error("error.contestant_delete"), listURL)
			return
		}
		renderDeleteFailure(w, r, errorAlert(loc, "error.contestant_delete"))
		return
	}
	if !htmx.IsHTMXRequest(r) {
		finishDelete(w, r, flash.Success("notice.contestant_deleted"), listURL)
		return
	}

	view := h.contestantsTable(r.Context(), loc, dictatorID)
	if requestGone(r) {
		return
	}
	if view.Alert == nil {
		view.Alert = successAlert(loc, "notice.contestant_deleted")
	}
	htmx.Render(w, r, http.StatusOK, templates.ContestantsTable(view, loc))
}

func (h *Handler) renderContestantForm(w http.ResponseWriter, r *http.Request, page templates.PageContext, view templates.ContestantFormView, status int) {
	title := page.Loc.Sprintf("contestants.new.heading")
	if view.Editing() {
		title = page.Loc.Sprintf("contestants.edit.heading")
	}
	htmx.RenderPage(w, r, formStatus(r, status), templates.ContestantFormPage(page, view), title)
}
