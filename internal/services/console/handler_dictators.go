package console

import (
	"context"
	"log"
	"net/http"

	"github.com/louisbranch/arenacontrol/internal/services/console/arena"
	"github.com/louisbranch/arenacontrol/internal/services/console/routepath"
	"github.com/louisbranch/arenacontrol/internal/services/console/templates"
	"github.com/louisbranch/arenacontrol/internal/services/shared/flash"
	"github.com/louisbranch/arenacontrol/internal/services/shared/htmx"
	"github.com/louisbranch/arenacontrol/internal/services/shared/httpx"
	"golang.org/x/text/message"
)

const (
	formDictatorCreate = "dictator.create"
	formDictatorUpdate = "dictator.update"
)

// handleDictatorsPage renders the dictators screen shell.
func (h *Handler) handleDictatorsPage(w http.ResponseWriter, r *http.Request) {
	if !httpx.MethodAllowed(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	loc, lang := h.localizer(w, r)
	page := h.pageContext(w, r, loc, lang)
	htmx.RenderPage(w, r, http.StatusOK, templates.DictatorsPage(page), loc.Sprintf("dictators.title"))
}

// handleDictatorsTable fetches dictators and renders the table fragment.
func (h *Handler) handleDictatorsTable(w http.ResponseWriter, r *http.Request) {
	if !httpx.MethodAllowed(w, r, http.MethodGet) {
		return
	}
	loc, _ := h.localizer(w, r)
	view := h.dictatorsTable(r.Context(), loc)
	if requestGone(r) {
		return
	}
	htmx.Render(w, r, http.StatusOK, templates.DictatorsTable(view, loc))
}

func (h *Handler) dictatorsTable(ctx context.Context, loc *message.Printer) templates.DictatorsTableView {
	list, err := h.backend.ListDictators(ctx)
	if err != nil {
		log.Printf("list dictators: %v", err)
		return templates.DictatorsTableView{Alert: errorAlert(loc, "error.dictators_load")}
	}
	return templates.DictatorsTableView{Dictators: list}
}

// handleDictatorCreate renders the new dictator form and accepts its posts.
func (h *Handler) handleDictatorCreate(w http.ResponseWriter, r *http.Request) {
	if !httpx.MethodAllowed(w, r, http.MethodGet, http.MethodPost) {
		return
	}
	loc, lang := h.localizer(w, r)
	if r.Method == http.MethodGet {
		page := h.pageContext(w, r, loc, lang)
		view := templates.DictatorFormView{}
		view.Token, view.Alert = h.issueToken(r.Context(), formDictatorCreate, loc)
		h.renderDictatorForm(w, r, page, view, http.StatusOK)
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
	view := templates.DictatorFormView{
		Form:  arena.DictatorFormFromValues(r.PostForm),
		Token: r.PostForm.Get(templates.SubmissionTokenField),
	}
	dictator, errs := view.Form.Validate()
	if errs != nil {
		view.Errors = errs
		view.Alert = errorAlert(loc, "error.validation")
		h.renderDictatorForm(w, r, page, view, http.StatusUnprocessableEntity)
		return
	}

	result := h.submit(r, loc, formDictatorCreate, view.Token, "error.dictator_create", func(ctx context.Context) error {
		return h.backend.CreateDictator(ctx, dictator)
	})
	if result.alert == nil {
		finishSubmission(w, r, "notice.dictator_created", routepath.Dictators)
		return
	}
	if requestGone(r) {
		return
	}
	view.Alert, view.Token = result.alert, result.token
	h.renderDictatorForm(w, r, page, view, result.status)
}

// handleDictatorEdit renders the edit page shell and accepts edit posts.
func (h *Handler) handleDictatorEdit(w http.ResponseWriter, r *http.Request, dictatorID string) {
	if !httpx.MethodAllowed(w, r, http.MethodGet, http.MethodPost) {
		return
	}
	loc, lang := h.localizer(w, r)
	if r.Method == http.MethodGet {
		page := h.pageContext(w, r, loc, lang)
		htmx.RenderPage(w, r, http.StatusOK, templates.DictatorEditPage(page, dictatorID), loc.Sprintf("dictators.edit.heading"))
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
	view := templates.DictatorFormView{
		DictatorID: dictatorID,
		Form:       arena.DictatorFormFromValues(r.PostForm),
		Token:      r.PostForm.Get(templates.SubmissionTokenField),
	}
	dictator, errs := view.Form.Validate()
	if errs != nil {
		view.Errors = errs
		view.Alert = errorAlert(loc, "error.validation")
		h.renderDictatorForm(w, r, page, view, http.StatusUnprocessableEntity)
		return
	}

	result := h.submit(r, loc, recordForm(formDictatorUpdate, dictatorID), view.Token, "error.dictator_update", func(ctx context.Context) error {
		return h.backend.UpdateDictator(ctx, dictatorID, dictator)
	})
	if result.alert == nil {
		finishSubmission(w, r, "notice.dictator_updated", routepath.Dictators)
		return
	}
	if requestGone(r) {
		return
	}
	view.Alert, view.Token = result.alert, result.token
	h.renderDictatorForm(w, r, page, view, result.status)
}

// handleDictatorEditForm fetches the dictator and renders its pre-filled form.
// The password is never pre-filled.
func (h *Handler) handleDictatorEditForm(w http.ResponseWriter, r *http.Request, dictatorID string) {
	if !httpx.MethodAllowed(w, r, http.MethodGet) {
		return
	}
	loc, _ := h.localizer(w, r)
	dictator, err := h.backend.GetDictator(r.Context(), dictatorID)
	if requestGone(r) {
		return
	}
	if err != nil {
		log.Printf("get dictator %s: %v", dictatorID, err)
		htmx.Render(w, r, http.StatusOK, templates.AlertBanner(errorAlert(loc, "error.dictator_load")))
		return
	}
	view := templates.DictatorFormView{
		DictatorID: dictatorID,
		Form:       arena.DictatorFormFromRecord(dictator),
	}
	view.Token, view.Alert = h.issueToken(r.Context(), recordForm(formDictatorUpdate, dictatorID), loc)
	htmx.Render(w, r, http.StatusOK, templates.DictatorForm(view, loc))
}

// handleDictatorDelete confirms on GET and deletes on POST. An htmx delete
// re-fetches the list once and swaps the table; a plain delete redirects.
func (h *Handler) handleDictatorDelete(w http.ResponseWriter, r *http.Request, dictatorID string) {
	if !httpx.MethodAllowed(w, r, http.MethodGet, http.MethodPost) {
		return
	}
	loc, lang := h.localizer(w, r)
	if r.Method == http.MethodGet {
		page := h.pageContext(w, r, loc, lang)
		htmx.RenderPage(w, r, http.StatusOK, templates.ConfirmDeletePage(page, templates.ConfirmDeleteView{
			Message:   loc.Sprintf("dictators.confirm_delete"),
			Action:    routepath.DictatorDelete(dictatorID),
			CancelURL: routepath.Dictators,
		}), loc.Sprintf("confirm.heading"))
		return
	}

	if !requireSameOrigin(w, r, loc) {
		return
	}
	if err := h.backend.DeleteDictator(r.Context(), dictatorID); err != nil {
		log.Printf("delete dictator %s: %v", dictatorID, err)
		if !htmx.IsHTMXRequest(r) {
			finishDelete(w, r, flash.Error("error.dictator_delete"), routepath.Dictators)
			return
		}
		renderDeleteFailure(w, r, errorAlert(loc, "error.dictator_delete"))
		return
	}
	if !htmx.IsHTMXRequest(r) {
		finishDelete(w, r, flash.Success("notice.dictator_deleted"), routepath.Dictators)
		return
	}

	view := h.dictatorsTable(r.Context(), loc)
	if requestGone(r) {
		return
	}
	if view.Alert == nil {
		view.Alert = successAlert(loc, "notice.dictator_deleted")
	}
	htmx.Render(w, r, http.StatusOK, templates.DictatorsTable(view, loc))
}

func (h *Handler) renderDictatorForm(w http.ResponseWriter, r *http.Request, page templates.PageContext, view templates.DictatorFormView, status int) {
	title := page.Loc.Sprintf("dictators.new.heading")
	if view.Editing() {
		title = page.Loc.Sprintf("dictators.edit.heading")
	}
	htmx.RenderPage(w, r, formStatus(r, status), templates.DictatorFormPage(page, view), title)
}
