package console

import (
	"net/http"
)

func (h *Handler) HandleHome(w http.ResponseWriter, r *http.Request) {
	h.handleHome(w, r)
}

func (h *Handler) HandleDictatorsPage(w http.ResponseWriter, r *http.Request) {
	h.handleDictatorsPage(w, r)
}

func (h *Handler) HandleDictatorsTable(w http.ResponseWriter, r *http.Request) {
	h.handleDictatorsTable(w, r)
}

func (h *Handler) HandleDictatorCreate(w http.ResponseWriter, r *http.Request) {
	h.handleDictatorCreate(w, r)
}

func (h *Handler) HandleDictatorEdit(w http.ResponseWriter, r *http.Request, dictatorID string) {
	h.handleDictatorEdit(w, r, dictatorID)
}

func (h *Handler) HandleDictatorEditForm(w http.ResponseWriter, r *http.Request, dictatorID string) {
	h.handleDictatorEditForm(w, r, dictatorID)
}

func (h *Handler) HandleDictatorDelete(w http.ResponseWriter, r *http.Request, dictatorID string) {
	h.handleDictatorDelete(w, r, dictatorID)
}

func (h *Handler) HandleContestantsPage(w http.ResponseWriter, r *http.Request, dictatorID string) {
	h.handleContestantsPage(w, r, dictatorID)
}

func (h *Handler) HandleContestantsTable(w http.ResponseWriter, r *http.Request, dictatorID string) {
	h.handleContestantsTable(w, r, dictatorID)
}

func (h *Handler) HandleContestantCreate(w http.ResponseWriter, r *http.Request, dictatorID string) {
	h.handleContestantCreate(w, r, dictatorID)
}

func (h *Handler) HandleContestantEdit(w http.ResponseWriter, r *http.Request, dictatorID string, contestantID string) {
	h.handleContestantEdit(w, r, dictatorID, contestantID)
}

func (h *Handler) HandleContestantEditForm(w http.ResponseWriter, r *http.Request, dictatorID string, contestantID string) {
	h.handleContestantEditForm(w, r, dictatorID, contestantID)
}

func (h *Handler) HandleContestantDelete(w http.ResponseWriter, r *http.Request, dictatorID string, contestantID string) {
	h.handleContestantDelete(w, r, dictatorID, contestantID)
}

func (h *Handler) HandleBattlesHub(w http.ResponseWriter, r *http.Request) {
	h.handleBattlesHub(w, r)
}

func (h *Handler) HandleBattleCreate(w http.ResponseWriter, r *http.Request) {
	h.handleBattleCreate(w, r)
}

func (h *Handler) HandleBattleHistory(w http.ResponseWriter, r *http.Request) {
	h.handleBattleHistory(w, r)
}

func (h *Handler) HandleBattleHistoryTable(w http.ResponseWriter, r *http.Request) {
	h.handleBattleHistoryTable(w, r)
}
