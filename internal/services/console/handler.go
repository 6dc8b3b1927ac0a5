package console

import (
	"context"
	"embed"
	"errors"
	"io/fs"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/louisbranch/arenacontrol/internal/services/console/arena"
	"github.com/louisbranch/arenacontrol/internal/services/console/backend"
	"github.com/louisbranch/arenacontrol/internal/services/console/i18n"
	"github.com/louisbranch/arenacontrol/internal/services/console/module/battles"
	"github.com/louisbranch/arenacontrol/internal/services/console/module/dictators"
	"github.com/louisbranch/arenacontrol/internal/services/console/module/home"
	"github.com/louisbranch/arenacontrol/internal/services/console/routepath"
	"github.com/louisbranch/arenacontrol/internal/services/console/submission"
	"github.com/louisbranch/arenacontrol/internal/services/console/templates"
	"github.com/louisbranch/arenacontrol/internal/services/shared/flash"
	"github.com/louisbranch/arenacontrol/internal/services/shared/htmx"
	"github.com/louisbranch/arenacontrol/internal/services/shared/httpx"
	"golang.org/x/text/message"
)

//go:embed static
var staticAssets embed.FS

// Backend is the REST surface the console reads and writes through.
type Backend interface {
	ListDictators(ctx context.Context) ([]arena.Dictator, error)
	GetDictator(ctx context.Context, id string) (arena.Dictator, error)
	CreateDictator(ctx context.Context, d arena.Dictator) error
	UpdateDictator(ctx context.Context, id string, d arena.Dictator) error
	DeleteDictator(ctx context.Context, id string) error
	ListDictatorContestants(ctx context.Context, dictatorID string) ([]arena.Contestant, error)
	CreateContestant(ctx context.Context, dictatorID string, c arena.Contestant) error
	ListContestants(ctx context.Context) ([]arena.Contestant, error)
	GetContestant(ctx context.Context, id string) (arena.Contestant, error)
	UpdateContestant(ctx context.Context, id string, c arena.Contestant) error
	DeleteContestant(ctx context.Context, id string) error
	ListBattles(ctx context.Context) ([]arena.Battle, error)
	CreateBattle(ctx context.Context, b arena.Battle) error
}

// SubmissionGate hands out form tokens and admits each token once.
type SubmissionGate interface {
	Issue(ctx context.Context, form string) (string, error)
	Begin(ctx context.Context, token, form string) error
	Settle(ctx context.Context, token string, ok bool) error
}

// Handler serves every console screen and fragment.
type Handler struct {
	backend Backend
	gate    SubmissionGate
}

// NewHandler builds the HTTP handler for the console server.
func NewHandler(client Backend, gate SubmissionGate) http.Handler {
	handler := &Handler{backend: client, gate: gate}
	return handler.routes()
}

// routes wires the HTTP routes for the console handler.
func (h *Handler) routes() http.Handler {
	mux := http.NewServeMux()
	static, err := fs.Sub(staticAssets, "static")
	if err != nil {
		log.Printf("console static assets: %v", err)
	} else {
		fileServer := http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(static)))
		mux.Handle(routepath.StaticPrefix, httpx.Chain(fileServer, httpx.RequireMethod(http.MethodGet, http.MethodHead)))
	}
	home.RegisterRoutes(mux, h)
	dictators.RegisterRoutes(mux, h)
	battles.RegisterRoutes(mux, h)
	return httpx.Chain(mux, httpx.RecoverPanic(), httpx.RequestID())
}

func (h *Handler) localizer(w http.ResponseWriter, r *http.Request) (*message.Printer, string) {
	tag, persist := i18n.ResolveTag(r)
	if persist {
		i18n.SetLanguageCookie(w, tag)
	}
	return i18n.Printer(tag), tag.String()
}

// pageContext builds the layout context and consumes any pending flash notice.
func (h *Handler) pageContext(w http.ResponseWriter, r *http.Request, loc *message.Printer, lang string) templates.PageContext {
	page := templates.PageContext{
		Lang:         lang,
		Loc:          loc,
		CurrentPath:  r.URL.Path,
		CurrentQuery: withoutLang(r.URL.RawQuery),
	}
	if notice, ok := flash.ReadAndClear(w, r); ok {
		page.Notice = &templates.Alert{Kind: templates.AlertKind(notice.Kind), Message: loc.Sprintf(notice.Key)}
	}
	return page
}

func withoutLang(rawQuery string) string {
	if rawQuery == "" {
		return ""
	}
	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		return ""
	}
	query.Del(i18n.LangParam)
	return query.Encode()
}

func errorAlert(loc *message.Printer, key string) *templates.Alert {
	return &templates.Alert{Kind: templates.AlertError, Message: loc.Sprintf(key)}
}

func successAlert(loc *message.Printer, key string) *templates.Alert {
	return &templates.Alert{Kind: templates.AlertSuccess, Message: loc.Sprintf(key)}
}

// requestGone reports whether the browser went away; late results are
// dropped instead of rendered.
func requestGone(r *http.Request) bool {
	return r.Context().Err() != nil
}

// issueToken returns a fresh submission token for form. When the gate fails
// the form still renders, with an alert and no token.
func (h *Handler) issueToken(ctx context.Context, form string, loc *message.Printer) (string, *templates.Alert) {
	token, err := h.gate.Issue(ctx, form)
	if err != nil {
		log.Printf("issue submission token %s: %v", form, err)
		return "", errorAlert(loc, "error.submission")
	}
	return token, nil
}

// submitResult describes how a gated submission ended.
type submitResult struct {
	// alert is nil on success.
	alert  *templates.Alert
	status int
	// token is the token the re-rendered form should carry.
	token string
}

// recordForm scopes a form name to the records it writes under.
func recordForm(form string, ids ...string) string {
	return strings.Join(append([]string{form}, ids...), ":")
}

// submit admits token through the gate, runs call, and settles the token.
// The backend is never called for tokens that are in flight, settled,
// unknown, or issued for another form.
func (h *Handler) submit(r *http.Request, loc *message.Printer, form, token, failureKey string, call func(context.Context) error) submitResult {
	ctx := r.Context()
	if err := h.gate.Begin(ctx, token, form); err != nil {
		switch {
		case errors.Is(err, submission.ErrInFlight):
			return submitResult{alert: warningAlert(loc, "warning.submission_in_flight"), status: http.StatusConflict, token: token}
		case errors.Is(err, submission.ErrSettled):
			return submitResult{alert: warningAlert(loc, "warning.submission_settled"), status: http.StatusConflict, token: token}
		case errors.Is(err, submission.ErrUnknownToken), errors.Is(err, submission.ErrFormMismatch):
			fresh, alert := h.issueToken(ctx, form, loc)
			if alert == nil {
				alert = warningAlert(loc, "warning.submission_unknown")
			}
			return submitResult{alert: alert, status: http.StatusConflict, token: fresh}
		default:
			log.Printf("begin submission %s: %v", form, err)
			return submitResult{alert: errorAlert(loc, failureKey), status: http.StatusInternalServerError, token: token}
		}
	}

	callErr := call(ctx)
	// Settling must outlive a cancelled request or the token stays in flight.
	settleCtx := context.WithoutCancel(ctx)
	if err := h.gate.Settle(settleCtx, token, callErr == nil); err != nil {
		log.Printf("settle submission %s: %v", form, err)
	}
	if callErr != nil {
		log.Printf("%s: backend status %d: %v", form, backend.StatusCode(callErr), callErr)
		return submitResult{alert: errorAlert(loc, failureKey), status: http.StatusBadGateway, token: token}
	}
	return submitResult{token: token}
}

func warningAlert(loc *message.Printer, key string) *templates.Alert {
	return &templates.Alert{Kind: templates.AlertWarning, Message: loc.Sprintf(key)}
}

// formStatus keeps htmx swaps at 200, since htmx does not swap error responses.
func formStatus(r *http.Request, status int) int {
	if htmx.IsHTMXRequest(r) {
		return http.StatusOK
	}
	return status
}

// finishSubmission stores notice and sends the browser to location.
func finishSubmission(w http.ResponseWriter, r *http.Request, noticeKey, location string) {
	flash.Write(w, r, flash.Success(noticeKey))
	httpx.WriteRedirect(w, r, location)
}

// finishDelete answers a delete that happened outside htmx: the result is
// flashed and the browser returns to the list.
func finishDelete(w http.ResponseWriter, r *http.Request, notice flash.Notice, location string) {
	flash.Write(w, r, notice)
	httpx.WriteRedirect(w, r, location)
}

// renderDeleteFailure keeps the current table and inserts an alert at its top.
func renderDeleteFailure(w http.ResponseWriter, r *http.Request, alert *templates.Alert) {
	w.Header().Set("HX-Reswap", "afterbegin")
	htmx.Render(w, r, http.StatusOK, templates.AlertBanner(alert))
}

func requireSameOrigin(w http.ResponseWriter, r *http.Request, loc *message.Printer) bool {
	if r == nil {
		http.Error(w, loc.Sprintf("error.csrf_invalid"), http.StatusForbidden)
		return false
	}
	if origin := strings.TrimSpace(r.Header.Get("Origin")); origin != "" {
		if !sameOrigin(origin, r) {
			http.Error(w, loc.Sprintf("error.csrf_invalid"), http.StatusForbidden)
			return false
		}
		return true
	}
	if referer := strings.TrimSpace(r.Referer()); referer != "" {
		if !sameOrigin(referer, r) {
			http.Error(w, loc.Sprintf("error.csrf_invalid"), http.StatusForbidden)
			return false
		}
		return true
	}
	http.Error(w, loc.Sprintf("error.csrf_invalid"), http.StatusForbidden)
	return false
}

func sameOrigin(rawURL string, r *http.Request) bool {
	if rawURL == "" || rawURL == "null" || r == nil {
		return false
	}
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return false
	}
	if !strings.EqualFold(parsed.Host, r.Host) {
		return false
	}
	if parsed.Scheme != "" {
		return strings.EqualFold(parsed.Scheme, requestScheme(r))
	}
	return true
}

func requestScheme(r *http.Request) string {
	if r == nil {
		return "http"
	}
	if proto := strings.TrimSpace(r.Header.Get("X-Forwarded-Proto")); proto != "" {
		parts := strings.Split(proto, ",")
		return strings.ToLower(strings.TrimSpace(parts[0]))
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}
