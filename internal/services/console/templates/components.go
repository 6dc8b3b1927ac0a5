package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/arenacontrol/internal/services/console/arena"
	"github.com/louisbranch/arenacontrol/internal/services/console/routepath"
)

// htmxScriptURL pins the htmx build the console is tested against.
const htmxScriptURL = "https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js"

// Layout renders the document shell: navigation, language switcher, and a
// <main> element wrapping content. Boosted links and forms swap only <main>.
func Layout(title string, page PageContext, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw("<!doctype html>")
		h.raw("<html")
		h.attr("lang", page.Lang)
		h.raw(`><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.raw("<title>")
		h.text(pageTitle(title, page.Loc))
		h.raw("</title>")
		h.raw(`<link rel="stylesheet"`)
		h.attr("href", routepath.StaticPrefix+"app.css")
		h.raw(`><script defer`)
		h.attr("src", htmxScriptURL)
		h.raw(`></script></head>`)
		h.raw(`<body hx-boost="true" hx-target="#main" hx-swap="innerHTML show:window:top">`)
		h.component(ctx, Nav(page))
		h.raw(`<main id="main" class="container">`)
		if page.Notice != nil {
			h.component(ctx, AlertBanner(page.Notice))
		}
		h.component(ctx, content)
		h.raw("</main></body></html>")
		return h.err
	})
}

// Nav renders the persistent link home and the language switcher. Language
// links reload the whole document so the navigation is translated too.
func Nav(page PageContext) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw(`<nav class="navbar"><a class="brand"`)
		h.attr("href", routepath.Root)
		h.raw(">")
		h.text(T(page.Loc, "nav.home"))
		h.raw(`</a><ul class="languages" hx-boost="false"`)
		h.attr("aria-label", T(page.Loc, "nav.language"))
		h.raw(">")
		for _, option := range page.LanguageOptions() {
			h.raw("<li><a")
			h.urlAttr("href", option.URL)
			h.attr("hreflang", option.Tag)
			if option.Active {
				h.raw(` aria-current="true" class="active"`)
			}
			h.raw(">")
			h.text(option.Label)
			h.raw("</a></li>")
		}
		h.raw("</ul></nav>")
		return h.err
	})
}

// AlertBanner renders a dismissable alert. A nil alert renders nothing.
func AlertBanner(alert *Alert) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if alert == nil || alert.Message == "" {
			return nil
		}
		kind := alert.Kind
		if kind == "" {
			kind = AlertInfo
		}
		h := newHTMLWriter(w)
		role := "status"
		if kind == AlertError || kind == AlertWarning {
			role = "alert"
		}
		h.raw("<div")
		h.attr("role", role)
		h.attr("class", "alert alert-"+string(kind))
		h.raw(">")
		h.elem("span", "", alert.Message)
		h.raw("</div>")
		return h.err
	})
}

// LazyLoad renders a placeholder that replaces itself with the fragment at url.
func LazyLoad(url string, message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw(`<div class="lazy-load" hx-trigger="load" hx-target="this" hx-swap="outerHTML"`)
		h.urlAttr("hx-get", url)
		h.raw(">")
		h.component(ctx, LoadingSpinner())
		h.elem("span", "sr-only", message)
		h.raw("</div>")
		return h.err
	})
}

// LoadingSpinner renders the shared loading indicator.
func LoadingSpinner() templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<span class="loading loading-ring loading-md" aria-hidden="true"></span>`)
		return err
	})
}

func pageTitle(title string, loc Localizer) string {
	app := T(loc, "app.title")
	if title == "" {
		return app
	}
	return title + " | " + app
}

// fieldMessage localizes the error recorded for field, if any.
func fieldMessage(loc Localizer, errs arena.FieldErrors, field string) string {
	fe, ok := errs.For(field)
	if !ok {
		return ""
	}
	return T(loc, fe.Key, fe.Args...)
}

type inputField struct {
	Name     string
	Label    string
	Type     string
	Value    string
	Min      string
	Max      string
	Error    string
	Required bool
}

func (h *htmlWriter) input(f inputField) {
	if f.Type == "" {
		f.Type = "text"
	}
	h.fieldOpen(f.Name, f.Label)
	h.raw("<input")
	h.attr("id", f.Name)
	h.attr("name", f.Name)
	h.attr("type", f.Type)
	if f.Type != "password" {
		h.attr("value", f.Value)
	} else {
		h.raw(` autocomplete="new-password"`)
	}
	if f.Min != "" {
		h.attr("min", f.Min)
	}
	if f.Max != "" {
		h.attr("max", f.Max)
	}
	h.attrIf(f.Required, "required")
	h.fieldInvalid(f.Name, f.Error)
	h.raw(">")
	h.fieldClose(f.Name, f.Error)
}

func (h *htmlWriter) textarea(f inputField) {
	h.fieldOpen(f.Name, f.Label)
	h.raw("<textarea")
	h.attr("id", f.Name)
	h.attr("name", f.Name)
	h.raw(` rows="3"`)
	h.attrIf(f.Required, "required")
	h.fieldInvalid(f.Name, f.Error)
	h.raw(">")
	h.text(f.Value)
	h.raw("</textarea>")
	h.fieldClose(f.Name, f.Error)
}

type selectOption struct {
	Value string
	Label string
}

type selectField struct {
	Name        string
	Label       string
	Placeholder string
	Options     []selectOption
	Selected    string
	Error       string
}

// selectInput renders a select. A placeholder renders as an empty first
// option that submits no value.
func (h *htmlWriter) selectInput(f selectField) {
	h.fieldOpen(f.Name, f.Label)
	h.raw("<select")
	h.attr("id", f.Name)
	h.attr("name", f.Name)
	h.fieldInvalid(f.Name, f.Error)
	h.raw(">")
	if f.Placeholder != "" {
		h.raw(`<option value=""`)
		h.attrIf(f.Selected == "", "selected")
		h.raw(">")
		h.text(f.Placeholder)
		h.raw("</option>")
	}
	for _, option := range f.Options {
		h.raw("<option")
		h.attr("value", option.Value)
		h.attrIf(option.Value == f.Selected, "selected")
		h.raw(">")
		h.text(option.Label)
		h.raw("</option>")
	}
	h.raw("</select>")
	h.fieldClose(f.Name, f.Error)
}

func (h *htmlWriter) fieldOpen(name, label string) {
	h.raw(`<div class="field"><label`)
	h.attr("for", name)
	h.raw(">")
	h.text(label)
	h.raw("</label>")
}

func (h *htmlWriter) fieldInvalid(name, message string) {
	if message == "" {
		return
	}
	h.raw(` aria-invalid="true"`)
	h.attr("aria-describedby", name+"-error")
}

func (h *htmlWriter) fieldClose(name, message string) {
	if message != "" {
		h.raw(`<p class="field-error"`)
		h.attr("id", name+"-error")
		h.raw(">")
		h.text(message)
		h.raw("</p>")
	}
	h.raw("</div>")
}

// formOpen starts a form posting to action. htmx disables the submit button
// while the request is in flight.
func (h *htmlWriter) formOpen(id, action, token string) {
	h.raw("<form")
	h.attr("id", id)
	h.raw(` method="post" novalidate hx-disabled-elt="find button[type=submit]"`)
	h.urlAttr("action", action)
	h.urlAttr("hx-post", action)
	h.raw(">")
	h.raw(`<input type="hidden"`)
	h.attr("name", SubmissionTokenField)
	h.attr("value", token)
	h.raw(">")
}

// formClose writes the submit button. While htmx has the form in flight it
// marks the form with htmx-request, and the stylesheet swaps the button label
// for the submitting one.
func (h *htmlWriter) formClose(submitLabel, submittingLabel string) {
	h.raw(`<button type="submit" class="btn btn-primary">`)
	h.elem("span", "submit-label", submitLabel)
	h.elem("span", "submitting-label", submittingLabel)
	h.raw("</button></form>")
}

// SubmissionTokenField names the hidden field carrying the submission token.
const SubmissionTokenField = "submission_token"
