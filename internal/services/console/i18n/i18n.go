// Package i18n resolves the console language and exposes message printers
// backed by the embedded catalogs.
package i18n

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/louisbranch/arenacontrol/internal/platform/i18n/catalog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the user's language preference.
	LangCookieName = "arena_lang"
)

var supportedTags = []language.Tag{
	language.English,
	language.Spanish,
}

var tagMatcher = language.NewMatcher(supportedTags)
var supportedTagSet = make(map[string]language.Tag, len(supportedTags))

func init() {
	for _, tag := range supportedTags {
		supportedTagSet[tag.String()] = tag
	}
	// Registers the catalogs with x/text before any printer is built.
	catalog.Default()
}

// LanguageOption is one entry of the language switcher.
type LanguageOption struct {
	Tag    string
	Label  string
	URL    string
	Active bool
}

// Supported returns the list of supported language tags.
func Supported() []language.Tag {
	tags := make([]language.Tag, len(supportedTags))
	copy(tags, supportedTags)
	return tags
}

// Default returns the default language tag.
func Default() language.Tag {
	return language.English
}

// Printer returns a message printer for the supplied tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// ResolveTag determines the best language tag for the request.
// The bool indicates whether the lang query param should be persisted as a cookie.
func ResolveTag(r *http.Request) (language.Tag, bool) {
	if r == nil {
		return Default(), false
	}

	if langValue := strings.TrimSpace(r.URL.Query().Get(LangParam)); langValue != "" {
		if tag, ok := parseTag(langValue); ok {
			return tag, true
		}
	}

	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if tag, ok := parseTag(cookie.Value); ok {
			return tag, false
		}
	}

	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			_, index, _ := tagMatcher.Match(tags...)
			return supportedTags[index], false
		}
	}

	return Default(), false
}

// SetLanguageCookie persists the selected language on the response.
func SetLanguageCookie(w http.ResponseWriter, tag language.Tag) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    tag.String(),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

// LanguageOptions lists the supported languages for the switcher, each
// linking to the current page with the lang param set.
func LanguageOptions(active string, path string, rawQuery string, label func(key string) string) []LanguageOption {
	activeTag, ok := parseTag(active)
	if !ok {
		activeTag = Default()
	}
	options := make([]LanguageOption, 0, len(supportedTags))
	for _, tag := range supportedTags {
		text := tag.String()
		if label != nil {
			if resolved := strings.TrimSpace(label("language." + tag.String())); resolved != "" {
				text = resolved
			}
		}
		options = append(options, LanguageOption{
			Tag:    tag.String(),
			Label:  text,
			URL:    LanguageURL(path, rawQuery, tag.String()),
			Active: tag == activeTag,
		})
	}
	return options
}

// LanguageURL returns the current URL with the language param updated.
func LanguageURL(path string, rawQuery string, tag string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		path = "/"
	}
	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		query = url.Values{}
	}
	query.Set(LangParam, tag)
	return (&url.URL{Path: path, RawQuery: query.Encode()}).String()
}

func parseTag(value string) (language.Tag, bool) {
	parsed, err := language.Parse(strings.TrimSpace(value))
	if err != nil {
		return language.Tag{}, false
	}
	if tag, ok := supportedTagSet[parsed.String()]; ok {
		return tag, true
	}
	base, _ := parsed.Base()
	if tag, ok := supportedTagSet[base.String()]; ok {
		return tag, true
	}
	return language.Tag{}, false
}
