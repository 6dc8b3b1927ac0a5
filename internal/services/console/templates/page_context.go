package templates

import "github.com/louisbranch/arenacontrol/internal/services/console/i18n"

// AlertKind selects the alert banner style.
type AlertKind string

const (
	AlertSuccess AlertKind = "success"
	AlertInfo    AlertKind = "info"
	AlertWarning AlertKind = "warning"
	AlertError   AlertKind = "error"
)

// Alert is an already localized banner message.
type Alert struct {
	Kind    AlertKind
	Message string
}

// PageContext provides shared layout context for console pages.
type PageContext struct {
	Lang         string
	Loc          Localizer
	CurrentPath  string
	CurrentQuery string
	// Notice is a one-time alert carried over from a redirect.
	Notice *Alert
}

// LanguageOptions returns the language switcher entries for the page.
func (p PageContext) LanguageOptions() []i18n.LanguageOption {
	return i18n.LanguageOptions(p.Lang, p.CurrentPath, p.CurrentQuery, func(key string) string {
		return T(p.Loc, key)
	})
}
