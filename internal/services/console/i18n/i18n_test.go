package i18n

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"golang.org/x/text/language"
)

func TestResolveTag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		target      string
		cookie      string
		accept      string
		want        language.Tag
		wantPersist bool
	}{
		{name: "default", target: "/", want: language.English},
		{name: "query wins", target: "/?lang=es", cookie: "en", accept: "en", want: language.Spanish, wantPersist: true},
		{name: "regional query", target: "/?lang=es-MX", want: language.Spanish, wantPersist: true},
		{name: "unsupported query falls through", target: "/?lang=fr", cookie: "es", want: language.Spanish},
		{name: "cookie", target: "/", cookie: "es", accept: "en", want: language.Spanish},
		{name: "accept language", target: "/", accept: "es-AR,es;q=0.9,en;q=0.5", want: language.Spanish},
		{name: "accept unsupported", target: "/", accept: "de-DE", want: language.English},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: LangCookieName, Value: tc.cookie})
			}
			if tc.accept != "" {
				req.Header.Set("Accept-Language", tc.accept)
			}
			got, persist := ResolveTag(req)
			if got != tc.want {
				t.Fatalf("tag = %v, want %v", got, tc.want)
			}
			if persist != tc.wantPersist {
				t.Fatalf("persist = %v, want %v", persist, tc.wantPersist)
			}
		})
	}
}

func TestSetLanguageCookie(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	SetLanguageCookie(rec, language.Spanish)
	header := rec.Header().Get("Set-Cookie")
	if !strings.Contains(header, LangCookieName+"=es") {
		t.Fatalf("Set-Cookie = %q", header)
	}
	SetLanguageCookie(nil, language.Spanish)
}

func TestPrinterUsesCatalog(t *testing.T) {
	t.Parallel()

	if got := Printer(language.Spanish).Sprintf("nav.language"); got != "Idioma" {
		t.Fatalf("es nav.language = %q", got)
	}
	if got := Printer(language.English).Sprintf("battles.unknown"); got != "Unknown" {
		t.Fatalf("en battles.unknown = %q", got)
	}
}

func TestLanguageOptions(t *testing.T) {
	t.Parallel()

	labels := map[string]string{"language.en": "English", "language.es": "Español"}
	options := LanguageOptions("es", "/dictators", "page=2&lang=en", func(key string) string { return labels[key] })
	if len(options) != 2 {
		t.Fatalf("options = %d", len(options))
	}
	if options[0].Active || !options[1].Active {
		t.Fatalf("active = %+v", options)
	}
	if options[1].Label != "Español" {
		t.Fatalf("label = %q", options[1].Label)
	}
	if options[0].URL != "/dictators?lang=en&page=2" {
		t.Fatalf("url = %q", options[0].URL)
	}
}

func TestLanguageURLDefaultsPath(t *testing.T) {
	t.Parallel()

	if got := LanguageURL("", "%zz", "es"); got != "/?lang=es" {
		t.Fatalf("LanguageURL = %q", got)
	}
}
