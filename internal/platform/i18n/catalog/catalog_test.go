package catalog

import (
	"strings"
	"testing"
	"testing/fstest"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func TestLoadEmbeddedLocalesShareKeys(t *testing.T) {
	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	for _, locale := range []string{"en", "es"} {
		if !bundle.HasLocale(locale) {
			t.Fatalf("missing locale %s", locale)
		}
	}

	base := bundle.Keys(BaseLocale)
	if len(base) == 0 {
		t.Fatal("expected base messages")
	}
	spanish := map[string]bool{}
	for _, key := range bundle.Keys("es") {
		spanish[key] = true
	}
	for _, key := range base {
		if !spanish[key] {
			t.Errorf("es catalog missing %q", key)
		}
	}
	if len(spanish) != len(base) {
		t.Errorf("es has %d keys, en has %d", len(spanish), len(base))
	}
}

func TestDefaultRegistersPrinterMessages(t *testing.T) {
	Default()

	en := message.NewPrinter(language.English)
	if got := en.Sprintf("validation.password_min", 12); got != "Password must be at least 12 characters" {
		t.Fatalf("en = %q", got)
	}
	es := message.NewPrinter(language.Spanish)
	if got := es.Sprintf("contestants.heading", "Carolina"); got != "🧍 Concursantes de Carolina" {
		t.Fatalf("es = %q", got)
	}
}

func TestMessageFallsBackToBaseLocale(t *testing.T) {
	bundle, err := LoadFromFS(fstest.MapFS{
		"locales/en/console.yaml": {Data: []byte("locale: \"en\"\nnamespace: \"console\"\nmessages:\n  \"a\": \"A\"\n  \"b\": \"B\"\n")},
		"locales/es/console.yaml": {Data: []byte("locale: \"es\"\nnamespace: \"console\"\nmessages:\n  \"a\": \"Á\"\n")},
	})
	if err != nil {
		t.Fatalf("LoadFromFS: %v", err)
	}
	if got, _ := bundle.Message("es", "a"); got != "Á" {
		t.Fatalf("es a = %q", got)
	}
	if got, ok := bundle.Message("es", "b"); !ok || got != "B" {
		t.Fatalf("es b = %q %v, want base fallback", got, ok)
	}
	if _, ok := bundle.Message("es", "missing"); ok {
		t.Fatal("missing key reported present")
	}
}

func TestLoadFromFSRejectsBadCatalogs(t *testing.T) {
	tests := []struct {
		name string
		fs   fstest.MapFS
		want string
	}{
		{
			name: "no files",
			fs:   fstest.MapFS{},
			want: "no catalog files",
		},
		{
			name: "missing base locale",
			fs: fstest.MapFS{
				"locales/es/console.yaml": {Data: []byte("locale: \"es\"\nnamespace: \"console\"\nmessages:\n  \"a\": \"x\"\n")},
			},
			want: "base locale",
		},
		{
			name: "locale mismatch",
			fs: fstest.MapFS{
				"locales/en/console.yaml": {Data: []byte("locale: \"es\"\nnamespace: \"console\"\nmessages:\n  \"a\": \"x\"\n")},
			},
			want: "must match path locale",
		},
		{
			name: "duplicate across namespaces",
			fs: fstest.MapFS{
				"locales/en/a.yaml": {Data: []byte("locale: \"en\"\nnamespace: \"a\"\nmessages:\n  \"k\": \"x\"\n")},
				"locales/en/b.yaml": {Data: []byte("locale: \"en\"\nnamespace: \"b\"\nmessages:\n  \"k\": \"y\"\n")},
			},
			want: "duplicate key",
		},
		{
			name: "unquoted value",
			fs: fstest.MapFS{
				"locales/en/console.yaml": {Data: []byte("locale: \"en\"\nnamespace: \"console\"\nmessages:\n  \"a\": x\n")},
			},
			want: "expected quoted value",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadFromFS(tc.fs)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("err = %v, want %q", err, tc.want)
			}
		})
	}
}

func TestParseCatalogFileSkipsCommentsAndEscapes(t *testing.T) {
	file, err := parseCatalogFile([]byte("# header\nlocale: \"en\"\nnamespace: \"console\"\n\nmessages:\n  # group\n  \"quote\": \"say \\\"hi\\\"\"\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := file.Messages["quote"]; got != `say "hi"` {
		t.Fatalf("quote = %q", got)
	}
}
