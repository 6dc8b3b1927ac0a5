// Package catalog loads translated message catalogs and registers them with
// golang.org/x/text/message.
//
// Catalogs live under locales/<locale>/<namespace>.yaml and use a strict
// subset of YAML: a quoted locale, a quoted namespace, and a flat messages map
// of quoted keys to quoted values.
package catalog

import (
	"bufio"
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// BaseLocale is the locale every other catalog falls back to.
const BaseLocale = "en"

//go:embed locales/*/*.yaml
var embeddedFS embed.FS

var defaultBundle = mustLoadAndRegisterEmbedded()

// Bundle holds every loaded locale.
type Bundle struct {
	// messages is keyed by locale, then message key.
	messages map[string]map[string]string
}

type catalogFile struct {
	Locale    string
	Namespace string
	Messages  map[string]string
}

// Default returns the embedded bundle, already registered.
func Default() *Bundle {
	return defaultBundle
}

// LoadEmbedded loads the catalogs compiled into this package.
func LoadEmbedded() (*Bundle, error) {
	return LoadFromFS(embeddedFS)
}

// LoadFromFS loads every locales/*/*.yaml file of catalogFS. Keys must be
// unique per locale across namespaces.
func LoadFromFS(catalogFS fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(catalogFS, "locales/*/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}
	sort.Strings(paths)

	bundle := &Bundle{messages: map[string]map[string]string{}}
	for _, p := range paths {
		data, err := fs.ReadFile(catalogFS, p)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", p, err)
		}
		file, err := parseCatalogFile(data)
		if err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", p, err)
		}
		if err := bundle.add(p, file); err != nil {
			return nil, err
		}
	}
	if !bundle.HasLocale(BaseLocale) {
		return nil, fmt.Errorf("base locale %s is not defined in catalogs", BaseLocale)
	}
	return bundle, nil
}

func (b *Bundle) add(p string, file catalogFile) error {
	dirLocale := path.Base(path.Dir(p))
	fileNamespace := strings.TrimSuffix(path.Base(p), path.Ext(p))
	if file.Locale != dirLocale {
		return fmt.Errorf("catalog %s: locale %q must match path locale %q", p, file.Locale, dirLocale)
	}
	if file.Namespace != fileNamespace {
		return fmt.Errorf("catalog %s: namespace %q must match filename namespace %q", p, file.Namespace, fileNamespace)
	}

	locale, ok := b.messages[file.Locale]
	if !ok {
		locale = map[string]string{}
		b.messages[file.Locale] = locale
	}
	for key, value := range file.Messages {
		if _, exists := locale[key]; exists {
			return fmt.Errorf("catalog %s: duplicate key %q in locale %q", p, key, file.Locale)
		}
		locale[key] = value
	}
	return nil
}

// Register installs every message with x/text/message. Keys missing from a
// locale are registered with their base locale text.
func (b *Bundle) Register() error {
	if b == nil {
		return nil
	}
	base := b.messages[BaseLocale]
	for _, locale := range b.Locales() {
		tag, err := language.Parse(locale)
		if err != nil {
			return fmt.Errorf("parse locale tag %q: %w", locale, err)
		}
		for key, fallback := range base {
			text, ok := b.messages[locale][key]
			if !ok {
				text = fallback
			}
			if err := message.SetString(tag, key, text); err != nil {
				return fmt.Errorf("register %s %q: %w", locale, key, err)
			}
		}
	}
	return nil
}

// HasLocale reports whether the locale exists in this bundle.
func (b *Bundle) HasLocale(locale string) bool {
	if b == nil {
		return false
	}
	_, ok := b.messages[strings.TrimSpace(locale)]
	return ok
}

// Locales returns all loaded locales, sorted.
func (b *Bundle) Locales() []string {
	if b == nil {
		return nil
	}
	out := make([]string, 0, len(b.messages))
	for locale := range b.messages {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

// Keys returns the sorted message keys of locale.
func (b *Bundle) Keys(locale string) []string {
	if b == nil {
		return nil
	}
	messages := b.messages[strings.TrimSpace(locale)]
	out := make([]string, 0, len(messages))
	for key := range messages {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}

// Message returns one message, falling back to BaseLocale.
func (b *Bundle) Message(locale, key string) (string, bool) {
	if b == nil {
		return "", false
	}
	if value, ok := b.messages[strings.TrimSpace(locale)][key]; ok {
		return value, true
	}
	value, ok := b.messages[BaseLocale][key]
	return value, ok
}

func mustLoadAndRegisterEmbedded() *Bundle {
	bundle, err := LoadEmbedded()
	if err != nil {
		panic(err)
	}
	if err := bundle.Register(); err != nil {
		panic(err)
	}
	return bundle
}

func parseCatalogFile(data []byte) (catalogFile, error) {
	out := catalogFile{Messages: map[string]string{}}
	inMessages := false

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		var err error
		switch {
		case strings.HasPrefix(line, "locale:"):
			out.Locale, err = unquoteAll(strings.TrimPrefix(line, "locale:"))
		case strings.HasPrefix(line, "namespace:"):
			out.Namespace, err = unquoteAll(strings.TrimPrefix(line, "namespace:"))
		case line == "messages:":
			inMessages = true
		case inMessages:
			err = parseEntry(line, out.Messages)
		default:
			err = fmt.Errorf("unexpected content")
		}
		if err != nil {
			return catalogFile{}, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return catalogFile{}, err
	}

	switch {
	case out.Locale == "":
		return catalogFile{}, fmt.Errorf("missing locale")
	case out.Namespace == "":
		return catalogFile{}, fmt.Errorf("missing namespace")
	case len(out.Messages) == 0:
		return catalogFile{}, fmt.Errorf("missing messages")
	}
	return out, nil
}

// parseEntry reads one `"key": "value"` line into messages.
func parseEntry(line string, messages map[string]string) error {
	quotedKey, err := strconv.QuotedPrefix(line)
	if err != nil {
		return fmt.Errorf("expected quoted key: %w", err)
	}
	key, err := strconv.Unquote(quotedKey)
	if err != nil {
		return err
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("message key cannot be blank")
	}
	if _, exists := messages[key]; exists {
		return fmt.Errorf("duplicate key %q", key)
	}

	rest := strings.TrimSpace(line[len(quotedKey):])
	if !strings.HasPrefix(rest, ":") {
		return fmt.Errorf("missing ':' after key %q", key)
	}
	value, err := unquoteAll(strings.TrimPrefix(rest, ":"))
	if err != nil {
		return fmt.Errorf("value of %q: %w", key, err)
	}
	messages[key] = value
	return nil
}

// unquoteAll requires raw to be exactly one quoted string.
func unquoteAll(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	quoted, err := strconv.QuotedPrefix(raw)
	if err != nil {
		return "", fmt.Errorf("expected quoted value: %w", err)
	}
	if quoted != raw {
		return "", fmt.Errorf("unexpected trailing content %q", raw[len(quoted):])
	}
	return strconv.Unquote(quoted)
}
