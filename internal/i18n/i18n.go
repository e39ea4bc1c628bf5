// Package i18n resolves content keys to localized strings.
//
// Catalogs are YAML files embedded at build time, one per language code.
// Callers receive an explicit Translator rather than reaching into a global
// language table.
package i18n

import (
	"embed"
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultLanguage is used when a requested language has no catalog, and as
// the fallback for keys missing from another catalog.
const DefaultLanguage = "en"

// ErrUnknownLanguage is returned by Bundle.Translator for languages without a catalog.
var ErrUnknownLanguage = errors.New("unknown language")

//go:embed locales/*.yaml
var localeFS embed.FS

// Translator maps a content key to a localized string.
type Translator interface {
	T(key string) string
}

// Catalog is the strings of a single language.
type Catalog struct {
	Name    string            `yaml:"name"`
	Strings map[string]string `yaml:"strings"`
}

// Bundle holds every loaded catalog keyed by language code.
type Bundle struct {
	catalogs map[string]Catalog
}

// Load parses the embedded catalogs.
func Load() (*Bundle, error) {
	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("read locales: %w", err)
	}

	b := &Bundle{catalogs: make(map[string]Catalog, len(entries))}
	for _, e := range entries {
		data, err := localeFS.ReadFile(path.Join("locales", e.Name()))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", e.Name(), err)
		}
		lang := strings.TrimSuffix(e.Name(), path.Ext(e.Name()))
		if err := b.Add(lang, data); err != nil {
			return nil, err
		}
	}

	if _, ok := b.catalogs[DefaultLanguage]; !ok {
		return nil, fmt.Errorf("missing %q catalog", DefaultLanguage)
	}
	return b, nil
}

// Add parses a YAML catalog and registers it under lang, replacing any
// existing catalog for that language.
func (b *Bundle) Add(lang string, data []byte) error {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return fmt.Errorf("parse %s catalog: %w", lang, err)
	}
	if c.Strings == nil {
		c.Strings = map[string]string{}
	}
	if b.catalogs == nil {
		b.catalogs = map[string]Catalog{}
	}
	b.catalogs[lang] = c
	return nil
}

// Languages returns the available language codes, sorted.
func (b *Bundle) Languages() []string {
	langs := make([]string, 0, len(b.catalogs))
	for l := range b.catalogs {
		langs = append(langs, l)
	}
	sort.Strings(langs)
	return langs
}

// Translator returns the translator for lang. Region suffixes are ignored,
// so "es-MX" and "es_MX" resolve to "es".
func (b *Bundle) Translator(lang string) (Translator, error) {
	code := normalize(lang)
	if code == "" {
		code = DefaultLanguage
	}

	c, ok := b.catalogs[code]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)",
			ErrUnknownLanguage, lang, strings.Join(b.Languages(), ", "))
	}

	return &translator{
		primary:  c,
		fallback: b.catalogs[DefaultLanguage],
	}, nil
}

func normalize(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(lang, "-_."); i >= 0 {
		lang = lang[:i]
	}
	return lang
}

type translator struct {
	primary  Catalog
	fallback Catalog
}

// T looks the key up in the primary catalog, then the default catalog, and
// finally returns the key itself.
func (t *translator) T(key string) string {
	if s, ok := t.primary.Strings[key]; ok {
		return s
	}
	if s, ok := t.fallback.Strings[key]; ok {
		return s
	}
	return key
}

// Map is a Translator backed by a plain map; missing keys return the key.
type Map map[string]string

func (m Map) T(key string) string {
	if s, ok := m[key]; ok {
		return s
	}
	return key
}
