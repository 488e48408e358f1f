package locdisplay

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// DefaultLanguage is the tag of the untranslated catalog.
const DefaultLanguage = "default"

// NormalizeLanguage canonicalises a language tag so that "de_DE", "de-de" and
// "DE-DE" share cache entries. Unparseable tags are returned trimmed; the
// empty tag becomes DefaultLanguage.
func NormalizeLanguage(lang string) string {
	lang = strings.TrimSpace(lang)
	if lang == "" || strings.EqualFold(lang, DefaultLanguage) {
		return DefaultLanguage
	}

	tag, err := language.Parse(strings.ReplaceAll(lang, "_", "-"))
	if err != nil {
		return lang
	}
	return tag.String()
}

// BaseLanguage extracts the base language code (e.g., "pt" from "pt-BR").
func BaseLanguage(lang string) string {
	lang = NormalizeLanguage(lang)
	if lang == DefaultLanguage {
		return lang
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return lang
	}
	base, _ := tag.Base()
	return base.String()
}

// FallbackChain lists the catalogs consulted for lang, most specific first,
// always ending with DefaultLanguage.
func FallbackChain(lang string) []string {
	lang = NormalizeLanguage(lang)
	if lang == DefaultLanguage {
		return []string{DefaultLanguage}
	}

	chain := []string{lang}
	if base := BaseLanguage(lang); base != lang {
		chain = append(chain, base)
	}
	return append(chain, DefaultLanguage)
}

// LanguageName returns the English name for a language tag.
// Falls back to the tag itself if it is not recognised.
func LanguageName(lang string) string {
	lang = NormalizeLanguage(lang)
	if lang == DefaultLanguage {
		return "Default"
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return lang
	}
	if name := display.English.Tags().Name(tag); name != "" {
		return name
	}
	return lang
}
