package locdisplay

import (
	"strconv"
	"strings"
)

// levelToken is the substitution token left behind by a template lookup that
// did not receive its level parameter.
const levelToken = "{{level}}"

// CacheKey generates a cache key from a target language and lookup key.
func CacheKey(lang, key string) string {
	return lang + ":" + key
}

// LocationKey builds the translation key for a location base name.
// Spaces and periods are replaced with underscores.
func LocationKey(base string) string {
	return "location." + normalizeKey(base)
}

// LevelKey builds the cache key for one level of a parametric location.
func LevelKey(prefix string, level int) string {
	return prefix + "_Level_" + strconv.Itoa(level)
}

// levelTemplateKey is the translation key of a parametric family's template.
func levelTemplateKey(prefix string) string {
	return "location." + prefix + "_Level"
}

func normalizeKey(s string) string {
	return strings.NewReplacer(" ", "_", ".", "_").Replace(s)
}
