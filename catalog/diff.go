package catalog

import (
	"sort"

	"github.com/ZaguanLabs/locdisplay"
)

// DiffResult compares a translated catalog against the default one.
type DiffResult struct {
	// Missing keys exist in the base catalog but not in the target.
	Missing []string

	// Extra keys exist only in the target; usually stale renames.
	Extra []string

	// Untranslated keys carry the same non-empty text as the base.
	Untranslated []string
}

// DiffStats contains summary statistics for a diff.
type DiffStats struct {
	Missing      int
	Extra        int
	Untranslated int
	Translated   int
}

// Stats returns summary statistics for the diff.
func (d *DiffResult) Stats(base map[string]string) DiffStats {
	return DiffStats{
		Missing:      len(d.Missing),
		Extra:        len(d.Extra),
		Untranslated: len(d.Untranslated),
		Translated:   len(base) - len(d.Missing) - len(d.Untranslated),
	}
}

// HasChanges returns true if the target needs attention.
func (d *DiffResult) HasChanges() bool {
	return len(d.Missing) > 0 || len(d.Extra) > 0 || len(d.Untranslated) > 0
}

// Diff compares target against base. All key lists are sorted.
func Diff(base, target map[string]string) *DiffResult {
	result := &DiffResult{}

	for key, text := range base {
		translated, ok := target[key]
		switch {
		case !ok:
			result.Missing = append(result.Missing, key)
		case text != "" && translated == text:
			result.Untranslated = append(result.Untranslated, key)
		}
	}

	for key := range target {
		if _, ok := base[key]; !ok {
			result.Extra = append(result.Extra, key)
		}
	}

	sort.Strings(result.Missing)
	sort.Strings(result.Extra)
	sort.Strings(result.Untranslated)
	return result
}

// DiffLanguage compares the catalog for lang against the default catalog.
func (c *Catalog) DiffLanguage(lang string) *DiffResult {
	return Diff(c.Entries(locdisplay.DefaultLanguage), c.Entries(lang))
}
