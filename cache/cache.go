// Package cache provides translation caching implementations.
//
// Keys are "<lang>:<translation key>" as built by locdisplay.CacheKey. An
// empty value is a cached negative result ("no translation available").
package cache

// TranslationCache is the interface for translation caching.
type TranslationCache interface {
	// Get retrieves a cached translation. Returns empty string and false if not found or expired.
	Get(key string) (string, bool)

	// Set stores a translation in the cache.
	Set(key string, value string) error

	// Clear drops every entry, e.g. at the start of a new session.
	Clear() error
}

// EnumerableCache is a cache whose contents can be listed for export.
type EnumerableCache interface {
	TranslationCache

	// Entries returns all live entries as key-value pairs.
	Entries() (map[string]string, error)
}
