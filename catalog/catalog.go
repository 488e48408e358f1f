// Package catalog provides file-backed translation catalogs for location
// names, laid out the way game mods ship them: one flat JSON object per
// language under an i18n directory ("default.json", "de.json", ...).
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/ZaguanLabs/locdisplay"
)

// Catalog holds translations per normalized language tag.
type Catalog struct {
	mu    sync.RWMutex
	langs map[string]map[string]string
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{langs: make(map[string]map[string]string)}
}

// Add merges entries into the catalog for lang. Later entries overwrite
// earlier ones.
func (c *Catalog) Add(lang string, entries map[string]string) {
	lang = locdisplay.NormalizeLanguage(lang)

	c.mu.Lock()
	defer c.mu.Unlock()

	dst, ok := c.langs[lang]
	if !ok {
		dst = make(map[string]string, len(entries))
		c.langs[lang] = dst
	}
	for k, v := range entries {
		dst[k] = v
	}
}

// Languages returns the loaded language tags in sorted order.
func (c *Catalog) Languages() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	langs := make([]string, 0, len(c.langs))
	for lang := range c.langs {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// Entries returns a copy of the entries for exactly lang, without fallback.
func (c *Catalog) Entries(lang string) map[string]string {
	lang = locdisplay.NormalizeLanguage(lang)

	c.mu.RLock()
	defer c.mu.RUnlock()

	src := c.langs[lang]
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

// Lookup translates key for lang. Languages are tried along
// locdisplay.FallbackChain; the first catalog that has the key decides the
// result, so an empty entry in a specific language is reported as empty
// rather than falling back.
func (c *Catalog) Lookup(lang, key string, params map[string]any) locdisplay.LookupResult {
	return c.lookup(locdisplay.FallbackChain(lang), key, params)
}

func (c *Catalog) lookup(chain []string, key string, params map[string]any) locdisplay.LookupResult {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, l := range chain {
		text, ok := c.langs[l][key]
		if !ok {
			continue
		}
		if strings.TrimSpace(text) == "" {
			return locdisplay.LookupEmpty()
		}
		return locdisplay.LookupFound(substitute(text, params))
	}
	return locdisplay.LookupNotFound()
}

// For returns a Lookup bound to lang.
func (c *Catalog) For(lang string) locdisplay.Lookup {
	return locdisplay.LookupFunc(func(key string, params map[string]any) locdisplay.LookupResult {
		return c.Lookup(lang, key, params)
	})
}

// Translated returns a Lookup over lang's own catalogs ("pt-BR", then "pt")
// without the default fallback, so untranslated keys report NotFound.
func (c *Catalog) Translated(lang string) locdisplay.Lookup {
	chain := locdisplay.FallbackChain(lang)
	chain = chain[:len(chain)-1]
	return locdisplay.LookupFunc(func(key string, params map[string]any) locdisplay.LookupResult {
		return c.lookup(chain, key, params)
	})
}

// substitute replaces "{{name}}" tokens with params. Unknown tokens are
// left in place.
func substitute(text string, params map[string]any) string {
	if len(params) == 0 || !strings.Contains(text, "{{") {
		return text
	}
	pairs := make([]string, 0, len(params)*2)
	for name, value := range params {
		pairs = append(pairs, "{{"+name+"}}", fmt.Sprint(value))
	}
	return strings.NewReplacer(pairs...).Replace(text)
}

// LoadDir reads every "<lang>.json" file in dir. "default.json" holds the
// untranslated names. A missing directory yields an empty catalog.
func LoadDir(dir string) (*Catalog, error) {
	c := New()

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, &locdisplay.CatalogError{Path: dir, Message: "invalid catalog directory", Cause: err}
	}

	for _, path := range files {
		entries, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		lang := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		c.Add(lang, entries)
	}

	return c, nil
}

// LoadFile reads a single flat JSON catalog file.
func LoadFile(path string) (map[string]string, error) {
	f, err := os.Open(path) // #nosec G304 - catalog paths are user-provided
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &locdisplay.CatalogError{Path: path, Message: "catalog file not found", Cause: err}
		}
		return nil, &locdisplay.CatalogError{Path: path, Message: "opening catalog", Cause: err}
	}
	defer f.Close()

	entries, err := Decode(f)
	if err != nil {
		return nil, &locdisplay.CatalogError{Path: path, Message: "decoding catalog", Cause: err}
	}
	return entries, nil
}

// Decode parses a flat JSON object of key/text pairs.
func Decode(r io.Reader) (map[string]string, error) {
	var entries map[string]string
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, err
	}
	if entries == nil {
		entries = make(map[string]string)
	}
	return entries, nil
}

// WriteFile stores entries as an indented JSON object, creating parent
// directories as needed.
func WriteFile(path string, entries map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return &locdisplay.CatalogError{Path: path, Message: "creating catalog directory", Cause: err}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return &locdisplay.CatalogError{Path: path, Message: "encoding catalog", Cause: err}
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o600); err != nil {
		return &locdisplay.CatalogError{Path: path, Message: "writing catalog", Cause: err}
	}
	return nil
}
