package locdisplay

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ZaguanLabs/locdisplay/internal/logging"
)

// Resolver turns raw location identifiers into display names.
type Resolver struct {
	cache     TranslationCache
	names     DisplayNamer
	patterns  []Pattern
	minLength int
	logger    logrus.FieldLogger
}

// ResolverOption is a functional option for configuring the Resolver.
type ResolverOption func(*Resolver)

// WithDisplayNamer consults the host's own display names before anything else.
func WithDisplayNamer(names DisplayNamer) ResolverOption {
	return func(r *Resolver) {
		r.names = names
	}
}

// WithPatterns replaces the parametric location families. Patterns are
// matched in order; the first match wins.
func WithPatterns(patterns []Pattern) ResolverOption {
	return func(r *Resolver) {
		r.patterns = append([]Pattern(nil), patterns...)
	}
}

// WithMinLength sets the shortest base name accepted after sanitization.
func WithMinLength(n int) ResolverOption {
	return func(r *Resolver) {
		if n > 0 {
			r.minLength = n
		}
	}
}

// WithLogger sets the logger used for debug tracing.
func WithLogger(logger logrus.FieldLogger) ResolverOption {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// NewResolver creates a Resolver memoizing lookups in cache. A nil cache
// disables memoization.
func NewResolver(cache TranslationCache, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		cache:     cache,
		patterns:  append([]Pattern(nil), DefaultPatterns...),
		minLength: defaultMinLength,
	}

	for _, opt := range opts {
		opt(r)
	}

	r.logger = logging.Component(r.logger, "resolver")
	return r
}

// Resolve returns the display name for raw in the given language. It never
// fails; the worst case is UnknownLocation.
//
// Rules, first match wins: the host's display name, a parametric pattern
// ("UndergroundMine42"), then the "location.<base>" translation key with the
// sanitized base name as fallback.
func (r *Resolver) Resolve(raw, lang string, lookup Lookup) string {
	log := r.logger.WithFields(logrus.Fields{
		logging.FieldRaw:  raw,
		logging.FieldLang: lang,
	})

	if name, ok := r.hostName(raw); ok {
		log.WithField(logging.FieldName, name).Debug("using host display name")
		return name
	}

	base, stripped := stripGUID(raw)
	if len(base) < r.minLength {
		log.Debug("identifier unresolvable")
		return UnknownLocation
	}
	if stripped {
		log.WithField(logging.FieldBase, base).Debug("sanitized raw name")
	}

	lang = NormalizeLanguage(lang)

	if p, level, ok := r.matchPattern(base); ok {
		return r.resolveLevel(p, level, lang, lookup, log)
	}
	return r.resolveKey(base, lang, lookup, log)
}

// Clear drops every memoized translation.
func (r *Resolver) Clear() error {
	if r.cache == nil {
		return nil
	}
	if err := r.cache.Clear(); err != nil {
		return &CacheError{Message: "clear failed", Cause: err}
	}
	return nil
}

// Patterns returns the parametric location families in match order.
func (r *Resolver) Patterns() []Pattern {
	return append([]Pattern(nil), r.patterns...)
}

// HostName returns the host's display name for raw when it is usable.
func (r *Resolver) HostName(raw string) (string, bool) {
	return r.hostName(raw)
}

func (r *Resolver) hostName(raw string) (string, bool) {
	if r.names == nil || raw == "" {
		return "", false
	}
	name, ok := r.names.DisplayName(raw)
	if !ok {
		return "", false
	}
	res := Classify(name)
	return res.Text, res.OK()
}

// matchPattern matches base against "<Prefix><Digits>".
func (r *Resolver) matchPattern(base string) (Pattern, int, bool) {
	for _, p := range r.patterns {
		if p.Prefix == "" || !strings.HasPrefix(base, p.Prefix) {
			continue
		}
		digits := base[len(p.Prefix):]
		if !isDigits(digits) {
			continue
		}
		level, err := strconv.Atoi(digits)
		if err != nil {
			continue
		}
		return p, level, true
	}
	return Pattern{}, 0, false
}

func (r *Resolver) resolveLevel(p Pattern, level int, lang string, lookup Lookup, log logrus.FieldLogger) string {
	key := CacheKey(lang, LevelKey(p.Prefix, level))
	fallback := fmt.Sprintf("%s Level %d", p.Name, level)
	log = log.WithField(logging.FieldKey, key)

	if cached, ok := r.cacheGet(key); ok {
		if cached == "" {
			return fallback
		}
		log.Debug("using cached level name")
		return cached
	}

	name := fallback
	res := r.lookup(lookup, levelTemplateKey(p.Prefix), map[string]any{"level": level})
	if res.OK() && !strings.Contains(res.Text, levelToken) {
		name = res.Text
	} else {
		log.WithField("status", res.Status).Debug("no level translation, using fallback")
	}

	r.cacheSet(key, name, log)
	return name
}

func (r *Resolver) resolveKey(base, lang string, lookup Lookup, log logrus.FieldLogger) string {
	tkey := LocationKey(base)
	key := CacheKey(lang, tkey)
	log = log.WithField(logging.FieldKey, key)

	if cached, ok := r.cacheGet(key); ok {
		if cached == "" {
			return base
		}
		log.Debug("using cached translation")
		return cached
	}

	res := r.lookup(lookup, tkey, nil)
	if res.OK() {
		log.WithField(logging.FieldName, res.Text).Debug("found translation")
		r.cacheSet(key, res.Text, log)
		return res.Text
	}

	log.WithField("status", res.Status).Debug("no translation found, using base name")
	r.cacheSet(key, "", log)
	return base
}

func (r *Resolver) lookup(lookup Lookup, key string, params map[string]any) LookupResult {
	if lookup == nil {
		return LookupNotFound()
	}
	return lookup.Lookup(key, params)
}

func (r *Resolver) cacheGet(key string) (string, bool) {
	if r.cache == nil {
		return "", false
	}
	return r.cache.Get(key)
}

func (r *Resolver) cacheSet(key, value string, log logrus.FieldLogger) {
	if r.cache == nil {
		return
	}
	if err := r.cache.Set(key, value); err != nil {
		log.WithError(err).Debug("cache set failed")
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
