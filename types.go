package locdisplay

import (
	"strings"
	"time"
)

// UnknownLocation is returned when an identifier cannot be resolved at all.
const UnknownLocation = "Unknown Location"

// placeholderPrefix marks the host translation system's "missing key" text.
const placeholderPrefix = "(no translation:"

// LookupStatus classifies the outcome of a translation lookup.
type LookupStatus int

const (
	// StatusNotFound means the backend has no translation for the key.
	StatusNotFound LookupStatus = iota
	// StatusFound means Text holds a usable translation.
	StatusFound
	// StatusEmpty means the backend knows the key but its text is empty.
	StatusEmpty
)

func (s LookupStatus) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusEmpty:
		return "empty"
	default:
		return "not_found"
	}
}

// LookupResult is the tri-state outcome of a translation lookup.
type LookupResult struct {
	Status LookupStatus
	Text   string
}

// OK reports whether the result carries a usable translation.
func (r LookupResult) OK() bool {
	return r.Status == StatusFound && r.Text != ""
}

// LookupFound wraps a translated text.
func LookupFound(text string) LookupResult {
	return LookupResult{Status: StatusFound, Text: text}
}

// LookupNotFound is the result for keys the backend does not know.
func LookupNotFound() LookupResult {
	return LookupResult{Status: StatusNotFound}
}

// LookupEmpty is the result for keys that translate to nothing.
func LookupEmpty() LookupResult {
	return LookupResult{Status: StatusEmpty}
}

// Classify converts a raw string returned by a host translation API into a
// LookupResult. Hosts that signal a missing key with placeholder text should
// pass their output through Classify at the boundary.
func Classify(text string) LookupResult {
	trimmed := strings.TrimSpace(text)
	switch {
	case trimmed == "":
		return LookupEmpty()
	case strings.HasPrefix(trimmed, placeholderPrefix):
		return LookupNotFound()
	default:
		return LookupFound(text)
	}
}

// Lookup translates a key, optionally substituting named parameters.
type Lookup interface {
	Lookup(key string, params map[string]any) LookupResult
}

// LookupFunc adapts a plain function to the Lookup interface.
type LookupFunc func(key string, params map[string]any) LookupResult

// Lookup calls f(key, params).
func (f LookupFunc) Lookup(key string, params map[string]any) LookupResult {
	return f(key, params)
}

// DisplayNamer exposes the host's own display name for a location, if any.
type DisplayNamer interface {
	DisplayName(identifier string) (string, bool)
}

// Host is the set of capabilities the controller needs from the game.
type Host interface {
	Lookup
	DisplayNamer

	// CurrentLanguage returns the active translation locale.
	CurrentLanguage() string

	// CurrentLocation returns the raw identifier of the player's location.
	CurrentLocation() (string, bool)
}

// NotificationHandle identifies a notification owned by a Notifier.
type NotificationHandle interface{}

// Notifier displays transient on-screen messages.
type Notifier interface {
	// Show queues a message for the given duration and returns its handle.
	Show(text string, duration time.Duration) (NotificationHandle, error)

	// Contains reports whether the handle is still queued for display.
	Contains(h NotificationHandle) bool

	// Remove evicts a queued message.
	Remove(h NotificationHandle) error
}

// TranslationCache is the interface for translation caching.
// An empty value is a cached negative result.
type TranslationCache interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
	Clear() error
}

// Pattern describes a parametric location family such as "UndergroundMine42".
type Pattern struct {
	Prefix string // Identifier prefix, followed by the level digits
	Name   string // Human-readable family name for the fallback text
}

// DefaultPatterns are the parametric location families known to the game.
var DefaultPatterns = []Pattern{
	{Prefix: "UndergroundMine", Name: "Underground Mine"},
	{Prefix: "VolcanoDungeon", Name: "Volcano Dungeon"},
}

// LocationReport is the diagnostic view of the player's current location.
type LocationReport struct {
	Raw             string `json:"raw"`
	HostDisplayName string `json:"host_display_name"`
	ResolvedName    string `json:"resolved_name"`
}
