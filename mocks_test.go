package locdisplay

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// mockLookup is a simple translation table that counts calls.
type mockLookup struct {
	translations map[string]string
	callCount    int
	lastKey      string
	lastParams   map[string]any
}

func newMockLookup() *mockLookup {
	return &mockLookup{
		translations: map[string]string{
			"location.Farm":                  "Bauernhof",
			"location.Joja_Mart":             "JoJa-Markt",
			"location.UndergroundMine_Level": "Mine Ebene {{level}}",
		},
	}
}

func (m *mockLookup) Lookup(key string, params map[string]any) LookupResult {
	m.callCount++
	m.lastKey = key
	m.lastParams = params

	text, ok := m.translations[key]
	if !ok {
		return LookupNotFound()
	}
	if level, ok := params["level"]; ok {
		text = strings.ReplaceAll(text, "{{level}}", strconv.Itoa(level.(int)))
	}
	return Classify(text)
}

// mockCache is a simple mock cache for testing
type mockCache struct {
	data    map[string]string
	setErr  error
	cleared int
}

func newMockCache() *mockCache {
	return &mockCache{data: make(map[string]string)}
}

func (c *mockCache) Get(key string) (string, bool) {
	val, ok := c.data[key]
	return val, ok
}

func (c *mockCache) Set(key string, value string) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.data[key] = value
	return nil
}

func (c *mockCache) Clear() error {
	c.cleared++
	c.data = make(map[string]string)
	return nil
}

// mockHost combines a lookup with host-owned location state.
type mockHost struct {
	*mockLookup
	lang         string
	location     string
	hasLocation  bool
	displayNames map[string]string
	panicOnLang  bool
}

func newMockHost() *mockHost {
	return &mockHost{
		mockLookup:   newMockLookup(),
		lang:         "de",
		displayNames: map[string]string{},
	}
}

func (h *mockHost) CurrentLanguage() string {
	if h.panicOnLang {
		panic("language not loaded")
	}
	return h.lang
}

func (h *mockHost) CurrentLocation() (string, bool) {
	return h.location, h.hasLocation
}

func (h *mockHost) DisplayName(identifier string) (string, bool) {
	name, ok := h.displayNames[identifier]
	return name, ok
}

// mockNotifier records every show and remove call.
type mockNotifier struct {
	shown     []string
	durations []time.Duration
	removed   []NotificationHandle
	queued    map[int]bool
	nextID    int
	showErr   error
	showPanic bool
	removeErr error
}

func newMockNotifier() *mockNotifier {
	return &mockNotifier{queued: make(map[int]bool)}
}

func (n *mockNotifier) Show(text string, d time.Duration) (NotificationHandle, error) {
	if n.showPanic {
		panic("hud not ready")
	}
	if n.showErr != nil {
		return nil, n.showErr
	}
	n.nextID++
	n.shown = append(n.shown, text)
	n.durations = append(n.durations, d)
	n.queued[n.nextID] = true
	return n.nextID, nil
}

func (n *mockNotifier) Contains(h NotificationHandle) bool {
	id, ok := h.(int)
	return ok && n.queued[id]
}

func (n *mockNotifier) Remove(h NotificationHandle) error {
	if n.removeErr != nil {
		return n.removeErr
	}
	id, ok := h.(int)
	if !ok || !n.queued[id] {
		return errors.New("not queued")
	}
	delete(n.queued, id)
	n.removed = append(n.removed, h)
	return nil
}

// expire simulates the host's display timer dismissing a notification.
func (n *mockNotifier) expire(h NotificationHandle) {
	delete(n.queued, h.(int))
}
