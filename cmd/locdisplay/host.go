package main

import (
	"fmt"
	"io"
	"time"

	"github.com/ZaguanLabs/locdisplay"
)

// hostNames maps identifiers to the names the game itself would display.
type hostNames map[string]string

func (n hostNames) DisplayName(identifier string) (string, bool) {
	name, ok := n[identifier]
	return name, ok
}

// cliHost stands in for the game: a fixed language, a lookup and the
// identifier of the location being replayed.
type cliHost struct {
	hostNames
	lookup   locdisplay.Lookup
	lang     string
	location string
}

func (h *cliHost) Lookup(key string, params map[string]any) locdisplay.LookupResult {
	return h.lookup.Lookup(key, params)
}

func (h *cliHost) CurrentLanguage() string {
	return h.lang
}

func (h *cliHost) CurrentLocation() (string, bool) {
	return h.location, h.location != ""
}

// consoleNotifier prints notifications instead of drawing them. Messages
// stay queued until removed; there is no clock.
type consoleNotifier struct {
	w      io.Writer
	next   int
	queued map[int]bool
}

func newConsoleNotifier(w io.Writer) *consoleNotifier {
	return &consoleNotifier{w: w, queued: make(map[int]bool)}
}

func (n *consoleNotifier) Show(text string, d time.Duration) (locdisplay.NotificationHandle, error) {
	n.next++
	n.queued[n.next] = true
	fmt.Fprintf(n.w, "show #%d %q for %s\n", n.next, text, d)
	return n.next, nil
}

func (n *consoleNotifier) Contains(h locdisplay.NotificationHandle) bool {
	id, ok := h.(int)
	return ok && n.queued[id]
}

func (n *consoleNotifier) Remove(h locdisplay.NotificationHandle) error {
	id, ok := h.(int)
	if !ok {
		return fmt.Errorf("unknown notification handle %v", h)
	}
	delete(n.queued, id)
	fmt.Fprintf(n.w, "remove #%d\n", id)
	return nil
}

var (
	_ locdisplay.Host     = (*cliHost)(nil)
	_ locdisplay.Notifier = (*consoleNotifier)(nil)
)
