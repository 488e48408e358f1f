package locdisplay

import (
	"strings"

	"github.com/google/uuid"
)

// guidLength is the length of a canonical 8-4-4-4-12 GUID.
const guidLength = 36

// defaultMinLength is the shortest base name treated as a real identifier.
const defaultMinLength = 2

// Sanitize strips a trailing GUID from a procedurally generated identifier
// and returns the base name, or UnknownLocation when nothing usable is left.
func Sanitize(raw string) string {
	return sanitize(raw, defaultMinLength)
}

func sanitize(raw string, minLength int) string {
	base, _ := stripGUID(raw)
	if len(base) < minLength {
		return UnknownLocation
	}
	return base
}

// stripGUID removes a trailing canonical GUID and its "_" separator.
func stripGUID(raw string) (string, bool) {
	if len(raw) <= guidLength {
		return raw, false
	}
	suffix := raw[len(raw)-guidLength:]
	if !isCanonicalGUID(suffix) {
		return raw, false
	}
	base := raw[:len(raw)-guidLength]
	return strings.TrimSuffix(base, "_"), true
}

// isCanonicalGUID reports whether s is a hyphenated 36 character GUID.
// uuid.Parse also accepts braced and URN forms, which are longer.
func isCanonicalGUID(s string) bool {
	if len(s) != guidLength {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}
