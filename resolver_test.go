package locdisplay

import (
	"errors"
	"testing"
)

const testGUID = "a1b2c3d4-e5f6-7890-abcd-ef1234567890"

func TestResolver_DirectTranslation(t *testing.T) {
	lookup := newMockLookup()
	r := NewResolver(newMockCache())

	name := r.Resolve("Farm", "de", lookup)
	if name != "Bauernhof" {
		t.Errorf("Resolve(Farm) = %q, want %q", name, "Bauernhof")
	}
	if lookup.lastKey != "location.Farm" {
		t.Errorf("lookup key = %q, want %q", lookup.lastKey, "location.Farm")
	}
}

func TestResolver_NormalizesKey(t *testing.T) {
	lookup := newMockLookup()
	r := NewResolver(newMockCache())

	name := r.Resolve("Joja Mart", "de", lookup)
	if name != "JoJa-Markt" {
		t.Errorf("Resolve(Joja Mart) = %q, want %q", name, "JoJa-Markt")
	}

	r.Resolve("Mr.Qi Room", "de", lookup)
	if lookup.lastKey != "location.Mr_Qi_Room" {
		t.Errorf("lookup key = %q, want %q", lookup.lastKey, "location.Mr_Qi_Room")
	}
}

func TestResolver_CacheHit(t *testing.T) {
	lookup := newMockLookup()
	r := NewResolver(newMockCache())

	first := r.Resolve("Farm", "de", lookup)
	second := r.Resolve("Farm", "de", lookup)

	if first != second {
		t.Errorf("results differ: %q vs %q", first, second)
	}
	if lookup.callCount != 1 {
		t.Errorf("Lookup should be called once, was called %d times", lookup.callCount)
	}
}

func TestResolver_NegativeCacheHit(t *testing.T) {
	lookup := newMockLookup()
	c := newMockCache()
	r := NewResolver(c)

	first := r.Resolve("SecretWoods", "de", lookup)
	second := r.Resolve("SecretWoods", "de", lookup)

	if first != "SecretWoods" || second != "SecretWoods" {
		t.Errorf("expected base name fallback twice, got %q and %q", first, second)
	}
	if lookup.callCount != 1 {
		t.Errorf("Lookup should be called once for a negative result, was called %d times", lookup.callCount)
	}
	if v, ok := c.data[CacheKey("de", "location.SecretWoods")]; !ok || v != "" {
		t.Errorf("expected negative cache entry, got %q (ok=%v)", v, ok)
	}
}

func TestResolver_PlaceholderIsMiss(t *testing.T) {
	lookup := newMockLookup()
	lookup.translations["location.Town"] = "(no translation:location.Town)"
	r := NewResolver(newMockCache())

	if name := r.Resolve("Town", "de", lookup); name != "Town" {
		t.Errorf("placeholder should fall back to base name, got %q", name)
	}
}

func TestResolver_EmptyTranslationIsMiss(t *testing.T) {
	lookup := newMockLookup()
	lookup.translations["location.Town"] = ""
	r := NewResolver(newMockCache())

	if name := r.Resolve("Town", "de", lookup); name != "Town" {
		t.Errorf("empty translation should fall back to base name, got %q", name)
	}
}

func TestResolver_CachePerLanguage(t *testing.T) {
	lookup := newMockLookup()
	r := NewResolver(newMockCache())

	r.Resolve("Farm", "de", lookup)
	r.Resolve("Farm", "fr", lookup)
	r.Resolve("Farm", "de_de", lookup) // different tag, different key

	if lookup.callCount != 3 {
		t.Errorf("each language should be looked up once, got %d calls", lookup.callCount)
	}

	r.Resolve("Farm", "de-DE", lookup)
	if lookup.callCount != 3 {
		t.Errorf("de-DE should share the de_de entry, got %d calls", lookup.callCount)
	}
}

func TestResolver_MineLevelPlaceholder(t *testing.T) {
	lookup := LookupFunc(func(key string, params map[string]any) LookupResult {
		return Classify("(no translation:" + key + ")")
	})
	r := NewResolver(newMockCache())

	name := r.Resolve("UndergroundMine42", "en", lookup)
	if name != "Underground Mine Level 42" {
		t.Errorf("Resolve(UndergroundMine42) = %q, want %q", name, "Underground Mine Level 42")
	}
}

func TestResolver_MineLevelTemplate(t *testing.T) {
	lookup := newMockLookup()
	r := NewResolver(newMockCache())

	name := r.Resolve("UndergroundMine7", "de", lookup)
	if name != "Mine Ebene 7" {
		t.Errorf("Resolve(UndergroundMine7) = %q, want %q", name, "Mine Ebene 7")
	}
	if lookup.lastKey != "location.UndergroundMine_Level" {
		t.Errorf("lookup key = %q, want template key", lookup.lastKey)
	}
	if lookup.lastParams["level"] != 7 {
		t.Errorf("level param = %v, want 7", lookup.lastParams["level"])
	}
}

func TestResolver_UnsubstitutedTemplateRejected(t *testing.T) {
	lookup := LookupFunc(func(key string, params map[string]any) LookupResult {
		return LookupFound("Vulkan Ebene {{level}}")
	})
	r := NewResolver(newMockCache())

	name := r.Resolve("VolcanoDungeon3", "de", lookup)
	if name != "Volcano Dungeon Level 3" {
		t.Errorf("Resolve(VolcanoDungeon3) = %q, want fallback", name)
	}
}

func TestResolver_PatternBeatsDirectKey(t *testing.T) {
	lookup := newMockLookup()
	lookup.translations["location.UndergroundMine5"] = "Static Mine Name"
	r := NewResolver(newMockCache())

	name := r.Resolve("UndergroundMine5", "de", lookup)
	if name != "Mine Ebene 5" {
		t.Errorf("pattern should win over direct key, got %q", name)
	}
	if lookup.callCount != 1 {
		t.Errorf("direct key should never be looked up, got %d calls", lookup.callCount)
	}
}

func TestResolver_PatternCache(t *testing.T) {
	lookup := newMockLookup()
	c := newMockCache()
	r := NewResolver(c)

	r.Resolve("VolcanoDungeon9", "de", lookup)
	r.Resolve("VolcanoDungeon9", "de", lookup)

	if lookup.callCount != 1 {
		t.Errorf("Lookup should be called once, was called %d times", lookup.callCount)
	}
	if v := c.data[CacheKey("de", "VolcanoDungeon_Level_9")]; v != "Volcano Dungeon Level 9" {
		t.Errorf("fallback should be cached, got %q", v)
	}
}

func TestResolver_PatternNeedsDigits(t *testing.T) {
	lookup := newMockLookup()
	r := NewResolver(newMockCache())

	if name := r.Resolve("UndergroundMine", "de", lookup); name != "UndergroundMine" {
		t.Errorf("prefix without digits should use direct key, got %q", name)
	}
	if name := r.Resolve("UndergroundMine4b", "de", lookup); name != "UndergroundMine4b" {
		t.Errorf("non-digit suffix should use direct key, got %q", name)
	}
}

func TestResolver_CustomPatterns(t *testing.T) {
	r := NewResolver(newMockCache(), WithPatterns([]Pattern{
		{Prefix: "SkullCave", Name: "Skull Cavern"},
	}))

	if name := r.Resolve("SkullCave12", "en", nil); name != "Skull Cavern Level 12" {
		t.Errorf("Resolve(SkullCave12) = %q", name)
	}
	if name := r.Resolve("UndergroundMine1", "en", nil); name != "UndergroundMine1" {
		t.Errorf("default patterns should be replaced, got %q", name)
	}
}

func TestResolver_GUIDSuffix(t *testing.T) {
	lookup := newMockLookup()
	r := NewResolver(newMockCache())

	name := r.Resolve("Farm_"+testGUID, "de", lookup)
	if name != "Bauernhof" {
		t.Errorf("Resolve(Farm_<guid>) = %q, want %q", name, "Bauernhof")
	}
	if lookup.lastKey != "location.Farm" {
		t.Errorf("lookup key = %q, want location.Farm", lookup.lastKey)
	}
}

func TestResolver_EmptyIdentifier(t *testing.T) {
	lookup := newMockLookup()
	r := NewResolver(newMockCache())

	if name := r.Resolve("", "de", lookup); name != UnknownLocation {
		t.Errorf("Resolve(\"\") = %q, want %q", name, UnknownLocation)
	}
	if lookup.callCount != 0 {
		t.Errorf("Lookup should not be called for empty input, was called %d times", lookup.callCount)
	}
}

func TestResolver_ShortIdentifier(t *testing.T) {
	lookup := newMockLookup()
	r := NewResolver(newMockCache())

	if name := r.Resolve("x", "de", lookup); name != UnknownLocation {
		t.Errorf("Resolve(x) = %q, want %q", name, UnknownLocation)
	}
	if name := r.Resolve("a"+testGUID, "de", lookup); name != UnknownLocation {
		t.Errorf("short base after stripping should be unknown, got %q", name)
	}
	if lookup.callCount != 0 {
		t.Errorf("Lookup should not be called, was called %d times", lookup.callCount)
	}
}

func TestResolver_HostDisplayName(t *testing.T) {
	host := newMockHost()
	host.displayNames["Farm"] = "Sunny Acres"
	host.displayNames["Town"] = "(no translation:Town)"
	host.displayNames["Beach"] = ""
	r := NewResolver(newMockCache(), WithDisplayNamer(host))

	if name := r.Resolve("Farm", "de", host); name != "Sunny Acres" {
		t.Errorf("host display name should win, got %q", name)
	}
	if host.callCount != 0 {
		t.Errorf("Lookup should not be called when the host has a name, was called %d times", host.callCount)
	}
	if name := r.Resolve("Town", "de", host); name != "Town" {
		t.Errorf("placeholder host name should be skipped, got %q", name)
	}
	if name := r.Resolve("Beach", "de", host); name != "Beach" {
		t.Errorf("empty host name should be skipped, got %q", name)
	}
}

func TestResolver_NilLookup(t *testing.T) {
	r := NewResolver(newMockCache())

	if name := r.Resolve("Farm", "de", nil); name != "Farm" {
		t.Errorf("nil lookup should fall back to base name, got %q", name)
	}
}

func TestResolver_NilCache(t *testing.T) {
	lookup := newMockLookup()
	r := NewResolver(nil)

	r.Resolve("Farm", "de", lookup)
	r.Resolve("Farm", "de", lookup)
	if lookup.callCount != 2 {
		t.Errorf("without a cache every call should look up, got %d calls", lookup.callCount)
	}
	if err := r.Clear(); err != nil {
		t.Errorf("Clear without cache should be a no-op, got %v", err)
	}
}

func TestResolver_CacheSetErrorIgnored(t *testing.T) {
	lookup := newMockLookup()
	c := newMockCache()
	c.setErr = errors.New("read only")
	r := NewResolver(c)

	if name := r.Resolve("Farm", "de", lookup); name != "Bauernhof" {
		t.Errorf("cache errors should not affect resolution, got %q", name)
	}
}

func TestResolver_Clear(t *testing.T) {
	lookup := newMockLookup()
	c := newMockCache()
	r := NewResolver(c)

	r.Resolve("Farm", "de", lookup)
	if err := r.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	r.Resolve("Farm", "de", lookup)

	if lookup.callCount != 2 {
		t.Errorf("lookup should repeat after Clear, got %d calls", lookup.callCount)
	}
	if c.cleared != 1 {
		t.Errorf("cache should be cleared once, got %d", c.cleared)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		text   string
		status LookupStatus
	}{
		{"Bauernhof", StatusFound},
		{"", StatusEmpty},
		{"   ", StatusEmpty},
		{"(no translation:location.Farm)", StatusNotFound},
	}

	for _, tt := range tests {
		if got := Classify(tt.text).Status; got != tt.status {
			t.Errorf("Classify(%q) = %v, want %v", tt.text, got, tt.status)
		}
	}
}
