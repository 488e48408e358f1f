package locdisplay

import "testing"

func TestCacheKey(t *testing.T) {
	key := CacheKey("de", "location.Farm")
	if key != "de:location.Farm" {
		t.Errorf("CacheKey() = %q, want %q", key, "de:location.Farm")
	}

	if CacheKey("de", "location.Farm") == CacheKey("fr", "location.Farm") {
		t.Error("different languages should produce different keys")
	}
}

func TestLocationKey(t *testing.T) {
	tests := []struct {
		base     string
		expected string
	}{
		{"Farm", "location.Farm"},
		{"Joja Mart", "location.Joja_Mart"},
		{"Mr.Qi Room", "location.Mr_Qi_Room"},
		{"Already_Snake", "location.Already_Snake"},
	}

	for _, tt := range tests {
		if got := LocationKey(tt.base); got != tt.expected {
			t.Errorf("LocationKey(%q) = %q, want %q", tt.base, got, tt.expected)
		}
	}
}

func TestLevelKey(t *testing.T) {
	if got := LevelKey("UndergroundMine", 42); got != "UndergroundMine_Level_42" {
		t.Errorf("LevelKey() = %q", got)
	}
	if got := levelTemplateKey("VolcanoDungeon"); got != "location.VolcanoDungeon_Level" {
		t.Errorf("levelTemplateKey() = %q", got)
	}
}
