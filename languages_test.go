package locdisplay

import (
	"reflect"
	"testing"
)

func TestNormalizeLanguage(t *testing.T) {
	tests := []struct {
		lang     string
		expected string
	}{
		{"de_DE", "de-DE"},
		{"de-de", "de-DE"},
		{"  fr ", "fr"},
		{"", DefaultLanguage},
		{"DEFAULT", DefaultLanguage},
		{"??", "??"}, // unparseable, kept verbatim
	}

	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			result := NormalizeLanguage(tt.lang)
			if result != tt.expected {
				t.Errorf("NormalizeLanguage(%q) = %q, want %q", tt.lang, result, tt.expected)
			}
		})
	}
}

func TestBaseLanguage(t *testing.T) {
	tests := []struct {
		lang     string
		expected string
	}{
		{"pt_BR", "pt"},
		{"zh-CN", "zh"},
		{"ja", "ja"},
		{"", DefaultLanguage},
	}

	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			result := BaseLanguage(tt.lang)
			if result != tt.expected {
				t.Errorf("BaseLanguage(%q) = %q, want %q", tt.lang, result, tt.expected)
			}
		})
	}
}

func TestFallbackChain(t *testing.T) {
	tests := []struct {
		lang     string
		expected []string
	}{
		{"pt_BR", []string{"pt-BR", "pt", DefaultLanguage}},
		{"de", []string{"de", DefaultLanguage}},
		{"", []string{DefaultLanguage}},
	}

	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			result := FallbackChain(tt.lang)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("FallbackChain(%q) = %v, want %v", tt.lang, result, tt.expected)
			}
		})
	}
}

func TestLanguageName(t *testing.T) {
	if got := LanguageName("de"); got != "German" {
		t.Errorf("LanguageName(de) = %q, want German", got)
	}
	if got := LanguageName(""); got != "Default" {
		t.Errorf("LanguageName(\"\") = %q, want Default", got)
	}
	if got := LanguageName("??"); got != "??" {
		t.Errorf("LanguageName(??) = %q, want fallback to tag", got)
	}
}
