// Package provider defines machine translation backends and the Lookup
// adapters that put them behind the resolver.
package provider

import "context"

// TranslateRequest describes a single string to machine-translate.
type TranslateRequest struct {
	Text       string // Source text, e.g. "Pelican Town"
	SourceLang string // Source language tag (default: "en")
	TargetLang string // Target language tag, e.g. "de-DE"
	Context    string // Optional hint for the model
}

// Translator is the interface for machine translation backends.
type Translator interface {
	Translate(ctx context.Context, req TranslateRequest) (string, error)
}
