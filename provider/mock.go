package provider

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/ZaguanLabs/locdisplay"
)

// MockTranslator is a mock Translator for testing.
type MockTranslator struct {
	Translations map[string]string // Map of source text to translation
	Errs         []error           // Returned in order before any translation
	CallCount    int               // Number of times Translate was called
	LastRequest  *TranslateRequest // Last request received

	mu sync.Mutex
}

// NewMockTranslator creates a mock translator with a few German names.
func NewMockTranslator() *MockTranslator {
	return &MockTranslator{
		Translations: map[string]string{
			"Farm":         "Bauernhof",
			"Pelican Town": "Pelikanstadt",
			"Beach":        "Strand",
		},
	}
}

// Translate returns mock translations. Unknown texts come back bracketed.
func (m *MockTranslator) Translate(ctx context.Context, req TranslateRequest) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.CallCount++
	m.LastRequest = &req

	if len(m.Errs) > 0 {
		err := m.Errs[0]
		m.Errs = m.Errs[1:]
		return "", err
	}

	if translation, ok := m.Translations[req.Text]; ok {
		return translation, nil
	}
	return fmt.Sprintf("[%s]", req.Text), nil
}

// Calls returns the number of Translate calls so far.
func (m *MockTranslator) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.CallCount
}

// Reset resets the call count and last request.
func (m *MockTranslator) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CallCount = 0
	m.LastRequest = nil
}

// MockLookup is an in-memory locdisplay.Lookup that records its calls.
// Texts pass through locdisplay.Classify, so "(no translation: ...)" and ""
// behave like a real host.
type MockLookup struct {
	Translations map[string]string
	CallCount    int
	LastKey      string
	LastParams   map[string]any

	mu sync.Mutex
}

// NewMockLookup creates a MockLookup over translations.
func NewMockLookup(translations map[string]string) *MockLookup {
	if translations == nil {
		translations = make(map[string]string)
	}
	return &MockLookup{Translations: translations}
}

// Lookup implements locdisplay.Lookup.
func (m *MockLookup) Lookup(key string, params map[string]any) locdisplay.LookupResult {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.CallCount++
	m.LastKey = key
	m.LastParams = params

	text, ok := m.Translations[key]
	if !ok {
		return locdisplay.LookupNotFound()
	}
	for name, value := range params {
		text = strings.ReplaceAll(text, "{{"+name+"}}", fmt.Sprint(value))
	}
	return locdisplay.Classify(text)
}

// Calls returns the number of Lookup calls so far.
func (m *MockLookup) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.CallCount
}

// Verify interfaces
var (
	_ Translator        = (*MockTranslator)(nil)
	_ locdisplay.Lookup = (*MockLookup)(nil)
)
