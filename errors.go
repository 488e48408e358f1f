package locdisplay

import (
	"fmt"
	"time"
)

// ProviderError indicates a translation backend failure (API error, open
// circuit, rate limit, etc.).
type ProviderError struct {
	Message   string
	Cause     error
	Retryable bool // Whether the operation can be retried

	// RetryAfter is the wait the backend asked for; zero means use backoff.
	RetryAfter time.Duration
}

func (e *ProviderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("provider error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("provider error: %s", e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Cause
}

// CacheError indicates a cache operation failure.
type CacheError struct {
	Message string
	Cause   error
}

func (e *CacheError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("cache error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("cache error: %s", e.Message)
}

func (e *CacheError) Unwrap() error {
	return e.Cause
}

// HostError wraps a failure raised by a host capability while handling an
// event. Panics are converted to HostError with a nil Cause.
type HostError struct {
	Op      string // Capability or event that failed, e.g. "show"
	Message string
	Cause   error
}

func (e *HostError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("host error (%s): %s: %v", e.Op, e.Message, e.Cause)
	}
	return fmt.Sprintf("host error (%s): %s", e.Op, e.Message)
}

func (e *HostError) Unwrap() error {
	return e.Cause
}

// CatalogError indicates a translation catalog could not be read.
type CatalogError struct {
	Path    string
	Message string
	Cause   error
}

func (e *CatalogError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("catalog error (%s): %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("catalog error (%s): %s", e.Path, e.Message)
}

func (e *CatalogError) Unwrap() error {
	return e.Cause
}
