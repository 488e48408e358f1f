package provider

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"github.com/ZaguanLabs/locdisplay"
	"github.com/ZaguanLabs/locdisplay/internal/logging"
)

const (
	defaultTimeout      = 5 * time.Second
	defaultPerMinute    = 60
	defaultBurst        = 5
	defaultMaxFailures  = 3
	defaultBreakerReset = 30 * time.Second
)

// MachineLookup is a locdisplay.Lookup that machine-translates the source
// catalog's text when the primary catalog has no entry for a key.
//
// Calls to the Translator go through a token bucket, bounded retry and a
// circuit breaker, so a dead backend costs at most one timeout per breaker
// window instead of one per location change.
type MachineLookup struct {
	primary    locdisplay.Lookup
	source     locdisplay.Lookup
	translator Translator
	sourceLang string
	targetLang string

	breaker *gobreaker.CircuitBreaker
	limiter *rate.Limiter
	retry   RetryConfig
	timeout time.Duration

	maxFailures  uint32
	breakerReset time.Duration
	logger       logrus.FieldLogger
}

// MachineOption is a functional option for configuring a MachineLookup.
type MachineOption func(*MachineLookup)

// WithRetryConfig sets the retry policy for translator calls.
func WithRetryConfig(cfg RetryConfig) MachineOption {
	return func(m *MachineLookup) {
		m.retry = cfg
	}
}

// WithRateLimit caps translator calls per minute. perMinute <= 0 disables
// the limit.
func WithRateLimit(perMinute, burst int) MachineOption {
	return func(m *MachineLookup) {
		if burst <= 0 {
			burst = 1
		}
		if perMinute <= 0 {
			m.limiter = rate.NewLimiter(rate.Inf, burst)
			return
		}
		m.limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), burst)
	}
}

// WithTimeout bounds a single lookup including retries.
func WithTimeout(d time.Duration) MachineOption {
	return func(m *MachineLookup) {
		if d > 0 {
			m.timeout = d
		}
	}
}

// WithBreaker opens the circuit after maxFailures consecutive failures and
// probes again after reset.
func WithBreaker(maxFailures uint32, reset time.Duration) MachineOption {
	return func(m *MachineLookup) {
		if maxFailures > 0 {
			m.maxFailures = maxFailures
		}
		if reset > 0 {
			m.breakerReset = reset
		}
	}
}

// WithSourceLanguage sets the language of the source catalog (default "en").
func WithSourceLanguage(lang string) MachineOption {
	return func(m *MachineLookup) {
		m.sourceLang = lang
	}
}

// WithMachineLogger sets the logger.
func WithMachineLogger(logger logrus.FieldLogger) MachineOption {
	return func(m *MachineLookup) {
		m.logger = logger
	}
}

// NewMachineLookup wraps primary for targetLang. source supplies the text
// to translate, normally the default-language catalog.
func NewMachineLookup(primary, source locdisplay.Lookup, translator Translator, targetLang string, opts ...MachineOption) *MachineLookup {
	m := &MachineLookup{
		primary:      primary,
		source:       source,
		translator:   translator,
		sourceLang:   "en",
		targetLang:   locdisplay.NormalizeLanguage(targetLang),
		retry:        DefaultRetryConfig(),
		timeout:      defaultTimeout,
		limiter:      rate.NewLimiter(rate.Every(time.Minute/defaultPerMinute), defaultBurst),
		maxFailures:  defaultMaxFailures,
		breakerReset: defaultBreakerReset,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.logger = logging.Component(m.logger, "machine-lookup")
	m.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "translator",
		MaxRequests: 1,
		Timeout:     m.breakerReset,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= m.maxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			m.logger.WithFields(logrus.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("translator circuit state changed")
		},
	})

	return m
}

// Lookup implements locdisplay.Lookup. When the primary lookup does not
// know the key, the source text is machine-translated; if that fails the
// untranslated source text is returned.
func (m *MachineLookup) Lookup(key string, params map[string]any) locdisplay.LookupResult {
	res := locdisplay.LookupNotFound()
	if m.primary != nil {
		res = m.primary.Lookup(key, params)
	}
	if res.Status != locdisplay.StatusNotFound || m.source == nil {
		return res
	}

	src := m.source.Lookup(key, params)
	if !src.OK() {
		return res
	}
	if m.translator == nil || m.targetLang == locdisplay.DefaultLanguage || strings.Contains(src.Text, "{{") {
		return src
	}

	log := m.logger.WithFields(logrus.Fields{
		logging.FieldKey:  key,
		logging.FieldLang: m.targetLang,
	})

	ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
	defer cancel()

	text, err := m.translate(ctx, src.Text)
	if err != nil {
		log.WithError(err).Warn("machine translation failed")
		return src
	}

	log.WithField(logging.FieldName, text).Debug("machine translated")
	return locdisplay.Classify(text)
}

// State reports the circuit breaker state ("closed", "half-open", "open").
func (m *MachineLookup) State() string {
	return m.breaker.State().String()
}

func (m *MachineLookup) translate(ctx context.Context, text string) (string, error) {
	req := TranslateRequest{
		Text:       text,
		SourceLang: m.sourceLang,
		TargetLang: m.targetLang,
	}

	retry := m.retry
	if retry.OnRetry == nil {
		retry.OnRetry = func(attempt int, delay time.Duration, err error) {
			m.logger.WithError(err).WithFields(logrus.Fields{
				"attempt": attempt,
				"delay":   delay,
			}).Debug("retrying translation")
		}
	}

	out, err := m.breaker.Execute(func() (interface{}, error) {
		return WithRetry(ctx, retry, func() (string, error) {
			if err := m.limiter.Wait(ctx); err != nil {
				return "", &locdisplay.ProviderError{Message: "rate limit wait cancelled", Cause: err}
			}
			return m.translator.Translate(ctx, req)
		})
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return "", &locdisplay.ProviderError{Message: "translator unavailable", Cause: err, Retryable: true}
		}
		return "", err
	}

	return out.(string), nil
}

// Verify MachineLookup implements locdisplay.Lookup
var _ locdisplay.Lookup = (*MachineLookup)(nil)
