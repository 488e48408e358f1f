package locdisplay

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/ZaguanLabs/locdisplay/config"
	"github.com/ZaguanLabs/locdisplay/internal/logging"
)

// Outcome reports what a location change did to the notification slot.
type Outcome int

const (
	// OutcomeDisabled means the feature is turned off in the settings.
	OutcomeDisabled Outcome = iota
	// OutcomeSuppressed means the name equals the one already shown.
	OutcomeSuppressed
	// OutcomeShown means a notification was shown into an idle slot.
	OutcomeShown
	// OutcomeReplaced means a live notification was evicted and replaced.
	OutcomeReplaced
	// OutcomeFailed means a host capability failed; nothing changed.
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeDisabled:
		return "disabled"
	case OutcomeSuppressed:
		return "suppressed"
	case OutcomeShown:
		return "shown"
	case OutcomeReplaced:
		return "replaced"
	case OutcomeFailed:
		return "failed"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Controller owns the single location notification slot.
//
// The host is expected to call it from one thread, but all methods are
// serialised so a multi-threaded host may call them concurrently.
type Controller struct {
	mu       sync.Mutex
	resolver *Resolver
	host     Host
	notifier Notifier
	cfg      config.Config
	logger   *logrus.Logger
	log      logrus.FieldLogger

	lastShown string
	hasShown  bool
	active    NotificationHandle
}

// ControllerOption is a functional option for configuring the Controller.
type ControllerOption func(*Controller)

// WithControllerLogger sets the logger. Its level follows EnableDebugLogging.
func WithControllerLogger(logger *logrus.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

// NewController creates a Controller showing names from resolver on notifier.
func NewController(resolver *Resolver, host Host, notifier Notifier, cfg config.Config, opts ...ControllerOption) *Controller {
	c := &Controller{
		resolver: resolver,
		host:     host,
		notifier: notifier,
		cfg:      cfg,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.logger == nil {
		c.logger = logging.NewNop()
	} else {
		logging.SetDebug(c.logger, cfg.EnableDebugLogging)
	}
	c.log = logging.Component(c.logger, "controller")
	return c
}

// OnSessionStart forgets every memoized translation and the last shown name,
// since the language may have changed since the previous session.
func (c *Controller) OnSessionStart() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.resolver.Clear(); err != nil {
		c.log.WithError(err).Warn("failed to clear translation cache")
	}
	c.forget()
	c.log.Debug("session started, translation cache cleared")
}

// OnLocationChanged shows the display name of raw unless it is already shown.
// Failures of host capabilities are logged and swallowed.
func (c *Controller) OnLocationChanged(raw string) (outcome Outcome) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.cfg.EnableMod {
		return OutcomeDisabled
	}

	log := c.log.WithField(logging.FieldRaw, raw)
	defer func() {
		if p := recover(); p != nil {
			err := &HostError{Op: "location_changed", Message: fmt.Sprintf("panic: %v", p)}
			log.WithError(err).Error("location change failed")
			if c.active == nil {
				c.forget()
			}
			outcome = OutcomeFailed
		}
	}()

	name := c.resolver.Resolve(raw, c.host.CurrentLanguage(), c.host)
	if c.hasShown && name == c.lastShown {
		log.WithField(logging.FieldName, name).Debug("location unchanged, suppressing")
		return OutcomeSuppressed
	}

	evicted, err := c.evict()
	if err != nil {
		log.WithError(err).Error("location change failed")
		return OutcomeFailed
	}

	h, err := c.notifier.Show(name, c.cfg.Duration())
	if err != nil {
		err = &HostError{Op: "show", Message: "display failed", Cause: err}
		log.WithError(err).Error("location change failed")
		c.forget()
		return OutcomeFailed
	}

	c.active = h
	c.lastShown = name
	c.hasShown = true
	log.WithField(logging.FieldName, name).Debug("displayed location")

	if evicted {
		return OutcomeReplaced
	}
	return OutcomeShown
}

// evict removes the live notification, if any. A handle the host has already
// dismissed is dropped. A handle that could not be removed stays tracked so
// the slot never holds two notifications.
func (c *Controller) evict() (bool, error) {
	h := c.active
	if h == nil {
		return false, nil
	}
	if !c.notifier.Contains(h) {
		c.active = nil
		return false, nil
	}
	if err := c.notifier.Remove(h); err != nil {
		return false, &HostError{Op: "remove", Message: "evict failed", Cause: err}
	}
	c.active = nil
	return true, nil
}

// forget empties the slot bookkeeping once nothing is on screen.
func (c *Controller) forget() {
	c.lastShown = ""
	c.hasShown = false
	c.active = nil
}

// DescribeCurrentLocation reports how the player's current location resolves.
func (c *Controller) DescribeCurrentLocation() (report LocationReport) {
	c.mu.Lock()
	defer c.mu.Unlock()

	defer func() {
		if p := recover(); p != nil {
			err := &HostError{Op: "describe", Message: fmt.Sprintf("panic: %v", p)}
			c.log.WithError(err).Error("describe location failed")
		}
	}()

	raw, ok := c.host.CurrentLocation()
	if !ok {
		c.log.Info("No current location available.")
		return LocationReport{}
	}

	report.Raw = raw
	if name, ok := c.host.DisplayName(raw); ok {
		report.HostDisplayName = name
	}
	report.ResolvedName = c.resolver.Resolve(raw, c.host.CurrentLanguage(), c.host)

	c.log.WithFields(logrus.Fields{
		"raw":           report.Raw,
		"display_name":  report.HostDisplayName,
		"resolved_name": report.ResolvedName,
	}).Info("location debug")
	return report
}

// Reconfigure applies new settings, e.g. after a settings-menu save.
func (c *Controller) Reconfigure(cfg config.Config) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cfg = cfg
	logging.SetDebug(c.logger, cfg.EnableDebugLogging)
}

// Config returns the active settings.
func (c *Controller) Config() config.Config {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cfg
}

// LastShown returns the name currently occupying the slot, if any.
func (c *Controller) LastShown() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastShown, c.hasShown
}
