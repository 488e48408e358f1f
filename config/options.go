package config

import "fmt"

// OptionKind distinguishes toggle and numeric settings.
type OptionKind string

const (
	KindBool   OptionKind = "bool"
	KindNumber OptionKind = "number"
)

// Option describes one setting as a settings menu would register it.
type Option struct {
	Key     string
	Kind    OptionKind
	Name    string
	Tooltip string
	Min     float64
	Max     float64
	Step    float64
}

// Section is the settings-menu heading for this mod.
const Section = "Simple Location Display"

// Options lists the settings in menu order.
func Options() []Option {
	return []Option{
		{
			Key:     keyEnableMod,
			Kind:    KindBool,
			Name:    "Enable Mod",
			Tooltip: "Show location popups when entering new areas",
		},
		{
			Key:     keyNotificationDuration,
			Kind:    KindNumber,
			Name:    "Notification Duration (ms)",
			Tooltip: "How long the location popup stays on screen (in milliseconds)",
			Min:     MinNotificationDuration,
			Max:     MaxNotificationDuration,
			Step:    NotificationDurationStep,
		},
		{
			Key:     keyEnableDebugLogging,
			Kind:    KindBool,
			Name:    "Enable Debug Logging",
			Tooltip: "Enable debug logging for the mod",
		},
	}
}

// Value returns the current value of the setting named by key.
func (c Config) Value(key string) (string, error) {
	switch key {
	case keyEnableMod:
		return fmt.Sprintf("%t", c.EnableMod), nil
	case keyNotificationDuration:
		return fmt.Sprintf("%d", c.NotificationDuration), nil
	case keyEnableDebugLogging:
		return fmt.Sprintf("%t", c.EnableDebugLogging), nil
	default:
		return "", &ConfigError{Key: key, Message: "unknown setting"}
	}
}
