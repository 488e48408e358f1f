package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZaguanLabs/locdisplay/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()

	assert.True(t, cfg.EnableMod)
	assert.Equal(t, 3000, cfg.NotificationDuration)
	assert.False(t, cfg.EnableDebugLogging)
	assert.Equal(t, 3*time.Second, cfg.Duration())
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"EnableMod": false, "NotificationDuration": 4500, "EnableDebugLogging": true}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.False(t, cfg.EnableMod)
	assert.Equal(t, 4500, cfg.NotificationDuration)
	assert.True(t, cfg.EnableDebugLogging)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"NotificationDuration": 2000}`), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.EnableMod)
	assert.Equal(t, 2000, cfg.NotificationDuration)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("LOCDISPLAY_ENABLEMOD", "false")
	t.Setenv("LOCDISPLAY_NOTIFICATIONDURATION", "6000")

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.False(t, cfg.EnableMod)
	assert.Equal(t, 6000, cfg.NotificationDuration)
}

func TestLoadInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o644))

	_, err := config.Load(path)
	require.Error(t, err)

	var cfgErr *config.ConfigError
	assert.True(t, errors.As(err, &cfgErr))
}

func TestLoadRejectsNonPositiveDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"NotificationDuration": 0}`), 0o644))

	_, err := config.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NotificationDuration")
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")
	want := config.Config{EnableMod: false, NotificationDuration: 7500, EnableDebugLogging: true}

	require.NoError(t, config.Save(path, want))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"NotificationDuration": 7500`)

	got, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestClamp(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{200, 1000},
		{3000, 3000},
		{3200, 3000},
		{3250, 3500},
		{25000, 10000},
	}

	for _, tt := range tests {
		cfg := config.Config{NotificationDuration: tt.in}
		assert.Equal(t, tt.want, cfg.Clamp().NotificationDuration, "Clamp(%d)", tt.in)
	}
}

func TestReset(t *testing.T) {
	cfg := config.Config{NotificationDuration: 9000, EnableDebugLogging: true}
	cfg.Reset()
	assert.Equal(t, config.Default(), cfg)
}

func TestOptions(t *testing.T) {
	opts := config.Options()
	require.Len(t, opts, 3)

	duration := opts[1]
	assert.Equal(t, "NotificationDuration", duration.Key)
	assert.Equal(t, config.KindNumber, duration.Kind)
	assert.Equal(t, float64(1000), duration.Min)
	assert.Equal(t, float64(10000), duration.Max)
	assert.Equal(t, float64(500), duration.Step)

	cfg := config.Default()
	for _, opt := range opts {
		_, err := cfg.Value(opt.Key)
		assert.NoError(t, err, opt.Key)
	}

	_, err := cfg.Value("Bogus")
	assert.Error(t, err)
}
