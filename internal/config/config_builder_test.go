package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_FirstSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "env"}},
		&StructuredConfig{App: App{Version: "flags", TokenIssuer: "flags-issuer"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "env", cfg.App.Version)
	assert.Equal(t, "flags-issuer", cfg.App.TokenIssuer)
}

func TestBuild_DefaultsFillGaps(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Sync: Sync{DebounceInterval: 250 * time.Millisecond}})
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, cfg.Sync.DebounceInterval)
	assert.Equal(t, DefaultRefreshMargin, cfg.Sync.RefreshMargin)
	assert.Equal(t, DefaultReconnectDelay, cfg.Sync.ReconnectDelay)
	assert.Equal(t, DefaultTokenIssuer, cfg.App.TokenIssuer)
}

// ── withEnv / withFlags ───────────────────────────────────────────────────────

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_VERSION", "env-version")
	t.Setenv("SYNC_DEBOUNCE_INTERVAL", "2s")

	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, 2*time.Second, b.configs[0].Sync.DebounceInterval)
}

func TestWithEnv_InvalidDuration(t *testing.T) {
	t.Setenv("SYNC_REFRESH_MARGIN", "soon")

	b := newConfigBuilder().withEnv()
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithFlags_UnknownFlag(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-no-such-flag"})
	assert.Error(t, b.err)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOpWhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_AppendsConfig(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "json-version"
	payload.Sync.ReconnectDelay = Duration(5 * time.Second)
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-version", b.configs[1].App.Version)
	assert.Equal(t, 5*time.Second, b.configs[1].Sync.ReconnectDelay)
}

func TestWithJSON_FirstPathWins(t *testing.T) {
	first := StructuredJSONConfig{}
	first.App.Version = "first"
	second := StructuredJSONConfig{}
	second.App.Version = "second"

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, first)},
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, second)},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "first", b.configs[2].App.Version)
}

func TestWithJSON_Errors(t *testing.T) {
	bad := t.TempDir() + "/bad.json"
	require.NoError(t, os.WriteFile(bad, []byte("{not valid json"), 0o600))

	for name, path := range map[string]string{
		"missing file": "/nonexistent/config.json",
		"malformed":    bad,
	} {
		t.Run(name, func(t *testing.T) {
			b := newConfigBuilder()
			b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
			b.withJSON()
			assert.Error(t, b.err)
		})
	}
}

// ── GetClientConfig ───────────────────────────────────────────────────────────

func TestGetClientConfig_FromEnv(t *testing.T) {
	t.Setenv("ADAPTER_SERVER_URL", "http://localhost:8080")
	t.Setenv("ADAPTER_LOGIN", "ada")
	t.Setenv("ADAPTER_PASSWORD", "secret")
	t.Setenv("SYNC_DEBOUNCE_INTERVAL", "500ms")

	cfg, err := GetClientConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.Adapter.ServerURL)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "ada", cfg.Credentials.Login)
	assert.Equal(t, 500*time.Millisecond, cfg.Sync.DebounceInterval)
	assert.Equal(t, DefaultRefreshMargin, cfg.Sync.RefreshMargin)
}

func TestGetStructuredConfig_RequiresServerSettings(t *testing.T) {
	_, err := GetStructuredConfig()
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
	assert.ErrorIs(t, err, ErrInvalidServerConfigs)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}
