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

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{DB: DB{Driver: DriverSQLite, DSN: "file:test.db"}},
		Server:  Server{HTTPAddress: ":5050"},
	}
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilderFailsValidation(t *testing.T) {
	_, err := newConfigBuilder().build()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_LaterConfigWins(t *testing.T) {
	b := newConfigBuilder()
	first := validConfig()
	first.App.Version = "1.0.0"
	second := &StructuredConfig{App: App{Version: "2.0.0"}}
	b.configs = append(b.configs, first, second)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.Equal(t, DriverSQLite, cfg.Storage.DB.Driver)
}

func TestBuild_ZeroFieldsDoNotOverride(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, validConfig(), &StructuredConfig{})

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "file:test.db", cfg.Storage.DB.DSN)
	assert.Equal(t, ":5050", cfg.Server.HTTPAddress)
}

func TestBuild_HTTPAddressFromPort(t *testing.T) {
	b := newConfigBuilder()
	cfg := validConfig()
	cfg.Server.HTTPAddress = ""
	cfg.Port = "7070"
	b.configs = append(b.configs, cfg)

	got, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, ":7070", got.Server.HTTPAddress)
}

func TestBuild_ExplicitAddressBeatsPort(t *testing.T) {
	b := newConfigBuilder()
	cfg := validConfig()
	cfg.Server.HTTPAddress = "127.0.0.1:9000"
	cfg.Port = "7070"
	b.configs = append(b.configs, cfg)

	got, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", got.Server.HTTPAddress)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoPathSkips(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, validConfig())

	b.withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_MissingFileSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})

	b.withJSON()
	assert.Error(t, b.err)
}

func TestWithJSON_LastPathWins(t *testing.T) {
	first := writeTempJSONConfig(t, map[string]any{"app": map[string]any{"version": "first"}})
	second := writeTempJSONConfig(t, map[string]any{"app": map[string]any{"version": "second"}})

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: first},
		&StructuredConfig{JSONFilePath: second},
	)

	b.withJSON()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "second", b.configs[2].App.Version)
}

// ── loadStructuredConfig ──────────────────────────────────────────────────────

func TestLoadStructuredConfig_Defaults(t *testing.T) {
	clearEnvVars(t)

	cfg, err := loadStructuredConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.App.Version)
	assert.Equal(t, DriverMongo, cfg.Storage.DB.Driver)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Storage.DB.DSN)
	assert.Equal(t, "records", cfg.Storage.DB.Database)
	assert.Equal(t, ":5050", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "http://localhost:5050", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
}

func TestLoadStructuredConfig_PortFromEnv(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("PORT", "6060")

	cfg, err := loadStructuredConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, ":6060", cfg.Server.HTTPAddress)
}

func TestLoadStructuredConfig_Priority(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("APP_VERSION", "from-env")
	t.Setenv("STORAGE_DB_DRIVER", DriverPostgres)
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://env")

	jsonPath := writeTempJSONConfig(t, map[string]any{
		"storage": map[string]any{"db": map[string]any{"dsn": "postgres://json"}},
	})

	cfg, err := loadStructuredConfig([]string{"-version", "from-flag", "-c", jsonPath})
	require.NoError(t, err)

	assert.Equal(t, "from-flag", cfg.App.Version)
	assert.Equal(t, DriverPostgres, cfg.Storage.DB.Driver)
	assert.Equal(t, "postgres://json", cfg.Storage.DB.DSN)
}

func TestLoadStructuredConfig_UnknownDriver(t *testing.T) {
	clearEnvVars(t)

	_, err := loadStructuredConfig([]string{"-driver", "redis"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

func TestLoadStructuredConfig_BadFlag(t *testing.T) {
	clearEnvVars(t)

	_, err := loadStructuredConfig([]string{"-a", "not-an-address"})
	assert.Error(t, err)
}

// ── loadClientConfig ──────────────────────────────────────────────────────────

func TestLoadClientConfig(t *testing.T) {
	clearEnvVars(t)

	cfg, err := loadClientConfig([]string{"-server", "http://records.local:8080", "-client-timeout", "5s"})
	require.NoError(t, err)
	assert.Equal(t, "http://records.local:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "dev", cfg.App.Version)
}

func TestClientConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     ClientConfig
		wantErr bool
	}{
		{"valid", ClientConfig{Adapter: ClientAdapter{HTTPAddress: "http://x", RequestTimeout: time.Second}}, false},
		{"no address", ClientConfig{Adapter: ClientAdapter{RequestTimeout: time.Second}}, true},
		{"no timeout", ClientConfig{Adapter: ClientAdapter{HTTPAddress: "http://x"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestStructuredConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{"valid sqlite", func(cfg *StructuredConfig) {}, nil},
		{"mongo without database", func(cfg *StructuredConfig) { cfg.Storage.DB.Driver = DriverMongo }, ErrInvalidStorageConfigs},
		{"empty dsn", func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" }, ErrInvalidStorageConfigs},
		{"no addresses", func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" }, ErrInvalidServerConfigs},
		{"grpc only", func(cfg *StructuredConfig) {
			cfg.Server.HTTPAddress = ""
			cfg.Server.GRPCAddress = ":9090"
		}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
