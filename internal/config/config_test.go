package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvUsersFile, EnvCompaniesFile, EnvOutputFile, EnvIndentSize, EnvMetricsFile} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Config{
		UsersPath:     "users.json",
		CompaniesPath: "companies.json",
		OutputPath:    "output.txt",
		IndentSize:    4,
	}, cfg)
	require.NoError(t, cfg.Validate())
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "topup.yaml")
	require.NoError(t, os.WriteFile(path, []byte("users_file: in/users.json\nindent_size: 2\noutput_file: out.txt\n"), 0o600))
	t.Setenv(EnvOutputFile, "env-out.txt")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "in/users.json", cfg.UsersPath)
	assert.Equal(t, "companies.json", cfg.CompaniesPath)
	assert.Equal(t, "env-out.txt", cfg.OutputPath)
	assert.Equal(t, 2, cfg.IndentSize)
}

func TestLoad_EnvIndentZero(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvIndentSize, "0")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.IndentSize)
}

func TestLoad_EmptyFileKeepsDefaults(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "topup.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_UnknownKeyRejected(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "topup.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: x.txt\n"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"metrics file", func(c *Config) { c.MetricsFile = "m.prom" }, true},
		{"no output", func(c *Config) { c.OutputPath = "" }, false},
		{"no users", func(c *Config) { c.UsersPath = "" }, false},
		{"negative indent", func(c *Config) { c.IndentSize = -1 }, false},
		{"huge indent", func(c *Config) { c.IndentSize = 17 }, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestReportOptions(t *testing.T) {
	cfg := Default()
	cfg.IndentSize = 3
	assert.Equal(t, 3, cfg.ReportOptions().IndentSize)
}
