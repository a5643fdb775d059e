package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"frameworks/topup/internal/report"
	envcfg "frameworks/topup/pkg/config"
)

// Environment variables overriding file and default settings.
const (
	EnvUsersFile     = "TOPUP_USERS_FILE"
	EnvCompaniesFile = "TOPUP_COMPANIES_FILE"
	EnvOutputFile    = "TOPUP_OUTPUT_FILE"
	EnvIndentSize    = "TOPUP_INDENT_SIZE"
	EnvMetricsFile   = "TOPUP_METRICS_FILE"
)

// Config holds the batch settings.
type Config struct {
	UsersPath     string `yaml:"users_file" validate:"required"`
	CompaniesPath string `yaml:"companies_file" validate:"required"`
	OutputPath    string `yaml:"output_file" validate:"required"`
	IndentSize    int    `yaml:"indent_size" validate:"gte=0,lte=16"`
	// MetricsFile is optional; when set, run metrics are written there in
	// Prometheus text format.
	MetricsFile string `yaml:"metrics_file"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		UsersPath:     "users.json",
		CompaniesPath: "companies.json",
		OutputPath:    "output.txt",
		IndentSize:    report.DefaultIndentSize,
	}
}

// Load resolves settings from defaults, the optional YAML file at path and
// then the environment.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return Config{}, err
		}
	}
	cfg.mergeEnv()
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) mergeEnv() {
	c.UsersPath = envcfg.GetEnv(EnvUsersFile, c.UsersPath)
	c.CompaniesPath = envcfg.GetEnv(EnvCompaniesFile, c.CompaniesPath)
	c.OutputPath = envcfg.GetEnv(EnvOutputFile, c.OutputPath)
	c.IndentSize = envcfg.GetEnvInt(EnvIndentSize, c.IndentSize)
	c.MetricsFile = envcfg.GetEnv(EnvMetricsFile, c.MetricsFile)
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate reports settings the batch cannot run with.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("invalid config: %s failed %q", fe.Field(), fe.Tag())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// ReportOptions returns the formatter settings.
func (c Config) ReportOptions() report.Options {
	return report.Options{IndentSize: c.IndentSize}
}
