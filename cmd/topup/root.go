package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"frameworks/topup/internal/batch"
	"frameworks/topup/internal/config"
	"frameworks/topup/internal/notify"
	envcfg "frameworks/topup/pkg/config"
	"frameworks/topup/pkg/logging"
	"frameworks/topup/pkg/version"
)

type rootOptions struct {
	configFile string
	overrides  config.Config
}

// newRootCmd returns the topup command. Running it with no flags reads
// users.json and companies.json and writes output.txt in the working
// directory.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "topup",
		Short:         "Apply company token top-ups to their active users",
		Long:          "Reads users and companies, tops up every active user of an existing company, and writes the per-company report.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBatch(cmd, opts, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	defaults := config.Default()
	flags := cmd.Flags()
	flags.StringVar(&opts.configFile, "config", "", "optional YAML config file")
	flags.StringVar(&opts.overrides.UsersPath, "users", defaults.UsersPath, "users JSON file")
	flags.StringVar(&opts.overrides.CompaniesPath, "companies", defaults.CompaniesPath, "companies JSON file")
	flags.StringVar(&opts.overrides.OutputPath, "output", defaults.OutputPath, "report output file")
	flags.IntVar(&opts.overrides.IndentSize, "indent", defaults.IndentSize, "spaces per report indent level")
	flags.StringVar(&opts.overrides.MetricsFile, "metrics-file", "", "write Prometheus metrics to this file")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

func runBatch(cmd *cobra.Command, opts *rootOptions, stdout, stderr io.Writer) error {
	logger := logging.NewLoggerWithService(version.ComponentName, stderr)
	envcfg.LoadEnv(logger)

	cfg, err := config.Load(opts.configFile)
	if err != nil {
		return err
	}
	applyFlags(cmd, opts.overrides, &cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	_, err = batch.NewRunner(cfg, stdout, logger, notify.Noop{}).Run()
	return err
}

// applyFlags copies explicitly set flags over the resolved config.
func applyFlags(cmd *cobra.Command, flagged config.Config, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("users") {
		cfg.UsersPath = flagged.UsersPath
	}
	if flags.Changed("companies") {
		cfg.CompaniesPath = flagged.CompaniesPath
	}
	if flags.Changed("output") {
		cfg.OutputPath = flagged.OutputPath
	}
	if flags.Changed("indent") {
		cfg.IndentSize = flagged.IndentSize
	}
	if flags.Changed("metrics-file") {
		cfg.MetricsFile = flagged.MetricsFile
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version info",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := version.GetInfo()
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", info)
			return nil
		},
	}
}
