// Package batch runs the top-up pipeline: load, validate, compute, report.
package batch

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"frameworks/topup/internal/config"
	"frameworks/topup/internal/loader"
	"frameworks/topup/internal/models"
	"frameworks/topup/internal/notify"
	"frameworks/topup/internal/report"
	"frameworks/topup/internal/schema"
	"frameworks/topup/internal/topup"
)

// Dataset names used in validation errors and metrics labels.
const (
	DatasetUsers     = "user"
	DatasetCompanies = "company"
)

// ValidationError means an input file did not have the expected shape.
type ValidationError struct {
	Dataset string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("Invalid %s data", e.Dataset)
}

// Summary describes a completed run.
type Summary struct {
	RunID           string
	Companies       int
	UsersEmailed    int
	UsersNotEmailed int
	UsersSkipped    int
	TokensGranted   int64
}

// Runner executes one batch. Out receives the user-facing messages.
type Runner struct {
	cfg      config.Config
	out      io.Writer
	logger   *logrus.Logger
	notifier notify.Notifier
	metrics  *Metrics
	now      func() time.Time
}

// NewRunner builds a Runner. A nil notifier drops notifications.
func NewRunner(cfg config.Config, out io.Writer, logger *logrus.Logger, notifier notify.Notifier) *Runner {
	if notifier == nil {
		notifier = notify.Noop{}
	}
	return &Runner{
		cfg:      cfg,
		out:      out,
		logger:   logger,
		notifier: notifier,
		metrics:  NewMetrics(),
		now:      time.Now,
	}
}

// Metrics returns the metrics updated by Run.
func (r *Runner) Metrics() *Metrics {
	return r.metrics
}

// Run executes the batch. A *ValidationError is returned when an input is
// rejected; in that case nothing has been computed or written.
func (r *Runner) Run() (Summary, error) {
	runID := uuid.NewString()
	log := r.logger.WithField("run_id", runID)
	if r.cfg.MetricsFile != "" {
		defer r.exportMetrics(log)
	}

	log.WithFields(logrus.Fields{
		"users_file":     r.cfg.UsersPath,
		"companies_file": r.cfg.CompaniesPath,
		"output_file":    r.cfg.OutputPath,
	}).Info("Starting top-up run")

	ld := loader.New(r.out, log)
	rawUsers := ld.Load(r.cfg.UsersPath)
	rawCompanies := ld.Load(r.cfg.CompaniesPath)

	if !schema.ValidUsers(rawUsers) {
		return Summary{}, r.rejected(log, DatasetUsers)
	}
	if !schema.ValidCompanies(rawCompanies) {
		return Summary{}, r.rejected(log, DatasetCompanies)
	}
	users := schema.DecodeUsers(rawUsers)
	companies := schema.DecodeCompanies(rawCompanies)
	log.WithFields(logrus.Fields{"users": len(users), "companies": len(companies)}).Info("Input validated")

	engine := topup.NewEngine(notify.WithLogging(r.notifier, log))
	reports := engine.Compute(users, companies)

	if err := report.NewWriter(r.cfg.ReportOptions()).Write(reports, r.cfg.OutputPath); err != nil {
		log.WithError(err).Error("Failed to write report")
		return Summary{}, err
	}
	fmt.Fprintf(r.out, "Wrote top up data to `%s`\n", r.cfg.OutputPath)

	summary := summarize(runID, len(users), reports)
	r.metrics.observeReports(reports)
	r.metrics.observeSuccess(r.now())
	log.WithFields(logrus.Fields{
		"companies":         summary.Companies,
		"users_emailed":     summary.UsersEmailed,
		"users_not_emailed": summary.UsersNotEmailed,
		"users_skipped":     summary.UsersSkipped,
		"tokens_granted":    summary.TokensGranted,
	}).Info("Top-up run complete")
	return summary, nil
}

func (r *Runner) rejected(log logrus.FieldLogger, dataset string) error {
	r.metrics.ValidationFailures.WithLabelValues(dataset).Inc()
	log.WithField("dataset", dataset).Error("Input failed validation")
	return &ValidationError{Dataset: dataset}
}

func (r *Runner) exportMetrics(log logrus.FieldLogger) {
	if err := r.metrics.WriteTextfile(r.cfg.MetricsFile); err != nil {
		log.WithError(err).Warn("Failed to export metrics")
	}
}

func summarize(runID string, totalUsers int, reports []models.CompanyReport) Summary {
	s := Summary{RunID: runID, Companies: len(reports)}
	for _, rep := range reports {
		s.UsersEmailed += len(rep.UsersEmailed)
		s.UsersNotEmailed += len(rep.UsersNotEmailed)
		s.TokensGranted += rep.TotalTopUps
	}
	s.UsersSkipped = totalUsers - s.UsersEmailed - s.UsersNotEmailed
	return s
}
