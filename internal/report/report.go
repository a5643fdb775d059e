// Package report renders top-up results as the plain-text company report.
package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"frameworks/topup/internal/models"
)

// DefaultIndentSize is the number of spaces per indent level.
const DefaultIndentSize = 4

// Options control report layout.
type Options struct {
	IndentSize int
}

// Writer renders reports and writes them to disk.
type Writer struct {
	opts Options
}

// NewWriter returns a Writer using opts.
func NewWriter(opts Options) *Writer {
	return &Writer{opts: opts}
}

// Render writes the report for every company to w.
func (wr *Writer) Render(w io.Writer, reports []models.CompanyReport) error {
	bw := bufio.NewWriter(w)
	for _, r := range reports {
		lines := []string{
			fmt.Sprintf("Company ID: %d", r.Company.ID),
			fmt.Sprintf("Company Name: %s", r.Company.Name),
			"Users emailed:",
		}
		lines = append(lines, wr.recordLines(r.UsersEmailed, 1)...)
		lines = append(lines, "Users not emailed:")
		lines = append(lines, wr.recordLines(r.UsersNotEmailed, 1)...)
		lines = append(lines, fmt.Sprintf("Total top ups: %d", r.TotalTopUps), "")

		for _, line := range lines {
			if err := putLine(bw, line); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// Write renders reports into path, replacing any existing file.
func (wr *Writer) Write(reports []models.CompanyReport, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("close report %s: %w", path, cerr))
		}
	}()

	if err := wr.Render(f, reports); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}
	return nil
}

func (wr *Writer) recordLines(records []models.TopUpRecord, level int) []string {
	lines := make([]string, 0, 3*len(records))
	for _, r := range records {
		lines = append(lines,
			wr.indent(fmt.Sprintf("%s, %s, %s", r.User.LastName, r.User.FirstName, r.User.Email), level),
			wr.indent(fmt.Sprintf("  Previous token balance: %d", r.PreviousTokenBalance), level),
			wr.indent(fmt.Sprintf("  New token balance: %d", r.NewTokenBalance), level),
		)
	}
	return lines
}

func (wr *Writer) indent(s string, level int) string {
	return strings.Repeat(" ", wr.opts.IndentSize*level) + s
}

// putLine terminates s with a newline unless it already ends with one.
func putLine(w *bufio.Writer, s string) error {
	if _, err := w.WriteString(s); err != nil {
		return err
	}
	if strings.HasSuffix(s, "\n") {
		return nil
	}
	return w.WriteByte('\n')
}
