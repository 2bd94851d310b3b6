// Package session owns the shared table of one analysis session. It
// replaces framework-managed global state with an explicitly passed
// object: Clean is the single writer, the analyzers are readers, and
// callers must serialize cleaning against analysis — no internal
// locking is provided.
package session

import (
	"time"

	"github.com/google/uuid"

	"recipelens/domain/report"
	"recipelens/domain/table"
	internal "recipelens/internal"
	"recipelens/internal/anomaly"
	"recipelens/internal/cleaning"
	"recipelens/internal/errors"
	"recipelens/internal/facets"
)

// RequiredColumns must all be present in the loaded dataset.
var RequiredColumns = []string{
	"submitted", "nutrition", "tags", "contributor_id", "n_steps", "minutes",
}

// Analysis is one dataset analysis session. The anomaly report is
// taken at construction, before any cleaning, because the cleaner
// depends on the pre-clean missing-value column list; it is not
// recomputed when the table shrinks.
type Analysis struct {
	ID        string
	Name      string
	dateStart time.Time
	dateEnd   time.Time
	tbl       *table.Table
	anomalies *report.AnomalyReport
	log       *internal.Logger
}

// Options bound the analysis window and the detection thresholds.
type Options struct {
	Name            string
	DateStart       time.Time
	DateEnd         time.Time
	StdThreshold    float64
	ZScoreThreshold float64
}

// DefaultOptions mirror the dataset's documented defaults.
func DefaultOptions() Options {
	return Options{
		Name:            "RAW_recipes",
		DateStart:       time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC),
		DateEnd:         time.Date(2018, 12, 31, 0, 0, 0, 0, time.UTC),
		StdThreshold:    anomaly.DefaultStdThreshold,
		ZScoreThreshold: anomaly.DefaultZScoreThreshold,
	}
}

// New validates the table, narrows it to the analysis window, and runs
// anomaly detection. Construction fails on missing required columns,
// unparseable submission dates, or a detection error.
func New(tbl *table.Table, opts Options) (*Analysis, error) {
	log := internal.DefaultLogger

	for _, name := range RequiredColumns {
		if !tbl.HasColumn(name) {
			err := errors.ColumnMissing(name)
			log.Error("session initialization failed: %v", err)
			return nil, err
		}
	}

	if err := tbl.ConvertToTimestamp("submitted"); err != nil {
		log.Error("session initialization failed: %v", err)
		return nil, err
	}
	if err := tbl.FilterByDateRange("submitted", opts.DateStart, opts.DateEnd); err != nil {
		log.Error("session initialization failed: %v", err)
		return nil, err
	}

	anomalies, err := anomaly.Detect(tbl, opts.StdThreshold, opts.ZScoreThreshold)
	if err != nil {
		log.Error("session initialization failed detecting anomalies: %v", err)
		return nil, err
	}

	a := &Analysis{
		ID:        uuid.New().String(),
		Name:      opts.Name,
		dateStart: opts.DateStart,
		dateEnd:   opts.DateEnd,
		tbl:       tbl,
		anomalies: anomalies,
		log:       log,
	}
	log.Info("analysis session %s ready: %d rows, %d columns", a.ID, tbl.NumRows(), len(tbl.ColumnNames()))
	return a, nil
}

// Table exposes the session's table for readers.
func (a *Analysis) Table() *table.Table {
	return a.tbl
}

// Anomalies returns the report taken at construction. It reflects the
// table as loaded; it goes stale once Clean runs, by design.
func (a *Analysis) Anomalies() *report.AnomalyReport {
	return a.anomalies
}

// Window returns the session's configured analysis date range.
func (a *Analysis) Window() (time.Time, time.Time) {
	return a.dateStart, a.dateEnd
}

// Columns returns the current column names.
func (a *Analysis) Columns() []string {
	return a.tbl.ColumnNames()
}

// Clean removes outlier and missing-value rows using the pre-clean
// anomaly report. Prior row references become stale.
func (a *Analysis) Clean(method cleaning.Method, threshold float64) error {
	before := a.tbl.NumRows()
	if err := cleaning.Clean(a.tbl, a.anomalies, method, threshold); err != nil {
		return err
	}
	a.log.Info("cleaned table with method=%s threshold=%g: %d -> %d rows", method, threshold, before, a.tbl.NumRows())
	return nil
}

// Nutrition computes the nutrition facet.
func (a *Analysis) Nutrition() (map[string]report.NutritionStats, error) {
	return facets.AnalyzeNutrition(a.tbl)
}

// Temporal computes the temporal facet for an explicit window.
func (a *Analysis) Temporal(start, end time.Time) (report.TemporalStats, error) {
	return facets.AnalyzeTemporal(a.tbl, start, end)
}

// Complexity computes the complexity facet.
func (a *Analysis) Complexity() (report.ComplexityStats, error) {
	return facets.AnalyzeComplexity(a.tbl)
}

// Tags computes the tags facet.
func (a *Analysis) Tags() (report.TagStats, error) {
	return facets.AnalyzeTags(a.tbl)
}

// Contributors computes the contributors facet.
func (a *Analysis) Contributors() (report.ContributorStats, error) {
	return facets.AnalyzeContributors(a.tbl)
}

// Dataset assembles the comprehensive report using the session's
// configured date window for the temporal facet.
func (a *Analysis) Dataset() (*report.DatasetReport, error) {
	return facets.AnalyzeDataset(a.tbl, a.dateStart, a.dateEnd)
}
