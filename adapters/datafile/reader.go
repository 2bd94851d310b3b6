// Package datafile is the dataset accessor: it reads a recipe dataset
// from a CSV or Excel file into a typed table. All I/O of the system
// lives here; the analyzers never touch the filesystem.
package datafile

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"recipelens/domain/table"
	internal "recipelens/internal"
	"recipelens/internal/errors"
)

// Reader loads Excel and CSV recipe datasets
type Reader struct {
	filePath string
	fileType string // "xlsx" or "csv"
	infer    table.InferenceConfig
}

// NewReader creates a reader for the given file; the extension decides
// the format.
func NewReader(filePath string) *Reader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "xlsx"
	if ext == ".csv" {
		fileType = "csv"
	}
	return &Reader{
		filePath: filePath,
		fileType: fileType,
		infer:    table.DefaultInferenceConfig(),
	}
}

// Read loads the file into a typed table, inferring column kinds from
// a sample of each column's raw cells.
func (r *Reader) Read() (*table.Table, error) {
	internal.DefaultLogger.Info("reading %s dataset: %s", r.fileType, r.filePath)

	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, errors.NotFound("dataset file " + r.filePath)
	}

	var rows [][]string
	var err error
	switch r.fileType {
	case "csv":
		rows, err = r.readCSV()
	case "xlsx":
		rows, err = r.readExcel()
	default:
		return nil, errors.InvalidInput("unsupported dataset file type: " + r.fileType)
	}
	if err != nil {
		internal.DefaultLogger.Error("failed to read dataset %s: %v", r.filePath, err)
		return nil, err
	}

	if len(rows) < 2 {
		return nil, errors.DataMalformed("dataset must have a header row and at least one data row")
	}
	return r.buildTable(rows)
}

func (r *Reader) readCSV() ([][]string, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open CSV file")
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // ragged rows surface later as arity errors
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.WithCode(errors.CodeDataMalformed, errors.Wrap(err, "failed to parse CSV file"))
	}
	return rows, nil
}

func (r *Reader) readExcel() ([][]string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open Excel file")
	}
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	if err != nil {
		return nil, errors.WithCode(errors.CodeDataMalformed, errors.Wrap(err, "failed to read Sheet1"))
	}
	return rows, nil
}

// buildTable infers a kind per column, then coerces every cell.
func (r *Reader) buildTable(rows [][]string) (*table.Table, error) {
	headers := rows[0]
	data := rows[1:]

	kinds := make([]table.Kind, len(headers))
	for c := range headers {
		column := make([]string, 0, len(data))
		for _, row := range data {
			if c < len(row) {
				column = append(column, row[c])
			}
		}
		kinds[c] = table.InferKind(column, r.infer)
	}

	cols := make([]table.Column, len(headers))
	for c, h := range headers {
		cols[c] = table.Column{Name: strings.TrimSpace(h), Kind: kinds[c]}
	}
	t := table.New(cols)

	for _, row := range data {
		vals := make([]table.Value, len(headers))
		for c := range headers {
			raw := ""
			if c < len(row) {
				raw = row[c]
			}
			vals[c] = table.CoerceCell(raw, kinds[c])
		}
		if err := t.AppendRow(vals); err != nil {
			return nil, err
		}
	}

	internal.DefaultLogger.Info("dataset loaded: %d rows, %d columns", t.NumRows(), len(headers))
	return t, nil
}
