package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"salesclean/internal/dataset"
)

// Reader loads raw tabular files into datasets.
type Reader struct {
	logger *slog.Logger
}

// NewReader creates a reader. A nil logger falls back to slog.Default.
func NewReader(logger *slog.Logger) *Reader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reader{logger: logger}
}

// Read loads the file at path, dispatching on extension: .xlsx workbooks go
// through the Excel reader, everything else is read as CSV.
func (r *Reader) Read(path string) (*dataset.Dataset, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return r.ReadXLSX(path)
	}
	return r.ReadCSV(path)
}

// ReadCSV loads a delimited-text file: one header row naming the columns
// followed by data rows. Every cell is taken verbatim as a string.
//
// A missing file surfaces as a wrapped fs.ErrNotExist; malformed content
// (ragged rows, bad quoting, no header row) surfaces as a *ParseError.
func (r *Reader) ReadCSV(path string) (*dataset.Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input file: %w", err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, &ParseError{Path: path, Cause: err}
	}
	if len(records) == 0 {
		return nil, &ParseError{Path: path, Cause: errors.New("missing header row")}
	}

	ds, err := recordsToDataset(records)
	if err != nil {
		return nil, &ParseError{Path: path, Cause: err}
	}

	r.logger.Info("loaded raw data",
		slog.String("path", path),
		slog.Int("rows", ds.NumRows()),
		slog.Int("columns", ds.NumColumns()))
	return ds, nil
}

// ReadXLSX loads the first sheet of an Excel workbook, taking each cell's
// displayed text verbatim. Rows shorter than the header are padded with
// empty cells; excelize drops trailing empties.
func (r *Reader) ReadXLSX(path string) (*dataset.Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("open input file: %w", err)
		}
		return nil, &ParseError{Path: path, Cause: err}
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, &ParseError{Path: path, Cause: errors.New("workbook has no sheets")}
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, &ParseError{Path: path, Cause: err}
	}
	if len(rows) == 0 {
		return nil, &ParseError{Path: path, Cause: errors.New("missing header row")}
	}

	width := len(rows[0])
	for i, row := range rows {
		for len(row) < width {
			row = append(row, "")
		}
		rows[i] = row[:width]
	}

	ds, err := recordsToDataset(rows)
	if err != nil {
		return nil, &ParseError{Path: path, Cause: err}
	}

	r.logger.Info("loaded raw data",
		slog.String("path", path),
		slog.String("sheet", sheet),
		slog.Int("rows", ds.NumRows()),
		slog.Int("columns", ds.NumColumns()))
	return ds, nil
}

func recordsToDataset(records [][]string) (*dataset.Dataset, error) {
	columns := records[0]
	rows := make([]dataset.Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make(dataset.Row, 0, len(rec))
		for _, cell := range rec {
			row = append(row, dataset.String(cell))
		}
		rows = append(rows, row)
	}
	return dataset.New(columns, rows)
}
