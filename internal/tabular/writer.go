package tabular

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"salesclean/internal/dataset"
)

// Writer persists a cleaned dataset as a delimited-text file.
type Writer struct {
	logger *slog.Logger
}

// WriteOptions configures CSV output behavior.
type WriteOptions struct {
	// BOMPrefix prepends a UTF-8 BOM so Excel recognizes the encoding.
	BOMPrefix bool
}

// NewWriter creates a writer. A nil logger falls back to slog.Default.
func NewWriter(logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Writer{logger: logger}
}

// WriteCSV serializes the dataset to path: a header row with the column
// labels in their current order, then one line per row in row order. Any
// existing file at path is overwritten; the parent directory is created if
// needed.
func (w *Writer) WriteCSV(path string, ds *dataset.Dataset, opts WriteOptions) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer file.Close()

	if opts.BOMPrefix {
		if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return fmt.Errorf("write BOM: %w", err)
		}
	}

	writer := csv.NewWriter(file)
	if err := writer.Write(ds.Columns()); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, record := range ds.Records() {
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write record %d: %w", i, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush output file: %w", err)
	}

	w.logger.Info("wrote cleaned data",
		slog.String("path", path),
		slog.Int("rows", ds.NumRows()),
		slog.Int("columns", ds.NumColumns()))
	return nil
}
