package cleaning

import (
	"context"

	"salesclean/internal/dataset"
)

// InvalidRowFilter removes semantically impossible rows: a negative price or
// quantity is a data entry error, not analyzable data.
//
// The stage re-coerces both columns before filtering, so it is safe to run
// standalone; on a dataset that already went through MissingResolver the
// re-coercion is a no-op. A missing value encountered here does not satisfy
// the >= 0 requirement and excludes the row.
type InvalidRowFilter struct{}

// NewInvalidRowFilter creates the invalid-row filtering stage.
func NewInvalidRowFilter() *InvalidRowFilter {
	return &InvalidRowFilter{}
}

// ID returns the stage ID.
func (f *InvalidRowFilter) ID() string { return StageIDInvalid }

// Name returns the stage name.
func (f *InvalidRowFilter) Name() string { return StageNameInvalid }

// Apply drops every row where a present price or quantity is negative or
// missing. Row order among survivors is preserved; when neither column
// exists the stage is a pass-through.
func (f *InvalidRowFilter) Apply(ctx context.Context, ds *dataset.Dataset) (*dataset.Dataset, error) {
	out, present := coerceNumericColumns(ds)
	if len(present) == 0 {
		return ds.Clone(), nil
	}

	indices := make([]int, 0, len(present))
	for _, label := range present {
		idx, _ := out.ColumnIndex(label)
		indices = append(indices, idx)
	}

	return out.FilterRows(func(row dataset.Row) bool {
		for _, idx := range indices {
			val, ok := row[idx].Float()
			if !ok || val < 0 {
				return false
			}
		}
		return true
	}), nil
}
