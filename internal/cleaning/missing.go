package cleaning

import (
	"context"

	"salesclean/internal/dataset"
)

// MissingResolver applies the missing-value policy to the designated numeric
// columns: price and quantity cells are coerced to numbers (anything that
// does not parse becomes the missing marker), then every row lacking a value
// in a present designated column is dropped.
//
// Missing values in non-designated columns are untouched. When neither
// column exists the stage is a pass-through.
type MissingResolver struct{}

// NewMissingResolver creates the missing-value resolution stage.
func NewMissingResolver() *MissingResolver {
	return &MissingResolver{}
}

// ID returns the stage ID.
func (m *MissingResolver) ID() string { return StageIDMissing }

// Name returns the stage name.
func (m *MissingResolver) Name() string { return StageNameMissing }

// Apply coerces the present designated numeric columns, then drops rows
// where any of them is missing. Row order among survivors is preserved.
func (m *MissingResolver) Apply(ctx context.Context, ds *dataset.Dataset) (*dataset.Dataset, error) {
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
			if row[idx].IsMissing() {
				return false
			}
		}
		return true
	}), nil
}
