package cleaning

import (
	"context"
	"strings"

	"salesclean/internal/dataset"
)

// TextTrimmer strips surrounding whitespace from designated text columns:
// any column whose normalized label contains "product" or "category".
//
// Every cell in a designated column is forced into its trimmed string form,
// including numeric and missing cells. The conversion is deliberate: the
// trim policy is uniform per column, not per cell type.
type TextTrimmer struct{}

// NewTextTrimmer creates the text trimming stage.
func NewTextTrimmer() *TextTrimmer {
	return &TextTrimmer{}
}

// ID returns the stage ID.
func (t *TextTrimmer) ID() string { return StageIDTrim }

// Name returns the stage name.
func (t *TextTrimmer) Name() string { return StageNameTrim }

// Apply trims every cell of every designated text column. Only leading and
// trailing whitespace is removed; internal spacing is kept as-is. Columns
// not matching the substring rule pass through unchanged.
func (t *TextTrimmer) Apply(ctx context.Context, ds *dataset.Dataset) (*dataset.Dataset, error) {
	out := ds
	for _, label := range ds.Columns() {
		if !IsTextColumn(label) {
			continue
		}
		out = out.MapColumn(label, func(v dataset.Value) dataset.Value {
			return dataset.String(strings.TrimSpace(v.Text()))
		})
	}
	if out == ds {
		// No designated columns; still hand back a fresh value.
		out = ds.Clone()
	}
	return out, nil
}

// IsTextColumn reports whether a normalized label designates a text column.
func IsTextColumn(label string) bool {
	return strings.Contains(label, "product") || strings.Contains(label, "category")
}
