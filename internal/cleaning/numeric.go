package cleaning

import (
	"math"
	"strconv"
	"strings"

	"salesclean/internal/dataset"
)

// NumericColumns are the designated numeric columns, by exact normalized
// label. Their absence is tolerated by both numeric stages.
var NumericColumns = []string{"price", "quantity"}

// Coerce reinterprets a cell as a number. Numeric cells pass through, any
// other cell whose string form parses as a decimal number becomes numeric,
// and everything else becomes the missing marker. Coercion is idempotent.
func Coerce(v dataset.Value) dataset.Value {
	if v.Kind() == dataset.KindNumber {
		return v
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v.Text()), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		// Not a plain decimal number; ParseFloat also admits NaN and Inf,
		// which are not valid cell values here.
		return dataset.Missing()
	}
	return dataset.Number(f)
}

// coerceNumericColumns applies Coerce to every designated numeric column
// present in the dataset and returns the present labels.
func coerceNumericColumns(ds *dataset.Dataset) (*dataset.Dataset, []string) {
	var present []string
	out := ds
	for _, label := range NumericColumns {
		if !ds.HasColumn(label) {
			continue
		}
		present = append(present, label)
		out = out.MapColumn(label, Coerce)
	}
	return out, present
}
