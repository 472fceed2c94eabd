package cleaning

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salesclean/internal/dataset"
)

func rawSales() *dataset.Dataset {
	return dataset.MustNew(
		[]string{" Product Name ", "Category", "Unit-Price", "Quantity"},
		[]dataset.Row{
			{dataset.String(" Widget  "), dataset.String("Toys "), dataset.String("19.99"), dataset.String("3")},
			{dataset.String("Gadget"), dataset.String("Toys"), dataset.String("abc"), dataset.String("2")},
			{dataset.String("Doohickey"), dataset.String("Tools"), dataset.String("-5"), dataset.String("3")},
			{dataset.String("Gizmo"), dataset.String("Tools"), dataset.String("4.5"), dataset.String("-1")},
			{dataset.String("Sprocket"), dataset.String("Parts"), dataset.String("1.25"), dataset.String("10")},
		},
	)
}

func TestPipeline_Run(t *testing.T) {
	raw := rawSales()
	p := NewPipeline(DefaultStages(Options{}), nil)

	cleaned, report, err := p.Run(context.Background(), raw)
	require.NoError(t, err)
	require.NotNil(t, report)

	// Headers normalized; "Quantity" becomes the designated "quantity".
	assert.Equal(t, []string{"product_name", "category", "unit_price", "quantity"}, cleaned.Columns())

	// unit_price is not the designated "price" column, so it is untouched;
	// only the negative-quantity row is dropped.
	require.Equal(t, 4, cleaned.NumRows())
	v, _ := cleaned.Cell(0, "product_name")
	assert.Equal(t, "Widget", v.Text())
	v, _ = cleaned.Cell(0, "category")
	assert.Equal(t, "Toys", v.Text())

	// Report covers all four stages with monotone row counts.
	require.Len(t, report.Stages, 4)
	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, []string{StageIDHeaders, StageIDTrim, StageIDMissing, StageIDInvalid},
		[]string{report.Stages[0].StageID, report.Stages[1].StageID, report.Stages[2].StageID, report.Stages[3].StageID})
	for i, sr := range report.Stages {
		assert.LessOrEqual(t, sr.RowsOut, sr.RowsIn, "stage %d must not grow the dataset", i)
	}
	assert.Equal(t, report.Stages[0].RowsIn, report.Stages[0].RowsOut, "header stage preserves rows")
	assert.Equal(t, report.Stages[1].RowsIn, report.Stages[1].RowsOut, "trim stage preserves rows")

	// Input untouched.
	assert.Equal(t, 5, raw.NumRows())
	assert.Equal(t, " Product Name ", raw.Columns()[0])
}

func TestPipeline_DesignatedNumericColumns(t *testing.T) {
	raw := dataset.MustNew(
		[]string{"Product", " Price ", "Quantity"},
		[]dataset.Row{
			{dataset.String("Widget"), dataset.String("19.99"), dataset.String("3")},
			{dataset.String("Gadget"), dataset.String("abc"), dataset.String("2")},
			{dataset.String("Doohickey"), dataset.String("-5"), dataset.String("3")},
			{dataset.String("Gizmo"), dataset.String("4.5"), dataset.String("-1")},
		},
	)

	cleaned, _, err := NewPipeline(DefaultStages(Options{}), nil).Run(context.Background(), raw)
	require.NoError(t, err)

	require.Equal(t, 1, cleaned.NumRows())
	v, _ := cleaned.Cell(0, "product")
	assert.Equal(t, "Widget", v.Text())

	// Every surviving designated value is a non-negative number.
	for _, label := range NumericColumns {
		cell, ok := cleaned.Cell(0, label)
		require.True(t, ok)
		f, isNum := cell.Float()
		require.True(t, isNum)
		assert.GreaterOrEqual(t, f, 0.0)
	}
}

func TestPipeline_ColumnSetStableAfterHeaders(t *testing.T) {
	raw := rawSales()
	normalized, err := NewHeaderNormalizer(CollisionLastWins).Apply(context.Background(), raw)
	require.NoError(t, err)

	current := normalized
	for _, stage := range []Stage{NewTextTrimmer(), NewMissingResolver(), NewInvalidRowFilter()} {
		next, err := stage.Apply(context.Background(), current)
		require.NoError(t, err)
		assert.Equal(t, normalized.Columns(), next.Columns(),
			"stage %s must not change the column set", stage.ID())
		current = next
	}
}

func TestPipeline_EmptyInput(t *testing.T) {
	raw := dataset.MustNew([]string{"Product", "Price", "Quantity"}, nil)

	cleaned, report, err := NewPipeline(DefaultStages(Options{}), nil).Run(context.Background(), raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"product", "price", "quantity"}, cleaned.Columns())
	assert.Equal(t, 0, cleaned.NumRows())
	require.Len(t, report.Stages, 4)
}

func TestPipeline_AbortsOnFirstError(t *testing.T) {
	raw := dataset.MustNew(
		[]string{"Unit Price", "unit-price"},
		[]dataset.Row{{dataset.String("1"), dataset.String("2")}},
	)

	p := NewPipeline(DefaultStages(Options{Collisions: CollisionFail}), nil)
	cleaned, report, err := p.Run(context.Background(), raw)
	require.Error(t, err)
	assert.Nil(t, cleaned)
	assert.Nil(t, report)
	assert.True(t, IsKind(err, ErrorKindCollision))
}

type failingStage struct{}

func (failingStage) ID() string   { return "boom" }
func (failingStage) Name() string { return "Boom" }
func (failingStage) Apply(context.Context, *dataset.Dataset) (*dataset.Dataset, error) {
	return nil, errors.New("kaput")
}

func TestPipeline_WrapsPlainErrors(t *testing.T) {
	raw := dataset.MustNew([]string{"a"}, nil)

	_, _, err := NewPipeline([]Stage{failingStage{}}, nil).Run(context.Background(), raw)
	require.Error(t, err)

	var se *StageError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "boom", se.Stage)
	assert.Equal(t, ErrorKindExecution, se.Kind)
	assert.EqualError(t, errors.Unwrap(se), "kaput")
}

func TestStageError_Message(t *testing.T) {
	err := NewExecutionError("trim_text", errors.New("kaput"))
	assert.Contains(t, err.Error(), "trim_text")
	assert.Contains(t, err.Error(), "execution")
}
