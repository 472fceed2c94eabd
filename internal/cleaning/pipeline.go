package cleaning

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"salesclean/internal/dataset"
)

const tracerName = "salesclean.cleaning"

// StageResult records the outcome of one stage in a run.
type StageResult struct {
	StageID  string        `json:"stage_id"`
	RowsIn   int           `json:"rows_in"`
	RowsOut  int           `json:"rows_out"`
	Duration time.Duration `json:"duration"`
}

// RunReport summarizes a completed pipeline run.
type RunReport struct {
	RunID    string        `json:"run_id"`
	Stages   []StageResult `json:"stages"`
	Duration time.Duration `json:"duration"`
}

// Pipeline composes stages into a strict sequential chain. Each stage
// receives the previous stage's full output; the first error aborts the run.
type Pipeline struct {
	stages []Stage
	logger *slog.Logger
	tracer trace.Tracer
}

// NewPipeline creates a pipeline over the given stages. A nil logger falls
// back to slog.Default.
func NewPipeline(stages []Stage, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		stages: stages,
		logger: logger,
		tracer: otel.Tracer(tracerName),
	}
}

// Run threads the dataset through every stage in order and returns the final
// dataset together with a run report. On failure the returned error is a
// *StageError identifying the failing stage; no dataset is returned.
func (p *Pipeline) Run(ctx context.Context, ds *dataset.Dataset) (*dataset.Dataset, *RunReport, error) {
	report := &RunReport{RunID: uuid.NewString()}
	start := time.Now()

	ctx, span := p.tracer.Start(ctx, "cleaning.run",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("run.id", report.RunID),
			attribute.Int("run.rows_in", ds.NumRows()),
			attribute.Int("run.columns", ds.NumColumns()),
		),
	)
	defer span.End()

	p.logger.InfoContext(ctx, "cleaning run started",
		slog.String("run_id", report.RunID),
		slog.Int("rows", ds.NumRows()),
		slog.Int("columns", ds.NumColumns()))

	current := ds
	for _, stage := range p.stages {
		next, result, err := p.runStage(ctx, report.RunID, stage, current)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			report.Duration = time.Since(start)
			return nil, nil, err
		}
		report.Stages = append(report.Stages, result)
		current = next
	}

	report.Duration = time.Since(start)
	span.SetAttributes(attribute.Int("run.rows_out", current.NumRows()))
	span.SetStatus(codes.Ok, "")

	p.logger.InfoContext(ctx, "cleaning run completed",
		slog.String("run_id", report.RunID),
		slog.Int("rows_out", current.NumRows()),
		slog.Duration("duration", report.Duration))

	return current, report, nil
}

func (p *Pipeline) runStage(ctx context.Context, runID string, stage Stage, ds *dataset.Dataset) (*dataset.Dataset, StageResult, error) {
	ctx, span := p.tracer.Start(ctx, "cleaning.stage."+stage.ID(),
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("run.id", runID),
			attribute.String("stage.id", stage.ID()),
			attribute.Int("stage.rows_in", ds.NumRows()),
		),
	)
	defer span.End()

	start := time.Now()
	out, err := stage.Apply(ctx, ds)
	elapsed := time.Since(start)

	if err != nil {
		if _, ok := err.(*StageError); !ok {
			err = NewExecutionError(stage.ID(), err)
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		p.logger.ErrorContext(ctx, "stage failed",
			slog.String("run_id", runID),
			slog.String("stage", stage.ID()),
			slog.String("error", err.Error()))
		return nil, StageResult{}, err
	}

	result := StageResult{
		StageID:  stage.ID(),
		RowsIn:   ds.NumRows(),
		RowsOut:  out.NumRows(),
		Duration: elapsed,
	}

	span.SetAttributes(attribute.Int("stage.rows_out", out.NumRows()))
	p.logger.InfoContext(ctx, "stage completed",
		slog.String("run_id", runID),
		slog.String("stage", stage.ID()),
		slog.String("name", stage.Name()),
		slog.Int("rows_in", result.RowsIn),
		slog.Int("rows_out", result.RowsOut),
		slog.Duration("duration", elapsed))

	return out, result, nil
}
