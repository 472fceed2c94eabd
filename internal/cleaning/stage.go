package cleaning

import (
	"context"

	"salesclean/internal/dataset"
)

// Stage is a single transformation in the cleaning pipeline. Apply must
// treat its input as read-only and return a fresh dataset.
type Stage interface {
	// ID returns the unique identifier for this stage.
	ID() string

	// Name returns the human-readable name for this stage.
	Name() string

	// Apply runs the stage against the given dataset.
	Apply(ctx context.Context, ds *dataset.Dataset) (*dataset.Dataset, error)
}

// Stage identifiers.
const (
	StageIDHeaders = "normalize_headers"
	StageIDTrim    = "trim_text"
	StageIDMissing = "resolve_missing"
	StageIDInvalid = "drop_invalid"
)

// Stage names.
const (
	StageNameHeaders = "Header Normalization"
	StageNameTrim    = "Text Trimming"
	StageNameMissing = "Missing Value Resolution"
	StageNameInvalid = "Invalid Row Filtering"
)

// CollisionPolicy decides what happens when two distinct raw labels
// normalize to the same label.
type CollisionPolicy string

const (
	// CollisionLastWins deterministically keeps the later column's values at
	// the earlier column's position, logging a warning.
	CollisionLastWins CollisionPolicy = "last-wins"

	// CollisionFail aborts the run with a collision error.
	CollisionFail CollisionPolicy = "fail"
)

// Options configures the default stage list.
type Options struct {
	// Collisions selects the header collision policy. Empty means last-wins.
	Collisions CollisionPolicy
}

// DefaultStages returns the four cleaning stages in their contract order.
func DefaultStages(opts Options) []Stage {
	policy := opts.Collisions
	if policy == "" {
		policy = CollisionLastWins
	}
	return []Stage{
		NewHeaderNormalizer(policy),
		NewTextTrimmer(),
		NewMissingResolver(),
		NewInvalidRowFilter(),
	}
}
