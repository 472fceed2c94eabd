package cleaning

import (
	"context"
	"log/slog"
	"strings"

	"salesclean/internal/dataset"
)

// HeaderNormalizer rewrites column labels into a consistent lexical form:
// trimmed, lowercase, with spaces, slashes and hyphens replaced by single
// underscores. Cell values and row order pass through untouched.
type HeaderNormalizer struct {
	policy CollisionPolicy
}

// NewHeaderNormalizer creates the header normalization stage with the given
// collision policy.
func NewHeaderNormalizer(policy CollisionPolicy) *HeaderNormalizer {
	if policy == "" {
		policy = CollisionLastWins
	}
	return &HeaderNormalizer{policy: policy}
}

// ID returns the stage ID.
func (h *HeaderNormalizer) ID() string { return StageIDHeaders }

// Name returns the stage name.
func (h *HeaderNormalizer) Name() string { return StageNameHeaders }

// Apply relabels every column with its normalized form. Two distinct raw
// labels can normalize to the same label; the configured policy decides
// whether that keeps the later column or aborts the run.
func (h *HeaderNormalizer) Apply(ctx context.Context, ds *dataset.Dataset) (*dataset.Dataset, error) {
	raw := ds.Columns()
	normalized := make([]string, len(raw))
	for i, label := range raw {
		normalized[i] = NormalizeLabel(label)
	}

	// Last occurrence of each normalized label, and first-occurrence order.
	lastIndex := make(map[string]int, len(normalized))
	var order []string
	for i, label := range normalized {
		if _, seen := lastIndex[label]; !seen {
			order = append(order, label)
		}
		lastIndex[label] = i
	}

	if len(order) == len(normalized) {
		return ds.WithColumns(normalized)
	}

	// Collision: at least one label produced by more than one source column.
	for i, label := range normalized {
		if lastIndex[label] == i {
			continue
		}
		if h.policy == CollisionFail {
			return nil, NewCollisionError(StageIDHeaders, label)
		}
		slog.Warn("column label collision, keeping later column",
			slog.String("stage", StageIDHeaders),
			slog.String("label", label),
			slog.String("shadowed_source", raw[i]))
	}

	indices := make([]int, 0, len(order))
	for _, label := range order {
		indices = append(indices, lastIndex[label])
	}
	picked, err := ds.SelectColumns(indices)
	if err != nil {
		return nil, NewShapeError(StageIDHeaders, err)
	}
	return picked.WithColumns(order)
}

// NormalizeLabel applies the label rewrite rules to a single column label.
// It is idempotent: normalizing an already-normalized label is a no-op.
func NormalizeLabel(label string) string {
	name := strings.ToLower(strings.TrimSpace(label))
	name = strings.NewReplacer(" ", "_", "/", "_", "-", "_").Replace(name)
	for strings.Contains(name, "__") {
		name = strings.ReplaceAll(name, "__", "_")
	}
	return name
}
