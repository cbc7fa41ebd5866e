package dataset

// This package holds the typed, in-memory form of a synthetic causal-sequence
// dataset: a generation Config plus train/validation/test Splits.
//
// A generator (external to this module) samples binary concepts per batch
// element, derives boolean feature indicators from per-feature agreement
// values, and emits real-valued sequences and per-timestep labels. This
// package only loads and inspects the result; it never regenerates or
// mutates it.
//
// Notes on array layout:
//   - All multi-dimensional arrays are stored as flat contiguous buffers with
//     their dimensions recorded explicitly on the Split. Accessor methods do
//     the index arithmetic, so there are no positional-axis conventions left
//     implicit at call sites.
//   - Buffer lengths are validated against the declared dimensions once, at
//     the load boundary. Everything downstream may index without re-checking.
//   - Converting to gomlx tensors is a small, well-defined step; see the
//     *Tensor methods in tensors.go.

// Dataset is the read-only root object: configuration plus the three splits
// the generator materialized.
type Dataset struct {
	Config     Config
	Train      Split
	Validation Split
	Test       Split
}

// Split holds one materialized data split as flat buffers with explicit
// dimensions.
//
// Dimension names, in the order they appear in buffer strides:
//
//	Sequence        [Time, Batch, NumFeatures]  float32
//	Label           [Time, Batch, NumLabels]    float32
//	Concept         [Batch, NumConcepts]        bool
//	ConceptSequence [Time, Batch, NumConcepts]  int32
//	Changes         [Batch, NumConcepts]        int32 (changepoint timestep)
//	Features        [Batch, NumConcepts, NumFeatures] bool
//
// Features is a per-activation-window indicator, not a time series: the
// generator fixes each feature's presence once per batch element, so the
// indicator carries no time axis.
type Split struct {
	Time        int
	Batch       int
	NumFeatures int
	NumLabels   int
	NumConcepts int

	Sequence        []float32
	Label           []float32
	Concept         []bool
	ConceptSequence []int32
	Changes         []int32
	Features        []bool
}

// Index helpers. Callers are expected to pass in-range indices; out-of-range
// access panics like any slice access would.

func (s *Split) seqAt(t, b, f int) float32 {
	return s.Sequence[(t*s.Batch+b)*s.NumFeatures+f]
}

func (s *Split) labelAt(t, b, l int) float32 {
	return s.Label[(t*s.Batch+b)*s.NumLabels+l]
}

func (s *Split) conceptAt(b, c int) bool {
	return s.Concept[b*s.NumConcepts+c]
}

func (s *Split) conceptSeqAt(t, b, c int) int32 {
	return s.ConceptSequence[(t*s.Batch+b)*s.NumConcepts+c]
}

func (s *Split) featureAt(b, c, f int) bool {
	return s.Features[(b*s.NumConcepts+c)*s.NumFeatures+f]
}

// ChangeAt returns the changepoint timestep recorded for batch element b and
// concept c.
func (s *Split) ChangeAt(b, c int) int32 {
	return s.Changes[b*s.NumConcepts+c]
}
