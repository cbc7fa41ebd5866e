package dataset

import "fmt"

// Derived read-only views over a split. Each method allocates a fresh slice;
// the underlying buffers are never aliased or mutated.

// LabelMaxOverTime reduces the label array over the time axis with a
// maximum, yielding one value per (batch, label): a label counts as active
// for a batch element if it was active at any timestep.
func (s *Split) LabelMaxOverTime(label int) ([]float64, error) {
	if label < 0 || label >= s.NumLabels {
		return nil, fmt.Errorf("label index %d out of range [0,%d)", label, s.NumLabels)
	}
	out := make([]float64, s.Batch)
	for b := 0; b < s.Batch; b++ {
		max := float64(s.labelAt(0, b, label))
		for t := 1; t < s.Time; t++ {
			if v := float64(s.labelAt(t, b, label)); v > max {
				max = v
			}
		}
		out[b] = max
	}
	return out, nil
}

// ConceptColumn returns the boolean concept assignment for concept c across
// the batch.
func (s *Split) ConceptColumn(c int) ([]bool, error) {
	if c < 0 || c >= s.NumConcepts {
		return nil, fmt.Errorf("concept index %d out of range [0,%d)", c, s.NumConcepts)
	}
	out := make([]bool, s.Batch)
	for b := 0; b < s.Batch; b++ {
		out[b] = s.conceptAt(b, c)
	}
	return out, nil
}

// FeatureColumn returns, for concept c and feature f, the per-batch-element
// presence indicator. The indicator is the fixed per-activation-window value
// the generator assigned, not a time-aggregated one.
func (s *Split) FeatureColumn(c, f int) ([]float64, error) {
	if c < 0 || c >= s.NumConcepts {
		return nil, fmt.Errorf("concept index %d out of range [0,%d)", c, s.NumConcepts)
	}
	if f < 0 || f >= s.NumFeatures {
		return nil, fmt.Errorf("feature index %d out of range [0,%d)", f, s.NumFeatures)
	}
	out := make([]float64, s.Batch)
	for b := 0; b < s.Batch; b++ {
		if s.featureAt(b, c, f) {
			out[b] = 1
		}
	}
	return out, nil
}

// SequenceAt returns the [time][feature] sequence of a single batch element,
// suitable for plotting.
func (s *Split) SequenceAt(b int) ([][]float64, error) {
	if b < 0 || b >= s.Batch {
		return nil, fmt.Errorf("batch index %d out of range [0,%d)", b, s.Batch)
	}
	out := make([][]float64, s.Time)
	for t := 0; t < s.Time; t++ {
		row := make([]float64, s.NumFeatures)
		for f := 0; f < s.NumFeatures; f++ {
			row[f] = float64(s.seqAt(t, b, f))
		}
		out[t] = row
	}
	return out, nil
}

// LabelSeriesAt returns the [time][label] values of a single batch element.
func (s *Split) LabelSeriesAt(b int) ([][]float64, error) {
	if b < 0 || b >= s.Batch {
		return nil, fmt.Errorf("batch index %d out of range [0,%d)", b, s.Batch)
	}
	out := make([][]float64, s.Time)
	for t := 0; t < s.Time; t++ {
		row := make([]float64, s.NumLabels)
		for l := 0; l < s.NumLabels; l++ {
			row[l] = float64(s.labelAt(t, b, l))
		}
		out[t] = row
	}
	return out, nil
}

// ConceptSeriesAt returns the [time][concept] integer concept sequence of a
// single batch element.
func (s *Split) ConceptSeriesAt(b int) ([][]float64, error) {
	if b < 0 || b >= s.Batch {
		return nil, fmt.Errorf("batch index %d out of range [0,%d)", b, s.Batch)
	}
	out := make([][]float64, s.Time)
	for t := 0; t < s.Time; t++ {
		row := make([]float64, s.NumConcepts)
		for c := 0; c < s.NumConcepts; c++ {
			row[c] = float64(s.conceptSeqAt(t, b, c))
		}
		out[t] = row
	}
	return out, nil
}
