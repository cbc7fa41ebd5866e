package dataset

import (
	"testing"
)

// viewSplit is a hand-filled split for exercising the derived views:
// 2 timesteps, 3 batch elements, 2 features, 1 label, 2 concepts.
func viewSplit() *Split {
	s := &Split{
		Time:        2,
		Batch:       3,
		NumFeatures: 2,
		NumLabels:   1,
		NumConcepts: 2,
	}
	s.Sequence = make([]float32, s.Time*s.Batch*s.NumFeatures)
	s.Label = make([]float32, s.Time*s.Batch*s.NumLabels)
	s.Concept = []bool{
		true, false, // element 0
		false, false, // element 1
		true, true, // element 2
	}
	s.ConceptSequence = make([]int32, s.Time*s.Batch*s.NumConcepts)
	s.Changes = make([]int32, s.Batch*s.NumConcepts)
	s.Features = make([]bool, s.Batch*s.NumConcepts*s.NumFeatures)

	// element 0: label fires only at t=1; element 1: never; element 2: both.
	s.Label[(1*s.Batch+0)*s.NumLabels] = 1
	s.Label[(0*s.Batch+2)*s.NumLabels] = 1
	s.Label[(1*s.Batch+2)*s.NumLabels] = 1

	// concept 0 / feature 1 present for elements 0 and 2
	s.Features[(0*s.NumConcepts+0)*s.NumFeatures+1] = true
	s.Features[(2*s.NumConcepts+0)*s.NumFeatures+1] = true

	s.Sequence[(0*s.Batch+1)*s.NumFeatures+0] = 2.5 // t=0, element 1, feature 0
	s.Sequence[(1*s.Batch+1)*s.NumFeatures+1] = -1  // t=1, element 1, feature 1
	return s
}

func TestLabelMaxOverTime(t *testing.T) {
	s := viewSplit()
	got, err := s.LabelMaxOverTime(0)
	if err != nil {
		t.Fatalf("LabelMaxOverTime: %v", err)
	}
	want := []float64{1, 0, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("element %d: max over time = %v, want %v", i, got[i], want[i])
		}
	}
	if _, err := s.LabelMaxOverTime(3); err == nil {
		t.Error("expected error for label index out of range")
	}
}

func TestConceptColumn(t *testing.T) {
	s := viewSplit()
	got, err := s.ConceptColumn(0)
	if err != nil {
		t.Fatalf("ConceptColumn: %v", err)
	}
	want := []bool{true, false, true}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("element %d: concept 0 = %v, want %v", i, got[i], want[i])
		}
	}
	if _, err := s.ConceptColumn(-1); err == nil {
		t.Error("expected error for concept index out of range")
	}
}

func TestFeatureColumn(t *testing.T) {
	s := viewSplit()
	got, err := s.FeatureColumn(0, 1)
	if err != nil {
		t.Fatalf("FeatureColumn: %v", err)
	}
	want := []float64{1, 0, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("element %d: indicator = %v, want %v", i, got[i], want[i])
		}
	}
	if _, err := s.FeatureColumn(0, 9); err == nil {
		t.Error("expected error for feature index out of range")
	}
	if _, err := s.FeatureColumn(5, 0); err == nil {
		t.Error("expected error for concept index out of range")
	}
}

func TestSequenceAt(t *testing.T) {
	s := viewSplit()
	seq, err := s.SequenceAt(1)
	if err != nil {
		t.Fatalf("SequenceAt: %v", err)
	}
	if len(seq) != s.Time || len(seq[0]) != s.NumFeatures {
		t.Fatalf("shape [%d][%d], want [%d][%d]", len(seq), len(seq[0]), s.Time, s.NumFeatures)
	}
	if seq[0][0] != 2.5 {
		t.Errorf("seq[0][0] = %v, want 2.5", seq[0][0])
	}
	if seq[1][1] != -1 {
		t.Errorf("seq[1][1] = %v, want -1", seq[1][1])
	}
	if _, err := s.SequenceAt(10); err == nil {
		t.Error("expected error for batch index out of range")
	}
}

func TestTensorShapes(t *testing.T) {
	s := viewSplit()
	if dims := s.SequenceTensor().Shape().Dimensions; len(dims) != 3 ||
		dims[0] != s.Time || dims[1] != s.Batch || dims[2] != s.NumFeatures {
		t.Errorf("sequence tensor shape %v, want [%d %d %d]", dims, s.Time, s.Batch, s.NumFeatures)
	}
	if dims := s.LabelTensor().Shape().Dimensions; len(dims) != 3 || dims[2] != s.NumLabels {
		t.Errorf("label tensor shape %v, want label dim %d", dims, s.NumLabels)
	}
	if dims := s.ConceptSequenceTensor().Shape().Dimensions; len(dims) != 3 || dims[2] != s.NumConcepts {
		t.Errorf("concept sequence tensor shape %v, want concept dim %d", dims, s.NumConcepts)
	}
}
