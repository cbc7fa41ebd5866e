package dataset

import (
	"reflect"
	"testing"
)

func TestGenerateDimensions(t *testing.T) {
	cfg := validConfig()
	s, err := Generate(&cfg, 16, 10, 3)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if s.Time != 10 || s.Batch != 16 {
		t.Fatalf("dims [%d time, %d batch], want [10, 16]", s.Time, s.Batch)
	}
	if s.NumFeatures != len(cfg.FeatureSpecs) || s.NumConcepts != len(cfg.ConceptSpecs) || s.NumLabels != len(cfg.LabelSpecs) {
		t.Fatalf("channel dims (%d,%d,%d) do not match config (%d,%d,%d)",
			s.NumFeatures, s.NumConcepts, s.NumLabels,
			len(cfg.FeatureSpecs), len(cfg.ConceptSpecs), len(cfg.LabelSpecs))
	}
	// validate also checks every buffer length against the dims
	if err := s.validate(&cfg); err != nil {
		t.Fatalf("generated split fails validation: %v", err)
	}
}

func TestGenerateDeterministicForSeed(t *testing.T) {
	cfg := validConfig()
	a, err := Generate(&cfg, 8, 6, 99)
	if err != nil {
		t.Fatalf("generate a: %v", err)
	}
	b, err := Generate(&cfg, 8, 6, 99)
	if err != nil {
		t.Fatalf("generate b: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed produced different splits")
	}
	c, err := Generate(&cfg, 8, 6, 100)
	if err != nil {
		t.Fatalf("generate c: %v", err)
	}
	if reflect.DeepEqual(a, c) {
		t.Error("different seeds produced identical splits")
	}
}

func TestGenerateConceptSequenceFollowsChangepoint(t *testing.T) {
	cfg := validConfig()
	s, err := Generate(&cfg, 12, 9, 5)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	for b := 0; b < s.Batch; b++ {
		for c := 0; c < s.NumConcepts; c++ {
			change := int(s.ChangeAt(b, c))
			active := s.conceptAt(b, c)
			for tt := 0; tt < s.Time; tt++ {
				got := s.conceptSeqAt(tt, b, c)
				want := int32(0)
				if active && tt >= change {
					want = 1
				}
				if got != want {
					t.Fatalf("element %d concept %d t=%d: concept_sequence=%d, want %d (active=%v change=%d)",
						b, c, tt, got, want, active, change)
				}
			}
		}
	}
}

func TestGenerateRejectsBadArguments(t *testing.T) {
	cfg := validConfig()
	if _, err := Generate(&cfg, -1, 10, 0); err == nil {
		t.Error("expected error for negative batch")
	}
	if _, err := Generate(&cfg, 4, 0, 0); err == nil {
		t.Error("expected error for zero timesteps")
	}
	bad := validConfig()
	bad.LabelSpecs[0].Table = []float64{2, 3}
	if _, err := Generate(&bad, 4, 10, 0); err == nil {
		t.Error("expected error for invalid config")
	}
}
