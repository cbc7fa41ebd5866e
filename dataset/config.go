package dataset

import "fmt"

// FeatureSpec describes how one feature channel was generated.
type FeatureSpec struct {
	Name string
	// Kind names the waveform emitted when the feature is present
	// (e.g. "spike", "plateau", "ramp"). Informational only here.
	Kind string
	// Scale multiplies the emitted waveform.
	Scale float64
}

// ConceptSpec describes one latent binary concept and the features it
// governs. Features, Agreement and Patterns are parallel slices: entry i
// gives the feature index, its agreement value in [0,1] and its temporal
// pattern name.
//
// Agreement 1.0 means the feature deterministically matches the concept;
// 0.0 means the feature is a fair coin flip independent of it.
type ConceptSpec struct {
	Name      string
	Features  []int
	Agreement []float64
	Patterns  []string
}

// LabelSpec describes one label channel. Concepts lists the influencing
// concept indices and Table is the contingency table of theoretical
// activation probabilities indexed by the concept-value combination.
//
// The verifier assumes the single-concept case: exactly one concept and a
// 2-entry table, Table[0] = P(label | concept=0), Table[1] = P(label |
// concept=1). Validate enforces this shape.
type LabelSpec struct {
	Name     string
	Concepts []int
	Table    []float64
}

// Config is the full generation configuration the dataset was produced from.
type Config struct {
	FeatureSpecs []FeatureSpec
	ConceptSpecs []ConceptSpec
	LabelSpecs   []LabelSpec

	NumTrains   int
	NumTests    int
	ScalingType string
	Seed        int64
}

// Validate checks the structural invariants the rest of the module relies
// on. It is called once at the load boundary so malformed configurations are
// rejected before any array is indexed.
func (c *Config) Validate() error {
	if len(c.FeatureSpecs) == 0 {
		return fmt.Errorf("config: feature_specs is empty")
	}
	if len(c.ConceptSpecs) == 0 {
		return fmt.Errorf("config: concept_specs is empty")
	}
	if c.NumTrains < 0 {
		return fmt.Errorf("config: num_trains is negative: %d", c.NumTrains)
	}
	if c.NumTests < 0 {
		return fmt.Errorf("config: num_tests is negative: %d", c.NumTests)
	}

	// Each feature must be governed by exactly one concept.
	governedBy := make([]int, len(c.FeatureSpecs))
	for i := range governedBy {
		governedBy[i] = -1
	}
	for ci, cs := range c.ConceptSpecs {
		if len(cs.Agreement) != len(cs.Features) {
			return fmt.Errorf("concept_specs[%d] (%s): %d features but %d agreement values",
				ci, cs.Name, len(cs.Features), len(cs.Agreement))
		}
		if len(cs.Patterns) != 0 && len(cs.Patterns) != len(cs.Features) {
			return fmt.Errorf("concept_specs[%d] (%s): %d features but %d patterns",
				ci, cs.Name, len(cs.Features), len(cs.Patterns))
		}
		for j, fi := range cs.Features {
			if fi < 0 || fi >= len(c.FeatureSpecs) {
				return fmt.Errorf("concept_specs[%d].features[%d]: feature index %d out of range [0,%d)",
					ci, j, fi, len(c.FeatureSpecs))
			}
			if prev := governedBy[fi]; prev != -1 {
				return fmt.Errorf("feature %d governed by both concept %d and concept %d; must be exactly one",
					fi, prev, ci)
			}
			governedBy[fi] = ci
			a := cs.Agreement[j]
			if a < 0 || a > 1 {
				return fmt.Errorf("concept_specs[%d].agreement[%d]: %v outside [0,1]", ci, j, a)
			}
		}
	}

	for li, ls := range c.LabelSpecs {
		if len(ls.Concepts) != 1 {
			return fmt.Errorf("label_specs[%d] (%s): expected exactly 1 influencing concept, got %d",
				li, ls.Name, len(ls.Concepts))
		}
		if ci := ls.Concepts[0]; ci < 0 || ci >= len(c.ConceptSpecs) {
			return fmt.Errorf("label_specs[%d].concepts[0]: concept index %d out of range [0,%d)",
				li, ci, len(c.ConceptSpecs))
		}
		if len(ls.Table) != 2 {
			return fmt.Errorf("label_specs[%d] (%s): contingency table must have 2 entries, got %d",
				li, ls.Name, len(ls.Table))
		}
		for k, p := range ls.Table {
			if p < 0 || p > 1 {
				return fmt.Errorf("label_specs[%d].table[%d]: probability %v outside [0,1]", li, k, p)
			}
		}
	}

	return nil
}
