// Package verify compares the theoretical conditional probabilities implied
// by a dataset's generation configuration against the empirical frequencies
// observed in its arrays.
//
// The checks are exploratory: they surface (theoretical, empirical) pairs
// for a human to eyeball and never enforce a tolerance. Divergence is
// information, not an error. Only structural problems (bad indices, shape
// mismatches) produce errors, and those fail fast with the offending field
// named.
//
// All functions are pure reductions over the dataset; running a check twice
// on the same in-memory data yields identical results.
package verify

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/seqlab/conceptcheck/dataset"
)

// Pair is one theoretical/empirical probability comparison. Empirical is NaN
// when the conditioning partition was empty, in which case the mean is
// undefined.
type Pair struct {
	Theoretical float64
	Empirical   float64
}

// AbsDiff returns |theoretical - empirical|. NaN when the empirical value is
// undefined. Provided for callers that want to sort or summarize results;
// the checks themselves never threshold on it.
func (p Pair) AbsDiff() float64 {
	return math.Abs(p.Theoretical - p.Empirical)
}

// LabelResult is the outcome of the label conditional probability check for
// one label channel.
type LabelResult struct {
	Label   int
	Name    string
	Concept int

	WhenActive   Pair // conditioned on concept = 1
	WhenInactive Pair // conditioned on concept = 0
}

// FeatureResult is the outcome of the feature conditional probability check
// for one (concept, feature) pair.
type FeatureResult struct {
	Concept   int
	Feature   int
	Agreement float64

	WhenActive   Pair
	WhenInactive Pair
}

// FeatureProbActive is the theoretical probability that a feature is present
// given its governing concept is active, for agreement a: the feature matches
// deterministically with probability a and is a fair coin otherwise.
func FeatureProbActive(a float64) float64 { return a + (1-a)/2 }

// FeatureProbInactive is the theoretical probability that a feature is
// present given its governing concept is inactive: (1-a)/2. The two
// theoretical values for opposite concept states sum to 1 for every a.
func FeatureProbInactive(a float64) float64 { return (1 - a) / 2 }

// CheckLabel runs the label conditional probability check for one label.
// The label array is reduced over time with a maximum (active at any
// timestep counts as active), the batch is partitioned by the influencing
// concept's boolean value, and the empirical mean of the reduced labels in
// each partition is compared with the contingency table entry for that
// concept value.
func CheckLabel(cfg *dataset.Config, split *dataset.Split, label int) (LabelResult, error) {
	if label < 0 || label >= len(cfg.LabelSpecs) {
		return LabelResult{}, fmt.Errorf("label index %d out of range [0,%d)", label, len(cfg.LabelSpecs))
	}
	spec := cfg.LabelSpecs[label]
	concept := spec.Concepts[0]

	reduced, err := split.LabelMaxOverTime(label)
	if err != nil {
		return LabelResult{}, fmt.Errorf("label %d: %w", label, err)
	}
	mask, err := split.ConceptColumn(concept)
	if err != nil {
		return LabelResult{}, fmt.Errorf("label %d concept: %w", label, err)
	}

	return LabelResult{
		Label:   label,
		Name:    spec.Name,
		Concept: concept,
		WhenActive: Pair{
			Theoretical: spec.Table[1],
			Empirical:   conditionalMean(reduced, mask, true),
		},
		WhenInactive: Pair{
			Theoretical: spec.Table[0],
			Empirical:   conditionalMean(reduced, mask, false),
		},
	}, nil
}

// CheckConceptFeatures runs the feature conditional probability check for
// every feature governed by the given concept. The empirical side uses the
// per-activation-window feature indicator, which carries no time axis; it is
// the fixed presence value the generator assigned per batch element.
func CheckConceptFeatures(cfg *dataset.Config, split *dataset.Split, concept int) ([]FeatureResult, error) {
	if concept < 0 || concept >= len(cfg.ConceptSpecs) {
		return nil, fmt.Errorf("concept index %d out of range [0,%d)", concept, len(cfg.ConceptSpecs))
	}
	spec := cfg.ConceptSpecs[concept]

	mask, err := split.ConceptColumn(concept)
	if err != nil {
		return nil, fmt.Errorf("concept %d: %w", concept, err)
	}

	results := make([]FeatureResult, 0, len(spec.Features))
	for j, fi := range spec.Features {
		a := spec.Agreement[j]
		indicator, err := split.FeatureColumn(concept, fi)
		if err != nil {
			return nil, fmt.Errorf("concept %d feature %d: %w", concept, fi, err)
		}
		results = append(results, FeatureResult{
			Concept:   concept,
			Feature:   fi,
			Agreement: a,
			WhenActive: Pair{
				Theoretical: FeatureProbActive(a),
				Empirical:   conditionalMean(indicator, mask, true),
			},
			WhenInactive: Pair{
				Theoretical: FeatureProbInactive(a),
				Empirical:   conditionalMean(indicator, mask, false),
			},
		})
	}
	return results, nil
}

// conditionalMean returns the mean of values[i] over the indices where
// mask[i] == want, or NaN when no index qualifies.
func conditionalMean(values []float64, mask []bool, want bool) float64 {
	selected := make([]float64, 0, len(values))
	for i, v := range values {
		if mask[i] == want {
			selected = append(selected, v)
		}
	}
	if len(selected) == 0 {
		return math.NaN()
	}
	return stat.Mean(selected, nil)
}
