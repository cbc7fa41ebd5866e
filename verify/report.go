package verify

import (
	"fmt"
	"io"

	"github.com/seqlab/conceptcheck/dataset"
)

// Report aggregates every label and every (concept, feature) check for one
// split.
type Report struct {
	Labels   []LabelResult
	Features []FeatureResult
}

// Run checks every label and every concept's features against the split and
// collects the results. The first structural error aborts the run; a report
// you get back is always complete.
func Run(cfg *dataset.Config, split *dataset.Split) (*Report, error) {
	r := &Report{}
	for l := range cfg.LabelSpecs {
		res, err := CheckLabel(cfg, split, l)
		if err != nil {
			return nil, err
		}
		r.Labels = append(r.Labels, res)
	}
	for c := range cfg.ConceptSpecs {
		res, err := CheckConceptFeatures(cfg, split, c)
		if err != nil {
			return nil, err
		}
		r.Features = append(r.Features, res...)
	}
	return r, nil
}

// WriteText renders the report for side-by-side human comparison. NaN
// empirical values print as NaN, marking partitions with no batch elements.
func (r *Report) WriteText(w io.Writer) {
	fmt.Fprintln(w, "Label conditional probabilities (theoretical vs empirical):")
	for _, lr := range r.Labels {
		name := lr.Name
		if name == "" {
			name = fmt.Sprintf("label %d", lr.Label)
		}
		fmt.Fprintf(w, "  %s | concept %d = 1: %.4f vs %.4f\n",
			name, lr.Concept, lr.WhenActive.Theoretical, lr.WhenActive.Empirical)
		fmt.Fprintf(w, "  %s | concept %d = 0: %.4f vs %.4f\n",
			name, lr.Concept, lr.WhenInactive.Theoretical, lr.WhenInactive.Empirical)
	}

	fmt.Fprintln(w, "Feature conditional probabilities (theoretical vs empirical):")
	for _, fr := range r.Features {
		fmt.Fprintf(w, "  feature %d | concept %d = 1 (agreement %.2f): %.4f vs %.4f\n",
			fr.Feature, fr.Concept, fr.Agreement, fr.WhenActive.Theoretical, fr.WhenActive.Empirical)
		fmt.Fprintf(w, "  feature %d | concept %d = 0 (agreement %.2f): %.4f vs %.4f\n",
			fr.Feature, fr.Concept, fr.Agreement, fr.WhenInactive.Theoretical, fr.WhenInactive.Empirical)
	}
}
