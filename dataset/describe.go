package dataset

import (
	"fmt"
	"io"
)

// Describe writes a human-readable summary of the configuration and the
// array shapes of every split. This is the "print the config, check the
// shapes" step of an exploratory session.
func (d *Dataset) Describe(w io.Writer) {
	cfg := &d.Config

	fmt.Fprintf(w, "Configuration (seed=%d, scaling=%s, trains=%d, tests=%d)\n",
		cfg.Seed, cfg.ScalingType, cfg.NumTrains, cfg.NumTests)

	fmt.Fprintf(w, "Features (%d):\n", len(cfg.FeatureSpecs))
	for i, fs := range cfg.FeatureSpecs {
		fmt.Fprintf(w, "  [%d] %s kind=%s scale=%g\n", i, fs.Name, fs.Kind, fs.Scale)
	}

	fmt.Fprintf(w, "Concepts (%d):\n", len(cfg.ConceptSpecs))
	for i, cs := range cfg.ConceptSpecs {
		fmt.Fprintf(w, "  [%d] %s\n", i, cs.Name)
		for j, fi := range cs.Features {
			pattern := ""
			if j < len(cs.Patterns) {
				pattern = cs.Patterns[j]
			}
			fmt.Fprintf(w, "      feature %d agreement=%.3f pattern=%s\n", fi, cs.Agreement[j], pattern)
		}
	}

	fmt.Fprintf(w, "Labels (%d):\n", len(cfg.LabelSpecs))
	for i, ls := range cfg.LabelSpecs {
		fmt.Fprintf(w, "  [%d] %s concept=%d table=%v\n", i, ls.Name, ls.Concepts[0], ls.Table)
	}

	for _, sp := range []struct {
		name  string
		split *Split
	}{
		{"train", &d.Train},
		{"validation", &d.Validation},
		{"test", &d.Test},
	} {
		s := sp.split
		fmt.Fprintf(w, "Split %q:\n", sp.name)
		fmt.Fprintf(w, "  sequence         [%d time, %d batch, %d feature]\n", s.Time, s.Batch, s.NumFeatures)
		fmt.Fprintf(w, "  label            [%d time, %d batch, %d label]\n", s.Time, s.Batch, s.NumLabels)
		fmt.Fprintf(w, "  concept          [%d batch, %d concept]\n", s.Batch, s.NumConcepts)
		fmt.Fprintf(w, "  concept_sequence [%d time, %d batch, %d concept]\n", s.Time, s.Batch, s.NumConcepts)
		fmt.Fprintf(w, "  changes          [%d batch, %d concept]\n", s.Batch, s.NumConcepts)
		fmt.Fprintf(w, "  features         [%d batch, %d concept, %d feature]\n", s.Batch, s.NumConcepts, s.NumFeatures)
	}
}

// SplitByName returns the split with the given name ("train", "validation"
// or "test", with "val" accepted as shorthand).
func (d *Dataset) SplitByName(name string) (*Split, error) {
	switch name {
	case "train":
		return &d.Train, nil
	case "validation", "val":
		return &d.Validation, nil
	case "test":
		return &d.Test, nil
	}
	return nil, fmt.Errorf("unknown split %q (want train, validation or test)", name)
}
