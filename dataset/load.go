package dataset

import (
	"encoding/gob"
	"fmt"
	"os"
)

// fileVersion is incremented when the on-disk container format changes.
const fileVersion = 1

// fileFormat is the on-disk representation of a dataset. It carries a
// version field so stale files are rejected instead of silently misread.
type fileFormat struct {
	Version    int
	Config     Config
	Train      Split
	Validation Split
	Test       Split
}

// Load reads a gob-encoded dataset container from path and validates it.
// The returned Dataset is ready to index: every buffer length has been
// checked against its declared dimensions and every spec index against the
// configuration.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset %s: %w", path, err)
	}
	defer f.Close()

	var ff fileFormat
	if err := gob.NewDecoder(f).Decode(&ff); err != nil {
		return nil, fmt.Errorf("decode dataset %s: %w", path, err)
	}
	if ff.Version != fileVersion {
		return nil, fmt.Errorf("dataset %s: unsupported format version %d (want %d)",
			path, ff.Version, fileVersion)
	}

	ds := &Dataset{
		Config:     ff.Config,
		Train:      ff.Train,
		Validation: ff.Validation,
		Test:       ff.Test,
	}
	if err := ds.Validate(); err != nil {
		return nil, fmt.Errorf("dataset %s: %w", path, err)
	}
	return ds, nil
}

// Save writes the dataset to path in the container format Load reads. Used
// by tooling that materializes demo datasets; the real generator has its own
// writer.
func (d *Dataset) Save(path string) error {
	if err := d.Validate(); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create dataset %s: %w", path, err)
	}
	defer f.Close()

	ff := fileFormat{
		Version:    fileVersion,
		Config:     d.Config,
		Train:      d.Train,
		Validation: d.Validation,
		Test:       d.Test,
	}
	if err := gob.NewEncoder(f).Encode(&ff); err != nil {
		return fmt.Errorf("encode dataset %s: %w", path, err)
	}
	return nil
}

// Validate checks the configuration and every split against it.
func (d *Dataset) Validate() error {
	if err := d.Config.Validate(); err != nil {
		return err
	}
	for _, sp := range []struct {
		name  string
		split *Split
	}{
		{"train_split", &d.Train},
		{"validation_split", &d.Validation},
		{"test_split", &d.Test},
	} {
		if err := sp.split.validate(&d.Config); err != nil {
			return fmt.Errorf("%s: %w", sp.name, err)
		}
	}
	return nil
}

// validate checks that the split's dimensions agree with the configuration
// and that every buffer has exactly the length its dimensions imply.
func (s *Split) validate(cfg *Config) error {
	if s.Time <= 0 {
		return fmt.Errorf("time dimension must be positive, got %d", s.Time)
	}
	if s.Batch < 0 {
		return fmt.Errorf("batch dimension is negative: %d", s.Batch)
	}
	if s.NumFeatures != len(cfg.FeatureSpecs) {
		return fmt.Errorf("feature dimension %d does not match %d feature_specs",
			s.NumFeatures, len(cfg.FeatureSpecs))
	}
	if s.NumLabels != len(cfg.LabelSpecs) {
		return fmt.Errorf("label dimension %d does not match %d label_specs",
			s.NumLabels, len(cfg.LabelSpecs))
	}
	if s.NumConcepts != len(cfg.ConceptSpecs) {
		return fmt.Errorf("concept dimension %d does not match %d concept_specs",
			s.NumConcepts, len(cfg.ConceptSpecs))
	}

	for _, buf := range []struct {
		name string
		got  int
		want int
	}{
		{"sequence", len(s.Sequence), s.Time * s.Batch * s.NumFeatures},
		{"label", len(s.Label), s.Time * s.Batch * s.NumLabels},
		{"concept", len(s.Concept), s.Batch * s.NumConcepts},
		{"concept_sequence", len(s.ConceptSequence), s.Time * s.Batch * s.NumConcepts},
		{"changes", len(s.Changes), s.Batch * s.NumConcepts},
		{"features", len(s.Features), s.Batch * s.NumConcepts * s.NumFeatures},
	} {
		if buf.got != buf.want {
			return fmt.Errorf("%s buffer has %d elements, dimensions imply %d",
				buf.name, buf.got, buf.want)
		}
	}

	for i, ch := range s.Changes {
		if ch < 0 || int(ch) >= s.Time {
			return fmt.Errorf("changes[%d]: changepoint %d outside [0,%d)", i, ch, s.Time)
		}
	}
	return nil
}
