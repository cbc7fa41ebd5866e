package dataset

import (
	"encoding/gob"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func testDataset(t *testing.T) *Dataset {
	t.Helper()
	cfg := validConfig()
	ds, err := GenerateDataset(&cfg, 8)
	if err != nil {
		t.Fatalf("generate dataset: %v", err)
	}
	return ds
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ds := testDataset(t)
	path := filepath.Join(t.TempDir(), "data.gob")
	if err := ds.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(loaded.Config, ds.Config) {
		t.Errorf("loaded config differs from saved config")
	}
	if loaded.Train.Batch != ds.Train.Batch || loaded.Train.Time != ds.Train.Time {
		t.Errorf("loaded train dims [%d,%d] differ from saved [%d,%d]",
			loaded.Train.Time, loaded.Train.Batch, ds.Train.Time, ds.Train.Batch)
	}
}

func TestLoadRejectsUnsupportedVersion(t *testing.T) {
	ds := testDataset(t)
	path := filepath.Join(t.TempDir(), "stale.gob")

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	ff := fileFormat{
		Version:    fileVersion + 1,
		Config:     ds.Config,
		Train:      ds.Train,
		Validation: ds.Validation,
		Test:       ds.Test,
	}
	if err := gob.NewEncoder(f).Encode(&ff); err != nil {
		t.Fatalf("encode: %v", err)
	}
	f.Close()

	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "version") {
		t.Fatalf("expected version error, got %v", err)
	}
}

func TestLoadRejectsTruncatedBuffer(t *testing.T) {
	ds := testDataset(t)
	ds.Train.Sequence = ds.Train.Sequence[:len(ds.Train.Sequence)-1]

	path := filepath.Join(t.TempDir(), "bad.gob")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	ff := fileFormat{
		Version:    fileVersion,
		Config:     ds.Config,
		Train:      ds.Train,
		Validation: ds.Validation,
		Test:       ds.Test,
	}
	if err := gob.NewEncoder(f).Encode(&ff); err != nil {
		t.Fatalf("encode: %v", err)
	}
	f.Close()

	_, err = Load(path)
	if err == nil {
		t.Fatal("expected error for truncated sequence buffer")
	}
	if !strings.Contains(err.Error(), "sequence") {
		t.Errorf("error %q does not name the sequence buffer", err)
	}
}

func TestSaveRejectsInvalidDataset(t *testing.T) {
	ds := testDataset(t)
	ds.Config.LabelSpecs[0].Table = []float64{0.5}
	if err := ds.Save(filepath.Join(t.TempDir(), "never.gob")); err == nil {
		t.Fatal("expected save of invalid dataset to fail")
	}
}

func TestValidateSplitDimsAgainstConfig(t *testing.T) {
	ds := testDataset(t)
	ds.Train.NumConcepts = 5
	err := ds.Validate()
	if err == nil {
		t.Fatal("expected dimension mismatch error")
	}
	if !strings.Contains(err.Error(), "train_split") {
		t.Errorf("error %q does not name the offending split", err)
	}
}
