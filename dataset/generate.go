package dataset

import (
	"fmt"
	"math/rand"
)

// Generate samples a split from cfg. It is a deliberately small stand-in for
// the real (external) generator: it honors the conditional probabilities the
// verifier checks for, which makes it usable for demos and for statistical
// tests, but it makes no attempt to reproduce the real generator's temporal
// patterns or scaling.
//
// Sampling per batch element:
//   - each concept is active with probability 1/2, with a uniform changepoint
//     timestep; the concept sequence is 1 from the changepoint on when active;
//   - each governed feature is present with probability a + (1-a)/2 when its
//     concept is active and (1-a)/2 when inactive;
//   - a present feature emits its spec's scale (plus small noise) across the
//     sequence, an absent one emits noise only;
//   - each label fires with its table probability given the concept value,
//     and when it fires it is set to 1 over a random time window.
func Generate(cfg *Config, batch, timeSteps int, seed int64) (*Split, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if batch < 0 {
		return nil, fmt.Errorf("batch must be non-negative, got %d", batch)
	}
	if timeSteps <= 0 {
		return nil, fmt.Errorf("timeSteps must be positive, got %d", timeSteps)
	}

	rng := rand.New(rand.NewSource(seed))

	s := &Split{
		Time:        timeSteps,
		Batch:       batch,
		NumFeatures: len(cfg.FeatureSpecs),
		NumLabels:   len(cfg.LabelSpecs),
		NumConcepts: len(cfg.ConceptSpecs),
	}
	s.Sequence = make([]float32, timeSteps*batch*s.NumFeatures)
	s.Label = make([]float32, timeSteps*batch*s.NumLabels)
	s.Concept = make([]bool, batch*s.NumConcepts)
	s.ConceptSequence = make([]int32, timeSteps*batch*s.NumConcepts)
	s.Changes = make([]int32, batch*s.NumConcepts)
	s.Features = make([]bool, batch*s.NumConcepts*s.NumFeatures)

	for b := 0; b < batch; b++ {
		for c, cs := range cfg.ConceptSpecs {
			active := rng.Float64() < 0.5
			change := int32(rng.Intn(timeSteps))
			s.Concept[b*s.NumConcepts+c] = active
			s.Changes[b*s.NumConcepts+c] = change
			if active {
				for t := int(change); t < timeSteps; t++ {
					s.ConceptSequence[(t*batch+b)*s.NumConcepts+c] = 1
				}
			}

			for j, fi := range cs.Features {
				a := cs.Agreement[j]
				pPresent := (1 - a) / 2
				if active {
					pPresent = a + (1-a)/2
				}
				present := rng.Float64() < pPresent
				s.Features[(b*s.NumConcepts+c)*s.NumFeatures+fi] = present

				scale := cfg.FeatureSpecs[fi].Scale
				if scale == 0 {
					scale = 1
				}
				for t := 0; t < timeSteps; t++ {
					v := rng.NormFloat64() * 0.05
					if present {
						v += scale
					}
					s.Sequence[(t*batch+b)*s.NumFeatures+fi] = float32(v)
				}
			}
		}

		for l, ls := range cfg.LabelSpecs {
			concept := ls.Concepts[0]
			p := ls.Table[0]
			if s.Concept[b*s.NumConcepts+concept] {
				p = ls.Table[1]
			}
			if rng.Float64() >= p {
				continue
			}
			// Active over a random window; max-over-time recovers the draw.
			start := rng.Intn(timeSteps)
			end := start + 1 + rng.Intn(timeSteps-start)
			for t := start; t < end; t++ {
				s.Label[(t*batch+b)*s.NumLabels+l] = 1
			}
		}
	}

	return s, nil
}

// GenerateDataset builds a full demo dataset (train/validation/test) from
// cfg using its NumTrains/NumTests counts and Seed.
func GenerateDataset(cfg *Config, timeSteps int) (*Dataset, error) {
	train, err := Generate(cfg, cfg.NumTrains, timeSteps, cfg.Seed)
	if err != nil {
		return nil, fmt.Errorf("generate train split: %w", err)
	}
	val, err := Generate(cfg, cfg.NumTests, timeSteps, cfg.Seed+1)
	if err != nil {
		return nil, fmt.Errorf("generate validation split: %w", err)
	}
	test, err := Generate(cfg, cfg.NumTests, timeSteps, cfg.Seed+2)
	if err != nil {
		return nil, fmt.Errorf("generate test split: %w", err)
	}
	return &Dataset{Config: *cfg, Train: *train, Validation: *val, Test: *test}, nil
}
