// Command inspect is an exploratory sanity check for a synthetic
// causal-sequence dataset: it loads (or generates) a dataset, prints its
// configuration and array shapes, compares theoretical vs empirical
// conditional probabilities for labels and features, and optionally renders
// one example batch element as a sequence heatmap plus label/concept lines.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"
	"path/filepath"

	"github.com/seqlab/conceptcheck/dataset"
	"github.com/seqlab/conceptcheck/verify"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func main() {
	dataPath := flag.String("data", "", "path to a gob-encoded dataset container")
	splitName := flag.String("split", "train", "split to verify: train, validation or test")
	example := flag.Int("example", 0, "batch element to plot")
	outDir := flag.String("out", "output", "directory for rendered plots")
	plots := flag.Bool("plots", true, "render the example plots")
	demo := flag.Bool("demo", false, "generate a small in-memory demo dataset instead of loading one")
	demoBatch := flag.Int("demo-batch", 1000, "batch size per split for -demo")
	demoTime := flag.Int("demo-time", 50, "timesteps for -demo")
	demoSeed := flag.Int64("demo-seed", 42, "seed for -demo")
	flag.Parse()

	var ds *dataset.Dataset
	var err error
	switch {
	case *demo:
		ds, err = demoDataset(*demoBatch, *demoTime, *demoSeed)
		if err != nil {
			log.Fatalf("generate demo dataset: %v", err)
		}
	case *dataPath != "":
		ds, err = dataset.Load(*dataPath)
		if err != nil {
			log.Fatalf("load dataset: %v", err)
		}
	default:
		log.Fatalf("either -data or -demo is required")
	}

	ds.Describe(os.Stdout)

	split, err := ds.SplitByName(*splitName)
	if err != nil {
		log.Fatalf("select split: %v", err)
	}

	// Tensor shapes as gomlx sees them, as a cross-check on the recorded dims.
	fmt.Printf("Tensor shapes (%s split):\n", *splitName)
	fmt.Printf("  sequence         %s\n", split.SequenceTensor().Shape())
	fmt.Printf("  label            %s\n", split.LabelTensor().Shape())
	fmt.Printf("  concept_sequence %s\n", split.ConceptSequenceTensor().Shape())

	report, err := verify.Run(&ds.Config, split)
	if err != nil {
		log.Fatalf("verify: %v", err)
	}
	report.WriteText(os.Stdout)

	if !*plots {
		return
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("create output dir: %v", err)
	}
	if err := plotExample(*outDir, split, *example); err != nil {
		log.Fatalf("plot example %d: %v", *example, err)
	}
	log.Printf("Example plots written to %s", *outDir)
}

// demoDataset builds a small synthetic dataset whose statistics the verifier
// should reproduce: two concepts over three features and two labels.
func demoDataset(batch, timeSteps int, seed int64) (*dataset.Dataset, error) {
	cfg := &dataset.Config{
		FeatureSpecs: []dataset.FeatureSpec{
			{Name: "f0", Kind: "spike", Scale: 1},
			{Name: "f1", Kind: "plateau", Scale: 0.5},
			{Name: "f2", Kind: "ramp", Scale: 2},
		},
		ConceptSpecs: []dataset.ConceptSpec{
			{Name: "c0", Features: []int{0, 1}, Agreement: []float64{0.8, 0.5}, Patterns: []string{"burst", "hold"}},
			{Name: "c1", Features: []int{2}, Agreement: []float64{1.0}, Patterns: []string{"hold"}},
		},
		LabelSpecs: []dataset.LabelSpec{
			{Name: "l0", Concepts: []int{0}, Table: []float64{0.1, 0.9}},
			{Name: "l1", Concepts: []int{1}, Table: []float64{0.3, 0.6}},
		},
		NumTrains:   batch,
		NumTests:    batch / 2,
		ScalingType: "none",
		Seed:        seed,
	}
	return dataset.GenerateDataset(cfg, timeSteps)
}

// sequenceGrid adapts one example's [time][feature] sequence to the
// plotter.GridXYZ interface: time on x, feature channel on y.
type sequenceGrid struct {
	rows [][]float64
}

func (g sequenceGrid) Dims() (int, int) {
	if len(g.rows) == 0 {
		return 0, 0
	}
	return len(g.rows), len(g.rows[0])
}
func (g sequenceGrid) Z(c, r int) float64 { return g.rows[c][r] }
func (g sequenceGrid) X(c int) float64    { return float64(c) }
func (g sequenceGrid) Y(r int) float64    { return float64(r) }

// plotExample writes two PNGs for a single batch element: a heatmap of its
// sequence and a line plot of its labels and concept values over time.
func plotExample(outDir string, split *dataset.Split, example int) error {
	seq, err := split.SequenceAt(example)
	if err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Sequence, batch element %d", example)
	p.X.Label.Text = "timestep"
	p.Y.Label.Text = "feature"
	hm := plotter.NewHeatMap(sequenceGrid{rows: seq}, palette.Heat(12, 1))
	p.Add(hm)
	if err := p.Save(8*vg.Inch, 4*vg.Inch, filepath.Join(outDir, "sequence_heatmap.png")); err != nil {
		return fmt.Errorf("save heatmap: %w", err)
	}

	labels, err := split.LabelSeriesAt(example)
	if err != nil {
		return err
	}
	concepts, err := split.ConceptSeriesAt(example)
	if err != nil {
		return err
	}

	lp := plot.New()
	lp.Title.Text = fmt.Sprintf("Labels (solid) and concepts (dashed), batch element %d", example)
	lp.X.Label.Text = "timestep"
	lp.Y.Label.Text = "value"

	for l := 0; l < split.NumLabels; l++ {
		xys := make(plotter.XYs, split.Time)
		for t := 0; t < split.Time; t++ {
			xys[t] = plotter.XY{X: float64(t), Y: labels[t][l]}
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return err
		}
		line.Color = color.RGBA{R: 20, G: 80, B: 200, A: uint8(255 - (l%3)*60)}
		line.Width = vg.Points(1.2)
		lp.Add(line)
		lp.Legend.Add(fmt.Sprintf("label %d", l), line)
	}
	for c := 0; c < split.NumConcepts; c++ {
		xys := make(plotter.XYs, split.Time)
		for t := 0; t < split.Time; t++ {
			xys[t] = plotter.XY{X: float64(t), Y: concepts[t][c]}
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return err
		}
		line.Color = color.RGBA{R: 200, G: 30, B: 30, A: uint8(255 - (c%3)*60)}
		line.Width = vg.Points(0.8)
		line.Dashes = []vg.Length{vg.Points(3), vg.Points(2)}
		lp.Add(line)
		lp.Legend.Add(fmt.Sprintf("concept %d", c), line)
	}
	lp.Add(plotter.NewGrid())
	if err := lp.Save(8*vg.Inch, 4*vg.Inch, filepath.Join(outDir, "labels_concepts.png")); err != nil {
		return fmt.Errorf("save line plot: %w", err)
	}
	return nil
}
