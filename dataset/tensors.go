package dataset

import "github.com/gomlx/gomlx/pkg/core/tensors"

// gomlx bridge. The flat buffers are reshaped into nested slices and handed
// to tensors.FromAnyValue, which infers dtype and dimensions. Useful when
// feeding the splits into gomlx training code, and for printing authoritative
// shapes.

// SequenceTensor returns the sequence array as a [time, batch, feature]
// float32 tensor.
func (s *Split) SequenceTensor() *tensors.Tensor {
	data := make([][][]float32, s.Time)
	idx := 0
	for t := 0; t < s.Time; t++ {
		data[t] = make([][]float32, s.Batch)
		for b := 0; b < s.Batch; b++ {
			data[t][b] = s.Sequence[idx : idx+s.NumFeatures]
			idx += s.NumFeatures
		}
	}
	return tensors.FromAnyValue(data)
}

// LabelTensor returns the label array as a [time, batch, label] float32
// tensor.
func (s *Split) LabelTensor() *tensors.Tensor {
	data := make([][][]float32, s.Time)
	idx := 0
	for t := 0; t < s.Time; t++ {
		data[t] = make([][]float32, s.Batch)
		for b := 0; b < s.Batch; b++ {
			data[t][b] = s.Label[idx : idx+s.NumLabels]
			idx += s.NumLabels
		}
	}
	return tensors.FromAnyValue(data)
}

// ConceptSequenceTensor returns the integer concept sequence as a
// [time, batch, concept] int32 tensor.
func (s *Split) ConceptSequenceTensor() *tensors.Tensor {
	data := make([][][]int32, s.Time)
	idx := 0
	for t := 0; t < s.Time; t++ {
		data[t] = make([][]int32, s.Batch)
		for b := 0; b < s.Batch; b++ {
			data[t][b] = s.ConceptSequence[idx : idx+s.NumConcepts]
			idx += s.NumConcepts
		}
	}
	return tensors.FromAnyValue(data)
}
