package math

// DiscreteDistribution draws an index from a finite set of non-negative
// weights, proportional to each weight's share of the total. If every
// weight is zero, the distribution degenerates to a single bucket of
// mass 1 (sampling always returns index 0 with pmf 1) rather than
// dividing by zero.
type DiscreteDistribution struct {
	thresholds []float32 // cumulative normalized weights; thresholds[n-1] == 1
	pmf        []float32
}

// NewDiscreteDistribution builds a distribution over the given weights.
// weights must be non-negative; behavior is undefined otherwise.
func NewDiscreteDistribution(weights []float32) DiscreteDistribution {
	if len(weights) == 0 {
		return DiscreteDistribution{thresholds: []float32{1}, pmf: []float32{1}}
	}

	var sum float32
	for _, w := range weights {
		sum += w
	}

	if sum <= 0 {
		return DiscreteDistribution{thresholds: []float32{1}, pmf: []float32{1}}
	}

	thresholds := make([]float32, len(weights))
	pmf := make([]float32, len(weights))
	var cumulative float32
	for i, w := range weights {
		p := w / sum
		pmf[i] = p
		cumulative += p
		thresholds[i] = cumulative
	}
	thresholds[len(thresholds)-1] = 1

	return DiscreteDistribution{thresholds: thresholds, pmf: pmf}
}

// Sample draws an index using a single uniform u in [0,1), returning the
// index and its probability mass. u < thresholds[0] always resolves to
// bucket 0; otherwise the first threshold u falls below wins.
func (d DiscreteDistribution) Sample(u float32) (int, float32) {
	if u < d.thresholds[0] {
		return 0, d.pmf[0]
	}
	for i := 1; i < len(d.thresholds); i++ {
		if u < d.thresholds[i] {
			return i, d.pmf[i]
		}
	}
	last := len(d.thresholds) - 1
	return last, d.pmf[last]
}

// Pmf returns the probability mass of the given index.
func (d DiscreteDistribution) Pmf(index int) float32 {
	return d.pmf[index]
}

// Count returns the number of buckets.
func (d DiscreteDistribution) Count() int {
	return len(d.pmf)
}
