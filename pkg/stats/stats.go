package stats

import (
	"errors"
	"math"
	"sort"
)

// ErrEmptySample is returned when a statistic is requested over no data.
var ErrEmptySample = errors.New("empty sample")

// BoxStats holds the five-number summary of a sample with Tukey-style
// 1.5*IQR whiskers.
type BoxStats struct {
	Lower    float64
	Q1       float64
	Median   float64
	Q3       float64
	Upper    float64
	Outliers []float64
	Samples  int
}

// Mean returns the arithmetic mean of xs.
func Mean(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrEmptySample
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs)), nil
}

// Quantile returns the q-quantile (0 <= q <= 1) of a sorted sample using
// linear interpolation between closest ranks.
func Quantile(sorted []float64, q float64) (float64, error) {
	if len(sorted) == 0 {
		return 0, ErrEmptySample
	}
	if q <= 0 {
		return sorted[0], nil
	}
	if q >= 1 {
		return sorted[len(sorted)-1], nil
	}

	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo], nil
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac, nil
}

// BoxPlot computes the boxplot summary of xs. Whiskers extend to the most
// extreme data points within 1.5*IQR of the quartiles; points beyond them are
// reported as outliers. The input slice is not modified.
func BoxPlot(xs []float64) (BoxStats, error) {
	if len(xs) == 0 {
		return BoxStats{}, ErrEmptySample
	}

	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)

	q1, _ := Quantile(sorted, 0.25)
	median, _ := Quantile(sorted, 0.5)
	q3, _ := Quantile(sorted, 0.75)

	iqr := q3 - q1
	lowFence := q1 - 1.5*iqr
	highFence := q3 + 1.5*iqr

	lower := sorted[len(sorted)-1]
	upper := sorted[0]
	outliers := []float64{}
	for _, x := range sorted {
		if x < lowFence || x > highFence {
			outliers = append(outliers, x)
			continue
		}
		if x < lower {
			lower = x
		}
		if x > upper {
			upper = x
		}
	}

	// Every point is an outlier only when the sample is degenerate; clamp
	// the whiskers to the quartiles in that case.
	if len(outliers) == len(sorted) {
		lower, upper = q1, q3
	}

	return BoxStats{
		Lower:    lower,
		Q1:       q1,
		Median:   median,
		Q3:       q3,
		Upper:    upper,
		Outliers: outliers,
		Samples:  len(sorted),
	}, nil
}

// Mode returns the most frequent key of counts and its frequency. Ties break
// toward the lexicographically smallest key so results are deterministic.
func Mode(counts map[string]int) (string, int) {
	best := ""
	bestCount := 0
	for key, count := range counts {
		if count > bestCount || (count == bestCount && key < best) {
			best = key
			bestCount = count
		}
	}
	return best, bestCount
}
