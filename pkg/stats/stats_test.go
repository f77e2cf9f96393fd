package stats

import (
	"errors"
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestMean(t *testing.T) {
	tests := []struct {
		name string
		xs   []float64
		want float64
	}{
		{"single value", []float64{4.2}, 4.2},
		{"mixed signs", []float64{-2, 0, 2, 4}, 1},
		{"negative temperatures", []float64{-10.5, -9.5}, -10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Mean(tt.xs)
			if err != nil {
				t.Fatalf("Mean() error = %v", err)
			}
			if !almostEqual(got, tt.want) {
				t.Errorf("Mean() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMeanEmpty(t *testing.T) {
	if _, err := Mean(nil); !errors.Is(err, ErrEmptySample) {
		t.Errorf("Mean(nil) error = %v, want ErrEmptySample", err)
	}
}

func TestQuantile(t *testing.T) {
	sorted := []float64{1, 2, 3, 4}

	tests := []struct {
		name string
		q    float64
		want float64
	}{
		{"minimum", 0, 1},
		{"first quartile", 0.25, 1.75},
		{"median interpolates", 0.5, 2.5},
		{"third quartile", 0.75, 3.25},
		{"maximum", 1, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Quantile(sorted, tt.q)
			if err != nil {
				t.Fatalf("Quantile() error = %v", err)
			}
			if !almostEqual(got, tt.want) {
				t.Errorf("Quantile(%v) = %v, want %v", tt.q, got, tt.want)
			}
		})
	}
}

func TestBoxPlot(t *testing.T) {
	// 1..9 plus a far outlier
	xs := []float64{5, 1, 2, 3, 4, 9, 6, 7, 8, 100}

	box, err := BoxPlot(xs)
	if err != nil {
		t.Fatalf("BoxPlot() error = %v", err)
	}

	if box.Samples != 10 {
		t.Errorf("Samples = %d, want 10", box.Samples)
	}
	if !almostEqual(box.Q1, 3.25) {
		t.Errorf("Q1 = %v, want 3.25", box.Q1)
	}
	if !almostEqual(box.Median, 5.5) {
		t.Errorf("Median = %v, want 5.5", box.Median)
	}
	if !almostEqual(box.Q3, 7.75) {
		t.Errorf("Q3 = %v, want 7.75", box.Q3)
	}
	if len(box.Outliers) != 1 || !almostEqual(box.Outliers[0], 100) {
		t.Errorf("Outliers = %v, want [100]", box.Outliers)
	}
	if !almostEqual(box.Lower, 1) || !almostEqual(box.Upper, 9) {
		t.Errorf("whiskers = [%v, %v], want [1, 9]", box.Lower, box.Upper)
	}
}

func TestBoxPlotConstantSample(t *testing.T) {
	box, err := BoxPlot([]float64{-3, -3, -3})
	if err != nil {
		t.Fatalf("BoxPlot() error = %v", err)
	}
	if !almostEqual(box.Median, -3) || !almostEqual(box.Lower, -3) || !almostEqual(box.Upper, -3) {
		t.Errorf("constant sample box = %+v, want all -3", box)
	}
	if len(box.Outliers) != 0 {
		t.Errorf("Outliers = %v, want none", box.Outliers)
	}
}

func TestBoxPlotEmpty(t *testing.T) {
	if _, err := BoxPlot(nil); !errors.Is(err, ErrEmptySample) {
		t.Errorf("BoxPlot(nil) error = %v, want ErrEmptySample", err)
	}
}

func TestMode(t *testing.T) {
	counts := map[string]int{
		"04088001": 3,
		"04002002": 5,
		"04120001": 5,
	}

	key, count := Mode(counts)
	if key != "04002002" || count != 5 {
		t.Errorf("Mode() = (%q, %d), want (%q, 5)", key, count, "04002002")
	}
}

func TestModeEmpty(t *testing.T) {
	key, count := Mode(nil)
	if key != "" || count != 0 {
		t.Errorf("Mode(nil) = (%q, %d), want empty", key, count)
	}
}
