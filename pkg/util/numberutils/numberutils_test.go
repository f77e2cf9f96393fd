package numberutils

import "testing"

func TestToIntWithDefault(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		defaultVal int
		want       int
	}{
		{"valid number", "42", 0, 42},
		{"empty string", "", 10, 10},
		{"garbage", "abc", 7, 7},
		{"negative", "-3", 0, -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToIntWithDefault(tt.input, tt.defaultVal); got != tt.want {
				t.Errorf("ToIntWithDefault(%q, %d) = %d, want %d", tt.input, tt.defaultVal, got, tt.want)
			}
		})
	}
}

func TestClampInt(t *testing.T) {
	if got := ClampInt(500, 1, 100); got != 100 {
		t.Errorf("ClampInt(500, 1, 100) = %d, want 100", got)
	}
	if got := ClampInt(0, 1, 100); got != 1 {
		t.Errorf("ClampInt(0, 1, 100) = %d, want 1", got)
	}
	if got := ClampInt(50, 1, 100); got != 50 {
		t.Errorf("ClampInt(50, 1, 100) = %d, want 50", got)
	}
}

func TestRoundTo(t *testing.T) {
	if got := RoundTo(2.34567, 2); got != 2.35 {
		t.Errorf("RoundTo(2.34567, 2) = %v, want 2.35", got)
	}
	if got := RoundTo(-2.345, 1); got != -2.3 {
		t.Errorf("RoundTo(-2.345, 1) = %v, want -2.3", got)
	}
}
