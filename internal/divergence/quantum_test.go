package divergence

import (
	"errors"
	"testing"
)

func TestGCDAndLCM(t *testing.T) {
	tests := []struct {
		a, b    int64
		wantGCD int64
		wantLCM int64
	}{
		{a: 6, b: 8, wantGCD: 2, wantLCM: 24},
		{a: 15, b: 15, wantGCD: 15, wantLCM: 15},
		{a: 7, b: 3, wantGCD: 1, wantLCM: 21},
		{a: 12, b: 18, wantGCD: 6, wantLCM: 36},
		{a: 0, b: 5, wantGCD: 5, wantLCM: 0},
		{a: -4, b: 6, wantGCD: 2, wantLCM: -12},
	}

	for _, tt := range tests {
		if got := GCD(tt.a, tt.b); got != tt.wantGCD {
			t.Errorf("GCD(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.wantGCD)
		}
		if got := LCM(tt.a, tt.b); got != tt.wantLCM {
			t.Errorf("LCM(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.wantLCM)
		}
	}
}

func TestQuantum(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		q, err := Quantum(6, 8)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q != 24 {
			t.Fatalf("Quantum(6, 8) = %f, want 24", q)
		}
	})

	t.Run("NonIntegral", func(t *testing.T) {
		if _, err := Quantum(1.5, 3); !errors.Is(err, ErrNonIntegralQuantum) {
			t.Fatalf("expected ErrNonIntegralQuantum, got %v", err)
		}
	})

	t.Run("Zero", func(t *testing.T) {
		if _, err := Quantum(0, 3); !errors.Is(err, ErrEmptyDistribution) {
			t.Fatalf("expected ErrEmptyDistribution, got %v", err)
		}
	})

	t.Run("Overflow", func(t *testing.T) {
		// Two large coprime totals whose product exceeds 2^53.
		if _, err := Quantum(1<<40, 1<<40-1); !errors.Is(err, ErrDomain) {
			t.Fatalf("expected ErrDomain, got %v", err)
		}
	})
}
