package unit

import (
	"errors"
	"testing"
)

func TestNewEccentricityValid(t *testing.T) {
	for _, v := range []float64{0, 0.5, 0.999, 1.0, 1.5} {
		e, err := NewEccentricity(v)
		if err != nil {
			t.Fatalf("NewEccentricity(%v) error: %v", v, err)
		}
		if e.Value() != v {
			t.Fatalf("NewEccentricity(%v).Value() = %v", v, e.Value())
		}
	}
}

func TestNewEccentricityNegative(t *testing.T) {
	for _, v := range []float64{-0.1, -1.0} {
		_, err := NewEccentricity(v)
		if err == nil {
			t.Fatalf("NewEccentricity(%v) should fail", v)
		}

		var invalid *InvalidInputError
		if !errors.As(err, &invalid) {
			t.Fatalf("error should be an InvalidInputError, got %T", err)
		}
		if invalid.Reason != "eccentricity must be non-negative" {
			t.Fatalf("unexpected reason %q", invalid.Reason)
		}
	}
}
