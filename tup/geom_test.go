// Copyright 2025 tuplevector Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package tup

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
)

func TestDot(t *testing.T) {
	tests := []struct {
		name string
		t1   Tuple
		t2   Tuple
		want float64
	}{
		{"Orthogonal", Of(1, 0, 0), Of(0, 1, 0), 0},
		{"Parallel", Of(1, 2, 3), Of(2, 4, 6), 28},
		{"Negative", Of(1, -1), Of(1, 1), 0},
		{"TwoD", Of(3, 4), Of(5, 6), 39},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Dot(tt.t1, tt.t2)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-tt.want) > tol {
				t.Errorf("Dot = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDotErrors(t *testing.T) {
	if _, err := Dot(Of(1, 2), Of(1, 2, 3)); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("error = %v, want %v", err, ErrLengthMismatch)
	}
	if _, err := Dot(Of(1, "x"), Of(1, 2)); !errors.Is(err, ErrNotNumber) {
		t.Errorf("error = %v, want %v", err, ErrNotNumber)
	}
}

// Cross-check Dot and Magnitude against gonum's reference implementations.
func TestDotMatchesGonum(t *testing.T) {
	a := []float64{0.5, -1.25, 3.75, 2, -0.125}
	b := []float64{1.5, 2.25, -0.75, 4, 8}

	got, err := Dot(Of(0.5, -1.25, 3.75, 2, -0.125), Of(1.5, 2.25, -0.75, 4, 8))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := floats.Dot(a, b)
	if math.Abs(got-want) > tol {
		t.Errorf("Dot = %v, gonum says %v", got, want)
	}
}

func TestMagnitudeMatchesGonum(t *testing.T) {
	vals := []float64{0.5, -1.25, 3.75, 2, -0.125}

	got, err := Magnitude(Of(0.5, -1.25, 3.75, 2, -0.125))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := floats.Norm(vals, 2)
	if math.Abs(got-want) > tol {
		t.Errorf("Magnitude = %v, gonum says %v", got, want)
	}
}

func TestCross(t *testing.T) {
	tests := []struct {
		name string
		t1   Tuple
		t2   Tuple
		want []float64
	}{
		{"UnitXUnitY", Of(1, 0, 0), Of(0, 1, 0), []float64{0, 0, 1}},
		{"UnitYUnitX", Of(0, 1, 0), Of(1, 0, 0), []float64{0, 0, -1}},
		{"General", Of(2, 3, 4), Of(5, 6, 7), []float64{-3, 6, -3}},
		{"Parallel", Of(1, 2, 3), Of(2, 4, 6), []float64{0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Cross(tt.t1, tt.t2)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			wantValues(t, got, tt.want)
		})
	}
}

func TestCrossPreservesShape(t *testing.T) {
	vectorShape := NewShape("Vector", "i", "j", "k")
	got, err := Cross(vectorShape.Of(1, 0, 0), Of(0, 1, 0))
	if err != nil {
		t.Fatalf("Cross: %v", err)
	}
	named, ok := got.(Named)
	if !ok {
		t.Fatalf("result is %T, want Named", got)
	}
	if named.Shape() != vectorShape {
		t.Error("cross product lost the Vector shape")
	}
	wantValues(t, got, []float64{0, 0, 1})
}

func TestCrossDimensionError(t *testing.T) {
	tests := []struct {
		name    string
		t1      Tuple
		t2      Tuple
		wantErr error
	}{
		{"TwoD", Of(1, 2), Of(3, 4), ErrDimension},
		{"FourD", Of(1, 2, 3, 4), Of(5, 6, 7, 8), ErrDimension},
		// Mismatched lengths fail as a mismatch before dimensionality.
		{"Mismatch", Of(1, 2, 3), Of(1, 2), ErrLengthMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Cross(tt.t1, tt.t2); !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestMagnitude(t *testing.T) {
	tests := []struct {
		name string
		in   Tuple
		want float64
	}{
		{"ThreeFour", Of(3, 4), 5},
		{"Unit", Of(1, 0, 0), 1},
		{"Zero", Of(0, 0, 0), 0},
		{"Empty", Of(), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Magnitude(tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-tt.want) > tol {
				t.Errorf("Magnitude = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	got, err := Normalize(Of(3, 4))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantValues(t, got, []float64{0.6, 0.8})

	mag, err := Magnitude(got)
	if err != nil {
		t.Fatalf("Magnitude: %v", err)
	}
	if math.Abs(mag-1) > tol {
		t.Errorf("normalized magnitude = %v, want 1", mag)
	}
}

func TestNormalizePreservesShape(t *testing.T) {
	got, err := Normalize(vector{X: 3, Y: 0, Z: 4})
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	v, ok := got.(vector)
	if !ok {
		t.Fatalf("result is %T, want vector", got)
	}
	if math.Abs(v.X-0.6) > tol || v.Y != 0 || math.Abs(v.Z-0.8) > tol {
		t.Errorf("result = %+v, want {0.6 0 0.8}", v)
	}
}

func TestNormalizeZeroVector(t *testing.T) {
	if _, err := Normalize(Of(0, 0, 0)); !errors.Is(err, ErrZeroMagnitude) {
		t.Errorf("error = %v, want %v", err, ErrZeroMagnitude)
	}
}

func TestAngle(t *testing.T) {
	tests := []struct {
		name string
		t1   Tuple
		t2   Tuple
		want float64
	}{
		{"Orthogonal", Of(1, 0, 0), Of(0, 1, 0), math.Pi / 2},
		{"Opposite", Of(1, 0), Of(-1, 0), math.Pi},
		{"FortyFive", Of(1, 0), Of(1, 1), math.Pi / 4},
		// Parallel vectors can push the cosine just past 1; the clamp
		// keeps acos in its domain.
		{"Parallel", Of(1, 2, 3), Of(2, 4, 6), 0},
		{"SameVector", Of(0.1, 0.2, 0.3), Of(0.1, 0.2, 0.3), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Angle(tt.t1, tt.t2)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Angle = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAngleDegrees(t *testing.T) {
	got, err := AngleDegrees(Of(1, 0), Of(0, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-90) > 1e-9 {
		t.Errorf("AngleDegrees = %v, want 90", got)
	}
}

func TestAngleZeroMagnitude(t *testing.T) {
	tests := []struct {
		name string
		t1   Tuple
		t2   Tuple
	}{
		{"FirstZero", Of(0, 0), Of(1, 1)},
		{"SecondZero", Of(1, 1), Of(0, 0)},
		{"BothZero", Of(0, 0), Of(0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Angle(tt.t1, tt.t2); !errors.Is(err, ErrZeroMagnitude) {
				t.Errorf("error = %v, want %v", err, ErrZeroMagnitude)
			}
		})
	}
}
