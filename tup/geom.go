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
	"fmt"
	"math"
)

// Dot returns the dot product of t1 and t2: Σ t1[i]*t2[i].
func Dot(t1, t2 Tuple) (float64, error) {
	a, b, err := pair(t1, t2)
	if err != nil {
		return 0, err
	}
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum, nil
}

// Cross returns the cross product of two 3-dimensional tuples. The result
// has the shape of t1. Any other length fails with ErrDimension.
func Cross(t1, t2 Tuple) (Tuple, error) {
	a, b, err := pair(t1, t2)
	if err != nil {
		return nil, err
	}
	if len(a) != 3 {
		return nil, fmt.Errorf("length %d: %w", len(a), ErrDimension)
	}
	out := []float64{
		a[1]*b[2] - b[1]*a[2],
		-(a[0]*b[2] - b[0]*a[2]),
		a[0]*b[1] - b[0]*a[1],
	}
	return t1.New(out), nil
}

// Magnitude returns the Euclidean norm of t.
func Magnitude(t Tuple) (float64, error) {
	a, err := elems(t)
	if err != nil {
		return 0, err
	}
	return norm(a), nil
}

// Normalize returns the unit vector of t, in the shape of t. A zero vector
// fails with ErrZeroMagnitude.
func Normalize(t Tuple) (Tuple, error) {
	a, err := elems(t)
	if err != nil {
		return nil, err
	}
	mag := norm(a)
	if mag == 0 {
		return nil, fmt.Errorf("normalize: %w", ErrZeroMagnitude)
	}
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] / mag
	}
	return t.New(out), nil
}

// Angle returns the angle between t1 and t2 in radians, computed as
// acos(dot/(|t1|*|t2|)). Rounding can push the cosine slightly outside
// [-1, 1], so it is clamped before acos. Either operand having zero
// magnitude fails with ErrZeroMagnitude.
func Angle(t1, t2 Tuple) (float64, error) {
	a, b, err := pair(t1, t2)
	if err != nil {
		return 0, err
	}
	m1, m2 := norm(a), norm(b)
	if m1 == 0 || m2 == 0 {
		return 0, fmt.Errorf("angle: %w", ErrZeroMagnitude)
	}
	var dot float64
	for i := range a {
		dot += a[i] * b[i]
	}
	cos := dot / (m1 * m2)
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return math.Acos(cos), nil
}

// AngleDegrees returns the angle between t1 and t2 in degrees.
func AngleDegrees(t1, t2 Tuple) (float64, error) {
	rad, err := Angle(t1, t2)
	if err != nil {
		return 0, err
	}
	return rad * 180 / math.Pi, nil
}

// norm returns the Euclidean norm of already-validated values.
func norm(vals []float64) float64 {
	var sq float64
	for _, v := range vals {
		sq += v * v
	}
	return math.Sqrt(sq)
}
