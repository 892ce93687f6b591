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

import "fmt"

// toFloat widens a numeric element to float64. The second result is false
// for any non-numeric element.
func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	}
	return 0, false
}

// elems validates that every element of t is numeric and returns the
// widened values. Validation happens before any arithmetic anywhere in the
// package, so a failing call never produces a partial result.
func elems(t Tuple) ([]float64, error) {
	out := make([]float64, t.Len())
	for i := range out {
		f, ok := toFloat(t.At(i))
		if !ok {
			return nil, fmt.Errorf("element %d (%v): %w", i, t.At(i), ErrNotNumber)
		}
		out[i] = f
	}
	return out, nil
}

// pair validates both operands of a binary operation: every element numeric,
// both lengths equal.
func pair(t1, t2 Tuple) ([]float64, []float64, error) {
	a, err := elems(t1)
	if err != nil {
		return nil, nil, err
	}
	b, err := elems(t2)
	if err != nil {
		return nil, nil, err
	}
	if len(a) != len(b) {
		return nil, nil, fmt.Errorf("lengths %d and %d: %w", len(a), len(b), ErrLengthMismatch)
	}
	return a, b, nil
}
