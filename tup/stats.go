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

// Mean returns the arithmetic mean of the elements of t. An empty tuple
// fails with ErrEmptyTuple.
func Mean(t Tuple) (float64, error) {
	a, err := elems(t)
	if err != nil {
		return 0, err
	}
	if len(a) == 0 {
		return 0, fmt.Errorf("mean: %w", ErrEmptyTuple)
	}
	var sum float64
	for _, v := range a {
		sum += v
	}
	return sum / float64(len(a)), nil
}

// MeanNonZero returns the arithmetic mean of the nonzero elements of t,
// for averaging sparse readings where zero means "no value". A tuple with
// no nonzero elements fails with ErrEmptyTuple.
func MeanNonZero(t Tuple) (float64, error) {
	a, err := elems(t)
	if err != nil {
		return 0, err
	}
	var sum float64
	count := 0
	for _, v := range a {
		if v == 0 {
			continue
		}
		sum += v
		count++
	}
	if count == 0 {
		return 0, fmt.Errorf("mean of nonzero elements: %w", ErrEmptyTuple)
	}
	return sum / float64(count), nil
}
