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

import "errors"

// Sentinel errors returned by tuple operations. Call sites wrap these with
// positional context, so match with errors.Is rather than equality.
var (
	// ErrLengthMismatch reports binary operands of different lengths.
	ErrLengthMismatch = errors.New("tuple lengths differ")

	// ErrNotNumber reports a tuple element that is not an integer or float.
	ErrNotNumber = errors.New("tuple element is not a number")

	// ErrDimension reports a cross product over tuples that are not 3-dimensional.
	ErrDimension = errors.New("cross product requires 3-dimensional tuples")

	// ErrZeroDivisor reports a division by zero under the default divide policy.
	ErrZeroDivisor = errors.New("division by zero")

	// ErrZeroMagnitude reports a zero vector where a nonzero magnitude is required.
	ErrZeroMagnitude = errors.New("zero-magnitude tuple")

	// ErrEmptyTuple reports an aggregation over zero elements.
	ErrEmptyTuple = errors.New("empty tuple")
)
