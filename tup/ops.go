package tup

import (
	"fmt"
	"math"
)

// This file provides the element-wise arithmetic operations. Every function
// validates its operands first, computes into a fresh slice, and rebuilds
// the result in the shape of the first operand via Tuple.New.

// Add performs element-wise addition. The result has the shape of t1.
func Add(t1, t2 Tuple) (Tuple, error) {
	a, b, err := pair(t1, t2)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}
	return t1.New(out), nil
}

// Subtract performs element-wise subtraction t1[i] - t2[i]. The result has
// the shape of t1.
func Subtract(t1, t2 Tuple) (Tuple, error) {
	a, b, err := pair(t1, t2)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}
	return t1.New(out), nil
}

// Multiply performs element-wise multiplication. The result has the shape
// of t1.
func Multiply(t1, t2 Tuple) (Tuple, error) {
	a, b, err := pair(t1, t2)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] * b[i]
	}
	return t1.New(out), nil
}

// Divide performs element-wise division t1[i] / t2[i]. A zero divisor at
// any position fails the whole call with ErrZeroDivisor; use
// DivideIgnoreZeros to substitute 0 at those positions instead.
func Divide(t1, t2 Tuple) (Tuple, error) {
	a, b, err := pair(t1, t2)
	if err != nil {
		return nil, err
	}
	// Scan divisors up front so a late zero never yields a partial result.
	for i := range b {
		if b[i] == 0 {
			return nil, fmt.Errorf("element %d: %w", i, ErrZeroDivisor)
		}
	}
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] / b[i]
	}
	return t1.New(out), nil
}

// DivideIgnoreZeros performs element-wise division like Divide, but every
// position with a zero divisor yields 0 in the result instead of failing.
func DivideIgnoreZeros(t1, t2 Tuple) (Tuple, error) {
	a, b, err := pair(t1, t2)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(a))
	for i := range a {
		if b[i] == 0 {
			continue
		}
		out[i] = a[i] / b[i]
	}
	return t1.New(out), nil
}

// AddScalar adds x to every element. The result has the shape of t.
func AddScalar(t Tuple, x float64) (Tuple, error) {
	a, err := elems(t)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] + x
	}
	return t.New(out), nil
}

// SubtractScalar subtracts x from every element. The result has the shape
// of t.
func SubtractScalar(t Tuple, x float64) (Tuple, error) {
	a, err := elems(t)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] - x
	}
	return t.New(out), nil
}

// MultiplyScalar multiplies every element by x. The result has the shape
// of t.
func MultiplyScalar(t Tuple, x float64) (Tuple, error) {
	a, err := elems(t)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] * x
	}
	return t.New(out), nil
}

// DivideScalar divides every element by x. A zero x fails with
// ErrZeroDivisor.
func DivideScalar(t Tuple, x float64) (Tuple, error) {
	a, err := elems(t)
	if err != nil {
		return nil, err
	}
	if x == 0 {
		return nil, fmt.Errorf("scalar divisor: %w", ErrZeroDivisor)
	}
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] / x
	}
	return t.New(out), nil
}

// Round rounds every element to the given number of decimal places.
// Negative decimals round to the left of the decimal point. The result has
// the shape of t.
func Round(t Tuple, decimals int) (Tuple, error) {
	a, err := elems(t)
	if err != nil {
		return nil, err
	}
	scale := math.Pow(10, float64(decimals))
	out := make([]float64, len(a))
	for i := range a {
		out[i] = math.Round(a[i]*scale) / scale
	}
	return t.New(out), nil
}
