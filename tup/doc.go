// Package tup treats fixed-length tuples like one-dimensional vectors.
//
// Every operation is a pure function over values implementing the Tuple
// capability: a fixed-length ordered sequence of numbers that can report
// its field names (if any) and rebuild itself from a plain slice of
// results. Operations that return a tuple always reconstruct the result
// in the shape of their first operand, so named shapes survive the math.
//
// # Tuple Flavors
//
// Three flavors of tuple satisfy the capability:
//   - Plain — an unnamed ordered sequence, built with Of(1, 2, 3)
//   - Named — a shape declared at runtime from a field-name list,
//     built with NewShape("Point", "x", "y", "z").Of(6, 7, 8)
//   - generated struct types — static shapes with typed fields, emitted
//     by the tupgen tool from a YAML declaration file
//
// All three are handled identically; the operations depend only on the
// Tuple interface, never on the concrete flavor.
//
// # Example Usage
//
//	point := tup.NewShape("Point", "x", "y", "z")
//	p := point.Of(6, 7, 8)
//
//	sum, err := tup.Add(p, tup.Of(1, 2, 3))
//	if err != nil {
//	    // handle length or element-type errors
//	}
//	// sum is a Named Point(x=7, y=9, z=11)
//
// # Errors
//
// Invalid inputs never produce partial results. Each failure mode has a
// package-level sentinel (ErrLengthMismatch, ErrNotNumber, ErrDimension,
// ErrZeroDivisor, ErrZeroMagnitude, ErrEmptyTuple) suitable for errors.Is.
// The library performs no logging and no recovery; callers decide policy
// at their own boundary. The one opt-in exception is DivideIgnoreZeros,
// which substitutes 0 at zero-divisor positions instead of failing.
//
// Inputs are never mutated and no package-level state exists, so every
// function is safe to call concurrently.
package tup
