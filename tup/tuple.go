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
	"strings"
)

// Tuple is the capability every operation works against: a fixed-length
// ordered sequence of elements that knows how to rebuild itself from a
// plain slice of computed values.
//
// Implementations must be value-like: At must not expose mutable internals
// and New must return a fresh value of the same shape, leaving the receiver
// untouched.
type Tuple interface {
	// Len returns the number of elements.
	Len() int
	// At returns the element at index i. Elements are untyped so that
	// non-numeric values are representable; operations reject them with
	// ErrNotNumber before computing anything.
	At(i int) any
	// Names returns the field names in positional order, or nil when the
	// tuple is an unnamed plain sequence.
	Names() []string
	// New builds a tuple of the same shape as the receiver holding vals,
	// assigned positionally. len(vals) always equals Len().
	New(vals []float64) Tuple
}

// Plain is an unnamed ordered sequence of elements.
type Plain []any

// Of builds a Plain tuple from the given elements.
func Of(vals ...any) Plain {
	p := make(Plain, len(vals))
	copy(p, vals)
	return p
}

// Len returns the number of elements.
func (p Plain) Len() int { return len(p) }

// At returns the element at index i.
func (p Plain) At(i int) any { return p[i] }

// Names returns nil: a Plain tuple has no field names.
func (p Plain) Names() []string { return nil }

// New builds a Plain tuple of the same length holding vals.
func (p Plain) New(vals []float64) Tuple {
	out := make(Plain, len(vals))
	for i, v := range vals {
		out[i] = v
	}
	return out
}

// Shape is a named-tuple shape declared at runtime from a field-name list.
// A Shape is immutable after construction; instances built from it share
// it, which is how reconstruction preserves the shape identity.
type Shape struct {
	name   string
	fields []string
}

// NewShape declares a shape with the given name and field names.
// Field order is positional and significant.
func NewShape(name string, fields ...string) *Shape {
	s := &Shape{name: name, fields: make([]string, len(fields))}
	copy(s.fields, fields)
	return s
}

// Name returns the shape's declared name.
func (s *Shape) Name() string { return s.name }

// Fields returns a copy of the field names in positional order.
func (s *Shape) Fields() []string {
	out := make([]string, len(s.fields))
	copy(out, s.fields)
	return out
}

// Of instantiates the shape with the given elements, assigned to fields
// positionally. It panics when the element count does not match the field
// count, the same way constructing a record with missing fields would.
func (s *Shape) Of(vals ...any) Named {
	if len(vals) != len(s.fields) {
		panic(fmt.Sprintf("tup: %s takes %d values, got %d", s.name, len(s.fields), len(vals)))
	}
	elems := make([]any, len(vals))
	copy(elems, vals)
	return Named{shape: s, vals: elems}
}

// Named is an instance of a runtime-declared Shape.
type Named struct {
	shape *Shape
	vals  []any
}

// Len returns the number of elements.
func (n Named) Len() int { return len(n.vals) }

// At returns the element at index i.
func (n Named) At(i int) any { return n.vals[i] }

// Names returns the shape's field names in positional order.
func (n Named) Names() []string { return n.shape.Fields() }

// New builds a Named tuple of the same shape holding vals.
func (n Named) New(vals []float64) Tuple {
	elems := make([]any, len(vals))
	for i, v := range vals {
		elems[i] = v
	}
	return Named{shape: n.shape, vals: elems}
}

// Shape returns the shape this tuple was built from.
func (n Named) Shape() *Shape { return n.shape }

// Get returns the element stored under the named field, or false when the
// shape has no such field.
func (n Named) Get(field string) (any, bool) {
	for i, f := range n.shape.fields {
		if f == field {
			return n.vals[i], true
		}
	}
	return nil, false
}

// String renders the tuple as Name(field=value, ...).
func (n Named) String() string {
	var sb strings.Builder
	sb.WriteString(n.shape.name)
	sb.WriteByte('(')
	for i, f := range n.shape.fields {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s=%v", f, n.vals[i])
	}
	sb.WriteByte(')')
	return sb.String()
}
