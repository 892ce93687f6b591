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

// Package decls loads and validates the YAML shape-declaration files
// consumed by the tupgen code generator.
package decls

import (
	"fmt"
	"os"
	"unicode"

	"gopkg.in/yaml.v3"
)

// File is one shape-declaration document: a target package plus the named
// shapes to generate into it.
type File struct {
	Package string  `yaml:"package"`
	Shapes  []Shape `yaml:"shapes"`
}

// Shape declares one named-tuple type with typed fields.
type Shape struct {
	Name   string  `yaml:"name"`
	Fields []Field `yaml:"fields"`
}

// Field declares one component of a shape. Type defaults to float64 when
// left empty.
type Field struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// numericTypes are the Go element types a field may declare. Elements widen
// to float64 during computation regardless of the declared type.
var numericTypes = map[string]bool{
	"float64": true,
	"float32": true,
	"int":     true,
	"int8":    true,
	"int16":   true,
	"int32":   true,
	"int64":   true,
	"uint":    true,
	"uint8":   true,
	"uint16":  true,
	"uint32":  true,
	"uint64":  true,
}

// Load reads and parses the declaration file at path, applies type
// defaults, and validates the result.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read declarations: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse declarations: %w", err)
	}

	for si := range f.Shapes {
		for fi := range f.Shapes[si].Fields {
			if f.Shapes[si].Fields[fi].Type == "" {
				f.Shapes[si].Fields[fi].Type = "float64"
			}
		}
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks the declaration for structural problems: missing or
// invalid identifiers, duplicate names, and non-numeric field types.
func (f *File) Validate() error {
	if !isIdent(f.Package) {
		return fmt.Errorf("package %q is not a valid identifier", f.Package)
	}
	if len(f.Shapes) == 0 {
		return fmt.Errorf("declaration file has no shapes")
	}

	seenShapes := map[string]bool{}
	for _, s := range f.Shapes {
		if !isIdent(s.Name) {
			return fmt.Errorf("shape name %q is not a valid identifier", s.Name)
		}
		if seenShapes[s.Name] {
			return fmt.Errorf("duplicate shape %q", s.Name)
		}
		seenShapes[s.Name] = true

		if len(s.Fields) == 0 {
			return fmt.Errorf("shape %q has no fields", s.Name)
		}
		seenFields := map[string]bool{}
		for _, fd := range s.Fields {
			if !isIdent(fd.Name) {
				return fmt.Errorf("shape %q: field name %q is not a valid identifier", s.Name, fd.Name)
			}
			if seenFields[fd.Name] {
				return fmt.Errorf("shape %q: duplicate field %q", s.Name, fd.Name)
			}
			seenFields[fd.Name] = true
			if !numericTypes[fd.Type] {
				return fmt.Errorf("shape %q: field %q has non-numeric type %q", s.Name, fd.Name, fd.Type)
			}
		}
	}
	return nil
}

// isIdent reports whether s is a valid Go identifier.
func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}
