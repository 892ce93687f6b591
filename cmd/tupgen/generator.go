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

package main

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/imports"

	"github.com/connorferster/tuplevector/internal/decls"
)

const tuplePkg = "github.com/connorferster/tuplevector/tup"

var titleCaser = cases.Title(language.English)

// Generate renders Go source implementing the tup.Tuple capability for
// every shape in the declaration file and returns the formatted bytes.
func Generate(f *decls.File) ([]byte, error) {
	var sb strings.Builder

	fmt.Fprintf(&sb, "// Code generated by tupgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&sb, "package %s\n\n", f.Package)
	fmt.Fprintf(&sb, "import %q\n", tuplePkg)

	for _, s := range f.Shapes {
		writeShape(&sb, s)
	}

	// imports.Process both gofmts the output and prunes the tup import if
	// a declaration file ever stops needing it.
	src, err := imports.Process(f.Package+".go", []byte(sb.String()), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to format generated code: %w", err)
	}
	return src, nil
}

func writeShape(sb *strings.Builder, s decls.Shape) {
	typeName := exportName(s.Name)
	recv := strings.ToLower(typeName[:1])
	declared := lo.Map(s.Fields, func(fd decls.Field, _ int) string {
		return strconv.Quote(fd.Name)
	})

	fmt.Fprintf(sb, "\n// %s is a named tuple shape with fields %s.\n",
		typeName, strings.Join(fieldNames(s), ", "))
	fmt.Fprintf(sb, "type %s struct {\n", typeName)
	for _, fd := range s.Fields {
		fmt.Fprintf(sb, "\t%s %s\n", exportName(fd.Name), fd.Type)
	}
	fmt.Fprintf(sb, "}\n\n")

	// Positional constructor, mirroring Shape.Of for the dynamic flavor.
	params := lo.Map(s.Fields, func(fd decls.Field, _ int) string {
		return fmt.Sprintf("%s %s", paramName(fd.Name), fd.Type)
	})
	assigns := lo.Map(s.Fields, func(fd decls.Field, _ int) string {
		return fmt.Sprintf("%s: %s", exportName(fd.Name), paramName(fd.Name))
	})
	fmt.Fprintf(sb, "// New%s builds a %s from positional values.\n", typeName, typeName)
	fmt.Fprintf(sb, "func New%s(%s) %s {\n", typeName, strings.Join(params, ", "), typeName)
	fmt.Fprintf(sb, "\treturn %s{%s}\n", typeName, strings.Join(assigns, ", "))
	fmt.Fprintf(sb, "}\n\n")

	fmt.Fprintf(sb, "// Len returns the number of fields.\n")
	fmt.Fprintf(sb, "func (%s %s) Len() int { return %d }\n\n", recv, typeName, len(s.Fields))

	fmt.Fprintf(sb, "// At returns the field value at position i.\n")
	fmt.Fprintf(sb, "func (%s %s) At(i int) any {\n", recv, typeName)
	fmt.Fprintf(sb, "\tswitch i {\n")
	for i, fd := range s.Fields {
		fmt.Fprintf(sb, "\tcase %d:\n\t\treturn %s.%s\n", i, recv, exportName(fd.Name))
	}
	fmt.Fprintf(sb, "\t}\n")
	fmt.Fprintf(sb, "\tpanic(\"index out of range\")\n")
	fmt.Fprintf(sb, "}\n\n")

	fmt.Fprintf(sb, "// Names returns the declared field names in positional order.\n")
	fmt.Fprintf(sb, "func (%s %s) Names() []string {\n", recv, typeName)
	fmt.Fprintf(sb, "\treturn []string{%s}\n", strings.Join(declared, ", "))
	fmt.Fprintf(sb, "}\n\n")

	rebuilds := lo.Map(s.Fields, func(fd decls.Field, i int) string {
		return fmt.Sprintf("%s: %s", exportName(fd.Name), convertVal(fd.Type, i))
	})
	fmt.Fprintf(sb, "// New rebuilds a %s from computed values, assigned positionally.\n", typeName)
	fmt.Fprintf(sb, "func (%s %s) New(vals []float64) tup.Tuple {\n", recv, typeName)
	fmt.Fprintf(sb, "\treturn %s{%s}\n", typeName, strings.Join(rebuilds, ", "))
	fmt.Fprintf(sb, "}\n")
}

func fieldNames(s decls.Shape) []string {
	return lo.Map(s.Fields, func(fd decls.Field, _ int) string { return fd.Name })
}

// convertVal renders the expression assigning vals[i] to a field of the
// given element type.
func convertVal(elemType string, i int) string {
	if elemType == "float64" {
		return fmt.Sprintf("vals[%d]", i)
	}
	return fmt.Sprintf("%s(vals[%d])", elemType, i)
}

// exportName uppercases a declared name into an exported Go identifier.
// All-lowercase names go through the title caser; mixed-case names only
// get their first rune raised so declared casing survives.
func exportName(name string) string {
	if name == strings.ToLower(name) {
		return titleCaser.String(name)
	}
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r)) + name[size:]
}

// paramName lowercases a declared name for use as a constructor parameter,
// guarding against collisions with Go keywords.
func paramName(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	p := string(unicode.ToLower(r)) + name[size:]
	switch p {
	case "break", "case", "chan", "const", "continue", "default", "defer",
		"else", "fallthrough", "for", "func", "go", "goto", "if", "import",
		"interface", "map", "package", "range", "return", "select", "struct",
		"switch", "type", "var":
		return p + "Val"
	}
	return p
}
