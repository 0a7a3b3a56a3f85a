// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package gen

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"

	"github.com/consensys/go-packvec/pkg/domain"
)

// File is the top-level structure of a schema file: one or more domain type
// declarations.
type File struct {
	Types []TypeSpec `json:"types"`
}

// TypeSpec is the on-disk description of one domain type, as a sum of named
// variants.
type TypeSpec struct {
	Name     string        `json:"name"`
	Variants []VariantSpec `json:"variants"`
}

// VariantSpec describes one alternative of a domain type.  A variant without
// fields is a unit alternative.
type VariantSpec struct {
	Name   string      `json:"name"`
	Fields []FieldSpec `json:"fields,omitempty"`
}

// FieldSpec describes one field of a data-bearing variant by name and
// cardinality.
type FieldSpec struct {
	Name        string `json:"name"`
	Cardinality uint64 `json:"cardinality"`
}

// ParseFile reads a schema file, checking every declared type lowers cleanly.
func ParseFile(data []byte) (*File, error) {
	var file File
	//
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, err
	} else if len(file.Types) == 0 {
		return nil, fmt.Errorf("schema file declares no types")
	}
	//
	for _, spec := range file.Types {
		if _, err := lower(spec); err != nil {
			return nil, err
		}
	}
	//
	return &file, nil
}

// Generated type and field names must be exported Go identifiers.
var identifier = regexp.MustCompile(`^[A-Z][A-Za-z0-9_]*$`)

// typeConfig is the lowered form of a TypeSpec handed to the template: all
// variant offsets and field radices are precomputed, so the generated codec
// contains only literal arithmetic.
type typeConfig struct {
	Name        string
	Cardinality uint64
	HasData     bool
	// Variants in declaration order, for type and Encode emission.
	Variants []variantConfig
	// Variants in ascending offset order, for Decode range dispatch.
	Ordered []variantConfig
}

type variantConfig struct {
	Name   string
	Offset uint64
	Size   uint64
	End    uint64
	Unit   bool
	Fields []fieldConfig
}

type fieldConfig struct {
	Name        string
	Cardinality uint64
	// Running product of the cardinalities of all preceding fields, making
	// this field's place value in the mixed radix sum.
	Radix uint64
}

// lower validates a type declaration and computes the constants baked into
// its generated codec.  Index assignment is delegated to domain.NewSchema so
// that generated codecs and runtime schemas can never disagree.
func lower(spec TypeSpec) (*typeConfig, error) {
	if !identifier.MatchString(spec.Name) {
		return nil, fmt.Errorf("type name %q is not an exported Go identifier", spec.Name)
	}
	//
	variants := make([]domain.Variant, len(spec.Variants))
	//
	for i, v := range spec.Variants {
		if !identifier.MatchString(v.Name) {
			return nil, fmt.Errorf("type %s: variant name %q is not an exported Go identifier", spec.Name, v.Name)
		}
		//
		fields := make([]uint64, len(v.Fields))
		//
		for j, f := range v.Fields {
			if !identifier.MatchString(f.Name) {
				return nil, fmt.Errorf("type %s: field name %q is not an exported Go identifier", spec.Name, f.Name)
			} else if f.Cardinality == 0 {
				return nil, fmt.Errorf("type %s: field %s.%s has cardinality zero", spec.Name, v.Name, f.Name)
			}
			//
			fields[j] = f.Cardinality
		}
		//
		variants[i] = domain.Variant{Name: v.Name, Fields: fields}
	}
	//
	schema, err := domain.NewSchema(spec.Name, variants...)
	if err != nil {
		return nil, err
	}
	//
	config := &typeConfig{
		Name:        spec.Name,
		Cardinality: schema.Cardinality(),
		Variants:    make([]variantConfig, len(spec.Variants)),
	}
	//
	for i, v := range spec.Variants {
		var (
			offset = schema.Offset(i)
			size   = schema.Size(i)
			fields = make([]fieldConfig, len(v.Fields))
			radix  = uint64(1)
		)
		//
		for j, f := range v.Fields {
			fields[j] = fieldConfig{f.Name, f.Cardinality, radix}
			radix *= f.Cardinality
		}
		//
		config.Variants[i] = variantConfig{v.Name, offset, size, offset + size, len(v.Fields) == 0, fields}
		config.HasData = config.HasData || len(v.Fields) > 0
	}
	//
	config.Ordered = append([]variantConfig{}, config.Variants...)
	sort.Slice(config.Ordered, func(i, j int) bool {
		return config.Ordered[i].Offset < config.Ordered[j].Offset
	})
	//
	return config, nil
}
