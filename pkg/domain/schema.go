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
package domain

import (
	"fmt"
	"math"
)

// Variant describes one alternative of a schema-defined sum type by the
// cardinalities of its fields.  A variant with no fields is a unit
// alternative; a variant with a zero-cardinality field can never hold a value
// and occupies an empty range.
type Variant struct {
	Name   string
	Fields []uint64
}

// Unit reports whether this variant carries no data.
func (p Variant) Unit() bool {
	return len(p.Fields) == 0
}

// Size returns the number of distinct values this variant can hold, that is
// the product of its field cardinalities.
func (p Variant) Size() (uint64, error) {
	size := uint64(1)
	//
	for _, n := range p.Fields {
		if n != 0 && size > math.MaxUint64/n {
			return 0, fmt.Errorf("variant %q: cardinality overflow", p.Name)
		}
		//
		size *= n
	}
	//
	return size, nil
}

// Value is the generic representation of one value of a schema-described
// domain: the ordinal of its variant (in declaration order) together with the
// index of each field within that field's own domain.
type Value struct {
	Variant int
	Fields  []uint64
}

// Schema describes a sum-of-products domain at runtime, providing a Codec
// over generic values without any per-type code.  This trades per-call
// dispatch overhead for flexibility; the generator produces equivalent typed
// codecs ahead of time.
//
// Index assignment follows the sum composition rule: all unit alternatives
// take indices [0, K0) in declaration order, where K0 is their count; each
// data-bearing alternative is then assigned a contiguous range sized by the
// product of its field cardinalities, offset by K0 plus the accumulated size
// of the data-bearing alternatives before it.
type Schema struct {
	name     string
	variants []Variant
	// Starting index of each variant, in declaration order.
	offsets []uint64
	// Range size of each variant, in declaration order.
	sizes []uint64
	//
	cardinality uint64
}

// NewSchema validates the given variants and computes the index ranges they
// occupy.  Errors arise from malformed input (no variants, duplicate names)
// or from a total cardinality exceeding the representable range.
func NewSchema(name string, variants ...Variant) (*Schema, error) {
	if len(variants) == 0 {
		return nil, fmt.Errorf("schema %q: no variants", name)
	}
	//
	var (
		offsets = make([]uint64, len(variants))
		sizes   = make([]uint64, len(variants))
		seen    = make(map[string]bool, len(variants))
		units   = uint64(0)
		total   uint64
	)
	//
	for _, v := range variants {
		if seen[v.Name] {
			return nil, fmt.Errorf("schema %q: duplicate variant %q", name, v.Name)
		}
		//
		seen[v.Name] = true
		//
		if v.Unit() {
			units++
		}
	}
	// Unit alternatives occupy [0, units); data-bearing alternatives follow,
	// each offset by the running accumulator.
	var (
		nextUnit = uint64(0)
		nextData = units
	)
	//
	total = units
	//
	for i, v := range variants {
		if v.Unit() {
			offsets[i], sizes[i] = nextUnit, 1
			nextUnit++
			//
			continue
		}
		//
		size, err := v.Size()
		if err != nil {
			return nil, fmt.Errorf("schema %q: %w", name, err)
		}
		//
		if size > math.MaxUint64-total {
			return nil, fmt.Errorf("schema %q: cardinality overflow", name)
		}
		//
		offsets[i], sizes[i] = nextData, size
		nextData += size
		total += size
	}
	//
	return &Schema{name, variants, offsets, sizes, total}, nil
}

// Name returns the name of the domain type this schema describes.
func (p *Schema) Name() string {
	return p.name
}

// Variants returns the variants of this schema, in declaration order.
func (p *Schema) Variants() []Variant {
	return p.variants
}

// Offset returns the starting index of the given variant's range.
func (p *Schema) Offset(variant int) uint64 {
	return p.offsets[variant]
}

// Size returns the number of indices occupied by the given variant.  Unit
// alternatives occupy exactly one; never alternatives occupy none.
func (p *Schema) Size(variant int) uint64 {
	return p.sizes[variant]
}

// Cardinality returns the total number of values of this domain.
func (p *Schema) Cardinality() uint64 {
	return p.cardinality
}

// Encode maps a value to its index.  The field indices of the value are a
// caller precondition: values whose fields exceed their declared
// cardinalities produce indices colliding with other values.
func (p *Schema) Encode(value Value) uint64 {
	variant := p.variants[value.Variant]
	//
	if len(value.Fields) != len(variant.Fields) {
		panic(fmt.Sprintf("variant %q arity mismatch (%d vs %d)",
			variant.Name, len(value.Fields), len(variant.Fields)))
	}
	//
	var (
		index = p.offsets[value.Variant]
		place = uint64(1)
	)
	// Mixed radix sum, first field least significant.
	for i, f := range value.Fields {
		index += f * place
		place *= variant.Fields[i]
	}
	//
	return index
}

// Decode maps an index back to its value, dispatching on the variant range
// the index falls in.  Indices at or above the cardinality are a caller
// precondition.
func (p *Schema) Decode(index uint64) Value {
	for i, v := range p.variants {
		var (
			offset = p.offsets[i]
			size   = p.sizes[i]
		)
		// Never alternatives have empty ranges and can never match.
		if index < offset || index-offset >= size {
			continue
		}
		//
		var (
			fields = make([]uint64, len(v.Fields))
			rest   = index - offset
		)
		//
		for j, radix := range v.Fields {
			fields[j] = rest % radix
			rest /= radix
		}
		//
		return Value{i, fields}
	}
	//
	panic(fmt.Sprintf("index %d outside domain %q", index, p.name))
}
