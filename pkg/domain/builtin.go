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

import "fmt"

// Bool returns the codec for booleans, with false encoded as 0 and true as 1.
func Bool() Codec[bool] {
	return boolCodec{}
}

// Unit returns the codec for a domain holding exactly one value.  Such a
// domain cannot be stored directly in a packed vector, but it contributes a
// factor of one when composed inside a product.
func Unit[T any](value T) Codec[T] {
	return &unitCodec[T]{value}
}

// Range returns the codec for unsigned integers in [0, n).  The integers
// encode as themselves.
func Range(n uint64) Codec[uint64] {
	if n == 0 {
		panic("range domain must be non-empty")
	}
	//
	return rangeCodec(n)
}

// Indexed returns a codec enumerating exactly the given values, each encoded
// by its position in the argument list.  Duplicate values are rejected since
// they would break the bijection.
func Indexed[T comparable](values ...T) Codec[T] {
	var (
		table   = make([]T, len(values))
		indices = make(map[T]uint64, len(values))
	)
	//
	for i, v := range values {
		if _, ok := indices[v]; ok {
			panic(fmt.Sprintf("duplicate domain value %v", v))
		}
		//
		table[i] = v
		indices[v] = uint64(i)
	}
	//
	return &indexedCodec[T]{table, indices}
}

// ============================================================================
// Implementations
// ============================================================================

type boolCodec struct{}

func (p boolCodec) Cardinality() uint64 {
	return 2
}

func (p boolCodec) Encode(value bool) uint64 {
	if value {
		return 1
	}
	//
	return 0
}

func (p boolCodec) Decode(index uint64) bool {
	return index != 0
}

type unitCodec[T any] struct {
	value T
}

func (p *unitCodec[T]) Cardinality() uint64 {
	return 1
}

func (p *unitCodec[T]) Encode(T) uint64 {
	return 0
}

func (p *unitCodec[T]) Decode(uint64) T {
	return p.value
}

type rangeCodec uint64

func (p rangeCodec) Cardinality() uint64 {
	return uint64(p)
}

func (p rangeCodec) Encode(value uint64) uint64 {
	return value
}

func (p rangeCodec) Decode(index uint64) uint64 {
	return index
}

type indexedCodec[T comparable] struct {
	table   []T
	indices map[T]uint64
}

func (p *indexedCodec[T]) Cardinality() uint64 {
	return uint64(len(p.table))
}

func (p *indexedCodec[T]) Encode(value T) uint64 {
	index, ok := p.indices[value]
	//
	if !ok {
		panic(fmt.Sprintf("value %v outside domain", value))
	}
	//
	return index
}

func (p *indexedCodec[T]) Decode(index uint64) T {
	return p.table[index]
}
