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

// Pair is the product of two domain types.
type Pair[A any, B any] struct {
	First  A
	Second B
}

// PairOf composes the codecs of two domain types into the codec of their
// product.  Encoding is mixed radix with the first field as the least
// significant digit: enc(a) + enc(b) * card(A).  Decoding inverts this with
// division and modulo against the same radix, walking fields in the identical
// order.
func PairOf[A any, B any](first Codec[A], second Codec[B]) Codec[Pair[A, B]] {
	total := mulCardinality(first.Cardinality(), second.Cardinality())
	//
	return &pairCodec[A, B]{first, second, total}
}

// TupleOf composes the codec of a single domain type into the codec of the
// n-ary homogeneous product, represented as a slice of exactly n values.  As
// with PairOf, the element at position zero is the least significant digit.
func TupleOf[T any](element Codec[T], n uint) Codec[[]T] {
	total := uint64(1)
	//
	for i := uint(0); i < n; i++ {
		total = mulCardinality(total, element.Cardinality())
	}
	//
	return &tupleCodec[T]{element, n, total}
}

// ============================================================================
// Implementations
// ============================================================================

type pairCodec[A any, B any] struct {
	first       Codec[A]
	second      Codec[B]
	cardinality uint64
}

func (p *pairCodec[A, B]) Cardinality() uint64 {
	return p.cardinality
}

func (p *pairCodec[A, B]) Encode(value Pair[A, B]) uint64 {
	var (
		radix = p.first.Cardinality()
		lhs   = p.first.Encode(value.First)
		rhs   = p.second.Encode(value.Second)
	)
	//
	return lhs + rhs*radix
}

func (p *pairCodec[A, B]) Decode(index uint64) Pair[A, B] {
	radix := p.first.Cardinality()
	//
	return Pair[A, B]{
		First:  p.first.Decode(index % radix),
		Second: p.second.Decode(index / radix),
	}
}

type tupleCodec[T any] struct {
	element     Codec[T]
	arity       uint
	cardinality uint64
}

func (p *tupleCodec[T]) Cardinality() uint64 {
	return p.cardinality
}

func (p *tupleCodec[T]) Encode(values []T) uint64 {
	if uint(len(values)) != p.arity {
		panic(fmt.Sprintf("tuple arity mismatch (%d vs %d)", len(values), p.arity))
	}
	//
	var (
		radix = p.element.Cardinality()
		place = uint64(1)
		index = uint64(0)
	)
	//
	for _, v := range values {
		index += p.element.Encode(v) * place
		place *= radix
	}
	//
	return index
}

func (p *tupleCodec[T]) Decode(index uint64) []T {
	var (
		radix  = p.element.Cardinality()
		values = make([]T, p.arity)
	)
	//
	for i := range values {
		values[i] = p.element.Decode(index % radix)
		index /= radix
	}
	//
	return values
}
