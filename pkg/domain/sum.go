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

// Option is the sum of a unit alternative (None) and a single data-bearing
// alternative (Some) wrapping a domain type.
type Option[T any] struct {
	value T
	some  bool
}

// Some constructs an option holding the given value.
func Some[T any](value T) Option[T] {
	return Option[T]{value, true}
}

// None constructs the empty option.
func None[T any]() Option[T] {
	var empty T
	return Option[T]{empty, false}
}

// IsSome reports whether this option holds a value.
func (p Option[T]) IsSome() bool {
	return p.some
}

// Unwrap returns the held value (if any).
func (p Option[T]) Unwrap() (T, bool) {
	return p.value, p.some
}

// Either is the sum of two data-bearing alternatives.
type Either[L any, R any] struct {
	left    L
	right   R
	isRight bool
}

// Left constructs an either holding a value of the first alternative.
func Left[L any, R any](value L) Either[L, R] {
	var either Either[L, R]
	//
	either.left = value
	//
	return either
}

// Right constructs an either holding a value of the second alternative.
func Right[L any, R any](value R) Either[L, R] {
	var either Either[L, R]
	//
	either.right = value
	either.isRight = true
	//
	return either
}

// Left returns the first alternative's value (if held).
func (p Either[L, R]) Left() (L, bool) {
	return p.left, !p.isRight
}

// Right returns the second alternative's value (if held).
func (p Either[L, R]) Right() (R, bool) {
	return p.right, p.isRight
}

// OptionOf composes the codec of a domain type into the codec of its option.
// Following the sum composition rule, the unit alternative None takes index 0
// and the data-bearing alternative Some occupies the contiguous range which
// follows.  Hence None encodes as 0 and Some(v) as 1 + enc(v).
func OptionOf[T any](element Codec[T]) Codec[Option[T]] {
	total := sumCardinality(1, element.Cardinality())
	//
	return &optionCodec[T]{element, total}
}

// EitherOf composes the codecs of two domain types into the codec of their
// sum.  Both alternatives are data-bearing, so the first occupies [0, card(L))
// and the second the range which follows, per the running accumulator rule.
func EitherOf[L any, R any](left Codec[L], right Codec[R]) Codec[Either[L, R]] {
	total := sumCardinality(left.Cardinality(), right.Cardinality())
	//
	return &eitherCodec[L, R]{left, right, total}
}

// ============================================================================
// Implementations
// ============================================================================

type optionCodec[T any] struct {
	element     Codec[T]
	cardinality uint64
}

func (p *optionCodec[T]) Cardinality() uint64 {
	return p.cardinality
}

func (p *optionCodec[T]) Encode(value Option[T]) uint64 {
	if inner, ok := value.Unwrap(); ok {
		return 1 + p.element.Encode(inner)
	}
	//
	return 0
}

func (p *optionCodec[T]) Decode(index uint64) Option[T] {
	if index == 0 {
		return None[T]()
	}
	//
	return Some(p.element.Decode(index - 1))
}

type eitherCodec[L any, R any] struct {
	left        Codec[L]
	right       Codec[R]
	cardinality uint64
}

func (p *eitherCodec[L, R]) Cardinality() uint64 {
	return p.cardinality
}

func (p *eitherCodec[L, R]) Encode(value Either[L, R]) uint64 {
	if rhs, ok := value.Right(); ok {
		return p.left.Cardinality() + p.right.Encode(rhs)
	}
	//
	lhs, _ := value.Left()
	//
	return p.left.Encode(lhs)
}

func (p *eitherCodec[L, R]) Decode(index uint64) Either[L, R] {
	pivot := p.left.Cardinality()
	//
	if index < pivot {
		return Left[L, R](p.left.Decode(index))
	}
	//
	return Right[L](p.right.Decode(index - pivot))
}
