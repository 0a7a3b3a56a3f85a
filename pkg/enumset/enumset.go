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

// Package enumset provides a set of values drawn from a finite domain type,
// implemented as a bitset indexed by the domain's codec.
package enumset

import (
	"fmt"
	"math"
	"strings"

	"github.com/bits-and-blooms/bitset"
	"github.com/consensys/go-packvec/pkg/domain"
)

// Set holds values of a finite domain type T.  Membership of a value v is the
// bit at position Encode(v) in the underlying bitset, giving O(1) insert,
// remove and lookup with one bit stored per possible value.
type Set[T any] struct {
	codec domain.Codec[T]
	bits  *bitset.BitSet
}

// New constructs an empty set over the given domain.  The domain's
// cardinality bounds the bitset, so it must fit the platform word.
func New[T any](codec domain.Codec[T]) *Set[T] {
	n := codec.Cardinality()
	//
	if n > math.MaxUint {
		panic(fmt.Sprintf("domain cardinality %d exceeds bitset range", n))
	}
	//
	return &Set[T]{codec, bitset.New(uint(n))}
}

// Insert a given value into this set.
func (p *Set[T]) Insert(value T) {
	p.bits.Set(uint(p.codec.Encode(value)))
}

// InsertAll inserts zero or more values into this set.
func (p *Set[T]) InsertAll(values ...T) {
	for _, v := range values {
		p.Insert(v)
	}
}

// Remove a given value from this set.
func (p *Set[T]) Remove(value T) {
	p.bits.Clear(uint(p.codec.Encode(value)))
}

// Contains checks whether a given value is contained, or not.
func (p *Set[T]) Contains(value T) bool {
	return p.bits.Test(uint(p.codec.Encode(value)))
}

// Count returns the number of values in this set.
func (p *Set[T]) Count() uint {
	return p.bits.Count()
}

// IsEmpty checks whether this set holds any values.
func (p *Set[T]) IsEmpty() bool {
	return !p.bits.Any()
}

// Clone creates a true copy of this set which ensures no aliasing between
// this set and the result.
func (p *Set[T]) Clone() *Set[T] {
	return &Set[T]{p.codec, p.bits.Clone()}
}

// Equals checks whether two sets hold exactly the same values.
func (p *Set[T]) Equals(other *Set[T]) bool {
	return p.bits.Equal(other.bits)
}

// Union inserts all values of the other set into this set.
func (p *Set[T]) Union(other *Set[T]) {
	p.bits.InPlaceUnion(other.bits)
}

// Intersect removes all values of this set not present in the other.
func (p *Set[T]) Intersect(other *Set[T]) {
	p.bits.InPlaceIntersection(other.bits)
}

// Difference removes all values of the other set from this set.
func (p *Set[T]) Difference(other *Set[T]) {
	p.bits.InPlaceDifference(other.bits)
}

// SymmetricDifference keeps exactly the values held by one set but not both.
func (p *Set[T]) SymmetricDifference(other *Set[T]) {
	p.bits.InPlaceSymmetricDifference(other.bits)
}

// Values returns the members of this set as decoded values, in encoding
// order.
func (p *Set[T]) Values() []T {
	values := make([]T, 0, p.Count())
	//
	for i, ok := p.bits.NextSet(0); ok; i, ok = p.bits.NextSet(i + 1) {
		values = append(values, p.codec.Decode(uint64(i)))
	}
	//
	return values
}

func (p *Set[T]) String() string {
	var (
		sb    strings.Builder
		first = true
	)
	//
	sb.WriteString("{")
	//
	for _, v := range p.Values() {
		if !first {
			sb.WriteString(", ")
		}
		//
		first = false
		//
		sb.WriteString(fmt.Sprintf("%v", v))
	}
	//
	sb.WriteString("}")
	//
	return sb.String()
}
