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

// Values returns an enumerator over every value of the given domain, visited
// in encoding order.
func Values[T any](codec Codec[T]) *Enumerator[T] {
	return &Enumerator[T]{codec, 0, codec.Cardinality()}
}

// Enumerator walks the values of a domain from index zero upwards.
type Enumerator[T any] struct {
	codec Codec[T]
	index uint64
	bound uint64
}

// HasNext checks whether or not there are any values remaining to visit.
func (p *Enumerator[T]) HasNext() bool {
	return p.index < p.bound
}

// Next returns the next value, and advances the enumerator.
func (p *Enumerator[T]) Next() T {
	next := p.codec.Decode(p.index)
	p.index++
	//
	return next
}

// Nth skips ahead n values and returns the value found there.  This mutates
// the enumerator.
func (p *Enumerator[T]) Nth(n uint64) T {
	p.index += n
	//
	return p.Next()
}

// Count returns the number of values left.  This does not modify the
// enumerator.
func (p *Enumerator[T]) Count() uint64 {
	return p.bound - p.index
}

// Collect allocates a new array containing all remaining values, draining the
// enumerator.
func (p *Enumerator[T]) Collect() []T {
	items := make([]T, 0, p.Count())
	//
	for p.HasNext() {
		items = append(items, p.Next())
	}
	//
	return items
}
