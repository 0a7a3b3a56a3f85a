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
package packvec

// Iter returns a bidirectional iterator over this vector, positioned before
// the first element.  The iterator reads through the vector: mutating the
// vector during iteration is a caller error.
func (p *Vector[T, W]) Iter() *Iterator[T, W] {
	return &Iterator[T, W]{p, 0, p.length}
}

// Iterator traverses a vector from either end.  Forward traversal consumes
// from the front cursor and reverse traversal from the back cursor; the
// iterator is exhausted when the two meet.
type Iterator[T any, W Word] struct {
	vec *Vector[T, W]
	// Index of the next element for forward traversal.
	next uint
	// Index just beyond the next element for reverse traversal.
	back uint
}

// HasNext checks whether or not there are any elements remaining to visit.
func (p *Iterator[T, W]) HasNext() bool {
	return p.next < p.back
}

// Next returns the next element from the front, and advances the iterator.
func (p *Iterator[T, W]) Next() T {
	value := p.vec.codec.Decode(p.vec.getRaw(p.next))
	p.next++
	//
	return value
}

// NextBack returns the next element from the back, and advances the iterator
// backwards.
func (p *Iterator[T, W]) NextBack() T {
	p.back--
	//
	return p.vec.codec.Decode(p.vec.getRaw(p.back))
}

// Nth skips ahead n elements and returns the element found there.  This
// mutates the iterator.
func (p *Iterator[T, W]) Nth(n uint) T {
	p.next += n
	//
	return p.Next()
}

// Count returns the number of elements left.  This does not modify the
// iterator.
func (p *Iterator[T, W]) Count() uint {
	return p.back - p.next
}

// Collect allocates a new array containing all remaining elements, in forward
// order.  This drains the iterator.
func (p *Iterator[T, W]) Collect() []T {
	items := make([]T, 0, p.Count())
	//
	for p.HasNext() {
		items = append(items, p.Next())
	}
	//
	return items
}
