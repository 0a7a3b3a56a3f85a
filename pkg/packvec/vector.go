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

// Package packvec provides a resizable sequence type which stores values of
// finite domain types at close to the information-theoretic minimum bits per
// element.  Elements are encoded through a domain.Codec into dense indices
// and packed, several to a storage word, into a growable word array.
package packvec

import (
	"fmt"
	"math"
	"math/bits"
	"slices"
	"strings"

	"github.com/consensys/go-packvec/pkg/domain"
)

// Vector is a sequence of values of some finite domain type T, packed at
// ceil(log2(N)) bits per element into storage words of type W.  A Vector is a
// single-owner value type: it provides no internal synchronisation, and deep
// copies are made with Clone.
//
// The underlying storage only ever grows (except via ShrinkToFit), and bits
// at slots beyond the logical length are unspecified.  None of the checked
// operations ever observe them.
type Vector[T any, W Word] struct {
	codec domain.Codec[T]
	words []W
	// Number of valid elements.  Always satisfies
	// len(words) * elemsPerWord >= length.
	length uint
	// Derived from the codec at construction.
	bitsPerElem  uint
	elemsPerWord uint
	elemMask     W
}

// New constructs an empty vector over the given domain.  Construction panics
// if the domain has fewer than two values (one-value domains would pack at
// zero bits, breaking slot arithmetic) or more values than a single storage
// word can hold.
func New[T any, W Word](codec domain.Codec[T]) *Vector[T, W] {
	return WithCapacity[T, W](codec, 0)
}

// WithCapacity constructs an empty vector with room for at least n elements.
func WithCapacity[T any, W Word](codec domain.Codec[T], n uint) *Vector[T, W] {
	var (
		width       = wordBits[W]()
		cardinality = codec.Cardinality()
	)
	//
	if cardinality < 2 {
		panic(fmt.Sprintf("domain cardinality %d below minimum 2", cardinality))
	}
	//
	bitsPerElem := uint(bits.Len64(cardinality - 1))
	//
	if bitsPerElem > width {
		panic(fmt.Sprintf("domain cardinality %d exceeds %d-bit storage words", cardinality, width))
	}
	//
	var (
		elemsPerWord = width / bitsPerElem
		mask         = ^W(0)
	)
	//
	if bitsPerElem < width {
		mask = W(1)<<bitsPerElem - 1
	}
	//
	p := &Vector[T, W]{codec, nil, 0, bitsPerElem, elemsPerWord, mask}
	p.words = make([]W, 0, p.wordsFor(n))
	//
	return p
}

// FromSlice constructs a vector holding the elements of the given slice.
func FromSlice[T any, W Word](codec domain.Codec[T], values []T) *Vector[T, W] {
	p := WithCapacity[T, W](codec, uint(len(values)))
	//
	for _, v := range values {
		p.Push(v)
	}
	//
	return p
}

// FromElem constructs a vector holding n copies of the given value.  The
// value is encoded once and its code replicated word at a time, rather than
// encoded n times.
func FromElem[T any, W Word](codec domain.Codec[T], value T, n uint) *Vector[T, W] {
	p := New[T, W](codec)
	p.extendWithValue(value, n)
	//
	return p
}

// ============================================================================
// Queries
// ============================================================================

// Len returns the number of elements in this vector.
func (p *Vector[T, W]) Len() uint {
	return p.length
}

// IsEmpty checks whether this vector holds any elements.
func (p *Vector[T, W]) IsEmpty() bool {
	return p.length == 0
}

// Cap returns the number of elements this vector can hold without allocating
// further storage.
func (p *Vector[T, W]) Cap() uint {
	words := uint(cap(p.words))
	// Saturating multiply.
	if words != 0 && p.elemsPerWord > math.MaxUint/words {
		return math.MaxUint
	}
	//
	return words * p.elemsPerWord
}

// BitWidth returns the number of bits occupied by each element.
func (p *Vector[T, W]) BitWidth() uint {
	return p.bitsPerElem
}

// Get returns the element at the given index, or false if the index lies at
// or beyond the length.
func (p *Vector[T, W]) Get(index uint) (T, bool) {
	if index >= p.length {
		var empty T
		return empty, false
	}
	//
	return p.codec.Decode(p.getRaw(index)), true
}

// Equals checks whether two vectors hold identical sequences of elements.
func (p *Vector[T, W]) Equals(other *Vector[T, W]) bool {
	if p.length != other.length {
		return false
	}
	//
	for i := uint(0); i < p.length; i++ {
		if p.getRaw(i) != other.getRaw(i) {
			return false
		}
	}
	//
	return true
}

// ToSlice copies this vector into an unpacked slice.
func (p *Vector[T, W]) ToSlice() []T {
	values := make([]T, p.length)
	//
	for i := range values {
		values[i] = p.codec.Decode(p.getRaw(uint(i)))
	}
	//
	return values
}

// Clone makes a deep copy of this vector, producing an otherwise identical
// vector sharing no storage with the original.
func (p *Vector[T, W]) Clone() *Vector[T, W] {
	clone := *p
	clone.words = slices.Clone(p.words[:p.wordsFor(p.length)])
	//
	return &clone
}

func (p *Vector[T, W]) String() string {
	var sb strings.Builder
	//
	sb.WriteString("[")
	//
	for i := uint(0); i < p.length; i++ {
		if i != 0 {
			sb.WriteString(",")
		}
		//
		sb.WriteString(fmt.Sprintf("%v", p.codec.Decode(p.getRaw(i))))
	}
	//
	sb.WriteString("]")
	//
	return sb.String()
}

// ============================================================================
// Mutators
// ============================================================================

// Set encodes and overwrites the element at the given index.  Set never
// extends the vector; indices at or beyond the length panic.
func (p *Vector[T, W]) Set(index uint, value T) {
	p.boundsCheck(index)
	p.setRaw(index, p.codec.Encode(value))
}

// Push appends an element, growing the storage by exactly one word when the
// length is a multiple of the elements per word and no spare word exists.
// Amortised O(1).
func (p *Vector[T, W]) Push(value T) {
	p.pushRaw(p.codec.Encode(value))
}

// Pop removes and returns the last element, or false if the vector is empty.
func (p *Vector[T, W]) Pop() (T, bool) {
	if p.length == 0 {
		var empty T
		return empty, false
	}
	//
	value := p.codec.Decode(p.getRaw(p.length - 1))
	p.length--
	//
	return value, true
}

// Insert places an element at the given index, shifting every slot at or
// beyond it one position towards the back.  Slots are not word aligned, so
// this is a bit-level shift: within the word containing the index, bits move
// up by the element width; the most significant slot of each subsequent word
// carries into the least significant slot of the next, cascading to the final
// occupied word.  O(n - index), making mid-sequence insertion expensive at
// scale.
func (p *Vector[T, W]) Insert(index uint, value T) {
	if index > p.length {
		panic(fmt.Sprintf("index out of bounds (%d > %d)", index, p.length))
	}
	//
	for uint(len(p.words)) < p.wordsFor(p.length+1) {
		p.words = append(p.words, 0)
	}
	//
	var (
		code        = W(p.codec.Encode(value))
		word, shift = p.slot(index)
		last        = p.wordsFor(p.length+1) - 1
		topShift    = (p.elemsPerWord - 1) * p.bitsPerElem
		below       = W(1)<<shift - 1
	)
	// Split the insertion word: slots below the index stay, slots at or above
	// it move up one, and the evicted top slot carries into the next word.
	carry := (p.words[word] >> topShift) & p.elemMask
	p.words[word] = (p.words[word] & below) | (code << shift) | ((p.words[word] &^ below) << p.bitsPerElem)
	//
	for w := word + 1; w <= last; w++ {
		next := (p.words[w] >> topShift) & p.elemMask
		p.words[w] = (p.words[w] << p.bitsPerElem) | carry
		carry = next
	}
	//
	p.length++
}

// Remove deletes and returns the element at the given index, shifting every
// slot beyond it one position towards the front.  The mirror of Insert: the
// least significant slot of each following word carries into the most
// significant slot of the word before it.  O(n - index).
func (p *Vector[T, W]) Remove(index uint) T {
	p.boundsCheck(index)
	//
	var (
		value       = p.codec.Decode(p.getRaw(index))
		word, shift = p.slot(index)
		last        = p.wordsFor(p.length) - 1
		topShift    = (p.elemsPerWord - 1) * p.bitsPerElem
		below       = W(1)<<shift - 1
	)
	// Slots above the index move down one within the removal word; its top
	// slot is refilled from the following word (if any).
	p.words[word] = (p.words[word] & below) | ((p.words[word] >> p.bitsPerElem) &^ below)
	//
	for w := word + 1; w <= last; w++ {
		carry := p.words[w] & p.elemMask
		p.words[w-1] &= ^(p.elemMask << topShift)
		p.words[w-1] |= carry << topShift
		p.words[w] >>= p.bitsPerElem
	}
	//
	p.length--
	//
	return value
}

// SwapRemove deletes and returns the element at the given index in O(1) by
// swapping it with the last element and popping.  Does not preserve order.
func (p *Vector[T, W]) SwapRemove(index uint) T {
	p.boundsCheck(index)
	//
	value := p.codec.Decode(p.getRaw(index))
	p.setRaw(index, p.getRaw(p.length-1))
	p.length--
	//
	return value
}

// Swap exchanges the elements at the two given indices.
func (p *Vector[T, W]) Swap(lhs uint, rhs uint) {
	p.boundsCheck(lhs)
	p.boundsCheck(rhs)
	//
	l, r := p.getRaw(lhs), p.getRaw(rhs)
	p.setRaw(lhs, r)
	p.setRaw(rhs, l)
}

// Retain keeps only the elements matching the given predicate, preserving
// their relative order.  Single left-to-right compaction pass, O(n).
func (p *Vector[T, W]) Retain(predicate func(T) bool) {
	kept := uint(0)
	//
	for i := uint(0); i < p.length; i++ {
		code := p.getRaw(i)
		//
		if predicate(p.codec.Decode(code)) {
			p.setRaw(kept, code)
			kept++
		}
	}
	//
	p.length = kept
}

// Append moves all elements of the other vector onto the end of this one,
// leaving the other empty.  When this vector's length is word aligned the
// storage words are concatenated directly; otherwise elements are copied one
// by one.  Either way O(other.Len()).  Both vectors must use the same domain.
func (p *Vector[T, W]) Append(other *Vector[T, W]) {
	if p.codec.Cardinality() != other.codec.Cardinality() {
		panic("appending vectors over different domains")
	}
	//
	n := other.length
	//
	if p.length%p.elemsPerWord == 0 {
		// Aligned: both storages must first be trimmed to their logical
		// lengths, since storage length only ever grows.
		p.compact()
		other.compact()
		//
		p.words = append(p.words, other.words...)
		p.length += n
	} else {
		base := p.length
		p.length += n
		p.ensureWords()
		//
		for i := uint(0); i < n; i++ {
			p.setRaw(base+i, other.getRaw(i))
		}
	}
	//
	other.length = 0
	other.words = other.words[:0]
}

// Truncate shrinks the logical length to n (when shorter), leaving the
// underlying storage untouched.
func (p *Vector[T, W]) Truncate(n uint) {
	if n < p.length {
		p.length = n
	}
}

// Clear removes all elements.  As with Truncate, storage is retained.
func (p *Vector[T, W]) Clear() {
	p.Truncate(0)
}

// SplitOff returns a new vector holding the elements from the given index to
// the end, shrinking this vector to the elements before it.
func (p *Vector[T, W]) SplitOff(at uint) *Vector[T, W] {
	if at > p.length {
		panic(fmt.Sprintf("index out of bounds (%d > %d)", at, p.length))
	}
	//
	other := WithCapacity[T, W](p.codec, p.length-at)
	other.length = p.length - at
	other.ensureWords()
	//
	for i := uint(0); i < other.length; i++ {
		other.setRaw(i, p.getRaw(at+i))
	}
	//
	p.length = at
	//
	return other
}

// Resize grows the vector to the given length by appending copies of the
// given value, or shrinks it via Truncate.
func (p *Vector[T, W]) Resize(n uint, value T) {
	if n > p.length {
		p.extendWithValue(value, n-p.length)
	} else {
		p.Truncate(n)
	}
}

// ForEach applies the given function to every element in place.  This stands
// in for mutable iteration, which a packed representation cannot offer.
func (p *Vector[T, W]) ForEach(fn func(T) T) {
	for i := uint(0); i < p.length; i++ {
		p.setRaw(i, p.codec.Encode(fn(p.codec.Decode(p.getRaw(i)))))
	}
}

// ============================================================================
// Capacity management
// ============================================================================

// Reserve ensures capacity for at least n additional elements.
func (p *Vector[T, W]) Reserve(n uint) {
	needed := p.wordsFor(p.length + n)
	//
	if needed > uint(cap(p.words)) {
		p.words = slices.Grow(p.words, int(needed)-len(p.words))
	}
}

// ShrinkToFit reduces the underlying storage to the minimum required for the
// current length.
func (p *Vector[T, W]) ShrinkToFit() {
	p.compact()
	p.words = slices.Clip(p.words)
}

// ============================================================================
// Helpers
// ============================================================================

// slot locates the storage word holding the given element index, along with
// the bit offset of its slot within that word.
func (p *Vector[T, W]) slot(index uint) (uint, uint) {
	return index / p.elemsPerWord, (index % p.elemsPerWord) * p.bitsPerElem
}

// wordsFor returns the number of storage words required to hold n elements.
func (p *Vector[T, W]) wordsFor(n uint) uint {
	return (n + p.elemsPerWord - 1) / p.elemsPerWord
}

// getRaw reads the encoded element at the given index without bounds
// checking.
func (p *Vector[T, W]) getRaw(index uint) uint64 {
	word, shift := p.slot(index)
	//
	return uint64((p.words[word] >> shift) & p.elemMask)
}

// setRaw overwrites the encoded element at the given index without bounds
// checking.  A code wider than the element width would silently corrupt a
// neighbouring slot, hence all callers pass codes obtained from the codec.
func (p *Vector[T, W]) setRaw(index uint, code uint64) {
	word, shift := p.slot(index)
	//
	p.words[word] &= ^(p.elemMask << shift)
	p.words[word] |= W(code) << shift
}

// pushRaw appends an already-encoded element.
func (p *Vector[T, W]) pushRaw(code uint64) {
	p.growIfNeeded()
	p.length++
	p.setRaw(p.length-1, code)
}

// growIfNeeded appends one zeroed storage word when the next push would fall
// outside the occupied storage.
func (p *Vector[T, W]) growIfNeeded() {
	if p.length%p.elemsPerWord == 0 && p.wordsFor(p.length) == uint(len(p.words)) {
		p.words = append(p.words, 0)
	}
}

// ensureWords extends the storage (with zeroed words) to cover the logical
// length.
func (p *Vector[T, W]) ensureWords() {
	needed := p.wordsFor(p.length)
	//
	if n := uint(len(p.words)); n < needed {
		p.words = append(p.words, make([]W, needed-n)...)
	}
}

// compact trims the storage to exactly the words required by the logical
// length.  Storage length otherwise only ever grows, so this must run before
// any operation which assumes the two match.
func (p *Vector[T, W]) compact() {
	p.words = p.words[:p.wordsFor(p.length)]
}

func (p *Vector[T, W]) boundsCheck(index uint) {
	if index >= p.length {
		panic(fmt.Sprintf("index out of bounds (%d >= %d)", index, p.length))
	}
}

// extendWithValue appends count copies of the given value.  For anything
// beyond a few words' worth, the encoded value is replicated across a full
// storage word by repeated shift-or doubling and the interior filled a word
// at a time; only the unaligned head and tail are filled slot by slot.  The
// codec's Encode is invoked exactly once either way.
func (p *Vector[T, W]) extendWithValue(value T, count uint) {
	code := p.codec.Encode(value)
	//
	if count <= 4*p.elemsPerWord {
		// Too short for the whole-word path to pay off.
		p.Reserve(count)
		//
		for i := uint(0); i < count; i++ {
			p.pushRaw(code)
		}
		//
		return
	}
	// Fill the trailing partial word, aligning the length.
	head := uint(0)
	//
	if r := p.length % p.elemsPerWord; r != 0 {
		head = p.elemsPerWord - r
	}
	//
	for i := uint(0); i < head; i++ {
		p.pushRaw(code)
	}
	//
	var (
		remaining = count - head
		interior  = remaining / p.elemsPerWord
		tail      = remaining % p.elemsPerWord
		used      = p.elemsPerWord * p.bitsPerElem
		packed    = W(code)
	)
	// Replicate the code into every slot of one word.
	for shift := p.bitsPerElem; shift < used; shift <<= 1 {
		packed |= packed << shift
	}
	// Bulk-fill the interior words.
	p.compact()
	p.words = slices.Grow(p.words, int(interior))
	//
	for i := uint(0); i < interior; i++ {
		p.words = append(p.words, packed)
	}
	//
	p.length += interior * p.elemsPerWord
	// Unaligned tail.
	for i := uint(0); i < tail; i++ {
		p.pushRaw(code)
	}
}
