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
	"math/bits"
)

// Codec defines a bijection between the values of some finite domain type T
// and a dense range of indices [0, Cardinality()).  Every implementation must
// satisfy the round-trip laws: Decode(Encode(v)) == v for all values v of T,
// and Encode(Decode(i)) == i for all i below the cardinality.
type Codec[T any] interface {
	// Cardinality returns the number of distinct values of T.
	Cardinality() uint64
	// Encode maps a value to its index in [0, Cardinality()).
	Encode(T) uint64
	// Decode maps an index in [0, Cardinality()) back to its value.
	// Behaviour for indices at or above the cardinality is unspecified, just
	// as for unchecked array accesses.
	Decode(uint64) T
}

// BitWidth returns the number of bits required to store one encoded value of
// the given codec, that is ceil(log2(Cardinality())).
func BitWidth[T any](codec Codec[T]) uint {
	n := codec.Cardinality()
	//
	if n < 2 {
		return 0
	}
	//
	return uint(bits.Len64(n - 1))
}

// sumCardinality adds two alternative cardinalities together, failing loudly
// on overflow since a domain whose cardinality cannot be represented cannot
// be encoded either.
func sumCardinality(lhs uint64, rhs uint64) uint64 {
	if lhs > math.MaxUint64-rhs {
		panic(fmt.Sprintf("domain cardinality overflow (%d + %d)", lhs, rhs))
	}
	//
	return lhs + rhs
}

// mulCardinality multiplies two field cardinalities together, failing loudly
// on overflow.
func mulCardinality(lhs uint64, rhs uint64) uint64 {
	if lhs != 0 && rhs > math.MaxUint64/lhs {
		panic(fmt.Sprintf("domain cardinality overflow (%d * %d)", lhs, rhs))
	}
	//
	return lhs * rhs
}
