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

import "math/bits"

// Word is implemented by the unsigned integer types which can serve as the
// fixed-width storage word of a vector.  Narrower words waste fewer bits per
// word for small domains; wider words amortise reallocation over more
// elements.
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// wordBits returns the width, in bits, of the storage word W.
func wordBits[W Word]() uint {
	return uint(bits.OnesCount64(uint64(^W(0))))
}
