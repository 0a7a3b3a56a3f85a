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

import (
	"testing"
)

func Test_Iterator_00(t *testing.T) {
	vec := buildRange[uint32](t, 10, 25)
	//
	i := uint(0)
	//
	for iter := vec.Iter(); iter.HasNext(); i++ {
		if v := iter.Next(); v != uint64(i%10) {
			t.Errorf("element %d holds %d", i, v)
		}
	}
	//
	if i != 25 {
		t.Errorf("iterated %d elements", i)
	}
}

func Test_Iterator_01(t *testing.T) {
	// Reverse traversal.
	vec := buildRange[uint64](t, 5, 10)
	iter := vec.Iter()
	//
	for i := int(vec.Len()) - 1; i >= 0; i-- {
		if v := iter.NextBack(); v != uint64(i%5) {
			t.Errorf("element %d holds %d", i, v)
		}
	}
	//
	if iter.HasNext() {
		t.Errorf("iterator not exhausted")
	}
}

func Test_Iterator_02(t *testing.T) {
	// Both ends consume the same range.
	vec := buildRange[uint16](t, 7, 7)
	iter := vec.Iter()
	//
	if v := iter.Next(); v != 0 {
		t.Errorf("unexpected element %d", v)
	} else if v := iter.NextBack(); v != 6 {
		t.Errorf("unexpected element %d", v)
	} else if iter.Count() != 5 {
		t.Errorf("unexpected count %d", iter.Count())
	}
}

func Test_Iterator_03(t *testing.T) {
	vec := buildRange[uint8](t, 4, 12)
	iter := vec.Iter()
	//
	if v := iter.Nth(5); v != 1 {
		t.Errorf("unexpected element %d", v)
	} else if v := iter.Nth(0); v != 2 {
		t.Errorf("unexpected element %d", v)
	}
}

func Test_Iterator_04(t *testing.T) {
	vec := buildRange[uint64](t, 3, 5)
	items := vec.Iter().Collect()
	//
	if len(items) != 5 {
		t.Errorf("collected %d elements", len(items))
	}
	//
	for i, v := range items {
		if v != uint64(i%3) {
			t.Errorf("element %d holds %d", i, v)
		}
	}
}
