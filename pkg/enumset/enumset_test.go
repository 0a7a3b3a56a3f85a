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
package enumset

import (
	"testing"

	"github.com/consensys/go-packvec/pkg/domain"
	"github.com/stretchr/testify/assert"
)

var weekdays = domain.Indexed("Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun")

func Test_Set_Insert(t *testing.T) {
	set := New(weekdays)
	//
	assert.True(t, set.IsEmpty())
	//
	set.InsertAll("Mon", "Wed", "Fri")
	set.Insert("Mon")
	//
	assert.Equal(t, uint(3), set.Count())
	assert.True(t, set.Contains("Wed"))
	assert.False(t, set.Contains("Tue"))
	//
	set.Remove("Wed")
	//
	assert.False(t, set.Contains("Wed"))
	assert.Equal(t, uint(2), set.Count())
}

func Test_Set_Values(t *testing.T) {
	set := New(weekdays)
	set.InsertAll("Sun", "Tue", "Mon")
	// Members come back in encoding order, not insertion order.
	assert.Equal(t, []string{"Mon", "Tue", "Sun"}, set.Values())
	assert.Equal(t, "{Mon, Tue, Sun}", set.String())
}

func Test_Set_Algebra(t *testing.T) {
	lhs := New(weekdays)
	lhs.InsertAll("Mon", "Tue", "Wed")
	//
	rhs := New(weekdays)
	rhs.InsertAll("Tue", "Wed", "Thu")
	//
	union := lhs.Clone()
	union.Union(rhs)
	assert.Equal(t, []string{"Mon", "Tue", "Wed", "Thu"}, union.Values())
	//
	meet := lhs.Clone()
	meet.Intersect(rhs)
	assert.Equal(t, []string{"Tue", "Wed"}, meet.Values())
	//
	diff := lhs.Clone()
	diff.Difference(rhs)
	assert.Equal(t, []string{"Mon"}, diff.Values())
	//
	sym := lhs.Clone()
	sym.SymmetricDifference(rhs)
	assert.Equal(t, []string{"Mon", "Thu"}, sym.Values())
}

func Test_Set_Clone(t *testing.T) {
	set := New(weekdays)
	set.Insert("Fri")
	//
	clone := set.Clone()
	assert.True(t, set.Equals(clone))
	//
	clone.Insert("Sat")
	assert.False(t, set.Equals(clone))
	assert.False(t, set.Contains("Sat"))
}

func Test_Set_Composite(t *testing.T) {
	// Sets work over composite domains too.
	codec := domain.OptionOf(domain.Bool())
	set := New(codec)
	//
	set.Insert(domain.None[bool]())
	set.Insert(domain.Some(true))
	//
	assert.True(t, set.Contains(domain.None[bool]()))
	assert.False(t, set.Contains(domain.Some(false)))
	assert.Equal(t, uint(2), set.Count())
}
