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
package gen

import (
	"strings"
	"testing"
	"text/template"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Template_Mixed(t *testing.T) {
	source := renderTemplate(t, TypeSpec{
		Name: "Card",
		Variants: []VariantSpec{
			{Name: "Face", Fields: []FieldSpec{
				{Name: "Rank", Cardinality: 13},
				{Name: "Suit", Cardinality: 4},
			}},
			{Name: "Joker"},
		},
	})
	// Interface and variant declarations.
	assert.Contains(t, source, "type Card interface {\n\tisCard()\n}")
	assert.Contains(t, source, "type Face struct {")
	assert.Contains(t, source, "type Joker struct{}")
	assert.Contains(t, source, "func (Face) isCard() {}")
	// Encode bakes in the variant offset and field radices as literals.
	assert.Contains(t, source, "switch v := value.(type) {")
	assert.Contains(t, source, "return 1 + v.Rank*1 + v.Suit*13")
	assert.Contains(t, source, "case Joker:\n\t\treturn 0")
	// Decode dispatches on ranges in ascending offset order: the unit
	// alternative at index 0 precedes the data-bearing one.
	joker := strings.Index(source, "case index < 1:")
	face := strings.Index(source, "case index < 53:")
	//
	assert.Greater(t, joker, -1)
	assert.Greater(t, face, joker)
	//
	assert.Contains(t, source, "Rank: index / 1 % 13,")
	assert.Contains(t, source, "Suit: index / 13 % 4,")
	assert.Contains(t, source, "return 53")
}

func Test_Template_UnitsOnly(t *testing.T) {
	source := renderTemplate(t, TypeSpec{
		Name: "Light",
		Variants: []VariantSpec{
			{Name: "Red"}, {Name: "Amber"}, {Name: "Green"},
		},
	})
	// With no data-bearing variant the type switch must not bind a variable,
	// which would otherwise be declared and unused.
	assert.Contains(t, source, "switch value.(type) {")
	assert.NotContains(t, source, "switch v :=")
	//
	assert.Contains(t, source, "case Amber:\n\t\treturn 1")
	assert.Contains(t, source, "case index < 2:\n\t\treturn Amber{}")
}

// ===================================================================
// Test Helpers
// ===================================================================

// renderTemplate lowers a declaration and runs it through the codec template,
// as the batch generator does (minus the file header and gofmt pass).
func renderTemplate(t *testing.T, spec TypeSpec) string {
	t.Helper()
	//
	config, err := lower(spec)
	require.NoError(t, err)
	//
	tmpl, err := template.ParseFiles("templates/codec.go.tmpl")
	require.NoError(t, err)
	//
	var sb strings.Builder
	require.NoError(t, tmpl.Execute(&sb, config))
	//
	return sb.String()
}
