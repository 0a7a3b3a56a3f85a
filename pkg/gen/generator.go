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

// Package gen mechanically produces per-type codec implementations from
// declarative type descriptions.  For each declared sum-of-products type it
// emits a Go source file containing the variant types and a codec whose
// encode/decode arithmetic has every offset and radix precomputed.
package gen

import (
	"path/filepath"
	"strings"

	"github.com/consensys/bavard"
	log "github.com/sirupsen/logrus"
)

const copyrightHolder = "Consensys Software Inc."

// Generate emits one Go source file per declared type into the given output
// directory, as part of the given package.  Templates are loaded from
// tmplDir, which normally points at the templates directory shipped alongside
// this package.
func Generate(pkg string, outDir string, tmplDir string, specs ...TypeSpec) error {
	bgen := bavard.NewBatchGenerator(copyrightHolder, 2025, "go-packvec")
	//
	for _, spec := range specs {
		config, err := lower(spec)
		if err != nil {
			return err
		}
		//
		log.Debugf("generating codec for %s (cardinality %d, %d variants)",
			spec.Name, config.Cardinality, len(spec.Variants))
		//
		entry := bavard.Entry{
			File:      filepath.Join(outDir, strings.ToLower(spec.Name)+"_codec.go"),
			Templates: []string{"codec.go.tmpl"},
		}
		//
		if err := bgen.Generate(config, pkg, tmplDir, entry); err != nil {
			return err
		}
	}
	//
	return nil
}
