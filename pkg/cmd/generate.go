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
package cmd

import (
	"fmt"
	"os"

	"github.com/consensys/go-packvec/pkg/gen"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate [flags] spec_file(s)",
	Short: "generate Go codecs for the given domain specifications.",
	Long:  `Generate, for each named type in the given specification files, a Go type declaration along with a codec mapping its values onto a contiguous range of indices.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		outdir := GetString(cmd, "output")
		pkgname := GetString(cmd, "package")
		tmpldir := GetString(cmd, "templates")
		// Collect type specifications across all files
		var specs []gen.TypeSpec
		//
		for _, filename := range args {
			file := readSpecFile(filename)
			specs = append(specs, file.Types...)
		}
		// Generate appropriate Go source
		if err := gen.Generate(pkgname, outdir, tmpldir, specs...); err != nil {
			fmt.Println(err.Error())
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringP("output", "o", ".", "specify output directory.")
	generateCmd.Flags().StringP("package", "p", "main", "specify Go package.")
	generateCmd.Flags().StringP("templates", "t", "pkg/gen/templates", "specify template directory.")
}
