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
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tptp-lang/tptp/pkg/tptp/ast"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file",
	Short: "parse a TPTP file and report a summary of what it contains.",
	Long:  `Parse a TPTP problem file and report its formula count, the roles seen, and any non-classical or TFX/TH1 features encountered.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		filename := args[0]

		log.WithField("file", filename).WithField("dialect", resolvedDialect(cmd)).Debug("parsing")

		problem, text, err := parseFile(filename)
		if err != nil {
			printSyntaxError(cmd, filename, err, text)
			os.Exit(1)
		}

		summarizeProblem(problem)
	},
}

// summarizeProblem prints the formula/include count, the distinct roles
// seen (sorted), and any non-classical/TFX/TH1 markers detected in the
// problem's rendered text.
func summarizeProblem(problem *ast.Problem) {
	fmt.Printf("includes:  %d\n", len(problem.Includes))
	fmt.Printf("formulas:  %d\n", len(problem.Formulas))

	roles := map[string]int{}
	for _, f := range problem.Formulas {
		roles[f.RoleValue().Name]++
	}

	names := make([]string, 0, len(roles))
	for name := range roles {
		names = append(names, name)
	}

	sort.Strings(names)

	fmt.Println("roles:")

	for _, name := range names {
		fmt.Printf("  %-16s %d\n", name, roles[name])
	}

	if features := nonclassicalFeatures(problem); len(features) > 0 {
		fmt.Println("features:")

		for _, feat := range features {
			fmt.Printf("  %s\n", feat)
		}
	}
}

// nonclassicalFeatures scans each formula's rendered text for the surface
// markers of TFX and non-classical (NXF/NHF) syntax, since those are the
// features layered on top of plain FOF/TFF/THF that a "parse" summary is
// meant to flag. This is a textual heuristic rather than an AST walk: it
// looks for tokens that can only arise from the extended grammar productions.
func nonclassicalFeatures(problem *ast.Problem) []string {
	seen := map[string]bool{}

	var sb strings.Builder

	for _, f := range problem.Formulas {
		sb.Reset()
		f.Pretty(&sb)
		text := sb.String()

		markers := []struct {
			token, feature string
		}{
			{"$box", "non-classical box operator"},
			{"[.]", "non-classical box operator"},
			{"$dia", "non-classical diamond operator"},
			{"<.>", "non-classical diamond operator"},
			{"$cube", "non-classical cube operator"},
			{"/.\\", "non-classical cube operator"},
			{"$ite(", "TFX conditional term"},
			{"$let(", "TFX let term"},
			{"-->", "TFX sequent"},
			{" := ", "TFX let-binding assignment"},
			{" == ", "TFX meta-identity"},
			{"!!", "THF !! binder"},
			{"??", "THF ?? binder"},
		}

		for _, m := range markers {
			if strings.Contains(text, m.token) {
				seen[m.feature] = true
			}
		}
	}

	features := make([]string, 0, len(seen))
	for f := range seen {
		features = append(features, f)
	}

	sort.Strings(features)

	return features
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
