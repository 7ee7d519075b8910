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
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tptp-lang/tptp/pkg/tptp/ast"
	"github.com/tptp-lang/tptp/pkg/tptp/parser"
	"github.com/tptp-lang/tptp/pkg/tptp/source"
)

// GetFlag returns a boolean flag's value, or exits the process if the flag
// isn't registered.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString returns a string flag's value, or exits the process if the flag
// isn't registered.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// resolvedDialect resolves the CLI-reported default dialect: --dialect
// overrides the config file's Dialect. TPTP's own ".p"/".ax" extensions
// never disambiguate dialect, so ParseProblem always dispatches on each
// formula's own leading keyword rather than on a file-level default; this
// value is only reported in the "parse" command's debug log and has no
// effect on parsing.
func resolvedDialect(cmd *cobra.Command) string {
	if d := GetString(cmd, "dialect"); d != "" {
		return d
	}

	return cfg.Dialect
}

// parseFile reads filename and parses it as a full TPTP problem (includes
// plus annotated formulas). ParseProblem itself dispatches each annotated
// formula entry to the dialect its own leading keyword names ("fof", "cnf",
// ...); resolvedDialect is never consulted here, only by "parse"'s debug log.
func parseFile(filename string) (*ast.Problem, []byte, *source.SyntaxError) {
	bytes, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	problem, syntaxErr := parser.ParseProblem(bytes)

	return problem, bytes, syntaxErr
}

// printSyntaxError renders a syntax error with a source line and a caret
// underline beneath the offending column, colored when the output is a
// terminal and --no-color wasn't given.
func printSyntaxError(cmd *cobra.Command, filename string, e *source.SyntaxError, text []byte) {
	fmt.Printf("%s:%s: %s\n", filename, e.Pos, e.Msg)

	if e.Pos.IsEmpty() {
		return
	}

	line := findLine(string(text), e.Pos.Line)
	fmt.Println(line)

	caret := strings.Repeat(" ", e.Pos.Column-1) + "^"

	if colorEnabled(cmd) {
		fmt.Printf("\033[31m%s\033[0m\n", caret)
	} else {
		fmt.Println(caret)
	}
}

// colorEnabled determines whether diagnostic output should be colored:
// stdout must be a terminal, --no-color must be absent, and the config
// file's Color default must not have disabled it.
func colorEnabled(cmd *cobra.Command) bool {
	if GetFlag(cmd, "no-color") || !cfg.Color {
		return false
	}

	return term.IsTerminal(int(os.Stdout.Fd()))
}

// findLine returns the one-based lineNum-th line of text, without its
// trailing newline.
func findLine(text string, lineNum int) string {
	lines := strings.Split(text, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}

	return lines[lineNum-1]
}
