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

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [flags] file",
	Short: "reformat a TPTP file into its canonical form.",
	Long:  `Parse a TPTP problem file and print it back out in canonical form, exercising the round-trip pretty-printer.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		filename := args[0]

		log.WithField("file", filename).Debug("formatting")

		problem, text, err := parseFile(filename)
		if err != nil {
			printSyntaxError(cmd, filename, err, text)
			os.Exit(1)
		}

		var sb strings.Builder

		problem.Pretty(&sb)

		if write := GetString(cmd, "write"); write != "" {
			if err := os.WriteFile(write, []byte(sb.String()), 0o644); err != nil { //nolint:gosec
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}

			return
		}

		fmt.Print(sb.String())
	},
}

func init() {
	rootCmd.AddCommand(fmtCmd)
	fmtCmd.Flags().StringP("write", "w", "", "write the formatted output to this file instead of stdout")
}
