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
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] file...",
	Short: "check that one or more TPTP files parse without error.",
	Long:  `Parse each given file, printing nothing and exiting 0 if it parses cleanly, or rendering the syntax error and exiting 1 otherwise.`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		failed := false

		for _, filename := range args {
			log.WithField("file", filename).Debug("checking")

			problem, text, err := parseFile(filename)
			if err != nil {
				printSyntaxError(cmd, filename, err, text)

				failed = true

				continue
			}

			log.WithField("file", filename).WithField("formulas", len(problem.Formulas)).Debug("ok")
		}

		if failed {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
