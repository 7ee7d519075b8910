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
	"runtime/debug"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is filled when building with make, but *not* when installing via "go
// install".
var Version string

// cfg holds the merged config-file/flag defaults for the current invocation,
// loaded by the root command's PersistentPreRun before any subcommand runs.
var cfg Config

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tptp",
	Short: "A parser and formatter for the TPTP theorem-prover input language.",
	Long:  "A library and command-line toolbox for reading, checking and reformatting TPTP problem files.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		loaded, err := LoadConfig(GetString(cmd, "config"))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}

		cfg = loaded

		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}

		log.WithField("dialect", cfg.Dialect).Debug("configuration loaded")
	},
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "version") {
			fmt.Print("tptp ")

			if Version != "" {
				// Built via "make"
				fmt.Printf("%s", Version)
			} else if info, ok := debug.ReadBuildInfo(); ok {
				// Built via "go install"
				fmt.Printf("%s", info.Main.Version)
			} else {
				// Unknown, perhaps "go run"
				fmt.Printf("(unknown version)")
			}

			fmt.Println()

			return
		}

		cmd.Help() //nolint:errcheck
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Bool("version", false, "report version of this executable")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored diagnostic output")
	rootCmd.PersistentFlags().String("dialect", "", "default dialect name reported in debug logging (parsing follows each formula's keyword)")
	rootCmd.PersistentFlags().String("config", "", "path to a .tptprc.yaml config file (defaults to ./.tptprc.yaml)")
}
