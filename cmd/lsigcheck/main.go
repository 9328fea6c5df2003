// Copyright (C) 2019-2026 Algorand, Inc.
// This file is part of go-algorand
//
// go-algorand is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// go-algorand is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with go-algorand.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/algorand/lsigcheck/config"
)

var (
	versionCheck bool
	configDir    string
	langSpecFile string
	consensusVer string
	logLevel     string
	jsonLogs     bool
	parallelism  int
	dumpMetrics  bool
)

var rootCmd = &cobra.Command{
	Use:   "lsigcheck",
	Short: "Static checks for logic signature programs",
	Long:  "Checks logic signature programs against the program version, size and static cost limits without running them.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if versionCheck {
			fmt.Println(config.FormatVersionAndLicense())
			return
		}
		// If no arguments passed, we should fallback to help
		cmd.HelpFunc()(cmd, args)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display the build version and license",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(config.FormatVersionAndLicense())
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.Flags().BoolVarP(&versionCheck, "version", "v", false, "Display and write current build version and exit")

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&configDir, "config", "c", "", "Directory holding "+config.ConfigFilename)
	pf.StringVar(&langSpecFile, "langspec", "", "Check against this langspec.json instead of the built-in language spec")
	pf.StringVar(&consensusVer, "consensus", "", "Consensus version whose LogicSigVersion caps program versions (v18, v24)")
	pf.StringVar(&logLevel, "log-level", "", "Log level (panic, fatal, error, warn, info, debug)")
	pf.BoolVar(&jsonLogs, "json-logs", false, "Write logs as JSON")
	pf.IntVarP(&parallelism, "parallel", "p", 0, "Number of programs checked at once")
	pf.BoolVar(&dumpMetrics, "metrics", false, "Print collected metrics after checking")
}

func main() {
	// Hidden command to generate docs in a given directory
	// lsigcheck generate-docs [path]
	if len(os.Args) == 3 && os.Args[1] == "generate-docs" {
		err := doc.GenMarkdownTree(rootCmd, os.Args[2])
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
