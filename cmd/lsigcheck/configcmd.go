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
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/algorand/lsigcheck/config"
	"github.com/algorand/lsigcheck/util/codecs"
)

var forceConfig bool

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)

	configInitCmd.Flags().BoolVarP(&forceConfig, "force", "f", false, "Overwrite an existing "+config.ConfigFilename)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Write or display the lsigcheck configuration",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.HelpFunc()(cmd, args)
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write " + config.ConfigFilename + " into the --config directory",
	Long:  "Write the effective settings, after flag overrides, into the --config directory. Only values that differ from the defaults are written.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		if configDir == "" {
			reportErrorf("--config must name the directory to write %s into", config.ConfigFilename)
		}
		cfg, err := loadConfig(cmd)
		if err != nil {
			reportErrorf("Could not load config: %v", err)
		}
		if err := initConfig(configDir, cfg, forceConfig); err != nil {
			reportErrorf("%v", err)
		}
		reportInfof("Wrote %s", filepath.Join(configDir, config.ConfigFilename))
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as JSON",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		cfg, err := loadConfig(cmd)
		if err != nil {
			reportErrorf("Could not load config: %v", err)
		}
		if err := showConfig(os.Stdout, cfg); err != nil {
			reportErrorf("%v", err)
		}
	},
}

// initConfig saves cfg into dir, refusing to replace an existing file
// unless force is set.
func initConfig(dir string, cfg config.Local, force bool) error {
	path := filepath.Join(dir, config.ConfigFilename)
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists, use --force to overwrite it", path)
	}
	return cfg.SaveToDisk(dir)
}

func showConfig(w io.Writer, cfg config.Local) error {
	return codecs.NewFormattedJSONEncoder(w).Encode(cfg)
}
