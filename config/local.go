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

package config

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/algorand/go-deadlock"

	"github.com/algorand/lsigcheck/protocol"
)

// Local holds the per-user configuration settings for lsigcheck.
type Local struct {
	// Version tracks the current version of the defaults so we can migrate
	// old -> new.
	Version uint32

	// LangSpecFile is a langspec.json to check against instead of the
	// built-in language description. Empty means built-in.
	LangSpecFile string

	// ConsensusVersion caps accepted program versions at that protocol's
	// LogicSigVersion. Empty means the current protocol.
	ConsensusVersion string

	// LogLevel is one of panic, fatal, error, warn, info or debug.
	LogLevel string

	// JSONLogs switches log output to JSON.
	JSONLogs bool

	// CheckParallelism bounds how many programs are checked at once.
	CheckParallelism int

	// ReportMetrics dumps the collected metrics after a batch.
	ReportMetrics bool

	// DeadlockDetection controls enabling or disabling deadlock detection.
	// negative (-1) to disable, positive (1) to enable, 0 for default.
	DeadlockDetection int

	// DeadlockDetectionThreshold is the threshold used for deadlock detection, in seconds.
	DeadlockDetectionThreshold int
}

var defaultLocal = Local{
	Version:                    1,
	LogLevel:                   "warn",
	CheckParallelism:           runtime.NumCPU(),
	DeadlockDetectionThreshold: 30,
}

// GetDefaultLocal returns a copy of the current defaultLocal config
func GetDefaultLocal() Local {
	return defaultLocal
}

// Consensus returns the consensus parameters this config selects.
func (cfg Local) Consensus() (ConsensusParams, error) {
	if cfg.ConsensusVersion == "" {
		return CurrentLogicSig(), nil
	}
	params, ok := Consensus[protocol.ConsensusVersion(cfg.ConsensusVersion)]
	if !ok {
		return ConsensusParams{}, fmt.Errorf("unknown consensus version %q", cfg.ConsensusVersion)
	}
	return params, nil
}

// Parallelism returns CheckParallelism, falling back to one worker.
func (cfg Local) Parallelism() int {
	if cfg.CheckParallelism < 1 {
		return 1
	}
	return cfg.CheckParallelism
}

// ApplyDeadlockSettings configures go-deadlock from the build default and
// then from DeadlockDetection.
func (cfg Local) ApplyDeadlockSettings() error {
	switch strings.ToLower(DefaultDeadlock) {
	case "enable":
		deadlock.Opts.Disable = false
	case "disable":
		deadlock.Opts.Disable = true
	case "":
	default:
		return fmt.Errorf("DefaultDeadlock is somehow not set to an expected value (enable / disable): %s", DefaultDeadlock)
	}

	if cfg.DeadlockDetection < 0 {
		deadlock.Opts.Disable = true
	} else if cfg.DeadlockDetection > 0 {
		deadlock.Opts.Disable = false
	}
	if cfg.DeadlockDetectionThreshold > 0 {
		deadlock.Opts.DeadlockTimeout = time.Duration(cfg.DeadlockDetectionThreshold) * time.Second
	}
	return nil
}
