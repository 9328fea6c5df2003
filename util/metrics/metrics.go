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

package metrics

import (
	"regexp"
	"strings"
)

// MetricName describes the name and description of a single metric
type MetricName struct {
	Name        string
	Description string
}

var (
	// LogicSigChecksTotal Total number of programs checked, by result
	LogicSigChecksTotal = MetricName{Name: "lsigcheck_checks_total", Description: "Total number of logic signature programs checked, by result"}
	// LogicSigProgramCost Static cost of programs that passed the check
	LogicSigProgramCost = MetricName{Name: "lsigcheck_program_cost", Description: "Static cost of logic signature programs that passed the check"}
	// LogicSigProgramLength Program plus arguments length of programs that passed the check
	LogicSigProgramLength = MetricName{Name: "lsigcheck_program_length_bytes", Description: "Program plus arguments length of logic signature programs that passed the check"}
	// LangSpecLoadsTotal Total number of language spec files loaded from disk
	LangSpecLoadsTotal = MetricName{Name: "lsigcheck_langspec_loads_total", Description: "Total number of language spec files loaded from disk"}
)

var sanitizeCharactersRegexp = regexp.MustCompile("(^[^a-zA-Z_]|[^a-zA-Z0-9_-])")

// sanitizePrometheusName ensures a metric name doesn't contain any
// non-alphanumeric characters (apart from _) and doesn't start with a number.
func sanitizePrometheusName(name string) string {
	return strings.ReplaceAll(sanitizeCharactersRegexp.ReplaceAllString(name, "_"), "-", "_")
}
