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

package logging

import (
	"testing"
)

// TestLogWriter is an io.Writer that wraps a testing.T (or a testing.B) -- anything written to it gets logged with t.Log(...)
// Being entirely inside of Write() is the only way we can pass the testing check that we're inside a test
type TestLogWriter struct {
	testing.TB
}

// Write is part of io.Writer
func (tb TestLogWriter) Write(p []byte) (n int, err error) {
	tb.Log(string(p))
	return len(p), nil
}

// TestingLog is a test-only convenience function to configure logging for testing
func TestingLog(tb testing.TB) Logger {
	l := NewLogger()
	l.SetLevel(Debug)
	l.SetOutput(TestLogWriter{tb})
	return l
}

// TestingLogWithoutFatalExit is a test-only convenience function to configure
// logging for testing, but with Fatal logs not calling os.Exit.
func TestingLogWithoutFatalExit(tb testing.TB) Logger {
	l := TestingLog(tb)
	l.(logger).entry.Logger.ExitFunc = func(int) {}
	return l
}
