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
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/algorand/lsigcheck/test/partitiontest"
)

func TestHistogramObserve(t *testing.T) {
	partitiontest.PartitionTest(t)

	h := MakeHistogram(MetricName{Name: "metric_test_histogram", Description: "histogram test"}, []float64{10, 100, 1000})
	defer h.Deregister(nil)

	for _, v := range []float64{1, 50, 500, 5000} {
		h.Observe(v)
	}
	require.Equal(t, uint64(4), h.SampleCount())

	reg := MakeRegistry()
	h.Register(reg)
	var buf bytes.Buffer
	require.NoError(t, reg.WriteMetrics(&buf))
	out := buf.String()
	require.Contains(t, out, `metric_test_histogram_bucket{le="10"} 1`)
	require.Contains(t, out, `metric_test_histogram_bucket{le="100"} 2`)
	require.Contains(t, out, `metric_test_histogram_bucket{le="1000"} 3`)
	require.Contains(t, out, `metric_test_histogram_bucket{le="+Inf"} 4`)
	require.Contains(t, out, "metric_test_histogram_count 4")
}
