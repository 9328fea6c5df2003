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
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// Histogram tracks the distribution of observed values.
type Histogram struct {
	name string
	h    prometheus.Histogram
}

// MakeHistogram creates a histogram with the given bucket upper bounds,
// registered with the default registry.
func MakeHistogram(metric MetricName, buckets []float64) *Histogram {
	name := sanitizePrometheusName(metric.Name)
	h := &Histogram{
		name: name,
		h: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    name,
			Help:    metric.Description,
			Buckets: buckets,
		}),
	}
	h.Register(nil)
	return h
}

// Register registers the histogram with the default/specific registry
func (h *Histogram) Register(reg *Registry) {
	if reg == nil {
		reg = DefaultRegistry()
	}
	reg.Register(h.name, h.h)
}

// Deregister deregisters the histogram with the default/specific registry
func (h *Histogram) Deregister(reg *Registry) {
	if reg == nil {
		reg = DefaultRegistry()
	}
	reg.Deregister(h.name)
}

// Observe records one value.
func (h *Histogram) Observe(x float64) {
	h.h.Observe(x)
}

// SampleCount returns how many values were observed.
func (h *Histogram) SampleCount() uint64 {
	var m dto.Metric
	if err := h.h.Write(&m); err != nil {
		return 0
	}
	return m.GetHistogram().GetSampleCount()
}
