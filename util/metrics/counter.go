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

// Counter represent a single counter variable, optionally split by labels.
type Counter struct {
	name       string
	vec        *prometheus.CounterVec
	labelNames []string
}

// MakeCounter create a new counter with the provided name and description,
// registered with the default registry.
func MakeCounter(metric MetricName, labelNames ...string) *Counter {
	name := sanitizePrometheusName(metric.Name)
	c := &Counter{
		name: name,
		vec: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: name,
			Help: metric.Description,
		}, labelNames),
		labelNames: labelNames,
	}
	c.Register(nil)
	return c
}

// NewCounter is a shortcut to MakeCounter in one shorter line.
func NewCounter(name, desc string, labelNames ...string) *Counter {
	return MakeCounter(MetricName{Name: name, Description: desc}, labelNames...)
}

// Register registers the counter with the default/specific registry
func (counter *Counter) Register(reg *Registry) {
	if reg == nil {
		reg = DefaultRegistry()
	}
	reg.Register(counter.name, counter.vec)
}

// Deregister deregisters the counter with the default/specific registry
func (counter *Counter) Deregister(reg *Registry) {
	if reg == nil {
		reg = DefaultRegistry()
	}
	reg.Deregister(counter.name)
}

// Inc increases counter by 1
func (counter *Counter) Inc(labels map[string]string) {
	counter.AddUint64(1, labels)
}

// AddUint64 increases counter by x
func (counter *Counter) AddUint64(x uint64, labels map[string]string) {
	counter.vec.With(counter.labelSet(labels)).Add(float64(x))
}

// GetUint64ValueForLabels returns the value of the counter for the given labels or 0 if it's not found.
func (counter *Counter) GetUint64ValueForLabels(labels map[string]string) uint64 {
	c, err := counter.vec.GetMetricWith(counter.labelSet(labels))
	if err != nil {
		return 0
	}
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		return 0
	}
	return uint64(m.GetCounter().GetValue())
}

// labelSet fills in every declared label, so a partial map never panics.
func (counter *Counter) labelSet(labels map[string]string) prometheus.Labels {
	set := make(prometheus.Labels, len(counter.labelNames))
	for _, name := range counter.labelNames {
		set[name] = labels[name]
	}
	return set
}
