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
	"io"
	"sort"

	"github.com/algorand/go-deadlock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Registry represents a single set of metrics registry
type Registry struct {
	reg *prometheus.Registry

	// registered remembers collectors by metric name, so registering the same
	// metric twice is a no-op rather than a panic.
	registered   map[string]prometheus.Collector
	registeredMu deadlock.Mutex
}

var defaultRegistry = MakeRegistry()

// MakeRegistry creates a new metrics registry
func MakeRegistry() *Registry {
	return &Registry{
		reg:        prometheus.NewRegistry(),
		registered: make(map[string]prometheus.Collector),
	}
}

// DefaultRegistry returns the default registry
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Register adds the collector to the registry under name.
func (r *Registry) Register(name string, c prometheus.Collector) {
	r.registeredMu.Lock()
	defer r.registeredMu.Unlock()
	if _, ok := r.registered[name]; ok {
		return
	}
	r.reg.MustRegister(c)
	r.registered[name] = c
}

// Deregister removes the collector registered under name.
func (r *Registry) Deregister(name string) {
	r.registeredMu.Lock()
	defer r.registeredMu.Unlock()
	c, ok := r.registered[name]
	if !ok {
		return
	}
	r.reg.Unregister(c)
	delete(r.registered, name)
}

// Names returns the registered metric names, sorted.
func (r *Registry) Names() []string {
	r.registeredMu.Lock()
	defer r.registeredMu.Unlock()
	names := make([]string, 0, len(r.registered))
	for name := range r.registered {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WriteMetrics writes all collected metrics to w in the Prometheus text
// exposition format.
func (r *Registry) WriteMetrics(w io.Writer) error {
	families, err := r.reg.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
