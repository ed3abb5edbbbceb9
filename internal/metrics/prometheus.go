/*
Copyright 2025 The CustomComponents Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package metrics

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
)

const namespace = "salvage"

// PrometheusRecorder exports salvage events as Prometheus metrics.
type PrometheusRecorder struct {
	runs          *prometheus.CounterVec
	recoveryRolls *prometheus.CounterVec
	unitFailures  *prometheus.CounterVec
	entries       *prometheus.CounterVec
	finalCount    prometheus.Gauge
	priorityCount prometheus.Gauge
}

// NewPrometheusRecorder creates a PrometheusRecorder and registers its
// collectors with reg.
func NewPrometheusRecorder(reg prometheus.Registerer) (*PrometheusRecorder, error) {
	r := &PrometheusRecorder{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Salvage generation runs by result.",
		}, []string{"result"}),
		recoveryRolls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recovery_rolls_total",
			Help:      "Recovery rolls for destroyed friendly mechs by outcome.",
		}, []string{"outcome"}),
		unitFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "unit_failures_total",
			Help:      "Isolated per-unit failures by stage.",
		}, []string{"stage"}),
		entries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entries_total",
			Help:      "Salvage entries added by pool.",
		}, []string{"pool"}),
		finalCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "final_count",
			Help:      "Final salvage count of the last run.",
		}),
		priorityCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "priority_count",
			Help:      "Priority salvage count of the last run.",
		}),
	}
	for _, c := range []prometheus.Collector{r.runs, r.recoveryRolls, r.unitFailures, r.entries, r.finalCount, r.priorityCount} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("registering salvage metrics: %w", err)
		}
	}
	return r, nil
}

func (r *PrometheusRecorder) RunFinished(result string) {
	r.runs.WithLabelValues(result).Inc()
}

func (r *PrometheusRecorder) RecoveryRolled(outcome string) {
	r.recoveryRolls.WithLabelValues(outcome).Inc()
}

func (r *PrometheusRecorder) UnitFailed(stage string) {
	r.unitFailures.WithLabelValues(stage).Inc()
}

func (r *PrometheusRecorder) EntriesAdded(pool string, n int) {
	if n <= 0 {
		return
	}
	r.entries.WithLabelValues(pool).Add(float64(n))
}

func (r *PrometheusRecorder) BudgetComputed(final, priority int) {
	r.finalCount.Set(float64(final))
	r.priorityCount.Set(float64(priority))
}

// WriteText writes every metric family gathered from g in the text exposition format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}
	return writeFamilies(w, families)
}

func writeFamilies(w io.Writer, families []*dto.MetricFamily) error {
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("writing metric family %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
