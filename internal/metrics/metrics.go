// Package metrics exposes Prometheus counters for breach dispatches.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/oshokin/typewise-alert/internal/domain/battery"
)

// Collector counts classifications and dispatches.
type Collector struct {
	// ChecksTotal counts classifications by cooling type and breach.
	ChecksTotal *prometheus.CounterVec
	// DispatchTotal counts notifier calls by target, breach and status.
	DispatchTotal *prometheus.CounterVec
}

// New creates a Collector and registers it on reg.
func New(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		ChecksTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "typewise_alert_checks_total",
				Help: "Total number of temperature classifications",
			},
			[]string{"cooling_type", "breach"},
		),
		DispatchTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "typewise_alert_dispatch_total",
				Help: "Total number of breach dispatches to notifiers",
			},
			[]string{"target", "breach", "status"}, // status: sent, failed
		),
	}

	for _, collector := range []prometheus.Collector{c.ChecksTotal, c.DispatchTotal} {
		if err := reg.Register(collector); err != nil {
			return nil, fmt.Errorf("register collector: %w", err)
		}
	}

	return c, nil
}

// ObserveCheck records one classification.
func (c *Collector) ObserveCheck(coolingType battery.CoolingType, breach battery.BreachType) {
	if c == nil {
		return
	}

	c.ChecksTotal.WithLabelValues(coolingType.String(), breach.String()).Inc()
}

// ObserveDispatch records one notifier call.
func (c *Collector) ObserveDispatch(target battery.AlertTarget, breach battery.BreachType, err error) {
	if c == nil {
		return
	}

	status := "sent"
	if err != nil {
		status = "failed"
	}

	c.DispatchTotal.WithLabelValues(target.String(), breach.String(), status).Inc()
}

// WriteTextfile dumps everything gathered by g to path in the text exposition
// format, for node_exporter's textfile collector.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}

	return nil
}
