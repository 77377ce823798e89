package alert

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/oshokin/typewise-alert/internal/domain/battery"
	"github.com/oshokin/typewise-alert/internal/logger"
	"github.com/oshokin/typewise-alert/internal/metrics"
)

// Notifier delivers a breach to one alert channel.
type Notifier interface {
	Notify(ctx context.Context, breach battery.BreachType) error
}

// NotifierFunc adapts a plain function to Notifier.
type NotifierFunc func(ctx context.Context, breach battery.BreachType) error

// Notify calls f.
func (f NotifierFunc) Notify(ctx context.Context, breach battery.BreachType) error {
	return f(ctx, breach)
}

// Router dispatches breaches to the notifier of the requested target.
type Router struct {
	// notifiers is indexed by battery.AlertTarget.
	notifiers [battery.NumAlertTargets]Notifier
	// metrics records checks and dispatches when set.
	metrics *metrics.Collector
}

// Option configures a Router.
type Option func(*Router)

// WithMetrics attaches a metrics collector.
func WithMetrics(c *metrics.Collector) Option {
	return func(r *Router) {
		r.metrics = c
	}
}

// NewRouter creates a router sending ToController breaches to controller and
// ToEmail breaches to email.
func NewRouter(controller, email Notifier, opts ...Option) *Router {
	r := &Router{}
	r.notifiers[battery.ToController] = controller
	r.notifiers[battery.ToEmail] = email

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Compile-time check that NewRouter takes one notifier per alert target.
func _() {
	var x [1]struct{}
	_ = x[battery.NumAlertTargets-2]
}

// CheckAndAlert classifies temperatureInC for the battery and dispatches the
// breach to the notifier of target. It returns the breach and any notifier error.
// An unknown target is rejected before classification and is not counted.
// An unknown cooling type panics, see battery.UpperLimit.
func (r *Router) CheckAndAlert(
	ctx context.Context,
	target battery.AlertTarget,
	character battery.BatteryCharacter,
	temperatureInC float64,
) (battery.BreachType, error) {
	if !target.Valid() {
		return battery.Normal, fmt.Errorf("%w: %v", battery.ErrUnknownAlertTarget, target)
	}

	breach := battery.ClassifyTemperatureBreach(character.CoolingType, temperatureInC)
	r.metrics.ObserveCheck(character.CoolingType, breach)

	ctx = logger.WithKV(ctx, "check_id", uuid.NewString())
	logger.DebugKV(ctx, "Temperature classified",
		"cooling_type", character.CoolingType,
		"brand", character.Brand,
		"temperature_c", temperatureInC,
		"breach", breach,
		"target", target,
	)

	notifier := r.notifiers[target]
	if notifier == nil {
		return breach, fmt.Errorf("no notifier for %v", target)
	}

	err := notifier.Notify(ctx, breach)
	r.metrics.ObserveDispatch(target, breach, err)

	if err != nil {
		logger.ErrorKV(ctx, "Breach dispatch failed", "target", target, "error", err)

		return breach, fmt.Errorf("notify %v: %w", target, err)
	}

	return breach, nil
}
