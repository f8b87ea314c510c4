package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	// DefaultNamespace prefixes every metric unless configured otherwise
	DefaultNamespace = "spacetraders"
	// Subsystem for SDK metrics
	subsystem = "sdk"
)

// Collector is implemented by every metrics group in this package
type Collector interface {
	Register(reg prometheus.Registerer) error
}

// NewRegistry creates a registry holding the given collectors. Each caller
// gets its own registry, so several clients can be instrumented side by side.
func NewRegistry(collectors ...Collector) (*prometheus.Registry, error) {
	reg := prometheus.NewRegistry()
	for _, c := range collectors {
		if err := c.Register(reg); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

func register(reg prometheus.Registerer, metrics ...prometheus.Collector) error {
	if reg == nil {
		return nil // Metrics not enabled
	}
	for _, metric := range metrics {
		if err := reg.Register(metric); err != nil {
			return err
		}
	}
	return nil
}

func orDefault(namespace string) string {
	if namespace == "" {
		return DefaultNamespace
	}
	return namespace
}
