package metrics_test

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/spacetraders-sdk/internal/adapters/metrics"
)

func newCommandTree() (*cobra.Command, *cobra.Command) {
	root := &cobra.Command{Use: "spacetraders"}
	ships := &cobra.Command{Use: "ships"}
	orbit := &cobra.Command{Use: "orbit"}
	root.AddCommand(ships)
	ships.AddCommand(orbit)
	return root, orbit
}

func TestCommandMiddleware_RecordsSuccessAndFailure(t *testing.T) {
	// Arrange
	collector := metrics.NewCommandMetricsCollector("cli")
	reg, err := metrics.NewRegistry(collector)
	require.NoError(t, err)
	_, orbit := newCommandTree()

	ok := metrics.CommandMiddleware(collector, func(*cobra.Command, []string) error { return nil })
	fail := metrics.CommandMiddleware(collector, func(*cobra.Command, []string) error { return errors.New("boom") })

	// Act
	require.NoError(t, ok(orbit, nil))
	require.NoError(t, ok(orbit, nil))
	require.Error(t, fail(orbit, nil))

	// Assert
	count, err := testutil.GatherAndCount(reg, "cli_sdk_commands_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count) // one series per status

	families, err := reg.Gather()
	require.NoError(t, err)
	totals := map[string]float64{}
	for _, family := range families {
		if family.GetName() != "cli_sdk_commands_total" {
			continue
		}
		for _, m := range family.GetMetric() {
			labels := map[string]string{}
			for _, l := range m.GetLabel() {
				labels[l.GetName()] = l.GetValue()
			}
			assert.Equal(t, "ships orbit", labels["command"])
			totals[labels["status"]] = m.GetCounter().GetValue()
		}
	}
	assert.Equal(t, 2.0, totals["success"])
	assert.Equal(t, 1.0, totals["error"])
}

func TestCommandMiddleware_NilCollectorPassesThrough(t *testing.T) {
	// Arrange
	called := false
	run := metrics.CommandMiddleware(nil, func(*cobra.Command, []string) error {
		called = true
		return nil
	})

	// Act
	err := run(&cobra.Command{Use: "status"}, nil)

	// Assert
	require.NoError(t, err)
	assert.True(t, called)
}
