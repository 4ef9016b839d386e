package observability

import (
	"testing"

	"github.com/raywall/employee-service/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupMetrics(t *testing.T) {
	t.Run("Disabled returns Noop", func(t *testing.T) {
		provider, err := SetupMetrics(config.MetricsConf{}, "employee-service")
		require.NoError(t, err)

		noop, ok := provider.(*NoopProvider)
		require.True(t, ok, "esperado NoopProvider, recebido %T", provider)
		assert.NoError(t, noop.Count("x", 1, nil))
		assert.NoError(t, noop.Gauge("x", 1, nil))
		assert.NoError(t, noop.Histogram("x", 1, nil))
	})

	t.Run("Enabled returns Datadog", func(t *testing.T) {
		cfg := config.MetricsConf{
			Datadog: config.DatadogConf{
				Enabled: true,
				Addr:    "localhost:8125",
				Tags:    []string{"env:test"},
			},
		}

		// statsd sobre UDP não exige agente no ar para criar o cliente
		provider, err := SetupMetrics(cfg, "employee-service")
		require.NoError(t, err)

		dd, ok := provider.(*DatadogProvider)
		require.True(t, ok, "esperado DatadogProvider, recebido %T", provider)
		assert.NoError(t, dd.Count("requests", 1, []string{"route:list"}))
		assert.NoError(t, dd.Close())
	})
}
