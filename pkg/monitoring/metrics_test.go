package monitoring

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetricsCollector_SanitizesName(t *testing.T) {
	mc := NewMetricsCollector("top-up", "v1", "abc")
	c := mc.NewCounter("things_total", "Things", []string{"kind"})
	c.WithLabelValues("a").Add(3)

	assert.Equal(t, 3.0, testutil.ToFloat64(c.WithLabelValues("a")))

	families, err := mc.Registry().Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "top_up_service_info")
	assert.Contains(t, names, "top_up_things_total")
}

func TestCollectorsAreIsolated(t *testing.T) {
	// Two collectors registering the same name must not panic.
	a := NewMetricsCollector("svc", "v1", "c")
	b := NewMetricsCollector("svc", "v1", "c")
	a.NewGauge("g", "gauge", nil)
	b.NewGauge("g", "gauge", nil)
}

func TestWriteTextfile(t *testing.T) {
	mc := NewMetricsCollector("svc", "v1", "c")
	g := mc.NewGauge("last_run", "Last run", nil)
	g.WithLabelValues().Set(42)

	path := filepath.Join(t.TempDir(), "svc.prom")
	require.NoError(t, mc.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "svc_last_run 42"), string(data))
}

func TestWriteTextfile_BadDir(t *testing.T) {
	mc := NewMetricsCollector("svc", "v1", "c")
	err := mc.WriteTextfile(filepath.Join(t.TempDir(), "missing", "svc.prom"))
	require.Error(t, err)
}
