package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/aurakernel/alloc"
)

func TestCollector_RecordAllocation(t *testing.T) {
	c := NewCollector(Config{Enabled: true}, nil)

	c.RecordAllocation(512, nil, alloc.Usage{Allocated: 512, Capacity: 1024})
	c.RecordAllocation(600, alloc.ErrOutOfMemory, alloc.Usage{Allocated: 512, Capacity: 1024})
	c.RecordAllocation(0, alloc.ErrInvalidAlignment, alloc.Usage{Allocated: 512, Capacity: 1024})

	assert.Equal(t, 1.0, testutil.ToFloat64(c.allocRequests.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.allocRequests.WithLabelValues("out_of_memory")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.allocRequests.WithLabelValues("invalid_alignment")))
	assert.Equal(t, 512.0, testutil.ToFloat64(c.allocated))
	assert.Equal(t, 1024.0, testutil.ToFloat64(c.capacity))
	assert.Equal(t, 1, testutil.CollectAndCount(c.regionSize))
}

func TestCollector_BootAndMask(t *testing.T) {
	c := NewCollector(Config{Enabled: true, Namespace: "test"}, nil)

	c.RecordBoot(3 * time.Millisecond)
	c.RecordMask("High")
	c.RecordMask("High")

	assert.Equal(t, 1.0, testutil.ToFloat64(c.boots))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.masks.WithLabelValues("High")))

	err := testutil.GatherAndCompare(c.Registry(), strings.NewReader(`
# HELP test_kernel_boots_total Completed kernel boots
# TYPE test_kernel_boots_total counter
test_kernel_boots_total 1
`), "test_kernel_boots_total")
	require.NoError(t, err)
}

func TestCollector_Disabled(t *testing.T) {
	c := NewCollector(Config{Enabled: false}, nil)

	c.RecordAllocation(64, nil, alloc.Usage{Allocated: 64, Capacity: 128})
	c.RecordBoot(time.Second)
	c.RecordMask("Standard")

	assert.Equal(t, 0.0, testutil.ToFloat64(c.boots))
	assert.Equal(t, 0.0, testutil.ToFloat64(c.allocated))
}

func TestCollector_Handler(t *testing.T) {
	c := NewCollector(Config{Enabled: true}, nil)
	c.RecordAllocation(64, nil, alloc.Usage{Allocated: 64, Capacity: 128})

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "aura_alloc_allocated_bytes 64")
}
