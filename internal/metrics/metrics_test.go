package metrics_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/toll-plaza/internal/domain"
	"github.com/pkordes/toll-plaza/internal/metrics"
)

func TestCollector_Counts(t *testing.T) {
	c := metrics.NewCollector()

	c.EntryRecorded(false)
	c.EntryRecorded(true)
	c.EntryRecorded(false)
	c.ExitRecorded(domain.Fare{Total: 13.4, Holiday: true})
	c.ExitRecorded(domain.Fare{Total: 22.32, SpecialDiscount: true})
	c.ExitUnmatched()

	assert.InDelta(t, 2, testutil.ToFloat64(c.Entries.WithLabelValues("new")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(c.Entries.WithLabelValues("reentry")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(c.Exits.WithLabelValues("holiday")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(c.Exits.WithLabelValues("special_day")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(c.UnmatchedExit), 0)
}

func TestCollector_StrictMiddlewareObservesOperation(t *testing.T) {
	c := metrics.NewCollector()

	h := c.StrictMiddleware()(func(context.Context, http.ResponseWriter, *http.Request, interface{}) (interface{}, error) {
		return "ok", nil
	}, "RecordExit")

	resp, err := h(context.Background(), httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/toll/exit", nil), nil)

	require.NoError(t, err)
	assert.Equal(t, "ok", resp)
	assert.Equal(t, 1, testutil.CollectAndCount(c.OperationDuration, "toll_operation_duration_seconds"))
}

func TestCollector_Handler(t *testing.T) {
	c := metrics.NewCollector()
	c.ExitUnmatched()

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "toll_exits_unmatched_total 1"))
}
