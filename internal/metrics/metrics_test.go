package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dafibh/fortuna/fortuna-reminders/internal/domain"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleManifest() *domain.Manifest {
	return &domain.Manifest{
		Currency: domain.Currency,
		Days: []domain.DaySummary{
			{
				Offset: 1,
				Date:   domain.NewDate(2026, 1, 15),
				Total:  decimal.RequireFromString("117.28"),
				Items: []domain.DueItem{
					{Name: "Council tax", Amount: decimal.RequireFromString("70.28")},
					{Name: domain.FuelItemName, Amount: decimal.NewFromInt(47)},
				},
			},
			{Offset: 2, Date: domain.NewDate(2026, 1, 16), Total: decimal.Zero, Items: []domain.DueItem{}},
		},
	}
}

func TestRecordProjection(t *testing.T) {
	m := New()

	m.RecordProjection(sampleManifest())
	m.RecordProjection(sampleManifest())

	assert.Equal(t, float64(2), testutil.ToFloat64(m.projectionsTotal.WithLabelValues("2")))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.dueItemsTotal.WithLabelValues("payment")))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.dueItemsTotal.WithLabelValues("fuel")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.windowAmount))
}

func TestNew_IndependentRegistries(t *testing.T) {
	a := New()
	b := New()

	a.RecordProjection(sampleManifest())
	assert.Equal(t, float64(0), testutil.ToFloat64(b.projectionsTotal.WithLabelValues("2")))
}

func TestHandler_ExposesMetrics(t *testing.T) {
	m := New()
	m.RecordProjection(sampleManifest())
	m.RecordRequestDuration("/api/reminders", http.StatusOK, 3*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	text := string(body)
	assert.True(t, strings.Contains(text, "reminders_projections_total"))
	assert.True(t, strings.Contains(text, `reminders_request_duration_seconds_count{route="/api/reminders",status="200"} 1`))
}
