package dashboard

import (
	"testing"
	"time"

	"jobportal/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestMonths(t *testing.T) {
	now := time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC)

	var got []string
	for m := range months(now, 6) {
		got = append(got, m)
	}

	assert.Equal(t, []string{"2025-10", "2025-11", "2025-12", "2026-01", "2026-02", "2026-03"}, got)
}

func TestMonths_YearBoundary(t *testing.T) {
	now := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

	var got []string
	for m := range months(now, 3) {
		got = append(got, m)
	}

	assert.Equal(t, []string{"2025-11", "2025-12", "2026-01"}, got)
}

func TestTrendStart(t *testing.T) {
	now := time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC), trendStart(now, 6))
}

func TestBuildTrend(t *testing.T) {
	now := time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC)

	trend := buildTrend(now, 6, map[string]int64{
		"2025-11": 3,
		"2026-03": 7,
		// A month outside the window is ignored.
		"2024-01": 99,
	})

	assert.Equal(t, []domain.TrendPoint{
		{Month: "2025-10", Count: 0},
		{Month: "2025-11", Count: 3},
		{Month: "2025-12", Count: 0},
		{Month: "2026-01", Count: 0},
		{Month: "2026-02", Count: 0},
		{Month: "2026-03", Count: 7},
	}, trend)
}
