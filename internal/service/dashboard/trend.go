package dashboard

import (
	"iter"
	"time"

	"jobportal/internal/domain"
)

// months yields the last n calendar months as "YYYY-MM" keys, oldest
// first, ending at the month containing now.
func months(now time.Time, n int) iter.Seq[string] {
	return func(yield func(string) bool) {
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(n - 1), 0)
		for i := 0; i < n; i++ {
			if !yield(start.AddDate(0, i, 0).Format("2006-01")) {
				return
			}
		}
	}
}

// trendStart is the lower bound to hand the repository when asking for
// counts feeding an n-month trend.
func trendStart(now time.Time, n int) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(n - 1), 0)
}

// buildTrend zero-fills months the counts map does not mention, so a
// chart always gets a point per month.
func buildTrend(now time.Time, n int, counts map[string]int64) []domain.TrendPoint {
	points := make([]domain.TrendPoint, 0, n)
	for month := range months(now, n) {
		points = append(points, domain.TrendPoint{Month: month, Count: counts[month]})
	}
	return points
}
