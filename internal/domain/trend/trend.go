// Package trend samples a player's rating at fixed time buckets to
// produce the series behind sparklines and the player detail chart.
package trend

import (
	"github.com/eyamansouri/matchboard/internal/domain/model"
	"github.com/eyamansouri/matchboard/internal/domain/stats"
)

// buckets are the canonical sample minutes, covering extra time.
var buckets = [...]int{0, 15, 30, 45, 60, 75, 90, 105, 120}

// Buckets returns a fresh copy of the canonical sample minutes.
func Buckets() []int {
	out := make([]int, len(buckets))
	copy(out, buckets[:])
	return out
}

// SampleMinutes returns the bucket minutes not exceeding minuteMax.
func SampleMinutes(minuteMax int) []int {
	out := make([]int, 0, len(buckets))
	for _, m := range buckets {
		if m <= minuteMax {
			out = append(out, m)
		}
	}
	return out
}

// Series recomputes the player's rating at every bucket up to
// minuteMax, rounded to two decimals. Each sample is an independent
// O(events) recompute; no state is carried between samples.
func Series(m *model.Match, playerID int64, minuteMax int) []float64 {
	minutes := SampleMinutes(minuteMax)
	out := make([]float64, len(minutes))
	for i, minute := range minutes {
		out[i] = stats.Round2(stats.RatingAt(m, playerID, minute))
	}
	return out
}
