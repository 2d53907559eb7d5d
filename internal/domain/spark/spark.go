// Package spark renders a rating series as a compact inline SVG
// sparkline: a viewBox, two reference gridlines at ratings 7 and 8, and
// the data polyline.
package spark

import (
	"fmt"
	"strings"

	"github.com/eyamansouri/matchboard/internal/domain/trend"
)

// Default sparkline geometry.
const (
	DefaultWidth  = 90
	DefaultHeight = 24
	pad           = 2.0
	ratingCeil    = 10.0
	gridLow       = 7.0
	gridHigh      = 8.0
)

// Build renders the series with the default 90x24 geometry.
func Build(values []float64, minuteMax int) string {
	return BuildSized(values, minuteMax, DefaultWidth, DefaultHeight)
}

// BuildSized renders the series into a w x h viewBox. The horizontal
// scale maps bucket minutes into [pad, w-pad]; when the value count
// does not match the canonical buckets the samples are spaced evenly
// instead. Ratings are clamped to [0, 10] and drawn inverted so higher
// ratings sit higher on the visual. An empty series degenerates to a
// flat line at the zero-rating baseline.
func BuildSized(values []float64, minuteMax, w, h int) string {
	maxX := float64(minuteMax)
	if maxX < 1 {
		maxX = 1
	}
	fw, fh := float64(w), float64(h)

	scaleX := func(x float64) float64 {
		return pad + (fw-2*pad)*(x/maxX)
	}
	scaleY := func(y float64) float64 {
		if y < 0 {
			y = 0
		}
		if y > ratingCeil {
			y = ratingCeil
		}
		return pad + (fh-2*pad)*(1-y/ratingCeil)
	}

	ticks := trend.Buckets()
	xs := make([]float64, len(values))
	if len(values) == len(ticks) {
		for i, m := range ticks {
			xs[i] = float64(m)
		}
	} else {
		span := float64(len(values) - 1)
		if span < 1 {
			span = 1
		}
		for i := range values {
			xs[i] = float64(i) / span * maxX
		}
	}

	var d string
	if len(values) == 0 {
		base := fmt.Sprintf("%.1f", scaleY(0))
		d = fmt.Sprintf("M%.1f,%s L%.1f,%s", pad, base, fw-pad, base)
	} else {
		var b strings.Builder
		for i, v := range values {
			cmd := "L"
			if i == 0 {
				cmd = "M"
			} else {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%s%.1f,%.1f", cmd, scaleX(xs[i]), scaleY(v))
		}
		d = b.String()
	}

	g7 := fmt.Sprintf("%.1f", scaleY(gridLow))
	g8 := fmt.Sprintf("%.1f", scaleY(gridHigh))

	return fmt.Sprintf(`
<svg class="spark" viewBox="0 0 %d %d" role="img" aria-label="rating trend">
  <path class="grid" d="M0 %s H %d"></path>
  <path class="grid" d="M0 %s H %d"></path>
  <path d="%s"></path>
</svg>`, w, h, g7, w, g8, w, d)
}
