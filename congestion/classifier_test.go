package congestion_test

import (
	"math"
	"testing"

	"github.com/ClipFinance/gasfee-lib/common/types"
	"github.com/ClipFinance/gasfee-lib/congestion"
	"github.com/stretchr/testify/assert"
)

func score(v float64) *float64 {
	return &v
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		score    *float64
		status   types.StatusLabel
		tooltip  types.TooltipLabel
		color    string
		position int
	}{
		{name: "absent score is neutral", score: nil, status: types.StatusStable, tooltip: types.TooltipStable, color: "#6A5D92", position: 50},
		{name: "zero", score: score(0), status: types.StatusNotBusy, tooltip: types.TooltipLow, color: "#037DD6", position: 0},
		{name: "lower band is inclusive", score: score(0.33), status: types.StatusNotBusy, tooltip: types.TooltipLow, color: "#4369AB", position: 30},
		{name: "just above lower band", score: score(0.34), status: types.StatusStable, tooltip: types.TooltipStable, color: "#4369AB", position: 30},
		{name: "upper band is exclusive", score: score(0.66), status: types.StatusStable, tooltip: types.TooltipStable, color: "#9A4D71", position: 70},
		{name: "busy", score: score(0.67), status: types.StatusBusy, tooltip: types.TooltipHigh, color: "#9A4D71", position: 70},
		{name: "half rounds up", score: score(0.25), status: types.StatusNotBusy, tooltip: types.TooltipLow, color: "#4369AB", position: 30},
		{name: "one", score: score(1), status: types.StatusBusy, tooltip: types.TooltipHigh, color: "#D73A49", position: 100},
		{name: "negative is clamped", score: score(-3), status: types.StatusNotBusy, tooltip: types.TooltipLow, color: "#037DD6", position: 0},
		{name: "above one is clamped", score: score(7.5), status: types.StatusBusy, tooltip: types.TooltipHigh, color: "#D73A49", position: 100},
		{name: "NaN is neutral", score: score(math.NaN()), status: types.StatusStable, tooltip: types.TooltipStable, color: "#6A5D92", position: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := congestion.Classify(tt.score)
			assert.Equal(t, tt.status, got.StatusLabel)
			assert.Equal(t, tt.tooltip, got.TooltipLabel)
			assert.Equal(t, tt.color, got.Color)
			assert.Equal(t, tt.position, got.IndicatorPosition)
		})
	}
}

func TestClassify_AbsentMatchesNeutral(t *testing.T) {
	assert.Equal(t, congestion.Classify(score(0.5)), congestion.Classify(nil))
	assert.Equal(t, congestion.Classify(nil), congestion.ClassifySource(nil))
	assert.Equal(t, congestion.Classify(score(0.9)), congestion.ClassifySource(&types.EstimateSource{NetworkCongestion: score(0.9)}))
}

func TestClassify_Monotonic(t *testing.T) {
	palette := congestion.Gradient()
	colorIndex := func(color string) int {
		for i, c := range palette {
			if c == color {
				return i
			}
		}
		return -1
	}

	previous := congestion.Classify(score(0))
	for i := 1; i <= 1000; i++ {
		current := congestion.Classify(score(float64(i) / 1000))
		assert.GreaterOrEqual(t, colorIndex(current.Color), colorIndex(previous.Color))
		assert.GreaterOrEqual(t, current.IndicatorPosition, previous.IndicatorPosition)
		assert.Zero(t, current.IndicatorPosition%10)
		previous = current
	}
}
