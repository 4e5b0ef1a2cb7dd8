package congestion

import (
	"math"

	"github.com/ClipFinance/gasfee-lib/common/types"
)

const (
	// neutralScore is used when no congestion score is known.
	neutralScore = 0.5
	// notBusyThreshold is the highest score reported as not busy.
	notBusyThreshold = 0.33
	// busyThreshold is exceeded by every score reported as busy.
	busyThreshold = 0.66
)

// gradient runs from calm to congested, one color per tenth of the score range.
var gradient = [11]string{
	"#037DD6",
	"#1876C8",
	"#2D70BA",
	"#4369AB",
	"#57629E",
	"#6A5D92",
	"#805683",
	"#9A4D71",
	"#B44561",
	"#C54055",
	"#D73A49",
}

// Gradient returns the palette used for the indicator color, calmest first.
func Gradient() [11]string {
	return gradient
}

// Classify maps a congestion score to its display state. A nil or NaN score is
// treated as 0.5 and out of range scores are clamped to [0, 1].
func Classify(score *float64) types.CongestionClassification {
	value := neutralScore
	if score != nil && !math.IsNaN(*score) {
		value = math.Min(math.Max(*score, 0), 1)
	}

	index := int(math.Round(value * 10))
	if index < 0 {
		index = 0
	} else if index > len(gradient)-1 {
		index = len(gradient) - 1
	}

	classification := types.CongestionClassification{
		Color:             gradient[index],
		IndicatorPosition: index * 10,
	}

	switch {
	case value <= notBusyThreshold:
		classification.StatusLabel = types.StatusNotBusy
		classification.TooltipLabel = types.TooltipLow
	case value > busyThreshold:
		classification.StatusLabel = types.StatusBusy
		classification.TooltipLabel = types.TooltipHigh
	default:
		classification.StatusLabel = types.StatusStable
		classification.TooltipLabel = types.TooltipStable
	}

	return classification
}

// ClassifySource classifies the network congestion reported by an estimate source.
func ClassifySource(source *types.EstimateSource) types.CongestionClassification {
	if source == nil {
		return Classify(nil)
	}
	return Classify(source.NetworkCongestion)
}
