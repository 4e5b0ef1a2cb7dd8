package types

// StatusLabel is the network status shown next to the congestion indicator.
type StatusLabel string

const (
	StatusNotBusy StatusLabel = "notBusy"
	StatusStable  StatusLabel = "stable"
	StatusBusy    StatusLabel = "busy"
)

// TooltipLabel is the descriptor paired with a StatusLabel.
type TooltipLabel string

const (
	TooltipLow    TooltipLabel = "lowLowercase"
	TooltipStable TooltipLabel = "stableLowercase"
	TooltipHigh   TooltipLabel = "highLowercase"
)

// CongestionClassification is the display state derived from a congestion score.
type CongestionClassification struct {
	StatusLabel       StatusLabel  `json:"statusLabel"`
	TooltipLabel      TooltipLabel `json:"tooltipLabel"`
	Color             string       `json:"color"`
	IndicatorPosition int          `json:"indicatorPosition"`
}
