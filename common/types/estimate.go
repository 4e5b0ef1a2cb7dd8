package types

// GasEstimate holds the suggested fees of one estimate level.
//
// Fields:
// - SuggestedMaxFeePerGas: the fee-market gas price ceiling.
// - SuggestedMaxPriorityFeePerGas: the fee-market tip.
// - GasPrice: the legacy gas price.
type GasEstimate struct {
	SuggestedMaxFeePerGas         string `json:"suggestedMaxFeePerGas,omitempty"`
	SuggestedMaxPriorityFeePerGas string `json:"suggestedMaxPriorityFeePerGas,omitempty"`
	GasPrice                      string `json:"gasPrice,omitempty"`
}

// EstimateSource holds the fee estimates the user can pick from.
//
// Fields:
// - GasEstimateType: the kind of estimates provided.
// - GasFeeEstimates: estimates keyed by level, for fee-market and legacy sources.
// - GasPrice: the single gas price of eth_gasPrice and none sources.
// - EstimatedBaseFee: the estimated base fee of the next block.
// - NetworkCongestion: normalized network busyness, nil when unknown.
// - Unit: denomination of decimal strings, empty to use the engine default, which is
//   gwei rather than wei unless configured otherwise. 0x-prefixed strings are always wei.
type EstimateSource struct {
	GasEstimateType   EstimateType                  `json:"gasEstimateType"`
	GasFeeEstimates   map[EstimateLevel]GasEstimate `json:"gasFeeEstimates,omitempty"`
	GasPrice          string                        `json:"gasPrice,omitempty"`
	EstimatedBaseFee  string                        `json:"estimatedBaseFee,omitempty"`
	NetworkCongestion *float64                      `json:"networkCongestion,omitempty"`
	Unit              Unit                          `json:"unit,omitempty"`
}

// Estimate returns the estimate of the given level.
func (s *EstimateSource) Estimate(level EstimateLevel) (GasEstimate, bool) {
	if s == nil || s.GasFeeEstimates == nil {
		return GasEstimate{}, false
	}
	estimate, ok := s.GasFeeEstimates[level]
	return estimate, ok
}
