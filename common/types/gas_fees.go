package types

// FeeMode represents how a transaction prices gas.
type FeeMode string

const (
	// FeeModeLegacy prices gas with a single gasPrice.
	FeeModeLegacy FeeMode = "legacy"
	// FeeModeFeeMarket prices gas with maxFeePerGas and maxPriorityFeePerGas.
	FeeModeFeeMarket FeeMode = "fee-market"
)

// String converts FeeMode to string representation.
func (m FeeMode) String() string {
	return string(m)
}

// GasFees holds a set of fee fields as hex or decimal strings.
//
// Fields:
// - GasPrice: the legacy gas price.
// - MaxFeePerGas: the fee-market gas price ceiling.
// - MaxPriorityFeePerGas: the fee-market tip paid to the block producer.
type GasFees struct {
	GasPrice             string `json:"gasPrice,omitempty"`
	MaxFeePerGas         string `json:"maxFeePerGas,omitempty"`
	MaxPriorityFeePerGas string `json:"maxPriorityFeePerGas,omitempty"`
}

// FeeMode returns the fee mode the fields describe.
func (f *GasFees) FeeMode() FeeMode {
	if f.MaxFeePerGas != "" || f.MaxPriorityFeePerGas != "" {
		return FeeModeFeeMarket
	}
	return FeeModeLegacy
}

// IsEmpty reports whether no fee field is set.
func (f *GasFees) IsEmpty() bool {
	return f == nil || (f.GasPrice == "" && f.MaxFeePerGas == "" && f.MaxPriorityFeePerGas == "")
}
