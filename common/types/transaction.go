package types

// TxParams holds the on-chain bound parameters of a pending transaction.
// Quantities are hex strings as stored by the wallet.
type TxParams struct {
	From                 string `json:"from,omitempty"`
	To                   string `json:"to,omitempty"`
	Value                string `json:"value,omitempty"`
	Data                 string `json:"data,omitempty"`
	Nonce                string `json:"nonce,omitempty"`
	Gas                  string `json:"gas,omitempty"`
	GasLimit             string `json:"gasLimit,omitempty"`
	GasPrice             string `json:"gasPrice,omitempty"`
	MaxFeePerGas         string `json:"maxFeePerGas,omitempty"`
	MaxPriorityFeePerGas string `json:"maxPriorityFeePerGas,omitempty"`
}

// Fees returns the fee fields of the parameters.
func (p *TxParams) Fees() *GasFees {
	return &GasFees{
		GasPrice:             p.GasPrice,
		MaxFeePerGas:         p.MaxFeePerGas,
		MaxPriorityFeePerGas: p.MaxPriorityFeePerGas,
	}
}

// FeeMode returns the fee mode of the transaction.
func (p *TxParams) FeeMode() FeeMode {
	return p.Fees().FeeMode()
}

// PendingTransaction represents a proposed or broadcast transaction whose fees
// are being edited.
//
// Fields:
// - TxParams: the current transaction parameters.
// - UserFeeLevel: the level that produced the current fees.
// - DappSuggestedGasFees: fees proposed by the requesting dapp, if any.
// - PreviousGas: fees of the transaction being replaced, if this is a replacement.
type PendingTransaction struct {
	TxParams             TxParams      `json:"txParams"`
	UserFeeLevel         EstimateLevel `json:"userFeeLevel,omitempty"`
	DappSuggestedGasFees *GasFees      `json:"dappSuggestedGasFees,omitempty"`
	PreviousGas          *GasFees      `json:"previousGas,omitempty"`
}

// CurrentFees returns the fees a replacement must outbid.
func (t *PendingTransaction) CurrentFees() *GasFees {
	if !t.PreviousGas.IsEmpty() && t.PreviousGas.FeeMode() == t.TxParams.FeeMode() {
		return t.PreviousGas
	}
	return t.TxParams.Fees()
}

// FeeParams holds the parameters of an update payload.
// All quantities are 0x-prefixed hex.
type FeeParams struct {
	Gas                  string        `json:"gas"`
	GasLimit             string        `json:"gasLimit"`
	GasPrice             string        `json:"gasPrice,omitempty"`
	MaxFeePerGas         string        `json:"maxFeePerGas,omitempty"`
	MaxPriorityFeePerGas string        `json:"maxPriorityFeePerGas,omitempty"`
	EstimateUsed         EstimateLevel `json:"estimateUsed,omitempty"`
	EstimateSuggested    EstimateLevel `json:"estimateSuggested,omitempty"`
}

// FeeMode returns the fee mode of the parameters.
func (p *FeeParams) FeeMode() FeeMode {
	if p.MaxFeePerGas != "" {
		return FeeModeFeeMarket
	}
	return FeeModeLegacy
}

// UpdatePayload is the update applied to a pending transaction by the wallet store.
type UpdatePayload struct {
	TxParams             FeeParams     `json:"txParams"`
	UserFeeLevel         EstimateLevel `json:"userFeeLevel"`
	DappSuggestedGasFees *GasFees      `json:"dappSuggestedGasFees,omitempty"`
}
