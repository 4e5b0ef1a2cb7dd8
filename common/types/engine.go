package types

// FeeEngine computes fee updates for pending transactions.
type FeeEngine interface {
	// FromEstimateLevel computes fees from a named estimate level.
	FromEstimateLevel(req *FeeRequest, level EstimateLevel) (*UpdatePayload, error)

	// FromDappSuggested copies the fees suggested by the requesting dapp.
	FromDappSuggested(req *FeeRequest) (*UpdatePayload, error)

	// ForSpeedUpOrCancel computes replacement fees that outbid the current fees.
	ForSpeedUpOrCancel(req *FeeRequest, level EstimateLevel) (*UpdatePayload, error)

	// ToMinimum computes the smallest fees accepted for a replacement.
	ToMinimum(req *FeeRequest) (*UpdatePayload, error)

	// Custom computes fees from values entered by the user.
	Custom(req *FeeRequest, fees *GasFees) (*UpdatePayload, error)
}

// FeeRequest holds the inputs shared by all engine operations.
//
// Fields:
// - Transaction: the transaction being edited.
// - EditMode: how the transaction is being edited.
// - GasLimit: the configured gas limit, decimal or 0x-prefixed hex.
// - Estimates: the current fee estimates.
// - DefaultLevel: the level suggested to the user, reported as estimateSuggested.
type FeeRequest struct {
	Transaction  *PendingTransaction `json:"transaction"`
	EditMode     EditMode            `json:"editMode"`
	GasLimit     string              `json:"gasLimit"`
	Estimates    *EstimateSource     `json:"estimates,omitempty"`
	DefaultLevel EstimateLevel       `json:"defaultLevel,omitempty"`
}

// ChainRegistry manages the fee engines of multiple chains.
type ChainRegistry interface {
	// Add adds a new chain to the registry.
	Add(config *ChainConfig) error

	// Get retrieves the engine of a chain by its chain ID.
	Get(chainID uint64) (FeeEngine, bool)

	// Remove removes a chain from the registry by its chain ID.
	Remove(chainID uint64)

	// ChainIDs returns the registered chain IDs in ascending order.
	ChainIDs() []uint64
}
