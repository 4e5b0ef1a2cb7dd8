package types

import (
	feeerrors "github.com/ClipFinance/gasfee-lib/common/errors"
	"github.com/pkg/errors"
)

// EstimateLevel represents a named fee aggressiveness tier or a special fee source.
type EstimateLevel string

const (
	// LevelMinimum is the smallest fee accepted for a replacement transaction.
	LevelMinimum EstimateLevel = "minimum"
	// LevelLow is the low priority estimate.
	LevelLow EstimateLevel = "low"
	// LevelMedium is the medium priority estimate.
	LevelMedium EstimateLevel = "medium"
	// LevelHigh is the high priority estimate.
	LevelHigh EstimateLevel = "high"
	// LevelCustom marks fees entered by the user.
	LevelCustom EstimateLevel = "custom"
	// LevelDappSuggested marks fees proposed by the requesting dapp.
	LevelDappSuggested EstimateLevel = "dappSuggested"
)

// String converts EstimateLevel to string representation.
func (l EstimateLevel) String() string {
	return string(l)
}

// IsEstimate reports whether the level is backed by an entry of an estimate source.
func (l EstimateLevel) IsEstimate() bool {
	switch l {
	case LevelMinimum, LevelLow, LevelMedium, LevelHigh:
		return true
	default:
		return false
	}
}

// ParseEstimateLevel converts string to EstimateLevel representation.
//
// Parameters:
// - s: the level name as used by the wallet store.
//
// Returns:
// - EstimateLevel: the parsed level.
// - error: ErrUnknownEstimateLevel if the name is not a known level.
func ParseEstimateLevel(s string) (EstimateLevel, error) {
	switch l := EstimateLevel(s); l {
	case LevelMinimum, LevelLow, LevelMedium, LevelHigh, LevelCustom, LevelDappSuggested:
		return l, nil
	default:
		return "", errors.Wrapf(feeerrors.ErrUnknownEstimateLevel, "level %q", s)
	}
}

// EstimateType represents the kind of fee estimate a source provides.
type EstimateType string

const (
	// EstimateTypeFeeMarket provides base/priority fee suggestions per level.
	EstimateTypeFeeMarket EstimateType = "fee-market"
	// EstimateTypeLegacy provides a gas price per level.
	EstimateTypeLegacy EstimateType = "legacy"
	// EstimateTypeEthGasPrice provides a single gas price from eth_gasPrice.
	EstimateTypeEthGasPrice EstimateType = "eth_gasPrice"
	// EstimateTypeNone is used when no estimate could be fetched.
	EstimateTypeNone EstimateType = "none"
)

// String converts EstimateType to string representation.
func (t EstimateType) String() string {
	return string(t)
}

// SingleGasPrice reports whether the source carries one gas price instead of levels.
func (t EstimateType) SingleGasPrice() bool {
	return t == EstimateTypeEthGasPrice || t == EstimateTypeNone
}

// EditMode determines how a pending transaction is being edited.
type EditMode string

const (
	// EditModeModifyInPlace edits a transaction that was not submitted yet.
	EditModeModifyInPlace EditMode = "modify-in-place"
	// EditModeSpeedUp resubmits a pending transaction with a higher fee.
	EditModeSpeedUp EditMode = "speed-up"
	// EditModeCancel resubmits a pending transaction as a zero value self transfer.
	EditModeCancel EditMode = "cancel"
	// EditModeSwaps edits the fees of a swap quote.
	EditModeSwaps EditMode = "swaps"
)

// String converts EditMode to string representation.
func (m EditMode) String() string {
	return string(m)
}

// RequiresBump reports whether the mode replaces a broadcast transaction, in which
// case the new fee must exceed the current fee by the minimum bump.
func (m EditMode) RequiresBump() bool {
	return m == EditModeSpeedUp || m == EditModeCancel
}

// ParseEditMode converts string to EditMode representation.
func ParseEditMode(s string) (EditMode, error) {
	switch m := EditMode(s); m {
	case EditModeModifyInPlace, EditModeSpeedUp, EditModeCancel, EditModeSwaps:
		return m, nil
	default:
		return "", errors.Wrapf(feeerrors.ErrUnknownEditMode, "mode %q", s)
	}
}
