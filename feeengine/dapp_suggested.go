package feeengine

import (
	feeerrors "github.com/ClipFinance/gasfee-lib/common/errors"
	"github.com/ClipFinance/gasfee-lib/common/types"
	"github.com/pkg/errors"
)

// FromDappSuggested copies the fees suggested by the requesting dapp into the
// transaction and keeps the suggestion in the payload.
//
// For speed-up and cancel the suggestion is still raised to the minimum bump, in
// which case the user fee level becomes custom.
//
// Parameters:
// - req: the request holding a transaction with dapp suggested fees.
//
// Returns:
// - *types.UpdatePayload: the update to apply to the transaction.
// - error: ErrMissingDappSuggestion if the transaction has no suggestion.
func (e *Engine) FromDappSuggested(req *types.FeeRequest) (*types.UpdatePayload, error) {
	r, err := e.prepare(req)
	if err != nil {
		return nil, err
	}

	suggested := r.tx.DappSuggestedGasFees
	if suggested.IsEmpty() {
		return nil, feeerrors.ErrMissingDappSuggestion
	}
	r.adoptFeeMode(suggested)

	fees, err := parseFees(suggested, r.feeMode, hexQuantity)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse dapp suggested gas fees")
	}

	level := types.LevelDappSuggested
	encoded := verbatimFees(suggested, fees)

	if r.editMode.RequiresBump() {
		floor, err := e.minimumFees(r)
		if err != nil {
			return nil, err
		}

		raisedFees, raised, err := applyFloor(fees, floor)
		if err != nil {
			return nil, err
		}
		if raised {
			level = types.LevelCustom
			encoded = raisedFees.encode()
		}
	}

	payload := e.buildPayload(r, encoded, level, level)
	preserved := *suggested
	payload.DappSuggestedGasFees = &preserved

	return payload, nil
}

// verbatimFees returns the suggested strings for the fields of the parsed mode,
// 0x-prefixed. A field converted from the other fee mode is taken from its source
// string.
func verbatimFees(suggested *types.GasFees, fees *feeSet) *types.GasFees {
	if fees.mode == types.FeeModeFeeMarket {
		if suggested.MaxFeePerGas != "" && suggested.MaxPriorityFeePerGas != "" {
			return &types.GasFees{
				MaxFeePerGas:         hexPrefixed(suggested.MaxFeePerGas),
				MaxPriorityFeePerGas: hexPrefixed(suggested.MaxPriorityFeePerGas),
			}
		}
		return &types.GasFees{
			MaxFeePerGas:         hexPrefixed(suggested.GasPrice),
			MaxPriorityFeePerGas: hexPrefixed(suggested.GasPrice),
		}
	}

	if suggested.GasPrice != "" {
		return &types.GasFees{GasPrice: hexPrefixed(suggested.GasPrice)}
	}
	return &types.GasFees{GasPrice: hexPrefixed(suggested.MaxFeePerGas)}
}
