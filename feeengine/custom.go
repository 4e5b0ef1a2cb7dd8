package feeengine

import (
	feeerrors "github.com/ClipFinance/gasfee-lib/common/errors"
	"github.com/ClipFinance/gasfee-lib/common/types"
	"github.com/pkg/errors"
)

// Custom computes fees from values entered by the user. Decimal values use the
// estimate unit of the request, 0x-prefixed values are wei.
//
// Parameters:
// - req: the request holding the transaction and gas limit.
// - fees: the gas price, or the max fee and max priority fee.
//
// Returns:
// - *types.UpdatePayload: the update, with user fee level custom.
// - error: ErrInvalidFeeOrdering if the priority fee exceeds the max fee.
func (e *Engine) Custom(req *types.FeeRequest, fees *types.GasFees) (*types.UpdatePayload, error) {
	r, err := e.prepare(req)
	if err != nil {
		return nil, err
	}

	if fees.IsEmpty() {
		return nil, errors.Wrap(feeerrors.ErrMalformedValue, "no custom fees provided")
	}
	r.adoptFeeMode(fees)

	parsed, err := parseFees(fees, r.feeMode, r.estimateUnit)
	if err != nil {
		return nil, errors.Wrap(err, "invalid custom fees")
	}

	return e.buildPayload(r, parsed.encode(), types.LevelCustom, types.LevelCustom), nil
}
