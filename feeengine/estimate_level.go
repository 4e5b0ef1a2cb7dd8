package feeengine

import (
	feeerrors "github.com/ClipFinance/gasfee-lib/common/errors"
	"github.com/ClipFinance/gasfee-lib/common/types"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// FromEstimateLevel computes the fees of a named estimate level.
//
// Speed-up and cancel requests are routed through ForSpeedUpOrCancel so the
// minimum bump is always enforced for replacements.
//
// Parameters:
// - req: the request holding the transaction, gas limit and estimates.
// - level: one of minimum, low, medium or high.
//
// Returns:
// - *types.UpdatePayload: the update to apply to the transaction.
// - error: ErrUnknownEstimateLevel if the level is not in the estimate set.
func (e *Engine) FromEstimateLevel(req *types.FeeRequest, level types.EstimateLevel) (*types.UpdatePayload, error) {
	r, err := e.prepare(req)
	if err != nil {
		return nil, err
	}

	if r.editMode.RequiresBump() {
		return e.replace(r, level)
	}

	fees, err := e.estimateFees(r, level)
	if err != nil {
		return nil, err
	}

	return e.buildPayload(r, fees.encode(), level, level), nil
}

// estimateFees looks up the estimate of a level and converts it to the fee mode
// of the transaction.
func (e *Engine) estimateFees(r *request, level types.EstimateLevel) (*feeSet, error) {
	if !level.IsEstimate() {
		return nil, errors.Wrapf(feeerrors.ErrUnknownEstimateLevel, "%q is not an estimate level", level)
	}

	source := r.estimates
	if source == nil {
		return nil, errors.Wrapf(feeerrors.ErrUnknownEstimateLevel, "no estimates available for level %q", level)
	}

	if source.GasEstimateType.SingleGasPrice() {
		if source.GasPrice == "" {
			return nil, errors.Wrapf(feeerrors.ErrUnknownEstimateLevel, "no %s gas price available for level %q",
				source.GasEstimateType, level)
		}

		gasPrice, err := r.estimateUnit(source.GasPrice)
		if err != nil {
			return nil, errors.Wrap(err, "failed to parse gas price estimate")
		}

		e.logConversion(r, source.GasEstimateType, types.FeeModeLegacy)
		return newFeeSet(r.feeMode, gasPrice, nil, nil)
	}

	estimate, ok := source.Estimate(level)
	if !ok {
		return nil, errors.Wrapf(feeerrors.ErrUnknownEstimateLevel, "level %q not in %s estimates",
			level, source.GasEstimateType)
	}

	fees, err := parseEstimate(estimate, r.feeMode, r.estimateUnit)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %q estimate", level)
	}

	if source.GasEstimateType == types.EstimateTypeFeeMarket {
		e.logConversion(r, source.GasEstimateType, types.FeeModeFeeMarket)
	} else {
		e.logConversion(r, source.GasEstimateType, types.FeeModeLegacy)
	}

	return fees, nil
}

func (e *Engine) logConversion(r *request, estimateType types.EstimateType, sourceMode types.FeeMode) {
	if sourceMode == r.feeMode {
		return
	}

	e.logger.WithFields(logrus.Fields{
		"estimateType": estimateType,
		"txFeeMode":    r.feeMode,
	}).Debug("Converting estimate to transaction fee mode")
}
