package feeengine

import (
	"math/big"

	feeerrors "github.com/ClipFinance/gasfee-lib/common/errors"
	"github.com/ClipFinance/gasfee-lib/common/types"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ForSpeedUpOrCancel computes replacement fees for a speed-up or cancel.
// Each fee field is at least the current fee raised by the minimum bump; when the
// estimate of the level is below that floor the floor is used and the user fee
// level becomes custom.
//
// Parameters:
// - req: the request, with edit mode speed-up or cancel.
// - level: the estimate level selected by the user.
//
// Returns:
// - *types.UpdatePayload: the update to apply to the transaction.
// - error: ErrInvalidEditMode for other edit modes, or an estimate lookup error.
func (e *Engine) ForSpeedUpOrCancel(req *types.FeeRequest, level types.EstimateLevel) (*types.UpdatePayload, error) {
	r, err := e.prepare(req)
	if err != nil {
		return nil, err
	}

	if !r.editMode.RequiresBump() {
		return nil, errors.Wrapf(feeerrors.ErrInvalidEditMode, "replacement fees need speed-up or cancel, got %s", r.editMode)
	}

	return e.replace(r, level)
}

// ToMinimum computes the smallest fees accepted for a replacement: every current
// fee field raised by the minimum bump.
//
// Parameters:
// - req: the request holding the transaction and gas limit.
//
// Returns:
// - *types.UpdatePayload: the update, with user fee level minimum.
// - error: an error if the current fees cannot be parsed.
func (e *Engine) ToMinimum(req *types.FeeRequest) (*types.UpdatePayload, error) {
	r, err := e.prepare(req)
	if err != nil {
		return nil, err
	}

	floor, err := e.minimumFees(r)
	if err != nil {
		return nil, err
	}

	return e.buildPayload(r, floor.encode(), types.LevelMinimum, types.LevelMinimum), nil
}

func (e *Engine) replace(r *request, level types.EstimateLevel) (*types.UpdatePayload, error) {
	floor, err := e.minimumFees(r)
	if err != nil {
		return nil, err
	}

	if level == types.LevelMinimum {
		if _, ok := r.estimates.Estimate(level); !ok {
			return e.buildPayload(r, floor.encode(), types.LevelMinimum, types.LevelMinimum), nil
		}
	}

	candidate, err := e.estimateFees(r, level)
	if err != nil {
		return nil, err
	}

	fees, raised, err := applyFloor(candidate, floor)
	if err != nil {
		return nil, err
	}

	if raised {
		e.logger.WithFields(logrus.Fields{
			"level":    level,
			"editMode": r.editMode,
		}).Debug("Estimate below minimum replacement fee, using minimum")
		return e.buildPayload(r, fees.encode(), types.LevelCustom, types.LevelCustom), nil
	}

	return e.buildPayload(r, fees.encode(), level, level), nil
}

// minimumFees returns the current fees of the transaction raised by the minimum bump.
func (e *Engine) minimumFees(r *request) (*feeSet, error) {
	current, err := parseFees(r.tx.CurrentFees(), r.feeMode, hexQuantity)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse current fees")
	}

	floor := &feeSet{mode: current.mode}
	if current.mode == types.FeeModeFeeMarket {
		floor.maxFeePerGas = bump(current.maxFeePerGas, e.config.MinBumpPercent)
		floor.maxPriorityFeePerGas = bump(current.maxPriorityFeePerGas, e.config.MinBumpPercent)
	} else {
		floor.gasPrice = bump(current.gasPrice, e.config.MinBumpPercent)
	}

	if err := floor.validate(); err != nil {
		return nil, err
	}

	return floor, nil
}

// bump returns ceil(value * (100 + percent) / 100).
func bump(value *big.Int, percent uint64) *big.Int {
	scaled := new(big.Int).Mul(value, new(big.Int).SetUint64(100+percent))
	quotient, remainder := new(big.Int).QuoRem(scaled, big.NewInt(100), new(big.Int))
	if remainder.Sign() != 0 {
		quotient.Add(quotient, big.NewInt(1))
	}
	return quotient
}

// applyFloor raises every field of candidate that is below the floor.
// Both sets must have the same fee mode.
func applyFloor(candidate, floor *feeSet) (*feeSet, bool, error) {
	raised := false
	pick := func(value, min *big.Int) *big.Int {
		if value.Cmp(min) < 0 {
			raised = true
			return new(big.Int).Set(min)
		}
		return value
	}

	fees := &feeSet{mode: candidate.mode}
	if candidate.mode == types.FeeModeFeeMarket {
		fees.maxFeePerGas = pick(candidate.maxFeePerGas, floor.maxFeePerGas)
		fees.maxPriorityFeePerGas = pick(candidate.maxPriorityFeePerGas, floor.maxPriorityFeePerGas)
	} else {
		fees.gasPrice = pick(candidate.gasPrice, floor.gasPrice)
	}

	if err := fees.validate(); err != nil {
		return nil, false, err
	}

	return fees, raised, nil
}
