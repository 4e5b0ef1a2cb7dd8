package feeengine

import (
	"math/big"

	feeerrors "github.com/ClipFinance/gasfee-lib/common/errors"
	"github.com/ClipFinance/gasfee-lib/common/types"
	"github.com/ClipFinance/gasfee-lib/common/units"
	"github.com/pkg/errors"
)

// feeSet holds parsed fee fields of one fee mode. Only the fields of the mode are set.
type feeSet struct {
	mode                 types.FeeMode
	gasPrice             *big.Int
	maxFeePerGas         *big.Int
	maxPriorityFeePerGas *big.Int
}

// newFeeSet builds a fee set of the given mode from a legacy price or a fee-market
// pair, converting between modes when the source uses the other one.
//
// A legacy gas price used for a fee-market transaction fills both fee-market fields.
// A fee-market pair used for a legacy transaction prices gas at the max fee.
func newFeeSet(mode types.FeeMode, gasPrice, maxFee, maxPriority *big.Int) (*feeSet, error) {
	set := &feeSet{mode: mode}

	switch mode {
	case types.FeeModeFeeMarket:
		switch {
		case maxFee != nil && maxPriority != nil:
			set.maxFeePerGas, set.maxPriorityFeePerGas = maxFee, maxPriority
		case gasPrice != nil:
			set.maxFeePerGas, set.maxPriorityFeePerGas = new(big.Int).Set(gasPrice), new(big.Int).Set(gasPrice)
		default:
			return nil, errors.Wrap(feeerrors.ErrMalformedValue, "missing max fee per gas or max priority fee per gas")
		}
	default:
		switch {
		case gasPrice != nil:
			set.gasPrice = gasPrice
		case maxFee != nil:
			set.gasPrice = new(big.Int).Set(maxFee)
		default:
			return nil, errors.Wrap(feeerrors.ErrMalformedValue, "missing gas price")
		}
	}

	if err := set.validate(); err != nil {
		return nil, err
	}

	return set, nil
}

// parseFees parses a set of fee strings into a fee set of the given mode.
//
// Parameters:
// - fees: the fee strings.
// - mode: the fee mode of the transaction.
// - parse: the parser of a single quantity.
//
// Returns:
// - *feeSet: the parsed fees.
// - error: an error if a value is malformed or the fees are inconsistent.
func parseFees(fees *types.GasFees, mode types.FeeMode, parse quantityParser) (*feeSet, error) {
	gasPrice, err := parse.optional(fees.GasPrice)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse gas price")
	}

	maxFee, err := parse.optional(fees.MaxFeePerGas)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse max fee per gas")
	}

	maxPriority, err := parse.optional(fees.MaxPriorityFeePerGas)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse max priority fee per gas")
	}

	if (maxFee == nil) != (maxPriority == nil) && gasPrice == nil {
		return nil, errors.Wrap(feeerrors.ErrMalformedValue, "fee-market fees need both max fee and max priority fee")
	}

	if maxFee != nil && maxPriority != nil && maxPriority.Cmp(maxFee) > 0 {
		return nil, errors.Wrapf(feeerrors.ErrInvalidFeeOrdering, "max fee %s, max priority fee %s", maxFee, maxPriority)
	}

	return newFeeSet(mode, gasPrice, maxFee, maxPriority)
}

// parseEstimate parses the estimate of a level into a fee set of the given mode.
func parseEstimate(estimate types.GasEstimate, mode types.FeeMode, parse quantityParser) (*feeSet, error) {
	return parseFees(&types.GasFees{
		GasPrice:             estimate.GasPrice,
		MaxFeePerGas:         estimate.SuggestedMaxFeePerGas,
		MaxPriorityFeePerGas: estimate.SuggestedMaxPriorityFeePerGas,
	}, mode, parse)
}

// quantityParser parses a single fee quantity into wei.
type quantityParser func(string) (*big.Int, error)

// hexQuantity parses transaction fields, which are always hex wei.
var hexQuantity quantityParser = units.ParseHex

// unitQuantity parses estimate and user supplied values denominated in unit.
func unitQuantity(unit types.Unit) quantityParser {
	return func(s string) (*big.Int, error) {
		return units.ParseWei(s, unit)
	}
}

func (p quantityParser) optional(s string) (*big.Int, error) {
	if s == "" {
		return nil, nil
	}
	return p(s)
}

// validate checks the 256 bit bound of every field and the fee-market ordering.
func (s *feeSet) validate() error {
	for _, value := range []*big.Int{s.gasPrice, s.maxFeePerGas, s.maxPriorityFeePerGas} {
		if value == nil {
			continue
		}
		if err := units.CheckUint256(value); err != nil {
			return err
		}
	}

	if s.mode == types.FeeModeFeeMarket && s.maxPriorityFeePerGas.Cmp(s.maxFeePerGas) > 0 {
		return errors.Wrapf(feeerrors.ErrInvalidFeeOrdering, "max fee %s, max priority fee %s",
			s.maxFeePerGas, s.maxPriorityFeePerGas)
	}

	return nil
}

// encode serializes the fee set as 0x-prefixed hex strings.
func (s *feeSet) encode() *types.GasFees {
	if s.mode == types.FeeModeFeeMarket {
		return &types.GasFees{
			MaxFeePerGas:         units.EncodeHex(s.maxFeePerGas),
			MaxPriorityFeePerGas: units.EncodeHex(s.maxPriorityFeePerGas),
		}
	}
	return &types.GasFees{GasPrice: units.EncodeHex(s.gasPrice)}
}
