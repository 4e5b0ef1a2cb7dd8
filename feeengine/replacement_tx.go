package feeengine

import (
	"math/big"

	feeerrors "github.com/ClipFinance/gasfee-lib/common/errors"
	"github.com/ClipFinance/gasfee-lib/common/types"
	"github.com/ClipFinance/gasfee-lib/common/units"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"
)

// BuildReplacementTx builds the unsigned transaction that carries a fee update.
// The nonce of the pending transaction is kept so the result replaces it. For a
// cancel the result is a zero value transfer to the sender without data.
//
// Parameters:
// - payload: the fee update computed by the engine.
// - tx: the pending transaction being replaced.
// - editMode: the edit mode the payload was computed for.
// - chainID: the chain ID, used by fee-market transactions.
//
// Returns:
// - *ethtypes.Transaction: the unsigned transaction.
// - error: an error if a transaction field cannot be parsed.
func BuildReplacementTx(payload *types.UpdatePayload, tx *types.PendingTransaction, editMode types.EditMode, chainID *big.Int) (*ethtypes.Transaction, error) {
	if payload == nil || tx == nil {
		return nil, feeerrors.ErrMissingTransaction
	}

	nonce, err := parseNonce(tx.TxParams.Nonce)
	if err != nil {
		return nil, err
	}

	gasLimit, err := units.ParseGasLimit(hexPrefixed(payload.TxParams.GasLimit))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse gas limit")
	}

	to, value, data, err := replacementCall(tx, editMode)
	if err != nil {
		return nil, err
	}

	if payload.TxParams.FeeMode() == types.FeeModeFeeMarket {
		feeCap, err := units.ParseHex(payload.TxParams.MaxFeePerGas)
		if err != nil {
			return nil, errors.Wrap(err, "failed to parse max fee per gas")
		}

		tipCap, err := units.ParseHex(payload.TxParams.MaxPriorityFeePerGas)
		if err != nil {
			return nil, errors.Wrap(err, "failed to parse max priority fee per gas")
		}

		return ethtypes.NewTx(&ethtypes.DynamicFeeTx{
			ChainID:    chainID,
			Nonce:      nonce,
			GasFeeCap:  feeCap,
			GasTipCap:  tipCap,
			Gas:        gasLimit,
			To:         to,
			Value:      value,
			Data:       data,
			AccessList: nil,
		}), nil
	}

	gasPrice, err := units.ParseHex(payload.TxParams.GasPrice)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse gas price")
	}

	return ethtypes.NewTx(&ethtypes.LegacyTx{
		Nonce:    nonce,
		GasPrice: gasPrice,
		Gas:      gasLimit,
		To:       to,
		Value:    value,
		Data:     data,
	}), nil
}

// replacementCall returns the recipient, value and data of the replacement.
func replacementCall(tx *types.PendingTransaction, editMode types.EditMode) (*common.Address, *big.Int, []byte, error) {
	params := tx.TxParams

	if editMode == types.EditModeCancel {
		if !common.IsHexAddress(params.From) {
			return nil, nil, nil, errors.Wrapf(feeerrors.ErrMalformedValue, "invalid sender address %q", params.From)
		}
		from := common.HexToAddress(params.From)
		return &from, big.NewInt(0), nil, nil
	}

	var to *common.Address
	if params.To != "" {
		if !common.IsHexAddress(params.To) {
			return nil, nil, nil, errors.Wrapf(feeerrors.ErrMalformedValue, "invalid recipient address %q", params.To)
		}
		addr := common.HexToAddress(params.To)
		to = &addr
	}

	value := big.NewInt(0)
	if params.Value != "" {
		parsed, err := units.ParseHex(params.Value)
		if err != nil {
			return nil, nil, nil, errors.Wrap(err, "failed to parse value")
		}
		value = parsed
	}

	var data []byte
	if params.Data != "" && params.Data != "0x" {
		decoded, err := hexutil.Decode(params.Data)
		if err != nil {
			return nil, nil, nil, errors.Wrapf(feeerrors.ErrMalformedValue, "invalid data: %v", err)
		}
		data = decoded
	}

	return to, value, data, nil
}

func parseNonce(s string) (uint64, error) {
	if s == "" {
		return 0, errors.Wrap(feeerrors.ErrMalformedValue, "nonce not provided")
	}

	nonce, err := units.ParseHex(s)
	if err != nil {
		return 0, errors.Wrap(err, "failed to parse nonce")
	}

	if !nonce.IsUint64() {
		return 0, errors.Wrapf(feeerrors.ErrMalformedValue, "nonce %s out of range", nonce)
	}

	return nonce.Uint64(), nil
}
