package feeengine_test

import (
	"math/big"
	"testing"

	feeerrors "github.com/ClipFinance/gasfee-lib/common/errors"
	"github.com/ClipFinance/gasfee-lib/common/types"
	"github.com/ClipFinance/gasfee-lib/feeengine"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	sender    = "0x1111111111111111111111111111111111111111"
	recipient = "0x2222222222222222222222222222222222222222"
)

func pendingTransfer() *types.PendingTransaction {
	return &types.PendingTransaction{
		TxParams: types.TxParams{
			From:                 sender,
			To:                   recipient,
			Value:                "0xde0b6b3a7640000",
			Data:                 "0xa9059cbb",
			Nonce:                "0x7",
			Gas:                  "0x5208",
			MaxFeePerGas:         "0x5028",
			MaxPriorityFeePerGas: "0x5028",
		},
	}
}

func TestBuildReplacementTx_Cancel(t *testing.T) {
	engine := feeengine.NewEngine(nil, nil)
	pending := pendingTransfer()
	req := &types.FeeRequest{Transaction: pending, EditMode: types.EditModeCancel}

	payload, err := engine.ToMinimum(req)
	require.NoError(t, err)

	tx, err := feeengine.BuildReplacementTx(payload, pending, types.EditModeCancel, big.NewInt(1))
	require.NoError(t, err)

	assert.Equal(t, uint8(ethtypes.DynamicFeeTxType), tx.Type())
	assert.Equal(t, uint64(7), tx.Nonce())
	assert.Equal(t, uint64(21000), tx.Gas())
	assert.Equal(t, int64(0x582c), tx.GasFeeCap().Int64())
	assert.Equal(t, int64(0x582c), tx.GasTipCap().Int64())
	assert.Equal(t, common.HexToAddress(sender), *tx.To())
	assert.Zero(t, tx.Value().Sign())
	assert.Empty(t, tx.Data())
	assert.Equal(t, int64(1), tx.ChainId().Int64())
}

func TestBuildReplacementTx_SpeedUpLegacy(t *testing.T) {
	engine := feeengine.NewEngine(nil, nil)
	pending := pendingTransfer()
	pending.TxParams.MaxFeePerGas = ""
	pending.TxParams.MaxPriorityFeePerGas = ""
	pending.TxParams.GasPrice = "0x5028"
	req := &types.FeeRequest{Transaction: pending, EditMode: types.EditModeSpeedUp}

	payload, err := engine.ToMinimum(req)
	require.NoError(t, err)

	tx, err := feeengine.BuildReplacementTx(payload, pending, types.EditModeSpeedUp, big.NewInt(1))
	require.NoError(t, err)

	assert.Equal(t, uint8(ethtypes.LegacyTxType), tx.Type())
	assert.Equal(t, int64(0x582c), tx.GasPrice().Int64())
	assert.Equal(t, common.HexToAddress(recipient), *tx.To())
	assert.Equal(t, "1000000000000000000", tx.Value().String())
	assert.Equal(t, []byte{0xa9, 0x05, 0x9c, 0xbb}, tx.Data())
}

func TestBuildReplacementTx_Errors(t *testing.T) {
	payload := &types.UpdatePayload{
		TxParams: types.FeeParams{Gas: "0x5208", GasLimit: "0x5208", GasPrice: "0x1"},
	}

	_, err := feeengine.BuildReplacementTx(nil, pendingTransfer(), types.EditModeCancel, big.NewInt(1))
	assert.True(t, errors.Is(err, feeerrors.ErrMissingTransaction))

	noNonce := pendingTransfer()
	noNonce.TxParams.Nonce = ""
	_, err = feeengine.BuildReplacementTx(payload, noNonce, types.EditModeSpeedUp, big.NewInt(1))
	assert.True(t, errors.Is(err, feeerrors.ErrMalformedValue))

	badSender := pendingTransfer()
	badSender.TxParams.From = "not-an-address"
	_, err = feeengine.BuildReplacementTx(payload, badSender, types.EditModeCancel, big.NewInt(1))
	assert.True(t, errors.Is(err, feeerrors.ErrMalformedValue))
}
