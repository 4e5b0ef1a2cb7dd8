package feeengine

import (
	"io"

	feeerrors "github.com/ClipFinance/gasfee-lib/common/errors"
	"github.com/ClipFinance/gasfee-lib/common/types"
	"github.com/ClipFinance/gasfee-lib/common/units"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var _ types.FeeEngine = (*Engine)(nil)

// Engine computes fee updates for pending transactions.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	config types.FeeConfig // Fee policy with defaults applied.
	logger *logrus.Logger  // Logger for logging events.
}

// NewEngine creates a new fee engine.
//
// Parameters:
// - config: the fee policy, nil for defaults.
// - logger: the logger for logging events, nil to discard logs.
//
// Returns:
// - *Engine: a new engine instance.
func NewEngine(config *types.FeeConfig, logger *logrus.Logger) *Engine {
	var cfg types.FeeConfig
	if config != nil {
		cfg = *config
	}

	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}

	return &Engine{
		config: cfg.WithDefaults(),
		logger: logger,
	}
}

// Config returns the fee policy of the engine.
func (e *Engine) Config() types.FeeConfig {
	return e.config
}

// request is a validated FeeRequest.
type request struct {
	tx           *types.PendingTransaction
	editMode     types.EditMode
	feeMode      types.FeeMode
	gasLimit     uint64
	estimates    *types.EstimateSource
	estimateUnit quantityParser
	defaultLevel types.EstimateLevel
}

// prepare validates a request and resolves its fee mode, gas limit and units.
//
// Parameters:
// - req: the request to validate.
//
// Returns:
// - *request: the validated request.
// - error: an error if the transaction, edit mode or gas limit is invalid.
func (e *Engine) prepare(req *types.FeeRequest) (*request, error) {
	if req == nil || req.Transaction == nil {
		return nil, feeerrors.ErrMissingTransaction
	}

	editMode := req.EditMode
	if editMode == "" {
		editMode = types.EditModeModifyInPlace
	}
	if _, err := types.ParseEditMode(editMode.String()); err != nil {
		return nil, err
	}

	gasLimit, err := e.gasLimit(req)
	if err != nil {
		return nil, err
	}

	unit := e.config.EstimateUnit
	if req.Estimates != nil && req.Estimates.Unit != "" {
		unit = req.Estimates.Unit
	}

	return &request{
		tx:           req.Transaction,
		editMode:     editMode,
		feeMode:      resolveFeeMode(req.Transaction, req.Estimates),
		gasLimit:     gasLimit,
		estimates:    req.Estimates,
		estimateUnit: unitQuantity(unit),
		defaultLevel: req.DefaultLevel,
	}, nil
}

// gasLimit returns the requested gas limit, falling back to the transaction's own.
func (e *Engine) gasLimit(req *types.FeeRequest) (uint64, error) {
	var (
		gas uint64
		err error
	)

	switch {
	case req.GasLimit != "":
		gas, err = units.ParseGasLimit(req.GasLimit)
	case req.Transaction.TxParams.GasLimit != "":
		gas, err = units.ParseGasLimit(hexPrefixed(req.Transaction.TxParams.GasLimit))
	case req.Transaction.TxParams.Gas != "":
		gas, err = units.ParseGasLimit(hexPrefixed(req.Transaction.TxParams.Gas))
	default:
		return 0, errors.Wrap(feeerrors.ErrInvalidGasLimit, "gas limit not provided")
	}
	if err != nil {
		return 0, err
	}

	if gas == 0 || gas > e.config.MaxGasLimit {
		return 0, errors.Wrapf(feeerrors.ErrInvalidGasLimit, "gas limit %d outside (0, %d]", gas, e.config.MaxGasLimit)
	}

	return gas, nil
}

// resolveFeeMode returns the fee mode of the transaction. A transaction without any
// fee field takes the mode of the estimate source until fees are applied to it.
func resolveFeeMode(tx *types.PendingTransaction, estimates *types.EstimateSource) types.FeeMode {
	if !tx.TxParams.Fees().IsEmpty() {
		return tx.TxParams.FeeMode()
	}
	if estimates != nil && estimates.GasEstimateType == types.EstimateTypeFeeMarket {
		return types.FeeModeFeeMarket
	}
	return types.FeeModeLegacy
}

// adoptFeeMode gives a transaction without fee fields the mode of the fees applied
// to it.
func (r *request) adoptFeeMode(applied *types.GasFees) {
	if r.tx.TxParams.Fees().IsEmpty() && !applied.IsEmpty() {
		r.feeMode = applied.FeeMode()
	}
}

// buildPayload assembles the update payload for the computed fees.
func (e *Engine) buildPayload(r *request, fees *types.GasFees, userFeeLevel, estimateUsed types.EstimateLevel) *types.UpdatePayload {
	gas := units.EncodeGas(r.gasLimit)

	return &types.UpdatePayload{
		TxParams: types.FeeParams{
			Gas:                  gas,
			GasLimit:             gas,
			GasPrice:             fees.GasPrice,
			MaxFeePerGas:         fees.MaxFeePerGas,
			MaxPriorityFeePerGas: fees.MaxPriorityFeePerGas,
			EstimateUsed:         estimateUsed,
			EstimateSuggested:    r.defaultLevel,
		},
		UserFeeLevel: userFeeLevel,
	}
}

func hexPrefixed(s string) string {
	if len(s) >= 2 && (s[:2] == "0x" || s[:2] == "0X") {
		return "0x" + s[2:]
	}
	return "0x" + s
}
