package errors

import "github.com/pkg/errors"

var (
	ErrUnknownEstimateLevel  = errors.New("unknown estimate level")
	ErrMissingDappSuggestion = errors.New("transaction has no dapp suggested gas fees")
	ErrInvalidFeeOrdering    = errors.New("max priority fee per gas exceeds max fee per gas")
	ErrUnknownEditMode       = errors.New("unknown edit mode")
	ErrInvalidEditMode       = errors.New("operation not allowed in this edit mode")
	ErrMalformedValue        = errors.New("malformed numeric value")
	ErrFeeOverflow           = errors.New("fee value exceeds 256 bits")
	ErrInvalidGasLimit       = errors.New("invalid gas limit")
	ErrMissingTransaction    = errors.New("transaction not provided")
	ErrChainNotFound         = errors.New("chain not found")
	ErrInvalidConfig         = errors.New("invalid fee configuration")
	ErrChainExists           = errors.New("chain already exists in registry")
)
