package units

import (
	"math/big"
	"strings"

	feeerrors "github.com/ClipFinance/gasfee-lib/common/errors"
	"github.com/ClipFinance/gasfee-lib/common/types"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/params"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// maxUint256Digits is the number of decimal digits of 2^256-1.
const maxUint256Digits = 78

// ParseHex parses a hex quantity as stored in transaction parameters.
// The 0x prefix is optional.
//
// Parameters:
// - s: the hex string.
//
// Returns:
// - *big.Int: the parsed value.
// - error: ErrMalformedValue if the string is empty, negative or not hex.
func ParseHex(s string) (*big.Int, error) {
	digits := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if digits == "" {
		return nil, errors.Wrapf(feeerrors.ErrMalformedValue, "empty hex quantity %q", s)
	}

	value, ok := new(big.Int).SetString(digits, 16)
	if !ok || value.Sign() < 0 {
		return nil, errors.Wrapf(feeerrors.ErrMalformedValue, "invalid hex quantity %q", s)
	}

	return value, nil
}

// ParseWei parses an estimate value into wei. 0x-prefixed strings are hex wei,
// other strings are decimal amounts in the given unit.
//
// Parameters:
// - s: the value to parse.
// - unit: the denomination of decimal strings.
//
// Returns:
// - *big.Int: the value in wei.
// - error: ErrMalformedValue if the value is not a non-negative integer amount of wei,
//   ErrFeeOverflow if it does not fit in 256 bits.
func ParseWei(s string, unit types.Unit) (*big.Int, error) {
	if hasHexPrefix(s) {
		return ParseHex(s)
	}

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return nil, errors.Wrapf(feeerrors.ErrMalformedValue, "invalid decimal quantity %q", s)
	}

	if unit == types.UnitGwei {
		amount = amount.Shift(9)
	}

	if amount.IsNegative() {
		return nil, errors.Wrapf(feeerrors.ErrMalformedValue, "negative quantity %q", s)
	}
	if amount.IsZero() {
		return new(big.Int), nil
	}

	// Bound the magnitude before the exponent is expanded.
	integerDigits := int64(amount.NumDigits()) + int64(amount.Exponent())
	if integerDigits > maxUint256Digits {
		return nil, errors.Wrapf(feeerrors.ErrFeeOverflow, "quantity %q", s)
	}

	if integerDigits <= 0 || !amount.IsInteger() {
		return nil, errors.Wrapf(feeerrors.ErrMalformedValue, "quantity %q is not a whole amount of wei", s)
	}

	value := amount.BigInt()
	if err := CheckUint256(value); err != nil {
		return nil, err
	}

	return value, nil
}

// ParseGasLimit parses a gas limit given as decimal or 0x-prefixed hex.
func ParseGasLimit(s string) (uint64, error) {
	var (
		value *big.Int
		err   error
	)
	if hasHexPrefix(s) {
		value, err = ParseHex(s)
	} else {
		var ok bool
		value, ok = new(big.Int).SetString(s, 10)
		if !ok {
			err = errors.Wrapf(feeerrors.ErrMalformedValue, "invalid gas limit %q", s)
		}
	}
	if err != nil {
		return 0, err
	}

	if value.Sign() < 0 || !value.IsUint64() {
		return 0, errors.Wrapf(feeerrors.ErrInvalidGasLimit, "gas limit %q out of range", s)
	}

	return value.Uint64(), nil
}

// CheckUint256 returns ErrFeeOverflow if the value does not fit in a 256 bit word.
func CheckUint256(value *big.Int) error {
	if value.Sign() < 0 {
		return errors.Wrapf(feeerrors.ErrMalformedValue, "negative quantity %s", value)
	}
	if _, overflow := uint256.FromBig(value); overflow {
		return errors.Wrapf(feeerrors.ErrFeeOverflow, "quantity %s", value)
	}
	return nil
}

// EncodeHex encodes a quantity as 0x-prefixed hex without leading zeros.
func EncodeHex(value *big.Int) string {
	return hexutil.EncodeBig(value)
}

// EncodeGas encodes a gas amount as 0x-prefixed hex.
func EncodeGas(gas uint64) string {
	return hexutil.EncodeUint64(gas)
}

// WeiToGwei converts wei to gwei.
func WeiToGwei(wei *big.Int) decimal.Decimal {
	return decimal.NewFromBigInt(wei, 0).Div(decimal.NewFromInt(params.GWei))
}

func hasHexPrefix(s string) bool {
	return strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X")
}
