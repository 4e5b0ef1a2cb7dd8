package feeconfig

import (
	_ "embed"
	"os"

	"dario.cat/mergo"
	feeerrors "github.com/ClipFinance/gasfee-lib/common/errors"
	"github.com/ClipFinance/gasfee-lib/common/types"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// maxBumpPercent bounds the configurable replacement increase.
const maxBumpPercent = 1000

// DefaultConfigYml is used when no config file is given.
//
//go:embed default.config.yml
var DefaultConfigYml string

// ReadConfig reads the config file at path, applies environment overrides and
// fills every chain's fee policy from the defaults.
//
// Parameters:
// - path: the yaml config file, empty for the embedded default.
//
// Returns:
// - *types.Config: the resolved configuration.
// - error: an error if the file cannot be read or the configuration is invalid.
func ReadConfig(path string) (*types.Config, error) {
	cfg := &types.Config{}

	if err := readConfigFile(cfg, path); err != nil {
		return nil, err
	}

	if err := envconfig.Process("", cfg); err != nil {
		return nil, errors.Wrap(err, "failed to read config from environment")
	}

	if err := resolve(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ChainFees returns the fee policy of a chain, with unset fields taken from the
// config defaults.
func ChainFees(cfg *types.Config, chain *types.ChainConfig) (types.FeeConfig, error) {
	fees := chain.Fees
	if err := mergo.Merge(&fees, cfg.Defaults); err != nil {
		return types.FeeConfig{}, errors.Wrapf(err, "failed to merge fees of chain %d", chain.ChainID)
	}
	return fees.WithDefaults(), nil
}

// NewLogger creates a logger at the configured level.
func NewLogger(cfg *types.Config) (*logrus.Logger, error) {
	logger := logrus.New()
	if cfg.LogLevel == "" {
		return logger, nil
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, errors.Wrapf(feeerrors.ErrInvalidConfig, "log level %q", cfg.LogLevel)
	}
	logger.SetLevel(level)

	return logger, nil
}

func readConfigFile(cfg *types.Config, path string) error {
	if path == "" {
		if err := yaml.Unmarshal([]byte(DefaultConfigYml), cfg); err != nil {
			return errors.Wrap(err, "failed to decode default config")
		}
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "failed to open config file %v", path)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return errors.Wrapf(err, "failed to decode config file %v", path)
	}

	return nil
}

// resolve applies defaults and validates the configuration.
func resolve(cfg *types.Config) error {
	cfg.Defaults = cfg.Defaults.WithDefaults()
	if err := validateFees(cfg.Defaults); err != nil {
		return errors.Wrap(err, "defaults")
	}

	seen := make(map[uint64]struct{}, len(cfg.Chains))
	for i := range cfg.Chains {
		chain := &cfg.Chains[i]
		if chain.ChainID == 0 {
			return errors.Wrapf(feeerrors.ErrInvalidConfig, "chain %q has no chain id", chain.Name)
		}
		if _, ok := seen[chain.ChainID]; ok {
			return errors.Wrapf(feeerrors.ErrInvalidConfig, "chain id %d listed twice", chain.ChainID)
		}
		seen[chain.ChainID] = struct{}{}

		fees, err := ChainFees(cfg, chain)
		if err != nil {
			return err
		}
		if err := validateFees(fees); err != nil {
			return errors.Wrapf(err, "chain %d", chain.ChainID)
		}
		chain.Fees = fees
	}

	return nil
}

func validateFees(fees types.FeeConfig) error {
	if fees.MinBumpPercent > maxBumpPercent {
		return errors.Wrapf(feeerrors.ErrInvalidConfig, "min bump percent %d above %d", fees.MinBumpPercent, maxBumpPercent)
	}

	switch fees.EstimateUnit {
	case types.UnitWei, types.UnitGwei:
	default:
		return errors.Wrapf(feeerrors.ErrInvalidConfig, "estimate unit %q", fees.EstimateUnit)
	}

	return nil
}
