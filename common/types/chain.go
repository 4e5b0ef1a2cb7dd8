package types

// Unit is the denomination of decimal fee strings.
type Unit string

const (
	// UnitWei means decimal strings are integer wei.
	UnitWei Unit = "wei"
	// UnitGwei means decimal strings are gwei, possibly fractional.
	UnitGwei Unit = "gwei"
)

// String converts Unit to string representation.
func (u Unit) String() string {
	return string(u)
}

const (
	// DefaultMinBumpPercent is the minimum fee increase of a replacement transaction.
	DefaultMinBumpPercent = 10
	// DefaultMaxGasLimit is the largest gas limit accepted by the engine.
	DefaultMaxGasLimit = 30_000_000
)

// FeeConfig holds the fee policy of one chain.
//
// Fields:
// - MinBumpPercent: the minimum increase, in percent, of a replacement fee.
// - EstimateUnit: the denomination of decimal estimate strings.
// - MaxGasLimit: the largest gas limit accepted.
type FeeConfig struct {
	MinBumpPercent uint64 `yaml:"minBumpPercent" envconfig:"GASFEE_MIN_BUMP_PERCENT"`
	EstimateUnit   Unit   `yaml:"estimateUnit" envconfig:"GASFEE_ESTIMATE_UNIT"`
	MaxGasLimit    uint64 `yaml:"maxGasLimit" envconfig:"GASFEE_MAX_GAS_LIMIT"`
}

// WithDefaults returns a copy of the config with unset fields filled in.
func (c FeeConfig) WithDefaults() FeeConfig {
	if c.MinBumpPercent == 0 {
		c.MinBumpPercent = DefaultMinBumpPercent
	}
	if c.EstimateUnit == "" {
		c.EstimateUnit = UnitGwei
	}
	if c.MaxGasLimit == 0 {
		c.MaxGasLimit = DefaultMaxGasLimit
	}
	return c
}

// ChainConfig holds the fee configuration for a specific chain.
//
// Fields:
// - Name: the name of the chain.
// - ChainID: the unique identifier for the chain.
// - Fees: the fee policy overrides for the chain.
type ChainConfig struct {
	Name    string    `yaml:"name"`
	ChainID uint64    `yaml:"chainId"`
	Fees    FeeConfig `yaml:"fees"`
}

// Config is the root configuration of the library.
//
// Fields:
// - Defaults: the fee policy applied to every chain.
// - Chains: the chains with their overrides.
// - LogLevel: the logrus level name.
type Config struct {
	Defaults FeeConfig     `yaml:"defaults"`
	Chains   []ChainConfig `yaml:"chains" ignored:"true"`
	LogLevel string        `yaml:"logLevel" envconfig:"GASFEE_LOG_LEVEL"`
}
