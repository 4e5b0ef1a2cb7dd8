package chainmanager

import (
	"sort"
	"sync"

	feeerrors "github.com/ClipFinance/gasfee-lib/common/errors"
	"github.com/ClipFinance/gasfee-lib/common/types"
	"github.com/ClipFinance/gasfee-lib/feeengine"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// EngineFactory creates the fee engine of a chain.
type EngineFactory func(config *types.ChainConfig, logger *logrus.Logger) (types.FeeEngine, error)

// DefaultEngineFactory creates a feeengine.Engine with the chain's fee policy.
func DefaultEngineFactory(config *types.ChainConfig, logger *logrus.Logger) (types.FeeEngine, error) {
	return feeengine.NewEngine(&config.Fees, logger), nil
}

type engineRegistry struct {
	logger       *logrus.Logger
	engines      map[uint64]types.FeeEngine
	enginesMutex sync.RWMutex
	factory      EngineFactory
}

// NewChainRegistry creates an empty registry.
//
// Parameters:
// - factory: the engine factory, nil for DefaultEngineFactory.
// - logger: the logger passed to every engine.
//
// Returns:
// - types.ChainRegistry: the new registry.
func NewChainRegistry(factory EngineFactory, logger *logrus.Logger) types.ChainRegistry {
	if factory == nil {
		factory = DefaultEngineFactory
	}
	if logger == nil {
		logger = logrus.New()
	}

	return &engineRegistry{
		engines: make(map[uint64]types.FeeEngine),
		factory: factory,
		logger:  logger,
	}
}

// NewChainRegistryFromConfig creates a registry holding an engine for every
// configured chain.
func NewChainRegistryFromConfig(cfg *types.Config, logger *logrus.Logger) (types.ChainRegistry, error) {
	registry := NewChainRegistry(nil, logger)

	for i := range cfg.Chains {
		if err := registry.Add(&cfg.Chains[i]); err != nil {
			return nil, err
		}
	}

	return registry, nil
}

func (r *engineRegistry) Add(config *types.ChainConfig) error {
	if config == nil || config.ChainID == 0 {
		return errors.Wrap(feeerrors.ErrInvalidConfig, "chain id not provided")
	}

	r.enginesMutex.RLock()
	_, exists := r.engines[config.ChainID]
	r.enginesMutex.RUnlock()
	if exists {
		return errors.Wrapf(feeerrors.ErrChainExists, "chain id %d", config.ChainID)
	}

	engine, err := r.factory(config, r.logger)
	if err != nil {
		return errors.Wrapf(err, "failed to create fee engine for chain %d", config.ChainID)
	}

	r.enginesMutex.Lock()
	defer r.enginesMutex.Unlock()

	if _, exists := r.engines[config.ChainID]; exists {
		return errors.Wrapf(feeerrors.ErrChainExists, "chain id %d", config.ChainID)
	}
	r.engines[config.ChainID] = engine

	r.logger.WithFields(logrus.Fields{
		"chain":   config.Name,
		"chainId": config.ChainID,
	}).Debug("Registered fee engine")

	return nil
}

func (r *engineRegistry) Get(chainID uint64) (types.FeeEngine, bool) {
	r.enginesMutex.RLock()
	engine, ok := r.engines[chainID]
	r.enginesMutex.RUnlock()
	return engine, ok
}

func (r *engineRegistry) Remove(chainID uint64) {
	r.enginesMutex.Lock()
	delete(r.engines, chainID)
	r.enginesMutex.Unlock()
}

func (r *engineRegistry) ChainIDs() []uint64 {
	r.enginesMutex.RLock()
	ids := make([]uint64, 0, len(r.engines))
	for id := range r.engines {
		ids = append(ids, id)
	}
	r.enginesMutex.RUnlock()

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Lookup returns the engine of a chain or ErrChainNotFound.
func Lookup(registry types.ChainRegistry, chainID uint64) (types.FeeEngine, error) {
	engine, ok := registry.Get(chainID)
	if !ok {
		return nil, errors.Wrapf(feeerrors.ErrChainNotFound, "chain id %d", chainID)
	}
	return engine, nil
}
