package external

import (
	"fmt"

	"wristweather.app/internal/config"
	"wristweather.app/internal/ports"
	"wristweather.app/pkg/errors"
)

type StoreFactory struct{}

func NewStoreFactory() *StoreFactory {
	return &StoreFactory{}
}

// CreateStore builds the memory or Redis backend. The database backend needs a
// connection and is built by the database package.
func (f *StoreFactory) CreateStore(cfg *config.StoreConfig) (ports.StoreBackend, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("store config cannot be nil", nil)
	}

	switch cfg.Type {
	case config.StoreTypeMemory:
		return NewMemoryStore(), nil
	case config.StoreTypeRedis:
		store, err := NewRedisStoreAdapter(&cfg.Redis)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, errors.NewConfigurationError(
			fmt.Sprintf("unsupported store type: %s", cfg.Type.String()), nil)
	}
}
