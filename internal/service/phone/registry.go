package phone

import (
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"
)

// Registry manages the available validators.
type Registry struct {
	validators map[string]Validator
	logger     *zap.Logger
	mu         sync.RWMutex
}

// NewRegistry creates an empty validator registry.
func NewRegistry(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		validators: make(map[string]Validator),
		logger:     logger,
	}
}

// NewDefaultRegistry registers the prefix and libphonenumber validators.
func NewDefaultRegistry(rules []Rule, region string, logger *zap.Logger) *Registry {
	r := NewRegistry(logger)
	r.Register(NewPrefixValidator(rules, logger))
	r.Register(NewLibPhoneValidator(region, logger))
	return r
}

// Register adds a validator to the registry.
func (r *Registry) Register(validator Validator) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.validators[validator.Name()] = validator
	r.logger.Debug("Registered phone validator", zap.String("validator", validator.Name()))
}

// Get retrieves a validator by name.
func (r *Registry) Get(name string) (Validator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	validator, ok := r.validators[name]
	if !ok {
		return nil, fmt.Errorf("validator not found: %s", name)
	}
	return validator, nil
}

// Names returns the registered validator names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.validators))
	for name := range r.validators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
