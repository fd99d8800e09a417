package model

import (
	"rest-core/internal/config"
	"rest-core/internal/store"
)

// ModelManager is the shared persistence handle passed to every controller
// call. It is safe for concurrent use.
type ModelManager struct {
	store  *store.Store
	limits config.ListConfig
	rules  *RuleSet
}

func NewModelManager(s *store.Store, limits config.ListConfig, rules *RuleSet) *ModelManager {
	if limits.DefaultLimit <= 0 {
		limits.DefaultLimit = 100
	}
	if limits.MaxLimit <= 0 {
		limits.MaxLimit = 1000
	}
	if rules == nil {
		rules = &RuleSet{}
	}
	return &ModelManager{store: s, limits: limits, rules: rules}
}

func (mm *ModelManager) Store() *store.Store {
	return mm.store
}
