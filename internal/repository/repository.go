package repository

import (
	"sync"

	"github.com/btspl-dev/asset-tracker/backend/internal/config"
	"github.com/btspl-dev/asset-tracker/backend/internal/domain"
)

// Repository owns the in-memory collections. Each collection is guarded by
// its own mutex; a mutation either fully applies or is rejected before any
// state changes. Lock ordering where two collections are involved is always
// employees before assets.
type Repository struct {
	cfg *config.Config

	assetsMu sync.RWMutex
	assets   map[string]*domain.Asset
	nextSNo  int

	employeesMu sync.RWMutex
	employees   map[string]*domain.Employee

	optionsMu sync.RWMutex
	options   map[string]*domain.DropdownOption

	usersMu sync.RWMutex
	users   map[string]*domain.User
}

func NewRepository(cfg *config.Config) *Repository {
	return &Repository{
		cfg:       cfg,
		assets:    make(map[string]*domain.Asset),
		nextSNo:   1,
		employees: make(map[string]*domain.Employee),
		options:   make(map[string]*domain.DropdownOption),
		users:     make(map[string]*domain.User),
	}
}
