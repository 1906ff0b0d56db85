package repository

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/btspl-dev/asset-tracker/backend/internal/domain"
)

// valueInUse reports whether the category already holds the value,
// case-insensitively. Caller must hold optionsMu.
func (r *Repository) valueInUse(category domain.DropdownCategory, value, excludeID string) bool {
	for _, option := range r.options {
		if option.ID == excludeID || option.Category != category {
			continue
		}
		if strings.EqualFold(option.Value, value) {
			return true
		}
	}
	return false
}

func (r *Repository) CreateDropdownOption(option *domain.DropdownOption) error {
	if !domain.ValidDropdownCategory(option.Category) {
		return ErrInvalidCategory
	}

	r.optionsMu.Lock()
	defer r.optionsMu.Unlock()

	if r.valueInUse(option.Category, option.Value, "") {
		return ErrDuplicateValue
	}

	option.ID = uuid.NewString()
	clone := *option
	r.options[option.ID] = &clone

	return nil
}

func (r *Repository) UpdateDropdownOption(option *domain.DropdownOption) error {
	r.optionsMu.Lock()
	defer r.optionsMu.Unlock()

	existing, ok := r.options[option.ID]
	if !ok {
		return ErrNotFound
	}

	// only the value is editable; an option never moves between categories
	option.Category = existing.Category

	if r.valueInUse(option.Category, option.Value, option.ID) {
		return ErrDuplicateValue
	}

	clone := *option
	r.options[option.ID] = &clone

	return nil
}

// DeleteDropdownOption is permissive: no check is made against assets
// currently carrying the value. The taxonomy constrains input-time choices
// only, existing assets keep their strings.
func (r *Repository) DeleteDropdownOption(id string) error {
	r.optionsMu.Lock()
	defer r.optionsMu.Unlock()

	if _, ok := r.options[id]; !ok {
		return ErrNotFound
	}
	delete(r.options, id)

	return nil
}

func (r *Repository) GetDropdownOptionByID(id string) (*domain.DropdownOption, error) {
	r.optionsMu.RLock()
	defer r.optionsMu.RUnlock()

	option, ok := r.options[id]
	if !ok {
		return nil, ErrNotFound
	}

	clone := *option
	return &clone, nil
}

// GetDropdownOptions returns the values of one category, or the whole
// taxonomy when category is empty, ordered by category then value.
func (r *Repository) GetDropdownOptions(category domain.DropdownCategory) []*domain.DropdownOption {
	r.optionsMu.RLock()
	defer r.optionsMu.RUnlock()

	options := make([]*domain.DropdownOption, 0, len(r.options))
	for _, option := range r.options {
		if category != "" && option.Category != category {
			continue
		}
		clone := *option
		options = append(options, &clone)
	}
	sort.Slice(options, func(i, j int) bool {
		if options[i].Category != options[j].Category {
			return options[i].Category < options[j].Category
		}
		return strings.ToLower(options[i].Value) < strings.ToLower(options[j].Value)
	})

	return options
}

// HasDropdownValue reports whether the value is currently part of the
// category's taxonomy, case-insensitively.
func (r *Repository) HasDropdownValue(category domain.DropdownCategory, value string) bool {
	r.optionsMu.RLock()
	defer r.optionsMu.RUnlock()

	return r.valueInUse(category, value, "")
}
