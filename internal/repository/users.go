package repository

import (
	"strings"

	"github.com/google/uuid"

	"github.com/btspl-dev/asset-tracker/backend/internal/domain"
)

func (r *Repository) CreateUser(user *domain.User) error {
	r.usersMu.Lock()
	defer r.usersMu.Unlock()

	for _, existing := range r.users {
		if strings.EqualFold(existing.Username, user.Username) {
			return ErrDuplicateUsername
		}
	}

	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	clone := *user
	r.users[user.ID] = &clone

	return nil
}

func (r *Repository) GetUserByID(id string) (*domain.User, error) {
	r.usersMu.RLock()
	defer r.usersMu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}

	clone := *user
	return &clone, nil
}

func (r *Repository) GetUserByUsername(username string) (*domain.User, error) {
	r.usersMu.RLock()
	defer r.usersMu.RUnlock()

	for _, user := range r.users {
		if strings.EqualFold(user.Username, username) {
			clone := *user
			return &clone, nil
		}
	}

	return nil, ErrNotFound
}
