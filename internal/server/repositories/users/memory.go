package users

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/authdemo/internal/common"
	"github.com/dmitrijs2005/authdemo/internal/server/models"
)

type MemoryRepository struct {
	mu    sync.RWMutex
	users []models.User
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Create(_ context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, common.ErrorAlreadyExists
		}
	}
	r.users = append(r.users, *user)
	return user, nil
}

func (r *MemoryRepository) List(context.Context) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.User, len(r.users))
	copy(out, r.users)
	return out, nil
}

func (r *MemoryRepository) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			uc := u
			return &uc, nil
		}
	}
	return nil, common.ErrorNotFound
}
