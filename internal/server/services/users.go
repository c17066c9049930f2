// Package services contains the record store's business logic.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/authdemo/internal/common"
	"github.com/dmitrijs2005/authdemo/internal/server/models"
	"github.com/dmitrijs2005/authdemo/internal/server/repositories/users"
	"github.com/google/uuid"
)

// UserService creates and lists user records. The store does not
// authenticate anyone: it only keeps records and rejects duplicate emails.
type UserService struct {
	repo  users.Repository
	newID func() string
	now   func() time.Time
}

func NewUserService(repo users.Repository) *UserService {
	return &UserService{repo: repo, newID: uuid.NewString, now: time.Now}
}

// List returns every record in insertion order.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.repo.List(ctx)
}

// FindByEmail returns the records matching email: none or one. Surrounding
// whitespace is dropped, as on Create; the rest must match exactly.
func (s *UserService) FindByEmail(ctx context.Context, email string) ([]models.User, error) {
	u, err := s.repo.GetByEmail(ctx, strings.TrimSpace(email))
	if errors.Is(err, common.ErrorNotFound) {
		return []models.User{}, nil
	}
	if err != nil {
		return nil, err
	}
	return []models.User{*u}, nil
}

// Create stores a new record with a fresh id. Missing fields yield
// common.ErrorValidation, a taken email common.ErrorAlreadyExists.
func (s *UserService) Create(ctx context.Context, in models.NewUser) (*models.User, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)

	switch {
	case in.Name == "":
		return nil, fmt.Errorf("%w: name is required", common.ErrorValidation)
	case in.Email == "":
		return nil, fmt.Errorf("%w: email is required", common.ErrorValidation)
	case in.Password == "":
		return nil, fmt.Errorf("%w: password is required", common.ErrorValidation)
	}

	u := &models.User{
		ID:        s.newID(),
		Name:      in.Name,
		Email:     in.Email,
		Password:  in.Password,
		CreatedAt: s.now(),
	}
	return s.repo.Create(ctx, u)
}

// Seed loads users into an empty store at startup. Records that already
// exist by email are skipped.
func (s *UserService) Seed(ctx context.Context, seed []models.NewUser) (int, error) {
	n := 0
	for _, in := range seed {
		if _, err := s.Create(ctx, in); err != nil {
			if errors.Is(err, common.ErrorAlreadyExists) {
				continue
			}
			return n, fmt.Errorf("seed %q: %w", in.Email, err)
		}
		n++
	}
	return n, nil
}
