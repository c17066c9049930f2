// Package users stores record store users, in memory or in PostgreSQL.
package users

import (
	"context"

	"github.com/dmitrijs2005/authdemo/internal/server/models"
)

// Repository persists users.
//
// List returns users in insertion order. Create fails with
// common.ErrorAlreadyExists when the email is taken; GetByEmail returns
// common.ErrorNotFound for an unknown email.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}
