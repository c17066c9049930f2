package client

import (
	"context"

	"github.com/dmitrijs2005/authdemo/internal/client/models"
)

// Client is the transport contract to the record store.
type Client interface {
	ListUsers(ctx context.Context) ([]models.UserRecord, error)
	CreateUser(ctx context.Context, u models.NewUser) (*models.UserRecord, error)
	Ping(ctx context.Context) error
	Close() error
}

// TokenSource yields the token to attach to outgoing requests. An empty
// token means the request goes out without an Authorization header.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// UnauthorizedHandler runs whenever the record store answers 401, no matter
// which call triggered it.
type UnauthorizedHandler func(ctx context.Context)
