// Package bootstrap wires the session core shared by the REPL and the web
// front end: local storage, the state container, the record store client
// and the session client.
package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/authdemo/internal/client/client"
	"github.com/dmitrijs2005/authdemo/internal/client/config"
	"github.com/dmitrijs2005/authdemo/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/authdemo/internal/client/services"
	"github.com/dmitrijs2005/authdemo/internal/client/session"
	"github.com/dmitrijs2005/authdemo/internal/client/token"
	"github.com/dmitrijs2005/authdemo/internal/common"
	"github.com/dmitrijs2005/authdemo/internal/logging"
)

// KeySigningKey holds the generated token key when none is configured.
const KeySigningKey = "signingKey"

// signingKeySize is the number of random bytes in a generated key.
const signingKeySize = 32

// Navigator moves the front end to its login entry point.
type Navigator interface {
	ToLogin(ctx context.Context)
}

// NavigatorFunc adapts a plain function to Navigator.
type NavigatorFunc func(ctx context.Context)

func (f NavigatorFunc) ToLogin(ctx context.Context) { f(ctx) }

// Runtime is the assembled session core. Session has not been restored
// yet; front ends call Session.Restore when they are ready.
type Runtime struct {
	DB      *sql.DB
	Store   *session.Store
	Session *session.Container
	Auth    services.AuthService
	Logger  logging.Logger
}

// Option tweaks construction; tests use it to swap the transport.
type Option func(*settings)

type settings struct {
	clientOpts []client.Option
}

func WithClientOptions(opts ...client.Option) Option {
	return func(s *settings) { s.clientOpts = append(s.clientOpts, opts...) }
}

// New opens local storage and assembles the session core. Any 401 from the
// record store logs the session out and hands control to nav.
func New(ctx context.Context, cfg *config.Config, logger logging.Logger, nav Navigator, opts ...Option) (*Runtime, error) {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}

	db, err := client.InitDatabase(ctx, cfg.LocalDSN)
	if err != nil {
		return nil, err
	}

	key, err := signingKey(ctx, metadata.NewSQLiteRepository(db), cfg.SigningKey)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	store := session.NewStore(db)
	container := session.NewContainer(store, logger)
	live := liveSession{Store: store, container: container}

	onUnauthorized := func(ctx context.Context) {
		if err := container.Logout(ctx); err != nil {
			logger.Error(ctx, "logout after 401 failed", "error", err)
		}
		if nav != nil {
			nav.ToLogin(ctx)
		}
	}

	clientOpts := append([]client.Option{
		client.WithTokenSource(live),
		client.WithUnauthorizedHandler(onUnauthorized),
		client.WithTimeout(cfg.RequestTimeout),
	}, s.clientOpts...)

	apiClient, err := client.NewHTTPClient(cfg.RecordStoreURL, logger, clientOpts...)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	auth := services.NewAuthService(apiClient, live, token.NewIssuer(key), logger)

	return &Runtime{DB: db, Store: store, Session: container, Auth: auth, Logger: logger}, nil
}

// liveSession reads the token from the container, so sessions that were
// not remembered still authorize requests, and clears through the store.
type liveSession struct {
	*session.Store
	container *session.Container
}

func (l liveSession) Token(ctx context.Context) (string, error) { return l.container.Token(ctx) }

// Close releases the record store client and the local database.
func (r *Runtime) Close(ctx context.Context) error {
	return errors.Join(r.Auth.Close(ctx), r.DB.Close())
}

// signingKey returns the configured key or, when there is none, a random
// key created on first use and kept in local storage afterwards.
func signingKey(ctx context.Context, repo metadata.Repository, configured string) ([]byte, error) {
	if configured != "" {
		return []byte(configured), nil
	}

	stored, err := repo.Get(ctx, KeySigningKey)
	if err != nil {
		return nil, fmt.Errorf("read signing key: %w", err)
	}
	if len(stored) > 0 {
		return stored, nil
	}

	generated, err := common.MakeRandHexString(signingKeySize)
	if err != nil {
		return nil, fmt.Errorf("generate signing key: %w", err)
	}
	key := []byte(generated)
	if err := repo.Set(ctx, KeySigningKey, key); err != nil {
		return nil, fmt.Errorf("store signing key: %w", err)
	}
	return key, nil
}
