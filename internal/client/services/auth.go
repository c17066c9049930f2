// Package services contains application services for the authdemo client.
// This file defines the session client: register, authenticate and
// fetch-profile against the record store, plus a purely local logout.
package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/authdemo/internal/client/client"
	"github.com/dmitrijs2005/authdemo/internal/client/models"
	"github.com/dmitrijs2005/authdemo/internal/logging"
)

// AuthService defines the session client operations used by the front ends.
//
// Contract:
//   - Register: create a record; duplicate email yields MsgEmailExists.
//   - Authenticate: scan the record list for an exact email+password match
//     and mint a token for it.
//   - FetchProfile: resolve the persisted token back to the stored identity.
//   - Logout: clear the persisted session; always succeeds.
//   - IssueToken: mint a token for an identity already known to be valid
//     (registration auto-login).
//
// None of the Result-returning methods fail with an error: every outcome,
// including transport failures, is folded into the envelope.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) models.Result
	Authenticate(ctx context.Context, email, password string) models.Result
	FetchProfile(ctx context.Context) models.Result
	Logout(ctx context.Context) models.Result
	IssueToken(userID string) (string, error)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// TokenIssuer mints and reads session tokens (see package token).
type TokenIssuer interface {
	Issue(userID string) (string, error)
	Parse(token string) (models.SessionDescriptor, error)
}

// SessionStore is the slice of persisted session storage the service needs.
type SessionStore interface {
	Token(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
}

type authService struct {
	client client.Client
	store  SessionStore
	tokens TokenIssuer
	logger logging.Logger
}

func NewAuthService(c client.Client, store SessionStore, tokens TokenIssuer, logger logging.Logger) AuthService {
	return &authService{client: c, store: store, tokens: tokens, logger: logger.With("module", "auth_service")}
}

func (a *authService) Register(ctx context.Context, name, email, password string) models.Result {
	email = models.NormalizeEmail(email)
	rec, err := a.client.CreateUser(ctx, models.NewUser{Name: name, Email: email, Password: password})
	if err != nil {
		if errors.Is(err, client.ErrConflict) {
			a.logger.Info(ctx, "registration rejected", "email", email)
			return models.Fail(models.MsgEmailExists)
		}
		a.logger.Warn(ctx, "registration failed", "email", email, "error", err)
		return models.Fail(models.MsgRegistrationFailed)
	}

	a.logger.Info(ctx, "user registered", "id", rec.ID)
	return models.Ok(models.MsgRegistered, rec.Identity())
}

// Authenticate returns the first record, in store order, whose email and
// password both match exactly once the email is normalized. Records sharing
// an email are not disambiguated.
func (a *authService) Authenticate(ctx context.Context, email, password string) models.Result {
	email = models.NormalizeEmail(email)
	users, err := a.client.ListUsers(ctx)
	if err != nil {
		a.logger.Warn(ctx, "login failed", "error", err)
		return models.Fail(models.MsgLoginFailed)
	}

	rec, ok := findByCredentials(users, email, password)
	if !ok {
		a.logger.Info(ctx, "invalid credentials", "email", email)
		return models.Fail(models.MsgInvalidCredentials)
	}

	tok, err := a.tokens.Issue(rec.ID)
	if err != nil {
		a.logger.Error(ctx, "token issue failed", "id", rec.ID, "error", err)
		return models.Fail(models.MsgLoginFailed)
	}

	res := models.Ok(models.MsgLoginSuccessful, rec.Identity())
	res.Token = tok
	return res
}

func (a *authService) FetchProfile(ctx context.Context) models.Result {
	tok, err := a.store.Token(ctx)
	if err != nil {
		a.logger.Warn(ctx, "failed to read stored token", "error", err)
		return models.Fail(models.MsgUserNotFound)
	}
	if tok == "" {
		return models.Fail(models.MsgUserNotFound)
	}

	desc, err := a.tokens.Parse(tok)
	if err != nil {
		a.logger.Warn(ctx, "stored token is unreadable", "error", err)
		return models.Fail(models.MsgUserNotFound)
	}

	users, err := a.client.ListUsers(ctx)
	if err != nil {
		a.logger.Warn(ctx, "profile fetch failed", "error", err)
		return models.Fail(models.MsgProfileError)
	}

	for _, u := range users {
		if u.ID == desc.UserID {
			return models.Ok("", u.Identity())
		}
	}
	return models.Fail(models.MsgUserNotFound)
}

func (a *authService) Logout(ctx context.Context) models.Result {
	if err := a.store.Clear(ctx); err != nil {
		a.logger.Error(ctx, "failed to clear persisted session", "error", err)
	}
	return models.Ok(models.MsgLoggedOut, nil)
}

func (a *authService) IssueToken(userID string) (string, error) {
	return a.tokens.Issue(userID)
}

// Ping proxies a liveness check to the underlying client.
func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

// Close releases resources held by the underlying client.
func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}

func findByCredentials(users []models.UserRecord, email, password string) (models.UserRecord, bool) {
	for _, u := range users {
		if u.Email == email && u.Password == password {
			return u, true
		}
	}
	return models.UserRecord{}, false
}
