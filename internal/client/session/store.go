package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/authdemo/internal/client/models"
	"github.com/dmitrijs2005/authdemo/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/authdemo/internal/dbx"
)

// Storage keys of the persisted session.
const (
	KeyToken = "authToken"
	KeyUser  = "user"
)

// Persister is the durable side of the container.
//
// Load returns the raw values; a missing key comes back empty, not as an
// error. Save writes both keys, Clear removes both.
type Persister interface {
	Load(ctx context.Context) (token string, user []byte, err error)
	Save(ctx context.Context, token string, user *models.User) error
	Clear(ctx context.Context) error
}

// Store persists the session in the local metadata table. It also serves
// as the record store client's token source.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) repo(db dbx.DBTX) metadata.Repository {
	return metadata.NewSQLiteRepository(db)
}

func (s *Store) Load(ctx context.Context) (string, []byte, error) {
	repo := s.repo(s.db)

	tok, err := repo.Get(ctx, KeyToken)
	if err != nil {
		return "", nil, err
	}
	user, err := repo.Get(ctx, KeyUser)
	if err != nil {
		return "", nil, err
	}
	return string(tok), user, nil
}

// Save writes the token and the JSON-encoded identity in one transaction.
func (s *Store) Save(ctx context.Context, token string, user *models.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)
		if err := repo.Set(ctx, KeyToken, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, KeyUser, raw)
	})
}

func (s *Store) Clear(ctx context.Context) error {
	return s.repo(s.db).Delete(ctx, KeyToken, KeyUser)
}

// Token returns the persisted token, or "" when none is stored.
func (s *Store) Token(ctx context.Context) (string, error) {
	tok, err := s.repo(s.db).Get(ctx, KeyToken)
	if err != nil {
		return "", err
	}
	return string(tok), nil
}
