// Package token mints and reads session tokens on the client.
//
// A token is a compact HS256 JWT whose claims carry a SessionDescriptor:
// "sub" is the user id and "iat" the issue time. The signing key is local
// to the client, so a token only proves it was minted by this installation;
// no server ever verifies it.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/authdemo/internal/client/models"
	"github.com/dmitrijs2005/authdemo/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims are the registered JWT claims; Subject holds the user id and ID a
// random nonce so two tokens minted within the same second still differ.
type Claims struct {
	jwt.RegisteredClaims
}

type Issuer struct {
	key []byte
	now func() time.Time
}

func NewIssuer(key []byte) *Issuer {
	return &Issuer{key: key, now: time.Now}
}

// Issue mints a token for userID at the current time.
func (i *Issuer) Issue(userID string) (string, error) {
	if userID == "" {
		return "", fmt.Errorf("issue token: %w", common.ErrInvalidToken)
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  userID,
			IssuedAt: jwt.NewNumericDate(i.now()),
			ID:       uuid.NewString(),
		},
	})

	s, err := t.SignedString(i.key)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return s, nil
}

// Parse verifies tokenString and returns its descriptor. Any malformed,
// foreign or subject-less token yields common.ErrInvalidToken.
func (i *Issuer) Parse(tokenString string) (models.SessionDescriptor, error) {
	claims := &Claims{}

	t, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return i.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.SessionDescriptor{}, errors.Join(common.ErrInvalidToken, err)
	}
	if !t.Valid || claims.Subject == "" {
		return models.SessionDescriptor{}, common.ErrInvalidToken
	}

	d := models.SessionDescriptor{UserID: claims.Subject}
	if claims.IssuedAt != nil {
		d.IssuedAt = claims.IssuedAt.Time
	}
	return d, nil
}
