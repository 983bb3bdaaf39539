package pasetoToken

import (
	"fmt"
	"time"

	"github.com/gmaschi/go-recipes-social/pkg/auth/tokenAuth"
	"github.com/o1egl/paseto"
	"golang.org/x/crypto/chacha20poly1305"
)

// PasetoMaker is a PASETO v2 local token maker
type PasetoMaker struct {
	paseto       *paseto.V2
	symmetricKey []byte
}

var _ tokenAuth.Maker = (*PasetoMaker)(nil)

// NewPasetoMaker creates a PasetoMaker. The key must be exactly chacha20poly1305.KeySize bytes long
func NewPasetoMaker(symmetricKey string) (tokenAuth.Maker, error) {
	if len(symmetricKey) != chacha20poly1305.KeySize {
		return nil, fmt.Errorf("invalid key size: must be exactly %d characters", chacha20poly1305.KeySize)
	}

	maker := &PasetoMaker{
		paseto:       paseto.NewV2(),
		symmetricKey: []byte(symmetricKey),
	}
	return maker, nil
}

// CreateToken creates a token for username valid for duration
func (maker *PasetoMaker) CreateToken(username string, duration time.Duration) (string, error) {
	payload, err := tokenAuth.NewPayload(username, duration)
	if err != nil {
		return "", err
	}

	return maker.paseto.Encrypt(maker.symmetricKey, payload, nil)
}

// VerifyToken decrypts the token and checks it has not expired
func (maker *PasetoMaker) VerifyToken(token string) (*tokenAuth.Payload, error) {
	payload := &tokenAuth.Payload{}

	err := maker.paseto.Decrypt(token, maker.symmetricKey, payload, nil)
	if err != nil {
		return nil, tokenAuth.ErrInvalidToken
	}

	err = payload.Valid()
	if err != nil {
		return nil, err
	}

	return payload, nil
}
