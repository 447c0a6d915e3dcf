// Package auth is the narrow boundary to the external session provider. This
// service never issues or persists tokens; it only asks the provider what an
// opaque session token means.
package auth

import (
	"context"
	"errors"

	"leadintake/internal/model"
)

// ErrInvalidToken reports a session token the provider did not recognize.
var ErrInvalidToken = errors.New("invalid session token")

// TokenReader resolves an opaque session token into its claims.
type TokenReader interface {
	// ReadToken validates raw with the provider and returns its claims.
	// Unrecognized or expired tokens yield ErrInvalidToken.
	ReadToken(ctx context.Context, raw string) (*model.Token, error)
}

// TokenReaderFunc adapts a function to the TokenReader interface.
type TokenReaderFunc func(ctx context.Context, raw string) (*model.Token, error)

func (f TokenReaderFunc) ReadToken(ctx context.Context, raw string) (*model.Token, error) {
	return f(ctx, raw)
}
