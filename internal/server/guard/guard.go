// Package guard implements the request guards placed in front of protected
// GraphQL operations. A guard resolves an identity from the incoming
// request or rejects it; rejection short-circuits the operation, whose
// resolver body never runs.
//
// There are exactly two extraction variants: credentials from the sign-in
// arguments (CredentialGuard) and a bearer token from the Authorization
// header (TokenGuard).
package guard

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
	"github.com/graphql-go/graphql"
)

type ctxKey string

const (
	userKey   ctxKey = "user"
	bearerKey ctxKey = "bearer"
)

// WithUser attaches the authenticated user to the request context.
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// CurrentUser returns the identity attached by a guard, if any.
func CurrentUser(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userKey).(*models.User)
	return user, ok && user != nil
}

// WithBearer stages the raw bearer token extracted by the HTTP layer. The
// transport never rejects a request itself; the token guard decides.
func WithBearer(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, bearerKey, token)
}

// BearerFromContext returns the staged bearer token, if any.
func BearerFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(bearerKey).(string)
	return token, ok && token != ""
}

// ExtractBearer parses an "Authorization: Bearer <token>" header value.
// It returns false for an absent or malformed header.
func ExtractBearer(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], common.BearerSchema) {
		return "", false
	}
	if parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// CredentialValidator is the slice of the authentication service used by
// the credential guard.
type CredentialValidator interface {
	ValidateCredentials(ctx context.Context, email string, password string) (*models.User, error)
}

// TokenVerifier is the slice of the authentication service used by the
// token guard.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (*models.User, error)
}

// CredentialGuard authenticates a request from the email/password pair in
// the sign-in arguments. Used only on signIn.
type CredentialGuard struct {
	auth CredentialValidator
}

func NewCredentialGuard(auth CredentialValidator) *CredentialGuard {
	return &CredentialGuard{auth: auth}
}

// Protect wraps a resolver so that it only runs with a validated identity
// in context. Absent or invalid credentials reject with
// common.ErrInvalidCredentials; the caller cannot tell an unknown email
// from a wrong password.
func (g *CredentialGuard) Protect(next graphql.FieldResolveFn) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (interface{}, error) {
		email, _ := p.Args["email"].(string)
		password, _ := p.Args["password"].(string)
		if email == "" || password == "" {
			return nil, common.ErrInvalidCredentials
		}

		user, err := g.auth.ValidateCredentials(p.Context, email, password)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, common.ErrInvalidCredentials
		}

		p.Context = WithUser(p.Context, user)
		return next(p)
	}
}

// TokenGuard authenticates a request from the staged bearer token. Used on
// every protected operation except signIn.
type TokenGuard struct {
	auth TokenVerifier
}

func NewTokenGuard(auth TokenVerifier) *TokenGuard {
	return &TokenGuard{auth: auth}
}

// Protect wraps a resolver so that it only runs with a verified identity in
// context. A missing or malformed header rejects with ErrUnauthenticated;
// verification failures keep their distinct errors (ErrInvalidToken,
// ErrTokenExpired); a token naming a user that no longer exists rejects
// with ErrUnauthenticated.
func (g *TokenGuard) Protect(next graphql.FieldResolveFn) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (interface{}, error) {
		token, ok := BearerFromContext(p.Context)
		if !ok {
			return nil, common.ErrUnauthenticated
		}

		user, err := g.auth.VerifyToken(p.Context, token)
		if err != nil {
			return nil, err
		}

		p.Context = WithUser(p.Context, user)
		return next(p)
	}
}
