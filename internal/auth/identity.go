// internal/auth/identity.go
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/emateapp/emate/internal/config"
	"github.com/emateapp/emate/internal/domain"
	"github.com/emateapp/emate/internal/model"
	"github.com/emateapp/emate/internal/repository"
	"github.com/google/uuid"
)

// Fixed emails for the non-production identity paths. The two differ so a
// mocked local session is distinguishable from a missing-token fallback.
const (
	LocalUserEmail = "local@emate.dev"
	DevUserEmail   = "dev@emate.dev"
)

// TokenVerifier checks a provider-issued bearer token and returns its claims.
// Implementations must return domain.ErrServiceUnavailable when the provider
// cannot be reached, so callers can tell an outage from a bad token.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*Claims, error)
}

// IdentityResolver maps an inbound bearer token to an internal user ID. It is
// the single place where the mock and development fallback paths live; the
// configured mode decides which of them are reachable.
type IdentityResolver struct {
	mode     config.AuthMode
	verifier TokenVerifier
	users    repository.UserRepositoryIface
}

func NewIdentityResolver(mode config.AuthMode, verifier TokenVerifier, users repository.UserRepositoryIface) *IdentityResolver {
	return &IdentityResolver{
		mode:     mode,
		verifier: verifier,
		users:    users,
	}
}

// Resolve returns the internal user ID for the request's bearer token. The
// token may be empty. A user row is created on first sight of a verified
// email; creation is idempotent on email.
func (r *IdentityResolver) Resolve(ctx context.Context, token string) (uuid.UUID, error) {
	if r.mode == config.AuthModeLocalMock {
		return r.findOrCreate(ctx, LocalUserEmail)
	}

	if token == "" {
		if r.mode == config.AuthModeDevFallback {
			return r.findOrCreate(ctx, DevUserEmail)
		}
		return uuid.Nil, domain.ErrUnauthenticated
	}

	claims, err := r.verifier.Verify(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrServiceUnavailable) {
			// Provider outage, not a credential problem. Never fall back.
			return uuid.Nil, err
		}
		return r.fallbackOrFail(ctx)
	}

	if claims.Email == "" {
		return r.fallbackOrFail(ctx)
	}

	return r.findOrCreate(ctx, claims.Email)
}

func (r *IdentityResolver) fallbackOrFail(ctx context.Context) (uuid.UUID, error) {
	if r.mode == config.AuthModeDevFallback {
		return r.findOrCreate(ctx, DevUserEmail)
	}
	return uuid.Nil, domain.ErrUnauthenticated
}

func (r *IdentityResolver) findOrCreate(ctx context.Context, email string) (uuid.UUID, error) {
	user, err := r.users.FindByEmail(ctx, email)
	if err == nil {
		return user.ID, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return uuid.Nil, fmt.Errorf("finding user: %w", err)
	}

	created := &model.User{
		Email: email,
		Name:  displayNameFromEmail(email),
		Role:  model.RoleEngineer,
	}

	if err := r.users.Create(ctx, created); err != nil {
		// Lost a create race; the row exists now.
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			existing, findErr := r.users.FindByEmail(ctx, email)
			if findErr != nil {
				return uuid.Nil, fmt.Errorf("finding user after create race: %w", findErr)
			}
			return existing.ID, nil
		}
		return uuid.Nil, fmt.Errorf("creating user: %w", err)
	}

	return created.ID, nil
}

func displayNameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	if local == "" {
		return email
	}
	return local
}
