package auth_test

import (
	"context"
	"testing"

	"github.com/emateapp/emate/internal/auth"
	"github.com/emateapp/emate/internal/config"
	"github.com/emateapp/emate/internal/domain"
	"github.com/emateapp/emate/internal/mocks"
	"github.com/emateapp/emate/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

// stubVerifier returns fixed claims or a fixed error.
type stubVerifier struct {
	claims *auth.Claims
	err    error
}

func (s *stubVerifier) Verify(_ context.Context, _ string) (*auth.Claims, error) {
	return s.claims, s.err
}

func TestResolveLocalMock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	existing := &model.User{ID: uuid.New(), Email: auth.LocalUserEmail}

	users := mocks.NewMockUserRepositoryIface(ctrl)
	users.EXPECT().FindByEmail(gomock.Any(), auth.LocalUserEmail).Return(existing, nil)

	resolver := auth.NewIdentityResolver(config.AuthModeLocalMock, &stubVerifier{}, users)

	// The token is ignored entirely in mock mode.
	id, err := resolver.Resolve(context.Background(), "any-token")
	assert.NoError(t, err)
	assert.Equal(t, existing.ID, id)
}

func TestResolveDevFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("missing token falls back to dev user", func(t *testing.T) {
		users := mocks.NewMockUserRepositoryIface(ctrl)
		users.EXPECT().FindByEmail(gomock.Any(), auth.DevUserEmail).
			Return(nil, domain.ErrUserNotFound)
		users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u *model.User) error {
				assert.Equal(t, auth.DevUserEmail, u.Email)
				assert.Equal(t, model.RoleEngineer, u.Role)
				u.ID = uuid.New()
				return nil
			})

		resolver := auth.NewIdentityResolver(config.AuthModeDevFallback, &stubVerifier{}, users)

		id, err := resolver.Resolve(context.Background(), "")
		assert.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)
	})

	t.Run("invalid token falls back to dev user", func(t *testing.T) {
		existing := &model.User{ID: uuid.New(), Email: auth.DevUserEmail}

		users := mocks.NewMockUserRepositoryIface(ctrl)
		users.EXPECT().FindByEmail(gomock.Any(), auth.DevUserEmail).Return(existing, nil)

		verifier := &stubVerifier{err: domain.ErrUnauthenticated}
		resolver := auth.NewIdentityResolver(config.AuthModeDevFallback, verifier, users)

		id, err := resolver.Resolve(context.Background(), "garbage")
		assert.NoError(t, err)
		assert.Equal(t, existing.ID, id)
	})

	t.Run("provider outage never falls back", func(t *testing.T) {
		users := mocks.NewMockUserRepositoryIface(ctrl)

		verifier := &stubVerifier{err: domain.ErrServiceUnavailable}
		resolver := auth.NewIdentityResolver(config.AuthModeDevFallback, verifier, users)

		_, err := resolver.Resolve(context.Background(), "token")
		assert.ErrorIs(t, err, domain.ErrServiceUnavailable)
	})
}

func TestResolveProduction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("missing token is unauthenticated", func(t *testing.T) {
		users := mocks.NewMockUserRepositoryIface(ctrl)
		resolver := auth.NewIdentityResolver(config.AuthModeProduction, &stubVerifier{}, users)

		_, err := resolver.Resolve(context.Background(), "")
		assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	})

	t.Run("invalid token is unauthenticated", func(t *testing.T) {
		users := mocks.NewMockUserRepositoryIface(ctrl)
		verifier := &stubVerifier{err: domain.ErrUnauthenticated}
		resolver := auth.NewIdentityResolver(config.AuthModeProduction, verifier, users)

		_, err := resolver.Resolve(context.Background(), "garbage")
		assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	})

	t.Run("verified email resolves to existing user", func(t *testing.T) {
		existing := &model.User{ID: uuid.New(), Email: "engineer@example.com"}

		users := mocks.NewMockUserRepositoryIface(ctrl)
		users.EXPECT().FindByEmail(gomock.Any(), existing.Email).Return(existing, nil)

		verifier := &stubVerifier{claims: &auth.Claims{Email: existing.Email}}
		resolver := auth.NewIdentityResolver(config.AuthModeProduction, verifier, users)

		id, err := resolver.Resolve(context.Background(), "valid-token")
		assert.NoError(t, err)
		assert.Equal(t, existing.ID, id)
	})

	t.Run("first sight of an email creates the user", func(t *testing.T) {
		users := mocks.NewMockUserRepositoryIface(ctrl)
		users.EXPECT().FindByEmail(gomock.Any(), "new@example.com").
			Return(nil, domain.ErrUserNotFound)
		users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u *model.User) error {
				assert.Equal(t, "new@example.com", u.Email)
				assert.Equal(t, "new", u.Name)
				u.ID = uuid.New()
				return nil
			})

		verifier := &stubVerifier{claims: &auth.Claims{Email: "new@example.com"}}
		resolver := auth.NewIdentityResolver(config.AuthModeProduction, verifier, users)

		id, err := resolver.Resolve(context.Background(), "valid-token")
		assert.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)
	})

	t.Run("lost create race re-reads the winner", func(t *testing.T) {
		winner := &model.User{ID: uuid.New(), Email: "race@example.com"}

		users := mocks.NewMockUserRepositoryIface(ctrl)
		gomock.InOrder(
			users.EXPECT().FindByEmail(gomock.Any(), winner.Email).
				Return(nil, domain.ErrUserNotFound),
			users.EXPECT().Create(gomock.Any(), gomock.Any()).
				Return(domain.ErrEmailAlreadyExists),
			users.EXPECT().FindByEmail(gomock.Any(), winner.Email).
				Return(winner, nil),
		)

		verifier := &stubVerifier{claims: &auth.Claims{Email: winner.Email}}
		resolver := auth.NewIdentityResolver(config.AuthModeProduction, verifier, users)

		id, err := resolver.Resolve(context.Background(), "valid-token")
		assert.NoError(t, err)
		assert.Equal(t, winner.ID, id)
	})
}
