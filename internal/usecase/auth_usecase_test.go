package usecase

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"clinic-admin/config"
	"clinic-admin/internal/delivery/dto"
	"clinic-admin/internal/domain/entity"
	"clinic-admin/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type authFixture struct {
	uc     AuthUsecase
	users  *mockUserRepo
	tokens *memoryTokenStore
	jwt    *jwt.JWTService
	audit  *nopAuditService
}

func newAuthFixture() *authFixture {
	f := &authFixture{
		users:  new(mockUserRepo),
		tokens: newMemoryTokenStore(),
		jwt: jwt.NewJWTService(config.JWTConfig{
			Secret:        "test-secret",
			AccessExpiry:  15 * time.Minute,
			RefreshExpiry: time.Hour,
		}),
		audit: &nopAuditService{},
	}
	f.uc = NewAuthUsecase(testLogger(), f.users, f.jwt, f.tokens, f.audit)
	return f
}

func adminUser(t *testing.T, password string) *entity.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &entity.User{
		ID:       uuid.New(),
		Email:    "admin@clinic.test",
		Password: string(hash),
		FullName: "Administrator",
	}
}

func TestLogin(t *testing.T) {
	f := newAuthFixture()
	user := adminUser(t, "s3cret!")
	f.users.On("FindByEmail", mock.Anything, "admin@clinic.test").Return(user, nil)

	tokens, err := f.uc.Login(context.Background(), &dto.LoginRequest{Email: " Admin@Clinic.test", Password: "s3cret!"})
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.Equal(t, int64(900), tokens.ExpiresIn)
	assert.Equal(t, 1, f.tokens.count("access"))
	assert.Equal(t, 1, f.tokens.count("refresh"))
	assert.Equal(t, []string{entity.AuditActionUserLogin}, f.audit.actions)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	f := newAuthFixture()
	user := adminUser(t, "s3cret!")
	inactive := false
	disabled := adminUser(t, "s3cret!")
	disabled.Email = "off@clinic.test"
	disabled.IsActive = &inactive

	f.users.On("FindByEmail", mock.Anything, "admin@clinic.test").Return(user, nil)
	f.users.On("FindByEmail", mock.Anything, "off@clinic.test").Return(disabled, nil)
	f.users.On("FindByEmail", mock.Anything, "nobody@clinic.test").Return(nil, nil)

	cases := []dto.LoginRequest{
		{Email: "admin@clinic.test", Password: "wrong"},
		{Email: "off@clinic.test", Password: "s3cret!"},
		{Email: "nobody@clinic.test", Password: "s3cret!"},
	}
	for _, req := range cases {
		_, err := f.uc.Login(context.Background(), &req)
		assert.ErrorIs(t, err, ErrInvalidCredentials, req.Email)
	}
	assert.Empty(t, f.tokens.tokens)
}

func TestRefreshTokenIsSingleUse(t *testing.T) {
	f := newAuthFixture()
	user := adminUser(t, "s3cret!")
	f.users.On("FindByEmail", mock.Anything, user.Email).Return(user, nil)
	f.users.On("FindByID", mock.Anything, user.ID).Return(user, nil)

	tokens, err := f.uc.Login(context.Background(), &dto.LoginRequest{Email: user.Email, Password: "s3cret!"})
	require.NoError(t, err)

	refreshed, err := f.uc.RefreshToken(context.Background(), &dto.RefreshTokenRequest{RefreshToken: tokens.RefreshToken})
	require.NoError(t, err)
	assert.NotEqual(t, tokens.RefreshToken, refreshed.RefreshToken)

	_, err = f.uc.RefreshToken(context.Background(), &dto.RefreshTokenRequest{RefreshToken: tokens.RefreshToken})
	assert.ErrorIs(t, err, ErrTokenRevoked)
}

// gatedTokenStore holds every Consume call until all callers have arrived.
type gatedTokenStore struct {
	*memoryTokenStore
	arrived sync.WaitGroup
}

func (s *gatedTokenStore) Consume(ctx context.Context, kind string, userID uuid.UUID, tokenID string) (bool, error) {
	s.arrived.Done()
	s.arrived.Wait()
	return s.memoryTokenStore.Consume(ctx, kind, userID, tokenID)
}

func TestRefreshTokenConcurrentRedeemSucceedsOnce(t *testing.T) {
	const callers = 8

	f := newAuthFixture()
	user := adminUser(t, "s3cret!")
	f.users.On("FindByEmail", mock.Anything, user.Email).Return(user, nil)
	f.users.On("FindByID", mock.Anything, user.ID).Return(user, nil)

	tokens, err := f.uc.Login(context.Background(), &dto.LoginRequest{Email: user.Email, Password: "s3cret!"})
	require.NoError(t, err)

	store := &gatedTokenStore{memoryTokenStore: f.tokens}
	store.arrived.Add(callers)
	uc := NewAuthUsecase(testLogger(), f.users, f.jwt, store, f.audit)

	var (
		wg        sync.WaitGroup
		succeeded atomic.Int32
		revoked   atomic.Int32
	)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.RefreshToken(context.Background(), &dto.RefreshTokenRequest{RefreshToken: tokens.RefreshToken})
			switch {
			case err == nil:
				succeeded.Add(1)
			case errors.Is(err, ErrTokenRevoked):
				revoked.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), succeeded.Load())
	assert.Equal(t, int32(callers-1), revoked.Load())
	assert.Equal(t, 1, f.tokens.count("refresh"))
}

func TestRefreshTokenRejectsDeactivatedUser(t *testing.T) {
	f := newAuthFixture()
	user := adminUser(t, "s3cret!")
	f.users.On("FindByEmail", mock.Anything, user.Email).Return(user, nil)

	tokens, err := f.uc.Login(context.Background(), &dto.LoginRequest{Email: user.Email, Password: "s3cret!"})
	require.NoError(t, err)

	inactive := false
	deactivated := *user
	deactivated.IsActive = &inactive
	f.users.On("FindByID", mock.Anything, user.ID).Return(&deactivated, nil)

	_, err = f.uc.RefreshToken(context.Background(), &dto.RefreshTokenRequest{RefreshToken: tokens.RefreshToken})
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Equal(t, 0, f.tokens.count("refresh"), "the presented token is spent")
}

func TestRefreshTokenRejectsDeletedUser(t *testing.T) {
	f := newAuthFixture()
	user := adminUser(t, "s3cret!")
	f.users.On("FindByEmail", mock.Anything, user.Email).Return(user, nil)
	f.users.On("FindByID", mock.Anything, user.ID).Return(nil, nil)

	tokens, err := f.uc.Login(context.Background(), &dto.LoginRequest{Email: user.Email, Password: "s3cret!"})
	require.NoError(t, err)

	_, err = f.uc.RefreshToken(context.Background(), &dto.RefreshTokenRequest{RefreshToken: tokens.RefreshToken})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshTokenRejectsAccessToken(t *testing.T) {
	f := newAuthFixture()
	access, _, err := f.jwt.GenerateAccessToken(uuid.New(), "admin@clinic.test")
	require.NoError(t, err)

	_, err = f.uc.RefreshToken(context.Background(), &dto.RefreshTokenRequest{RefreshToken: access})
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = f.uc.RefreshToken(context.Background(), &dto.RefreshTokenRequest{RefreshToken: "garbage"})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLogoutRevokesTokens(t *testing.T) {
	f := newAuthFixture()
	user := adminUser(t, "s3cret!")
	f.users.On("FindByEmail", mock.Anything, user.Email).Return(user, nil)

	tokens, err := f.uc.Login(context.Background(), &dto.LoginRequest{Email: user.Email, Password: "s3cret!"})
	require.NoError(t, err)
	claims, err := f.jwt.ValidateToken(tokens.AccessToken)
	require.NoError(t, err)

	require.NoError(t, f.uc.Logout(context.Background(), user.ID, claims.TokenID))
	assert.Empty(t, f.tokens.tokens)
	assert.Equal(t, []string{entity.AuditActionUserLogin, entity.AuditActionUserLogout}, f.audit.actions)
}

func TestEnsureAdmin(t *testing.T) {
	cfg := config.AdminConfig{Email: "Admin@Clinic.test", Password: "changeme", Name: "Administrator"}

	t.Run("seeds when no users exist", func(t *testing.T) {
		f := newAuthFixture()
		f.users.On("Count", mock.Anything).Return(int64(0), nil)
		f.users.On("Create", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return u.Email == "admin@clinic.test" &&
				bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("changeme")) == nil
		})).Return(nil)

		require.NoError(t, f.uc.EnsureAdmin(context.Background(), cfg))
		f.users.AssertExpectations(t)
	})

	t.Run("skips when users exist", func(t *testing.T) {
		f := newAuthFixture()
		f.users.On("Count", mock.Anything).Return(int64(2), nil)

		require.NoError(t, f.uc.EnsureAdmin(context.Background(), cfg))
		f.users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("skips without credentials", func(t *testing.T) {
		f := newAuthFixture()
		require.NoError(t, f.uc.EnsureAdmin(context.Background(), config.AdminConfig{}))
		f.users.AssertNotCalled(t, "Count", mock.Anything)
	})
}

func TestGetCurrentUserMissing(t *testing.T) {
	f := newAuthFixture()
	id := uuid.New()
	f.users.On("FindByID", mock.Anything, id).Return(nil, nil)

	_, err := f.uc.GetCurrentUser(context.Background(), id)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
