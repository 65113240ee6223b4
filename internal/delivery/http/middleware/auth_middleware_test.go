package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clinic-admin/config"
	"clinic-admin/pkg/jwt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTokenStore struct {
	valid map[string]bool
	err   error
}

func (s *fakeTokenStore) Store(ctx context.Context, kind string, userID uuid.UUID, tokenID string, ttl time.Duration) error {
	s.valid[kind+tokenID] = true
	return nil
}

func (s *fakeTokenStore) Exists(ctx context.Context, kind string, userID uuid.UUID, tokenID string) (bool, error) {
	return s.valid[kind+tokenID], s.err
}

func (s *fakeTokenStore) Consume(ctx context.Context, kind string, userID uuid.UUID, tokenID string) (bool, error) {
	ok := s.valid[kind+tokenID]
	delete(s.valid, kind+tokenID)
	return ok, s.err
}

func (s *fakeTokenStore) Revoke(ctx context.Context, kind string, userID uuid.UUID, tokenID string) error {
	delete(s.valid, kind+tokenID)
	return nil
}

func (s *fakeTokenStore) RevokeAll(ctx context.Context, kind string, userID uuid.UUID) error {
	return nil
}

func TestAuthenticate(t *testing.T) {
	jwtService := jwt.NewJWTService(config.JWTConfig{Secret: "secret", AccessExpiry: time.Minute, RefreshExpiry: time.Hour})
	store := &fakeTokenStore{valid: map[string]bool{}}
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	m := NewAuthMiddleware(jwtService, store, log)

	userID := uuid.New()
	access, accessID, err := jwtService.GenerateAccessToken(userID, "admin@clinic.test")
	require.NoError(t, err)
	require.NoError(t, store.Store(context.Background(), "access", userID, accessID, time.Minute))
	refresh, _, err := jwtService.GenerateRefreshToken(userID, "admin@clinic.test")
	require.NoError(t, err)

	protected := m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetUserIDFromContext(r.Context())
		assert.True(t, ok)
		assert.Equal(t, userID, id)
		assert.Equal(t, &userID, ActorFromContext(r.Context()))
		tokenID, _ := GetTokenIDFromContext(r.Context())
		assert.Equal(t, accessID, tokenID)
		w.WriteHeader(http.StatusOK)
	}))

	serve := func(header string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/doctors", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rr := httptest.NewRecorder()
		protected.ServeHTTP(rr, req)
		return rr
	}

	t.Run("valid token", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, serve("Bearer "+access).Code)
	})

	t.Run("missing header", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, serve("").Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, serve("Token "+access).Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, serve("Bearer not-a-jwt").Code)
	})

	t.Run("refresh token used as access token", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, serve("Bearer "+refresh).Code)
	})

	t.Run("revoked token", func(t *testing.T) {
		require.NoError(t, store.Revoke(context.Background(), "access", userID, accessID))
		assert.Equal(t, http.StatusUnauthorized, serve("Bearer "+access).Code)
	})

	t.Run("store failure", func(t *testing.T) {
		store.err = errors.New("redis down")
		defer func() { store.err = nil }()
		assert.Equal(t, http.StatusInternalServerError, serve("Bearer "+access).Code)
	})
}

func TestActorFromEmptyContext(t *testing.T) {
	assert.Nil(t, ActorFromContext(context.Background()))
}

func TestCORSPreflight(t *testing.T) {
	called := false
	h := NewCORSMiddleware("").Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodOptions, "/api/v1/doctors", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.False(t, called)
}
