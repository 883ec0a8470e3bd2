package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/X-Sarthak/CSIR-Project-sub000/internal/integrations/identity"
)

type stubIdentityClient struct {
	principal *identity.Principal
	err       error
	lastToken string
}

func (s *stubIdentityClient) Introspect(_ context.Context, token string) (*identity.Principal, error) {
	s.lastToken = token
	if s.err != nil {
		return nil, s.err
	}
	return s.principal, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func TestAuth(t *testing.T) {
	roomID := int64(7)
	principal := &identity.Principal{Role: identity.RoleRoom, RoomID: &roomID}

	t.Run("valid token puts the principal into context", func(t *testing.T) {
		client := &stubIdentityClient{principal: principal}

		var got *identity.Principal
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got, _ = PrincipalFromContext(r.Context())
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/reservations/1", nil)
		req.Header.Set("Authorization", "Bearer token-123")
		rec := httptest.NewRecorder()

		Auth(client, noopLogger{})(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "token-123", client.lastToken)
		require.NotNil(t, got)
		assert.True(t, got.IsRoom(7))
	})

	t.Run("missing authorization header", func(t *testing.T) {
		client := &stubIdentityClient{principal: principal}
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("next handler must not be called")
		})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/reservations/1", nil)
		rec := httptest.NewRecorder()

		Auth(client, noopLogger{})(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Empty(t, client.lastToken)
	})

	t.Run("non-bearer scheme is rejected", func(t *testing.T) {
		client := &stubIdentityClient{principal: principal}
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("next handler must not be called")
		})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/reservations/1", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		rec := httptest.NewRecorder()

		Auth(client, noopLogger{})(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("invalid token maps to 401", func(t *testing.T) {
		client := &stubIdentityClient{err: identity.ErrInvalidToken}
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("next handler must not be called")
		})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/reservations/1", nil)
		req.Header.Set("Authorization", "Bearer bad-token")
		rec := httptest.NewRecorder()

		Auth(client, noopLogger{})(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("identity service failure maps to 500", func(t *testing.T) {
		client := &stubIdentityClient{err: errors.New("connection refused")}
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("next handler must not be called")
		})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/reservations/1", nil)
		req.Header.Set("Authorization", "Bearer token-123")
		rec := httptest.NewRecorder()

		Auth(client, noopLogger{})(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestPrincipalFromContext(t *testing.T) {
	_, ok := PrincipalFromContext(context.Background())
	assert.False(t, ok)
}

func TestRequestID(t *testing.T) {
	t.Run("generates id when absent", func(t *testing.T) {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.NotEmpty(t, r.Header.Get(RequestIDHeader))
		})

		rec := httptest.NewRecorder()
		RequestID(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
	})

	t.Run("keeps client-provided id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "client-id-1")

		rec := httptest.NewRecorder()
		RequestID(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).ServeHTTP(rec, req)

		assert.Equal(t, "client-id-1", rec.Header().Get(RequestIDHeader))
	})
}
