package requesters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/X-Sarthak/CSIR-Project-sub000/internal/domain"
	requesterRepo "github.com/X-Sarthak/CSIR-Project-sub000/internal/infra/storage/requester"
	"github.com/X-Sarthak/CSIR-Project-sub000/internal/integrations/identity"
	"github.com/X-Sarthak/CSIR-Project-sub000/internal/service/requesters/models"
)

// Стаб репозитория пользователей

type stubRepo struct {
	created    *domain.Requester
	byID       *domain.Requester
	byEmail    *domain.Requester
	createErr  error
	getErr     error
	byEmailErr error
}

func (s *stubRepo) Create(_ context.Context, r *domain.Requester) (*domain.Requester, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	created := *r
	created.ID = 42
	s.created = &created
	return &created, nil
}

func (s *stubRepo) GetByID(_ context.Context, _ int64) (*domain.Requester, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.byID, nil
}

func (s *stubRepo) GetByEmail(_ context.Context, _ string) (*domain.Requester, error) {
	if s.byEmailErr != nil {
		return nil, s.byEmailErr
	}
	return s.byEmail, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func adminPrincipal() *identity.Principal {
	return &identity.Principal{Role: identity.RoleAdmin, AdminUsername: "admin"}
}

func requesterPrincipal(id int64) *identity.Principal {
	return &identity.Principal{Role: identity.RoleRequester, RequesterID: &id}
}

func createRequest() *models.CreateRequesterRequest {
	return &models.CreateRequesterRequest{
		AdminID:     1,
		Name:        "Asha Verma",
		Department:  "Physics",
		Designation: "Scientist",
		Email:       "Asha.Verma@Example.Com",
		Password:    "secret",
	}
}

func TestCreate(t *testing.T) {
	t.Run("admin registers a requester", func(t *testing.T) {
		repo := &stubRepo{byEmailErr: requesterRepo.ErrRequesterNotFound}
		svc := NewService(repo, noopLogger{})

		resp, err := svc.Create(context.Background(), createRequest(), adminPrincipal())

		require.NoError(t, err)
		assert.Equal(t, int64(42), resp.ID)
		assert.True(t, resp.Active)

		// Email приводится к нижнему регистру, пароль хэшируется
		require.NotNil(t, repo.created)
		assert.Equal(t, "asha.verma@example.com", repo.created.Email)
		assert.NoError(t, bcrypt.CompareHashAndPassword(
			[]byte(repo.created.PasswordHash), []byte("secret")))
	})

	t.Run("requester is denied", func(t *testing.T) {
		svc := NewService(&stubRepo{}, noopLogger{})

		_, err := svc.Create(context.Background(), createRequest(), requesterPrincipal(42))

		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("taken email is detected up front", func(t *testing.T) {
		repo := &stubRepo{byEmail: &domain.Requester{ID: 9}}
		svc := NewService(repo, noopLogger{})

		_, err := svc.Create(context.Background(), createRequest(), adminPrincipal())

		assert.ErrorIs(t, err, ErrEmailTaken)
		assert.Nil(t, repo.created)
	})

	t.Run("unique index race maps to the same error", func(t *testing.T) {
		repo := &stubRepo{
			byEmailErr: requesterRepo.ErrRequesterNotFound,
			createErr:  requesterRepo.ErrEmailTaken,
		}
		svc := NewService(repo, noopLogger{})

		_, err := svc.Create(context.Background(), createRequest(), adminPrincipal())

		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("missing required fields", func(t *testing.T) {
		svc := NewService(&stubRepo{}, noopLogger{})

		req := createRequest()
		req.Email = ""

		_, err := svc.Create(context.Background(), req, adminPrincipal())

		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestGetByID(t *testing.T) {
	stored := &domain.Requester{ID: 42, Name: "Asha Verma", Email: "asha.verma@example.com", Active: true}

	t.Run("requester sees themselves", func(t *testing.T) {
		svc := NewService(&stubRepo{byID: stored}, noopLogger{})

		resp, err := svc.GetByID(context.Background(), 42, requesterPrincipal(42))

		require.NoError(t, err)
		assert.Equal(t, int64(42), resp.ID)
	})

	t.Run("admin sees any requester", func(t *testing.T) {
		svc := NewService(&stubRepo{byID: stored}, noopLogger{})

		_, err := svc.GetByID(context.Background(), 42, adminPrincipal())

		require.NoError(t, err)
	})

	t.Run("foreign requester is denied", func(t *testing.T) {
		svc := NewService(&stubRepo{byID: stored}, noopLogger{})

		_, err := svc.GetByID(context.Background(), 42, requesterPrincipal(43))

		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("not found", func(t *testing.T) {
		svc := NewService(&stubRepo{getErr: requesterRepo.ErrRequesterNotFound}, noopLogger{})

		_, err := svc.GetByID(context.Background(), 42, adminPrincipal())

		assert.ErrorIs(t, err, ErrRequesterNotFound)
	})
}
