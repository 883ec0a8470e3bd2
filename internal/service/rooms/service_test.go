package rooms

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/X-Sarthak/CSIR-Project-sub000/internal/domain"
	roomRepo "github.com/X-Sarthak/CSIR-Project-sub000/internal/infra/storage/room"
	"github.com/X-Sarthak/CSIR-Project-sub000/internal/integrations/identity"
	"github.com/X-Sarthak/CSIR-Project-sub000/internal/service/rooms/models"
)

// Стаб репозитория переговорных

type stubRepo struct {
	created      *domain.Room
	room         *domain.Room
	createErr    error
	getErr       error
	setActiveErr error
	deleteErr    error
	setActive    []bool
	deleted      []int64
}

func (s *stubRepo) Create(_ context.Context, room *domain.Room) (*domain.Room, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	created := *room
	created.ID = 7
	s.created = &created
	return &created, nil
}

func (s *stubRepo) GetByID(_ context.Context, _ int64) (*domain.Room, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.room, nil
}

func (s *stubRepo) SetActive(_ context.Context, _ int64, active bool) error {
	if s.setActiveErr != nil {
		return s.setActiveErr
	}
	s.setActive = append(s.setActive, active)
	return nil
}

func (s *stubRepo) Delete(_ context.Context, roomID int64) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deleted = append(s.deleted, roomID)
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func adminPrincipal() *identity.Principal {
	return &identity.Principal{Role: identity.RoleAdmin, AdminUsername: "admin"}
}

func requesterPrincipal() *identity.Principal {
	id := int64(42)
	return &identity.Principal{Role: identity.RoleRequester, RequesterID: &id}
}

func createRequest() *models.CreateRoomRequest {
	return &models.CreateRoomRequest{
		Name:         "Conference Room A",
		ApproverName: "Dr. Rao",
		Login:        "room-a",
		Password:     "secret",
		Weekdays:     []string{"Monday", "wednesday", "FRIDAY"},
		DailyStart:   "09:00",
		DailyEnd:     "18:00",
	}
}

func TestCreate(t *testing.T) {
	t.Run("admin creates a room with a hashed password", func(t *testing.T) {
		repo := &stubRepo{}
		svc := NewService(repo, noopLogger{})

		resp, err := svc.Create(context.Background(), createRequest(), adminPrincipal())

		require.NoError(t, err)
		assert.Equal(t, int64(7), resp.ID)
		assert.True(t, resp.Active)

		// Пароль не хранится в открытом виде и не отдается наружу
		require.NotNil(t, repo.created)
		assert.NotEqual(t, "secret", repo.created.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword(
			[]byte(repo.created.PasswordHash), []byte("secret")))

		// Дни недели нормализованы в каноничный порядок
		assert.Equal(t, []string{"Monday", "Wednesday", "Friday"}, resp.Window.Weekdays)
	})

	t.Run("requester is denied", func(t *testing.T) {
		svc := NewService(&stubRepo{}, noopLogger{})

		_, err := svc.Create(context.Background(), createRequest(), requesterPrincipal())

		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("missing credentials", func(t *testing.T) {
		svc := NewService(&stubRepo{}, noopLogger{})

		req := createRequest()
		req.Password = ""

		_, err := svc.Create(context.Background(), req, adminPrincipal())

		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("inverted window", func(t *testing.T) {
		svc := NewService(&stubRepo{}, noopLogger{})

		req := createRequest()
		req.DailyStart = "18:00"
		req.DailyEnd = "09:00"

		_, err := svc.Create(context.Background(), req, adminPrincipal())

		assert.ErrorIs(t, err, ErrInvalidWindow)
	})

	t.Run("empty weekday set", func(t *testing.T) {
		svc := NewService(&stubRepo{}, noopLogger{})

		req := createRequest()
		req.Weekdays = nil

		_, err := svc.Create(context.Background(), req, adminPrincipal())

		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("duplicate login", func(t *testing.T) {
		repo := &stubRepo{createErr: roomRepo.ErrLoginTaken}
		svc := NewService(repo, noopLogger{})

		_, err := svc.Create(context.Background(), createRequest(), adminPrincipal())

		assert.ErrorIs(t, err, ErrLoginTaken)
	})
}

func TestGetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo := &stubRepo{room: &domain.Room{
			ID:     7,
			Name:   "Conference Room A",
			Login:  "room-a",
			Active: true,
			Window: domain.AvailabilityWindow{
				Weekdays:   []domain.Weekday{domain.Monday},
				DailyStart: "09:00",
				DailyEnd:   "18:00",
			},
		}}
		svc := NewService(repo, noopLogger{})

		resp, err := svc.GetByID(context.Background(), 7)

		require.NoError(t, err)
		assert.Equal(t, int64(7), resp.ID)
		assert.Equal(t, "09:00", resp.Window.DailyStart)
	})

	t.Run("not found", func(t *testing.T) {
		repo := &stubRepo{getErr: roomRepo.ErrRoomNotFound}
		svc := NewService(repo, noopLogger{})

		_, err := svc.GetByID(context.Background(), 7)

		assert.ErrorIs(t, err, ErrRoomNotFound)
	})
}

func TestSetActive(t *testing.T) {
	t.Run("admin toggles activity", func(t *testing.T) {
		repo := &stubRepo{}
		svc := NewService(repo, noopLogger{})

		require.NoError(t, svc.SetActive(context.Background(), 7, false, adminPrincipal()))
		assert.Equal(t, []bool{false}, repo.setActive)
	})

	t.Run("requester is denied", func(t *testing.T) {
		svc := NewService(&stubRepo{}, noopLogger{})

		err := svc.SetActive(context.Background(), 7, false, requesterPrincipal())

		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}

func TestDelete(t *testing.T) {
	t.Run("admin deletes the room", func(t *testing.T) {
		repo := &stubRepo{}
		svc := NewService(repo, noopLogger{})

		require.NoError(t, svc.Delete(context.Background(), 7, adminPrincipal()))
		assert.Equal(t, []int64{7}, repo.deleted)
	})

	t.Run("missing room", func(t *testing.T) {
		repo := &stubRepo{deleteErr: roomRepo.ErrRoomNotFound}
		svc := NewService(repo, noopLogger{})

		err := svc.Delete(context.Background(), 7, adminPrincipal())

		assert.ErrorIs(t, err, ErrRoomNotFound)
	})
}
