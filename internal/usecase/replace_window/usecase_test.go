package replace_window

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/X-Sarthak/CSIR-Project-sub000/internal/domain"
	roomRepo "github.com/X-Sarthak/CSIR-Project-sub000/internal/infra/storage/room"
	"github.com/X-Sarthak/CSIR-Project-sub000/pkg/types"
)

// Стабы репозиториев и transaction manager

type stubRoomRepo struct {
	getErr      error
	replaceErr  error
	replaced    *domain.AvailabilityWindow
	replacedFor int64
}

func (s *stubRoomRepo) GetByID(_ context.Context, id int64) (*domain.Room, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return &domain.Room{ID: id, Active: true}, nil
}

func (s *stubRoomRepo) ReplaceWindow(_ context.Context, roomID int64, window domain.AvailabilityWindow) error {
	if s.replaceErr != nil {
		return s.replaceErr
	}
	s.replaced = &window
	s.replacedFor = roomID
	return nil
}

type stubReservationRepo struct {
	purgeErr  error
	purged    int64
	purgedFor []int64
}

func (s *stubReservationRepo) PurgeByRoom(_ context.Context, roomID int64) (int64, error) {
	if s.purgeErr != nil {
		return 0, s.purgeErr
	}
	s.purgedFor = append(s.purgedFor, roomID)
	return s.purged, nil
}

type stubTxManager struct {
	calls int
}

func (s *stubTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	s.calls++
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func validRequest() *Request {
	return &Request{
		RoomID:     7,
		Weekdays:   []string{"friday", "Monday"},
		DailyStart: "08:00",
		DailyEnd:   "20:00",
	}
}

func TestExecute_ReplacesWindowAndPurgesReservations(t *testing.T) {
	rooms := &stubRoomRepo{}
	reservations := &stubReservationRepo{purged: 3}
	tx := &stubTxManager{}
	uc := NewUseCase(rooms, reservations, tx, noopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.RoomID)
	assert.Equal(t, int64(3), resp.Purged)

	// Дни недели нормализованы в каноничный порядок
	assert.Equal(t, []domain.Weekday{domain.Monday, domain.Friday}, resp.Window.Weekdays)

	require.NotNil(t, rooms.replaced)
	assert.Equal(t, int64(7), rooms.replacedFor)
	assert.Equal(t, []int64{7}, reservations.purgedFor)
	assert.Equal(t, 1, tx.calls)
}

func TestExecute_PurgeIsUnconditional(t *testing.T) {
	// Чистка выполняется даже когда удалять нечего
	rooms := &stubRoomRepo{}
	reservations := &stubReservationRepo{purged: 0}
	uc := NewUseCase(rooms, reservations, &stubTxManager{}, noopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(0), resp.Purged)
	assert.Equal(t, []int64{7}, reservations.purgedFor)
}

func TestExecute_InvalidWindow(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
	}{
		{name: "inverted", start: "20:00", end: "08:00"},
		{name: "degenerate", start: "10:00", end: "10:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rooms := &stubRoomRepo{}
			reservations := &stubReservationRepo{}
			uc := NewUseCase(rooms, reservations, &stubTxManager{}, noopLogger{})

			req := validRequest()
			req.DailyStart = types.TimeString(tt.start)
			req.DailyEnd = types.TimeString(tt.end)

			_, err := uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, ErrInvalidWindow)
			assert.Nil(t, rooms.replaced)
			assert.Empty(t, reservations.purgedFor)
		})
	}
}

func TestExecute_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{name: "non-positive room id", mutate: func(r *Request) { r.RoomID = 0 }},
		{name: "empty weekday set", mutate: func(r *Request) { r.Weekdays = nil }},
		{name: "unknown weekday", mutate: func(r *Request) { r.Weekdays = []string{"Smonday"} }},
		{name: "malformed start", mutate: func(r *Request) { r.DailyStart = "8am" }},
		{name: "malformed end", mutate: func(r *Request) { r.DailyEnd = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewUseCase(&stubRoomRepo{}, &stubReservationRepo{}, &stubTxManager{}, noopLogger{})

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_RoomNotFound(t *testing.T) {
	rooms := &stubRoomRepo{getErr: roomRepo.ErrRoomNotFound}
	reservations := &stubReservationRepo{}
	uc := NewUseCase(rooms, reservations, &stubTxManager{}, noopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrRoomNotFound)
	assert.Empty(t, reservations.purgedFor)
}

func TestExecute_PurgeFailureFailsWholeOperation(t *testing.T) {
	rooms := &stubRoomRepo{}
	reservations := &stubReservationRepo{purgeErr: errors.New("disk on fire")}
	uc := NewUseCase(rooms, reservations, &stubTxManager{}, noopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrInternal)
}
