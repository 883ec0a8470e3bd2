package submit_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/X-Sarthak/CSIR-Project-sub000/internal/domain"
	roomRepo "github.com/X-Sarthak/CSIR-Project-sub000/internal/infra/storage/room"
	"github.com/X-Sarthak/CSIR-Project-sub000/pkg/ptr"
	"github.com/X-Sarthak/CSIR-Project-sub000/pkg/txmanager"
	"github.com/X-Sarthak/CSIR-Project-sub000/pkg/types"
)

// Стабы репозиториев и transaction manager

type stubReservationRepo struct {
	existing  []*domain.Reservation
	getErr    error
	createErr error
	created   *domain.Reservation
	nextID    int64
}

func (s *stubReservationRepo) Create(_ context.Context, r *domain.Reservation) (*domain.Reservation, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	created := *r
	created.ID = s.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	s.created = &created
	return &created, nil
}

func (s *stubReservationRepo) GetCommittedByRoomAndDate(_ context.Context, _ int64, _ string) ([]*domain.Reservation, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.existing, nil
}

type stubRoomRepo struct {
	room       *domain.Room
	getErr     error
	linkErr    error
	savedLinks []string
}

func (s *stubRoomRepo) GetByID(_ context.Context, _ int64) (*domain.Room, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.room, nil
}

func (s *stubRoomRepo) UpdateJoinLink(_ context.Context, _ int64, link string) error {
	if s.linkErr != nil {
		return s.linkErr
	}
	s.savedLinks = append(s.savedLinks, link)
	return nil
}

type stubTxManager struct {
	err error
}

func (s *stubTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.err != nil {
		return s.err
	}
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func activeRoom() *domain.Room {
	return &domain.Room{
		ID:     7,
		Name:   "Conference Room A",
		Active: true,
		Window: domain.AvailabilityWindow{
			Weekdays:   []domain.Weekday{domain.Monday, domain.Wednesday, domain.Friday},
			DailyStart: "09:00",
			DailyEnd:   "18:00",
		},
	}
}

func validRequest() *Request {
	// 2025-10-15 - среда
	date, _ := time.Parse(domain.DateFormat, "2025-10-15")
	return &Request{
		RoomID:      7,
		RequesterID: ptr.Ptr(int64(42)),
		Title:       "Weekly sync",
		Date:        date,
		StartTime:   types.TimeString("10:00"),
		EndTime:     types.TimeString("11:00"),
		Mode:        "offline",
	}
}

func newTestUseCase(reservations *stubReservationRepo, rooms *stubRoomRepo, tx *stubTxManager) *UseCase {
	return NewUseCase(reservations, rooms, tx, noopLogger{})
}

func TestExecute_Success(t *testing.T) {
	reservations := &stubReservationRepo{nextID: 101}
	rooms := &stubRoomRepo{room: activeRoom()}
	uc := newTestUseCase(reservations, rooms, &stubTxManager{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(101), resp.ID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, domain.Wednesday, resp.Weekday)
	require.NotNil(t, resp.RequesterID)
	assert.Equal(t, int64(42), *resp.RequesterID)
	assert.Empty(t, rooms.savedLinks)
}

func TestExecute_WeekdayDerivedFromDate(t *testing.T) {
	reservations := &stubReservationRepo{nextID: 1}
	rooms := &stubRoomRepo{room: activeRoom()}
	uc := newTestUseCase(reservations, rooms, &stubTxManager{})

	req := validRequest()
	req.Weekday = ""

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, domain.Wednesday, resp.Weekday)
}

func TestExecute_DayNotAvailable(t *testing.T) {
	reservations := &stubReservationRepo{}
	rooms := &stubRoomRepo{room: activeRoom()}
	uc := newTestUseCase(reservations, rooms, &stubTxManager{})

	req := validRequest()
	// 2025-10-14 - вторник, не входит в окно
	req.Date, _ = time.Parse(domain.DateFormat, "2025-10-14")

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrDayNotAvailable)
	assert.Nil(t, reservations.created)
}

func TestExecute_TimeOutsideWindow(t *testing.T) {
	tests := []struct {
		name       string
		start, end types.TimeString
	}{
		{name: "before daily start", start: "08:00", end: "09:30"},
		{name: "after daily end", start: "17:30", end: "18:30"},
		{name: "start equals end", start: "10:00", end: "10:00"},
		{name: "inverted interval", start: "11:00", end: "10:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reservations := &stubReservationRepo{}
			rooms := &stubRoomRepo{room: activeRoom()}
			uc := newTestUseCase(reservations, rooms, &stubTxManager{})

			req := validRequest()
			req.StartTime = tt.start
			req.EndTime = tt.end

			_, err := uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, ErrTimeOutsideWindow)
			assert.Nil(t, reservations.created)
		})
	}
}

func TestExecute_SlotConflict(t *testing.T) {
	reservations := &stubReservationRepo{
		existing: []*domain.Reservation{
			{ID: 55, StartTime: "10:30", EndTime: "11:30", Status: domain.StatusAccepted},
		},
	}
	rooms := &stubRoomRepo{room: activeRoom()}
	uc := newTestUseCase(reservations, rooms, &stubTxManager{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.Nil(t, reservations.created)
}

func TestExecute_AdjacentIntervalDoesNotConflict(t *testing.T) {
	// Существующее [09:00, 10:00) не пересекается с кандидатом [10:00, 11:00)
	reservations := &stubReservationRepo{
		nextID: 1,
		existing: []*domain.Reservation{
			{ID: 55, StartTime: "09:00", EndTime: "10:00", Status: domain.StatusAccepted},
		},
	}
	rooms := &stubRoomRepo{room: activeRoom()}
	uc := newTestUseCase(reservations, rooms, &stubTxManager{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.NoError(t, err)
}

func TestExecute_ResolvedReservationsDoNotBlock(t *testing.T) {
	reservations := &stubReservationRepo{
		nextID: 1,
		existing: []*domain.Reservation{
			{ID: 1, StartTime: "10:00", EndTime: "11:00", Status: domain.StatusRejected},
			{ID: 2, StartTime: "10:00", EndTime: "11:00", Status: domain.StatusCancelled},
		},
	}
	rooms := &stubRoomRepo{room: activeRoom()}
	uc := newTestUseCase(reservations, rooms, &stubTxManager{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.NoError(t, err)
}

func TestExecute_RoomNotFound(t *testing.T) {
	rooms := &stubRoomRepo{getErr: roomRepo.ErrRoomNotFound}
	uc := newTestUseCase(&stubReservationRepo{}, rooms, &stubTxManager{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestExecute_InactiveRoomBehavesAsMissing(t *testing.T) {
	room := activeRoom()
	room.Active = false
	uc := newTestUseCase(&stubReservationRepo{}, &stubRoomRepo{room: room}, &stubTxManager{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestExecute_ContentionMapsToRetryableError(t *testing.T) {
	uc := newTestUseCase(
		&stubReservationRepo{},
		&stubRoomRepo{room: activeRoom()},
		&stubTxManager{err: txmanager.ErrContention},
	)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrContention)
	assert.NotErrorIs(t, err, ErrSlotConflict)
}

func TestExecute_JoinLinkStoredOnRoom(t *testing.T) {
	reservations := &stubReservationRepo{nextID: 1}
	rooms := &stubRoomRepo{room: activeRoom()}
	uc := newTestUseCase(reservations, rooms, &stubTxManager{})

	req := validRequest()
	req.JoinLink = ptr.Ptr("https://meet.example.com/room-a")

	_, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	require.Len(t, rooms.savedLinks, 1)
	assert.Equal(t, "https://meet.example.com/room-a", rooms.savedLinks[0])
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{name: "non-positive room id", mutate: func(r *Request) { r.RoomID = 0 }},
		{name: "non-positive requester id", mutate: func(r *Request) { r.RequesterID = ptr.Ptr(int64(-1)) }},
		{name: "empty title", mutate: func(r *Request) { r.Title = "" }},
		{name: "zero date", mutate: func(r *Request) { r.Date = time.Time{} }},
		{name: "missing start time", mutate: func(r *Request) { r.StartTime = "" }},
		{name: "missing end time", mutate: func(r *Request) { r.EndTime = "" }},
		{name: "malformed start time", mutate: func(r *Request) { r.StartTime = "9am" }},
		{name: "unknown weekday name", mutate: func(r *Request) { r.Weekday = "Smonday" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(&stubReservationRepo{}, &stubRoomRepo{room: activeRoom()}, &stubTxManager{})

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
