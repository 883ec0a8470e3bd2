package submit_reservation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/X-Sarthak/CSIR-Project-sub000/internal/api/middleware"
	"github.com/X-Sarthak/CSIR-Project-sub000/internal/integrations/identity"
	submitReservation "github.com/X-Sarthak/CSIR-Project-sub000/internal/usecase/submit_reservation"
)

type stubUseCase struct {
	resp    *submitReservation.Response
	err     error
	lastReq *submitReservation.Request
}

func (s *stubUseCase) Execute(_ context.Context, req *submitReservation.Request) (*submitReservation.Response, error) {
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func requesterPrincipal(id int64) *identity.Principal {
	return &identity.Principal{Role: identity.RoleRequester, RequesterID: &id}
}

func roomPrincipal(id int64) *identity.Principal {
	return &identity.Principal{Role: identity.RoleRoom, RoomID: &id}
}

const validBody = `{
	"roomId": 7,
	"title": "Weekly sync",
	"date": "2025-10-15",
	"startTime": "10:00",
	"endTime": "11:00",
	"mode": "offline"
}`

func doRequest(h *Handler, body string, principal *identity.Principal) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(body))
	if principal != nil {
		req = req.WithContext(middleware.WithPrincipal(req.Context(), principal))
	}
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	okResponse := &submitReservation.Response{
		ID:        101,
		RoomID:    7,
		Title:     "Weekly sync",
		Date:      time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		StartTime: "10:00",
		EndTime:   "11:00",
		Status:    "pending",
	}

	t.Run("requester submits successfully", func(t *testing.T) {
		uc := &stubUseCase{resp: okResponse}
		h := NewHandler(uc, noopLogger{})

		rec := doRequest(h, validBody, requesterPrincipal(42))

		assert.Equal(t, http.StatusCreated, rec.Code)
		require.NotNil(t, uc.lastReq)
		require.NotNil(t, uc.lastReq.RequesterID)
		assert.Equal(t, int64(42), *uc.lastReq.RequesterID)
	})

	t.Run("room submits for itself without a requester ref", func(t *testing.T) {
		uc := &stubUseCase{resp: okResponse}
		h := NewHandler(uc, noopLogger{})

		rec := doRequest(h, validBody, roomPrincipal(7))

		assert.Equal(t, http.StatusCreated, rec.Code)
		require.NotNil(t, uc.lastReq)
		assert.Nil(t, uc.lastReq.RequesterID)
	})

	t.Run("room cannot submit for a foreign room", func(t *testing.T) {
		uc := &stubUseCase{resp: okResponse}
		h := NewHandler(uc, noopLogger{})

		rec := doRequest(h, validBody, roomPrincipal(99))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Nil(t, uc.lastReq)
	})

	t.Run("missing principal", func(t *testing.T) {
		h := NewHandler(&stubUseCase{}, noopLogger{})

		rec := doRequest(h, validBody, nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		h := NewHandler(&stubUseCase{}, noopLogger{})

		rec := doRequest(h, `{"roomId": `, requesterPrincipal(42))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bad date format", func(t *testing.T) {
		h := NewHandler(&stubUseCase{}, noopLogger{})

		body := strings.Replace(validBody, "2025-10-15", "15/10/2025", 1)
		rec := doRequest(h, body, requesterPrincipal(42))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("use case errors map to status codes", func(t *testing.T) {
		tests := []struct {
			name string
			err  error
			want int
		}{
			{name: "room not found", err: submitReservation.ErrRoomNotFound, want: http.StatusNotFound},
			{name: "day not available", err: submitReservation.ErrDayNotAvailable, want: http.StatusBadRequest},
			{name: "time outside window", err: submitReservation.ErrTimeOutsideWindow, want: http.StatusBadRequest},
			{name: "slot conflict", err: submitReservation.ErrSlotConflict, want: http.StatusConflict},
			{name: "contention", err: submitReservation.ErrContention, want: http.StatusServiceUnavailable},
			{name: "invalid input", err: submitReservation.ErrInvalidInput, want: http.StatusBadRequest},
			{name: "internal", err: submitReservation.ErrInternal, want: http.StatusInternalServerError},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				h := NewHandler(&stubUseCase{err: tt.err}, noopLogger{})

				rec := doRequest(h, validBody, requesterPrincipal(42))

				assert.Equal(t, tt.want, rec.Code)
			})
		}
	})
}
