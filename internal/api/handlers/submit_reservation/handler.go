package submit_reservation

import (
	"errors"
	"net/http"

	"github.com/X-Sarthak/CSIR-Project-sub000/internal/api/handlers"
	"github.com/X-Sarthak/CSIR-Project-sub000/internal/api/middleware"
	"github.com/X-Sarthak/CSIR-Project-sub000/internal/integrations/identity"
	submitReservation "github.com/X-Sarthak/CSIR-Project-sub000/internal/usecase/submit_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgAccessDenied       = "доступ запрещен"
	msgRoomNotFound       = "переговорная не найдена"
	msgDayNotAvailable    = "день недели недоступен для этой переговорной"
	msgTimeOutsideWindow  = "интервал выходит за пределы окна доступности"
	msgSlotConflict       = "интервал пересекается с существующим бронированием"
	msgContention         = "конфликт конкурентных запросов, повторите попытку"
	msgInvalidInput       = "некорректные входные данные"
)

type Handler struct {
	useCase SubmitReservationUseCase
	logger  Logger
}

func NewHandler(useCase SubmitReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgAccessDenied)
		return
	}

	// Создавать бронирования могут пользователи и identity переговорной.
	// Identity переговорной - только для своей переговорной.
	if principal.Role != identity.RoleRequester && principal.Role != identity.RoleRoom {
		h.logger.Warn("POST /reservations - role=%s is not allowed to submit", principal.Role)
		handlers.RespondForbidden(w, msgAccessDenied)
		return
	}

	var req SubmitReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if principal.Role == identity.RoleRoom && !principal.IsRoom(req.RoomID) {
		h.logger.Warn("POST /reservations - room principal tried to submit for foreign room=%d", req.RoomID)
		handlers.RespondForbidden(w, msgAccessDenied)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(principal)
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, submitReservation.ErrRoomNotFound):
			h.logger.Warn("POST /reservations - Room not found: room_id=%d", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, submitReservation.ErrDayNotAvailable):
			h.logger.Warn("POST /reservations - Day not available: room_id=%d, date=%s", req.RoomID, req.Date)
			handlers.RespondBadRequest(w, msgDayNotAvailable)

		case errors.Is(err, submitReservation.ErrTimeOutsideWindow):
			h.logger.Warn("POST /reservations - Time outside window: room_id=%d, interval=[%s, %s)",
				req.RoomID, req.StartTime, req.EndTime)
			handlers.RespondBadRequest(w, msgTimeOutsideWindow)

		case errors.Is(err, submitReservation.ErrSlotConflict):
			h.logger.Warn("POST /reservations - Slot conflict: room_id=%d, date=%s, interval=[%s, %s)",
				req.RoomID, req.Date, req.StartTime, req.EndTime)
			handlers.RespondConflict(w, msgSlotConflict)

		case errors.Is(err, submitReservation.ErrContention):
			h.logger.Warn("POST /reservations - Transaction contention: room_id=%d, date=%s", req.RoomID, req.Date)
			handlers.RespondServiceUnavailable(w, msgContention)

		case errors.Is(err, submitReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservations - Failed to submit reservation: room_id=%d, error=%v", req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation submitted: reservation_id=%d, room_id=%d", result.ID, result.RoomID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
