package accept_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/X-Sarthak/CSIR-Project-sub000/internal/api/handlers"
	"github.com/X-Sarthak/CSIR-Project-sub000/internal/api/middleware"
	"github.com/X-Sarthak/CSIR-Project-sub000/internal/service/reservations"
)

const (
	msgInvalidReservationID = "некорректный идентификатор бронирования"
	msgReservationNotFound  = "бронирование не найдено"
	msgAccessDenied         = "доступ запрещен"
	msgCancelled            = "бронирование отменено, принять его нельзя"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/reservations/{id}/accept
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgAccessDenied)
		return
	}

	reservationID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /reservations/{id}/accept - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	if err := h.service.Accept(r.Context(), reservationID, principal); err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/{id}/accept - Not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("PATCH /reservations/{id}/accept - Access denied: reservation_id=%d", reservationID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, reservations.ErrReservationCancelled):
			h.logger.Warn("PATCH /reservations/{id}/accept - Reservation cancelled: reservation_id=%d", reservationID)
			handlers.RespondConflict(w, msgCancelled)

		default:
			h.logger.Error("PATCH /reservations/{id}/accept - Failed: reservation_id=%d, error=%v", reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/{id}/accept - Accepted: reservation_id=%d", reservationID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
