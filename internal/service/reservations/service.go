package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/X-Sarthak/CSIR-Project-sub000/internal/domain"
	reservationRepo "github.com/X-Sarthak/CSIR-Project-sub000/internal/infra/storage/reservation"
	"github.com/X-Sarthak/CSIR-Project-sub000/internal/integrations/identity"
	"github.com/X-Sarthak/CSIR-Project-sub000/internal/service/reservations/models"
	"github.com/X-Sarthak/CSIR-Project-sub000/pkg/ptr"
)

// Service сервис переходов статусов и чтения бронирований.
// Каждая операция принимает уже аутентифицированного принципала -
// сервис не хранит сессионного состояния.
type Service struct {
	reservationRepo ReservationRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(reservationRepo ReservationRepository, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// Accept переводит бронирование в статус accepted и очищает причину отклонения.
// Доступно только identity переговорной, которой принадлежит бронирование.
// Идемпотентно: повторный accept уже принятого бронирования - успех без изменений.
// Повторный accept отклоненного бронирования разрешен (легаси-поведение);
// отмененное бронирование принять нельзя.
func (s *Service) Accept(ctx context.Context, reservationID int64, principal *identity.Principal) error {
	s.logger.Info("Accept: reservation id=%d", reservationID)

	reservation, err := s.getReservation(ctx, "Accept", reservationID)
	if err != nil {
		return err
	}

	if !principal.IsRoom(reservation.RoomID) {
		s.logger.Warn("Accept: principal is not the owning room of reservation id=%d", reservationID)
		return ErrAccessDenied
	}

	if reservation.IsCancelled() {
		s.logger.Warn("Accept: reservation id=%d is cancelled", reservationID)
		return ErrReservationCancelled
	}

	if reservation.Status == domain.StatusAccepted {
		s.logger.Info("Accept: reservation id=%d already accepted, no-op", reservationID)
		return nil
	}

	if err := s.reservationRepo.UpdateStatus(ctx, reservationID, domain.StatusAccepted, nil); err != nil {
		return s.mapUpdateError("Accept", reservationID, err)
	}

	s.logger.Info("Accept: reservation id=%d accepted", reservationID)
	return nil
}

// Reject переводит бронирование в статус rejected с обязательной причиной.
// Доступно только identity переговорной. Повторное отклонение принятого
// бронирования разрешено (легаси-поведение); отмененное отклонить нельзя.
func (s *Service) Reject(ctx context.Context, reservationID int64, reason string, principal *identity.Principal) error {
	s.logger.Info("Reject: reservation id=%d", reservationID)

	if reason == "" {
		s.logger.Warn("Reject: empty reason for reservation id=%d", reservationID)
		return fmt.Errorf("%w: rejection reason is required", ErrInvalidInput)
	}
	if len(reason) > domain.MaxRejectionReasonLength {
		return fmt.Errorf("%w: rejection reason exceeds %d characters",
			ErrInvalidInput, domain.MaxRejectionReasonLength)
	}

	reservation, err := s.getReservation(ctx, "Reject", reservationID)
	if err != nil {
		return err
	}

	if !principal.IsRoom(reservation.RoomID) {
		s.logger.Warn("Reject: principal is not the owning room of reservation id=%d", reservationID)
		return ErrAccessDenied
	}

	if reservation.IsCancelled() {
		s.logger.Warn("Reject: reservation id=%d is cancelled", reservationID)
		return ErrReservationCancelled
	}

	if err := s.reservationRepo.UpdateStatus(ctx, reservationID, domain.StatusRejected, &reason); err != nil {
		return s.mapUpdateError("Reject", reservationID, err)
	}

	s.logger.Info("Reject: reservation id=%d rejected", reservationID)
	return nil
}

// Cancel переводит бронирование в статус cancelled.
// Доступно только автору: пользователю-владельцу, либо identity
// переговорной для бронирований, созданных самой переговорной.
// Причина фиксированная - domain.CancelledByUserReason.
func (s *Service) Cancel(ctx context.Context, reservationID int64, principal *identity.Principal) error {
	s.logger.Info("Cancel: reservation id=%d", reservationID)

	reservation, err := s.getReservation(ctx, "Cancel", reservationID)
	if err != nil {
		return err
	}

	if !s.isAuthor(reservation, principal) {
		s.logger.Warn("Cancel: principal is not the author of reservation id=%d", reservationID)
		return ErrAccessDenied
	}

	if reservation.IsCancelled() {
		s.logger.Info("Cancel: reservation id=%d already cancelled, no-op", reservationID)
		return nil
	}

	reason := ptr.Ptr(domain.CancelledByUserReason)
	if err := s.reservationRepo.UpdateStatus(ctx, reservationID, domain.StatusCancelled, reason); err != nil {
		return s.mapUpdateError("Cancel", reservationID, err)
	}

	s.logger.Info("Cancel: reservation id=%d cancelled", reservationID)
	return nil
}

// GetByID получает бронирование по ID.
// Доступно автору бронирования и identity владеющей переговорной.
func (s *Service) GetByID(ctx context.Context, reservationID int64, principal *identity.Principal) (*models.ReservationResponse, error) {
	reservation, err := s.getReservation(ctx, "GetByID", reservationID)
	if err != nil {
		return nil, err
	}

	if !s.isAuthor(reservation, principal) && !principal.IsRoom(reservation.RoomID) {
		s.logger.Warn("GetByID: access denied to reservation id=%d", reservationID)
		return nil, ErrAccessDenied
	}

	return models.FromDomainReservation(reservation), nil
}

// GetRoomReservations получает бронирования переговорной с фильтрацией.
// Доступно только identity самой переговорной.
func (s *Service) GetRoomReservations(ctx context.Context, req *models.GetRoomReservationsRequest, principal *identity.Principal) (*models.ReservationListResponse, error) {
	s.logger.Info("GetRoomReservations: room=%d", req.RoomID)

	if !principal.IsRoom(req.RoomID) {
		s.logger.Warn("GetRoomReservations: principal is not room id=%d", req.RoomID)
		return nil, ErrAccessDenied
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetRoomReservations: invalid filter for room=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	reservations, err := s.reservationRepo.GetByRoomWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetRoomReservations: repository error for room=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: GetRoomReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetRoomReservations: fetched %d reservation(s) for room=%d",
		len(reservations), req.RoomID)
	return models.FromDomainReservationList(reservations), nil
}

// GetRequesterReservations получает историю бронирований пользователя.
// Пользователь видит только свою историю.
func (s *Service) GetRequesterReservations(ctx context.Context, requesterID int64, status *string, principal *identity.Principal) (*models.ReservationListResponse, error) {
	s.logger.Info("GetRequesterReservations: requester=%d", requesterID)

	if !principal.IsRequester(requesterID) {
		s.logger.Warn("GetRequesterReservations: principal is not requester id=%d", requesterID)
		return nil, ErrAccessDenied
	}

	var domainStatus *domain.ReservationStatus
	if status != nil {
		converted, err := models.ToDomainReservationStatus(*status)
		if err != nil {
			s.logger.Warn("GetRequesterReservations: invalid status=%s", *status)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &converted
	}

	reservations, err := s.reservationRepo.GetByRequesterID(ctx, requesterID, domainStatus)
	if err != nil {
		s.logger.Error("GetRequesterReservations: repository error for requester=%d: %v", requesterID, err)
		return nil, fmt.Errorf("%w: GetRequesterReservations - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservationList(reservations), nil
}

// CountPending возвращает количество ожидающих решения бронирований
// переговорной. Эндпоинт опрашивается клиентами периодически.
func (s *Service) CountPending(ctx context.Context, roomID int64, principal *identity.Principal) (*models.PendingCountResponse, error) {
	if !principal.IsRoom(roomID) {
		s.logger.Warn("CountPending: principal is not room id=%d", roomID)
		return nil, ErrAccessDenied
	}

	count, err := s.reservationRepo.CountPendingByRoom(ctx, roomID)
	if err != nil {
		s.logger.Error("CountPending: repository error for room=%d: %v", roomID, err)
		return nil, fmt.Errorf("%w: CountPending - repository error: %v", ErrInternal, err)
	}

	return &models.PendingCountResponse{
		RoomID:       roomID,
		PendingCount: count,
	}, nil
}

// Вспомогательные методы

// isAuthor проверяет, что принципал - автор бронирования: пользователь,
// чей ID совпадает с requesterID, либо identity переговорной для
// бронирований без пользователя.
func (s *Service) isAuthor(reservation *domain.Reservation, principal *identity.Principal) bool {
	if reservation.RequesterID != nil {
		return principal.IsRequester(*reservation.RequesterID)
	}
	return principal.IsRoom(reservation.RoomID)
}

func (s *Service) getReservation(ctx context.Context, op string, reservationID int64) (*domain.Reservation, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("%s: reservation id=%d not found", op, reservationID)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("%s: repository error for reservation id=%d: %v", op, reservationID, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return reservation, nil
}

func (s *Service) mapUpdateError(op string, reservationID int64, err error) error {
	if errors.Is(err, reservationRepo.ErrReservationNotFound) {
		s.logger.Warn("%s: reservation id=%d not found during update", op, reservationID)
		return ErrReservationNotFound
	}
	s.logger.Error("%s: repository error for reservation id=%d: %v", op, reservationID, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
