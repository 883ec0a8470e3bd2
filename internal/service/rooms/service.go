package rooms

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/X-Sarthak/CSIR-Project-sub000/internal/domain"
	roomRepo "github.com/X-Sarthak/CSIR-Project-sub000/internal/infra/storage/room"
	"github.com/X-Sarthak/CSIR-Project-sub000/internal/integrations/identity"
	"github.com/X-Sarthak/CSIR-Project-sub000/internal/service/rooms/models"
	"github.com/X-Sarthak/CSIR-Project-sub000/pkg/types"
)

// Service сервис для работы с переговорными
type Service struct {
	roomRepo RoomRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса переговорных
func NewService(roomRepo RoomRepository, logger Logger) *Service {
	return &Service{
		roomRepo: roomRepo,
		logger:   logger,
	}
}

// Create создает переговорную. Доступно только администраторам.
// Пароль хэшируется bcrypt, исходное значение нигде не сохраняется.
func (s *Service) Create(ctx context.Context, req *models.CreateRoomRequest, principal *identity.Principal) (*models.RoomResponse, error) {
	s.logger.Info("CreateRoom: name=%s, login=%s", req.Name, req.Login)

	if principal.Role != identity.RoleAdmin && principal.Role != identity.RoleSuperAdmin {
		s.logger.Warn("CreateRoom: principal role=%s is not allowed to create rooms", principal.Role)
		return nil, ErrAccessDenied
	}

	if req.Name == "" || req.Login == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: name, login and password are required", ErrInvalidInput)
	}

	window, err := buildWindow(req.Weekdays, req.DailyStart, req.DailyEnd)
	if err != nil {
		s.logger.Warn("CreateRoom: invalid window: %v", err)
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("CreateRoom: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: failed to hash password: %v", ErrInternal, err)
	}

	room, err := s.roomRepo.Create(ctx, &domain.Room{
		Name:         req.Name,
		ApproverName: req.ApproverName,
		Login:        req.Login,
		PasswordHash: string(hash),
		Active:       true,
		Window:       *window,
	})
	if err != nil {
		if errors.Is(err, roomRepo.ErrLoginTaken) {
			s.logger.Warn("CreateRoom: login=%s already taken", req.Login)
			return nil, ErrLoginTaken
		}
		s.logger.Error("CreateRoom: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateRoom: successfully created room id=%d", room.ID)
	return models.FromDomainRoom(room), nil
}

// GetByID получает переговорную по ID
func (s *Service) GetByID(ctx context.Context, roomID int64) (*models.RoomResponse, error) {
	room, err := s.getRoom(ctx, "GetByID", roomID)
	if err != nil {
		return nil, err
	}
	return models.FromDomainRoom(room), nil
}

// GetWindow возвращает окно доступности переговорной
func (s *Service) GetWindow(ctx context.Context, roomID int64) (*models.WindowResponse, error) {
	room, err := s.getRoom(ctx, "GetWindow", roomID)
	if err != nil {
		return nil, err
	}
	return models.FromDomainWindow(&room.Window), nil
}

// SetActive включает или выключает переговорную. Доступно администраторам.
func (s *Service) SetActive(ctx context.Context, roomID int64, active bool, principal *identity.Principal) error {
	if principal.Role != identity.RoleAdmin && principal.Role != identity.RoleSuperAdmin {
		s.logger.Warn("SetActive: principal role=%s is not allowed", principal.Role)
		return ErrAccessDenied
	}

	if err := s.roomRepo.SetActive(ctx, roomID, active); err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("SetActive: room id=%d not found", roomID)
			return ErrRoomNotFound
		}
		s.logger.Error("SetActive: repository error for room id=%d: %v", roomID, err)
		return fmt.Errorf("%w: SetActive - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetActive: room id=%d active=%t", roomID, active)
	return nil
}

// Delete удаляет переговорную вместе со всеми её бронированиями
// (каскад по внешнему ключу). Доступно администраторам.
func (s *Service) Delete(ctx context.Context, roomID int64, principal *identity.Principal) error {
	if principal.Role != identity.RoleAdmin && principal.Role != identity.RoleSuperAdmin {
		s.logger.Warn("Delete: principal role=%s is not allowed", principal.Role)
		return ErrAccessDenied
	}

	if err := s.roomRepo.Delete(ctx, roomID); err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("Delete: room id=%d not found", roomID)
			return ErrRoomNotFound
		}
		s.logger.Error("Delete: repository error for room id=%d: %v", roomID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Warn("Delete: room id=%d deleted with all reservations", roomID)
	return nil
}

// Вспомогательные методы

func buildWindow(weekdayNames []string, dailyStart, dailyEnd string) (*domain.AvailabilityWindow, error) {
	if len(weekdayNames) == 0 {
		return nil, fmt.Errorf("%w: at least one weekday is required", ErrInvalidInput)
	}

	weekdays, err := domain.NormalizeWeekdaySet(weekdayNames)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	start, err := types.NewTimeStringFromString(dailyStart)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid dailyStart: %v", ErrInvalidInput, err)
	}

	end, err := types.NewTimeStringFromString(dailyEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid dailyEnd: %v", ErrInvalidInput, err)
	}

	window := &domain.AvailabilityWindow{
		Weekdays:   weekdays,
		DailyStart: start,
		DailyEnd:   end,
	}

	if !window.IsValid() {
		return nil, ErrInvalidWindow
	}

	return window, nil
}

func (s *Service) getRoom(ctx context.Context, op string, roomID int64) (*domain.Room, error) {
	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("%s: room id=%d not found", op, roomID)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("%s: repository error for room id=%d: %v", op, roomID, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return room, nil
}
