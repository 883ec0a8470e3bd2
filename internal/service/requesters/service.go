package requesters

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/X-Sarthak/CSIR-Project-sub000/internal/domain"
	requesterRepo "github.com/X-Sarthak/CSIR-Project-sub000/internal/infra/storage/requester"
	"github.com/X-Sarthak/CSIR-Project-sub000/internal/integrations/identity"
	"github.com/X-Sarthak/CSIR-Project-sub000/internal/service/requesters/models"
)

// Service сервис регистрации и чтения пользователей
type Service struct {
	requesterRepo RequesterRepository
	logger        Logger
}

// NewService создает новый экземпляр сервиса пользователей
func NewService(requesterRepo RequesterRepository, logger Logger) *Service {
	return &Service{
		requesterRepo: requesterRepo,
		logger:        logger,
	}
}

// Create регистрирует пользователя в зоне ответственности администратора.
// Доступно только администраторам. Пароль хэшируется bcrypt.
func (s *Service) Create(ctx context.Context, req *models.CreateRequesterRequest, principal *identity.Principal) (*models.RequesterResponse, error) {
	s.logger.Info("CreateRequester: email=%s", req.Email)

	if principal.Role != identity.RoleAdmin && principal.Role != identity.RoleSuperAdmin {
		s.logger.Warn("CreateRequester: principal role=%s is not allowed", principal.Role)
		return nil, ErrAccessDenied
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: name, email and password are required", ErrInvalidInput)
	}
	if req.AdminID <= 0 {
		return nil, fmt.Errorf("%w: adminId must be positive", ErrInvalidInput)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	// Предварительная проверка занятости email, уникальный индекс
	// остается последней линией защиты от гонки
	if _, err := s.requesterRepo.GetByEmail(ctx, email); err == nil {
		s.logger.Warn("CreateRequester: email=%s already taken", email)
		return nil, ErrEmailTaken
	} else if !errors.Is(err, requesterRepo.ErrRequesterNotFound) {
		s.logger.Error("CreateRequester: failed to check email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: failed to check email: %v", ErrInternal, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("CreateRequester: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: failed to hash password: %v", ErrInternal, err)
	}

	requester, err := s.requesterRepo.Create(ctx, &domain.Requester{
		AdminID:      req.AdminID,
		Name:         req.Name,
		Department:   req.Department,
		Designation:  req.Designation,
		Email:        email,
		PasswordHash: string(hash),
		Active:       true,
	})
	if err != nil {
		if errors.Is(err, requesterRepo.ErrEmailTaken) {
			s.logger.Warn("CreateRequester: email=%s already taken", email)
			return nil, ErrEmailTaken
		}
		s.logger.Error("CreateRequester: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateRequester: successfully created requester id=%d", requester.ID)
	return models.FromDomainRequester(requester), nil
}

// GetByID получает пользователя по ID.
// Пользователь видит только себя, администраторы видят всех.
func (s *Service) GetByID(ctx context.Context, requesterID int64, principal *identity.Principal) (*models.RequesterResponse, error) {
	if !principal.IsRequester(requesterID) &&
		principal.Role != identity.RoleAdmin && principal.Role != identity.RoleSuperAdmin {
		s.logger.Warn("GetByID: access denied to requester id=%d", requesterID)
		return nil, ErrAccessDenied
	}

	requester, err := s.requesterRepo.GetByID(ctx, requesterID)
	if err != nil {
		if errors.Is(err, requesterRepo.ErrRequesterNotFound) {
			s.logger.Warn("GetByID: requester id=%d not found", requesterID)
			return nil, ErrRequesterNotFound
		}
		s.logger.Error("GetByID: repository error for requester id=%d: %v", requesterID, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRequester(requester), nil
}
