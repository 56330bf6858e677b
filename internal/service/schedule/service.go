package schedule

import (
	"context"
	"errors"
	"fmt"
	"strings"

	barberRepo "barber-scheduling-service/internal/infra/storage/barber"
	scheduleRepo "barber-scheduling-service/internal/infra/storage/schedule"
	"barber-scheduling-service/internal/service/schedule/models"
)

// Service сервис справочника барберов и конфигурации расписания
type Service struct {
	barberRepo   BarberRepository
	scheduleRepo ScheduleRepository
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(
	barberRepo BarberRepository,
	scheduleRepo ScheduleRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		barberRepo:   barberRepo,
		scheduleRepo: scheduleRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// ListBarbers возвращает список барберов
func (s *Service) ListBarbers(ctx context.Context, onlyActive bool) (*models.BarberListResponse, error) {
	barbers, err := s.barberRepo.List(ctx, onlyActive)
	if err != nil {
		s.logger.Error("ListBarbers: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListBarbers - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBarberList(barbers), nil
}

// CreateBarber создает барбера
func (s *Service) CreateBarber(ctx context.Context, name string) (*models.BarberResponse, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name must not be empty", ErrInvalidInput)
	}

	s.logger.Info("CreateBarber: creating barber name=%s", name)

	barber, err := s.barberRepo.Create(ctx, name)
	if err != nil {
		s.logger.Error("CreateBarber: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateBarber - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateBarber: created barber id=%d", barber.ID)
	return models.FromDomainBarber(barber), nil
}

// UpdateBarber обновляет имя и/или активность барбера
func (s *Service) UpdateBarber(ctx context.Context, req *models.UpdateBarberRequest) (*models.BarberResponse, error) {
	if req.Name == nil && req.IsActive == nil {
		return nil, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, fmt.Errorf("%w: name must not be empty", ErrInvalidInput)
	}

	s.logger.Info("UpdateBarber: updating barber id=%d", req.BarberID)

	err := s.barberRepo.Update(ctx, req.BarberID, req.Name, req.IsActive)
	if err != nil {
		if errors.Is(err, barberRepo.ErrBarberNotFound) {
			s.logger.Warn("UpdateBarber: barber id=%d not found", req.BarberID)
			return nil, ErrBarberNotFound
		}
		s.logger.Error("UpdateBarber: repository error for barber id=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: UpdateBarber - repository error: %v", ErrInternal, err)
	}

	barber, err := s.barberRepo.GetByID(ctx, req.BarberID)
	if err != nil {
		s.logger.Error("UpdateBarber: failed to re-read barber id=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: UpdateBarber - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBarber(barber), nil
}

// GetConfig получает конфигурацию расписания барбера
// Если конфигурации еще нет, она создается со значениями по умолчанию
func (s *Service) GetConfig(ctx context.Context, barberID int64) (*models.ConfigResponse, error) {
	if _, err := s.barberRepo.GetByID(ctx, barberID); err != nil {
		if errors.Is(err, barberRepo.ErrBarberNotFound) {
			s.logger.Warn("GetConfig: barber id=%d not found", barberID)
			return nil, ErrBarberNotFound
		}
		s.logger.Error("GetConfig: repository error for barber id=%d: %v", barberID, err)
		return nil, fmt.Errorf("%w: GetConfig - repository error: %v", ErrInternal, err)
	}

	cfg, err := s.scheduleRepo.GetConfig(ctx, barberID)
	if err != nil {
		s.logger.Error("GetConfig: repository error for barber id=%d: %v", barberID, err)
		return nil, fmt.Errorf("%w: GetConfig - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainConfig(cfg), nil
}

// UpdateConfig валидирует и сохраняет конфигурацию расписания
// Замена списка выходных выполняется в одной транзакции с обновлением
func (s *Service) UpdateConfig(ctx context.Context, req *models.UpdateConfigRequest) (*models.ConfigResponse, error) {
	s.logger.Info("UpdateConfig: updating config for barber=%d", req.BarberID)

	cfg, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("UpdateConfig: validation failed for barber=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if _, err := s.barberRepo.GetByID(ctx, req.BarberID); err != nil {
		if errors.Is(err, barberRepo.ErrBarberNotFound) {
			s.logger.Warn("UpdateConfig: barber id=%d not found", req.BarberID)
			return nil, ErrBarberNotFound
		}
		s.logger.Error("UpdateConfig: repository error for barber id=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: UpdateConfig - repository error: %v", ErrInternal, err)
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		// Строка конфигурации создается при первом чтении
		if _, err := s.scheduleRepo.GetConfig(ctx, req.BarberID); err != nil {
			return err
		}
		return s.scheduleRepo.UpdateConfig(ctx, cfg)
	})
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrConfigNotFound) {
			s.logger.Warn("UpdateConfig: config for barber id=%d not found", req.BarberID)
			return nil, ErrBarberNotFound
		}
		s.logger.Error("UpdateConfig: failed to save config for barber=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: UpdateConfig - save config: %v", ErrInternal, err)
	}

	saved, err := s.scheduleRepo.GetConfig(ctx, req.BarberID)
	if err != nil {
		s.logger.Error("UpdateConfig: failed to re-read config for barber=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: UpdateConfig - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateConfig: config for barber=%d saved", req.BarberID)
	return models.FromDomainConfig(saved), nil
}
