package plans

import (
	"context"
	"errors"
	"fmt"
	"time"

	"barber-scheduling-service/internal/domain"
	barberRepo "barber-scheduling-service/internal/infra/storage/barber"
	planRepo "barber-scheduling-service/internal/infra/storage/plan"
	"barber-scheduling-service/internal/service/plans/models"
)

// Service сервис чтения и удаления еженедельных планов
// Создание и обновление проходят через usecase-слой с проверкой конфликтов
type Service struct {
	planRepo   PlanRepository
	barberRepo BarberRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса планов
func NewService(
	planRepo PlanRepository,
	barberRepo BarberRepository,
	logger Logger,
) *Service {
	return &Service{
		planRepo:   planRepo,
		barberRepo: barberRepo,
		logger:     logger,
	}
}

// GetByID получает план по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.PlanResponse, error) {
	plan, err := s.planRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, planRepo.ErrPlanNotFound) {
			s.logger.Warn("GetByID: plan id=%d not found", id)
			return nil, ErrPlanNotFound
		}
		s.logger.Error("GetByID: repository error for plan id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainPlan(plan), nil
}

// ListByBarber получает все планы барбера
func (s *Service) ListByBarber(ctx context.Context, barberID int64) (*models.PlanListResponse, error) {
	if _, err := s.barberRepo.GetByID(ctx, barberID); err != nil {
		if errors.Is(err, barberRepo.ErrBarberNotFound) {
			s.logger.Warn("ListByBarber: barber id=%d not found", barberID)
			return nil, ErrBarberNotFound
		}
		s.logger.Error("ListByBarber: repository error for barber=%d: %v", barberID, err)
		return nil, fmt.Errorf("%w: ListByBarber - repository error: %v", ErrInternal, err)
	}

	plans, err := s.planRepo.ListByBarber(ctx, barberID)
	if err != nil {
		s.logger.Error("ListByBarber: repository error for barber=%d: %v", barberID, err)
		return nil, fmt.Errorf("%w: ListByBarber - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByBarber: fetched %d plans for barber=%d", len(plans), barberID)
	return models.FromDomainPlanList(plans), nil
}

// Delete удаляет план
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting plan id=%d", id)

	err := s.planRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, planRepo.ErrPlanNotFound) {
			s.logger.Warn("Delete: plan id=%d not found", id)
			return ErrPlanNotFound
		}
		s.logger.Error("Delete: repository error for plan id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: plan id=%d deleted", id)
	return nil
}

// Occurrences разворачивает план в конкретные даты в окне
// [сегодня, сегодня + горизонт]
func (s *Service) Occurrences(ctx context.Context, id int64, now time.Time) (*models.OccurrenceListResponse, error) {
	plan, err := s.planRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, planRepo.ErrPlanNotFound) {
			s.logger.Warn("Occurrences: plan id=%d not found", id)
			return nil, ErrPlanNotFound
		}
		s.logger.Error("Occurrences: repository error for plan id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Occurrences - repository error: %v", ErrInternal, err)
	}

	windowStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	windowEnd := windowStart.AddDate(0, 0, domain.OccurrenceHorizonDays)

	dates := plan.Occurrences(windowStart, windowEnd)

	s.logger.Info("Occurrences: plan id=%d has %d occurrences in window", id, len(dates))
	return models.FromOccurrences(plan.ID, windowStart, windowEnd, dates), nil
}
