package bookings

import (
	"context"
	"errors"
	"fmt"

	"barber-scheduling-service/internal/domain"
	barberRepo "barber-scheduling-service/internal/infra/storage/barber"
	bookingRepo "barber-scheduling-service/internal/infra/storage/booking"
	"barber-scheduling-service/internal/service/bookings/models"
)

// Service сервис для работы с записями
type Service struct {
	bookingRepo BookingRepository
	barberRepo  BarberRepository
	notifier    Notifier
	logger      Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	bookingRepo BookingRepository,
	barberRepo BarberRepository,
	notifier Notifier,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		barberRepo:  barberRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// GetBarberBookings получает записи барбера с фильтрацией
// по дате, статусу и включению отмененных
func (s *Service) GetBarberBookings(ctx context.Context, req *models.GetBarberBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetBarberBookings: fetching bookings for barber=%d", req.BarberID)

	if _, err := s.barberRepo.GetByID(ctx, req.BarberID); err != nil {
		if errors.Is(err, barberRepo.ErrBarberNotFound) {
			s.logger.Warn("GetBarberBookings: barber=%d not found", req.BarberID)
			return nil, ErrBarberNotFound
		}
		s.logger.Error("GetBarberBookings: repository error for barber=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: GetBarberBookings - repository error: %v", ErrInternal, err)
	}

	bookings, err := s.bookingRepo.GetByBarberWithFilter(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("GetBarberBookings: repository error for barber=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: GetBarberBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetBarberBookings: fetched %d bookings for barber=%d", len(bookings), req.BarberID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет запись
// Отмена освобождает слот: занятость считается по не-отмененным записям
func (s *Service) Cancel(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d is already cancelled", id)
		return nil, ErrCannotCancel
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, domain.StatusCanceled); err != nil {
		s.logger.Error("Cancel: failed to update status for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - update status: %v", ErrInternal, err)
	}

	booking.Status = domain.StatusCanceled

	s.notifier.NotifyBestEffort(ctx, booking.ClientPhone, fmt.Sprintf(
		"Ваша запись на %s в %s отменена.",
		booking.Date.Format(domain.DateFormat),
		booking.StartTime.String(),
	))

	s.logger.Info("Cancel: booking id=%d cancelled", id)
	return models.FromDomainBooking(booking), nil
}

// SetStatus безусловно записывает произвольный статус
// Ядро различает только canceled / не canceled, поэтому любые
// другие строки от админа сохраняются как есть
func (s *Service) SetStatus(ctx context.Context, id int64, status string) (*models.BookingResponse, error) {
	s.logger.Info("SetStatus: setting status=%s for booking id=%d", status, id)

	if status == "" {
		return nil, fmt.Errorf("%w: status must not be empty", ErrInvalidInput)
	}

	err := s.bookingRepo.UpdateStatus(ctx, id, domain.BookingStatus(status))
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("SetStatus: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		if errors.Is(err, bookingRepo.ErrSlotTaken) {
			s.logger.Warn("SetStatus: booking id=%d cannot be reactivated, slot is taken", id)
			return nil, ErrSlotTaken
		}
		s.logger.Error("SetStatus: failed to update status for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: SetStatus - update status: %v", ErrInternal, err)
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("SetStatus: failed to re-read booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: SetStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetStatus: booking id=%d now has status=%s", id, status)
	return models.FromDomainBooking(booking), nil
}
