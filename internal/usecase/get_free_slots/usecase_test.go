package get_free_slots

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barber-scheduling-service/internal/domain"
	barberRepo "barber-scheduling-service/internal/infra/storage/barber"
	"barber-scheduling-service/pkg/types"
)

type stubBarberRepo struct {
	err      error
	inactive bool
}

func (s *stubBarberRepo) GetByID(ctx context.Context, id int64) (*domain.Barber, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Barber{ID: id, Name: "Алексей", IsActive: !s.inactive}, nil
}

type stubScheduleRepo struct {
	cfg *domain.ScheduleConfig
}

func (s *stubScheduleRepo) GetConfig(ctx context.Context, barberID int64) (*domain.ScheduleConfig, error) {
	return s.cfg, nil
}

type stubBookingRepo struct {
	occupied []types.TimeString
}

func (s *stubBookingRepo) ListOccupiedTimes(ctx context.Context, barberID int64, date string) ([]types.TimeString, error) {
	return s.occupied, nil
}

type stubPlanRepo struct {
	blocked []types.TimeString
}

func (s *stubPlanRepo) BlockedTimes(ctx context.Context, barberID int64, date string, weekday int) ([]types.TimeString, error) {
	return s.blocked, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixture struct {
	uc       *UseCase
	barbers  *stubBarberRepo
	bookings *stubBookingRepo
	plans    *stubPlanRepo
}

func newFixture() *fixture {
	f := &fixture{
		barbers:  &stubBarberRepo{},
		bookings: &stubBookingRepo{},
		plans:    &stubPlanRepo{},
	}
	f.uc = NewUseCase(
		f.barbers,
		&stubScheduleRepo{cfg: domain.DefaultScheduleConfig(1)},
		f.bookings,
		f.plans,
		nopLogger{},
	)
	return f
}

func TestExecuteAllSlotsFree(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), &Request{BarberID: 1, Date: "2026-03-02"})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"09:00", "10:00", "11:00", "13:00", "14:00", "15:00", "16:00", "17:00",
	}, resp.Slots)
}

func TestExecuteSubtractsBookingsAndPlans(t *testing.T) {
	f := newFixture()
	f.bookings.occupied = []types.TimeString{"10:00", "15:00"}
	f.plans.blocked = []types.TimeString{"13:00"}

	resp, err := f.uc.Execute(context.Background(), &Request{BarberID: 1, Date: "2026-03-02"})
	require.NoError(t, err)

	assert.Equal(t, []string{"09:00", "11:00", "14:00", "16:00", "17:00"}, resp.Slots)
}

func TestExecuteOccupiedOffGridTimeIsIgnored(t *testing.T) {
	f := newFixture()
	// Запись, сделанная при старой сетке слотов, не влияет на текущую
	f.bookings.occupied = []types.TimeString{"10:30"}

	resp, err := f.uc.Execute(context.Background(), &Request{BarberID: 1, Date: "2026-03-02"})
	require.NoError(t, err)

	assert.Len(t, resp.Slots, 8)
}

func TestExecuteNonWorkingDayReturnsEmptyList(t *testing.T) {
	f := newFixture()

	// Воскресенье при конфигурации Пн-Сб
	resp, err := f.uc.Execute(context.Background(), &Request{BarberID: 1, Date: "2026-03-01"})
	require.NoError(t, err)

	assert.NotNil(t, resp.Slots)
	assert.Empty(t, resp.Slots)
}

func TestExecuteInvalidDate(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), &Request{BarberID: 1, Date: "03/02/2026"})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecuteBarberNotFound(t *testing.T) {
	f := newFixture()
	f.barbers.err = barberRepo.ErrBarberNotFound

	_, err := f.uc.Execute(context.Background(), &Request{BarberID: 99, Date: "2026-03-02"})
	assert.ErrorIs(t, err, ErrBarberNotFound)
}

func TestExecuteInactiveBarber(t *testing.T) {
	f := newFixture()
	f.barbers.inactive = true

	_, err := f.uc.Execute(context.Background(), &Request{BarberID: 1, Date: "2026-03-02"})
	assert.ErrorIs(t, err, ErrBarberNotFound)
}
