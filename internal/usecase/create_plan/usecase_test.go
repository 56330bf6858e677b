package create_plan

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barber-scheduling-service/internal/domain"
	barberRepo "barber-scheduling-service/internal/infra/storage/barber"
	"barber-scheduling-service/pkg/ptr"
	"barber-scheduling-service/pkg/types"
)

type stubBarberRepo struct {
	err error
}

func (s *stubBarberRepo) GetByID(ctx context.Context, id int64) (*domain.Barber, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Barber{ID: id, Name: "Алексей", IsActive: true}, nil
}

type stubScheduleRepo struct {
	cfg *domain.ScheduleConfig
}

func (s *stubScheduleRepo) GetConfig(ctx context.Context, barberID int64) (*domain.ScheduleConfig, error) {
	return s.cfg, nil
}

type fakePlanRepo struct {
	nextID int64
	plans  []*domain.RecurringPlan
}

func (f *fakePlanRepo) Create(ctx context.Context, plan *domain.RecurringPlan) (*domain.RecurringPlan, error) {
	f.nextID++
	created := *plan
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	f.plans = append(f.plans, &created)
	return &created, nil
}

func (f *fakePlanRepo) ListByKey(ctx context.Context, barberID int64, weekday int, startTime types.TimeString, excludeID *int64) ([]*domain.RecurringPlan, error) {
	result := make([]*domain.RecurringPlan, 0)
	for _, p := range f.plans {
		if p.BarberID != barberID || p.Weekday != weekday || p.StartTime != startTime {
			continue
		}
		if excludeID != nil && p.ID == *excludeID {
			continue
		}
		result = append(result, p)
	}
	return result, nil
}

type passTxManager struct{}

func (passTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixture struct {
	uc       *UseCase
	barbers  *stubBarberRepo
	schedule *stubScheduleRepo
	plans    *fakePlanRepo
}

func newFixture() *fixture {
	f := &fixture{
		barbers:  &stubBarberRepo{},
		schedule: &stubScheduleRepo{cfg: domain.DefaultScheduleConfig(1)},
		plans:    &fakePlanRepo{},
	}
	f.uc = NewUseCase(f.barbers, f.schedule, f.plans, passTxManager{}, nopLogger{})
	f.uc.timeProvider = &fixedTime{now: time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)}
	return f
}

func validRequest() *Request {
	return &Request{
		BarberID:   1,
		ClientName: "Петр",
		Weekday:    1,
		StartTime:  "10:00",
		StartDate:  "2026-03-02",
	}
}

func TestExecuteCreatesPlan(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, 1, resp.Weekday)
	assert.Nil(t, resp.EndDate)
	require.Len(t, f.plans.plans, 1)
}

func TestExecuteOverlappingPlanRejected(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Тот же слот, бессрочный диапазон поверх существующего
	_, err = f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrPlanOverlap)
}

func TestExecuteDisjointRangesOnSameSlot(t *testing.T) {
	f := newFixture()

	first := validRequest()
	first.EndDate = ptr.Ptr("2026-03-30")
	_, err := f.uc.Execute(context.Background(), first)
	require.NoError(t, err)

	second := validRequest()
	second.StartDate = "2026-04-06"
	_, err = f.uc.Execute(context.Background(), second)
	assert.NoError(t, err)
}

func TestExecuteSameTimeDifferentWeekday(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	other := validRequest()
	other.Weekday = 2
	other.StartDate = "2026-03-03"
	_, err = f.uc.Execute(context.Background(), other)
	assert.NoError(t, err)
}

func TestExecuteSlotNotOffered(t *testing.T) {
	f := newFixture()

	t.Run("lunch time", func(t *testing.T) {
		req := validRequest()
		req.StartTime = "12:00"
		_, err := f.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrSlotNotOffered)
	})

	t.Run("non-working weekday", func(t *testing.T) {
		req := validRequest()
		req.Weekday = 0
		_, err := f.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrSlotNotOffered)
	})
}

func TestExecuteNoRepresentativeDate(t *testing.T) {
	f := newFixture()

	// Все понедельники в пределах поиска сделаны выходными
	daysOff := make([]string, 0, domain.RepresentativeDateMaxWeekHops+1)
	d := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	for i := 0; i <= domain.RepresentativeDateMaxWeekHops; i++ {
		daysOff = append(daysOff, d.Format(domain.DateFormat))
		d = d.AddDate(0, 0, 7)
	}
	f.schedule.cfg.DaysOff = domain.NewDateSet(daysOff...)

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrNoRepresentativeDate)
}

func TestExecuteInvalidRange(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.EndDate = ptr.Ptr("2026-02-01")

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrPlanRangeInvalid)
}

func TestExecuteInvalidWeekday(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.Weekday = 7

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrPlanRangeInvalid)
}

func TestExecuteBarberNotFound(t *testing.T) {
	f := newFixture()
	f.barbers.err = barberRepo.ErrBarberNotFound

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrBarberNotFound)
}
