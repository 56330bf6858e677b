package update_plan

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barber-scheduling-service/internal/domain"
	planRepo "barber-scheduling-service/internal/infra/storage/plan"
	"barber-scheduling-service/pkg/ptr"
	"barber-scheduling-service/pkg/types"
)

type stubScheduleRepo struct {
	cfg *domain.ScheduleConfig
}

func (s *stubScheduleRepo) GetConfig(ctx context.Context, barberID int64) (*domain.ScheduleConfig, error) {
	return s.cfg, nil
}

type fakePlanRepo struct {
	plans map[int64]*domain.RecurringPlan
}

func (f *fakePlanRepo) GetByID(ctx context.Context, id int64) (*domain.RecurringPlan, error) {
	p, ok := f.plans[id]
	if !ok {
		return nil, planRepo.ErrPlanNotFound
	}
	copied := *p
	return &copied, nil
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
		copied := *p
		result = append(result, &copied)
	}
	return result, nil
}

func (f *fakePlanRepo) Update(ctx context.Context, plan *domain.RecurringPlan) error {
	if _, ok := f.plans[plan.ID]; !ok {
		return planRepo.ErrPlanNotFound
	}
	copied := *plan
	f.plans[plan.ID] = &copied
	return nil
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
	uc    *UseCase
	plans *fakePlanRepo
}

func newFixture() *fixture {
	f := &fixture{
		plans: &fakePlanRepo{plans: map[int64]*domain.RecurringPlan{
			1: {
				ID:         1,
				BarberID:   1,
				ClientName: "Петр",
				Weekday:    1,
				StartTime:  "10:00",
				StartDate:  time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
			},
		}},
	}
	f.uc = NewUseCase(
		&stubScheduleRepo{cfg: domain.DefaultScheduleConfig(1)},
		f.plans,
		passTxManager{},
		nopLogger{},
	)
	f.uc.timeProvider = &fixedTime{now: time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)}
	return f
}

func TestExecuteMovesPlanToAnotherSlot(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), &Request{
		PlanID:    1,
		Weekday:   ptr.Ptr(3),
		StartTime: ptr.Ptr(types.TimeString("15:00")),
	})
	require.NoError(t, err)

	assert.Equal(t, 3, resp.Weekday)
	assert.Equal(t, types.TimeString("15:00"), resp.StartTime)
	assert.Equal(t, types.TimeString("15:00"), f.plans.plans[1].StartTime)
}

func TestExecuteNilFieldsStayUnchanged(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), &Request{PlanID: 1, ClientName: ptr.Ptr("Сергей")})
	require.NoError(t, err)

	assert.Equal(t, "Сергей", resp.ClientName)
	assert.Equal(t, 1, resp.Weekday)
	assert.Equal(t, types.TimeString("10:00"), resp.StartTime)
}

func TestExecuteClearEndDate(t *testing.T) {
	f := newFixture()
	endDate := time.Date(2026, 4, 6, 0, 0, 0, 0, time.UTC)
	f.plans.plans[1].EndDate = &endDate

	resp, err := f.uc.Execute(context.Background(), &Request{PlanID: 1, ClearEndDate: true})
	require.NoError(t, err)

	assert.Nil(t, resp.EndDate)
}

func TestExecuteOverlapWithOtherPlan(t *testing.T) {
	f := newFixture()
	f.plans.plans[2] = &domain.RecurringPlan{
		ID:         2,
		BarberID:   1,
		ClientName: "Олег",
		Weekday:    3,
		StartTime:  "15:00",
		StartDate:  time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC),
	}

	_, err := f.uc.Execute(context.Background(), &Request{
		PlanID:    1,
		Weekday:   ptr.Ptr(3),
		StartTime: ptr.Ptr(types.TimeString("15:00")),
	})
	assert.ErrorIs(t, err, ErrPlanOverlap)
}

func TestExecuteExcludesSelfFromOverlapScan(t *testing.T) {
	f := newFixture()

	// Сдвигаем только дату начала, слот остается тем же
	_, err := f.uc.Execute(context.Background(), &Request{PlanID: 1, StartDate: ptr.Ptr("2026-03-09")})
	assert.NoError(t, err)
}

func TestExecuteSlotNotOffered(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), &Request{PlanID: 1, StartTime: ptr.Ptr(types.TimeString("12:00"))})
	assert.ErrorIs(t, err, ErrSlotNotOffered)
}

func TestExecuteInvalidRange(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), &Request{PlanID: 1, EndDate: ptr.Ptr("2026-02-01")})
	assert.ErrorIs(t, err, ErrPlanRangeInvalid)
}

func TestExecutePlanNotFound(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), &Request{PlanID: 99})
	assert.ErrorIs(t, err, ErrPlanNotFound)
}
