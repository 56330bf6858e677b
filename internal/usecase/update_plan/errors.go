package update_plan

import "errors"

var (
	// ErrPlanNotFound возвращается, когда план не найден
	ErrPlanNotFound = errors.New("update_plan: plan not found")

	// ErrPlanRangeInvalid возвращается при некорректном диапазоне дат
	// или дне недели вне 0..6
	ErrPlanRangeInvalid = errors.New("update_plan: invalid plan range")

	// ErrNoRepresentativeDate возвращается, когда не удалось подобрать
	// конкретную дату с нужным днем недели для проверки расписания
	ErrNoRepresentativeDate = errors.New("update_plan: no representative date found")

	// ErrSlotNotOffered возвращается, когда время плана не предлагается
	// расписанием в этот день недели
	ErrSlotNotOffered = errors.New("update_plan: slot is not offered by the schedule")

	// ErrPlanOverlap возвращается, когда диапазон дат пересекается
	// с другим планом на тот же слот
	ErrPlanOverlap = errors.New("update_plan: plan overlaps an existing plan")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_plan: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_plan: internal error")
)
