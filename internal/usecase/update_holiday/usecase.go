package update_holiday

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HolidayService/internal/domain"
	holidayRepo "github.com/m04kA/SMC-HolidayService/internal/infra/storage/holiday"
	"github.com/m04kA/SMC-HolidayService/internal/integrations/events"
	"github.com/m04kA/SMC-HolidayService/internal/scheduling"
)

const operation = "update"

// UseCase use case для обновления отпуска
type UseCase struct {
	holidayRepo  HolidayRepository
	validator    Validator
	txManager    TransactionManager
	publisher    EventPublisher
	decisions    DecisionRecorder
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	holidayRepo HolidayRepository,
	validator Validator,
	txManager TransactionManager,
	publisher EventPublisher,
	decisions DecisionRecorder,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		holidayRepo:  holidayRepo,
		validator:    validator,
		txManager:    txManager,
		publisher:    publisher,
		decisions:    decisions,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute выполняет use case обновления отпуска
// Загруженная запись не изменяется: строится предлагаемое состояние, оно проверяется
// как новый отпуск (без сравнения с самим собой) и только затем заменяет старое
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateHoliday: id=%s, employee=%s, start=%s, end=%s",
		req.ID, req.EmployeeID, req.Start.Format(domain.TimestampFormat), req.End.Format(domain.TimestampFormat))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateHoliday: validation failed: %v", err)
		return nil, err
	}

	var updated *domain.Holiday

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := uc.holidayRepo.LockSchedule(txCtx); err != nil {
			return fmt.Errorf("%w: lock schedule: %v", ErrInternal, err)
		}

		existing, err := uc.holidayRepo.GetByID(txCtx, req.ID)
		if err != nil {
			if errors.Is(err, holidayRepo.ErrHolidayNotFound) {
				return ErrHolidayNotFound
			}
			return fmt.Errorf("%w: get holiday: %v", ErrInternal, err)
		}

		proposed := existing.WithChanges(req.changes())

		violation, err := uc.validator.ValidateUpdate(txCtx, existing.ID, proposed)
		if err != nil {
			return fmt.Errorf("%w: validate: %v", ErrInternal, err)
		}
		if violation != nil {
			return violation
		}

		updated, err = uc.holidayRepo.Update(txCtx, proposed)
		if err != nil {
			switch {
			case errors.Is(err, holidayRepo.ErrHolidayNotFound):
				return ErrHolidayNotFound
			case errors.Is(err, holidayRepo.ErrOverlapConstraint):
				return scheduling.NewViolation(scheduling.KindOverlap)
			}
			return fmt.Errorf("%w: update holiday: %v", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		if violation, ok := scheduling.AsViolation(err); ok {
			uc.decisions.RecordRuleDecision(operation, string(violation.Kind))
			uc.logger.Warn("UpdateHoliday: rejected for holiday id=%s: %s", req.ID, violation.Kind)
			return nil, violation
		}
		if errors.Is(err, ErrHolidayNotFound) {
			uc.logger.Warn("UpdateHoliday: holiday id=%s not found", req.ID)
			return nil, err
		}
		uc.logger.Error("UpdateHoliday: failed for holiday id=%s: %v", req.ID, err)
		if !errors.Is(err, ErrInternal) {
			err = fmt.Errorf("%w: transaction: %v", ErrInternal, err)
		}
		return nil, err
	}

	uc.decisions.RecordRuleDecision(operation, "accepted")

	event := events.NewHolidayEvent(events.HolidayUpdated, updated, uc.timeProvider.Now())
	if err := uc.publisher.Publish(ctx, event); err != nil {
		uc.logger.Error("UpdateHoliday: failed to publish event for holiday id=%s: %v", updated.ID, err)
	}

	uc.logger.Info("UpdateHoliday: holiday id=%s updated", updated.ID)
	return fromDomain(updated), nil
}
