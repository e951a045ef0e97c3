package delete_holiday

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-HolidayService/internal/domain"
	holidayRepo "github.com/m04kA/SMC-HolidayService/internal/infra/storage/holiday"
	"github.com/m04kA/SMC-HolidayService/internal/integrations/events"
	"github.com/m04kA/SMC-HolidayService/internal/scheduling"
)

const operation = "delete"

// UseCase use case для отмены (удаления) отпуска
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

// Execute удаляет отпуск, если до его начала осталось достаточно рабочих дней
func (uc *UseCase) Execute(ctx context.Context, id uuid.UUID) error {
	uc.logger.Info("DeleteHoliday: id=%s", id)

	if id == uuid.Nil {
		return fmt.Errorf("%w: holidayId is required", ErrInvalidInput)
	}

	var deleted *domain.Holiday

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := uc.holidayRepo.LockSchedule(txCtx); err != nil {
			return fmt.Errorf("%w: lock schedule: %v", ErrInternal, err)
		}

		existing, err := uc.holidayRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, holidayRepo.ErrHolidayNotFound) {
				return ErrHolidayNotFound
			}
			return fmt.Errorf("%w: get holiday: %v", ErrInternal, err)
		}

		if violation := uc.validator.ValidateDelete(existing); violation != nil {
			return violation
		}

		if err := uc.holidayRepo.Delete(txCtx, id); err != nil {
			if errors.Is(err, holidayRepo.ErrHolidayNotFound) {
				return ErrHolidayNotFound
			}
			return fmt.Errorf("%w: delete holiday: %v", ErrInternal, err)
		}

		deleted = existing
		return nil
	})

	if err != nil {
		if violation, ok := scheduling.AsViolation(err); ok {
			uc.decisions.RecordRuleDecision(operation, string(violation.Kind))
			uc.logger.Warn("DeleteHoliday: rejected for holiday id=%s: %s", id, violation.Kind)
			return violation
		}
		if errors.Is(err, ErrHolidayNotFound) {
			uc.logger.Warn("DeleteHoliday: holiday id=%s not found", id)
			return err
		}
		uc.logger.Error("DeleteHoliday: failed for holiday id=%s: %v", id, err)
		if !errors.Is(err, ErrInternal) {
			err = fmt.Errorf("%w: transaction: %v", ErrInternal, err)
		}
		return err
	}

	uc.decisions.RecordRuleDecision(operation, "accepted")

	event := events.NewHolidayEvent(events.HolidayDeleted, deleted, uc.timeProvider.Now())
	if err := uc.publisher.Publish(ctx, event); err != nil {
		uc.logger.Error("DeleteHoliday: failed to publish event for holiday id=%s: %v", id, err)
	}

	uc.logger.Info("DeleteHoliday: holiday id=%s deleted", id)
	return nil
}
