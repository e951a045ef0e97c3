package create_holiday

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HolidayService/internal/domain"
	holidayRepo "github.com/m04kA/SMC-HolidayService/internal/infra/storage/holiday"
	"github.com/m04kA/SMC-HolidayService/internal/integrations/events"
	"github.com/m04kA/SMC-HolidayService/internal/scheduling"
)

const operation = "create"

// UseCase use case для создания отпуска
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

// Execute выполняет use case создания отпуска
// Проверка правил и запись выполняются в одной транзакции под блокировкой расписания.
// Нарушение правила возвращается как *scheduling.Violation
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateHoliday: employee=%s, start=%s, end=%s",
		req.EmployeeID, req.Start.Format(domain.TimestampFormat), req.End.Format(domain.TimestampFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateHoliday: validation failed: %v", err)
		return nil, err
	}

	candidate := req.toDomain()

	var created *domain.Holiday

	// 2. Проверка правил и запись в одной транзакции
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := uc.holidayRepo.LockSchedule(txCtx); err != nil {
			return fmt.Errorf("%w: lock schedule: %v", ErrInternal, err)
		}

		violation, err := uc.validator.ValidateCreate(txCtx, candidate)
		if err != nil {
			return fmt.Errorf("%w: validate: %v", ErrInternal, err)
		}
		if violation != nil {
			return violation
		}

		created, err = uc.holidayRepo.Create(txCtx, candidate)
		if err != nil {
			// Ограничение исключения в БД срабатывает, только если пересечение появилось в обход блокировки
			if errors.Is(err, holidayRepo.ErrOverlapConstraint) {
				return scheduling.NewViolation(scheduling.KindOverlap)
			}
			return fmt.Errorf("%w: create holiday: %v", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		if violation, ok := scheduling.AsViolation(err); ok {
			uc.decisions.RecordRuleDecision(operation, string(violation.Kind))
			uc.logger.Warn("CreateHoliday: rejected for employee=%s: %s", req.EmployeeID, violation.Kind)
			return nil, violation
		}
		uc.logger.Error("CreateHoliday: failed for employee=%s: %v", req.EmployeeID, err)
		if !errors.Is(err, ErrInternal) {
			err = fmt.Errorf("%w: transaction: %v", ErrInternal, err)
		}
		return nil, err
	}

	uc.decisions.RecordRuleDecision(operation, "accepted")

	// 3. Событие публикуется после фиксации транзакции
	event := events.NewHolidayEvent(events.HolidayCreated, created, uc.timeProvider.Now())
	if err := uc.publisher.Publish(ctx, event); err != nil {
		uc.logger.Error("CreateHoliday: failed to publish event for holiday id=%s: %v", created.ID, err)
	}

	uc.logger.Info("CreateHoliday: holiday id=%s created for employee=%s", created.ID, created.EmployeeID)
	return fromDomain(created), nil
}
