package holidays

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-HolidayService/internal/domain"
	holidayRepo "github.com/m04kA/SMC-HolidayService/internal/infra/storage/holiday"
	"github.com/m04kA/SMC-HolidayService/internal/service/holidays/models"
)

// Service сервис чтения отпусков
type Service struct {
	holidayRepo HolidayRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса отпусков
func NewService(holidayRepo HolidayRepository, logger Logger) *Service {
	return &Service{
		holidayRepo: holidayRepo,
		logger:      logger,
	}
}

// List возвращает все отпуска или отпуска одного сотрудника, отсортированные по началу
// Пустой employeeId равносилен его отсутствию
func (s *Service) List(ctx context.Context, employeeID *string) ([]*models.HolidayResponse, error) {
	var (
		holidays []*domain.Holiday
		err      error
	)

	if employeeID != nil && strings.TrimSpace(*employeeID) != "" {
		if !domain.IsValidEmployeeID(*employeeID) {
			s.logger.Warn("List: invalid employee id=%q", *employeeID)
			return nil, fmt.Errorf("%w: employeeId must match %s", ErrInvalidInput, domain.EmployeeIDPattern)
		}
		s.logger.Info("List: fetching holidays for employee=%s", *employeeID)
		holidays, err = s.holidayRepo.GetByEmployeeID(ctx, *employeeID)
	} else {
		s.logger.Info("List: fetching all holidays")
		holidays, err = s.holidayRepo.GetAll(ctx)
	}

	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d holidays", len(holidays))
	return models.FromDomainHolidayList(holidays), nil
}

// GetByID получает отпуск по ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.HolidayResponse, error) {
	s.logger.Info("GetByID: fetching holiday id=%s", id)

	holiday, err := s.holidayRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, holidayRepo.ErrHolidayNotFound) {
			s.logger.Warn("GetByID: holiday id=%s not found", id)
			return nil, ErrHolidayNotFound
		}
		s.logger.Error("GetByID: repository error for holiday id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainHoliday(holiday), nil
}
