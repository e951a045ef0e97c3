package employees

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-HolidayService/internal/domain"
	employeeRepo "github.com/m04kA/SMC-HolidayService/internal/infra/storage/employee"
	"github.com/m04kA/SMC-HolidayService/internal/service/employees/models"
)

// Service сервис для работы с сотрудниками
type Service struct {
	employeeRepo EmployeeRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса сотрудников
func NewService(employeeRepo EmployeeRepository, logger Logger) *Service {
	return &Service{
		employeeRepo: employeeRepo,
		logger:       logger,
	}
}

// List возвращает всех сотрудников
func (s *Service) List(ctx context.Context) ([]*models.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d employees", len(employees))
	return models.FromDomainEmployeeList(employees), nil
}

// Create регистрирует нового сотрудника
func (s *Service) Create(ctx context.Context, req *models.CreateEmployeeRequest) (*models.EmployeeResponse, error) {
	s.logger.Info("Create: employee id=%s", req.EmployeeID)

	if !domain.IsValidEmployeeID(req.EmployeeID) {
		return nil, fmt.Errorf("%w: employeeId must match %s", ErrInvalidInput, domain.EmployeeIDPattern)
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(name) > domain.MaxEmployeeNameLength {
		return nil, fmt.Errorf("%w: name is longer than %d characters", ErrInvalidInput, domain.MaxEmployeeNameLength)
	}

	employee, err := s.employeeRepo.Create(ctx, &domain.Employee{ID: req.EmployeeID, Name: name})
	if err != nil {
		if errors.Is(err, employeeRepo.ErrEmployeeAlreadyExists) {
			s.logger.Warn("Create: employee id=%s already exists", req.EmployeeID)
			return nil, ErrEmployeeAlreadyExists
		}
		s.logger.Error("Create: repository error for employee id=%s: %v", req.EmployeeID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: employee id=%s created", employee.ID)
	return models.FromDomainEmployee(employee), nil
}
