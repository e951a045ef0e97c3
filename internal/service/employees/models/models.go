package models

import "github.com/m04kA/SMC-HolidayService/internal/domain"

// CreateEmployeeRequest запрос на создание сотрудника
type CreateEmployeeRequest struct {
	EmployeeID string `json:"employeeId"`
	Name       string `json:"name"`
}

// EmployeeResponse ответ с данными сотрудника
type EmployeeResponse struct {
	EmployeeID string `json:"employeeId"`
	Name       string `json:"name"`
}

// FromDomainEmployee конвертирует доменную модель в ответ
func FromDomainEmployee(e *domain.Employee) *EmployeeResponse {
	return &EmployeeResponse{
		EmployeeID: e.ID,
		Name:       e.Name,
	}
}

// FromDomainEmployeeList конвертирует список сотрудников
func FromDomainEmployeeList(employees []*domain.Employee) []*EmployeeResponse {
	result := make([]*EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		result = append(result, FromDomainEmployee(e))
	}
	return result
}
