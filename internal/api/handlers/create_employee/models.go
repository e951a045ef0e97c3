package create_employee

import "github.com/m04kA/SMC-HolidayService/internal/service/employees/models"

// Request тело POST /api/employees
type Request struct {
	EmployeeID string `json:"employeeId" validate:"required,employee_id"`
	Name       string `json:"name" validate:"required,notblank,max=255"`
}

func (r *Request) toServiceRequest() *models.CreateEmployeeRequest {
	return &models.CreateEmployeeRequest{
		EmployeeID: r.EmployeeID,
		Name:       r.Name,
	}
}
