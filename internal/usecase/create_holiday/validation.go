package create_holiday

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-HolidayService/internal/domain"
)

// validateRequest проверяет поля запроса
// Бизнес-правила (порядок дат, сроки, пересечения) проверяет scheduling.Validator
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.Label) == "" {
		return fmt.Errorf("%w: holidayLabel is required", ErrInvalidInput)
	}

	if utf8.RuneCountInString(req.Label) > domain.MaxLabelLength {
		return fmt.Errorf("%w: holidayLabel is longer than %d characters", ErrInvalidInput, domain.MaxLabelLength)
	}

	if !domain.IsValidEmployeeID(req.EmployeeID) {
		return fmt.Errorf("%w: employeeId must match %s", ErrInvalidInput, domain.EmployeeIDPattern)
	}

	if req.Start.IsZero() || req.End.IsZero() {
		return fmt.Errorf("%w: startOfHoliday and endOfHoliday are required", ErrInvalidInput)
	}

	if !req.Status.IsValid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, req.Status)
	}

	return nil
}
