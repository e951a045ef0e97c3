package domain

import "regexp"

// EmployeeIDPattern формат идентификатора сотрудника: klm и шесть цифр
const EmployeeIDPattern = `^klm[0-9]{6}$`

var employeeIDRegexp = regexp.MustCompile(EmployeeIDPattern)

// Employee represents a crew member
type Employee struct {
	ID   string
	Name string
}

// IsValidEmployeeID проверяет формат идентификатора сотрудника
func IsValidEmployeeID(id string) bool {
	return employeeIDRegexp.MatchString(id)
}
