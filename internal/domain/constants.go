package domain

// Business rule constants
const (
	// MinLeadWorkingDays минимальное количество рабочих дней между текущей датой
	// и началом отпуска (и при планировании, и при отмене)
	MinLeadWorkingDays = 5

	// MinGapWorkingDays минимальный перерыв в рабочих днях между отпусками одного сотрудника
	MinGapWorkingDays = 3
)

// Validation constants
const (
	MaxLabelLength        = 255
	MaxEmployeeNameLength = 255
)

// TimestampFormat формат меток времени в API и логах (RFC 3339)
const TimestampFormat = "2006-01-02T15:04:05Z07:00"
