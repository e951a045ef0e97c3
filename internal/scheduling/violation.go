package scheduling

import (
	"errors"
	"fmt"
)

// ErrRuleViolation базовая ошибка для всех нарушений бизнес-правил
// Позволяет отличить ожидаемый отказ от NotFound и внутренних ошибок через errors.Is
var ErrRuleViolation = errors.New("scheduling: business rule violation")

// ViolationKind тип нарушенного правила
type ViolationKind string

const (
	KindInvalidDateOrder    ViolationKind = "invalid_date_order"
	KindLeadTime            ViolationKind = "lead_time"
	KindCancellationNotice  ViolationKind = "cancellation_notice"
	KindOverlap             ViolationKind = "overlap"
	KindSameEmployeeOverlap ViolationKind = "same_employee_overlap"
	KindInsufficientGap     ViolationKind = "insufficient_gap"
)

var violationMessages = map[ViolationKind]string{
	KindInvalidDateOrder:    "endOfHoliday must be after startOfHoliday",
	KindLeadTime:            "Holiday must be planned at least 5 working days before the start date",
	KindCancellationNotice:  "Holiday must be cancelled at least 5 working days before the start date",
	KindOverlap:             "Holidays must not overlap (between any crew members)",
	KindSameEmployeeOverlap: "Holidays must not overlap for the same employee",
	KindInsufficientGap:     "There should be a gap of at least 3 working days between holidays for the same employee",
}

// Violation результат отклонения запроса одним из правил
// nil означает, что правило пройдено
type Violation struct {
	Kind    ViolationKind
	Message string
}

// NewViolation создает нарушение с сообщением по умолчанию для данного типа
func NewViolation(kind ViolationKind) *Violation {
	return &Violation{Kind: kind, Message: violationMessages[kind]}
}

func (v *Violation) Error() string {
	return fmt.Sprintf("%s: %s", v.Kind, v.Message)
}

// Is позволяет проверять нарушения через errors.Is(err, ErrRuleViolation)
func (v *Violation) Is(target error) bool {
	return target == ErrRuleViolation
}

// AsViolation извлекает нарушение правила из цепочки ошибок
func AsViolation(err error) (*Violation, bool) {
	var v *Violation
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}
