package scheduling

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HolidayService/internal/domain"
	tf "github.com/m04kA/SMC-HolidayService/internal/testfixtures"
)

func TestCheckDateOrder(t *testing.T) {
	start := tf.At(2025, 10, 27, 9)

	tests := []struct {
		name string
		end  time.Time
		want bool
	}{
		{name: "end after start", end: start.Add(time.Hour), want: false},
		{name: "end equal to start", end: start, want: true},
		{name: "end before start", end: start.Add(-time.Hour), want: true},
		{name: "zero end", end: time.Time{}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			violation := CheckDateOrder(start, tt.end)
			if !tt.want {
				assert.Nil(t, violation)
				return
			}
			require.NotNil(t, violation)
			assert.Equal(t, KindInvalidDateOrder, violation.Kind)
		})
	}
}

func TestCheckLeadTime(t *testing.T) {
	now := tf.ReferenceTime() // среда 2025-10-15

	tests := []struct {
		name  string
		start time.Time
		ok    bool
	}{
		{name: "tomorrow", start: tf.At(2025, 10, 16, 9), ok: false},
		{name: "four working days", start: tf.At(2025, 10, 21, 9), ok: false},
		{name: "exactly five working days", start: tf.At(2025, 10, 22, 0), ok: true},
		{name: "weekend before the fifth day", start: tf.At(2025, 10, 19, 9), ok: false},
		{name: "in the past", start: tf.At(2025, 10, 1, 9), ok: false},
		{name: "far future", start: tf.At(2026, 1, 5, 9), ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			violation := CheckLeadTime(now, tt.start, KindLeadTime)
			if tt.ok {
				assert.Nil(t, violation)
				return
			}
			require.NotNil(t, violation)
			assert.Equal(t, KindLeadTime, violation.Kind)
		})
	}
}

func TestCheckLeadTime_CancellationKind(t *testing.T) {
	violation := CheckLeadTime(tf.ReferenceTime(), tf.At(2025, 10, 17, 9), KindCancellationNotice)

	require.NotNil(t, violation)
	assert.Equal(t, KindCancellationNotice, violation.Kind)
	assert.Equal(t, "Holiday must be cancelled at least 5 working days before the start date", violation.Message)
}

func TestCheckOverlap(t *testing.T) {
	existing := tf.NewHoliday(tf.At(2025, 10, 27, 9), tf.At(2025, 10, 29, 17))

	tests := []struct {
		name       string
		start, end time.Time
		exclude    uuid.UUID
		overlaps   bool
	}{
		{name: "one hour inside", start: tf.At(2025, 10, 29, 16), end: tf.At(2025, 10, 31, 17), overlaps: true},
		{name: "contains existing", start: tf.At(2025, 10, 26, 0), end: tf.At(2025, 11, 1, 0), overlaps: true},
		{name: "touching at the end", start: tf.At(2025, 10, 29, 17), end: tf.At(2025, 10, 31, 17), overlaps: false},
		{name: "touching at the start", start: tf.At(2025, 10, 24, 9), end: tf.At(2025, 10, 27, 9), overlaps: false},
		{name: "excluded by own id", start: tf.At(2025, 10, 28, 9), end: tf.At(2025, 10, 30, 17), exclude: existing.ID, overlaps: false},
		{name: "other id does not exclude", start: tf.At(2025, 10, 28, 9), end: tf.At(2025, 10, 30, 17), exclude: uuid.New(), overlaps: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			violation := CheckOverlap(tt.start, tt.end, []*domain.Holiday{existing}, tt.exclude)
			if !tt.overlaps {
				assert.Nil(t, violation)
				return
			}
			require.NotNil(t, violation)
			assert.Equal(t, KindOverlap, violation.Kind)
		})
	}
}

func TestCheckOverlap_Symmetric(t *testing.T) {
	base := tf.At(2025, 10, 27, 0)
	intervals := make([][2]time.Time, 0)
	for startHour := 0; startHour < 72; startHour += 7 {
		for length := 1; length < 60; length += 11 {
			start := base.Add(time.Duration(startHour) * time.Hour)
			intervals = append(intervals, [2]time.Time{start, start.Add(time.Duration(length) * time.Hour)})
		}
	}

	for _, x := range intervals {
		for _, y := range intervals {
			hx := tf.NewHoliday(x[0], x[1])
			hy := tf.NewHoliday(y[0], y[1])

			xy := CheckOverlap(x[0], x[1], []*domain.Holiday{hy}, uuid.Nil) != nil
			yx := CheckOverlap(y[0], y[1], []*domain.Holiday{hx}, uuid.Nil) != nil
			assert.Equal(t, xy, yx, "x=%v y=%v", x, y)
		}
	}
}

func TestCheckGap(t *testing.T) {
	// Отпуск сотрудника заканчивается в пятницу 2025-10-24
	other := tf.NewHoliday(tf.At(2025, 10, 20, 9), tf.At(2025, 10, 24, 17))

	tests := []struct {
		name       string
		start, end time.Time
		exclude    uuid.UUID
		want       ViolationKind
	}{
		{name: "following Monday", start: tf.At(2025, 10, 27, 9), end: tf.At(2025, 10, 28, 17), want: KindInsufficientGap},
		{name: "following Wednesday", start: tf.At(2025, 10, 29, 9), end: tf.At(2025, 10, 30, 17), want: ""},
		{name: "following Thursday", start: tf.At(2025, 10, 30, 9), end: tf.At(2025, 10, 31, 17), want: ""},
		{name: "ends the Wednesday before", start: tf.At(2025, 10, 13, 9), end: tf.At(2025, 10, 15, 17), want: ""},
		{name: "ends the Thursday before", start: tf.At(2025, 10, 13, 9), end: tf.At(2025, 10, 16, 17), want: KindInsufficientGap},
		{name: "same employee overlap", start: tf.At(2025, 10, 24, 9), end: tf.At(2025, 10, 27, 17), want: KindSameEmployeeOverlap},
		{name: "excluded own record", start: tf.At(2025, 10, 21, 9), end: tf.At(2025, 10, 24, 17), exclude: other.ID, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			violation := CheckGap(tt.start, tt.end, []*domain.Holiday{other}, tt.exclude)
			if tt.want == "" {
				assert.Nil(t, violation)
				return
			}
			require.NotNil(t, violation)
			assert.Equal(t, tt.want, violation.Kind)
		})
	}
}

func TestCheckGap_ExaminesEveryHoliday(t *testing.T) {
	// Первый отпуск далеко, нарушение дает только второй
	far := tf.NewHoliday(tf.At(2025, 9, 1, 9), tf.At(2025, 9, 5, 17))
	near := tf.NewHoliday(tf.At(2025, 11, 10, 9), tf.At(2025, 11, 14, 17))

	violation := CheckGap(tf.At(2025, 11, 3, 9), tf.At(2025, 11, 6, 17), []*domain.Holiday{far, near}, uuid.Nil)

	require.NotNil(t, violation)
	assert.Equal(t, KindInsufficientGap, violation.Kind)
}

func TestViolation_IsRuleViolation(t *testing.T) {
	var err error = NewViolation(KindOverlap)

	assert.ErrorIs(t, err, ErrRuleViolation)
	v, ok := AsViolation(err)
	require.True(t, ok)
	assert.Equal(t, KindOverlap, v.Kind)
	assert.Equal(t, "overlap: Holidays must not overlap (between any crew members)", err.Error())
}
