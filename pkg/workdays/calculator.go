package workdays

import "time"

const daysPerWeek = 7

// DateOf возвращает начало календарного дня (UTC) для указанного момента времени
func DateOf(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// IsWorkingDay возвращает true для дней с понедельника по пятницу
// Праздничный календарь не учитывается
func IsWorkingDay(d time.Time) bool {
	weekday := DateOf(d).Weekday()
	return weekday != time.Saturday && weekday != time.Sunday
}

// Between считает рабочие дни в полуинтервале [a, b)
// Если b раньше a, возвращает количество рабочих дней в [b, a) со знаком минус
//
// Примеры:
// - Between(пн, пн) = 0
// - Between(пт, пн) = 1 (считается только пятница)
// - Between(пн, следующий пн) = 5
func Between(a, b time.Time) int {
	from, to := DateOf(a), DateOf(b)
	if to.Before(from) {
		return -Between(to, from)
	}

	days := int(to.Sub(from).Hours() / 24)
	weeks := days / daysPerWeek

	// Каждая полная неделя содержит ровно 5 рабочих дней
	count := weeks * 5
	for d := from.AddDate(0, 0, weeks*daysPerWeek); d.Before(to); d = d.AddDate(0, 0, 1) {
		if IsWorkingDay(d) {
			count++
		}
	}

	return count
}

// Advance сдвигает дату вперед на n рабочих дней
// Исходная дата никогда не засчитывается, даже если она рабочая.
// При n <= 0 возвращает саму дату (без времени)
func Advance(d time.Time, n int) time.Time {
	current := DateOf(d)
	for added := 0; added < n; {
		current = current.AddDate(0, 0, 1)
		if IsWorkingDay(current) {
			added++
		}
	}
	return current
}
