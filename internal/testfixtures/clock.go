package testfixtures

import (
	"sync"
	"time"
)

// ReferenceTime общий момент времени для тестов: среда, 15 октября 2025, 10:00 UTC
func ReferenceTime() time.Time {
	return time.Date(2025, time.October, 15, 10, 0, 0, 0, time.UTC)
}

// Clock управляемый источник времени для тестов
// Реализует TimeProvider
type Clock struct {
	mu      sync.Mutex
	current time.Time
}

// NewClock возвращает часы, выставленные на start
// При нулевом start используется ReferenceTime
func NewClock(start time.Time) *Clock {
	if start.IsZero() {
		start = ReferenceTime()
	}
	return &Clock{current: start}
}

// Now возвращает текущее время часов
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Set переставляет часы
func (c *Clock) Set(t time.Time) {
	c.mu.Lock()
	c.current = t
	c.mu.Unlock()
}

// Advance сдвигает часы вперед и возвращает новое время
func (c *Clock) Advance(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = c.current.Add(d)
	return c.current
}
