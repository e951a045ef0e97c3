package testfixtures

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClock(t *testing.T) {
	clock := NewClock(time.Time{})
	assert.True(t, ReferenceTime().Equal(clock.Now()))

	advanced := clock.Advance(24 * time.Hour)
	assert.True(t, ReferenceTime().Add(24*time.Hour).Equal(advanced))

	clock.Set(Date(2025, 1, 1))
	assert.True(t, Date(2025, 1, 1).Equal(clock.Now()))
}
