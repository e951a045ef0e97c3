package testfixtures

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	holidayRepo "github.com/m04kA/SMC-HolidayService/internal/infra/storage/holiday"
)

func TestHolidayStore(t *testing.T) {
	ctx := context.Background()
	later := NewHoliday(At(2025, 11, 3, 9), At(2025, 11, 7, 17))
	earlier := NewHoliday(At(2025, 10, 27, 9), At(2025, 10, 31, 17), WithEmployee("klm000002"))
	store := NewHolidayStore(later, earlier)

	all, err := store.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, earlier.ID, all[0].ID)

	overlapping, err := store.FindOverlapping(ctx, At(2025, 10, 31, 0), At(2025, 11, 3, 10))
	require.NoError(t, err)
	assert.Len(t, overlapping, 2)

	mine, err := store.GetByEmployeeID(ctx, "klm000002")
	require.NoError(t, err)
	require.Len(t, mine, 1)

	// Изменение возвращенной копии не затрагивает хранилище
	mine[0].Label = "changed"
	stored, err := store.GetByID(ctx, earlier.ID)
	require.NoError(t, err)
	assert.Equal(t, "Summer holiday", stored.Label)

	require.NoError(t, store.Delete(ctx, earlier.ID))
	_, err = store.GetByID(ctx, earlier.ID)
	assert.ErrorIs(t, err, holidayRepo.ErrHolidayNotFound)
}
