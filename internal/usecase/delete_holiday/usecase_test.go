package delete_holiday

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HolidayService/internal/integrations/events"
	"github.com/m04kA/SMC-HolidayService/internal/scheduling"
	tf "github.com/m04kA/SMC-HolidayService/internal/testfixtures"
	"github.com/m04kA/SMC-HolidayService/pkg/logger"
)

type eventRecorder struct {
	events []events.HolidayEvent
}

func (r *eventRecorder) Publish(_ context.Context, event events.HolidayEvent) error {
	r.events = append(r.events, event)
	return nil
}

type decisionRecorder struct {
	outcomes []string
}

func (r *decisionRecorder) RecordRuleDecision(operation, outcome string) {
	r.outcomes = append(r.outcomes, operation+":"+outcome)
}

func newUseCase(store *tf.HolidayStore) (*UseCase, *eventRecorder, *decisionRecorder) {
	return newUseCaseWithTx(store, &tf.TxManager{})
}

func newUseCaseWithTx(store *tf.HolidayStore, tx *tf.TxManager) (*UseCase, *eventRecorder, *decisionRecorder) {
	clock := tf.NewClock(tf.ReferenceTime())
	publisher := &eventRecorder{}
	decisions := &decisionRecorder{}
	uc := NewUseCase(
		store,
		scheduling.NewValidator(store, clock),
		tx,
		publisher,
		decisions,
		clock,
		logger.NewNop(),
	)
	return uc, publisher, decisions
}

func TestExecute_TenWorkingDaysAhead(t *testing.T) {
	h := tf.NewHoliday(tf.At(2025, 10, 29, 9), tf.At(2025, 10, 31, 17))
	store := tf.NewHolidayStore(h)
	uc, publisher, decisions := newUseCase(store)

	require.NoError(t, uc.Execute(context.Background(), h.ID))

	assert.Zero(t, store.Len())
	assert.Equal(t, []string{"delete:accepted"}, decisions.outcomes)
	require.Len(t, publisher.events, 1)
	assert.Equal(t, events.HolidayDeleted, publisher.events[0].Type)
	assert.Equal(t, h.ID.String(), publisher.events[0].Holiday.HolidayID)
}

func TestExecute_TwoWorkingDaysAhead(t *testing.T) {
	h := tf.NewHoliday(tf.At(2025, 10, 17, 9), tf.At(2025, 10, 20, 17))
	store := tf.NewHolidayStore(h)
	uc, publisher, decisions := newUseCase(store)

	err := uc.Execute(context.Background(), h.ID)

	violation, ok := scheduling.AsViolation(err)
	require.True(t, ok)
	assert.Equal(t, scheduling.KindCancellationNotice, violation.Kind)
	assert.Equal(t, 1, store.Len())
	assert.Empty(t, publisher.events)
	assert.Equal(t, []string{"delete:cancellation_notice"}, decisions.outcomes)
}

func TestExecute_Errors(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		uc, _, _ := newUseCase(tf.NewHolidayStore())
		assert.ErrorIs(t, uc.Execute(context.Background(), uuid.New()), ErrHolidayNotFound)
	})

	t.Run("nil id", func(t *testing.T) {
		uc, _, _ := newUseCase(tf.NewHolidayStore())
		assert.ErrorIs(t, uc.Execute(context.Background(), uuid.Nil), ErrInvalidInput)
	})

	t.Run("storage failure", func(t *testing.T) {
		h := tf.NewHoliday(tf.At(2025, 10, 29, 9), tf.At(2025, 10, 31, 17))
		store := tf.NewHolidayStore(h)
		store.Errors["Delete"] = errors.New("connection reset")
		uc, _, _ := newUseCase(store)

		assert.ErrorIs(t, uc.Execute(context.Background(), h.ID), ErrInternal)
	})
}

func TestExecute_LocksScheduleInReadCommittedTransaction(t *testing.T) {
	h := tf.NewHoliday(tf.At(2025, 10, 29, 9), tf.At(2025, 10, 31, 17))
	store := tf.NewHolidayStore(h)
	tx := &tf.TxManager{}
	uc, _, _ := newUseCaseWithTx(store, tx)

	require.NoError(t, uc.Execute(context.Background(), h.ID))

	assert.Equal(t, []string{tf.TxReadCommitted}, tx.Modes)
	assert.Equal(t, 1, store.Locks)
}
