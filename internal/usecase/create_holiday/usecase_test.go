package create_holiday

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HolidayService/internal/domain"
	holidayRepo "github.com/m04kA/SMC-HolidayService/internal/infra/storage/holiday"
	"github.com/m04kA/SMC-HolidayService/internal/integrations/events"
	"github.com/m04kA/SMC-HolidayService/internal/scheduling"
	tf "github.com/m04kA/SMC-HolidayService/internal/testfixtures"
	"github.com/m04kA/SMC-HolidayService/pkg/logger"
)

type eventRecorder struct {
	events []events.HolidayEvent
	err    error
}

func (r *eventRecorder) Publish(_ context.Context, event events.HolidayEvent) error {
	r.events = append(r.events, event)
	return r.err
}

type decisionRecorder struct {
	outcomes []string
}

func (r *decisionRecorder) RecordRuleDecision(operation, outcome string) {
	r.outcomes = append(r.outcomes, operation+":"+outcome)
}

type fixture struct {
	store     *tf.HolidayStore
	tx        *tf.TxManager
	publisher *eventRecorder
	decisions *decisionRecorder
	uc        *UseCase
}

func newFixture(holidays ...*domain.Holiday) *fixture {
	clock := tf.NewClock(tf.ReferenceTime())
	f := &fixture{
		store:     tf.NewHolidayStore(holidays...),
		tx:        &tf.TxManager{},
		publisher: &eventRecorder{},
		decisions: &decisionRecorder{},
	}
	f.uc = NewUseCase(
		f.store,
		scheduling.NewValidator(f.store, clock),
		f.tx,
		f.publisher,
		f.decisions,
		clock,
		logger.NewNop(),
	)
	return f
}

func validRequest() *Request {
	return &Request{
		Label:      "Autumn break",
		EmployeeID: "klm000001",
		Start:      tf.At(2025, 11, 3, 9),
		End:        tf.At(2025, 11, 7, 17),
		Status:     domain.StatusRequested,
	}
}

func TestExecute_Created(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", resp.ID.String())
	assert.Equal(t, "Autumn break", resp.Label)
	assert.Equal(t, domain.StatusRequested, resp.Status)
	assert.Equal(t, 1, f.store.Len())
	assert.Equal(t, 1, f.store.Locks)
	assert.Equal(t, 1, f.tx.Calls)
	assert.Equal(t, []string{tf.TxReadCommitted}, f.tx.Modes)
	assert.Equal(t, []string{"create:accepted"}, f.decisions.outcomes)

	require.Len(t, f.publisher.events, 1)
	assert.Equal(t, events.HolidayCreated, f.publisher.events[0].Type)
	assert.Equal(t, resp.ID.String(), f.publisher.events[0].Holiday.HolidayID)
}

func TestExecute_RuleViolation(t *testing.T) {
	existing := tf.NewHoliday(tf.At(2025, 11, 6, 9), tf.At(2025, 11, 10, 17), tf.WithEmployee("klm000002"))
	f := newFixture(existing)

	resp, err := f.uc.Execute(context.Background(), validRequest())

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, scheduling.ErrRuleViolation)
	violation, ok := scheduling.AsViolation(err)
	require.True(t, ok)
	assert.Equal(t, scheduling.KindOverlap, violation.Kind)
	assert.Equal(t, 1, f.store.Len())
	assert.Empty(t, f.publisher.events)
	assert.Equal(t, []string{"create:overlap"}, f.decisions.outcomes)
}

func TestExecute_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		modify func(r *Request)
	}{
		{name: "blank label", modify: func(r *Request) { r.Label = "   " }},
		{name: "bad employee id", modify: func(r *Request) { r.EmployeeID = "KLM12" }},
		{name: "missing start", modify: func(r *Request) { r.Start = time.Time{} }},
		{name: "unknown status", modify: func(r *Request) { r.Status = "approved" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			req := validRequest()
			tt.modify(req)

			_, err := f.uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Zero(t, f.tx.Calls)
		})
	}
}

func TestExecute_ExclusionConstraintIsOverlap(t *testing.T) {
	f := newFixture()
	f.store.Errors["Create"] = fmt.Errorf("%w: Create - insert: exclusion", holidayRepo.ErrOverlapConstraint)

	_, err := f.uc.Execute(context.Background(), validRequest())

	violation, ok := scheduling.AsViolation(err)
	require.True(t, ok)
	assert.Equal(t, scheduling.KindOverlap, violation.Kind)
}

func TestExecute_InternalErrors(t *testing.T) {
	for _, method := range []string{"LockSchedule", "FindOverlapping", "Create"} {
		t.Run(method, func(t *testing.T) {
			f := newFixture()
			f.store.Errors[method] = errors.New("connection reset")

			_, err := f.uc.Execute(context.Background(), validRequest())

			assert.ErrorIs(t, err, ErrInternal)
			assert.NotErrorIs(t, err, scheduling.ErrRuleViolation)
			assert.Empty(t, f.publisher.events)
			assert.Empty(t, f.decisions.outcomes)
		})
	}
}

func TestExecute_PublishFailureDoesNotFail(t *testing.T) {
	f := newFixture()
	f.publisher.err = errors.New("broker down")

	resp, err := f.uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, 1, f.store.Len())
}
