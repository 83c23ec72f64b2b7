package schedule_test

import (
	"testing"
	"time"

	"hauling/internal/core/domain/model/kernel"
	"hauling/internal/core/domain/model/schedule"
	"hauling/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestAssignation(t *testing.T) *schedule.Assignation {
	t.Helper()

	categoryID := kernel.NewUUID()
	a, err := schedule.NewAssignation(kernel.NewUUID(), &categoryID, kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)
	return a
}

func createTestScheduledJob(t *testing.T, assignations ...*schedule.Assignation) *schedule.ScheduledJob {
	t.Helper()

	s, err := schedule.NewScheduledJob(kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)
	for _, a := range assignations {
		require.NoError(t, s.AddAssignation(a))
	}
	return s
}

func TestAssignation_ClockIn(t *testing.T) {
	t.Run("should record start time and geofence presence", func(t *testing.T) {
		a := createTestAssignation(t)
		at := time.Now()

		require.NoError(t, a.ClockIn(at, true))

		assert.True(t, a.HasStarted())
		assert.True(t, a.InsideArea())
		assert.True(t, a.IsActive())
	})

	t.Run("should reject a second clock-in", func(t *testing.T) {
		a := createTestAssignation(t)
		require.NoError(t, a.ClockIn(time.Now(), true))

		err := a.ClockIn(time.Now(), true)

		require.Error(t, err)
		assert.IsType(t, &errs.IllegalStateTransitionError{}, err)
	})
}

func TestAssignation_Finish(t *testing.T) {
	t.Run("should reject finishing before clock-in", func(t *testing.T) {
		a := createTestAssignation(t)

		err := a.Finish(time.Now())

		require.Error(t, err)
		assert.IsType(t, &errs.IllegalStateTransitionError{}, err)
	})

	t.Run("should finish an active assignation once", func(t *testing.T) {
		a := createTestAssignation(t)
		require.NoError(t, a.ClockIn(time.Now(), true))

		require.NoError(t, a.Finish(time.Now()))
		assert.True(t, a.IsFinished())
		assert.False(t, a.IsActive())

		err := a.Finish(time.Now())
		require.Error(t, err)
	})
}

func TestAssignation_Reassign(t *testing.T) {
	t.Run("should swap driver and truck before clock-in", func(t *testing.T) {
		a := createTestAssignation(t)
		driverID := kernel.NewUUID()
		truckID := kernel.NewUUID()

		require.NoError(t, a.Reassign(driverID, truckID))

		assert.True(t, a.DriverID().IsEqual(driverID))
		assert.True(t, a.TruckID().IsEqual(truckID))
	})

	t.Run("should reject editing a started assignation", func(t *testing.T) {
		a := createTestAssignation(t)
		require.NoError(t, a.ClockIn(time.Now(), true))

		err := a.Reassign(kernel.NewUUID(), kernel.NewUUID())

		require.Error(t, err)
		assert.IsType(t, &errs.IllegalStateTransitionError{}, err)
	})
}

func TestScheduledJob_ClockIn(t *testing.T) {
	t.Run("should move Pending to Started on first clock-in", func(t *testing.T) {
		first := createTestAssignation(t)
		second := createTestAssignation(t)
		s := createTestScheduledJob(t, first, second)

		require.NoError(t, s.ClockIn(first.ID(), time.Now(), true))
		assert.Equal(t, schedule.Started, s.Status())

		require.NoError(t, s.ClockIn(second.ID(), time.Now(), false))
		assert.Equal(t, schedule.Started, s.Status())
	})

	t.Run("should reject clock-in on a canceled scheduled job", func(t *testing.T) {
		a := createTestAssignation(t)
		s := createTestScheduledJob(t, a)
		require.NoError(t, s.Cancel(time.Now(), false))

		err := s.ClockIn(a.ID(), time.Now(), true)

		require.Error(t, err)
		assert.IsType(t, &errs.IllegalStateTransitionError{}, err)
	})

	t.Run("should report unknown assignation", func(t *testing.T) {
		s := createTestScheduledJob(t, createTestAssignation(t))

		err := s.ClockIn(kernel.NewUUID(), time.Now(), true)

		require.Error(t, err)
		assert.IsType(t, &errs.ObjectNotFoundError{}, err)
	})
}

func TestScheduledJob_FinishAssignation(t *testing.T) {
	t.Run("should transition to Done when the last assignation finishes", func(t *testing.T) {
		first := createTestAssignation(t)
		second := createTestAssignation(t)
		s := createTestScheduledJob(t, first, second)
		require.NoError(t, s.ClockIn(first.ID(), time.Now(), true))
		require.NoError(t, s.ClockIn(second.ID(), time.Now(), true))

		require.NoError(t, s.FinishAssignation(first.ID(), time.Now()))
		assert.Equal(t, schedule.Started, s.Status())
		assert.Equal(t, 1, s.UnfinishedCount())

		require.NoError(t, s.FinishAssignation(second.ID(), time.Now()))
		assert.Equal(t, schedule.Done, s.Status())
		assert.True(t, s.AllFinished())
	})
}

func TestScheduledJob_ForceFinish(t *testing.T) {
	t.Run("should finish active assignations and drop never-started ones", func(t *testing.T) {
		active := createTestAssignation(t)
		idle := createTestAssignation(t)
		s := createTestScheduledJob(t, active, idle)
		require.NoError(t, s.ClockIn(active.ID(), time.Now(), true))

		dropped, err := s.ForceFinish(time.Now())

		require.NoError(t, err)
		require.Len(t, dropped, 1)
		assert.True(t, dropped[0].ID().IsEqual(idle.ID()))
		assert.Equal(t, schedule.Done, s.Status())
		require.Len(t, s.Assignations(), 1)
		assert.True(t, s.Assignations()[0].IsFinished())
	})

	t.Run("should reject force-finishing a Pending scheduled job", func(t *testing.T) {
		s := createTestScheduledJob(t, createTestAssignation(t))

		_, err := s.ForceFinish(time.Now())

		require.Error(t, err)
		assert.IsType(t, &errs.IllegalStateTransitionError{}, err)
	})
}

func TestScheduledJob_RemoveAssignation(t *testing.T) {
	t.Run("should detach a never-started assignation", func(t *testing.T) {
		a := createTestAssignation(t)
		s := createTestScheduledJob(t, a)

		removed, err := s.RemoveAssignation(a.ID())

		require.NoError(t, err)
		assert.True(t, removed.ID().IsEqual(a.ID()))
		assert.Empty(t, s.Assignations())
	})

	t.Run("should reject removing a started assignation", func(t *testing.T) {
		a := createTestAssignation(t)
		s := createTestScheduledJob(t, a)
		require.NoError(t, s.ClockIn(a.ID(), time.Now(), true))

		_, err := s.RemoveAssignation(a.ID())

		require.Error(t, err)
		assert.IsType(t, &errs.IllegalStateTransitionError{}, err)
	})
}

func TestScheduledJob_DetachAssignation(t *testing.T) {
	t.Run("should detach a mid-shift assignation for a switch", func(t *testing.T) {
		a := createTestAssignation(t)
		s := createTestScheduledJob(t, a)
		require.NoError(t, s.ClockIn(a.ID(), time.Now(), true))

		detached, err := s.DetachAssignation(a.ID())

		require.NoError(t, err)
		assert.True(t, detached.IsActive())
		assert.Empty(t, s.Assignations())
	})
}

func TestScheduledJob_Cancel(t *testing.T) {
	t.Run("should record who canceled", func(t *testing.T) {
		s := createTestScheduledJob(t, createTestAssignation(t))

		require.NoError(t, s.Cancel(time.Now(), true))

		assert.Equal(t, schedule.Canceled, s.Status())
		assert.True(t, s.CanceledByOwner())
		assert.NotNil(t, s.CanceledAt())
	})

	t.Run("should reject canceling twice", func(t *testing.T) {
		s := createTestScheduledJob(t, createTestAssignation(t))
		require.NoError(t, s.Cancel(time.Now(), false))

		err := s.Cancel(time.Now(), false)

		require.Error(t, err)
		assert.IsType(t, &errs.IllegalStateTransitionError{}, err)
	})
}

func TestScheduledJob_Dispute(t *testing.T) {
	t.Run("should flag without changing status", func(t *testing.T) {
		s := createTestScheduledJob(t, createTestAssignation(t))

		require.NoError(t, s.Dispute("driver left early"))

		assert.True(t, s.Disputed())
		assert.Equal(t, "driver left early", s.DisputeMessage())
		assert.Equal(t, schedule.Pending, s.Status())
	})

	t.Run("should reject a second dispute", func(t *testing.T) {
		s := createTestScheduledJob(t, createTestAssignation(t))
		require.NoError(t, s.Dispute("driver left early"))

		err := s.Dispute("still unhappy")

		require.Error(t, err)
		assert.IsType(t, &errs.ConflictError{}, err)
	})

	t.Run("should require a message", func(t *testing.T) {
		s := createTestScheduledJob(t, createTestAssignation(t))

		err := s.Dispute("")

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsRequiredError{}, err)
	})
}

func TestScheduledJob_ResolveDispute(t *testing.T) {
	t.Run("should record the decision once", func(t *testing.T) {
		s := createTestScheduledJob(t, createTestAssignation(t))
		require.NoError(t, s.Dispute("driver left early"))

		require.NoError(t, s.ResolveDispute(true))
		require.NotNil(t, s.DisputeUpheld())
		assert.True(t, *s.DisputeUpheld())

		err := s.ResolveDispute(false)
		require.Error(t, err)
		assert.IsType(t, &errs.ConflictError{}, err)
	})

	t.Run("should reject resolving without a dispute", func(t *testing.T) {
		s := createTestScheduledJob(t, createTestAssignation(t))

		err := s.ResolveDispute(true)

		require.Error(t, err)
		assert.IsType(t, &errs.IllegalStateTransitionError{}, err)
	})
}

func TestScheduledJob_ZeroRate(t *testing.T) {
	t.Run("should zero-rate a Pending scheduled job", func(t *testing.T) {
		s := createTestScheduledJob(t, createTestAssignation(t))

		require.NoError(t, s.ZeroRate())

		assert.True(t, s.ZeroRated())
		assert.Equal(t, schedule.Pending, s.Status())
	})

	t.Run("should reject zero-rating a started scheduled job", func(t *testing.T) {
		a := createTestAssignation(t)
		s := createTestScheduledJob(t, a)
		require.NoError(t, s.ClockIn(a.ID(), time.Now(), true))

		err := s.ZeroRate()

		require.Error(t, err)
		assert.IsType(t, &errs.IllegalStateTransitionError{}, err)
	})
}
