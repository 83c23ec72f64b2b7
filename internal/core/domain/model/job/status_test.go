package job_test

import (
	"fmt"
	"testing"

	"hauling/internal/core/domain/model/job"
	"hauling/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(job.Unknown))
		assert.Equal(t, 1, int(job.Pending))
		assert.Equal(t, 2, int(job.Scheduled))
		assert.Equal(t, 3, int(job.Done))
		assert.Equal(t, 4, int(job.Canceled))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []job.Status{
			job.Pending,
			job.Scheduled,
			job.Done,
			job.Canceled,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				err := status.Validate()
				require.NoError(t, err)
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := job.Unknown.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "status is invalid")
		assert.Contains(t, err.Error(), "0 is not a valid status")
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		invalidStatuses := []job.Status{
			job.Status(-1),
			job.Status(5),
			job.Status(100),
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return correct string representations", func(t *testing.T) {
		assert.Equal(t, "Unknown", job.Unknown.String())
		assert.Equal(t, "Pending", job.Pending.String())
		assert.Equal(t, "Scheduled", job.Scheduled.String())
		assert.Equal(t, "Done", job.Done.String())
		assert.Equal(t, "Canceled", job.Canceled.String())
	})

	t.Run("should return Unknown for invalid values", func(t *testing.T) {
		assert.Equal(t, "Unknown", job.Status(42).String())
	})
}

func TestStatus_Schedule(t *testing.T) {
	t.Run("should schedule from Pending", func(t *testing.T) {
		newStatus, err := job.Pending.Schedule()

		require.NoError(t, err)
		assert.Equal(t, job.Scheduled, newStatus)
	})

	t.Run("should allow additional batches from Scheduled", func(t *testing.T) {
		newStatus, err := job.Scheduled.Schedule()

		require.NoError(t, err)
		assert.Equal(t, job.Scheduled, newStatus)
	})

	t.Run("should reject scheduling from terminal statuses", func(t *testing.T) {
		for _, status := range []job.Status{job.Done, job.Canceled, job.Unknown} {
			_, err := status.Schedule()

			require.Error(t, err)
			assert.IsType(t, &errs.IllegalStateTransitionError{}, err)
		}
	})
}

func TestStatus_Finish(t *testing.T) {
	t.Run("should finish from Scheduled", func(t *testing.T) {
		newStatus, err := job.Scheduled.Finish()

		require.NoError(t, err)
		assert.Equal(t, job.Done, newStatus)
	})

	t.Run("should reject finishing from other statuses", func(t *testing.T) {
		for _, status := range []job.Status{job.Pending, job.Done, job.Canceled, job.Unknown} {
			_, err := status.Finish()

			require.Error(t, err)
			assert.IsType(t, &errs.IllegalStateTransitionError{}, err)
		}
	})
}

func TestStatus_Cancel(t *testing.T) {
	t.Run("should cancel from Pending and Scheduled", func(t *testing.T) {
		for _, status := range []job.Status{job.Pending, job.Scheduled} {
			newStatus, err := status.Cancel()

			require.NoError(t, err)
			assert.Equal(t, job.Canceled, newStatus)
		}
	})

	t.Run("should reject canceling terminal statuses", func(t *testing.T) {
		for _, status := range []job.Status{job.Done, job.Canceled, job.Unknown} {
			_, err := status.Cancel()

			require.Error(t, err)
			assert.IsType(t, &errs.IllegalStateTransitionError{}, err)
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	t.Run("should report Done and Canceled as terminal", func(t *testing.T) {
		assert.True(t, job.Done.IsTerminal())
		assert.True(t, job.Canceled.IsTerminal())
		assert.False(t, job.Pending.IsTerminal())
		assert.False(t, job.Scheduled.IsTerminal())
	})
}
