package queries_test

import (
	"testing"

	"hauling/internal/core/application/usecases/queries"
	"hauling/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCheckSwitchQuery(t *testing.T) {
	t.Run("should create query with valid assignation id", func(t *testing.T) {
		id := kernel.NewUUID()
		query, err := queries.NewCheckSwitchQuery(id)
		require.NoError(t, err)
		assert.NoError(t, query.Validate())
		assert.Equal(t, id, query.AssignationID())
	})

	t.Run("should reject zero assignation id", func(t *testing.T) {
		_, err := queries.NewCheckSwitchQuery(kernel.UUID{})
		require.Error(t, err)
	})

	t.Run("should reject query not built via constructor", func(t *testing.T) {
		var query queries.CheckSwitchQuery
		err := query.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, queries.ErrCheckSwitchQueryIsNotConstructed)
	})
}
