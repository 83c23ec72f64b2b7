package http

import (
	"net/http/httptest"
	"testing"

	"hauling/internal/core/domain/model/account"
	"hauling/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T, role string, headers map[string]string) echo.Context {
	t.Helper()

	req := httptest.NewRequest("GET", "/", nil)
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	ctx := echo.New().NewContext(req, httptest.NewRecorder())
	if role != "" {
		ctx.SetParamNames("role")
		ctx.SetParamValues(role)
	}
	return ctx
}

func TestActorFromContext(t *testing.T) {
	actorID := kernel.NewUUID()
	contractorID := kernel.NewUUID()

	t.Run("should resolve contractor actor from headers and role segment", func(t *testing.T) {
		ctx := newTestContext(t, "contractor", map[string]string{
			headerActorID:      actorID.String(),
			headerContractorID: contractorID.String(),
		})

		actor, err := actorFromContext(ctx)
		require.NoError(t, err)
		assert.Equal(t, account.RoleContractor, actor.Role())
		assert.True(t, actor.ID().IsEqual(actorID))
		require.NotNil(t, actor.EffectiveContractor())
		assert.True(t, actor.EffectiveContractor().IsEqual(contractorID))
	})

	t.Run("should resolve owner actor without contractor header", func(t *testing.T) {
		ctx := newTestContext(t, "owner", map[string]string{
			headerActorID: actorID.String(),
		})

		actor, err := actorFromContext(ctx)
		require.NoError(t, err)
		assert.Equal(t, account.RoleOwner, actor.Role())
		assert.Nil(t, actor.EffectiveContractor())
	})

	t.Run("should reject unknown role segment", func(t *testing.T) {
		ctx := newTestContext(t, "janitor", map[string]string{
			headerActorID: actorID.String(),
		})

		_, err := actorFromContext(ctx)
		require.Error(t, err)
	})

	t.Run("should reject missing identity header", func(t *testing.T) {
		ctx := newTestContext(t, "owner", nil)

		_, err := actorFromContext(ctx)
		require.Error(t, err)
	})

	t.Run("should reject dispatcher without contractor header", func(t *testing.T) {
		ctx := newTestContext(t, "dispatcher", map[string]string{
			headerActorID: actorID.String(),
		})

		_, err := actorFromContext(ctx)
		require.Error(t, err)
	})

	t.Run("should resolve admin for fixed-role routes", func(t *testing.T) {
		ctx := newTestContext(t, "", map[string]string{
			headerActorID: actorID.String(),
		})

		actor, err := actorWithRole(ctx, account.RoleAdmin)
		require.NoError(t, err)
		assert.True(t, actor.IsAdmin())
	})
}
