package http

import (
	"hauling/internal/core/domain/model/account"
	"hauling/internal/core/domain/model/kernel"
	"hauling/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Identity headers set by the API gateway after authentication. The engine
// trusts them; token verification happens upstream.
const (
	headerActorID      = "X-Actor-Id"
	headerContractorID = "X-Contractor-Id"
)

// actorFromContext resolves the caller from the gateway identity headers and
// the role segment of the request path.
func actorFromContext(ctx echo.Context) (account.Actor, error) {
	role, err := account.RoleFromString(ctx.Param("role"))
	if err != nil {
		return account.Actor{}, err
	}
	return actorWithRole(ctx, role)
}

// actorWithRole resolves the caller for routes whose role is fixed by the
// route itself rather than a path parameter.
func actorWithRole(ctx echo.Context, role account.Role) (account.Actor, error) {
	rawID := ctx.Request().Header.Get(headerActorID)
	if rawID == "" {
		return account.Actor{}, errs.NewValueIsRequiredError(headerActorID)
	}
	actorID, err := kernel.UUIDFromString(rawID)
	if err != nil {
		return account.Actor{}, err
	}

	var contractorID *kernel.UUID
	if raw := ctx.Request().Header.Get(headerContractorID); raw != "" {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return account.Actor{}, err
		}
		contractorID = &id
	}

	return account.NewActor(actorID, role, contractorID)
}
