package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"hauling/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"not found maps to 404", errs.NewObjectNotFoundError("job", "abc"), http.StatusNotFound},
		{"forbidden maps to 403", errs.NewForbiddenError("not your job"), http.StatusForbidden},
		{"conflict maps to 409", errs.NewConflictError("slot already occupied"), http.StatusConflict},
		{"illegal transition maps to 409", errs.NewIllegalStateTransitionError("job status"), http.StatusConflict},
		{"invalid value maps to 400", errs.NewValueIsInvalidError("payBy"), http.StatusBadRequest},
		{"required value maps to 400", errs.NewValueIsRequiredError("material"), http.StatusBadRequest},
		{"unknown error maps to 500", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			ctx := echo.New().NewContext(httptest.NewRequest("GET", "/", nil), recorder)

			err := respondError(ctx, tt.err)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, recorder.Code)
		})
	}
}
