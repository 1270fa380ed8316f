package middleware

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "bazaar/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func newErrorContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func newTestErrorMiddleware() *ErrorMiddleware {
	return NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestErrorMiddleware_DomainErrorRendersEnvelope(t *testing.T) {
	mw := newTestErrorMiddleware()
	c, rec := newErrorContext(t)

	mw.HandleHTTPError(domainerrors.ErrInsufficientPermissions, c)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "INSUFFICIENT_PERMISSIONS")
	assert.Contains(t, rec.Body.String(), "Insufficient permissions")
}

func TestErrorMiddleware_WrappedDomainErrorStillMatches(t *testing.T) {
	mw := newTestErrorMiddleware()
	c, rec := newErrorContext(t)

	mw.HandleHTTPError(errors.Wrap(domainerrors.ErrAccountDeactivated, "authenticate"), c)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "ACCOUNT_DEACTIVATED")
}

func TestErrorMiddleware_DeadlineExceededIsServiceUnavailable(t *testing.T) {
	mw := newTestErrorMiddleware()
	c, rec := newErrorContext(t)

	mw.HandleHTTPError(errors.Wrap(context.DeadlineExceeded, "query users"), c)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "SERVICE_UNAVAILABLE")
}

func TestErrorMiddleware_UnknownErrorHidesDetail(t *testing.T) {
	mw := newTestErrorMiddleware()
	c, rec := newErrorContext(t)

	mw.HandleHTTPError(errors.New("pq: connection refused on 10.0.0.7"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "INTERNAL_ERROR")
	assert.NotContains(t, rec.Body.String(), "10.0.0.7")
}

func TestErrorMiddleware_CommittedResponseLeftAlone(t *testing.T) {
	mw := newTestErrorMiddleware()
	c, rec := newErrorContext(t)

	assert.NoError(t, c.NoContent(http.StatusOK))

	mw.HandleHTTPError(domainerrors.ErrInternalError, c)

	assert.Equal(t, http.StatusOK, rec.Code)
}
