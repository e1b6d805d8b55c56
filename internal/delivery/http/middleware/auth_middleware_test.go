package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"bazaar/internal/delivery/http/response"
	"bazaar/internal/domain/entity"
	mockservice "bazaar/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// newAuthTestServer wires the auth middleware in front of a handler that
// echoes the authenticated UID, with errors rendered by the central handler.
func newAuthTestServer(verifier *mockservice.MockTokenVerifier) *echo.Echo {
	e := echo.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e.HTTPErrorHandler = NewErrorMiddleware(logger).HandleHTTPError

	authMiddleware := NewAuthMiddleware(verifier)
	e.GET("/me", func(c echo.Context) error {
		userID, _ := GetUserID(c)

		return c.String(http.StatusOK, userID)
	}, authMiddleware.Authenticate)

	return e
}

func decodeErrorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)

	return resp.Error.Code
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	verifier := new(mockservice.MockTokenVerifier)
	e := newAuthTestServer(verifier)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "AUTH_REQUIRED", decodeErrorCode(t, rec))
	verifier.AssertNotCalled(t, "VerifyToken", mock.Anything, mock.Anything)
}

func TestAuthenticate_NonBearerHeader(t *testing.T) {
	verifier := new(mockservice.MockTokenVerifier)
	e := newAuthTestServer(verifier)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "TOKEN_INVALID", decodeErrorCode(t, rec))
	verifier.AssertNotCalled(t, "VerifyToken", mock.Anything, mock.Anything)
}

func TestAuthenticate_RejectedToken(t *testing.T) {
	verifier := new(mockservice.MockTokenVerifier)
	verifier.On("VerifyToken", mock.Anything, "bad-token").
		Return(nil, errors.New("token expired"))
	e := newAuthTestServer(verifier)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "TOKEN_INVALID", decodeErrorCode(t, rec))
}

func TestAuthenticate_ValidToken(t *testing.T) {
	verifier := new(mockservice.MockTokenVerifier)
	verifier.On("VerifyToken", mock.Anything, "good-token").
		Return(&entity.Identity{UID: "user-1", Email: "u@example.com"}, nil)
	e := newAuthTestServer(verifier)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-1", rec.Body.String())
}
