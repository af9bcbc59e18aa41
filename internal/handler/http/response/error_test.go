package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/campuslab/attendance-backend-go/internal/domain/attendance"
	"github.com/campuslab/attendance-backend-go/internal/domain/auth"
	"github.com/campuslab/attendance-backend-go/internal/domain/session"
	"github.com/campuslab/attendance-backend-go/internal/domain/user"
	"github.com/campuslab/attendance-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleError_StatusMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"invalid credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{"refresh token revoked", auth.ErrRefreshTokenRevoked, http.StatusUnauthorized},
		{"user not found", user.ErrUserNotFound, http.StatusNotFound},
		{"email exists", user.ErrEmailExists, http.StatusConflict},
		{"not slot owner", session.ErrNotSlotOwner, http.StatusForbidden},
		{"unknown code", attendance.ErrInvalidOrExpiredCode, http.StatusNotFound},
		{"wrong code at checkin", attendance.ErrInvalidCode, http.StatusBadRequest},
		{"window closed", attendance.ErrSessionExpired, http.StatusGone},
		{"already checked in", attendance.ErrAlreadyCheckedIn, http.StatusConflict},
		{"face service down", attendance.ErrFaceServiceUnavailable, http.StatusServiceUnavailable},
		{"unexpected", assertAnError{}, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tt.err)
			assert.Equal(t, tt.wantCode, rec.Code)

			var resp Response
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
		})
	}
}

func TestHandleError_ValidationErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, validator.ValidationErrors{
		{Field: "code", Message: "code is required"},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.Equal(t, "code is required", resp.Error.Details["code"])
}

func TestHandleError_NotEnrolledCarriesClassName(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, &attendance.NotEnrolledError{ClassName: "CS-2A"})

	assert.Equal(t, http.StatusForbidden, rec.Code)

	var resp Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.NotNil(t, resp.Error)
	assert.Contains(t, resp.Error.Message, "CS-2A")
}

type assertAnError struct{}

func (assertAnError) Error() string { return "boom" }
