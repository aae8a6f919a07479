package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reign-ny/membership-approval/internal/domain"
)

func TestHandleError(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
		wantCode   string
	}{
		{domain.ErrInvitationExists, http.StatusConflict, "INVITATION_EXISTS"},
		{domain.ErrNumberSpaceExhausted, http.StatusConflict, "NUMBER_SPACE_EXHAUSTED"},
		{fmt.Errorf("%w: %q", domain.ErrInvalidDues, "abc"), http.StatusBadRequest, "INVALID_DUES"},
		{domain.ErrFormat, http.StatusBadRequest, "INVALID_FORMAT"},
		{domain.ErrOutOfRange, http.StatusUnprocessableEntity, "OUT_OF_RANGE"},
		{domain.ErrInvitationNotFound, http.StatusNotFound, "NOT_FOUND"},
		{domain.ErrInvalidToken, http.StatusUnauthorized, "UNAUTHORIZED"},
		{fmt.Errorf("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.wantCode, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/invitations", nil)
			rec := httptest.NewRecorder()

			HandleError(rec, req, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var resp ErrorResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}
}
