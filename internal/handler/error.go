package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"

	"github.com/reign-ny/membership-approval/internal/domain"
)

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail содержит код и описание ошибки
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondWithError отправляет ответ с ошибкой
func RespondWithError(w http.ResponseWriter, r *http.Request, statusCode int, code, message string) {
	render.Status(r, statusCode)
	render.JSON(w, r, ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}

// HandleError преобразует доменные ошибки в HTTP ответы
func HandleError(w http.ResponseWriter, r *http.Request, err error) {
	code := string(domain.MapErrorToCode(err))

	switch {
	case errors.Is(err, domain.ErrFormat), errors.Is(err, domain.ErrInvalidDues):
		RespondWithError(w, r, http.StatusBadRequest, code, err.Error())
	case errors.Is(err, domain.ErrInvalidNumeral), errors.Is(err, domain.ErrOutOfRange):
		RespondWithError(w, r, http.StatusUnprocessableEntity, code, err.Error())
	case errors.Is(err, domain.ErrMissingMemberData):
		RespondWithError(w, r, http.StatusBadRequest, code, "no member data available")
	case errors.Is(err, domain.ErrNumberSpaceExhausted):
		RespondWithError(w, r, http.StatusConflict, code, "membership numbers exhausted")
	case errors.Is(err, domain.ErrInvitationExists):
		RespondWithError(w, r, http.StatusConflict, code, "invitation already exists")
	case errors.Is(err, domain.ErrInvitationNotFound), errors.Is(err, domain.ErrNotFound):
		RespondWithError(w, r, http.StatusNotFound, code, "resource not found")
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrInvalidToken):
		RespondWithError(w, r, http.StatusUnauthorized, code, "unauthorized")
	default:
		RespondWithError(w, r, http.StatusInternalServerError, code, "internal server error")
	}
}
