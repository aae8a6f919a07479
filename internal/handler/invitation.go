package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/reign-ny/membership-approval/internal/middleware"
	"github.com/reign-ny/membership-approval/internal/service"
)

// InvitationHandler обрабатывает эндпоинты приглашений
type InvitationHandler struct {
	invitationService *service.InvitationService
}

// NewInvitationHandler создает новый InvitationHandler
func NewInvitationHandler(invitationService *service.InvitationService) *InvitationHandler {
	return &InvitationHandler{
		invitationService: invitationService,
	}
}

// CreateInvitationRequest представляет тело запроса на выдачу приглашения
type CreateInvitationRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Dues        string `json:"dues"`
	PaymentLink string `json:"payment_link"`
}

// ListInvitationsResponse представляет список приглашений
type ListInvitationsResponse struct {
	Invitations []*service.IssuedInvitation `json:"invitations"`
}

// Create обрабатывает POST /invitations
func (h *InvitationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateInvitationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}

	// Валидация запроса
	if req.FirstName == "" || req.LastName == "" || req.Dues == "" {
		RespondWithError(w, r, http.StatusBadRequest, "BAD_REQUEST", "first_name, last_name and dues are required")
		return
	}

	issued, err := h.invitationService.Issue(r.Context(), service.IssueInvitationInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Dues:        req.Dues,
		PaymentLink: req.PaymentLink,
		IssuedBy:    middleware.GetSubjectFromContext(r.Context()),
	})
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusCreated, issued)
}

// Get обрабатывает GET /invitations/{number}
func (h *InvitationHandler) Get(w http.ResponseWriter, r *http.Request) {
	number, err := strconv.Atoi(chi.URLParam(r, "number"))
	if err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "BAD_REQUEST", "number must be an integer")
		return
	}

	issued, err := h.invitationService.Get(r.Context(), number)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, issued)
}

// List обрабатывает GET /invitations?limit=...
func (h *InvitationHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			RespondWithError(w, r, http.StatusBadRequest, "BAD_REQUEST", "limit must be a non-negative integer")
			return
		}
		limit = parsed
	}

	invitations, err := h.invitationService.List(r.Context(), limit)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, ListInvitationsResponse{Invitations: invitations})
}
