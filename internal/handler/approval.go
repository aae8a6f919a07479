package handler

import (
	"net/http"
	"net/url"

	"github.com/reign-ny/membership-approval/internal/codec"
	"github.com/reign-ny/membership-approval/internal/service"
)

// ApprovalHandler обрабатывает страницу подтверждения членства
type ApprovalHandler struct {
	approvalService *service.ApprovalService
}

// NewApprovalHandler создает новый ApprovalHandler
func NewApprovalHandler(approvalService *service.ApprovalService) *ApprovalHandler {
	return &ApprovalHandler{
		approvalService: approvalService,
	}
}

// GetApproval обрабатывает GET /approval?member=...&price=...&link=...
func (h *ApprovalHandler) GetApproval(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	view, err := h.approvalService.Resolve(service.ApprovalQuery{
		Member: firstParam(query, codec.ParamMember, codec.ParamMemberShort),
		Price:  firstParam(query, codec.ParamPrice, codec.ParamPriceShort),
		Link:   firstParam(query, codec.ParamLink, codec.ParamLinkShort),
	})
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, view)
}

// firstParam возвращает первое непустое значение среди перечисленных ключей
func firstParam(query url.Values, keys ...string) string {
	for _, key := range keys {
		if v := query.Get(key); v != "" {
			return v
		}
	}
	return ""
}
