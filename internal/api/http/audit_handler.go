package http

import (
	"net/http"
	"strconv"

	"learnhub-backend/internal/service"
)

type AuditHandler struct {
	auditSvc service.AuditService
}

func NewAuditHandler(auditSvc service.AuditService) *AuditHandler {
	return &AuditHandler{auditSvc: auditSvc}
}

func queryInt32(r *http.Request, key string) int32 {
	v, _ := strconv.ParseInt(r.URL.Query().Get(key), 10, 32)
	return int32(v)
}

func (h *AuditHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.auditSvc.List(r.Context(), queryInt32(r, "limit"), queryInt32(r, "offset"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}
