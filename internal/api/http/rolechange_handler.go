package http

import (
	"net/http"

	"learnhub-backend/internal/domain"
	"learnhub-backend/internal/service"
)

type RoleChangeHandler struct {
	roleChangeSvc service.RoleChangeService
}

func NewRoleChangeHandler(roleChangeSvc service.RoleChangeService) *RoleChangeHandler {
	return &RoleChangeHandler{roleChangeSvc: roleChangeSvc}
}

type initiateDemotionRequest struct {
	UserID  int32  `json:"user_id"`
	NewRole string `json:"new_role"`
	Reason  string `json:"reason"`
}

func (h *RoleChangeHandler) Initiate(w http.ResponseWriter, r *http.Request) {
	c, ok := mustClaims(w, r)
	if !ok {
		return
	}

	var body initiateDemotionRequest
	if !decodeBody(w, r, &body) {
		return
	}

	req, err := h.roleChangeSvc.InitiateDemotion(r.Context(), c.UserID, body.UserID, domain.Role(body.NewRole), body.Reason)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, req)
}

type respondRequest struct {
	Accept      bool   `json:"accept"`
	DisputeNote string `json:"dispute_note"`
}

func (h *RoleChangeHandler) Respond(w http.ResponseWriter, r *http.Request) {
	c, ok := mustClaims(w, r)
	if !ok {
		return
	}
	id, ok := pathID(r)
	if !ok {
		writeMessage(w, http.StatusBadRequest, "invalid request id")
		return
	}

	var body respondRequest
	if !decodeBody(w, r, &body) {
		return
	}

	req, err := h.roleChangeSvc.UserRespond(r.Context(), id, c.UserID, body.Accept, body.DisputeNote)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (h *RoleChangeHandler) Finalize(w http.ResponseWriter, r *http.Request) {
	c, ok := mustClaims(w, r)
	if !ok {
		return
	}
	id, ok := pathID(r)
	if !ok {
		writeMessage(w, http.StatusBadRequest, "invalid request id")
		return
	}

	req, err := h.roleChangeSvc.FinalizeDemotion(r.Context(), id, c.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (h *RoleChangeHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	c, ok := mustClaims(w, r)
	if !ok {
		return
	}
	id, ok := pathID(r)
	if !ok {
		writeMessage(w, http.StatusBadRequest, "invalid request id")
		return
	}

	req, err := h.roleChangeSvc.CancelDemotion(r.Context(), id, c.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (h *RoleChangeHandler) List(w http.ResponseWriter, r *http.Request) {
	reqs, err := h.roleChangeSvc.ListRoleChanges(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reqs)
}

func (h *RoleChangeHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	c, ok := mustClaims(w, r)
	if !ok {
		return
	}

	reqs, err := h.roleChangeSvc.ListMyRoleChanges(r.Context(), c.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reqs)
}
