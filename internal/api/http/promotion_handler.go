package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"learnhub-backend/internal/domain"
	"learnhub-backend/internal/service"
)

type PromotionHandler struct {
	promotionSvc service.PromotionService
}

func NewPromotionHandler(promotionSvc service.PromotionService) *PromotionHandler {
	return &PromotionHandler{promotionSvc: promotionSvc}
}

func pathID(r *http.Request) (int32, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 32)
	if err != nil || id <= 0 {
		return 0, false
	}
	return int32(id), true
}

func mustClaims(w http.ResponseWriter, r *http.Request) (*claims, bool) {
	c, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "authentication required")
		return nil, false
	}
	return &claims{UserID: c.UserID, Role: domain.Role(c.Role)}, true
}

// claims is the slim view handlers care about.
type claims struct {
	UserID int32
	Role   domain.Role
}

func (h *PromotionHandler) Request(w http.ResponseWriter, r *http.Request) {
	c, ok := mustClaims(w, r)
	if !ok {
		return
	}

	req, err := h.promotionSvc.RequestPromotion(r.Context(), c.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, req)
}

type ceoInitiateRequest struct {
	UserID        int32  `json:"user_id"`
	RequestedRole string `json:"requested_role"`
}

func (h *PromotionHandler) CEOInitiate(w http.ResponseWriter, r *http.Request) {
	c, ok := mustClaims(w, r)
	if !ok {
		return
	}

	var body ceoInitiateRequest
	if !decodeBody(w, r, &body) {
		return
	}

	req, err := h.promotionSvc.CEOInitiatePromotion(r.Context(), c.UserID, body.UserID, domain.Role(body.RequestedRole))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, req)
}

type scheduleInterviewRequest struct {
	ScheduledAt time.Time `json:"scheduled_at"`
	Mode        string    `json:"mode"`
	MeetingLink string    `json:"meeting_link"`
	Location    string    `json:"location"`
	Notes       string    `json:"notes"`
}

func (h *PromotionHandler) ScheduleInterview(w http.ResponseWriter, r *http.Request) {
	c, ok := mustClaims(w, r)
	if !ok {
		return
	}
	id, ok := pathID(r)
	if !ok {
		writeMessage(w, http.StatusBadRequest, "invalid request id")
		return
	}

	var body scheduleInterviewRequest
	if !decodeBody(w, r, &body) {
		return
	}

	req, err := h.promotionSvc.ScheduleInterview(r.Context(), c.UserID, id, service.ScheduleInterviewInput{
		ScheduledAt: body.ScheduledAt,
		Mode:        domain.InterviewMode(body.Mode),
		MeetingLink: body.MeetingLink,
		Location:    body.Location,
		Notes:       body.Notes,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

type completeInterviewRequest struct {
	ProofKey string `json:"proof_key"`
}

func (h *PromotionHandler) CompleteInterview(w http.ResponseWriter, r *http.Request) {
	c, ok := mustClaims(w, r)
	if !ok {
		return
	}
	id, ok := pathID(r)
	if !ok {
		writeMessage(w, http.StatusBadRequest, "invalid request id")
		return
	}

	var body completeInterviewRequest
	if !decodeBody(w, r, &body) {
		return
	}

	req, err := h.promotionSvc.CompleteInterview(r.Context(), c.UserID, id, body.ProofKey)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

type confirmRequest struct {
	Confirm bool `json:"confirm"`
}

func (h *PromotionHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	c, ok := mustClaims(w, r)
	if !ok {
		return
	}
	id, ok := pathID(r)
	if !ok {
		writeMessage(w, http.StatusBadRequest, "invalid request id")
		return
	}

	var body confirmRequest
	if !decodeBody(w, r, &body) {
		return
	}

	req, err := h.promotionSvc.ConfirmInterviewStatus(r.Context(), id, c.UserID, body.Confirm)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

type decisionRequest struct {
	Reason string `json:"reason"`
}

func (h *PromotionHandler) Approve(w http.ResponseWriter, r *http.Request) {
	c, ok := mustClaims(w, r)
	if !ok {
		return
	}
	id, ok := pathID(r)
	if !ok {
		writeMessage(w, http.StatusBadRequest, "invalid request id")
		return
	}

	var body decisionRequest
	if !decodeBody(w, r, &body) {
		return
	}

	req, err := h.promotionSvc.ApprovePromotion(r.Context(), id, c.UserID, body.Reason)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (h *PromotionHandler) Reject(w http.ResponseWriter, r *http.Request) {
	c, ok := mustClaims(w, r)
	if !ok {
		return
	}
	id, ok := pathID(r)
	if !ok {
		writeMessage(w, http.StatusBadRequest, "invalid request id")
		return
	}

	var body decisionRequest
	if !decodeBody(w, r, &body) {
		return
	}

	req, err := h.promotionSvc.RejectPromotion(r.Context(), id, c.UserID, body.Reason)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (h *PromotionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeMessage(w, http.StatusBadRequest, "invalid request id")
		return
	}

	req, err := h.promotionSvc.GetPromotion(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (h *PromotionHandler) List(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	role := r.URL.Query().Get("requested_role")

	reqs, err := h.promotionSvc.ListPromotions(r.Context(), status, role)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reqs)
}

func (h *PromotionHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	c, ok := mustClaims(w, r)
	if !ok {
		return
	}

	reqs, err := h.promotionSvc.ListMyPromotions(r.Context(), c.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reqs)
}
