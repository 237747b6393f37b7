package domain

import "time"

type PromotionStatus string

const (
	PromotionStatusPendingReview     PromotionStatus = "pending_review"
	PromotionStatusInterviewSet      PromotionStatus = "interview_scheduled"
	PromotionStatusInterviewDone     PromotionStatus = "interview_completed"
	PromotionStatusAwaitingUser      PromotionStatus = "awaiting_user_confirmation"
	PromotionStatusUnderReview       PromotionStatus = "under_review"
	PromotionStatusApproved          PromotionStatus = "approved"
	PromotionStatusRejected          PromotionStatus = "rejected"
	PromotionStatusDisputed          PromotionStatus = "disputed"
)

// ActivePromotionStatuses is the set the single-active-request invariant
// ranges over. Must stay in sync with the partial unique index on
// promotion_requests.
func ActivePromotionStatuses() []PromotionStatus {
	return []PromotionStatus{
		PromotionStatusPendingReview,
		PromotionStatusInterviewSet,
		PromotionStatusInterviewDone,
		PromotionStatusAwaitingUser,
		PromotionStatusUnderReview,
	}
}

func (s PromotionStatus) Terminal() bool {
	return s == PromotionStatusApproved || s == PromotionStatusRejected
}

type PromotionInitiator string

const (
	PromotionInitiatorUser PromotionInitiator = "user"
	PromotionInitiatorCEO  PromotionInitiator = "ceo"
)

type InterviewMode string

const (
	InterviewModeOnline  InterviewMode = "online"
	InterviewModeOffline InterviewMode = "offline"
)

type InterviewStage string

const (
	InterviewStageScheduled InterviewStage = "scheduled"
	InterviewStageCompleted InterviewStage = "completed"
)

type InterviewConfirmation string

const (
	InterviewConfirmPending InterviewConfirmation = "pending"
	InterviewConfirmYes     InterviewConfirmation = "yes"
	InterviewConfirmNo      InterviewConfirmation = "no"
)

// Interview is present on a promotion request only once an interview is
// required. Stage tells which of the remaining fields are meaningful.
type Interview struct {
	Required        bool                  `json:"required"`
	Stage           InterviewStage        `json:"stage,omitempty"`
	ScheduledAt     *time.Time            `json:"scheduled_at,omitempty"`
	Mode            InterviewMode         `json:"mode,omitempty"`
	MeetingLink     string                `json:"meeting_link,omitempty"`
	Location        string                `json:"location,omitempty"`
	Notes           string                `json:"notes,omitempty"`
	CompletedAt     *time.Time            `json:"completed_at,omitempty"`
	CompletedBy     *int32                `json:"completed_by,omitempty"`
	ConfirmedByUser InterviewConfirmation `json:"confirmed_by_user,omitempty"`
	ProofKey        string                `json:"proof_key,omitempty"`
}

type PromotionRequest struct {
	ID             int32              `json:"id"`
	UserID         int32              `json:"user_id"`
	CurrentRole    Role               `json:"current_role_at_request"`
	RequestedRole  Role               `json:"requested_role"`
	InitiatedBy    PromotionInitiator `json:"initiated_by"`
	Status         PromotionStatus    `json:"status"`
	Interview      *Interview         `json:"interview,omitempty"`
	DecidedBy      *int32             `json:"decided_by,omitempty"`
	DecidedAt      *time.Time         `json:"decided_at,omitempty"`
	DecisionReason string             `json:"decision_reason,omitempty"`
	CooldownEndsAt *time.Time         `json:"cooldown_ends_at,omitempty"`
	CreatedOn      time.Time          `json:"created_on"`
	UpdatedOn      time.Time          `json:"updated_on"`
}
