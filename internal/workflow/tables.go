package workflow

import "learnhub-backend/internal/domain"

// Promotion engine events.
const (
	EventScheduleInterview Event = "schedule_interview"
	EventCompleteInterview Event = "complete_interview"
	EventUserConfirmYes    Event = "user_confirm_yes"
	EventUserConfirmNo     Event = "user_confirm_no"
	EventApprove           Event = "approve"
	EventReject            Event = "reject"
)

// Demotion engine events.
const (
	EventUserAccept  Event = "user_accept"
	EventUserDispute Event = "user_dispute"
	EventFinalize    Event = "finalize"
	EventCancel      Event = "cancel"
)

// Promotion is the promotion request transition table. Approve and reject
// are CEO decisions and are accepted from every non-terminal status,
// including disputed; scheduling is only possible before an interview is
// already on the calendar.
var Promotion = NewMachine(map[domain.PromotionStatus]map[Event]domain.PromotionStatus{
	domain.PromotionStatusPendingReview: {
		EventScheduleInterview: domain.PromotionStatusInterviewSet,
		EventApprove:           domain.PromotionStatusApproved,
		EventReject:            domain.PromotionStatusRejected,
	},
	domain.PromotionStatusAwaitingUser: {
		EventScheduleInterview: domain.PromotionStatusInterviewSet,
		EventApprove:           domain.PromotionStatusApproved,
		EventReject:            domain.PromotionStatusRejected,
	},
	domain.PromotionStatusUnderReview: {
		EventScheduleInterview: domain.PromotionStatusInterviewSet,
		EventApprove:           domain.PromotionStatusApproved,
		EventReject:            domain.PromotionStatusRejected,
	},
	domain.PromotionStatusInterviewSet: {
		EventCompleteInterview: domain.PromotionStatusInterviewDone,
		EventApprove:           domain.PromotionStatusApproved,
		EventReject:            domain.PromotionStatusRejected,
	},
	domain.PromotionStatusInterviewDone: {
		EventUserConfirmYes: domain.PromotionStatusUnderReview,
		EventUserConfirmNo:  domain.PromotionStatusDisputed,
		EventApprove:        domain.PromotionStatusApproved,
		EventReject:         domain.PromotionStatusRejected,
	},
	domain.PromotionStatusDisputed: {
		EventApprove: domain.PromotionStatusApproved,
		EventReject:  domain.PromotionStatusRejected,
	},
}, domain.PromotionStatusApproved, domain.PromotionStatusRejected)

// RoleChange is the demotion request transition table. Finalize applies
// from both user_accepted and user_disputed: a dispute is advisory and
// does not block the decision. Cancel works from any non-terminal status.
var RoleChange = NewMachine(map[domain.RoleChangeStatus]map[Event]domain.RoleChangeStatus{
	domain.RoleChangeStatusPendingUserReview: {
		EventUserAccept:  domain.RoleChangeStatusUserAccepted,
		EventUserDispute: domain.RoleChangeStatusUserDisputed,
		EventCancel:      domain.RoleChangeStatusCancelled,
	},
	domain.RoleChangeStatusUserAccepted: {
		EventFinalize: domain.RoleChangeStatusFinalized,
		EventCancel:   domain.RoleChangeStatusCancelled,
	},
	domain.RoleChangeStatusUserDisputed: {
		EventFinalize: domain.RoleChangeStatusFinalized,
		EventCancel:   domain.RoleChangeStatusCancelled,
	},
}, domain.RoleChangeStatusFinalized, domain.RoleChangeStatusCancelled)
