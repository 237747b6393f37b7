package domain

import "time"

type RoleChangeStatus string

const (
	RoleChangeStatusPendingUserReview RoleChangeStatus = "pending_user_review"
	RoleChangeStatusUserAccepted      RoleChangeStatus = "user_accepted"
	RoleChangeStatusUserDisputed      RoleChangeStatus = "user_disputed"
	RoleChangeStatusFinalized         RoleChangeStatus = "finalized"
	RoleChangeStatusCancelled         RoleChangeStatus = "cancelled"
)

// ActiveRoleChangeStatuses is the set the single-active-request invariant
// ranges over for demotions. Must stay in sync with the partial unique
// index on role_change_requests.
func ActiveRoleChangeStatuses() []RoleChangeStatus {
	return []RoleChangeStatus{
		RoleChangeStatusPendingUserReview,
		RoleChangeStatusUserAccepted,
		RoleChangeStatusUserDisputed,
	}
}

func (s RoleChangeStatus) Terminal() bool {
	return s == RoleChangeStatusFinalized || s == RoleChangeStatusCancelled
}

type UserResponse string

const (
	UserResponseAccepted UserResponse = "accepted"
	UserResponseDisputed UserResponse = "disputed"
)

// MinDemotionReasonLen is the shortest acceptable demotion reason.
const MinDemotionReasonLen = 10

// RoleChangeRequest tracks one downward role change for a user.
// CurrentRole is snapshotted from the user directory at initiation.
type RoleChangeRequest struct {
	ID           int32            `json:"id"`
	UserID       int32            `json:"user_id"`
	CurrentRole  Role             `json:"current_role"`
	NewRole      Role             `json:"new_role"`
	Reason       string           `json:"reason"`
	InitiatedBy  int32            `json:"initiated_by"`
	Status       RoleChangeStatus `json:"status"`
	UserResponse *UserResponse    `json:"user_response,omitempty"`
	DisputeNote  string           `json:"dispute_note,omitempty"`
	FinalizedBy  *int32           `json:"finalized_by,omitempty"`
	CreatedOn    time.Time        `json:"created_on"`
	UpdatedOn    time.Time        `json:"updated_on"`
}
