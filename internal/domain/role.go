package domain

type Role string

const (
	RoleStudent    Role = "student"
	RoleInstructor Role = "instructor"
	RoleModerator  Role = "moderator"
	RoleAdmin      Role = "admin"
	RoleCEO        Role = "ceo"
)

// ParseRole maps a wire string onto the closed Role set.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleStudent, RoleInstructor, RoleModerator, RoleAdmin, RoleCEO:
		return Role(s), true
	}
	return "", false
}

// NextPromotionRole walks the promotion ladder:
// student -> instructor -> moderator -> admin. Admin and CEO have no
// next rung. The demotion ladder orders instructor and moderator the
// other way around; the two ladders are intentionally independent.
func NextPromotionRole(r Role) (Role, bool) {
	switch r {
	case RoleStudent:
		return RoleInstructor, true
	case RoleInstructor:
		return RoleModerator, true
	case RoleModerator:
		return RoleAdmin, true
	case RoleAdmin, RoleCEO:
		return "", false
	}
	return "", false
}

// DemotionRank positions a role on the demotion ladder:
// student < moderator < instructor < admin. CEO is protected and has
// no rank here.
func DemotionRank(r Role) (int, bool) {
	switch r {
	case RoleStudent:
		return 0, true
	case RoleModerator:
		return 1, true
	case RoleInstructor:
		return 2, true
	case RoleAdmin:
		return 3, true
	case RoleCEO:
		return 0, false
	}
	return 0, false
}

// CanManageRoleChanges reports whether the role may initiate demotions,
// schedule interviews and list all workflow requests.
func (r Role) CanManageRoleChanges() bool {
	switch r {
	case RoleAdmin, RoleCEO:
		return true
	case RoleStudent, RoleInstructor, RoleModerator:
		return false
	}
	return false
}

// CanDecidePromotions reports whether the role may approve or reject
// promotion requests. Only the CEO decides.
func (r Role) CanDecidePromotions() bool {
	switch r {
	case RoleCEO:
		return true
	case RoleStudent, RoleInstructor, RoleModerator, RoleAdmin:
		return false
	}
	return false
}
