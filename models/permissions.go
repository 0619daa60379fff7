// ABOUTME: Role vocabulary and the static role -> capability table
// ABOUTME: Consumers read capability booleans, never the raw role
package models

// Canonical roles. Some backend variants still answer with
// "coordinator" or "staff"; ParseRole maps those onto the canonical
// set instead of guessing which vocabulary is authoritative.
const (
	RoleAgent  = "agent"
	RoleLeader = "leader"
	RoleAdmin  = "admin"
)

// Permissions are the capability flags derived from a role. The
// derivation is presentation-only gating; the backend enforces its own
// rules independently.
type Permissions struct {
	CanEditAllProperties bool
	CanManageTeams       bool
	CanManageAgents      bool
	CanDeleteRecords     bool
	CanPublish           bool
}

var permissionTable = map[string]Permissions{
	RoleAgent: {},
	RoleLeader: {
		CanEditAllProperties: true,
		CanManageTeams:       true,
		CanDeleteRecords:     true,
		CanPublish:           true,
	},
	RoleAdmin: {
		CanEditAllProperties: true,
		CanManageTeams:       true,
		CanManageAgents:      true,
		CanDeleteRecords:     true,
		CanPublish:           true,
	},
}

// ParseRole normalizes a backend role string onto the canonical
// vocabulary. Unknown roles degrade to agent, the least privileged.
func ParseRole(role string) string {
	switch role {
	case RoleAgent, RoleLeader, RoleAdmin:
		return role
	case "coordinator":
		return RoleLeader
	case "staff":
		return RoleAgent
	default:
		return RoleAgent
	}
}

// PermissionsFor returns the capability flags for a role. The input is
// normalized first, so callers may pass the raw backend value.
func PermissionsFor(role string) Permissions {
	return permissionTable[ParseRole(role)]
}
