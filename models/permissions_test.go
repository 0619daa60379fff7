package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRoleNormalizesVariants(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"agent", RoleAgent},
		{"leader", RoleLeader},
		{"admin", RoleAdmin},
		{"coordinator", RoleLeader},
		{"staff", RoleAgent},
		{"", RoleAgent},
		{"superuser", RoleAgent},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseRole(tt.in), "role %q", tt.in)
	}
}

func TestPermissionsForAgent(t *testing.T) {
	perms := PermissionsFor(RoleAgent)
	assert.False(t, perms.CanManageTeams)
	assert.False(t, perms.CanDeleteRecords)
	assert.False(t, perms.CanManageAgents)
}

func TestPermissionsForLeader(t *testing.T) {
	perms := PermissionsFor("coordinator")
	assert.True(t, perms.CanManageTeams)
	assert.True(t, perms.CanDeleteRecords)
	assert.False(t, perms.CanManageAgents, "only admin manages agents")
}

func TestPermissionsForAdmin(t *testing.T) {
	perms := PermissionsFor(RoleAdmin)
	assert.True(t, perms.CanManageAgents)
	assert.True(t, perms.CanPublish)
}
