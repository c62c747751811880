package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_IsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, RoleUser.IsValid())
	assert.True(t, RoleAdmin.IsValid())
	assert.False(t, Role("ROLE_SUPERUSER").IsValid())
	assert.False(t, Role("").IsValid())
}

func TestRoles_Contains(t *testing.T) {
	t.Parallel()

	roles := Roles{RoleUser}
	assert.True(t, roles.Contains(RoleUser))
	assert.False(t, roles.Contains(RoleAdmin))
	assert.False(t, Roles{}.Contains(RoleUser))
}

func TestRolesFromStrings_FiltersUnknownRoles(t *testing.T) {
	t.Parallel()

	roles := RolesFromStrings([]string{"ROLE_USER", "ROLE_SUPERUSER", "ROLE_ADMIN", ""})
	assert.Equal(t, Roles{RoleUser, RoleAdmin}, roles)
}

func TestRoles_ToStrings(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"ROLE_USER", "ROLE_ADMIN"}, Roles{RoleUser, RoleAdmin}.ToStrings())
	assert.Empty(t, Roles{}.ToStrings())
}
