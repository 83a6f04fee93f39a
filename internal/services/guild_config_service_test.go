package services_test

import (
	"testing"

	"tag_approval_system/internal"
	"tag_approval_system/internal/db/models"
	"tag_approval_system/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newGuildConfigService(env *testEnv) services.GuildConfigService {
	return services.NewGuildConfigService(env.authorization, env.guildConfigs, zap.NewNop().Sugar())
}

func TestSetChannels_GuildNotAuthorized(t *testing.T) {
	env := newTestEnv(t)
	service := newGuildConfigService(env)

	_, err := service.SetChannels(testGuildID, testOwnerID, "request", "approval", "results")
	assert.ErrorIs(t, err, internal.ErrGuildNotAuthorized)
}

func TestSetChannels_NotAdmin(t *testing.T) {
	env := newTestEnv(t)
	env.authorizeGuild(t, testGuildID)
	service := newGuildConfigService(env)

	_, err := service.SetChannels(testGuildID, "stranger", "request", "approval", "results")
	assert.ErrorIs(t, err, internal.ErrNotAdmin)
}

func TestSetChannels_Admin(t *testing.T) {
	env := newTestEnv(t)
	env.authorizeGuild(t, testGuildID)
	env.memberProvider.administrators[testGuildID+"/admin-user"] = true
	service := newGuildConfigService(env)

	config, err := service.SetChannels(testGuildID, "admin-user", "request", "approval", "results")
	assert.NoError(t, err)
	assert.True(t, config.IsConfigured())
	assert.Equal(t, "approval", config.ApprovalChannelID)
}

func TestGrantableRoles_AddListRemove(t *testing.T) {
	env := newTestEnv(t)
	env.authorizeGuild(t, testGuildID)
	service := newGuildConfigService(env)

	require.NoError(t, service.AddGrantableRole(testGuildID, testOwnerID, "role-1", "Member"))
	require.NoError(t, service.AddGrantableRole(testGuildID, testOwnerID, "role-2", "Veteran"))

	roles, err := service.ListGrantableRoles(testGuildID, testOwnerID)
	assert.NoError(t, err)
	assert.Equal(t, []models.RoleEntry{
		{RoleID: "role-1", Name: "Member"},
		{RoleID: "role-2", Name: "Veteran"},
	}, roles)

	require.NoError(t, service.RemoveGrantableRole(testGuildID, testOwnerID, "role-1"))

	roles, err = service.ListGrantableRoles(testGuildID, testOwnerID)
	assert.NoError(t, err)
	assert.Equal(t, []models.RoleEntry{{RoleID: "role-2", Name: "Veteran"}}, roles)
}

func TestAddGrantableRole_DuplicateRefreshesName(t *testing.T) {
	env := newTestEnv(t)
	env.authorizeGuild(t, testGuildID)
	service := newGuildConfigService(env)

	require.NoError(t, service.AddGrantableRole(testGuildID, testOwnerID, "role-1", "Member"))
	require.NoError(t, service.AddGrantableRole(testGuildID, testOwnerID, "role-1", "Renamed"))

	roles, err := service.ListGrantableRoles(testGuildID, testOwnerID)
	assert.NoError(t, err)
	assert.Equal(t, []models.RoleEntry{{RoleID: "role-1", Name: "Renamed"}}, roles)
}

func TestRemoveGrantableRole_NotPresent(t *testing.T) {
	env := newTestEnv(t)
	env.authorizeGuild(t, testGuildID)
	service := newGuildConfigService(env)

	err := service.RemoveGrantableRole(testGuildID, testOwnerID, "role-1")
	assert.ErrorIs(t, err, internal.ErrNotPresent)
}

func TestAddAdditionalAdmin_NotPrimaryAdmin(t *testing.T) {
	env := newTestEnv(t)
	env.authorizeGuild(t, testGuildID)
	service := newGuildConfigService(env)

	require.NoError(t, service.AddAdditionalAdmin(testGuildID, testOwnerID, "helper", "Helper"))

	// An additional admin may manage roles but not the admin set itself.
	err := service.AddAdditionalAdmin(testGuildID, "helper", "friend", "Friend")
	assert.ErrorIs(t, err, internal.ErrNotPrimaryAdmin)

	admins, err := service.ListAdditionalAdmins(testGuildID, testOwnerID)
	assert.NoError(t, err)
	assert.Equal(t, []models.AdminEntry{{UserID: "helper", Name: "Helper"}}, admins)
}

func TestAdditionalAdmin_CanManageRoles(t *testing.T) {
	env := newTestEnv(t)
	env.authorizeGuild(t, testGuildID)
	service := newGuildConfigService(env)

	require.NoError(t, service.AddAdditionalAdmin(testGuildID, testOwnerID, "helper", "Helper"))

	assert.NoError(t, service.AddGrantableRole(testGuildID, "helper", "role-1", "Member"))
}

func TestRemoveAdditionalAdmin_NotPresent(t *testing.T) {
	env := newTestEnv(t)
	env.authorizeGuild(t, testGuildID)
	service := newGuildConfigService(env)

	err := service.RemoveAdditionalAdmin(testGuildID, testOwnerID, "helper")
	assert.ErrorIs(t, err, internal.ErrNotPresent)
}

func TestRemoveAdditionalAdmin_RevokesAdminRights(t *testing.T) {
	env := newTestEnv(t)
	env.authorizeGuild(t, testGuildID)
	service := newGuildConfigService(env)

	require.NoError(t, service.AddAdditionalAdmin(testGuildID, testOwnerID, "helper", "Helper"))
	require.NoError(t, service.RemoveAdditionalAdmin(testGuildID, testOwnerID, "helper"))

	assert.False(t, env.authorization.IsAdmin(testGuildID, "helper"))
}
