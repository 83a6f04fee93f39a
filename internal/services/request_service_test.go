package services_test

import (
	"errors"
	"testing"

	"tag_approval_system/internal"
	"tag_approval_system/internal/db/models"
	"tag_approval_system/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newRequestService(env *testEnv) services.RequestService {
	return services.NewRequestService(env.authorization, env.requests, env.guildConfigs, env.tagApplier, zap.NewNop().Sugar())
}

func configureGuild(t *testing.T, env *testEnv) {
	t.Helper()

	env.authorizeGuild(t, testGuildID)
	_, err := env.guildConfigs.SetChannels(testGuildID, "request-channel", "approval-channel", "results-channel")
	require.NoError(t, err)
	require.NoError(t, env.guildConfigs.AddGrantableRole(testGuildID, "role-1", "Member"))
}

func TestSubmit_GuildNotAuthorized(t *testing.T) {
	env := newTestEnv(t)
	service := newRequestService(env)

	_, err := service.Submit(testGuildID, "user-1", "John", "12345")
	assert.ErrorIs(t, err, internal.ErrGuildNotAuthorized)
}

func TestSubmit_NotConfigured(t *testing.T) {
	env := newTestEnv(t)
	env.authorizeGuild(t, testGuildID)
	service := newRequestService(env)

	_, err := service.Submit(testGuildID, "user-1", "John", "12345")
	assert.ErrorIs(t, err, internal.ErrNotConfigured)
}

func TestSubmit_CreatesPendingRequest(t *testing.T) {
	env := newTestEnv(t)
	configureGuild(t, env)
	service := newRequestService(env)

	request, err := service.Submit(testGuildID, "user-1", "John", "12345")
	assert.NoError(t, err)
	assert.Equal(t, models.RequestStatusPending, request.Status)
	assert.Equal(t, "John", request.Name)
	assert.Equal(t, "12345", request.ExternalID)
}

func TestSubmit_AlreadyPending(t *testing.T) {
	env := newTestEnv(t)
	configureGuild(t, env)
	service := newRequestService(env)

	_, err := service.Submit(testGuildID, "user-1", "John", "12345")
	require.NoError(t, err)

	_, err = service.Submit(testGuildID, "user-1", "John", "12345")
	assert.ErrorIs(t, err, internal.ErrAlreadyPending)
}

func TestSubmit_ResolvedSlotCanBeReused(t *testing.T) {
	env := newTestEnv(t)
	configureGuild(t, env)
	service := newRequestService(env)

	_, err := service.Submit(testGuildID, "user-1", "John", "12345")
	require.NoError(t, err)
	_, err = service.Reject(testGuildID, testOwnerID, "user-1")
	require.NoError(t, err)

	request, err := service.Submit(testGuildID, "user-1", "Johnny", "12345")
	assert.NoError(t, err)
	assert.Equal(t, models.RequestStatusPending, request.Status)
	assert.Equal(t, "Johnny", request.Name)
	assert.Empty(t, request.DecidedBy)
}

func TestBeginApproval_NotAdmin(t *testing.T) {
	env := newTestEnv(t)
	configureGuild(t, env)
	service := newRequestService(env)

	_, err := service.Submit(testGuildID, "user-1", "John", "12345")
	require.NoError(t, err)

	_, err = service.BeginApproval(testGuildID, "stranger", "user-1")
	assert.ErrorIs(t, err, internal.ErrNotAdmin)
}

func TestBeginApproval_RequestNotFound(t *testing.T) {
	env := newTestEnv(t)
	configureGuild(t, env)
	service := newRequestService(env)

	_, err := service.BeginApproval(testGuildID, testOwnerID, "user-1")
	assert.ErrorIs(t, err, internal.ErrRequestNotFound)
}

func TestBeginApproval_RequestFromAnotherGuildIsInvisible(t *testing.T) {
	env := newTestEnv(t)
	configureGuild(t, env)
	env.authorizeGuild(t, "guild-2")
	service := newRequestService(env)

	_, err := service.Submit(testGuildID, "user-1", "John", "12345")
	require.NoError(t, err)

	_, err = service.BeginApproval("guild-2", testOwnerID, "user-1")
	assert.ErrorIs(t, err, internal.ErrRequestNotFound)
}

func TestBeginApproval_NoGrantableRoles(t *testing.T) {
	env := newTestEnv(t)
	configureGuild(t, env)
	require.NoError(t, env.guildConfigs.RemoveGrantableRole(testGuildID, "role-1"))
	service := newRequestService(env)

	_, err := service.Submit(testGuildID, "user-1", "John", "12345")
	require.NoError(t, err)

	_, err = service.BeginApproval(testGuildID, testOwnerID, "user-1")
	assert.ErrorIs(t, err, internal.ErrNoGrantableRoles)

	// The first phase must not touch the request.
	request, err := env.requests.GetOne("user-1")
	assert.NoError(t, err)
	assert.True(t, request.IsPending())
}

func TestBeginApproval_ReturnsRoleMenu(t *testing.T) {
	env := newTestEnv(t)
	configureGuild(t, env)
	require.NoError(t, env.guildConfigs.AddGrantableRole(testGuildID, "role-2", "Veteran"))
	service := newRequestService(env)

	_, err := service.Submit(testGuildID, "user-1", "John", "12345")
	require.NoError(t, err)

	roles, err := service.BeginApproval(testGuildID, testOwnerID, "user-1")
	assert.NoError(t, err)
	assert.Equal(t, []models.RoleEntry{
		{RoleID: "role-1", Name: "Member"},
		{RoleID: "role-2", Name: "Veteran"},
	}, roles)

	request, err := env.requests.GetOne("user-1")
	assert.NoError(t, err)
	assert.True(t, request.IsPending())
}

func TestFinalizeApproval_CommitsAndAppliesTag(t *testing.T) {
	env := newTestEnv(t)
	configureGuild(t, env)
	service := newRequestService(env)

	_, err := service.Submit(testGuildID, "user-1", "John", "12345")
	require.NoError(t, err)

	request, err := service.FinalizeApproval(testGuildID, testOwnerID, "user-1", "role-1")
	assert.NoError(t, err)
	assert.Equal(t, models.RequestStatusApproved, request.Status)
	assert.Equal(t, testOwnerID, request.DecidedBy)
	assert.Equal(t, "role-1", request.GrantedRoleID)

	assert.Equal(t, []string{"role-1"}, env.tagApplier.grantedRoles)
	assert.Equal(t, []string{"Member John | 12345"}, env.tagApplier.nicknames)
}

func TestFinalizeApproval_RoleNotGrantable(t *testing.T) {
	env := newTestEnv(t)
	configureGuild(t, env)
	service := newRequestService(env)

	_, err := service.Submit(testGuildID, "user-1", "John", "12345")
	require.NoError(t, err)

	_, err = service.FinalizeApproval(testGuildID, testOwnerID, "user-1", "role-99")
	assert.ErrorIs(t, err, internal.ErrNotPresent)

	request, err := env.requests.GetOne("user-1")
	assert.NoError(t, err)
	assert.True(t, request.IsPending())
	assert.Empty(t, env.tagApplier.grantedRoles)
}

func TestFinalizeApproval_SideEffectFailuresAreSwallowed(t *testing.T) {
	env := newTestEnv(t)
	configureGuild(t, env)
	env.tagApplier.grantErr = errors.New("missing permissions")
	env.tagApplier.nicknameErr = errors.New("missing permissions")
	service := newRequestService(env)

	_, err := service.Submit(testGuildID, "user-1", "John", "12345")
	require.NoError(t, err)

	request, err := service.FinalizeApproval(testGuildID, testOwnerID, "user-1", "role-1")
	assert.NoError(t, err)
	assert.Equal(t, models.RequestStatusApproved, request.Status)

	// The approval stays committed even though the platform calls failed.
	stored, err := env.requests.GetOne("user-1")
	assert.NoError(t, err)
	assert.Equal(t, models.RequestStatusApproved, stored.Status)
}

func TestFinalizeApproval_AlreadyResolved(t *testing.T) {
	env := newTestEnv(t)
	configureGuild(t, env)
	service := newRequestService(env)

	_, err := service.Submit(testGuildID, "user-1", "John", "12345")
	require.NoError(t, err)
	_, err = service.Reject(testGuildID, testOwnerID, "user-1")
	require.NoError(t, err)

	_, err = service.FinalizeApproval(testGuildID, testOwnerID, "user-1", "role-1")
	assert.ErrorIs(t, err, internal.ErrNotPending)
	assert.Empty(t, env.tagApplier.grantedRoles)
}

func TestReject_MarksRequestRejected(t *testing.T) {
	env := newTestEnv(t)
	configureGuild(t, env)
	service := newRequestService(env)

	_, err := service.Submit(testGuildID, "user-1", "John", "12345")
	require.NoError(t, err)

	request, err := service.Reject(testGuildID, testOwnerID, "user-1")
	assert.NoError(t, err)
	assert.Equal(t, models.RequestStatusRejected, request.Status)
	assert.Equal(t, testOwnerID, request.DecidedBy)
}

func TestReject_NotAdmin(t *testing.T) {
	env := newTestEnv(t)
	configureGuild(t, env)
	service := newRequestService(env)

	_, err := service.Submit(testGuildID, "user-1", "John", "12345")
	require.NoError(t, err)

	_, err = service.Reject(testGuildID, "stranger", "user-1")
	assert.ErrorIs(t, err, internal.ErrNotAdmin)
}

func TestPendingRequests(t *testing.T) {
	env := newTestEnv(t)
	configureGuild(t, env)
	service := newRequestService(env)

	_, err := service.Submit(testGuildID, "user-1", "John", "12345")
	require.NoError(t, err)
	_, err = service.Submit(testGuildID, "user-2", "Jane", "67890")
	require.NoError(t, err)
	_, err = service.Reject(testGuildID, testOwnerID, "user-2")
	require.NoError(t, err)

	pending, err := service.PendingRequests()
	assert.NoError(t, err)
	assert.Equal(t, 1, len(pending))
	assert.Equal(t, "user-1", pending[0].RequesterID)
}
