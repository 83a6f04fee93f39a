package main

import (
	"errors"
	"testing"
	"time"

	"tag_approval_system/internal/db/models"
	mock_repositories "tag_approval_system/internal/db/repositories/mocks"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestSelectStaleRequests_AllStale(t *testing.T) {
	cutoff := time.Now()
	requests := []*models.TagRequest{
		{RequesterID: "1", CreatedAt: cutoff.Add(-2 * time.Hour)},
		{RequesterID: "2", CreatedAt: cutoff.Add(-1 * time.Hour)},
	}
	result := selectStaleRequests(requests, cutoff)
	assert.Equal(t, 2, len(result))
}

func TestSelectStaleRequests_NoneStale(t *testing.T) {
	cutoff := time.Now()
	requests := []*models.TagRequest{
		{RequesterID: "1", CreatedAt: cutoff.Add(time.Hour)},
		{RequesterID: "2", CreatedAt: cutoff.Add(2 * time.Hour)},
	}
	result := selectStaleRequests(requests, cutoff)
	assert.Equal(t, 0, len(result))
}

func TestSelectStaleRequests_Mixed(t *testing.T) {
	cutoff := time.Now()
	requests := []*models.TagRequest{
		{RequesterID: "1", CreatedAt: cutoff.Add(-time.Hour)},
		{RequesterID: "2", CreatedAt: cutoff.Add(time.Hour)},
		{RequesterID: "3", CreatedAt: cutoff.Add(-time.Minute)},
	}
	result := selectStaleRequests(requests, cutoff)
	assert.Equal(t, 2, len(result))
}

func TestGroupRequestsByGuild(t *testing.T) {
	requests := []*models.TagRequest{
		{RequesterID: "1", GuildID: "guild-1"},
		{RequesterID: "2", GuildID: "guild-2"},
		{RequesterID: "3", GuildID: "guild-1"},
	}
	grouped := groupRequestsByGuild(requests)
	assert.Equal(t, 2, len(grouped))
	assert.Equal(t, 2, len(grouped["guild-1"]))
	assert.Equal(t, 1, len(grouped["guild-2"]))
}

func TestDigestEmbed(t *testing.T) {
	requests := []*models.TagRequest{
		{RequesterID: "1", Name: "John", ExternalID: "12345", Status: models.RequestStatusPending, CreatedAt: time.Now()},
		{RequesterID: "2", Name: "Jane", ExternalID: "67890", Status: models.RequestStatusPending, CreatedAt: time.Now()},
	}
	embed := digestEmbed(requests)
	assert.Equal(t, "Pending Tag Requests", embed.Title)
	assert.Equal(t, 2, len(embed.Fields))
	assert.Equal(t, "John | 12345", embed.Fields[0].Name)
	assert.Contains(t, embed.Fields[0].Value, "<@1>")
	assert.Contains(t, embed.Fields[0].Value, "Pending")
}

func TestCollectDigests_BuildsOnePerGuild(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	requestRepo := mock_repositories.NewMockRequestRepository(ctrl)
	guildConfigRepo := mock_repositories.NewMockGuildConfigRepository(ctrl)
	logger := zap.NewNop().Sugar()

	cutoff := time.Now()
	requestRepo.EXPECT().GetManyByStatus(models.RequestStatusPending).Return([]*models.TagRequest{
		{RequesterID: "1", GuildID: "guild-1", CreatedAt: cutoff.Add(-time.Hour)},
		{RequesterID: "2", GuildID: "guild-2", CreatedAt: cutoff.Add(-time.Hour)},
	}, nil)
	guildConfigRepo.EXPECT().GetOne("guild-1").Return(&models.GuildConfig{ApprovalChannelID: "channel-1"}, nil)
	guildConfigRepo.EXPECT().GetOne("guild-2").Return(&models.GuildConfig{ApprovalChannelID: "channel-2"}, nil)

	digests, err := collectDigests(requestRepo, guildConfigRepo, cutoff, logger)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(digests))
}

func TestCollectDigests_SkipsGuildWithoutApprovalChannel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	requestRepo := mock_repositories.NewMockRequestRepository(ctrl)
	guildConfigRepo := mock_repositories.NewMockGuildConfigRepository(ctrl)
	logger := zap.NewNop().Sugar()

	cutoff := time.Now()
	requestRepo.EXPECT().GetManyByStatus(models.RequestStatusPending).Return([]*models.TagRequest{
		{RequesterID: "1", GuildID: "guild-1", CreatedAt: cutoff.Add(-time.Hour)},
	}, nil)
	guildConfigRepo.EXPECT().GetOne("guild-1").Return(&models.GuildConfig{}, nil)

	digests, err := collectDigests(requestRepo, guildConfigRepo, cutoff, logger)
	assert.NoError(t, err)
	assert.Equal(t, 0, len(digests))
}

func TestCollectDigests_SkipsGuildConfigError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	requestRepo := mock_repositories.NewMockRequestRepository(ctrl)
	guildConfigRepo := mock_repositories.NewMockGuildConfigRepository(ctrl)
	logger := zap.NewNop().Sugar()

	cutoff := time.Now()
	requestRepo.EXPECT().GetManyByStatus(models.RequestStatusPending).Return([]*models.TagRequest{
		{RequesterID: "1", GuildID: "guild-1", CreatedAt: cutoff.Add(-time.Hour)},
	}, nil)
	guildConfigRepo.EXPECT().GetOne("guild-1").Return(nil, errors.New("database error"))

	digests, err := collectDigests(requestRepo, guildConfigRepo, cutoff, logger)
	assert.NoError(t, err)
	assert.Equal(t, 0, len(digests))
}

func TestCollectDigests_NothingStale(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	requestRepo := mock_repositories.NewMockRequestRepository(ctrl)
	guildConfigRepo := mock_repositories.NewMockGuildConfigRepository(ctrl)
	logger := zap.NewNop().Sugar()

	cutoff := time.Now()
	requestRepo.EXPECT().GetManyByStatus(models.RequestStatusPending).Return([]*models.TagRequest{
		{RequesterID: "1", GuildID: "guild-1", CreatedAt: cutoff.Add(time.Hour)},
	}, nil)

	digests, err := collectDigests(requestRepo, guildConfigRepo, cutoff, logger)
	assert.NoError(t, err)
	assert.Equal(t, 0, len(digests))
}

func TestCollectDigests_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	requestRepo := mock_repositories.NewMockRequestRepository(ctrl)
	guildConfigRepo := mock_repositories.NewMockGuildConfigRepository(ctrl)
	logger := zap.NewNop().Sugar()

	requestRepo.EXPECT().GetManyByStatus(models.RequestStatusPending).Return(nil, errors.New("database error"))

	digests, err := collectDigests(requestRepo, guildConfigRepo, time.Now(), logger)
	assert.Error(t, err)
	assert.Nil(t, digests)
}
