package services

import (
	"tag_approval_system/configs"
	"tag_approval_system/internal"
	"tag_approval_system/internal/db/models"
	"tag_approval_system/internal/db/repositories"

	"go.uber.org/zap"
)

type authorizationService struct {
	appConfig             configs.App
	guildRepository       repositories.GuildDirectoryRepository
	guildConfigRepository repositories.GuildConfigRepository
	memberProvider        MemberProvider
	guildLeaver           GuildLeaver
	logger                *zap.SugaredLogger
}

type AuthorizationService interface {
	IsGuildAuthorized(guildID string) bool
	RegisterPendingGuild(guildID, name string) (*models.GuildRecord, bool, error)
	AuthorizeGuild(actorID, guildID, guildName string) (*models.GuildRecord, error)
	RejectGuild(actorID, guildID string) error
	IsAdmin(guildID, userID string) bool
	IsPrimaryAdmin(guildID, userID string) bool
}

func NewAuthorizationService(
	appConfig configs.App,
	guildRepository repositories.GuildDirectoryRepository,
	guildConfigRepository repositories.GuildConfigRepository,
	memberProvider MemberProvider,
	guildLeaver GuildLeaver,
	logger *zap.SugaredLogger,
) AuthorizationService {
	return &authorizationService{
		appConfig:             appConfig,
		guildRepository:       guildRepository,
		guildConfigRepository: guildConfigRepository,
		memberProvider:        memberProvider,
		guildLeaver:           guildLeaver,
		logger:                logger,
	}
}

func (s *authorizationService) IsGuildAuthorized(guildID string) bool {
	return s.guildRepository.IsAuthorized(guildID)
}

func (s *authorizationService) RegisterPendingGuild(guildID, name string) (*models.GuildRecord, bool, error) {
	return s.guildRepository.RegisterPending(guildID, name)
}

func (s *authorizationService) AuthorizeGuild(actorID, guildID, guildName string) (*models.GuildRecord, error) {
	if actorID != s.appConfig.BotOwnerID {
		return nil, internal.ErrNotOwner
	}

	return s.guildRepository.Authorize(guildID, actorID, guildName)
}

// RejectGuild drops a pending guild and asks the platform to leave it.
// A failed leave is logged and swallowed; the rejection itself stands.
func (s *authorizationService) RejectGuild(actorID, guildID string) error {
	if actorID != s.appConfig.BotOwnerID {
		return internal.ErrNotOwner
	}

	if err := s.guildRepository.RemovePending(guildID); err != nil {
		return err
	}

	if err := s.guildLeaver.LeaveGuild(guildID); err != nil {
		s.logger.Errorw("failed to leave rejected guild", "guildID", guildID, "error", err)
	}

	return nil
}

// IsAdmin never fails: platform lookup errors are logged and treated as
// "not an admin".
func (s *authorizationService) IsAdmin(guildID, userID string) bool {
	if s.IsPrimaryAdmin(guildID, userID) {
		return true
	}

	config, err := s.guildConfigRepository.GetOne(guildID)
	if err != nil {
		s.logger.Errorw("failed to get guild config", "guildID", guildID, "error", err)
		return false
	}

	return config != nil && config.HasAdditionalAdmin(userID)
}

// IsPrimaryAdmin deliberately excludes additional admins so they cannot
// manage the additional-admin set themselves.
func (s *authorizationService) IsPrimaryAdmin(guildID, userID string) bool {
	if userID == s.appConfig.BotOwnerID {
		return true
	}

	isAdministrator, err := s.memberProvider.HasAdministratorPermission(guildID, userID)
	if err != nil {
		s.logger.Errorw("failed to check administrator permission", "guildID", guildID, "userID", userID, "error", err)
		return false
	}

	return isAdministrator
}
