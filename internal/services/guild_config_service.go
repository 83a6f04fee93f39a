package services

import (
	"tag_approval_system/internal"
	"tag_approval_system/internal/db/models"
	"tag_approval_system/internal/db/repositories"

	"go.uber.org/zap"
)

type guildConfigService struct {
	authorization         AuthorizationService
	guildConfigRepository repositories.GuildConfigRepository
	logger                *zap.SugaredLogger
}

type GuildConfigService interface {
	SetChannels(guildID, actorID, requestChannelID, approvalChannelID, resultsChannelID string) (*models.GuildConfig, error)
	AddGrantableRole(guildID, actorID, roleID, name string) error
	RemoveGrantableRole(guildID, actorID, roleID string) error
	ListGrantableRoles(guildID, actorID string) ([]models.RoleEntry, error)
	AddAdditionalAdmin(guildID, actorID, userID, name string) error
	RemoveAdditionalAdmin(guildID, actorID, userID string) error
	ListAdditionalAdmins(guildID, actorID string) ([]models.AdminEntry, error)
}

func NewGuildConfigService(
	authorization AuthorizationService,
	guildConfigRepository repositories.GuildConfigRepository,
	logger *zap.SugaredLogger,
) GuildConfigService {
	return &guildConfigService{
		authorization:         authorization,
		guildConfigRepository: guildConfigRepository,
		logger:                logger,
	}
}

func (s *guildConfigService) SetChannels(guildID, actorID, requestChannelID, approvalChannelID, resultsChannelID string) (*models.GuildConfig, error) {
	if err := s.requireAdmin(guildID, actorID); err != nil {
		return nil, err
	}

	return s.guildConfigRepository.SetChannels(guildID, requestChannelID, approvalChannelID, resultsChannelID)
}

func (s *guildConfigService) AddGrantableRole(guildID, actorID, roleID, name string) error {
	if err := s.requireAdmin(guildID, actorID); err != nil {
		return err
	}

	return s.guildConfigRepository.AddGrantableRole(guildID, roleID, name)
}

func (s *guildConfigService) RemoveGrantableRole(guildID, actorID, roleID string) error {
	if err := s.requireAdmin(guildID, actorID); err != nil {
		return err
	}

	return s.guildConfigRepository.RemoveGrantableRole(guildID, roleID)
}

func (s *guildConfigService) ListGrantableRoles(guildID, actorID string) ([]models.RoleEntry, error) {
	if err := s.requireAdmin(guildID, actorID); err != nil {
		return nil, err
	}

	return s.guildConfigRepository.ListGrantableRoles(guildID)
}

func (s *guildConfigService) AddAdditionalAdmin(guildID, actorID, userID, name string) error {
	if err := s.requirePrimaryAdmin(guildID, actorID); err != nil {
		return err
	}

	return s.guildConfigRepository.AddAdditionalAdmin(guildID, userID, name)
}

func (s *guildConfigService) RemoveAdditionalAdmin(guildID, actorID, userID string) error {
	if err := s.requirePrimaryAdmin(guildID, actorID); err != nil {
		return err
	}

	return s.guildConfigRepository.RemoveAdditionalAdmin(guildID, userID)
}

func (s *guildConfigService) ListAdditionalAdmins(guildID, actorID string) ([]models.AdminEntry, error) {
	if err := s.requirePrimaryAdmin(guildID, actorID); err != nil {
		return nil, err
	}

	return s.guildConfigRepository.ListAdditionalAdmins(guildID)
}

func (s *guildConfigService) requireAdmin(guildID, actorID string) error {
	if !s.authorization.IsGuildAuthorized(guildID) {
		return internal.ErrGuildNotAuthorized
	}

	if !s.authorization.IsAdmin(guildID, actorID) {
		return internal.ErrNotAdmin
	}

	return nil
}

func (s *guildConfigService) requirePrimaryAdmin(guildID, actorID string) error {
	if !s.authorization.IsGuildAuthorized(guildID) {
		return internal.ErrGuildNotAuthorized
	}

	if !s.authorization.IsPrimaryAdmin(guildID, actorID) {
		return internal.ErrNotPrimaryAdmin
	}

	return nil
}
