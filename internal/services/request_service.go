package services

import (
	"time"

	"tag_approval_system/internal"
	"tag_approval_system/internal/db/models"
	"tag_approval_system/internal/db/repositories"

	"go.uber.org/zap"
)

type requestService struct {
	authorization         AuthorizationService
	requestRepository     repositories.RequestRepository
	guildConfigRepository repositories.GuildConfigRepository
	tagApplier            TagApplier
	logger                *zap.SugaredLogger
}

type RequestService interface {
	Submit(guildID, requesterID, name, externalID string) (*models.TagRequest, error)
	BeginApproval(guildID, approverID, requesterID string) ([]models.RoleEntry, error)
	FinalizeApproval(guildID, approverID, requesterID, roleID string) (*models.TagRequest, error)
	Reject(guildID, approverID, requesterID string) (*models.TagRequest, error)
	GetConfig(guildID string) (*models.GuildConfig, error)
	PendingRequests() ([]*models.TagRequest, error)
}

func NewRequestService(
	authorization AuthorizationService,
	requestRepository repositories.RequestRepository,
	guildConfigRepository repositories.GuildConfigRepository,
	tagApplier TagApplier,
	logger *zap.SugaredLogger,
) RequestService {
	return &requestService{
		authorization:         authorization,
		requestRepository:     requestRepository,
		guildConfigRepository: guildConfigRepository,
		tagApplier:            tagApplier,
		logger:                logger,
	}
}

func (s *requestService) Submit(guildID, requesterID, name, externalID string) (*models.TagRequest, error) {
	if !s.authorization.IsGuildAuthorized(guildID) {
		return nil, internal.ErrGuildNotAuthorized
	}

	config, err := s.guildConfigRepository.GetOne(guildID)
	if err != nil {
		return nil, err
	}

	if !config.IsConfigured() {
		return nil, internal.ErrNotConfigured
	}

	return s.requestRepository.CreatePending(&models.TagRequest{
		RequesterID: requesterID,
		GuildID:     guildID,
		Name:        name,
		ExternalID:  externalID,
		CreatedAt:   time.Now(),
	})
}

// BeginApproval is the read-only first phase of approval: it validates the
// approver and the pending record, and returns the role menu. It mutates
// nothing; the actual flip happens in FinalizeApproval.
func (s *requestService) BeginApproval(guildID, approverID, requesterID string) ([]models.RoleEntry, error) {
	if err := s.validateResolution(guildID, approverID, requesterID); err != nil {
		return nil, err
	}

	roles, err := s.guildConfigRepository.ListGrantableRoles(guildID)
	if err != nil {
		return nil, err
	}

	if len(roles) == 0 {
		return nil, internal.ErrNoGrantableRoles
	}

	return roles, nil
}

// FinalizeApproval re-validates the pending status: the repository flips it
// atomically, so a stale button click on an already resolved request fails
// with ErrNotPending instead of double-committing. Role grant and rename
// failures are logged and swallowed; the approval stays committed.
func (s *requestService) FinalizeApproval(guildID, approverID, requesterID, roleID string) (*models.TagRequest, error) {
	if err := s.validateResolution(guildID, approverID, requesterID); err != nil {
		return nil, err
	}

	config, err := s.guildConfigRepository.GetOne(guildID)
	if err != nil {
		return nil, err
	}

	role, ok := config.GrantableRole(roleID)
	if !ok {
		return nil, internal.ErrNotPresent
	}

	request, err := s.requestRepository.Approve(requesterID, approverID, roleID)
	if err != nil {
		return nil, err
	}

	if err := s.tagApplier.GrantRole(guildID, requesterID, roleID); err != nil {
		s.logger.Errorw("failed to grant role", "guildID", guildID, "requesterID", requesterID, "roleID", roleID, "error", err)
	}

	if err := s.tagApplier.SetNickname(guildID, requesterID, request.Nickname(role.Name)); err != nil {
		s.logger.Errorw("failed to set nickname", "guildID", guildID, "requesterID", requesterID, "error", err)
	}

	return request, nil
}

func (s *requestService) Reject(guildID, approverID, requesterID string) (*models.TagRequest, error) {
	if err := s.validateResolution(guildID, approverID, requesterID); err != nil {
		return nil, err
	}

	return s.requestRepository.Reject(requesterID, approverID)
}

func (s *requestService) GetConfig(guildID string) (*models.GuildConfig, error) {
	return s.guildConfigRepository.GetOne(guildID)
}

func (s *requestService) PendingRequests() ([]*models.TagRequest, error) {
	return s.requestRepository.GetManyByStatus(models.RequestStatusPending)
}

func (s *requestService) validateResolution(guildID, approverID, requesterID string) error {
	if !s.authorization.IsGuildAuthorized(guildID) {
		return internal.ErrGuildNotAuthorized
	}

	if !s.authorization.IsAdmin(guildID, approverID) {
		return internal.ErrNotAdmin
	}

	request, err := s.requestRepository.GetOne(requesterID)
	if err != nil {
		return err
	}

	// A record from another guild is invisible here.
	if request == nil || request.GuildID != guildID {
		return internal.ErrRequestNotFound
	}

	if !request.IsPending() {
		return internal.ErrNotPending
	}

	return nil
}
