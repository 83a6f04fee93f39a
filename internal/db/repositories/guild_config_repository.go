package repositories

import (
	"sync"

	"tag_approval_system/internal"
	"tag_approval_system/internal/db/models"
	"tag_approval_system/internal/store"
)

// guildConfigRepository owns the "guild_configs" document.
type guildConfigRepository struct {
	mu      sync.Mutex
	store   store.DocumentStore
	configs map[string]*models.GuildConfig
}

type GuildConfigRepository interface {
	GetOne(guildID string) (*models.GuildConfig, error)
	SetChannels(guildID, requestChannelID, approvalChannelID, resultsChannelID string) (*models.GuildConfig, error)
	AddGrantableRole(guildID, roleID, name string) error
	RemoveGrantableRole(guildID, roleID string) error
	ListGrantableRoles(guildID string) ([]models.RoleEntry, error)
	AddAdditionalAdmin(guildID, userID, name string) error
	RemoveAdditionalAdmin(guildID, userID string) error
	ListAdditionalAdmins(guildID string) ([]models.AdminEntry, error)
}

func NewGuildConfigRepository(documentStore store.DocumentStore) (GuildConfigRepository, error) {
	configs := map[string]*models.GuildConfig{}

	if err := documentStore.Load(store.GuildConfigsDocument, &configs); err != nil {
		return nil, err
	}

	return &guildConfigRepository{
		store:   documentStore,
		configs: configs,
	}, nil
}

// GetOne returns nil when the guild was never configured.
func (r *guildConfigRepository) GetOne(guildID string) (*models.GuildConfig, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	config, ok := r.configs[guildID]
	if !ok {
		return nil, nil
	}

	return cloneConfig(config), nil
}

func (r *guildConfigRepository) SetChannels(guildID, requestChannelID, approvalChannelID, resultsChannelID string) (*models.GuildConfig, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	config := r.getOrCreate(guildID)
	config.RequestChannelID = requestChannelID
	config.ApprovalChannelID = approvalChannelID
	config.ResultsChannelID = resultsChannelID

	if err := r.save(); err != nil {
		return nil, err
	}

	return cloneConfig(config), nil
}

// AddGrantableRole appends the role; adding an already grantable role
// refreshes its display name in place.
func (r *guildConfigRepository) AddGrantableRole(guildID, roleID, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	config := r.getOrCreate(guildID)

	for i, role := range config.GrantableRoles {
		if role.RoleID == roleID {
			config.GrantableRoles[i].Name = name
			return r.save()
		}
	}

	config.GrantableRoles = append(config.GrantableRoles, models.RoleEntry{RoleID: roleID, Name: name})
	return r.save()
}

func (r *guildConfigRepository) RemoveGrantableRole(guildID, roleID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	config, ok := r.configs[guildID]
	if !ok {
		return internal.ErrNotPresent
	}

	for i, role := range config.GrantableRoles {
		if role.RoleID == roleID {
			config.GrantableRoles = append(config.GrantableRoles[:i], config.GrantableRoles[i+1:]...)
			return r.save()
		}
	}

	return internal.ErrNotPresent
}

func (r *guildConfigRepository) ListGrantableRoles(guildID string) ([]models.RoleEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	config, ok := r.configs[guildID]
	if !ok {
		return nil, nil
	}

	roles := make([]models.RoleEntry, len(config.GrantableRoles))
	copy(roles, config.GrantableRoles)

	return roles, nil
}

func (r *guildConfigRepository) AddAdditionalAdmin(guildID, userID, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	config := r.getOrCreate(guildID)

	for i, admin := range config.AdditionalAdmins {
		if admin.UserID == userID {
			config.AdditionalAdmins[i].Name = name
			return r.save()
		}
	}

	config.AdditionalAdmins = append(config.AdditionalAdmins, models.AdminEntry{UserID: userID, Name: name})
	return r.save()
}

func (r *guildConfigRepository) RemoveAdditionalAdmin(guildID, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	config, ok := r.configs[guildID]
	if !ok {
		return internal.ErrNotPresent
	}

	for i, admin := range config.AdditionalAdmins {
		if admin.UserID == userID {
			config.AdditionalAdmins = append(config.AdditionalAdmins[:i], config.AdditionalAdmins[i+1:]...)
			return r.save()
		}
	}

	return internal.ErrNotPresent
}

func (r *guildConfigRepository) ListAdditionalAdmins(guildID string) ([]models.AdminEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	config, ok := r.configs[guildID]
	if !ok {
		return nil, nil
	}

	admins := make([]models.AdminEntry, len(config.AdditionalAdmins))
	copy(admins, config.AdditionalAdmins)

	return admins, nil
}

func (r *guildConfigRepository) getOrCreate(guildID string) *models.GuildConfig {
	config, ok := r.configs[guildID]
	if !ok {
		config = &models.GuildConfig{}
		r.configs[guildID] = config
	}
	return config
}

func (r *guildConfigRepository) save() error {
	return r.store.Save(store.GuildConfigsDocument, r.configs)
}

func cloneConfig(config *models.GuildConfig) *models.GuildConfig {
	clone := *config

	clone.GrantableRoles = make([]models.RoleEntry, len(config.GrantableRoles))
	copy(clone.GrantableRoles, config.GrantableRoles)

	clone.AdditionalAdmins = make([]models.AdminEntry, len(config.AdditionalAdmins))
	copy(clone.AdditionalAdmins, config.AdditionalAdmins)

	return &clone
}
