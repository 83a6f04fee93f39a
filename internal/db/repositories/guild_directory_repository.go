package repositories

import (
	"sync"
	"time"

	"tag_approval_system/internal"
	"tag_approval_system/internal/db/models"
	"tag_approval_system/internal/store"
)

// guildDirectoryRepository owns the "guilds" document.
type guildDirectoryRepository struct {
	mu        sync.Mutex
	store     store.DocumentStore
	directory *models.GuildDirectory
}

type GuildDirectoryRepository interface {
	IsAuthorized(guildID string) bool
	GetOne(guildID string) (*models.GuildRecord, error)
	RegisterPending(guildID, name string) (*models.GuildRecord, bool, error)
	Authorize(guildID, actorID, name string) (*models.GuildRecord, error)
	RemovePending(guildID string) error
}

func NewGuildDirectoryRepository(documentStore store.DocumentStore) (GuildDirectoryRepository, error) {
	directory := models.NewGuildDirectory()

	if err := documentStore.Load(store.GuildsDocument, directory); err != nil {
		return nil, err
	}

	if directory.Pending == nil {
		directory.Pending = map[string]*models.GuildRecord{}
	}
	if directory.Authorized == nil {
		directory.Authorized = map[string]*models.GuildRecord{}
	}

	return &guildDirectoryRepository{
		store:     documentStore,
		directory: directory,
	}, nil
}

func (r *guildDirectoryRepository) IsAuthorized(guildID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.directory.Authorized[guildID]
	return ok
}

func (r *guildDirectoryRepository) GetOne(guildID string) (*models.GuildRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if record, ok := r.directory.Authorized[guildID]; ok {
		return cloneGuildRecord(record), nil
	}
	if record, ok := r.directory.Pending[guildID]; ok {
		return cloneGuildRecord(record), nil
	}

	return nil, nil
}

// RegisterPending records a guild on first contact. Guilds already pending
// or already authorized are left untouched; the second return value reports
// whether a new record was created.
func (r *guildDirectoryRepository) RegisterPending(guildID, name string) (*models.GuildRecord, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if record, ok := r.directory.Authorized[guildID]; ok {
		return cloneGuildRecord(record), false, nil
	}
	if record, ok := r.directory.Pending[guildID]; ok {
		return cloneGuildRecord(record), false, nil
	}

	record := &models.GuildRecord{
		GuildID:   guildID,
		Name:      name,
		Status:    models.GuildStatusPending,
		Timestamp: time.Now(),
	}
	r.directory.Pending[guildID] = record

	if err := r.save(); err != nil {
		return nil, false, err
	}

	return cloneGuildRecord(record), true, nil
}

// Authorize moves the guild out of the pending set and writes the
// authorized record with its provenance. There is no path back to pending.
func (r *guildDirectoryRepository) Authorize(guildID, actorID, name string) (*models.GuildRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if pending, ok := r.directory.Pending[guildID]; ok {
		if name == "" {
			name = pending.Name
		}
		delete(r.directory.Pending, guildID)
	}

	record := &models.GuildRecord{
		GuildID:    guildID,
		Name:       name,
		Status:     models.GuildStatusAuthorized,
		ApprovedBy: actorID,
		Timestamp:  time.Now(),
	}
	r.directory.Authorized[guildID] = record

	if err := r.save(); err != nil {
		return nil, err
	}

	return cloneGuildRecord(record), nil
}

// RemovePending drops a not-yet-authorized guild. Authorized guilds are
// never touched here.
func (r *guildDirectoryRepository) RemovePending(guildID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.directory.Pending[guildID]; !ok {
		return internal.ErrGuildNotFound
	}

	delete(r.directory.Pending, guildID)
	return r.save()
}

func (r *guildDirectoryRepository) save() error {
	return r.store.Save(store.GuildsDocument, r.directory)
}

func cloneGuildRecord(record *models.GuildRecord) *models.GuildRecord {
	clone := *record
	return &clone
}
