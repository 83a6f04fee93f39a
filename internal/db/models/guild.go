package models

import "time"

type GuildStatus string

const (
	GuildStatusPending    GuildStatus = "pending"
	GuildStatusAuthorized GuildStatus = "authorized"
)

func (s GuildStatus) String() string {
	return string(s)
}

type GuildRecord struct {
	GuildID    string      `json:"guild_id"`
	Name       string      `json:"name"`
	Status     GuildStatus `json:"status"`
	ApprovedBy string      `json:"approved_by,omitempty"`
	Timestamp  time.Time   `json:"timestamp"`
}

// GuildDirectory is the persisted "guilds" document. A guild appears in
// Pending on first contact and moves to Authorized only by an explicit
// owner action. It never moves back.
type GuildDirectory struct {
	Pending    map[string]*GuildRecord `json:"pending"`
	Authorized map[string]*GuildRecord `json:"authorized"`
}

func NewGuildDirectory() *GuildDirectory {
	return &GuildDirectory{
		Pending:    map[string]*GuildRecord{},
		Authorized: map[string]*GuildRecord{},
	}
}
