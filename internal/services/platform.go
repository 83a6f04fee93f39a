package services

// MemberProvider answers platform-level questions about guild members.
type MemberProvider interface {
	HasAdministratorPermission(guildID, userID string) (bool, error)
}

// GuildLeaver asks the platform to leave a guild.
type GuildLeaver interface {
	LeaveGuild(guildID string) error
}

// TagApplier applies an approved tag: grants the role and renames the
// member.
type TagApplier interface {
	GrantRole(guildID, userID, roleID string) error
	SetNickname(guildID, userID, nickname string) error
}
