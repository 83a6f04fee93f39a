package discord_bot

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// PlatformAdapter implements the services' platform interfaces on top of a
// discordgo session: admin lookups, role grants, renames and guild leaves.
type PlatformAdapter struct {
	session *discordgo.Session
}

func NewPlatformAdapter(session *discordgo.Session) *PlatformAdapter {
	return &PlatformAdapter{session: session}
}

func (a *PlatformAdapter) HasAdministratorPermission(guildID, userID string) (bool, error) {
	guild, err := a.guild(guildID)
	if err != nil {
		return false, err
	}

	if guild.OwnerID == userID {
		return true, nil
	}

	member, err := a.member(guildID, userID)
	if err != nil {
		return false, err
	}

	for _, roleID := range member.Roles {
		for _, role := range guild.Roles {
			if role.ID == roleID && role.Permissions&discordgo.PermissionAdministrator != 0 {
				return true, nil
			}
		}
	}

	return false, nil
}

func (a *PlatformAdapter) GrantRole(guildID, userID, roleID string) error {
	if err := a.session.GuildMemberRoleAdd(guildID, userID, roleID); err != nil {
		return fmt.Errorf("failed to add role: %w", err)
	}
	return nil
}

func (a *PlatformAdapter) SetNickname(guildID, userID, nickname string) error {
	if err := a.session.GuildMemberNickname(guildID, userID, nickname); err != nil {
		return fmt.Errorf("failed to set nickname: %w", err)
	}
	return nil
}

func (a *PlatformAdapter) LeaveGuild(guildID string) error {
	if err := a.session.GuildLeave(guildID); err != nil {
		return fmt.Errorf("failed to leave guild: %w", err)
	}
	return nil
}

func (a *PlatformAdapter) guild(guildID string) (*discordgo.Guild, error) {
	guild, err := a.session.State.Guild(guildID)
	if err == nil {
		return guild, nil
	}

	guild, err = a.session.Guild(guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to get guild: %w", err)
	}
	return guild, nil
}

func (a *PlatformAdapter) member(guildID, userID string) (*discordgo.Member, error) {
	member, err := a.session.State.Member(guildID, userID)
	if err == nil {
		return member, nil
	}

	member, err = a.session.GuildMember(guildID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	return member, nil
}
