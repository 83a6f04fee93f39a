package commands

import (
	"fmt"

	"tag_approval_system/internal/discord_bot/extension"
	"tag_approval_system/internal/services"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

const approveGuildCommandName = "approve-guild"

type approveGuildCommand struct {
	authorization services.AuthorizationService
	logger        *zap.SugaredLogger
}

func NewApproveGuildCommand(authorization services.AuthorizationService, logger *zap.SugaredLogger) Command {
	return &approveGuildCommand{
		authorization: authorization,
		logger:        logger,
	}
}

func (c *approveGuildCommand) CanHandle(command string) bool {
	return command == approveGuildCommandName
}

func (c *approveGuildCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        approveGuildCommandName,
		Description: "Authorize a guild to use the bot (bot owner only)",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "guild_id",
				Description: "ID of the guild to authorize",
				Required:    true,
			},
		},
	}
}

func (c *approveGuildCommand) Handle(session *discordgo.Session, interaction *discordgo.InteractionCreate) {
	actor := extension.InteractionUser(interaction)
	guildID := interaction.ApplicationCommandData().Options[0].StringValue()

	guildName := ""
	if guild, err := session.Guild(guildID); err == nil {
		guildName = guild.Name
	} else {
		c.logger.Warnw("failed to resolve guild being authorized", "guildID", guildID, "error", err)
	}

	record, err := c.authorization.AuthorizeGuild(actor.ID, guildID, guildName)
	if err != nil {
		c.logger.Warnw("failed to authorize guild", "guildID", guildID, "actorID", actor.ID, "error", err)
		_ = extension.RespondError(session, interaction, err)
		return
	}

	name := record.Name
	if name == "" {
		name = record.GuildID
	}

	_ = extension.RespondEphemeral(session, interaction, fmt.Sprintf("Guild **%s** authorized.", name))
}
