package commands

import (
	"fmt"

	"tag_approval_system/internal/discord_bot/extension"
	"tag_approval_system/internal/services"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

const manageAdminsCommandName = "manage-admins"

type manageAdminsCommand struct {
	guildConfig services.GuildConfigService
	logger      *zap.SugaredLogger
}

func NewManageAdminsCommand(guildConfig services.GuildConfigService, logger *zap.SugaredLogger) Command {
	return &manageAdminsCommand{
		guildConfig: guildConfig,
		logger:      logger,
	}
}

func (c *manageAdminsCommand) CanHandle(command string) bool {
	return command == manageAdminsCommandName
}

func (c *manageAdminsCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        manageAdminsCommandName,
		Description: "Manage additional bot admins (primary admins only)",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "add",
				Description: "Grant a user bot-admin rights",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionUser,
						Name:        "user",
						Description: "User to make an additional admin",
						Required:    true,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "remove",
				Description: "Revoke a user's bot-admin rights",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionUser,
						Name:        "user",
						Description: "User to remove as additional admin",
						Required:    true,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "list",
				Description: "List additional admins",
			},
		},
	}
}

func (c *manageAdminsCommand) Handle(session *discordgo.Session, interaction *discordgo.InteractionCreate) {
	actor := extension.InteractionUser(interaction)
	guildID := interaction.GuildID
	subcommand := interaction.ApplicationCommandData().Options[0]

	switch subcommand.Name {
	case "add":
		user := subcommand.Options[0].UserValue(session)

		if err := c.guildConfig.AddAdditionalAdmin(guildID, actor.ID, user.ID, user.Username); err != nil {
			c.logger.Warnw("failed to add additional admin", "guildID", guildID, "userID", user.ID, "error", err)
			_ = extension.RespondError(session, interaction, err)
			return
		}

		_ = extension.RespondEphemeral(session, interaction, fmt.Sprintf("**%s** is now an additional admin.", user.Username))

	case "remove":
		user := subcommand.Options[0].UserValue(session)

		if err := c.guildConfig.RemoveAdditionalAdmin(guildID, actor.ID, user.ID); err != nil {
			c.logger.Warnw("failed to remove additional admin", "guildID", guildID, "userID", user.ID, "error", err)
			_ = extension.RespondError(session, interaction, err)
			return
		}

		_ = extension.RespondEphemeral(session, interaction, fmt.Sprintf("**%s** is no longer an additional admin.", user.Username))

	case "list":
		admins, err := c.guildConfig.ListAdditionalAdmins(guildID, actor.ID)
		if err != nil {
			c.logger.Warnw("failed to list additional admins", "guildID", guildID, "error", err)
			_ = extension.RespondError(session, interaction, err)
			return
		}

		names := make([]string, 0, len(admins))
		for _, admin := range admins {
			names = append(names, admin.Name)
		}

		_ = extension.RespondEphemeralEmbed(session, interaction, extension.ListEmbed("Additional Admins", names))
	}
}
