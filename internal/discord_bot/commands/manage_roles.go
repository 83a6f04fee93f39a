package commands

import (
	"fmt"

	"tag_approval_system/internal/discord_bot/extension"
	"tag_approval_system/internal/services"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

const manageRolesCommandName = "manage-roles"

type manageRolesCommand struct {
	guildConfig services.GuildConfigService
	logger      *zap.SugaredLogger
}

func NewManageRolesCommand(guildConfig services.GuildConfigService, logger *zap.SugaredLogger) Command {
	return &manageRolesCommand{
		guildConfig: guildConfig,
		logger:      logger,
	}
}

func (c *manageRolesCommand) CanHandle(command string) bool {
	return command == manageRolesCommandName
}

func (c *manageRolesCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        manageRolesCommandName,
		Description: "Manage roles grantable through tag approval (admins only)",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "add",
				Description: "Add a role to the grantable list",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionRole,
						Name:        "role",
						Description: "Role to make grantable",
						Required:    true,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "remove",
				Description: "Remove a role from the grantable list",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionRole,
						Name:        "role",
						Description: "Role to remove",
						Required:    true,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "list",
				Description: "List grantable roles",
			},
		},
	}
}

func (c *manageRolesCommand) Handle(session *discordgo.Session, interaction *discordgo.InteractionCreate) {
	actor := extension.InteractionUser(interaction)
	guildID := interaction.GuildID
	subcommand := interaction.ApplicationCommandData().Options[0]

	switch subcommand.Name {
	case "add":
		role := subcommand.Options[0].RoleValue(session, guildID)

		if err := c.guildConfig.AddGrantableRole(guildID, actor.ID, role.ID, role.Name); err != nil {
			c.logger.Warnw("failed to add grantable role", "guildID", guildID, "roleID", role.ID, "error", err)
			_ = extension.RespondError(session, interaction, err)
			return
		}

		_ = extension.RespondEphemeral(session, interaction, fmt.Sprintf("Role **%s** is now grantable.", role.Name))

	case "remove":
		role := subcommand.Options[0].RoleValue(session, guildID)

		if err := c.guildConfig.RemoveGrantableRole(guildID, actor.ID, role.ID); err != nil {
			c.logger.Warnw("failed to remove grantable role", "guildID", guildID, "roleID", role.ID, "error", err)
			_ = extension.RespondError(session, interaction, err)
			return
		}

		_ = extension.RespondEphemeral(session, interaction, fmt.Sprintf("Role **%s** is no longer grantable.", role.Name))

	case "list":
		roles, err := c.guildConfig.ListGrantableRoles(guildID, actor.ID)
		if err != nil {
			c.logger.Warnw("failed to list grantable roles", "guildID", guildID, "error", err)
			_ = extension.RespondError(session, interaction, err)
			return
		}

		names := make([]string, 0, len(roles))
		for _, role := range roles {
			names = append(names, role.Name)
		}

		_ = extension.RespondEphemeralEmbed(session, interaction, extension.ListEmbed("Grantable Roles", names))
	}
}
