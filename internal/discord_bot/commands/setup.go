package commands

import (
	"fmt"

	"tag_approval_system/internal/discord_bot/extension"
	"tag_approval_system/internal/services"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

const setupCommandName = "setup"

type setupCommand struct {
	guildConfig services.GuildConfigService
	logger      *zap.SugaredLogger
}

func NewSetupCommand(guildConfig services.GuildConfigService, logger *zap.SugaredLogger) Command {
	return &setupCommand{
		guildConfig: guildConfig,
		logger:      logger,
	}
}

func (c *setupCommand) CanHandle(command string) bool {
	return command == setupCommandName
}

func (c *setupCommand) Definition() *discordgo.ApplicationCommand {
	channelTypes := []discordgo.ChannelType{discordgo.ChannelTypeGuildText}

	return &discordgo.ApplicationCommand{
		Name:        setupCommandName,
		Description: "Configure the bot channels (admins only)",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:         discordgo.ApplicationCommandOptionChannel,
				Name:         "request_channel",
				Description:  "Channel for tag requests",
				Required:     true,
				ChannelTypes: channelTypes,
			},
			{
				Type:         discordgo.ApplicationCommandOptionChannel,
				Name:         "approval_channel",
				Description:  "Channel for tag approval",
				Required:     true,
				ChannelTypes: channelTypes,
			},
			{
				Type:         discordgo.ApplicationCommandOptionChannel,
				Name:         "results_channel",
				Description:  "Channel for results",
				Required:     true,
				ChannelTypes: channelTypes,
			},
		},
	}
}

func (c *setupCommand) Handle(session *discordgo.Session, interaction *discordgo.InteractionCreate) {
	actor := extension.InteractionUser(interaction)
	options := interaction.ApplicationCommandData().Options

	requestChannel := options[0].ChannelValue(session)
	approvalChannel := options[1].ChannelValue(session)
	resultsChannel := options[2].ChannelValue(session)

	config, err := c.guildConfig.SetChannels(interaction.GuildID, actor.ID, requestChannel.ID, approvalChannel.ID, resultsChannel.ID)
	if err != nil {
		c.logger.Warnw("failed to set channels", "guildID", interaction.GuildID, "actorID", actor.ID, "error", err)
		_ = extension.RespondError(session, interaction, err)
		return
	}

	_ = extension.RespondEphemeral(session, interaction, fmt.Sprintf(
		"Configuration saved.\nRequests: <#%s>\nApproval: <#%s>\nResults: <#%s>",
		config.RequestChannelID,
		config.ApprovalChannelID,
		config.ResultsChannelID,
	))
}
