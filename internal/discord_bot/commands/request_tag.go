package commands

import (
	"tag_approval_system/internal/discord_bot/extension"
	"tag_approval_system/internal/services"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

const requestTagCommandName = "request-tag"

type requestTagCommand struct {
	requests services.RequestService
	logger   *zap.SugaredLogger
}

func NewRequestTagCommand(requests services.RequestService, logger *zap.SugaredLogger) Command {
	return &requestTagCommand{
		requests: requests,
		logger:   logger,
	}
}

func (c *requestTagCommand) CanHandle(command string) bool {
	return command == requestTagCommandName
}

func (c *requestTagCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        requestTagCommandName,
		Description: "Request tag approval",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "name",
				Description: "Your full name",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "id",
				Description: "Your in-game ID",
				Required:    true,
			},
		},
	}
}

func (c *requestTagCommand) Handle(session *discordgo.Session, interaction *discordgo.InteractionCreate) {
	requester := extension.InteractionUser(interaction)
	options := interaction.ApplicationCommandData().Options

	name := options[0].StringValue()
	externalID := options[1].StringValue()

	request, err := c.requests.Submit(interaction.GuildID, requester.ID, name, externalID)
	if err != nil {
		c.logger.Warnw("failed to submit request", "guildID", interaction.GuildID, "requesterID", requester.ID, "error", err)
		_ = extension.RespondError(session, interaction, err)
		return
	}

	config, err := c.requests.GetConfig(interaction.GuildID)
	if err != nil {
		c.logger.Errorw("failed to get guild config", "guildID", interaction.GuildID, "error", err)
		_ = extension.RespondError(session, interaction, err)
		return
	}

	_, err = session.ChannelMessageSendComplex(config.ApprovalChannelID, &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{extension.RequestEmbed(request)},
		Components: extension.RequestDecisionButtons(request.RequesterID),
	})
	if err != nil {
		// The request is already committed; the approvers just will not
		// see it until the next digest.
		c.logger.Errorw("failed to post request to approval channel", "guildID", interaction.GuildID, "error", err)
	}

	_ = extension.RespondEphemeral(session, interaction, "Your request was sent for approval.")
}
