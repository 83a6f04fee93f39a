package handlers

import (
	"tag_approval_system/configs"
	"tag_approval_system/internal/discord_bot/commands"
	"tag_approval_system/internal/discord_bot/components"
	"tag_approval_system/internal/discord_bot/extension"
	"tag_approval_system/internal/services"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// InteractionHandler routes inbound Discord events: slash commands to
// their Command, component clicks to the decoded Action, and guild joins
// to the pending-guild registration flow.
type InteractionHandler struct {
	appConfig     configs.App
	authorization services.AuthorizationService
	requests      services.RequestService
	ownerAlert    services.OwnerAlertService
	logger        *zap.SugaredLogger

	commands []commands.Command
}

func NewInteractionHandler(
	appConfig configs.App,
	authorization services.AuthorizationService,
	requests services.RequestService,
	ownerAlert services.OwnerAlertService,
	logger *zap.SugaredLogger,
	commands []commands.Command,
) *InteractionHandler {
	return &InteractionHandler{
		appConfig:     appConfig,
		authorization: authorization,
		requests:      requests,
		ownerAlert:    ownerAlert,
		logger:        logger,
		commands:      commands,
	}
}

func (h *InteractionHandler) HandleInteractionCreate(session *discordgo.Session, interaction *discordgo.InteractionCreate) {
	switch interaction.Type {
	case discordgo.InteractionApplicationCommand:
		h.handleCommand(session, interaction)
	case discordgo.InteractionMessageComponent:
		h.handleComponent(session, interaction)
	}
}

// HandleGuildCreate registers a first-contact guild as pending and
// notifies the bot owner with approve/reject buttons.
func (h *InteractionHandler) HandleGuildCreate(session *discordgo.Session, event *discordgo.GuildCreate) {
	record, created, err := h.authorization.RegisterPendingGuild(event.ID, event.Name)
	if err != nil {
		h.logger.Errorw("failed to register pending guild", "guildID", event.ID, "error", err)
		return
	}

	if !created {
		return
	}

	h.logger.Infow("guild registered as pending", "guildID", event.ID, "name", event.Name)

	channel, err := session.UserChannelCreate(h.appConfig.BotOwnerID)
	if err != nil {
		h.logger.Errorw("failed to create owner channel", "error", err)
	} else {
		_, err = session.ChannelMessageSendComplex(channel.ID, &discordgo.MessageSend{
			Embeds:     []*discordgo.MessageEmbed{extension.PendingGuildEmbed(record, event.MemberCount)},
			Components: extension.GuildDecisionButtons(record.GuildID),
		})
		if err != nil {
			h.logger.Errorw("failed to notify owner", "guildID", event.ID, "error", err)
		}
	}

	h.ownerAlert.NotifyGuildPending(record)
}

func (h *InteractionHandler) handleCommand(session *discordgo.Session, interaction *discordgo.InteractionCreate) {
	command := interaction.ApplicationCommandData().Name
	h.logger.Infow("received command", "command", command, "guildID", interaction.GuildID)

	for _, handler := range h.commands {
		if handler.CanHandle(command) {
			handler.Handle(session, interaction)
			return
		}
	}

	h.logger.Warnw("received unknown command", "command", command)
}

func (h *InteractionHandler) handleComponent(session *discordgo.Session, interaction *discordgo.InteractionCreate) {
	data := interaction.MessageComponentData()

	action, err := components.ParseAction(data.CustomID)
	if err != nil {
		h.logger.Warnw("received unknown component interaction", "customID", data.CustomID, "error", err)
		return
	}

	h.logger.Infow("received component interaction", "kind", action.Kind, "targetID", action.TargetID)

	switch action.Kind {
	case components.ActionGuildApprove:
		h.handleGuildApprove(session, interaction, action.TargetID)
	case components.ActionGuildReject:
		h.handleGuildReject(session, interaction, action.TargetID)
	case components.ActionRequestApprove:
		h.handleRequestApprove(session, interaction, action.TargetID)
	case components.ActionRequestReject:
		h.handleRequestReject(session, interaction, action.TargetID)
	case components.ActionRoleSelect:
		h.handleRoleSelect(session, interaction, action.TargetID, data.Values)
	}
}

func (h *InteractionHandler) handleGuildApprove(session *discordgo.Session, interaction *discordgo.InteractionCreate, guildID string) {
	actor := extension.InteractionUser(interaction)

	guildName := ""
	if guild, err := session.Guild(guildID); err == nil {
		guildName = guild.Name
	}

	if _, err := h.authorization.AuthorizeGuild(actor.ID, guildID, guildName); err != nil {
		h.logger.Warnw("failed to authorize guild", "guildID", guildID, "actorID", actor.ID, "error", err)
		_ = extension.RespondError(session, interaction, err)
		return
	}

	_ = extension.UpdateComponentMessage(session, interaction, "Guild authorized.")
}

func (h *InteractionHandler) handleGuildReject(session *discordgo.Session, interaction *discordgo.InteractionCreate, guildID string) {
	actor := extension.InteractionUser(interaction)

	if err := h.authorization.RejectGuild(actor.ID, guildID); err != nil {
		h.logger.Warnw("failed to reject guild", "guildID", guildID, "actorID", actor.ID, "error", err)
		_ = extension.RespondError(session, interaction, err)
		return
	}

	_ = extension.UpdateComponentMessage(session, interaction, "Guild rejected, the bot left it.")
}

// handleRequestApprove is phase one: nothing is committed yet, the
// approver only gets the role menu.
func (h *InteractionHandler) handleRequestApprove(session *discordgo.Session, interaction *discordgo.InteractionCreate, requesterID string) {
	actor := extension.InteractionUser(interaction)

	roles, err := h.requests.BeginApproval(interaction.GuildID, actor.ID, requesterID)
	if err != nil {
		h.logger.Warnw("failed to begin approval", "guildID", interaction.GuildID, "requesterID", requesterID, "error", err)
		_ = extension.RespondError(session, interaction, err)
		return
	}

	_ = extension.RespondEphemeralComponents(
		session,
		interaction,
		"Select the role to grant:",
		extension.RoleSelectMenu(requesterID, roles),
	)
}

func (h *InteractionHandler) handleRequestReject(session *discordgo.Session, interaction *discordgo.InteractionCreate, requesterID string) {
	actor := extension.InteractionUser(interaction)

	request, err := h.requests.Reject(interaction.GuildID, actor.ID, requesterID)
	if err != nil {
		h.logger.Warnw("failed to reject request", "guildID", interaction.GuildID, "requesterID", requesterID, "error", err)
		_ = extension.RespondError(session, interaction, err)
		return
	}

	h.postResult(session, interaction.GuildID, extension.RejectedResultEmbed(request))
	_ = extension.UpdateComponentMessage(session, interaction, "Tag rejected.")
}

func (h *InteractionHandler) handleRoleSelect(session *discordgo.Session, interaction *discordgo.InteractionCreate, requesterID string, values []string) {
	if len(values) == 0 {
		h.logger.Warnw("role select without a value", "requesterID", requesterID)
		return
	}

	actor := extension.InteractionUser(interaction)

	request, err := h.requests.FinalizeApproval(interaction.GuildID, actor.ID, requesterID, values[0])
	if err != nil {
		h.logger.Warnw("failed to finalize approval", "guildID", interaction.GuildID, "requesterID", requesterID, "error", err)
		_ = extension.RespondError(session, interaction, err)
		return
	}

	h.postResult(session, interaction.GuildID, extension.ApprovedResultEmbed(request))
	_ = extension.UpdateComponentMessage(session, interaction, "Tag approved and role granted.")
}

func (h *InteractionHandler) postResult(session *discordgo.Session, guildID string, embed *discordgo.MessageEmbed) {
	config, err := h.requests.GetConfig(guildID)
	if err != nil || config == nil || config.ResultsChannelID == "" {
		h.logger.Errorw("failed to resolve results channel", "guildID", guildID, "error", err)
		return
	}

	if _, err := session.ChannelMessageSendEmbed(config.ResultsChannelID, embed); err != nil {
		h.logger.Errorw("failed to post result", "guildID", guildID, "error", err)
	}
}
