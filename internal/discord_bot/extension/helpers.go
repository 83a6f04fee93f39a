package extension

import (
	"errors"

	"tag_approval_system/internal"

	"github.com/bwmarrin/discordgo"
)

const defaultErrorText = "Something went wrong, please try again."

// UserMessage turns a lifecycle or authorization failure into the text
// shown to the caller. Raw errors never reach the user.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, internal.ErrNotOwner):
		return "Only the bot owner can do this."
	case errors.Is(err, internal.ErrNotAdmin):
		return "Only administrators can do this."
	case errors.Is(err, internal.ErrNotPrimaryAdmin):
		return "Only primary administrators can do this."
	case errors.Is(err, internal.ErrGuildNotAuthorized):
		return "This guild is not authorized to use the bot."
	case errors.Is(err, internal.ErrGuildNotFound):
		return "Guild not found."
	case errors.Is(err, internal.ErrNotConfigured):
		return "The bot is not configured in this guild. Run /setup first."
	case errors.Is(err, internal.ErrAlreadyPending):
		return "You already have a pending request."
	case errors.Is(err, internal.ErrRequestNotFound):
		return "Request not found."
	case errors.Is(err, internal.ErrNotPending):
		return "This request has already been processed."
	case errors.Is(err, internal.ErrNoGrantableRoles):
		return "No grantable roles configured. Add one with /manage-roles first."
	case errors.Is(err, internal.ErrNotPresent):
		return "That entry is not in the list."
	}

	return defaultErrorText
}

func RespondEphemeral(session *discordgo.Session, interaction *discordgo.InteractionCreate, content string) error {
	return session.InteractionRespond(interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

func RespondEphemeralEmbed(session *discordgo.Session, interaction *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) error {
	return session.InteractionRespond(interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	})
}

func RespondEphemeralComponents(session *discordgo.Session, interaction *discordgo.InteractionCreate, content string, components []discordgo.MessageComponent) error {
	return session.InteractionRespond(interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content:    content,
			Components: components,
			Flags:      discordgo.MessageFlagsEphemeral,
		},
	})
}

func RespondError(session *discordgo.Session, interaction *discordgo.InteractionCreate, err error) error {
	return RespondEphemeral(session, interaction, UserMessage(err))
}

// UpdateComponentMessage replaces the message the clicked component lives
// on, dropping its buttons so it cannot be clicked twice.
func UpdateComponentMessage(session *discordgo.Session, interaction *discordgo.InteractionCreate, content string) error {
	return session.InteractionRespond(interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Content:    content,
			Embeds:     []*discordgo.MessageEmbed{},
			Components: []discordgo.MessageComponent{},
		},
	})
}

// InteractionUser resolves the acting user for both guild interactions
// (Member) and DM interactions (User).
func InteractionUser(interaction *discordgo.InteractionCreate) *discordgo.User {
	if interaction.Member != nil {
		return interaction.Member.User
	}
	return interaction.User
}
