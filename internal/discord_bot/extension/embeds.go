package extension

import (
	"fmt"
	"strings"

	"tag_approval_system/internal/db/models"
	"tag_approval_system/internal/discord_bot/components"

	"github.com/bwmarrin/discordgo"
)

const (
	colorPending  = 0xffff00
	colorApproved = 0x00ff00
	colorRejected = 0xff0000
	colorInfo     = 0x0099ff
)

func RequestEmbed(request *models.TagRequest) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "New Tag Request",
		Color: colorPending,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "User", Value: fmt.Sprintf("<@%s>", request.RequesterID), Inline: true},
			{Name: "Name", Value: request.Name, Inline: true},
			{Name: "ID", Value: request.ExternalID, Inline: true},
		},
	}
}

func RequestDecisionButtons(requesterID string) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Approve",
					Style:    discordgo.SuccessButton,
					CustomID: components.Action{Kind: components.ActionRequestApprove, TargetID: requesterID}.CustomID(),
				},
				discordgo.Button{
					Label:    "Reject",
					Style:    discordgo.DangerButton,
					CustomID: components.Action{Kind: components.ActionRequestReject, TargetID: requesterID}.CustomID(),
				},
			},
		},
	}
}

func ApprovedResultEmbed(request *models.TagRequest) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "Tag Approved",
		Color: colorApproved,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "User", Value: fmt.Sprintf("<@%s>", request.RequesterID), Inline: true},
			{Name: "Name", Value: request.Name, Inline: true},
			{Name: "ID", Value: request.ExternalID, Inline: true},
			{Name: "Role", Value: fmt.Sprintf("<@&%s>", request.GrantedRoleID), Inline: true},
			{Name: "Decided by", Value: fmt.Sprintf("<@%s>", request.DecidedBy), Inline: true},
		},
	}
}

func RejectedResultEmbed(request *models.TagRequest) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "Tag Rejected",
		Color: colorRejected,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "User", Value: fmt.Sprintf("<@%s>", request.RequesterID), Inline: true},
			{Name: "Name", Value: request.Name, Inline: true},
			{Name: "ID", Value: request.ExternalID, Inline: true},
			{Name: "Decided by", Value: fmt.Sprintf("<@%s>", request.DecidedBy), Inline: true},
		},
	}
}

func PendingGuildEmbed(record *models.GuildRecord, memberCount int) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "New Guild Added",
		Description: fmt.Sprintf("The bot was added to guild **%s**.", record.Name),
		Color:       colorApproved,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Guild ID", Value: record.GuildID, Inline: true},
			{Name: "Members", Value: fmt.Sprintf("%d", memberCount), Inline: true},
		},
	}
}

func GuildDecisionButtons(guildID string) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Approve",
					Style:    discordgo.SuccessButton,
					CustomID: components.Action{Kind: components.ActionGuildApprove, TargetID: guildID}.CustomID(),
				},
				discordgo.Button{
					Label:    "Reject",
					Style:    discordgo.DangerButton,
					CustomID: components.Action{Kind: components.ActionGuildReject, TargetID: guildID}.CustomID(),
				},
			},
		},
	}
}

func RoleSelectMenu(requesterID string, roles []models.RoleEntry) []discordgo.MessageComponent {
	options := make([]discordgo.SelectMenuOption, 0, len(roles))
	for _, role := range roles {
		options = append(options, discordgo.SelectMenuOption{
			Label:       role.Name,
			Value:       role.RoleID,
			Description: "Grant role: " + role.Name,
		})
	}

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.SelectMenu{
					CustomID:    components.Action{Kind: components.ActionRoleSelect, TargetID: requesterID}.CustomID(),
					Placeholder: "Select a role to grant",
					Options:     options,
				},
			},
		},
	}
}

func ListEmbed(title string, names []string) *discordgo.MessageEmbed {
	description := "Nothing here yet."
	if len(names) > 0 {
		items := make([]string, 0, len(names))
		for _, name := range names {
			items = append(items, "• "+name)
		}
		description = strings.Join(items, "\n")
	}

	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       colorInfo,
	}
}
