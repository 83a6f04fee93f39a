package commands

import (
	"github.com/bwmarrin/discordgo"
)

type Command interface {
	CanHandle(command string) bool
	Definition() *discordgo.ApplicationCommand
	Handle(session *discordgo.Session, interaction *discordgo.InteractionCreate)
}
