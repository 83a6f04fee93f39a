package discord_bot

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"tag_approval_system/internal/discord_bot/commands"
	"tag_approval_system/internal/discord_bot/handlers"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

type bot struct {
	session  *discordgo.Session
	handler  *handlers.InteractionHandler
	commands []commands.Command
}

type Bot interface {
	Start(logger *zap.SugaredLogger) error
}

func NewBot(session *discordgo.Session, handler *handlers.InteractionHandler, commands []commands.Command) Bot {
	return &bot{
		session:  session,
		handler:  handler,
		commands: commands,
	}
}

// Start opens the gateway connection, registers the slash commands and
// blocks until the process is told to stop.
func (b *bot) Start(logger *zap.SugaredLogger) error {
	b.session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMembers

	b.session.AddHandler(b.handler.HandleInteractionCreate)
	b.session.AddHandler(b.handler.HandleGuildCreate)
	b.session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		logger.Infow("bot is ready", "user", r.User.Username, "guilds", len(r.Guilds))
	})

	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open discord connection: %w", err)
	}
	defer b.session.Close()

	logger.Info("registering slash commands")
	for _, command := range b.commands {
		definition := command.Definition()

		if _, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, "", definition); err != nil {
			return fmt.Errorf("failed to register command %q: %w", definition.Name, err)
		}
	}
	logger.Info("slash commands registered")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	return nil
}
