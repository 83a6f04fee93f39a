package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tag_approval_system/configs"
	"tag_approval_system/internal/db"
	"tag_approval_system/internal/db/repositories"
	"tag_approval_system/internal/di"
	"tag_approval_system/internal/discord_bot"
	"tag_approval_system/internal/discord_bot/commands"
	"tag_approval_system/internal/discord_bot/handlers"
	"tag_approval_system/internal/services"
	"tag_approval_system/internal/store"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

func main() {
	config, err := configs.LoadTagApprovalBotConfig()
	logger := di.NewLogger(config.Logger.AppName, config.App.Environment, config.Logger.URL)

	if err != nil {
		logger.Fatalw("failed to load config", "error", err)
	}
	logger.Info("config loaded")

	documentStore, err := newDocumentStore(config.DB, config.Store, logger)
	if err != nil {
		logger.Fatalw("failed to start document store", "error", err)
	}
	logger.Info("document store started")

	requestRepository, err := repositories.NewRequestRepository(documentStore)
	if err != nil {
		logger.Fatalw("failed to load requests", "error", err)
	}
	guildConfigRepository, err := repositories.NewGuildConfigRepository(documentStore)
	if err != nil {
		logger.Fatalw("failed to load guild configs", "error", err)
	}
	guildDirectoryRepository, err := repositories.NewGuildDirectoryRepository(documentStore)
	if err != nil {
		logger.Fatalw("failed to load guild directory", "error", err)
	}

	go func() {
		logger.Info("setting up health check server")
		settingUpHealthCheckServer(logger)
	}()

	logger.Info("starting bot")

	session, err := discordgo.New("Bot " + config.Discord.Token)
	if err != nil {
		logger.Fatalw("failed to create discord session", "error", err)
	}

	platform := discord_bot.NewPlatformAdapter(session)

	authorizationService := services.NewAuthorizationService(
		config.App,
		guildDirectoryRepository,
		guildConfigRepository,
		platform,
		platform,
		logger,
	)
	guildConfigService := services.NewGuildConfigService(authorizationService, guildConfigRepository, logger)
	requestService := services.NewRequestService(authorizationService, requestRepository, guildConfigRepository, platform, logger)

	ownerAlertService, err := services.NewOwnerAlertService(config.OwnerAlertBot, logger)
	if err != nil {
		logger.Fatalw("failed to create owner alert service", "error", err)
	}

	botCommands := []commands.Command{
		commands.NewApproveGuildCommand(authorizationService, logger),
		commands.NewSetupCommand(guildConfigService, logger),
		commands.NewManageRolesCommand(guildConfigService, logger),
		commands.NewManageAdminsCommand(guildConfigService, logger),
		commands.NewRequestTagCommand(requestService, logger),
	}

	handler := handlers.NewInteractionHandler(
		config.App,
		authorizationService,
		requestService,
		ownerAlertService,
		logger,
		botCommands,
	)

	if err := discord_bot.NewBot(session, handler, botCommands).Start(logger); err != nil {
		logger.Fatalw("failed to start bot", "error", err)
	}
}

func newDocumentStore(dbConfig configs.DB, storeConfig configs.Store, logger *zap.SugaredLogger) (store.DocumentStore, error) {
	if dbConfig.URL == "" {
		logger.Infow("using file document store", "dir", storeConfig.DataDir)
		return store.NewFileStore(storeConfig.DataDir)
	}

	logger.Info("using postgres document store")
	database, err := db.StartDB(dbConfig, logger)
	if err != nil {
		return nil, err
	}

	return store.NewPGStore(database), nil
}

func settingUpHealthCheckServer(logger *zap.SugaredLogger) {
	mux := http.NewServeMux()
	mux.HandleFunc("/tag-approval-bot/healthcheck", healthCheckHandler)

	server := &http.Server{Addr: ":8080", Handler: mux}

	if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Errorw("failed to start http server", "error", err)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Errorw("failed to shutdown http server", "error", err)
		return
	}

	logger.Info("shutting down")
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	_, _ = w.Write([]byte("I'm alive"))
}
