package main

import (
	"fmt"
	"time"

	"tag_approval_system/configs"
	"tag_approval_system/internal"
	"tag_approval_system/internal/db"
	"tag_approval_system/internal/db/models"
	"tag_approval_system/internal/db/repositories"
	"tag_approval_system/internal/di"
	"tag_approval_system/internal/store"

	"github.com/bwmarrin/discordgo"
	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
)

// digest is one reminder message bound for a guild's approval channel.
type digest struct {
	channelID string
	embed     *discordgo.MessageEmbed
}

func main() {
	s := gocron.NewScheduler(time.UTC)

	config, err := configs.LoadRequestDigestServiceConfig()
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

	session, err := discordgo.New("Bot " + config.Discord.Token)
	if err != nil {
		logger.Fatalw("failed to create discord session", "error", err)
	}

	s.Cron(config.Digest.Schedule).Do(func() {
		logger.Info("initializing repositories")
		requestRepository, err := repositories.NewRequestRepository(documentStore)
		if err != nil {
			logger.Errorw("failed to load requests", "error", err)
			return
		}
		guildConfigRepository, err := repositories.NewGuildConfigRepository(documentStore)
		if err != nil {
			logger.Errorw("failed to load guild configs", "error", err)
			return
		}

		cutoff := time.Now().Add(-time.Duration(config.Digest.StaleAfterHrs) * time.Hour)

		digests, err := collectDigests(requestRepository, guildConfigRepository, cutoff, logger)
		if err != nil {
			logger.Errorw("failed to collect digests", "error", err)
			return
		}

		if len(digests) == 0 {
			logger.Info("no stale pending requests")
			return
		}

		for _, d := range digests {
			if _, err := session.ChannelMessageSendEmbed(d.channelID, d.embed); err != nil {
				logger.Errorw("failed to send digest", "channelID", d.channelID, "error", err)
			}
		}

		logger.Infow("digests sent", "count", len(digests))
	})

	s.StartBlocking()
}

// collectDigests builds one reminder per guild that has pending requests
// older than the cutoff. Guilds without a configured approval channel are
// skipped.
func collectDigests(
	requestRepository repositories.RequestRepository,
	guildConfigRepository repositories.GuildConfigRepository,
	cutoff time.Time,
	logger *zap.SugaredLogger,
) ([]digest, error) {
	pending, err := requestRepository.GetManyByStatus(models.RequestStatusPending)
	if err != nil {
		return nil, err
	}

	stale := selectStaleRequests(pending, cutoff)
	if len(stale) == 0 {
		return nil, nil
	}

	var digests []digest

	for guildID, requests := range groupRequestsByGuild(stale) {
		config, err := guildConfigRepository.GetOne(guildID)
		if err != nil {
			logger.Errorw("failed to get guild config", "guildID", guildID, "error", err)
			continue
		}

		if config == nil || config.ApprovalChannelID == "" {
			logger.Warnw("guild has stale requests but no approval channel", "guildID", guildID)
			continue
		}

		digests = append(digests, digest{
			channelID: config.ApprovalChannelID,
			embed:     digestEmbed(requests),
		})
	}

	return digests, nil
}

func selectStaleRequests(requests []*models.TagRequest, cutoff time.Time) []*models.TagRequest {
	var stale []*models.TagRequest

	for _, request := range requests {
		if request.CreatedAt.Before(cutoff) {
			stale = append(stale, request)
		}
	}

	return stale
}

func groupRequestsByGuild(requests []*models.TagRequest) map[string][]*models.TagRequest {
	grouped := map[string][]*models.TagRequest{}

	for _, request := range requests {
		grouped[request.GuildID] = append(grouped[request.GuildID], request)
	}

	return grouped
}

func digestEmbed(requests []*models.TagRequest) *discordgo.MessageEmbed {
	fields := make([]*discordgo.MessageEmbedField, 0, len(requests))

	for _, request := range requests {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name: fmt.Sprintf("%s | %s", request.Name, request.ExternalID),
			Value: fmt.Sprintf(
				"<@%s> — %s since %s",
				request.RequesterID,
				request.Status.CapitalizedString(),
				internal.Format(request.CreatedAt),
			),
		})
	}

	return &discordgo.MessageEmbed{
		Title:       "Pending Tag Requests",
		Description: fmt.Sprintf("%d request(s) are still waiting for a decision.", len(requests)),
		Color:       0xffff00,
		Fields:      fields,
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
