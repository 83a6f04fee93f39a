package services

import (
	"fmt"

	"tag_approval_system/configs"
	"tag_approval_system/internal/db/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// OwnerAlertService pings the bot owner on Telegram when a guild lands in
// the pending set. Alert failures are logged and never propagated.
type OwnerAlertService interface {
	NotifyGuildPending(record *models.GuildRecord)
}

type ownerAlertService struct {
	config configs.OwnerAlertBot
	bot    *tgbotapi.BotAPI
	logger *zap.SugaredLogger
}

type noopOwnerAlertService struct{}

func (noopOwnerAlertService) NotifyGuildPending(*models.GuildRecord) {}

// NewOwnerAlertService returns a no-op service when no Telegram token is
// configured.
func NewOwnerAlertService(config configs.OwnerAlertBot, logger *zap.SugaredLogger) (OwnerAlertService, error) {
	if config.Token == "" {
		return noopOwnerAlertService{}, nil
	}

	bot, err := tgbotapi.NewBotAPI(config.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create owner alert bot: %w", err)
	}

	return &ownerAlertService{
		config: config,
		bot:    bot,
		logger: logger,
	}, nil
}

func (s *ownerAlertService) NotifyGuildPending(record *models.GuildRecord) {
	text := fmt.Sprintf(
		"New guild waiting for authorization: %s (%s). Approve or reject it from the Discord DM or with /approve-guild.",
		record.Name,
		record.GuildID,
	)

	if _, err := s.bot.Send(tgbotapi.NewMessage(s.config.OwnerChatID, text)); err != nil {
		s.logger.Errorw("failed to send owner alert", "guildID", record.GuildID, "error", err)
	}
}
