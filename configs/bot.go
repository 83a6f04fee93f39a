package configs

// OwnerAlertBot is the optional Telegram bot used to notify the bot owner
// about guilds waiting for authorization. Alerts are disabled when the
// token is empty.
type OwnerAlertBot struct {
	Token       string `env:"TELEGRAM_OWNER_ALERT_BOT_TOKEN"`
	OwnerChatID int64  `env:"TELEGRAM_OWNER_CHAT_ID"`
}
