package configs

type Discord struct {
	Token string `env:"DISCORD_TAG_APPROVAL_BOT_TOKEN,notEmpty"`
}
