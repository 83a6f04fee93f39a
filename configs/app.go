package configs

type App struct {
	Environment   string `env:"ENVIRONMENT,notEmpty"`
	BotOwnerID    string `env:"BOT_OWNER_ID,notEmpty"`
	CommunityName string `env:"COMMUNITY_NAME" envDefault:"ROTA"`
}

func (c App) IsDevEnvironment() bool {
	return c.Environment == "dev"
}
