package configs

type Logger struct {
	AppName string `env:"APP_NAME" envDefault:"tag-approval-bot"`
	URL     string `env:"LOKI_URL"`
}
