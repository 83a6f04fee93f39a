package configs

type Digest struct {
	Schedule      string `env:"DIGEST_SCHEDULE" envDefault:"0 12 * * *"`
	StaleAfterHrs int    `env:"DIGEST_STALE_AFTER_HOURS" envDefault:"24"`
}
