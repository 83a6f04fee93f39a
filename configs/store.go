package configs

type Store struct {
	DataDir string `env:"STORE_DATA_DIR" envDefault:"data"`
}
