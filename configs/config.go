package configs

import (
	"fmt"

	"github.com/caarlos0/env/v6"
)

type TagApprovalBotConfig struct {
	App           App
	Discord       Discord
	OwnerAlertBot OwnerAlertBot
	DB            DB
	Store         Store
	Logger        Logger
}

func LoadTagApprovalBotConfig() (TagApprovalBotConfig, error) {
	var config TagApprovalBotConfig

	if err := env.Parse(&config); err != nil {
		return TagApprovalBotConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}

	return config, nil
}

type RequestDigestServiceConfig struct {
	App     App
	Discord Discord
	DB      DB
	Store   Store
	Logger  Logger
	Digest  Digest
}

func LoadRequestDigestServiceConfig() (RequestDigestServiceConfig, error) {
	var config RequestDigestServiceConfig

	if err := env.Parse(&config); err != nil {
		return RequestDigestServiceConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}

	return config, nil
}
