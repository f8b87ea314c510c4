package cli

import (
	"fmt"

	"github.com/andrescamacho/spacetraders-sdk/internal/infrastructure/config"
)

// resolveDefault returns value, or the user default picked from
// ~/.spacetraders/config.json when value is empty.
func resolveDefault(value, flag string, pick func(*config.UserConfig) string) (string, error) {
	if value != "" {
		return value, nil
	}

	handler, err := config.NewUserConfigHandler()
	if err != nil {
		return "", fmt.Errorf("failed to create user config handler: %w", err)
	}
	userCfg, err := handler.Load()
	if err != nil {
		return "", err
	}
	if v := pick(userCfg); v != "" {
		return v, nil
	}
	return "", fmt.Errorf("--%s is required (or set a default with 'spacetraders config set-%s')", flag, flag)
}

func defaultShip(value string) (string, error) {
	return resolveDefault(value, "ship", func(c *config.UserConfig) string { return c.DefaultShip })
}

func defaultSystem(value string) (string, error) {
	return resolveDefault(value, "system", func(c *config.UserConfig) string { return c.DefaultSystem })
}
