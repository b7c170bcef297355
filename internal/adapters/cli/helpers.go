package cli

import (
	"encoding/json"
	"fmt"

	"gorm.io/gorm"

	"github.com/featherlane/henhouse-go/internal/adapters/persistence"
	"github.com/featherlane/henhouse-go/internal/infrastructure/config"
	"github.com/featherlane/henhouse-go/internal/infrastructure/database"
)

// openRepository loads config and opens the save repository used by
// every CLI command.
func openRepository() (*config.Config, *gorm.DB, *persistence.GormSaveRepository, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to open save database: %w", err)
	}
	return cfg, db, persistence.NewGormSaveRepository(db), nil
}

// effectiveSaveName resolves the slot: the --save flag wins, otherwise
// the daemon's configured slot.
func effectiveSaveName(cfg *config.Config) string {
	if saveName != "" {
		return saveName
	}
	return cfg.Daemon.SaveName
}

// prettyPrint formats JSON for display
func prettyPrint(v interface{}) string {
	bytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(bytes)
}
