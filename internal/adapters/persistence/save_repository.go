package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/featherlane/henhouse-go/internal/domain/farm"
)

// GormSaveRepository implements the engine's SaveStore over GORM.
type GormSaveRepository struct {
	db *gorm.DB
}

// NewGormSaveRepository creates a new GORM save repository
func NewGormSaveRepository(db *gorm.DB) *GormSaveRepository {
	return &GormSaveRepository{db: db}
}

// Save upserts the named slot with the serialized state.
func (r *GormSaveRepository) Save(ctx context.Context, name string, state *farm.GameState) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to serialize state: %w", err)
	}
	model := SaveModel{Name: name, State: string(payload)}
	if result := r.db.WithContext(ctx).Save(&model); result.Error != nil {
		return fmt.Errorf("failed to save slot %q: %w", name, result.Error)
	}
	return nil
}

// Load returns the named slot's state, hydrated with defaults for any
// fields an older save lacks. A missing slot returns (nil, nil).
func (r *GormSaveRepository) Load(ctx context.Context, name string) (*farm.GameState, error) {
	var model SaveModel
	result := r.db.WithContext(ctx).Where("name = ?", name).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load slot %q: %w", name, result.Error)
	}
	return r.decode(&model)
}

// List returns every slot keyed by name.
func (r *GormSaveRepository) List(ctx context.Context) (map[string]*farm.GameState, error) {
	var models []SaveModel
	if result := r.db.WithContext(ctx).Find(&models); result.Error != nil {
		return nil, fmt.Errorf("failed to list saves: %w", result.Error)
	}
	saves := make(map[string]*farm.GameState, len(models))
	for i := range models {
		state, err := r.decode(&models[i])
		if err != nil {
			continue // Skip corrupt slots
		}
		saves[models[i].Name] = state
	}
	return saves, nil
}

// Delete removes the named slot. Deleting a missing slot is not an error.
func (r *GormSaveRepository) Delete(ctx context.Context, name string) error {
	if result := r.db.WithContext(ctx).Delete(&SaveModel{}, "name = ?", name); result.Error != nil {
		return fmt.Errorf("failed to delete slot %q: %w", name, result.Error)
	}
	return nil
}

func (r *GormSaveRepository) decode(model *SaveModel) (*farm.GameState, error) {
	var state farm.GameState
	if err := json.Unmarshal([]byte(model.State), &state); err != nil {
		return nil, fmt.Errorf("corrupt save %q: %w", model.Name, err)
	}
	state.HydrateDefaults()
	return &state, nil
}
