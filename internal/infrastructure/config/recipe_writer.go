package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/reglet-dev/ketchlist/internal/domain/entities"
)

// RecipeWriter saves recipes as YAML.
type RecipeWriter struct{}

// NewRecipeWriter creates a new recipe writer.
func NewRecipeWriter() *RecipeWriter {
	return &RecipeWriter{}
}

// SaveRecipe writes recipe to path, creating parent directories.
func (w *RecipeWriter) SaveRecipe(recipe *entities.Recipe, path string) error {
	data, err := yaml.Marshal(recipe)
	if err != nil {
		return fmt.Errorf("failed to encode recipe: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("failed to create recipe directory: %w", err)
	}

	//nolint:gosec // G306: recipes hold no secrets
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write recipe: %w", err)
	}
	return nil
}
