// Package config provides infrastructure for loading and saving recipes.
// This package handles YAML parsing, schema validation, and file I/O.
package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/goccy/go-yaml"
	"github.com/reglet-dev/ketchlist/internal/domain/entities"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema/recipe.schema.json
var recipeSchema []byte

const recipeSchemaURL = "recipe.schema.json"

// SupportedRecipeVersions is the range of recipe versions this build reads.
const SupportedRecipeVersions = ">= 1.0.0, < 2.0.0"

// maxRecipeSize bounds how much of a recipe file is read.
const maxRecipeSize = 1 << 20

// RecipeLoader handles loading recipes from YAML files.
//
// Loading happens in three steps:
//   - the document is checked against the embedded JSON Schema
//   - the version is checked against SupportedRecipeVersions
//   - the document is decoded and defaults are applied
//
// Domain invariants (year order, policy bounds) are left to the caller,
// since command-line flags may still override recipe values.
type RecipeLoader struct {
	schema     *jsonschema.Schema
	constraint *semver.Constraints
}

// NewRecipeLoader creates a new recipe loader.
func NewRecipeLoader() (*RecipeLoader, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020

	if err := compiler.AddResource(recipeSchemaURL, bytes.NewReader(recipeSchema)); err != nil {
		return nil, fmt.Errorf("failed to add recipe schema resource: %w", err)
	}
	schema, err := compiler.Compile(recipeSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("failed to compile recipe schema: %w", err)
	}

	constraint, err := semver.NewConstraint(SupportedRecipeVersions)
	if err != nil {
		return nil, fmt.Errorf("invalid recipe version constraint: %w", err)
	}

	return &RecipeLoader{schema: schema, constraint: constraint}, nil
}

// LoadRecipe loads and parses a recipe from a YAML file.
func (l *RecipeLoader) LoadRecipe(path string) (*entities.Recipe, error) {
	// Security: Use os.OpenRoot to prevent path traversal attacks
	root, err := os.OpenRoot(filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open recipe directory: %w", err)
	}
	defer func() {
		_ = root.Close() // Best-effort cleanup
	}()

	file, err := root.Open(filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open recipe: %w", err)
	}
	defer func() {
		_ = file.Close() // Best-effort cleanup
	}()

	return l.LoadRecipeFromReader(file)
}

// LoadRecipeFromReader loads a recipe from an io.Reader.
func (l *RecipeLoader) LoadRecipeFromReader(r io.Reader) (*entities.Recipe, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxRecipeSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read recipe: %w", err)
	}
	if len(data) > maxRecipeSize {
		return nil, fmt.Errorf("recipe exceeds %d bytes", maxRecipeSize)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("recipe is empty")
	}

	if err := l.validateDocument(data); err != nil {
		return nil, err
	}

	var recipe entities.Recipe
	if err := yaml.Unmarshal(data, &recipe); err != nil {
		return nil, fmt.Errorf("failed to decode recipe YAML: %w", err)
	}

	if err := l.checkVersion(recipe.Version); err != nil {
		return nil, err
	}

	recipe.ApplyDefaults()
	return &recipe, nil
}

// validateDocument checks the raw document against the recipe schema.
func (l *RecipeLoader) validateDocument(data []byte) error {
	jsonData, err := yaml.YAMLToJSON(data)
	if err != nil {
		return fmt.Errorf("failed to decode recipe YAML: %w", err)
	}

	decoder := json.NewDecoder(bytes.NewReader(jsonData))
	decoder.UseNumber()
	var doc any
	if err := decoder.Decode(&doc); err != nil {
		return fmt.Errorf("failed to decode recipe YAML: %w", err)
	}

	if err := l.schema.Validate(doc); err != nil {
		if validationErr, ok := err.(*jsonschema.ValidationError); ok {
			return formatSchemaValidationError(validationErr)
		}
		return fmt.Errorf("recipe validation failed: %w", err)
	}
	return nil
}

// checkVersion accepts an empty version, which defaults to the current one.
func (l *RecipeLoader) checkVersion(version string) error {
	if version == "" {
		return nil
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("recipe version %q is not valid: %w", version, err)
	}
	if !l.constraint.Check(v) {
		return fmt.Errorf("recipe version %s is not supported (want %s)", v, SupportedRecipeVersions)
	}
	return nil
}

// formatSchemaValidationError formats a JSON Schema validation error into a readable message.
func formatSchemaValidationError(err *jsonschema.ValidationError) error {
	var messages []string

	var collectErrors func(*jsonschema.ValidationError)
	collectErrors = func(e *jsonschema.ValidationError) {
		if e.Message != "" {
			location := e.InstanceLocation
			if location == "" {
				location = "(root)"
			}
			messages = append(messages, fmt.Sprintf("%s: %s", location, e.Message))
		}
		for _, cause := range e.Causes {
			collectErrors(cause)
		}
	}

	collectErrors(err)

	if len(messages) == 0 {
		return fmt.Errorf("recipe validation failed")
	}

	return fmt.Errorf("recipe validation failed:\n    - %s", strings.Join(messages, "\n    - "))
}
