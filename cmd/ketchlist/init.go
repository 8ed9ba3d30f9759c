package main

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	apperrors "github.com/reglet-dev/ketchlist/internal/application/errors"
	"github.com/reglet-dev/ketchlist/internal/domain"
	"github.com/reglet-dev/ketchlist/internal/domain/entities"
	"github.com/reglet-dev/ketchlist/internal/domain/services"
	"github.com/reglet-dev/ketchlist/internal/domain/values"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a recipe file for repeatable wordlist runs",
	Long: `Write a recipe capturing every generation input. Values given as flags
are used as-is; anything missing is asked for interactively unless
--no-interactive is set.`,
	Example: `  ketchlist init
  ketchlist init -c Acme --months --file acme.yaml --no-interactive
  ketchlist generate --recipe acme.yaml`,
	Args: cobra.NoArgs,
	RunE: withContainer(runInit),
}

var (
	initRecipe        recipeFlags
	initFile          string
	initNoInteractive bool
)

func init() {
	initRecipe.register(initCmd.Flags(), true)
	initCmd.Flags().StringVarP(&initFile, "file", "f", "ketchlist.yaml", "Recipe file to write")
	initCmd.Flags().BoolVar(&initNoInteractive, "no-interactive", false, "Disable interactive prompts")
	addSystemConfigFlag(initCmd)

	rootCmd.AddCommand(initCmd)
}

func runInit(cc *CommandContext, cmd *cobra.Command, _ []string) error {
	recipe, err := initRecipe.buildRecipe(cmd.Flags(), viper.GetViper(), cc.Container.RecipeLoader())
	if err != nil {
		return err
	}

	if !initNoInteractive {
		if err := promptRecipe(&recipe); err != nil {
			return err
		}
	}

	recipe.ApplyDefaults()
	if err := recipe.Validate(); err != nil {
		return apperrors.NewValidationError("recipe", err.Error())
	}
	if recipe.Filter != "" {
		if _, err := services.CompileFilter(recipe.Filter); err != nil {
			return apperrors.NewConfigurationError("filter", "cannot compile filter expression", err)
		}
	}

	if err := cc.Container.RecipeWriter().SaveRecipe(&recipe, initFile); err != nil {
		return fmt.Errorf("failed to save recipe: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "✓ Recipe saved to %s\n", initFile)
	fmt.Fprintf(out, "Run 'ketchlist generate --recipe %s' to build the wordlist.\n", initFile)
	return nil
}

// promptRecipe asks for the values a recipe still lacks.
func promptRecipe(recipe *entities.Recipe) error {
	if len(recipe.Companies) == 0 {
		var companies string
		err := huh.NewInput().
			Title("Company names (comma separated)").
			Value(&companies).
			Validate(func(s string) error {
				if len(splitList(s)) == 0 {
					return fmt.Errorf("at least one company is required")
				}
				return nil
			}).
			Run()
		if err != nil {
			return err
		}
		recipe.Companies = splitList(companies)
	}

	if recipe.Years == (values.YearRange{}) {
		recipe.Years = values.YearRange{Start: domain.DefaultStartYear, End: domain.DefaultEndYear}
	}
	start := strconv.Itoa(recipe.Years.Start)
	end := strconv.Itoa(recipe.Years.End)
	err := huh.NewInput().
		Title("Starting year").
		Value(&start).
		Validate(validateYear).
		Run()
	if err != nil {
		return err
	}
	err = huh.NewInput().
		Title("Ending year").
		Value(&end).
		Validate(func(s string) error {
			_, err := parseYearRange(start, s)
			return err
		}).
		Run()
	if err != nil {
		return err
	}
	if recipe.Years, err = parseYearRange(start, end); err != nil {
		return err
	}

	extras := selectedExtras(recipe)
	err = huh.NewMultiSelect[string]().
		Title("Include").
		Options(
			huh.NewOption(seasonsLabel(), "seasons").Selected(slices.Contains(extras, "seasons")),
			huh.NewOption("Months (January ... December)", "months").Selected(slices.Contains(extras, "months")),
			huh.NewOption("Special character affixes", "specials").Selected(slices.Contains(extras, "specials")),
		).
		Value(&extras).
		Run()
	if err != nil {
		return err
	}
	applyExtras(recipe, extras)

	output := recipe.Output
	if output == "" {
		output = entities.DefaultOutput
	}
	err = huh.NewInput().
		Title("Wordlist file").
		Value(&output).
		Run()
	if err != nil {
		return err
	}
	recipe.Output = strings.TrimSpace(output)

	return nil
}

func seasonsLabel() string {
	return "Seasons (" + strings.Join(domain.Seasons, ", ") + ")"
}

// parseYearRange parses the wizard's year answers into a descending range.
func parseYearRange(start, end string) (values.YearRange, error) {
	if err := validateYear(start); err != nil {
		return values.YearRange{}, err
	}
	if err := validateYear(end); err != nil {
		return values.YearRange{}, err
	}
	s, _ := strconv.Atoi(strings.TrimSpace(start))
	e, _ := strconv.Atoi(strings.TrimSpace(end))
	return values.NewYearRange(s, e)
}

func validateYear(s string) error {
	if _, err := strconv.Atoi(strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("not a year: %q", s)
	}
	return nil
}

// selectedExtras lists the optional seed groups and stages that recipe enables.
func selectedExtras(recipe *entities.Recipe) []string {
	var extras []string
	if !recipe.ExcludeSeasons {
		extras = append(extras, "seasons")
	}
	if recipe.IncludeMonths {
		extras = append(extras, "months")
	}
	if recipe.IncludeSpecials() {
		extras = append(extras, "specials")
	}
	return extras
}

func applyExtras(recipe *entities.Recipe, extras []string) {
	recipe.ExcludeSeasons = !slices.Contains(extras, "seasons")
	recipe.IncludeMonths = slices.Contains(extras, "months")
	recipe.ExcludeSpecials = !slices.Contains(extras, "specials")
}

// splitList splits a comma separated list, dropping blank entries.
func splitList(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
