package main

import (
	"fmt"
	"slices"

	"github.com/reglet-dev/ketchlist/internal/application/ports"
	"github.com/reglet-dev/ketchlist/internal/domain"
	"github.com/reglet-dev/ketchlist/internal/domain/entities"
	"github.com/reglet-dev/ketchlist/internal/domain/values"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// recipeFlags holds the flags that describe generation inputs.
//
// Precedence, highest first:
//   - flags given on the command line
//   - the --recipe file
//   - the viper config file and KETCHLIST_* environment
//   - built-in defaults
type recipeFlags struct {
	recipePath string

	companies  []string
	relnums    []int
	output     string
	startYear  int
	endYear    int
	filter     string
	minLength  int
	maxLength  int
	months     bool
	noSeasons  bool
	noSpecials bool

	requireUpper   bool
	requireLower   bool
	requireDigit   bool
	requireSpecial bool
}

var policyFlagNames = []string{
	"min-length", "max-length",
	"require-upper", "require-lower", "require-digit", "require-special",
}

// register adds the recipe flags to fs. The output flag is only added
// for commands that write a wordlist.
func (f *recipeFlags) register(fs *pflag.FlagSet, withOutput bool) {
	fs.StringVar(&f.recipePath, "recipe", "", "Recipe file with generation inputs (flags override it)")

	fs.StringArrayVarP(&f.companies, "company", "c", nil, "Company name to generate wordlist for (repeatable)")
	fs.IntSliceVarP(&f.relnums, "relnum", "r", nil, "Relation numbers to include (default 123,1)")
	if withOutput {
		fs.StringVarP(&f.output, "output", "o", entities.DefaultOutput, "Output file name")
	}
	fs.IntVarP(&f.startYear, "year", "y", domain.DefaultStartYear, "Starting year for generation")
	fs.IntVarP(&f.endYear, "end-year", "e", domain.DefaultEndYear, "Ending year for generation")
	fs.BoolVar(&f.months, "months", false, "Include month names in wordlist")
	fs.BoolVar(&f.noSeasons, "no-seasons", false, "Exclude season names from wordlist")
	fs.BoolVar(&f.noSpecials, "no-specials", false, "Exclude special character combinations")

	fs.IntVar(&f.minLength, "min-length", 0, "Minimum password length (0 = no minimum)")
	fs.IntVar(&f.maxLength, "max-length", 0, "Maximum password length (0 = no maximum)")
	fs.BoolVar(&f.requireUpper, "require-upper", false, "Require an uppercase letter")
	fs.BoolVar(&f.requireLower, "require-lower", false, "Require a lowercase letter")
	fs.BoolVar(&f.requireDigit, "require-digit", false, "Require a digit")
	fs.BoolVar(&f.requireSpecial, "require-special", false, "Require a special character")
	fs.StringVar(&f.filter, "filter", "",
		"Candidate filter expression (e.g. \"length >= 10 && hasUpper\")")
}

// buildRecipe resolves the recipe for this invocation. Domain validation
// is left to the use case.
func (f *recipeFlags) buildRecipe(fs *pflag.FlagSet, cfg *viper.Viper, loader ports.RecipeLoader) (entities.Recipe, error) {
	var recipe entities.Recipe
	if f.recipePath != "" {
		loaded, err := loader.LoadRecipe(f.recipePath)
		if err != nil {
			return entities.Recipe{}, fmt.Errorf("failed to load recipe: %w", err)
		}
		recipe = *loaded
	} else {
		recipe = f.configDefaults(cfg)
	}

	f.applyChanged(fs, &recipe)
	return recipe, nil
}

// configDefaults builds a recipe from viper keys named after the flags.
func (f *recipeFlags) configDefaults(cfg *viper.Viper) entities.Recipe {
	recipe := entities.Recipe{
		Years: values.YearRange{
			Start: configInt(cfg, "year", domain.DefaultStartYear),
			End:   configInt(cfg, "end-year", domain.DefaultEndYear),
		},
		IncludeMonths:   cfg.GetBool("months"),
		ExcludeSeasons:  cfg.GetBool("no-seasons"),
		ExcludeSpecials: cfg.GetBool("no-specials"),
		Output:          cfg.GetString("output"),
		Filter:          cfg.GetString("filter"),
	}
	if cfg.IsSet("company") {
		recipe.Companies = configList(cfg, "company")
	}
	if cfg.IsSet("relnum") {
		recipe.RelationNumbers = cfg.GetIntSlice("relnum")
	}
	return recipe
}

// applyChanged copies every flag the user set onto recipe.
func (f *recipeFlags) applyChanged(fs *pflag.FlagSet, recipe *entities.Recipe) {
	changed := func(name string) bool {
		flag := fs.Lookup(name)
		return flag != nil && flag.Changed
	}

	if changed("company") {
		recipe.Companies = slices.Clone(f.companies)
	}
	if changed("relnum") {
		recipe.RelationNumbers = slices.Clone(f.relnums)
	}
	if changed("output") {
		recipe.Output = f.output
	}
	if changed("year") || changed("end-year") {
		// Fill the other end so a lone flag does not zero the range.
		if recipe.Years == (values.YearRange{}) {
			recipe.Years = values.YearRange{Start: domain.DefaultStartYear, End: domain.DefaultEndYear}
		}
		if changed("year") {
			recipe.Years.Start = f.startYear
		}
		if changed("end-year") {
			recipe.Years.End = f.endYear
		}
	}
	if changed("months") {
		recipe.IncludeMonths = f.months
	}
	if changed("no-seasons") {
		recipe.ExcludeSeasons = f.noSeasons
	}
	if changed("no-specials") {
		recipe.ExcludeSpecials = f.noSpecials
	}
	if changed("filter") {
		recipe.Filter = f.filter
	}

	if slices.ContainsFunc(policyFlagNames, changed) {
		policy := values.PasswordPolicy{}
		if recipe.Policy != nil {
			policy = *recipe.Policy
		}
		if changed("min-length") {
			policy.MinLength = f.minLength
		}
		if changed("max-length") {
			policy.MaxLength = f.maxLength
		}
		if changed("require-upper") {
			policy.RequireUpper = f.requireUpper
		}
		if changed("require-lower") {
			policy.RequireLower = f.requireLower
		}
		if changed("require-digit") {
			policy.RequireDigit = f.requireDigit
		}
		if changed("require-special") {
			policy.RequireSpecial = f.requireSpecial
		}
		recipe.Policy = &policy
	}
}

// configList reads a list key. A plain string, as supplied through the
// environment, is split on commas only so names keep their spaces.
func configList(cfg *viper.Viper, key string) []string {
	if raw, ok := cfg.Get(key).(string); ok {
		return splitList(raw)
	}
	return cfg.GetStringSlice(key)
}

func configInt(cfg *viper.Viper, key string, fallback int) int {
	if cfg.IsSet(key) {
		return cfg.GetInt(key)
	}
	return fallback
}
