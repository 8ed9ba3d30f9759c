package main

import (
	"fmt"
	"io"
	"os"

	"github.com/reglet-dev/ketchlist/internal/application/dto"
	"github.com/reglet-dev/ketchlist/internal/application/ports"
	"github.com/reglet-dev/ketchlist/internal/domain/entities"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a password wordlist",
	Long: `Generate a wordlist from company names and common patterns.

Every seed word (companies, seasons, and optionally months) is expanded
into its leetspeak spellings. For each year from --year down to
--end-year every spelling is written with the full year, bare, and with
the two-digit year. Unless --no-specials is given, each of those lines is
then written again with every special character appended and prepended,
followed by the relation numbers with the same affixes.

Filtering:
  --min-length 8 --require-digit   Keep only lines meeting a password policy
  --filter "length <= 12"          Keep only lines matching an expression
                                   (candidate, length, hasUpper, hasLower,
                                   hasDigit, hasSpecial)`,
	Example: `  ketchlist generate -c "Acme Corp" -o acme_wordlist.txt
  ketchlist generate -c TechCorp -c DataSys -o combined_wordlist.txt
  ketchlist generate -c MyCompany -y 2024 -e 2010 --months --no-specials
  ketchlist generate -c CompanyName -r 456,789,101112 -o custom_wordlist.txt
  ketchlist generate --recipe acme.yaml --format json`,
	Args: cobra.NoArgs,
	RunE: withContainer(runGenerate),
}

var (
	generateRecipe  recipeFlags
	generateOptions CommonOptions
)

func init() {
	generateRecipe.register(generateCmd.Flags(), true)
	generateOptions.RegisterFlags(generateCmd)
	addSystemConfigFlag(generateCmd)

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cc *CommandContext, cmd *cobra.Command, _ []string) error {
	formatter, maxLines, err := prepareOutput(cc, cmd, &generateOptions)
	if err != nil {
		return err
	}

	recipe, err := generateRecipe.buildRecipe(cmd.Flags(), viper.GetViper(), cc.Container.RecipeLoader())
	if err != nil {
		return err
	}
	if recipe.Output == "" {
		recipe.Output = entities.DefaultOutput
	}
	recipe.Output = cc.Container.SystemConfig().ResolveOutput(recipe.Output)
	cc.Logger.DebugContext(cc.Context, "recipe resolved",
		"recipe_file", generateRecipe.recipePath,
		"output", recipe.Output,
		"max_lines", maxLines)

	resp, err := cc.Container.GenerateWordlistUseCase().Execute(cc.Context, dto.GenerateRequest{
		Recipe:  recipe,
		Options: dto.GenerateOptions{MaxLines: maxLines},
	})
	if err != nil {
		return err
	}

	return formatter.Format(resp)
}

// prepareOutput validates the common flags and creates the summary
// formatter before any work starts.
func prepareOutput(cc *CommandContext, cmd *cobra.Command, opts *CommonOptions) (ports.OutputFormatter, uint64, error) {
	formatters := cc.Container.Formatters()
	if err := opts.ValidateFlags(verbose, formatters.SupportedFormats()); err != nil {
		return nil, 0, err
	}

	settings := *cc.Container.RuntimeConfig()
	settings.Override(opts.MaxLines, opts.Format)

	var out io.Writer = cmd.OutOrStdout()
	if opts.Quiet {
		out = io.Discard
	}

	color := false
	if f, ok := out.(*os.File); ok {
		color = opts.UseColor(f)
	}

	formatter, err := formatters.Create(settings.Format, out, ports.FormatterOptions{
		Indent: true,
		Color:  color,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("invalid summary format: %w", err)
	}
	return formatter, settings.MaxLines, nil
}
