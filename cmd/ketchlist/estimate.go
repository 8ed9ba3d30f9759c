package main

import (
	"github.com/reglet-dev/ketchlist/internal/application/dto"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// estimateCmd reports the size of a run without writing anything.
var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Report how many lines a wordlist would contain",
	Long: `Compute the exact number of lines generate would write for the same
inputs, before policy and filter expressions are applied. Nothing is
written to disk.`,
	Example: `  ketchlist estimate -c "Acme Corp" --months
  ketchlist estimate --recipe acme.yaml --format json`,
	Args: cobra.NoArgs,
	RunE: withContainer(runEstimate),
}

var (
	estimateRecipe  recipeFlags
	estimateOptions CommonOptions
)

func init() {
	estimateRecipe.register(estimateCmd.Flags(), false)
	estimateOptions.RegisterFlags(estimateCmd)
	addSystemConfigFlag(estimateCmd)

	rootCmd.AddCommand(estimateCmd)
}

func runEstimate(cc *CommandContext, cmd *cobra.Command, _ []string) error {
	formatter, _, err := prepareOutput(cc, cmd, &estimateOptions)
	if err != nil {
		return err
	}

	recipe, err := estimateRecipe.buildRecipe(cmd.Flags(), viper.GetViper(), cc.Container.RecipeLoader())
	if err != nil {
		return err
	}

	resp, err := cc.Container.GenerateWordlistUseCase().Estimate(cc.Context, dto.EstimateRequest{Recipe: recipe})
	if err != nil {
		return err
	}

	return formatter.FormatEstimate(resp)
}
