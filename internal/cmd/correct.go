package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var correctCmd = &cobra.Command{
	Use:   "correct [provider] [model]",
	Short: "Correct a model name against the provider catalog",
	Long: `Correct a possibly wrong model name and print the result. If no close
match exists in the provider's catalog the input is printed unchanged.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, corrector, err := setup(cmd)
		if err != nil {
			return err
		}

		correctionModel, _ := cmd.Flags().GetString("correction-model")
		if correctionModel == "" {
			correctionModel = cfg.Defaults.CorrectionModel
		}
		saveDefault, _ := cmd.Flags().GetBool("save-default")
		if saveDefault {
			if correctionModel == "" {
				return fmt.Errorf("--save-default requires --correction-model")
			}
			if err := cfg.SetConfigField("defaults.correction_model", correctionModel); err != nil {
				return err
			}
		}

		fmt.Println(corrector.Correct(args[0], args[1], correctionModel))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(correctCmd)
	correctCmd.Flags().String("correction-model", "", "Model to use for AI-based correction, e.g. gemini/gemini-2.5-pro")
	correctCmd.Flags().Bool("save-default", false, "Persist --correction-model as the configured default")
}
