package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog [provider]",
	Short: "List known providers and models",
	Long: `List the providers in the model catalog, or the model IDs of a single
provider. The catalog is the built-in table plus any providers added in the
config file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := setup(cmd)
		if err != nil {
			return err
		}
		cat := cfg.Catalog()

		if len(args) == 0 {
			for _, p := range cat.Providers() {
				fmt.Printf("%s (%d models)\n", p.ID, len(p.Models))
			}
			return nil
		}

		provider, ok := cat.Lookup(args[0])
		if !ok {
			return fmt.Errorf("unknown provider: %s", args[0])
		}
		for _, m := range provider.Models {
			fmt.Println(m.ID)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}
