package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/modelfix/internal/config"
	"github.com/spf13/cobra"
)

var dirsCmd = &cobra.Command{
	Use:   "dirs",
	Short: "Print directories used by modelfix",
	Long: `Print the directories where modelfix reads its configuration and writes
its log file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configOnly, _ := cmd.Flags().GetBool("config")
		dataOnly, _ := cmd.Flags().GetBool("data")

		if configOnly && dataOnly {
			return fmt.Errorf("cannot specify both --config and --data flags")
		}

		cfg, _, err := setup(cmd)
		if err != nil {
			return err
		}
		configDir := filepath.Dir(config.GlobalConfig())
		dataDir := cfg.Options.DataDirectory

		if configOnly {
			fmt.Println(configDir)
			return nil
		}
		if dataOnly {
			fmt.Println(dataDir)
			return nil
		}

		fmt.Printf("Config directory: %s\n", configDir)
		fmt.Printf("Data directory:   %s\n", dataDir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dirsCmd)
	dirsCmd.Flags().Bool("config", false, "Print only the config directory")
	dirsCmd.Flags().Bool("data", false, "Print only the data directory")
}
