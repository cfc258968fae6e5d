package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bplustree/internal/config"
)

type contextKey string

const configContextKey contextKey = "config"

var configPath string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "bplustree-cli",
	Short: "bplustree-cli is a command-line client for a bplustree data file",
	Long: `bplustree-cli reads and writes a single bplustree data file, one
(key, value) pair per []byte key and []byte value, using the same
persistence format the library's Save/Load produce.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if dataFile, _ := cmd.Flags().GetString("data-file"); dataFile != "" {
			cfg.DataFile = dataFile
		}
		cmd.SetContext(context.WithValue(cmd.Context(), configContextKey, cfg))
		return nil
	},
}

// Execute adds all child commands to the root command and runs it. It is
// called once by main.main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.GetDefaultConfigPath(), "path to config file")
	rootCmd.PersistentFlags().String("data-file", "", "path to the bplustree data file (overrides config)")
}

func configFromContext(cmd *cobra.Command) *config.Config {
	cfg, ok := cmd.Context().Value(configContextKey).(*config.Config)
	if !ok {
		return config.DefaultConfig()
	}
	return cfg
}
