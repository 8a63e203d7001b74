package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/erenfn/climate-compare/internal/config"
)

// version is set at build time via -ldflags.
var version = "dev"

var cfg *config.AppConfig

var rootCmd = &cobra.Command{
	Use:   "climate-compare",
	Short: "Compare projected and actual temperatures of Canadian cities",
	Long: "climate-compare reads monthly actual and yearly projected temperatures\n" +
		"for Toronto, Quebec, Halifax and Winnipeg, compares them per RCP scenario\n" +
		"and renders tables, charts and map fill colors.",
	SilenceUsage: true,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c
		if rootFlags.datasetDir != "" {
			cfg.DatasetDir = rootFlags.datasetDir
		}
		return nil
	},
}

var rootFlags struct {
	datasetDir string
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootFlags.datasetDir, "datasets", "", "Dataset directory (overrides DATASET_DIR)")
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(mapCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.Version = version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
