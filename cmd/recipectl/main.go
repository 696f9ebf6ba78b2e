package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/whale1510/recipectl/internal/debug"
	"github.com/whale1510/recipectl/internal/ui"
)

// Version and Build are injected at link time.
var (
	Version = "dev"
	Build   = "unknown"
)

var (
	siteDir     string
	verboseFlag bool
	quietFlag   bool
	noColorFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "recipectl",
	Short: "recipectl - recipe scaffolder for Joko's Jang-Namul-Bap",
	Long: `Scaffolds recipe content for the Jang-Namul-Bap static site.

recipectl collects recipe metadata, writes the recipe's detail page under
recipes/<category>/, and splices a card for it into index.html and
recipes/index.html. Target files are backed up before every splice.`,
	Run: func(cmd *cobra.Command, args []string) {
		if v, _ := cmd.Flags().GetBool("version"); v {
			fmt.Printf("recipectl version %s (%s)\n", Version, Build)
			return
		}
		// No subcommand - show help
		_ = cmd.Help() // Help() always returns nil for cobra commands
	},
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		debug.SetVerbose(verboseFlag)
		debug.SetQuiet(quietFlag)
		ui.SetNoColor(noColorFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&siteDir, "site-dir", ".", "Site checkout root")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose/debug output")
	rootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "Suppress non-essential output (errors only)")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "Disable styled output")
	rootCmd.Flags().Bool("version", false, "Print version and exit")
	rootCmd.SilenceUsage = true
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
