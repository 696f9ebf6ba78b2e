package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/whale1510/recipectl/internal/sitefile"
	"github.com/whale1510/recipectl/internal/ui"
)

var (
	pruneKeepDays int
	pruneDryRun   bool
)

var backupsCmd = &cobra.Command{
	Use:   "backups",
	Short: "Manage the backup files created before each patch",
	Long: `Every patch of index.html or recipes/index.html first writes a
timestamped copy next to the target (<file>.backup_YYYYMMDD_HHMMSS). These
commands list and delete those copies.`,
}

var backupsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List backup files under the site directory",
	Run: func(cmd *cobra.Command, args []string) {
		backups, err := sitefile.ListBackups(siteDir)
		if err != nil {
			FatalError("%v", err)
		}
		if len(backups) == 0 {
			fmt.Println("No backup files found.")
			return
		}
		for _, b := range backups {
			age := time.Since(b.ModTime).Round(time.Minute)
			fmt.Printf("  %s %s\n", b.Path, ui.Muted(fmt.Sprintf("(%d bytes, %s old)", b.Size, age)))
		}
		fmt.Printf("\n%d backup file(s)\n", len(backups))
	},
}

var backupsPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete backup files under the site directory",
	Run: func(cmd *cobra.Command, args []string) {
		pruned, err := sitefile.PruneBackups(siteDir, pruneKeepDays, pruneDryRun)
		if err != nil {
			FatalError("%v", err)
		}
		verb := "Deleted"
		if pruneDryRun {
			verb = "Would delete"
		}
		for _, b := range pruned {
			fmt.Printf("  %s %s\n", verb, b.Path)
		}
		fmt.Printf("%s %d backup file(s)\n", verb, len(pruned))
	},
}

func init() {
	backupsPruneCmd.Flags().IntVar(&pruneKeepDays, "keep-days", 0, "Keep backups newer than this many days (0 deletes all)")
	backupsPruneCmd.Flags().BoolVar(&pruneDryRun, "dry-run", false, "Report what would be deleted without deleting")
	backupsCmd.AddCommand(backupsListCmd)
	backupsCmd.AddCommand(backupsPruneCmd)
	rootCmd.AddCommand(backupsCmd)
}
