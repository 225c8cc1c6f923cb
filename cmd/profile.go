/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/memtalk/memtalk/internal/memtalk/config"
	"github.com/memtalk/memtalk/internal/memtalk/profile"
	"github.com/spf13/cobra"
)

// profileCmd represents the profile command
var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Inspect and maintain the user profile",
	Long: `Inspect and maintain the persisted user profile.

The profile is a free-text document the chat loop revises after every turn.
The backup copy is the rollback source used when a revision diverges too far
from the current document; refresh it with 'memtalk profile backup' once you
are happy with the current profile.`,
}

// profileShowCmd represents the profile show command
var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current profile document",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		store := profile.NewStore(cfg.ProfileFile, cfg.ProfileBackupFile)
		content, err := store.Load()
		if err != nil {
			return err
		}
		fmt.Print(content)
		return nil
	},
}

// profilePathCmd represents the profile path command
var profilePathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the profile and backup file paths",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		fmt.Printf("Profile: %s\n", cfg.ProfileFile)
		fmt.Printf("Backup:  %s\n", cfg.ProfileBackupFile)
		return nil
	},
}

// profileBackupCmd represents the profile backup command
var profileBackupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Refresh the backup from the current profile",
	Long: `Overwrite the backup profile with the current profile document.

The chat loop itself never writes the backup; run this when the current
profile is in a state you trust as a rollback target.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		store := profile.NewStore(cfg.ProfileFile, cfg.ProfileBackupFile)
		content, err := store.Load()
		if err != nil {
			return err
		}
		if err := store.SaveBackup(content); err != nil {
			return err
		}

		fmt.Fprintf(os.Stderr, "Backup refreshed: %s\n", cfg.ProfileBackupFile)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profilePathCmd)
	profileCmd.AddCommand(profileBackupCmd)
}
