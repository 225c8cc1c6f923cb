/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/memtalk/memtalk/internal/memtalk"
	"github.com/memtalk/memtalk/internal/memtalk/chat"
	"github.com/memtalk/memtalk/internal/memtalk/config"
	"github.com/memtalk/memtalk/internal/memtalk/profile"
	promptpkg "github.com/memtalk/memtalk/internal/memtalk/prompt"
	"github.com/memtalk/memtalk/internal/openai"
	"github.com/spf13/cobra"
)

var noProfile bool

// chatCmd represents the chat command
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat",
	Long: `Start an interactive chat with continuous conversation.

The initial system prompt is read from the configured prompt file; if the
file is missing the conversation simply starts without one.

After each turn the service is asked to revise the stored user profile.
The revision is accepted when it stays within the configured edit-distance
bound (profile_max_edits); anything larger is rolled back to the backup
profile. Use --no-profile to skip profile updates entirely.

Exit with Ctrl+D.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Load configuration from file
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		// Read the initial system prompt; absence is not fatal
		systemPrompt, err := promptpkg.ReadSystemPrompt(cfg.PromptFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to read initial prompt from file: %v\n", err)
			systemPrompt = ""
		}

		conv := memtalk.NewConversation(systemPrompt)

		client := openai.NewClient(cfg.BaseURL, cfg.Token)
		client.SetDebug(verbose)

		coordinator := chat.NewCoordinator(client, conv, cfg.Model)
		coordinator.SetDebug(verbose)

		if !noProfile {
			// Optional TOML template for the revision exchange
			var profilePrompt *promptpkg.Prompt
			if cfg.ProfilePrompt != "" {
				profilePrompt, err = promptpkg.LoadPrompt(cfg.ProfilePrompt)
				if err != nil {
					return fmt.Errorf("loading profile prompt: %w", err)
				}
			}

			store := profile.NewStore(cfg.ProfileFile, cfg.ProfileBackupFile)
			reconciler := profile.NewReconciler(client, store, cfg.ProfileModel, profilePrompt)
			reconciler.SetMaxEdits(cfg.ProfileMaxEdits)
			reconciler.SetDebug(verbose)
			coordinator.SetReconciler(reconciler.Reconcile)
		}

		// Print session header
		fmt.Fprintf(os.Stderr, "\n=== memtalk [%s] ===\n", conv.ShortID())
		fmt.Fprintf(os.Stderr, "Model: %s\n", cfg.Model)
		if systemPrompt != "" {
			fmt.Fprintf(os.Stderr, "System prompt: %s\n", cfg.PromptFile)
		}
		fmt.Fprintf(os.Stderr, "Press Ctrl+D to quit\n\n")

		if err := coordinator.Loop(); err != nil {
			return fmt.Errorf("chat: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)

	chatCmd.Flags().BoolVar(&noProfile, "no-profile", false, "Skip the per-turn profile update")
}
