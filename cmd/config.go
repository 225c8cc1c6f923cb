package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/memtalk/memtalk/internal/memtalk/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config [field]",
	Short: "Display current configuration",
	Long: `Display the current configuration values.
This command shows all configuration values loaded from the config file and environment variables.

If a field name is specified, only that field's value is displayed.
Available fields: configfile, base_url, model, profile_model, token, prompt_file, profile_file, profile_backup_file, profile_max_edits

Examples:
  memtalk config                   # Show all configuration
  memtalk config model             # Show only the conversation model
  memtalk config token             # Show only the (masked) API token
  memtalk config profile_file      # Show only the profile path`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		// Load configuration from file
		cfg, err := config.LoadConfig()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		// If a field is specified, show only that field
		if len(args) > 0 {
			field := strings.ToLower(args[0])
			switch field {
			case "configfile":
				fmt.Println(viper.ConfigFileUsed())
			case "base_url", "baseurl":
				fmt.Println(cfg.BaseURL)
			case "model":
				fmt.Println(cfg.Model)
			case "profile_model", "profilemodel":
				fmt.Println(cfg.ProfileModel)
			case "token":
				fmt.Println(maskToken(cfg.Token))
			case "prompt_file", "promptfile":
				fmt.Println(cfg.PromptFile)
			case "profile_file", "profilefile":
				fmt.Println(cfg.ProfileFile)
			case "profile_backup_file", "profilebackupfile":
				fmt.Println(cfg.ProfileBackupFile)
			case "profile_max_edits", "profilemaxedits":
				fmt.Println(cfg.ProfileMaxEdits)
			default:
				fmt.Fprintf(os.Stderr, "Unknown field: %s\n", args[0])
				fmt.Fprintf(os.Stderr, "Available fields: configfile, base_url, model, profile_model, token, prompt_file, profile_file, profile_backup_file, profile_max_edits\n")
				os.Exit(1)
			}
			return
		}

		// Display all configuration values
		fmt.Printf("ConfigFile: %s\n", viper.ConfigFileUsed())
		fmt.Printf("BaseURL: %s\n", cfg.BaseURL)
		fmt.Printf("Token: %s\n", maskToken(cfg.Token))
		fmt.Printf("Model: %s\n", cfg.Model)
		fmt.Printf("ProfileModel: %s\n", cfg.ProfileModel)
		fmt.Printf("PromptFile: %s\n", cfg.PromptFile)
		fmt.Printf("ProfileFile: %s\n", cfg.ProfileFile)
		fmt.Printf("ProfileBackupFile: %s\n", cfg.ProfileBackupFile)
		fmt.Printf("ProfileMaxEdits: %d\n", cfg.ProfileMaxEdits)
	},
}

// maskToken returns a masked version of the token for security
func maskToken(token string) string {
	if len(token) <= 8 {
		return "********"
	}
	return token[:4] + "..." + token[len(token)-4:]
}

func init() {
	rootCmd.AddCommand(configCmd)
}
