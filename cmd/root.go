/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/memtalk/memtalk/internal/memtalk/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "memtalk",
	Short: "An interactive terminal chat client with a self-updating user profile",
	Long: `memtalk is an interactive command-line chat client that forwards your
messages to a chat-completion service and renders the reply progressively.

After each turn it asks the service to revise a persisted free-text user
profile and keeps the revision only when it stays within a bounded edit
distance of the current document; larger revisions are rolled back to a
backup copy.

You can configure the tool using a TOML configuration file.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/memtalk/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// Set environment variable prefix and automatic env
	viper.SetEnvPrefix("MEMTALK") // Set prefix for environment variables
	viper.AutomaticEnv()          // read in environment variables that match

	// Set default values from the config package
	defaultConfig := config.NewDefaultConfig()
	viper.SetDefault("model", defaultConfig.Model)
	viper.SetDefault("profile_model", defaultConfig.ProfileModel)
	viper.SetDefault("base_url", defaultConfig.BaseURL)
	viper.SetDefault("token", defaultConfig.Token)
	viper.SetDefault("prompt_file", defaultConfig.PromptFile)
	viper.SetDefault("profile_file", defaultConfig.ProfileFile)
	viper.SetDefault("profile_backup_file", defaultConfig.ProfileBackupFile)
	viper.SetDefault("profile_prompt", defaultConfig.ProfilePrompt)
	viper.SetDefault("profile_max_edits", defaultConfig.ProfileMaxEdits)

	// Bind environment variables
	viper.BindEnv("base_url", "MEMTALK_BASE_URL")
	viper.BindEnv("token", "MEMTALK_TOKEN")
	viper.BindEnv("model", "MEMTALK_MODEL")
	viper.BindEnv("profile_model", "MEMTALK_PROFILE_MODEL")

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Determine config directory for user config
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)
		userConfigDir := filepath.Join(home, ".config", "memtalk")

		viper.AddConfigPath(userConfigDir)
		viper.SetConfigType("toml")
		viper.SetConfigName("config")

		if err := viper.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				fmt.Fprintf(os.Stderr, "Error reading config file: %v\n", err)
			}
		}
	}

	if verbose {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		fmt.Fprintln(os.Stderr, "Environment variables:")
		fmt.Fprintln(os.Stderr, "  MEMTALK_MODEL:", viper.GetString("model"))
		fmt.Fprintln(os.Stderr, "  MEMTALK_PROFILE_MODEL:", viper.GetString("profile_model"))
		fmt.Fprintln(os.Stderr, "  MEMTALK_BASE_URL:", viper.GetString("base_url"))
	}
}
