/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/josephgoksu/TaskDeck/types"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	configName = ".taskdeck"
	envPrefix  = "TASKDECK"
)

// GlobalAppConfig holds the global application configuration instance.
var GlobalAppConfig types.AppConfig

// validate is a single validator instance; it caches struct info.
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// InitConfig reads in config file and ENV variables if set.
func InitConfig() {
	// Load .env file first if present; it's fine if it doesn't exist.
	_ = godotenv.Load()

	viper.SetEnvPrefix(envPrefix) // e.g., TASKDECK_VERBOSE
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfgFileFlag := viper.GetString("config")

	projectConfigDir := viper.GetString("project.rootDir")
	if projectConfigDir == "" {
		projectConfigDir = ".taskdeck"
	}

	if cfgFileFlag != "" {
		viper.SetConfigFile(cfgFileFlag)
	} else {
		if _, err := os.Stat(projectConfigDir); !os.IsNotExist(err) {
			// Project-specific config directory exists. Prioritize it.
			viper.AddConfigPath(projectConfigDir)
			viper.SetConfigName(configName)
		} else {
			home, err := os.UserHomeDir()
			cobra.CheckErr(err)
			viper.AddConfigPath(home) // $HOME/.taskdeck.yaml
			viper.AddConfigPath(".")  // ./.taskdeck.yaml
			viper.SetConfigName(configName)
		}
	}

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	} else {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if cfgFileFlag != "" {
				fmt.Fprintln(os.Stderr, "Error: Specified config file not found:", cfgFileFlag)
			}
		} else {
			fmt.Fprintln(os.Stderr, "Error reading config file:", viper.ConfigFileUsed(), "-", err)
		}
	}

	// Set default values
	viper.SetDefault("project.rootDir", ".taskdeck")
	viper.SetDefault("data.file", "tasks.json")
	viper.SetDefault("data.format", "json")
	viper.SetDefault("locale.tag", "en")
	viper.SetDefault("notify.enabled", true)
	viper.SetDefault("notify.throttleDB", "notify.db")

	if err := viper.Unmarshal(&GlobalAppConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Error unmarshaling config: %s\n", err)
		os.Exit(1)
	}

	if GlobalAppConfig.Project.RootDir == "" {
		GlobalAppConfig.Project.RootDir = viper.GetString("project.rootDir")
	}

	if err := validate.Struct(&GlobalAppConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration validation error: %s\n", err)
		os.Exit(1)
	}

	initLogging()
}

// initLogging installs the default slog handler; --verbose lowers the level
// to debug.
func initLogging() {
	level := slog.LevelInfo
	if viper.GetBool("verbose") {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

// GetConfig returns a pointer to the global types.AppConfig instance.
func GetConfig() *types.AppConfig {
	return &GlobalAppConfig
}
