package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/hugoduncan/mcp-tasks/types"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	configName = ".mcp-tasks"
	envPrefix  = "MCPTASKS"
)

// globalAppConfig holds the unmarshaled application configuration.
var globalAppConfig types.AppConfig

// validate caches struct metadata for config validation.
var validate = validator.New()

// InitConfig reads in the config file and ENV variables if set.
func InitConfig() {
	// A missing .env file is fine.
	_ = godotenv.Load()

	// Environment variable handling must be set up before reading the config
	// file so env vars can participate in config resolution.
	viper.SetEnvPrefix(envPrefix) // e.g. MCPTASKS_VERBOSE
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfgFileFlag := viper.GetString("config")

	if cfgFileFlag != "" {
		viper.SetConfigFile(cfgFileFlag)
	} else {
		projectConfigDir := viper.GetString("project.rootDir")
		if projectConfigDir == "" {
			projectConfigDir = ".mcp-tasks"
		}
		if _, err := os.Stat(projectConfigDir); !os.IsNotExist(err) {
			// Project-local config directory exists; it wins.
			viper.AddConfigPath(projectConfigDir)
			viper.SetConfigName(configName)
		} else {
			home, err := os.UserHomeDir()
			cobra.CheckErr(err)
			viper.AddConfigPath(home)
			viper.AddConfigPath(".")
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
				fmt.Fprintln(os.Stderr, "Error: specified config file not found:", cfgFileFlag)
			}
		} else {
			fmt.Fprintln(os.Stderr, "Error reading config file:", viper.ConfigFileUsed(), "-", err)
		}
	}

	viper.SetDefault("project.rootDir", ".mcp-tasks")
	viper.SetDefault("project.templatesDir", "")
	viper.SetDefault("data.file", "tasks.jsonl")
	viper.SetDefault("lock.timeoutMs", 10000)

	if err := viper.Unmarshal(&globalAppConfig); err != nil {
		fmt.Fprintln(os.Stderr, "Error unmarshaling config:", err)
		os.Exit(1)
	}
	if err := validate.Struct(&globalAppConfig); err != nil {
		fmt.Fprintln(os.Stderr, "Error validating config:", err)
		os.Exit(1)
	}
}

// GetConfig returns the resolved application configuration.
func GetConfig() types.AppConfig {
	return globalAppConfig
}
