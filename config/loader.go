package config

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// GlobalConfig stores the config instance for global use
var GlobalConfig *Config

var envReplacer = strings.NewReplacer(".", "_")

// flagKeys maps command line flags to their config keys.
var flagKeys = map[string]string{
	"env":           "Data.Env",
	"verbose":       "Data.Verbose",
	"log-file":      "Data.LogFile",
	"port":          "Data.Port",
	"build-context": "Data.BuildContext.File",
}

// Load loads config from command instance to predefined config variables
func Load(cmd *cobra.Command) (*Config, error) {
	for flag, key := range flagKeys {
		if f := cmd.Flags().Lookup(flag); f != nil {
			if err := viper.BindPFlag(key, f); err != nil {
				return nil, err
			}
		}
	}

	// default viper configs
	viper.SetEnvPrefix("GN")
	viper.SetEnvKeyReplacer(envReplacer)
	viper.AutomaticEnv()

	// set default configs
	setDefaultConfig()

	if configFile, _ := cmd.Flags().GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName(".gn")
		viper.AddConfigPath("./")
		viper.AddConfigPath("/vault/secrets")
	}

	if err := viper.ReadInConfig(); err != nil {
		fmt.Println("Warning: No configuration file found. Proceeding with defaults")
	}

	cfg, err := populateConfig(new(ConfigWrapper))
	if err != nil {
		return nil, err
	}
	if cfg.LogFile != "" {
		cfg.LogConfig.EnableFile = true
		cfg.LogConfig.FileLocation = cfg.LogFile
	}
	return cfg, nil
}
