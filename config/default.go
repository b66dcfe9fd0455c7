package config

import (
	"github.com/LambdaTest/ghnotify/pkg/constants"
	"github.com/LambdaTest/ghnotify/pkg/core"
	"github.com/spf13/viper"
)

func setDefaultConfig() {
	viper.SetDefault("Data.LogConfig.EnableConsole", true)
	viper.SetDefault("Data.LogConfig.ConsoleJSONFormat", false)
	viper.SetDefault("Data.LogConfig.ConsoleLevel", "info")
	viper.SetDefault("Data.LogConfig.EnableFile", false)
	viper.SetDefault("Data.LogConfig.FileJSONFormat", true)
	viper.SetDefault("Data.LogConfig.FileLevel", "debug")
	viper.SetDefault("Data.LogConfig.FileLocation", "./ghnotify.log")
	viper.SetDefault("Data.Env", constants.Prod)
	viper.SetDefault("Data.Port", "9876")
	viper.SetDefault("Data.Verbose", false)
	viper.SetDefault("Data.GitHub.APIURL", core.DefaultGitHubAPIURL)
	viper.SetDefault("Data.GitHub.PageSize", constants.DefaultRepoPageSize)
	viper.SetDefault("Data.Credentials.Store", constants.CredentialStoreStatic)
	viper.SetDefault("Data.Vault.MountPath", constants.DefaultVaultMountPath)
	viper.SetDefault("Data.Vault.BasePath", constants.DefaultVaultBasePath)
	viper.SetDefault("Data.GracefulTimeout", constants.DefaultGracefulTimeout)
	viper.SetDefault("Data.ShutDownDelay", constants.DefaultShutDownDelay)
}
