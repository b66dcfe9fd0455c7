package cmd

import "github.com/spf13/cobra"

// AttachCLIFlags attaches the global command-line flags to the root command.
func AttachCLIFlags(rootCmd *cobra.Command) {
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file path")
	rootCmd.PersistentFlags().StringP("env", "e", "", "environment, one of dev, stage or prod")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringP("log-file", "l", "", "write logs to this file as well")
}

func attachCredentialFlags(cmd *cobra.Command) {
	cmd.Flags().String("credentials-id", "", "id of the credentials used to call the GitHub API")
	cmd.Flags().String("git-api-url", "", "GitHub Enterprise API URL, defaults to the configured API URL")
	cmd.Flags().String("scope", "", "full name of the job the credentials are looked up for")
}
