package cmd

import (
	"context"
	"fmt"

	"github.com/LambdaTest/ghnotify/pkg/core"
	errs "github.com/LambdaTest/ghnotify/pkg/errors"
	"github.com/spf13/cobra"
)

type probeFunc func(ctx context.Context, n core.StatusNotifier, cmd *cobra.Command) *core.ValidationResult

func checkCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate credentials, repository or commit without setting a status",
	}

	connection := &cobra.Command{
		Use:   "connection",
		Short: "Check that the credentials authenticate against the GitHub API",
		RunE: runProbe(func(ctx context.Context, n core.StatusNotifier, cmd *cobra.Command) *core.ValidationResult {
			credentialsID, apiURL, scope := credentialFlags(cmd)
			return n.TestConnection(ctx, credentialsID, apiURL, scope)
		}),
	}
	attachCredentialFlags(connection)

	repo := &cobra.Command{
		Use:   "repo",
		Short: "Check that the repository is accessible with the credentials",
		RunE: runProbe(func(ctx context.Context, n core.StatusNotifier, cmd *cobra.Command) *core.ValidationResult {
			credentialsID, apiURL, scope := credentialFlags(cmd)
			repo, _ := cmd.Flags().GetString("repo")
			return n.CheckRepo(ctx, credentialsID, repo, apiURL, scope)
		}),
	}
	attachCredentialFlags(repo)
	repo.Flags().String("repo", "", "repository in owner/name form")

	sha := &cobra.Command{
		Use:   "sha",
		Short: "Check that the commit exists in the repository",
		RunE: runProbe(func(ctx context.Context, n core.StatusNotifier, cmd *cobra.Command) *core.ValidationResult {
			credentialsID, apiURL, scope := credentialFlags(cmd)
			repo, _ := cmd.Flags().GetString("repo")
			sha, _ := cmd.Flags().GetString("sha")
			return n.CheckSHA(ctx, credentialsID, repo, sha, apiURL, scope)
		}),
	}
	attachCredentialFlags(sha)
	sha.Flags().String("repo", "", "repository in owner/name form")
	sha.Flags().String("sha", "", "commit SHA")

	cmd.AddCommand(connection, repo, sha)
	return cmd
}

// runProbe prints the probe outcome and fails the command when the probe reports an error.
func runProbe(probe probeFunc) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap(cmd)
		if err != nil {
			return err
		}
		result := probe(cmd.Context(), a.notifier, cmd)
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", result.Kind, result.Message)
		if result.Kind == core.ValidationError {
			return errs.New(result.Message)
		}
		return nil
	}
}

func credentialFlags(cmd *cobra.Command) (credentialsID, apiURL, scope string) {
	credentialsID, _ = cmd.Flags().GetString("credentials-id")
	apiURL, _ = cmd.Flags().GetString("git-api-url")
	scope, _ = cmd.Flags().GetString("scope")
	return credentialsID, apiURL, scope
}
