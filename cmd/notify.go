package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/LambdaTest/ghnotify/pkg/core"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
)

func notifyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Set the GitHub commit status of the current build",
		RunE:  runNotify,
	}
	cmd.Flags().StringP("status", "s", "", "commit state, one of SUCCESS, FAILURE, ERROR or PENDING")
	cmd.Flags().StringP("description", "d", "", "short description of the status")
	cmd.Flags().String("context", core.DefaultStatusContext, "label differentiating this status from others")
	cmd.Flags().String("repo", "", "repository in owner/name form, inferred from the build when empty")
	cmd.Flags().String("sha", "", "commit SHA, inferred from the build when empty")
	cmd.Flags().String("credentials-id", "", "id of the credentials, inferred from the build when empty")
	cmd.Flags().String("git-api-url", "", "GitHub Enterprise API URL")
	cmd.Flags().String("target-url", "", "link attached to the status, defaults to the build URL")
	cmd.Flags().String("build-context", "", "path of a build-context document, detected from the CI environment when empty")
	_ = cmd.MarkFlagRequired("status")
	_ = cmd.MarkFlagRequired("description")
	return cmd
}

func runNotify(cmd *cobra.Command, args []string) error {
	a, err := bootstrap(cmd)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	status, _ := cmd.Flags().GetString("status")
	state, err := core.ParseCommitState(status)
	if err != nil {
		return err
	}
	description, _ := cmd.Flags().GetString("description")
	req := core.NewNotificationRequest(state, description)
	req.Context, _ = cmd.Flags().GetString("context")
	req.Repo, _ = cmd.Flags().GetString("repo")
	req.SHA, _ = cmd.Flags().GetString("sha")
	req.CredentialsID, _ = cmd.Flags().GetString("credentials-id")
	req.GitAPIURL, _ = cmd.Flags().GetString("git-api-url")
	req.TargetURL, _ = cmd.Flags().GetString("target-url")

	bc, err := a.loader.Load(ctx)
	if err != nil {
		a.logger.Errorf("failed to load build context, error: %v", err)
		return err
	}

	result, err := a.notifier.Notify(ctx, req, bc)
	if err != nil {
		return err
	}
	return printJSON(cmd, result)
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	json := jsoniter.ConfigCompatibleWithStandardLibrary
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}
