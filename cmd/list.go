package cmd

import (
	"fmt"

	"github.com/LambdaTest/ghnotify/pkg/core"
	"github.com/spf13/cobra"
)

func listCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List selectable statuses or credentials",
	}

	statuses := &cobra.Command{
		Use:   "statuses",
		Short: "List the commit states",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bootstrap(cmd)
			if err != nil {
				return err
			}
			printItems(cmd, a.notifier.StatusItems())
			return nil
		},
	}

	credentials := &cobra.Command{
		Use:   "credentials",
		Short: "List the credentials usable to set a status",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bootstrap(cmd)
			if err != nil {
				return err
			}
			scope, _ := cmd.Flags().GetString("scope")
			items, err := a.notifier.CredentialsItems(cmd.Context(), scope)
			if err != nil {
				return err
			}
			printItems(cmd, items)
			return nil
		},
	}
	credentials.Flags().String("scope", "", "full name of the job the credentials are looked up for")

	cmd.AddCommand(statuses, credentials)
	return cmd
}

func printItems(cmd *cobra.Command, items []core.ListItem) {
	for _, item := range items {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", item.Value, item.Name)
	}
}
