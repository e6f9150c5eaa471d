package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/jx/internal/app"
)

func (c *CLI) newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <group:artifact[:version]>",
		Short: "Declare a dependency and install it",
		Long:  "Declare a dependency and install it. Without a version the latest release is pinned.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scope, _ := cmd.Flags().GetString("scope")
			report, err := c.app.Add(cmd.Context(), app.AddOptions{
				ProjectOptions: projectOptions(cmd),
				Coordinate:     args[0],
				Scope:          scope,
			})
			if err != nil {
				return err
			}
			printReport(printer(cmd), report)
			return nil
		},
	}
	cmd.Flags().StringP("scope", "s", "compile", "Dependency scope (compile, runtime, test, provided, system)")
	return cmd
}

func (c *CLI) newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <group:artifact[:version]>",
		Aliases: []string{"rm"},
		Short:   "Remove a declared dependency and prune the lock file",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := c.app.Remove(cmd.Context(), app.RemoveOptions{
				ProjectOptions: projectOptions(cmd),
				Coordinate:     args[0],
			})
			if err != nil {
				return err
			}
			printReport(printer(cmd), report)
			return nil
		},
	}
}

func (c *CLI) newUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [group:artifact]",
		Short: "Re-resolve dependencies, optionally moving them to their latest release",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			latest, _ := cmd.Flags().GetBool("latest")
			opts := app.UpdateOptions{ProjectOptions: projectOptions(cmd), Latest: latest}
			if len(args) == 1 {
				opts.Coordinate = args[0]
			}
			report, err := c.app.Update(cmd.Context(), opts)
			if err != nil {
				return err
			}
			printReport(printer(cmd), report)
			return nil
		},
	}
	cmd.Flags().Bool("latest", false, "Pin declarations to their latest release")
	return cmd
}
