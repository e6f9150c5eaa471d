package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/jx/internal/app"
	"go.trai.ch/jx/internal/ui/output"
)

func (c *CLI) newInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Resolve, lock and install the declared dependencies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			frozen, _ := cmd.Flags().GetBool("frozen")
			force, _ := cmd.Flags().GetBool("force")
			report, err := c.app.Install(cmd.Context(), app.InstallOptions{
				ProjectOptions: projectOptions(cmd),
				Frozen:         frozen,
				Force:          force,
			})
			if err != nil {
				return err
			}
			printReport(printer(cmd), report)
			return nil
		},
	}
	cmd.Flags().Bool("frozen", false, "Fail instead of updating an out of date lock file")
	cmd.Flags().BoolP("force", "f", false, "Re-resolve even when the lock file is up to date")
	return cmd
}

func printReport(p *output.Printer, r *app.InstallReport) {
	if r.UpToDate {
		p.Success(fmt.Sprintf("lock file is up to date (%d dependencies)", r.Resolved))
	} else {
		p.Success(fmt.Sprintf("resolved %d dependencies", r.Resolved))
	}

	lines := make([]string, 0, len(r.Added)+len(r.Removed))
	for _, key := range r.Added {
		lines = append(lines, "+ "+key)
	}
	for _, key := range r.Removed {
		lines = append(lines, "- "+key)
	}
	p.Lines(lines)

	if r.Downloaded > 0 {
		p.Success(fmt.Sprintf("downloaded %d artifacts", r.Downloaded))
	}
	if len(r.Conflicts) > 0 {
		p.Conflicts(r.Conflicts)
	}
}
