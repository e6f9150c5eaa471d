package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/jx/internal/app"
)

func (c *CLI) newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [name]",
		Short: "Create a new project",
		Long:  "Create a new project. With a name the project is created in a new subdirectory, otherwise in the project directory.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			template, _ := cmd.Flags().GetString("template")
			opts := app.InitOptions{Dir: dir, Template: template}
			if len(args) == 1 {
				opts.Name = args[0]
			}
			report, err := c.app.Init(opts)
			if err != nil {
				return err
			}
			p := printer(cmd)
			p.Success(fmt.Sprintf("created %s project %s", report.File, report.Name))
			p.Lines([]string{"path: " + report.Dir})
			return nil
		},
	}
	cmd.Flags().StringP("template", "t", app.TemplateNative, "Project file format (jx, maven, gradle)")
	return cmd
}
