package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/jx/internal/core/domain"
)

func (c *CLI) newTreeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree",
		Short: "Print the locked dependency tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			roots, _, err := c.app.Tree(cmd.Context(), projectOptions(cmd))
			if err != nil {
				return err
			}
			printer(cmd).Tree(roots)
			return nil
		},
	}
}

func (c *CLI) newOrderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "order",
		Short: "Print the resolution order, dependencies first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			order, err := c.app.Order(cmd.Context(), projectOptions(cmd))
			if err != nil {
				return err
			}
			printer(cmd).Lines(order)
			return nil
		},
	}
}

func (c *CLI) newClasspathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classpath",
		Short: "Print the classpath of the installed jars",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			paths, err := c.app.Classpath(cmd.Context(), projectOptions(cmd))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(paths, string(filepath.ListSeparator)))
			return err
		},
	}
}

func (c *CLI) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the locked dependencies",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lock, err := c.app.Lockfile(cmd.Context(), projectOptions(cmd))
			if err != nil {
				return err
			}
			printer(cmd).Lock(lock)
			return nil
		},
	}
}

func (c *CLI) newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check the lock file and cached jars without downloading",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := c.app.Verify(cmd.Context(), projectOptions(cmd))
			if err != nil {
				return err
			}

			p := printer(cmd)
			for _, key := range report.Missing {
				p.Failure("not cached: " + key)
			}
			for _, key := range report.Mismatched {
				p.Failure("checksum mismatch: " + key)
			}
			for _, edge := range report.Dangling {
				p.Failure(edge.Error())
			}
			if report.OutOfDate {
				p.Failure("lock file is out of date, run jx install")
			}
			if !report.OK() {
				return domain.ErrVerificationFailed
			}
			p.Success(fmt.Sprintf("verified %d dependencies", report.Checked))
			return nil
		},
	}
}
