package commands

import (
	"path/filepath"

	"github.com/spf13/cobra"
)

func (c *CLI) newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add name",
		Short: "Add a problem to the contest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := workDir(cmd)
			if err != nil {
				return err
			}
			return c.app.AddProblem(cwd, args[0])
		},
	}
}

func (c *CLI) newAddContestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add_contest name",
		Short: "Create a new contest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := workDir(cmd)
			if err != nil {
				return err
			}
			return c.app.AddContest(cwd, args[0])
		},
	}
}

func (c *CLI) newUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: "Rewrite the contest statement styles and scripts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cwd, err := workDir(cmd)
			if err != nil {
				return err
			}
			return c.app.Update(cwd)
		},
	}
}

func (c *CLI) newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import path [name]",
		Short: "Import a problem from a Polygon package",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := workDir(cmd)
			if err != nil {
				return err
			}
			src := args[0]
			if !filepath.IsAbs(src) {
				src = filepath.Join(cwd, src)
			}
			return c.app.Import(cwd, src, optionalArg(args, 1))
		},
	}
}
