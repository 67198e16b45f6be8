package commands

import (
	"time"

	"github.com/spf13/cobra"
	"go.trai.ch/olymper/internal/app"
)

// seconds converts a --tl style flag to a duration; zero keeps the problem's value.
func seconds(v float64) time.Duration {
	return time.Duration(v * float64(time.Second))
}

func (c *CLI) newBuildCmd() *cobra.Command {
	var ml int
	cmd := &cobra.Command{
		Use:   "build [main_solution]",
		Short: "Build tests and generate answers",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, cfg, err := c.loadProblem(cmd)
			if err != nil {
				return err
			}
			return c.app.Build(cmd.Context(), cfg, app.BuildOptions{
				MainSolution:  problemFile(cfg, cwd, optionalArg(args, 0)),
				MemoryLimitMB: ml,
			})
		},
	}
	cmd.Flags().IntVar(&ml, "ml", 0, "Memory limit for the solution in megabytes")
	return cmd
}

func (c *CLI) newCheckCmd() *cobra.Command {
	var (
		tl   float64
		ml   int
		lang string
	)
	cmd := &cobra.Command{
		Use:   "check [solution]",
		Short: "Check a solution on the tests",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, cfg, err := c.loadProblem(cmd)
			if err != nil {
				return err
			}
			_, err = c.app.Check(cmd.Context(), cfg, app.CheckOptions{
				Solution:      problemFile(cfg, cwd, optionalArg(args, 0)),
				Language:      lang,
				TimeLimit:     seconds(tl),
				MemoryLimitMB: ml,
			})
			return err
		},
	}
	cmd.Flags().Float64Var(&tl, "tl", 0, "Time limit for the solution in seconds")
	cmd.Flags().IntVar(&ml, "ml", 0, "Memory limit for the solution in megabytes")
	cmd.Flags().StringVar(&lang, "lang", "", "Language of the solution when the extension is ambiguous")
	return cmd
}

func (c *CLI) newCheckAllCmd() *cobra.Command {
	var (
		tl float64
		ml int
	)
	cmd := &cobra.Command{
		Use:   "check_all",
		Short: "Check every configured solution",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, cfg, err := c.loadProblem(cmd)
			if err != nil {
				return err
			}
			_, err = c.app.CheckAll(cmd.Context(), cfg, app.CheckOptions{TimeLimit: seconds(tl), MemoryLimitMB: ml})
			return err
		},
	}
	cmd.Flags().Float64Var(&tl, "tl", 0, "Time limit for the solutions in seconds")
	cmd.Flags().IntVar(&ml, "ml", 0, "Memory limit for the solutions in megabytes")
	return cmd
}

func (c *CLI) newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the tests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, cfg, err := c.loadProblem(cmd)
			if err != nil {
				return err
			}
			_, err = c.app.Validate(cmd.Context(), cfg)
			return err
		},
	}
}

func (c *CLI) newStressCmd() *cobra.Command {
	var (
		num     int
		mtl, tl float64
		ml      int
		lang    string
	)
	cmd := &cobra.Command{
		Use:   "stress solution [model_solution]",
		Short: "Stress test a solution against the model solution",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, cfg, err := c.loadProblem(cmd)
			if err != nil {
				return err
			}
			_, err = c.app.Stress(cmd.Context(), cfg, app.StressOptions{
				Solution:       problemFile(cfg, cwd, args[0]),
				Language:       lang,
				ModelSolution:  problemFile(cfg, cwd, optionalArg(args, 1)),
				Count:          num,
				ModelTimeLimit: seconds(mtl),
				TimeLimit:      seconds(tl),
				MemoryLimitMB:  ml,
			})
			return err
		},
	}
	cmd.Flags().IntVarP(&num, "num", "n", -1, "Number of tests; -1 runs until interrupted")
	cmd.Flags().Float64Var(&mtl, "mtl", 0, "Time limit for the model solution in seconds")
	cmd.Flags().Float64Var(&tl, "tl", 0, "Time limit for the user solution in seconds")
	cmd.Flags().IntVar(&ml, "ml", 0, "Memory limit for the solutions in megabytes")
	cmd.Flags().StringVar(&lang, "lang", "", "Language of the user solution when the extension is ambiguous")
	return cmd
}

func (c *CLI) newBuildStatementCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build_st",
		Short: "Build statement.xml from the TeX statement",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, cfg, err := c.loadProblem(cmd)
			if err != nil {
				return err
			}
			return c.app.BuildStatement(cfg)
		},
	}
}

func (c *CLI) newUploadCmd() *cobra.Command {
	var opts app.UploadOptions
	cmd := &cobra.Command{
		Use:   "upload",
		Short: "Upload problem files to the contest server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, cfg, err := c.loadProblem(cmd)
			if err != nil {
				return err
			}
			return c.app.Upload(cmd.Context(), cfg, opts)
		},
	}
	cmd.Flags().BoolVarP(&opts.Tests, "tests", "t", false, "Upload tests")
	cmd.Flags().BoolVarP(&opts.Checker, "checker", "c", false, "Upload checker sources")
	cmd.Flags().BoolVarP(&opts.Validator, "validator", "v", false, "Upload validator sources")
	cmd.Flags().BoolVarP(&opts.Testlib, "testlib", "l", false, "Upload testlib.h")
	cmd.Flags().BoolVarP(&opts.Statement, "statement", "s", false, "Upload statement.xml")
	cmd.Flags().BoolVarP(&opts.Valuer, "gvaluer", "g", false, "Upload valuer.cfg")
	return cmd
}

func (c *CLI) newCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove generated tests and temporary files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, cfg, err := c.loadProblem(cmd)
			if err != nil {
				return err
			}
			return c.app.Clean(cmd.Context(), cfg)
		},
	}
}
