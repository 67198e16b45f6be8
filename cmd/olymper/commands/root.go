// Package commands implements the CLI commands for olymper.
package commands

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.trai.ch/olymper/internal/app"
	"go.trai.ch/olymper/internal/build"
	"go.trai.ch/olymper/internal/core/domain"
)

// CLI represents the command line interface for olymper.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "olymper",
		Short:         "Build, check and publish olympiad problems",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("dir", "C", "", "Run as if started in this directory")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(
		c.newBuildCmd(),
		c.newCheckCmd(),
		c.newCheckAllCmd(),
		c.newValidateCmd(),
		c.newStressCmd(),
		c.newBuildStatementCmd(),
		c.newUploadCmd(),
		c.newCleanCmd(),
		c.newAddCmd(),
		c.newAddContestCmd(),
		c.newUpdateCmd(),
		c.newImportCmd(),
		c.newVersionCmd(),
	)

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// workDir returns the --dir flag or the process working directory.
func workDir(cmd *cobra.Command) (string, error) {
	dir, _ := cmd.Flags().GetString("dir")
	if dir == "" {
		return os.Getwd()
	}
	return filepath.Abs(dir)
}

// loadProblem resolves the working directory and loads the enclosing problem.
func (c *CLI) loadProblem(cmd *cobra.Command) (string, *domain.ProblemConfig, error) {
	cwd, err := workDir(cmd)
	if err != nil {
		return "", nil, err
	}
	cfg, err := c.app.LoadProblem(cwd)
	if err != nil {
		return "", nil, err
	}
	return cwd, cfg, nil
}

// problemFile turns a path typed relative to cwd into one relative to the problem root.
func problemFile(cfg *domain.ProblemConfig, cwd, arg string) string {
	if arg == "" {
		return ""
	}
	abs := arg
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(cwd, arg)
	}
	rel, err := filepath.Rel(cfg.Root, abs)
	if err != nil {
		return abs
	}
	return rel
}

// optionalArg returns args[i] or "".
func optionalArg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.rootCmd.SetOut(w)
	c.rootCmd.SetErr(w)
}
