// Package commands implements the CLI commands for the gostore client.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/gostore/internal/app"
	"go.trai.ch/gostore/internal/build"
)

// CLI represents the command line interface for gostore.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "gostore",
		Short:         "A terminal storefront cart",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newListCmd())
	rootCmd.AddCommand(c.newAddCmd())
	rootCmd.AddCommand(c.newIncCmd())
	rootCmd.AddCommand(c.newDecCmd())
	rootCmd.AddCommand(c.newBrowseCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
// Commands resolve the cart through cart.FromContext.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(c.app.Context(ctx))
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOut sets the destination for command output. Used for testing.
func (c *CLI) SetOut(w io.Writer) {
	c.rootCmd.SetOut(w)
}
