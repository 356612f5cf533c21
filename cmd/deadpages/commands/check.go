package commands

import (
	"fmt"
	"os"

	"git.home.luguber.info/inful/deadpages/internal/deadpages"
)

// CheckCmd implements the 'check' command.
type CheckCmd struct {
	Book   string `short:"b" help:"Path to the book source directory (overrides the built-in layout assumption)"`
	Format string `short:"f" default:"text" help:"Output format (text or json)" enum:"text,json"`
	Quiet  bool   `short:"q" help:"Quiet mode: only print dead page paths"`
}

// Run executes the check command.
func (c *CheckCmd) Run(_ *Global, root *CLI) error {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}

	bookRoot, ignore, err := resolveBook(c.Book, root.Config, cwd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	result, err := deadpages.Check(bookRoot, ignore)
	if err != nil {
		return fmt.Errorf("checking for dead pages: %w", err)
	}

	formatter := deadpages.NewFormatter(c.Format, c.Quiet)
	if err := formatter.Format(os.Stdout, result); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	if result.HasDead() {
		os.Exit(1)
	}
	return nil
}
