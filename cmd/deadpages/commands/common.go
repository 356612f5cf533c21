package commands

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/deadpages/internal/book"
	"git.home.luguber.info/inful/deadpages/internal/config"
)

// Global context passed to subcommands if we need to share global state later.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags - used by commands that need access to root config.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path (default: discover .deadpages.yaml upward from the working directory)"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Check CheckCmd `cmd:"" default:"withargs" help:"Check the book for Markdown pages missing from SUMMARY.md"`
	Watch WatchCmd `cmd:"" help:"Re-run the check whenever the book tree changes"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// resolveBook determines the book root and ignore patterns.
// Priority for the root: --book flag > config book > built-in layout offset.
func resolveBook(bookFlag, configPath, cwd string) (string, []string, error) {
	cfg, err := loadConfig(configPath, cwd)
	if err != nil {
		return "", nil, err
	}

	var ignore []string
	bookPath := bookFlag
	if cfg != nil {
		ignore = cfg.Ignore
		if bookPath == "" {
			bookPath = cfg.Book
		}
	}

	if bookPath != "" {
		root, err := book.LocateAt(bookPath)
		return root, ignore, err
	}
	root, err := book.Locate()
	return root, ignore, err
}

// loadConfig loads the explicit config file, or discovers one upward from
// cwd. A missing discovered config is not an error.
func loadConfig(configPath, cwd string) (*config.Config, error) {
	if configPath != "" {
		return config.Load(configPath)
	}
	cfg, path, err := config.Discover(cwd)
	if err != nil {
		return nil, err
	}
	if cfg != nil {
		slog.Debug("Using configuration file", "path", path)
	}
	return cfg, nil
}
