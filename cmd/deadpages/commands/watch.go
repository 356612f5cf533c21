package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"

	"git.home.luguber.info/inful/deadpages/internal/deadpages"
	"git.home.luguber.info/inful/deadpages/internal/watch"
)

// WatchCmd implements the 'watch' command: a check that re-runs on changes,
// for use as a local linter while editing the book.
type WatchCmd struct {
	Book   string `short:"b" help:"Path to the book source directory (overrides the built-in layout assumption)"`
	Format string `short:"f" default:"text" help:"Output format (text or json)" enum:"text,json"`
}

// Run executes the watch command. On shutdown the process exits with the
// status of the last completed check.
func (c *WatchCmd) Run(_ *Global, root *CLI) error {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}

	bookRoot, ignore, err := resolveBook(c.Book, root.Config, cwd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	r := &checkRunner{
		bookRoot:  bookRoot,
		ignore:    ignore,
		formatter: deadpages.NewFormatter(c.Format, false),
		out:       os.Stdout,
		errOut:    os.Stderr,
	}

	r.run()

	watcher, err := watch.New(bookRoot, r.run)
	if err != nil {
		return err
	}

	sigctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	fmt.Fprintf(os.Stderr, "Watching %s for changes (Ctrl-C to stop)\n", bookRoot)
	if err := watcher.Run(sigctx); err != nil {
		return err
	}

	if code := r.lastStatus(); code != 0 {
		os.Exit(code)
	}
	return nil
}

// checkRunner re-runs the check and formats the result. Runs are serialized:
// the debounced watcher callback fires on timer goroutines, and an overlapping
// run must not interleave its report with another on the same writer.
type checkRunner struct {
	bookRoot  string
	ignore    []string
	formatter deadpages.Formatter
	out       io.Writer
	errOut    io.Writer

	mu   sync.Mutex
	last atomic.Int32
}

func (r *checkRunner) run() {
	r.mu.Lock()
	defer r.mu.Unlock()

	result, err := deadpages.Check(r.bookRoot, r.ignore)
	if err != nil {
		fmt.Fprintf(r.errOut, "Error: %v\n", err)
		r.last.Store(1)
		return
	}

	if err := r.formatter.Format(r.out, result); err != nil {
		fmt.Fprintf(r.errOut, "Error: %v\n", err)
	}
	r.last.Store(int32(result.ExitCode()))
}

// lastStatus returns the exit status of the most recent completed run.
func (r *checkRunner) lastStatus() int {
	return int(r.last.Load())
}
