package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-ca/utils"
)

const configFile = "config.json"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run is main without the exit, returning the process status.
func run(args []string, out io.Writer) int {
	rs, err := parseArgs(args, out, aurora.NewAurora(isTerminal(out)))
	if err != nil {
		return 1
	}

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(configFile)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(out, "Ignoring %s: %v\n", configFile, err)
		}
		config = utils.DefaultConfig()
	}

	g, err := initializeGame(config, rs, out)
	if err != nil {
		fmt.Fprintln(out, err)
		return 1
	}
	g.displayGameInfo()

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = g.run(ctx); err != nil {
		fmt.Fprintln(out, err)
		return 1
	}

	fmt.Fprintln(out, "\n🛑 Shutting down gracefully...")
	g.displayFinalStats()
	return 0
}

// isTerminal reports whether w is a character device, so escapes are only
// written where a terminal will interpret them.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}
