package cli

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/term"
)

// isTerminal is a test seam for term.IsTerminal. Prompts and the banner are
// skipped when stdin is not a terminal, so commands can be piped in.
var isTerminal = term.IsTerminal

func (a *App) getStatus() string {
	s := string(a.Mode())
	if a.archive != nil {
		if n := a.archive.Pending(); n > 0 {
			if s != "" {
				s += " "
			}
			s += fmt.Sprintf("%d pending", n)
		}
	}
	if s != "" {
		s = fmt.Sprintf("(%s) ", s)
	}
	return s
}

func (a *App) Root(ctx context.Context) {

	interactive := isTerminal(int(os.Stdin.Fd()))
	if interactive {
		fmt.Fprintln(a.out, "Welcome to the life archive CLI (type 'help' for commands)")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)
	}()

	runREPL(ctx, a, a.getStatus, a.reader, interactive)
}
