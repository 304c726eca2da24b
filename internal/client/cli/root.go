package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

func (a *App) getStatus() string {
	s := ""
	if a.userName != "" {
		s = a.userName + " "
	}
	s += string(a.currentMode())

	if n, unlimited := a.tracker.Remaining(); !unlimited {
		s += fmt.Sprintf(", %d free", n)
	}
	return "(" + s + ")"
}

func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to CyberShield CLI (type 'help' for commands)")

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
