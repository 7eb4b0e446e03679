// Command simplicity checks interaction-net rules and nets for structural
// consistency.
//
//	simplicity check rules.inet            # one line per rule and net
//	simplicity check --strict --json dir/  # exit 2 on any non-simple verdict
//	simplicity check --watch rules.inet    # re-check on every save
//	simplicity algebra -- -<--- ---->      # explore the relation algebra
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx)
	stop()
	os.Exit(exitCode(err, os.Stderr))
}

// exitCode maps a command error to the process status: 0 on success, 2 when
// --strict found a non-simple verdict, 1 for anything else.
func exitCode(err error, stderr io.Writer) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errNonSimple):
		fmt.Fprintln(stderr, "simplicity:", err)
		return 2
	default:
		fmt.Fprintln(stderr, "simplicity:", err)
		return 1
	}
}
