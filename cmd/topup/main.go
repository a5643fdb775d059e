package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"frameworks/topup/internal/batch"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit code.
// Validation failures are reported on stdout, everything else on stderr.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		var verr *batch.ValidationError
		if errors.As(err, &verr) {
			fmt.Fprintln(stdout, verr.Error())
			return 1
		}
		fmt.Fprintf(stderr, "topup: %v\n", err)
		return 1
	}
	return 0
}
