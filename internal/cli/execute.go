// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Execute runs the command with the process arguments and returns the exit
// code.
func Execute() int {
	return execute(os.Args[1:], os.Stdout, os.Stderr)
}

func execute(args []string, stdout, stderr io.Writer) int {
	// cobra falls back to os.Args for a nil slice
	if args == nil {
		args = []string{}
	}

	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}

		return 1
	}

	return 0
}
