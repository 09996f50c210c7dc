// SPDX-License-Identifier: EPL-2.0

package main

import (
	"os"

	"github.com/ik5/lipwav/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
