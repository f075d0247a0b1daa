// gridpath solves and generates square grid layouts from the command line.
package main

import (
	"os"

	"github.com/pdrpinto/gridastar/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
