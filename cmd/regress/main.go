// Command regress fits a least-squares model to a CSV dataset.
package main

import (
	"os"

	"github.com/katalvlaran/linsys/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
