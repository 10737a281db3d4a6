// Command tspbb is the CLI front end for the distributed branch-and-bound
// exact TSP solver (tsp package). Built with spf13/cobra, the way the
// teacher pack's stacktower CLI wraps its pipeline, but trimmed to this
// solver's single real entry point: solve a distance-matrix file and print
// its optimal tour.
package main

import (
	"os"

	"github.com/coldbrew-labs/tspbb/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
