// Command tunex collects model characteristics from serialized hyperparameter
// tuning results and renders them as CSV tables.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
