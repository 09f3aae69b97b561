// Command invoicectl inspects the billing calendar and computes invoice
// totals from the command line.
package main

import (
	"fmt"
	"os"

	"invoicer/internal/logger"
)

func main() {
	logger.Init(os.Getenv("ENV"), os.Getenv("LOG_LEVEL"))
	defer logger.Sync()

	if err := newRootCmd().Execute(); err != nil {
		logger.With("invoicectl").Errorw("command failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
