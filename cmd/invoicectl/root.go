package main

import (
	"time"

	"github.com/spf13/cobra"
)

var version = "1.0.0"

// rootOptions holds flags shared by every subcommand.
type rootOptions struct {
	timezone string
	now      func() time.Time
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{now: time.Now}

	root := &cobra.Command{
		Use:   "invoicectl",
		Short: "Inspect billing periods and compute invoice totals",
		Long: `invoicectl works with the bi-monthly billing calendar used by the
invoicer API: it lists the periods of a year, adjusts payment dates that
fall on a weekend and prices an invoice from its line items.

The invoices command reads stored invoices through the same database
configuration as the API server (DB_DRIVER, DB_PATH, DB_HOST, ...).`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.timezone, "tz", "Europe/Berlin", "IANA time zone of the billing calendar")

	root.AddCommand(
		newPeriodsCmd(opts),
		newPaymentDateCmd(),
		newTotalCmd(),
		newInvoicesCmd(opts),
	)
	return root
}

// location resolves the --tz flag.
func (o *rootOptions) location() (*time.Location, error) {
	return time.LoadLocation(o.timezone)
}
