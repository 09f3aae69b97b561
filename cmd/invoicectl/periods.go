package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"invoicer/internal/billing"
)

func newPeriodsCmd(opts *rootOptions) *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "periods",
		Short: "List the 24 billing periods of a year",
		Example: `  # Periods of the current year
  invoicectl periods

  # Periods of 2024 in UTC
  invoicectl periods --year 2024 --tz UTC`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			loc, err := opts.location()
			if err != nil {
				return fmt.Errorf("invalid time zone: %w", err)
			}
			cal := billing.NewCalendar(loc, opts.now)
			if year == 0 {
				year = cal.Now().Year()
			}
			if year < 1 || year > 9999 {
				return fmt.Errorf("year %d out of range", year)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tLABEL\tSTART\tEND\tPAYMENT\tSTATE")
			for _, p := range cal.Periods(year) {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					p.ID, p.Label,
					p.Start.Format(time.DateOnly), p.End.Format(time.DateOnly), p.PaymentDate.Format(time.DateOnly),
					periodState(p, cal))
			}
			return w.Flush()
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "calendar year (default: current year)")
	return cmd
}

func periodState(p billing.Period, cal *billing.Calendar) string {
	switch {
	case p.IsCurrent:
		return "current"
	case !cal.CanEdit(p):
		return "locked"
	default:
		return "past"
	}
}

func newPaymentDateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "payment-date YYYY-MM-DD",
		Short: "Move a due date that falls on a weekend back to Friday",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			end, err := time.Parse(time.DateOnly, args[0])
			if err != nil {
				return fmt.Errorf("invalid date %q: %w", args[0], err)
			}
			pay := billing.PaymentDate(end)
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", pay.Format(time.DateOnly), pay.Weekday())
			return nil
		},
	}
}
