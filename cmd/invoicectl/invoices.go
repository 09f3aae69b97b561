package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"invoicer/internal/billing"
	"invoicer/internal/config"
	"invoicer/internal/database"
	"invoicer/internal/services"
)

func newInvoicesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "invoices ACCOUNT",
		Short: "List an account's stored invoices with their totals",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			account := strings.ToLower(args[0])
			if !cfg.HasAccount(account) {
				return fmt.Errorf("unknown account %q (configured: %s)", account, strings.Join(cfg.Accounts, ", "))
			}

			mgr, err := database.NewManager(database.NewConfig(cfg))
			if err != nil {
				return err
			}
			defer func() { _ = mgr.Close() }()

			cal := billing.NewCalendar(cfg.Location, opts.now)
			settings := services.NewSettingsService(mgr.DB(), cal)
			views, err := services.NewInvoiceService(mgr.DB(), cal, settings).ListInvoiceViews(account)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "PERIOD\tDEPLOYMENTS\tMEETINGS\tTOTAL\tPAID\tRECEIVED EUR")
			for _, v := range views {
				fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%t\t%s\n",
					v.Invoice.ID, len(v.Invoice.AppDeployments), v.Invoice.Meetings,
					v.Total.StringFixed(2), v.Invoice.IsPaid, v.Invoice.ReceivedAmountEUR.StringFixed(2))
			}
			return w.Flush()
		},
	}
}
