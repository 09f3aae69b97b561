package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"invoicer/internal/billing"
	"invoicer/internal/models"
)

type totalOptions struct {
	base           string
	deploymentRate string
	deployments    int
	meetings       int
	unit           int
	unitValue      string
	custom         []string
}

func newTotalCmd() *cobra.Command {
	opts := &totalOptions{}

	cmd := &cobra.Command{
		Use:   "total",
		Short: "Compute an invoice total from its line items",
		Example: `  # 104 + 2*12 + floor(5/2)*5 + 15 = 153
  invoicectl total --base 104 --deployments 2 --deployment-rate 12 \
    --meetings 5 --meeting-unit 2 --meeting-value 5 --custom 15`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			inv, rc, err := opts.build()
			if err != nil {
				return err
			}
			if err := billing.ValidateRateConfig(rc); err != nil {
				return err
			}
			total, err := billing.CalculateTotal(inv, rc)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), total.StringFixed(2))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.base, "base", "0", "base rate")
	f.StringVar(&opts.deploymentRate, "deployment-rate", "0", "price per deployment")
	f.IntVar(&opts.deployments, "deployments", 0, "number of deployments")
	f.IntVar(&opts.meetings, "meetings", 0, "number of meetings")
	f.IntVar(&opts.unit, "meeting-unit", 1, "meetings per billed unit")
	f.StringVar(&opts.unitValue, "meeting-value", "0", "price per meeting unit")
	f.StringArrayVar(&opts.custom, "custom", nil, "custom line amount, repeatable; negative values deduct")
	return cmd
}

// build turns the flags into an invoice and rate config.
func (o *totalOptions) build() (*models.Invoice, *models.RateConfig, error) {
	if o.deployments < 0 || o.meetings < 0 {
		return nil, nil, fmt.Errorf("deployments and meetings must not be negative")
	}

	base, err := decimal.NewFromString(o.base)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --base: %w", err)
	}
	depRate, err := decimal.NewFromString(o.deploymentRate)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --deployment-rate: %w", err)
	}
	unitValue, err := decimal.NewFromString(o.unitValue)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --meeting-value: %w", err)
	}

	inv := &models.Invoice{
		BaseRate:       base,
		Meetings:       o.meetings,
		AppDeployments: make([]models.DeploymentEntry, o.deployments),
		CustomEntries:  make([]models.CustomEntry, 0, len(o.custom)),
	}
	for _, raw := range o.custom {
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid --custom %q: %w", raw, err)
		}
		inv.CustomEntries = append(inv.CustomEntries, models.CustomEntry{Amount: amount})
	}

	rc := &models.RateConfig{
		BaseRate:         base,
		DeploymentRate:   depRate,
		MeetingRateUnit:  o.unit,
		MeetingRateValue: unitValue,
	}
	return inv, rc, nil
}
