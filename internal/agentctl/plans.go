package agentctl

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"axiomai.dev/marketplace-web/internal/pricing"
)

func newPlansCmd(opts *options) *cobra.Command {
	var billing string
	cmd := &cobra.Command{
		Use:   "plans",
		Short: "Show pricing plans for a billing period",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.validateOutput(); err != nil {
				return err
			}
			content, err := opts.load()
			if err != nil {
				return err
			}
			view := content.Plans.View(pricing.ParseBilling(billing))

			out := cmd.OutOrStdout()
			done, err := opts.encode(out, view)
			if done || err != nil {
				return err
			}

			table := tablewriter.NewWriter(out)
			table.Header("Plan", "Price", "Period", "Popular", "Features")
			for _, p := range view.Plans {
				popular := ""
				if p.Popular {
					popular = "yes"
				}
				if err := table.Append(p.Name, p.Price, p.Period, popular, fmt.Sprintf("%d", len(p.Features))); err != nil {
					return err
				}
			}
			if err := table.Render(); err != nil {
				return err
			}
			line := "Billing: " + strings.ToLower(string(view.Billing))
			if view.SaveBadge != "" {
				line += " (" + view.SaveBadge + ")"
			}
			_, err = fmt.Fprintln(out, line)
			return err
		},
	}
	cmd.Flags().StringVar(&billing, "billing", string(pricing.Monthly), "billing period (monthly, annual)")
	return cmd
}
