package agentctl

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"axiomai.dev/marketplace-web/internal/catalog"
	"axiomai.dev/marketplace-web/internal/format"
)

type listOutput struct {
	Category string            `json:"category" yaml:"category"`
	Query    string            `json:"query" yaml:"query"`
	Sort     string            `json:"sort" yaml:"sort"`
	Summary  string            `json:"summary" yaml:"summary"`
	Listings []catalog.Listing `json:"listings" yaml:"listings"`
}

func newAgentsCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "agents",
		Short: "List and inspect marketplace agents",
	}
	cmd.AddCommand(newAgentsListCmd(opts))
	cmd.AddCommand(newAgentsGetCmd(opts))
	return cmd
}

func newAgentsListCmd(opts *options) *cobra.Command {
	state := catalog.DefaultFilterState()
	var sortKey string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List agents matching a category, query and sort",
		Long: `List agents matching a category, query and sort.

Examples:
  agentctl agents list --category "RAG Agents"
  agentctl agents list --query automation --sort downloads -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.validateOutput(); err != nil {
				return err
			}
			content, err := opts.load()
			if err != nil {
				return err
			}
			state.Sort = catalog.SortKey(sortKey)
			res := content.Catalog.Query(state)

			out := cmd.OutOrStdout()
			done, err := opts.encode(out, listOutput{
				Category: res.State.Category,
				Query:    res.State.Query,
				Sort:     string(res.State.Sort),
				Summary:  res.Summary(),
				Listings: res.Listings,
			})
			if done || err != nil {
				return err
			}

			table := tablewriter.NewWriter(out)
			table.Header("ID", "Name", "Category", "Rating", "Downloads", "Price", "Featured")
			for _, l := range res.Listings {
				featured := ""
				if l.Featured {
					featured = "yes"
				}
				if err := table.Append(strconv.Itoa(l.ID), l.Name, l.Category, format.Rating(l.Rating), l.Downloads, l.Price, featured); err != nil {
					return err
				}
			}
			if err := table.Render(); err != nil {
				return err
			}
			_, err = fmt.Fprintln(out, res.Summary())
			return err
		},
	}
	cmd.Flags().StringVar(&state.Category, "category", catalog.AllCategories, "category to filter by (exact match)")
	cmd.Flags().StringVarP(&state.Query, "query", "q", "", "case-insensitive search over name, description and tags")
	cmd.Flags().StringVar(&sortKey, "sort", string(catalog.SortFeatured), "sort order (featured, rating, downloads)")
	return cmd
}

func newAgentsGetCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "get [id]",
		Short: "Show one agent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.validateOutput(); err != nil {
				return err
			}
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid agent id %q", args[0])
			}
			content, err := opts.load()
			if err != nil {
				return err
			}
			l, ok := content.Catalog.Listing(id)
			if !ok {
				return fmt.Errorf("agent %d not found", id)
			}

			out := cmd.OutOrStdout()
			done, err := opts.encode(out, l)
			if done || err != nil {
				return err
			}

			table := tablewriter.NewWriter(out)
			table.Header("Field", "Value")
			rows := [][2]string{
				{"ID", strconv.Itoa(l.ID)},
				{"Name", l.Name},
				{"Category", l.Category},
				{"Description", l.Description},
				{"Price", l.Price},
				{"Rating", format.Rating(l.Rating)},
				{"Downloads", l.Downloads},
				{"Featured", strconv.FormatBool(l.Featured)},
				{"Tags", strings.Join(l.Tags, ", ")},
			}
			for _, r := range rows {
				if err := table.Append(r[0], r[1]); err != nil {
					return err
				}
			}
			return table.Render()
		},
	}
}

func newCategoriesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List categories with their agent counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.validateOutput(); err != nil {
				return err
			}
			content, err := opts.load()
			if err != nil {
				return err
			}
			cats := content.Catalog.Categories()

			out := cmd.OutOrStdout()
			done, err := opts.encode(out, cats)
			if done || err != nil {
				return err
			}

			table := tablewriter.NewWriter(out)
			table.Header("Category", "Agents")
			for _, c := range cats {
				n := len(content.Catalog.Query(catalog.FilterState{Category: c, Sort: catalog.SortFeatured}).Listings)
				if err := table.Append(c, format.Count(n)); err != nil {
					return err
				}
			}
			return table.Render()
		},
	}
}
