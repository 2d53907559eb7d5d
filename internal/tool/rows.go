package tool

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"
)

var (
	rowsMinute int
	rowsTeam   string
	rowsSort   string
	rowsSearch string
)

var rowsCmd = &cobra.Command{
	Use:   "rows",
	Short: "Fetch the derived player rows and print them as a table",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRows()
	},
}

func init() {
	rowsCmd.Flags().IntVar(&rowsMinute, "minute", 90, "minute cutoff")
	rowsCmd.Flags().StringVar(&rowsTeam, "team", "ALL", "team filter: ALL, HOME or AWAY")
	rowsCmd.Flags().StringVar(&rowsSort, "sort", "rating", "sort key: rating, goals, assists, tackles or name")
	rowsCmd.Flags().StringVar(&rowsSearch, "q", "", "player name search text")
}

func runRows() error {
	c := newClient(baseURL)
	rows, err := c.getRows(rowsMinute, rowsTeam, rowsSort, rowsSearch)
	if err != nil {
		return err
	}

	table := tablewriter.NewTable(os.Stdout, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))

	table.Header("NAME", "TEAM", "POS", "G", "A", "T", "RATING", "IMPACT")

	for _, r := range rows {
		impact := "—"
		if r.Impact != nil {
			impact = fmt.Sprintf("%d′", *r.Impact)
		}
		table.Append(
			r.Name,
			r.Team,
			r.Position,
			strconv.Itoa(r.Goals),
			strconv.Itoa(r.Assists),
			strconv.Itoa(r.Tackles),
			fmt.Sprintf("%.1f", r.Rating),
			impact,
		)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	return nil
}
