package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vettalabs/vetta/internal/store"
)

var candidatesCmd = &cobra.Command{
	Use:   "candidates",
	Short: "List finished interviews without opening the TUI",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, cfg, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		search, _ := cmd.Flags().GetString("search")
		records, err := st.Candidates().List(cmd.Context(), store.ListOpts{
			Search: search,
			SortBy: store.SortField(cfg.SortBy),
			Order:  store.SortOrder(cfg.SortOrder),
		})
		if err != nil {
			return fmt.Errorf("list candidates: %w", err)
		}

		if len(records) == 0 {
			fmt.Println("No finished interviews.")
			return nil
		}

		fmt.Printf("%-24s %-28s %7s %7s  %s\n", "NAME", "EMAIL", "SCORE", "PCT", "DATE")
		for _, rec := range records {
			fmt.Printf("%-24s %-28s %7.1f %6.1f%%  %s\n",
				rec.Name, rec.Email, rec.FinalScore, rec.Percentage,
				rec.EndedAt.Format("2006-01-02 15:04"))
		}
		return nil
	},
}

func init() {
	candidatesCmd.Flags().String("search", "", "Filter by name or email substring")
}
