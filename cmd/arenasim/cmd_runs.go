package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/talgya/arenasim/internal/persistence"
)

func newRunsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Inspect the run archive",
	}
	cmd.PersistentFlags().String("db", "runs.db", "Path to the SQLite run archive")
	cmd.AddCommand(newRunsListCmd(), newRunsShowCmd(), newRunsDeathsCmd())
	return cmd
}

func newRunsListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List archived runs, most recent first",
		RunE: func(cmd *cobra.Command, args []string) error {
			dbPath, _ := cmd.Flags().GetString("db")
			limit, _ := cmd.Flags().GetInt("limit")

			db, err := persistence.Open(dbPath)
			if err != nil {
				return err
			}
			defer db.Close()

			runs, err := db.RecentRuns(limit)
			if err != nil {
				return fmt.Errorf("list runs: %w", err)
			}
			if len(runs) == 0 {
				fmt.Println("No archived runs.")
				return nil
			}
			for _, r := range runs {
				fmt.Printf("%s  %s  seed=%d  days=%d  tributes=%d  survivors=%d  events=%d\n",
					r.ID, r.CreatedAt, r.Seed, r.FinalDay, r.TributeCount, r.SurvivorCount, r.EventsRun)
			}
			return nil
		},
	}
	cmd.Flags().Int("limit", 20, "Maximum number of runs to list")
	return cmd
}

func newRunsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <run-id>",
		Short: "Print the full narrative transcript of an archived run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dbPath, _ := cmd.Flags().GetString("db")

			db, err := persistence.Open(dbPath)
			if err != nil {
				return err
			}
			defer db.Close()

			lines, err := db.Transcript(args[0])
			if err != nil {
				return fmt.Errorf("load transcript: %w", err)
			}
			if len(lines) == 0 {
				return fmt.Errorf("no transcript for run %s", args[0])
			}
			for _, l := range lines {
				fmt.Println(l)
			}
			return nil
		},
	}
}

func newRunsDeathsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deaths <run-id>",
		Short: "Print the death log of an archived run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dbPath, _ := cmd.Flags().GetString("db")

			db, err := persistence.Open(dbPath)
			if err != nil {
				return err
			}
			defer db.Close()

			deaths, err := db.Deaths(args[0])
			if err != nil {
				return fmt.Errorf("load deaths: %w", err)
			}
			if len(deaths) == 0 {
				fmt.Println("No deaths recorded.")
				return nil
			}
			for _, d := range deaths {
				fmt.Printf("day %d (%s): %s - %s\n", d.Day, d.Phase, d.Name, d.Cause)
			}
			return nil
		},
	}
}
