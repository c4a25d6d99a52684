package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/talgya/arenasim/internal/arena"
	"github.com/talgya/arenasim/internal/content"
	"github.com/talgya/arenasim/internal/persistence"
	"github.com/talgya/arenasim/internal/sim"
	"github.com/talgya/arenasim/internal/tribute"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Simulate one tournament",
		Long: `Simulate one tournament to completion and print the narrative.

Examples:
  arenasim run --seed 42
  arenasim run --roster tributes.json --max-days 20 --export run.json
  arenasim run --seed 7 --random-map --db runs.db`,
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, _ := cmd.Flags().GetInt64("seed")
			maxDays, _ := cmd.Flags().GetInt("max-days")
			strict, _ := cmd.Flags().GetInt("strict-shutdown")
			rosterPath, _ := cmd.Flags().GetString("roster")
			contentPath, _ := cmd.Flags().GetString("content")
			exportPath, _ := cmd.Flags().GetString("export")
			dbPath, _ := cmd.Flags().GetString("db")
			randomMap, _ := cmd.Flags().GetBool("random-map")
			quiet, _ := cmd.Flags().GetBool("quiet")
			verbose, _ := cmd.Flags().GetBool("verbose")

			if verbose {
				slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}

			if !cmd.Flags().Changed("seed") {
				seed = time.Now().UnixNano()
				fmt.Printf("No seed given; using %d\n", seed)
			}

			roster := tribute.DefaultRoster()
			if rosterPath != "" {
				var err error
				roster, err = tribute.LoadRoster(rosterPath)
				if err != nil {
					return err
				}
				fmt.Printf("Loaded %d custom tributes from %s\n", len(roster), rosterPath)
			}

			reg := content.DefaultRegistry()
			if contentPath != "" {
				ext, err := content.LoadExtension(contentPath)
				if err != nil {
					return err
				}
				reg.Merge(ext)
				fmt.Printf("Custom content integrated from %s\n", contentPath)
			}

			var arenaMap *arena.Map
			if randomMap {
				var err error
				arenaMap, err = arena.Generate(arena.DefaultGenConfig(seed))
				if err != nil {
					return fmt.Errorf("generate arena: %w", err)
				}
			}

			cfg := sim.Config{
				Seed:           seed,
				MaxDays:        maxDays,
				StrictShutdown: strict,
				ExportPath:     exportPath,
			}
			if !quiet {
				cfg.LogSink = func(line string) { fmt.Println(line) }
			}

			s, err := sim.New(cfg, roster, arenaMap, reg)
			if err != nil {
				return err
			}
			s.Run()

			if dbPath != "" {
				db, err := persistence.Open(dbPath)
				if err != nil {
					return err
				}
				defer db.Close()
				runID, err := db.SaveRun(s.Export())
				if err != nil {
					return fmt.Errorf("archive run: %w", err)
				}
				fmt.Printf("Run archived as %s\n", runID)
			}
			return nil
		},
	}

	cmd.Flags().Int64("seed", 0, "Random seed (defaults to a time-based seed)")
	cmd.Flags().Int("max-days", 30, "Maximum days to simulate")
	cmd.Flags().Int("strict-shutdown", 0, "Force terminate after given day if multiple tributes remain")
	cmd.Flags().String("roster", "", "Path to JSON roster file")
	cmd.Flags().String("content", "", "Path to YAML content extension pack")
	cmd.Flags().String("export", "", "Export full run JSON to file")
	cmd.Flags().String("db", "", "Archive the run in a SQLite database at this path")
	cmd.Flags().Bool("random-map", false, "Generate the arena map from the seed instead of the built-in grid")
	cmd.Flags().Bool("quiet", false, "Suppress live narrative output")
	return cmd
}
