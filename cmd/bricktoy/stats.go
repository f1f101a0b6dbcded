package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bricktoy/internal/games/bricktoy"
	"github.com/vovakirdan/bricktoy/internal/platform/tui"
	"github.com/vovakirdan/bricktoy/internal/storage"
)

var (
	flagInteractive bool
	flagLimit       int
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show recorded runs",
	Long: `Display totals and the most recent runs.

Examples:
  bricktoy stats
  bricktoy stats --limit 25
  bricktoy stats -i`,
	Args: cobra.NoArgs,
	Run:  runStats,
}

func init() {
	statsCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse runs in an interactive table")
	statsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of recent runs to list")
}

func runStats(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunRunsBrowser(store, bricktoy.ID, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	stats, err := store.Stats(bricktoy.ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	if stats.Runs == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'bricktoy play' to record one!")
		return
	}

	fmt.Printf("Runs:        %d\n", stats.Runs)
	fmt.Printf("Ticks:       %d\n", stats.TotalTicks)
	fmt.Printf("Bounces:     %d (best %d, avg %.1f)\n", stats.TotalCollisions, stats.BestCollisions, stats.AvgCollisions)
	fmt.Printf("Play time:   %s\n", stats.TotalDuration.Round(time.Second))
	fmt.Printf("Last played: %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	fmt.Println()

	runs, err := store.RecentRuns(bricktoy.ID, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("  %-8s  %-8s  %-8s  %s\n", "ID", "Bounces", "Ticks", "Date")
	fmt.Printf("  %-8s  %-8s  %-8s  %s\n", "--", "-------", "-----", "----")
	for _, r := range runs {
		id := r.ID
		if len(id) > 8 {
			id = id[:8]
		}
		fmt.Printf("  %-8s  %-8d  %-8d  %s\n", id, r.Collisions, r.Ticks, r.CreatedAt.Format("2006-01-02 15:04"))
	}
}
