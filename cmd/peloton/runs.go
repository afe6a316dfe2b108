package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pico-peloton/internal/platform/tui"
	"github.com/vovakirdan/pico-peloton/internal/storage"
)

var (
	flagLimit int
	flagMine  bool
	flagPlain bool
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show the run history",
	Long: `Display the best recorded rides.

On a terminal an interactive table is shown; use --plain for text output.

Examples:
  peloton runs
  peloton runs --plain --limit 5
  peloton runs --mine --plain`,
	Args: cobra.NoArgs,
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	runsCmd.Flags().BoolVar(&flagMine, "mine", false, "Only show your own rides, latest first")
	runsCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain table instead of the interactive view")
}

func runRuns(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run history: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	fd := int(os.Stdout.Fd())
	if !flagPlain && term.IsTerminal(fd) {
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(fd); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, playerName(), width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	var runs []storage.Run
	title := "Top Rides"
	if flagMine {
		title = "My Rides - " + playerName()
		runs, err = store.PlayerRuns(playerName(), flagLimit)
	} else {
		runs, err = store.TopRuns(flagLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No rides recorded yet.")
		fmt.Println()
		fmt.Println("Run 'peloton run' to set the first score!")
		return
	}

	fmt.Printf("  %-4s  %-12s  %-8s  %-8s  %-10s  %s\n", "Rank", "Player", "Score", "Ticks", "Frontend", "Date")
	fmt.Printf("  %-4s  %-12s  %-8s  %-8s  %-10s  %s\n", "----", "------", "-----", "-----", "--------", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-12s  %-8d  %-8d  %-10s  %s\n",
			i+1, r.Player, r.Score, r.Ticks, r.Frontend, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if best, err := store.BestScore(); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
}
