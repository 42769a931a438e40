package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/touch-breakout/internal/platform/tui"
	"github.com/vovakirdan/touch-breakout/internal/storage"
)

var (
	flagLimit     int
	flagOlderThan time.Duration
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Browse recorded sessions",
	Long: `Open the interactive session journal. Every game is recorded with its
outcome and the events it produced: score changes, lost lives, destroyed
bricks, game over, and cleared boards.

Examples:
  breakout journal
  breakout journal list --limit 5
  breakout journal show 5f0c2a1e-...
  breakout journal prune --older-than 720h`,
	Run: runJournal,
}

var journalListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print recent sessions",
	Run:   runJournalList,
}

var journalShowCmd = &cobra.Command{
	Use:   "show <session-id>",
	Short: "Print the events of one session",
	Args:  cobra.ExactArgs(1),
	Run:   runJournalShow,
}

var journalPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete finished sessions older than a duration",
	Run:   runJournalPrune,
}

func init() {
	journalListCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of sessions to print")
	journalPruneCmd.Flags().DurationVar(&flagOlderThan, "older-than", 30*24*time.Hour, "Age of sessions to delete")

	journalCmd.AddCommand(journalListCmd)
	journalCmd.AddCommand(journalShowCmd)
	journalCmd.AddCommand(journalPruneCmd)
}

// mustOpenStore opens the journal or exits.
func mustOpenStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening journal: %v\n", err)
		os.Exit(1)
	}
	return store
}

func runJournal(_ *cobra.Command, _ []string) {
	store := mustOpenStore()

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	err := tui.RunJournal(store, width, height)
	store.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runJournalList(_ *cobra.Command, _ []string) {
	store := mustOpenStore()
	defer store.Close()

	sessions, err := store.RecentSessions(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading journal: %v\n", err)
		os.Exit(1)
	}

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Run 'breakout play' to start the journal!")
		return
	}

	// Print header
	fmt.Printf("  %-36s  %-16s  %-9s  %-10s  %5s  %6s\n", "Session", "Started", "Source", "Outcome", "Score", "Bricks")
	fmt.Printf("  %-36s  %-16s  %-9s  %-10s  %5s  %6s\n", "-------", "-------", "------", "-------", "-----", "------")

	for _, s := range sessions {
		fmt.Printf("  %-36s  %-16s  %-9s  %-10s  %5d  %6d\n",
			s.ID, s.StartedAt.Format("2006-01-02 15:04"), s.Source, s.Outcome, s.FinalScore, s.BricksDestroyed)
	}

	if stats, err := store.GetStats(); err == nil {
		fmt.Println()
		fmt.Printf("Total: %d sessions, %d game over, %d cleared, %d abandoned, %d bricks destroyed\n",
			stats.Sessions, stats.GamesOver, stats.BoardsCleared, stats.Abandoned, stats.BricksDestroyed)
	}
}

func runJournalShow(_ *cobra.Command, args []string) {
	store := mustOpenStore()
	defer store.Close()

	session, err := store.SessionByID(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading journal: %v\n", err)
		os.Exit(1)
	}
	if session == nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error: no session %q\n", args[0])
		os.Exit(1)
	}

	events, err := store.SessionEvents(session.ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading journal: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Session %s (%s, %dx%d grid, %d lives)\n", session.ID, session.Source, session.Rows, session.Cols, session.Lives)
	fmt.Printf("Outcome: %s, score %d, %d bricks\n", session.Outcome, session.FinalScore, session.BricksDestroyed)
	fmt.Println()

	fmt.Printf("  %-5s  %-8s  %-16s  %s\n", "#", "Tick", "Event", "Detail")
	fmt.Printf("  %-5s  %-8s  %-16s  %s\n", "-", "----", "-----", "------")
	for _, ev := range events {
		fmt.Printf("  %-5d  %-8d  %-16s  %s\n", ev.Seq, ev.Tick, ev.Kind, describeEvent(ev))
	}
}

func describeEvent(ev storage.EventRecord) string {
	switch ev.Kind {
	case storage.KindBrickDestroyed:
		return fmt.Sprintf("row %d col %d", ev.Row, ev.Col)
	case storage.KindLifeLost:
		return fmt.Sprintf("%d lives left", ev.Value)
	case storage.KindGameOver:
		return ""
	default:
		return fmt.Sprintf("score %d", ev.Value)
	}
}

func runJournalPrune(_ *cobra.Command, _ []string) {
	store := mustOpenStore()
	defer store.Close()

	n, err := store.Prune(time.Now().Add(-flagOlderThan))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error pruning journal: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Deleted %d sessions.\n", n)
}
