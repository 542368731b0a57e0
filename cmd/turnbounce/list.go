package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/turnbounce/internal/registry"
	"github.com/vovakirdan/turnbounce/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the game variants",
	Long:  `Shows each variant's ID, what sets it apart, and its best run so far.`,
	RunE:  runList,
}

func runList(_ *cobra.Command, _ []string) error {
	var best map[string]*storage.GameStats
	if store := openStore(); store != nil {
		defer store.Close()
		best, _ = store.GetAllGamesStats()
	}

	rows := variantRows(registry.List(), best)
	if len(rows) == 0 {
		fmt.Println("No variants registered.")
		return nil
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("ID", "Variant", "About", "Best").
		Rows(rows...)
	fmt.Println(t.Render())
	fmt.Println("Run 'turnbounce play <id>' to play.")
	return nil
}

// variantRows builds one table row per variant: ID, title, description
// and best run. Variants without runs show a dash.
func variantRows(games []registry.GameInfo, best map[string]*storage.GameStats) [][]string {
	rows := make([][]string, 0, len(games))
	for _, g := range games {
		about := ""
		if game, err := registry.Create(g.ID); err == nil {
			if d, ok := game.(interface{ Description() string }); ok {
				about = d.Description()
			}
		}
		record := "-"
		if st, ok := best[g.ID]; ok && st.GamesCount > 0 {
			record = fmt.Sprintf("%d bounces, level %d", st.HighScore, st.BestLevel)
		}
		rows = append(rows, []string{g.ID, g.Title, about, record})
	}
	return rows
}
