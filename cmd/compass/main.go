package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"compass/internal/adapters/sqlite"
	"compass/internal/adapters/tui"
	"compass/internal/config"
)

func main() {
	store := sqlite.NewStore()
	if err := store.Open(config.DataPath()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	app := tui.NewApp(store)

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
