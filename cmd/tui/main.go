package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jaekwang-park/tasklist/internal/client"
	"github.com/jaekwang-park/tasklist/internal/config"
	"github.com/jaekwang-park/tasklist/internal/tui"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	api := client.New(cfg.APIBaseURL)

	p := tea.NewProgram(tui.New(api), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
