package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/joshuapare/binfield/internal/mmfile"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	args := os.Args[1:]

	if len(args) < 1 || args[0] == "--help" || args[0] == "-h" {
		printUsage()
		if len(args) < 1 {
			os.Exit(1)
		}
		os.Exit(0)
	}

	if args[0] == "--version" || args[0] == "-v" {
		fmt.Printf("fieldview %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built: %s\n", date)
		os.Exit(0)
	}

	path := args[0]
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot open %s: %v\n", path, err)
		os.Exit(1)
	}
	defer cleanup()

	if len(data) == 0 {
		fmt.Fprintf(os.Stderr, "Error: %s is empty\n", path)
		os.Exit(1)
	}

	p := tea.NewProgram(
		NewModel(path, data),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`fieldview - interactive hex viewer with field decoding

Usage:
  fieldview <file>

Keys:
  h/l, left/right    move cursor one byte
  j/k, down/up       move cursor one row
  pgup/pgdn          move one screen
  g/G                jump to start/end
  o                  toggle byte order of the decode panel
  q, ctrl+c          quit`)
}
