package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/kestrelworks/laneview/pkg/history"
	"github.com/kestrelworks/laneview/pkg/loader"
	"github.com/kestrelworks/laneview/pkg/model"
	"github.com/kestrelworks/laneview/pkg/ui"
	"github.com/kestrelworks/laneview/pkg/watcher"
)

const version = "0.1.0"

func main() {
	path := flag.String("path", "", "Workspace path (default: current directory)")
	sortFlag := flag.String("sort", "alphabetical", "Initial sort mode: alphabetical, created, or updated")
	group := flag.Bool("group", false, "Group lanes by scope")
	fuzzyFlag := flag.Bool("fuzzy", false, "Use fuzzy matching instead of prefix/substring search")
	noWatch := flag.Bool("no-watch", false, "Disable live reload of the lanes file")
	showHelp := flag.Bool("help", false, "Show help")
	showVersion := flag.Bool("version", false, "Show version")
	flag.Parse()

	if *showHelp {
		fmt.Println("Usage: lv [options]")
		fmt.Println("\nA lane picker for component workspaces.")
		flag.PrintDefaults()
		os.Exit(0)
	}

	if *showVersion {
		fmt.Println("lv version " + version)
		os.Exit(0)
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "lv is interactive and needs a terminal")
		os.Exit(1)
	}

	sortMode, err := model.ParseSortMode(*sortFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	workspacePath := *path
	if workspacePath == "" {
		workspacePath, err = os.Getwd()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	result, err := loader.Load(workspacePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading lanes: %v\n", err)
		fmt.Fprintln(os.Stderr, "Make sure the workspace has a .workspace/lanes.yaml file.")
		os.Exit(1)
	}

	// History is a convenience; run without it if the DB cannot open.
	var recorder ui.SelectionRecorder
	hdb, err := history.OpenDB(filepath.Join(workspacePath, ".workspace", "history.db"))
	if err == nil {
		defer hdb.Close()
		recorder = hdb
		if result.Workspace.Selected == "" {
			if recent, err := hdb.MostRecent(); err == nil && recent != nil {
				result.Workspace.Selected = recent.String()
			}
		}
	}

	m := ui.NewModel(ui.AppConfig{
		Workspace: result.Workspace,
		Options: model.Options{
			SortMode:    sortMode,
			GroupScopes: *group,
			Fuzzy:       *fuzzyFlag,
			ScopeIcons:  result.Icons,
		},
		Recorder:  recorder,
		Component: result.Component,
	})

	p := tea.NewProgram(m, tea.WithAltScreen())

	if !*noWatch {
		lanesPath := filepath.Join(workspacePath, loader.LanesFileName)
		w, err := watcher.New(lanesPath, 0, func() {
			if reloaded, err := loader.Load(workspacePath); err == nil {
				p.Send(ui.LanesReloadedMsg{Workspace: reloaded.Workspace})
			}
		})
		if err == nil {
			if err := w.Start(); err == nil {
				defer w.Close()
			}
		}
	}

	final, err := p.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running lane picker: %v\n", err)
		os.Exit(1)
	}

	// Print the confirmed lane ref so the tool composes in pipelines.
	if fm, ok := final.(ui.Model); ok {
		if choice := fm.Choice(); choice != nil {
			fmt.Println(choice.ID.String())
		}
	}
}
