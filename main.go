package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/scadasystems/pluto-grid/internal/config"
	"github.com/scadasystems/pluto-grid/internal/data"
	"github.com/scadasystems/pluto-grid/internal/eventbus"
	"github.com/scadasystems/pluto-grid/internal/grid"
	"github.com/scadasystems/pluto-grid/internal/ui"
)

func main() {
	var pageSize int
	var moveStep int
	flag.IntVar(&pageSize, "page-size", 0, "Rows per page (overrides config)")
	flag.IntVar(&moveStep, "move-step", 0, "Pages moved by previous/next (overrides config)")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Println("usage: plutogrid [flags] <file.csv>")
		os.Exit(1)
	}
	csvPath := flag.Arg(0)

	// Set up logging
	logFile, err := os.OpenFile("plutogrid.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Load configuration, then apply flag overrides
	configSvc := config.NewConfigService()
	cfg, err := configSvc.Load()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	if pageSize > 0 {
		cfg.PageSize = pageSize
	}
	if moveStep != 0 {
		cfg.MoveStep = moveStep
	}
	if err := config.Validate(cfg); err != nil {
		fmt.Printf("Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	// Create event bus
	bus := eventbus.New()

	// Load the dataset up front so a bad file fails before the screen clears
	dataset, err := data.LoadCSV(csvPath)
	if err != nil {
		fmt.Printf("Error loading data: %v\n", err)
		os.Exit(1)
	}

	gridState := grid.NewState(bus, cfg.PageSize, cfg.UISettings.FooterHeight)

	// Create UI model
	uiModel, err := ui.NewModel(bus, cfg, gridState)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen())

	// Set up event forwarding to UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Println("Event channel full, dropping event")
		}
	}
	bus.Subscribe(eventbus.EventDatasetLoaded, forward)
	bus.Subscribe(eventbus.EventDataChanged, forward)
	bus.Subscribe(eventbus.EventError, forward)

	// Start forwarding events to UI in background
	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	gridState.SetDataset(dataset)

	// Run the UI
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}

	close(eventChan)
}
