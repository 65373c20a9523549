package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-interval/config"
	"github.com/andareed/siftly-interval/logging"
	"github.com/andareed/siftly-interval/source"
)

// Version is overridden at build time with -ldflags "-X main.Version=...".
var Version = "dev"

var logFile = flag.String("debug", "", "Write Debug Logs to file")

func main() {
	versionFlag := flag.Bool("version", false, "print version and exit")
	configFlag := flag.String("config", "", "chart config file (YAML)")
	queryFlag := flag.String("query", "", "SQL query for .db/.sqlite sources")

	flag.Parse()

	// --- EARLY EXIT ---
	if *versionFlag {
		fmt.Println("Version:", Version)
		os.Exit(0)
	}

	cleanup, err := logging.SetupLogging(*logFile)
	if err != nil {
		log.Fatalf("Failed to setup logging %v", err)
	}
	defer cleanup()

	log.Println("siftly-interval: Started")

	args := flag.Args()
	if len(args) < 1 {
		fmt.Println("Usage: sfinterval [--debug debug.log] [--config chart.yaml] [--query SQL] <file.csv|file.json|file.db>")
		os.Exit(1)
	}
	inputPath := args[0]

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	query := *queryFlag
	if query == "" {
		query = cfg.Source.Query
	}

	m, err := loadModel(cfg, inputPath, query)
	if err != nil {
		log.Fatalf("failed to load %q: %v", inputPath, err)
	}

	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
	if err != nil {
		log.Printf("Tea program error: %v", err)
		fmt.Println("Error:", err)
	}
}

func loadConfig(path string) (config.File, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func loadModel(cfg config.File, path, query string) (*model, error) {
	m := newModel(cfg, path, query, nil)
	rows, err := source.LoadPattern(context.Background(), path, m.schema(), query)
	if err != nil {
		return nil, err
	}
	logging.Infof("loaded %d rows from %s", len(rows), path)
	m.rows = rows
	return m, nil
}
