package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

var (
	serverURL       = flag.String("server", "ws://localhost:8081/ingest", "Ingest server WebSocket URL")
	projectID       = flag.String("project", "", "Project ID to report production for (required)")
	interval        = flag.Duration("interval", 5*time.Second, "Delay between readings")
	baseGeneration  = flag.Float64("generation", 45.0, "Baseline daily generation (kWh)")
	baseConsumption = flag.Float64("consumption", 30.0, "Baseline daily consumption (kWh)")
	anomalyRate     = flag.Float64("anomaly-rate", 0.1, "Fraction of readings with a degraded or failed system")
	verbose         = flag.Bool("verbose", false, "Enable verbose logging")
)

func main() {
	flag.Parse()

	if *projectID == "" {
		fmt.Fprintln(os.Stderr, "missing required -project flag")
		flag.Usage()
		os.Exit(2)
	}

	var logger *zap.Logger
	var err error
	if *verbose {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	config := &SimulatorConfig{
		ServerURL:          *serverURL,
		ProjectID:          *projectID,
		Interval:           *interval,
		BaseGenerationKwh:  *baseGeneration,
		BaseConsumptionKwh: *baseConsumption,
		AnomalyRate:        *anomalyRate,
	}

	simulator := NewSimulator(config, logger)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		fmt.Println("\nShutting down simulator...")
		simulator.Stop()
		os.Exit(0)
	}()

	if err := simulator.Connect(); err != nil {
		logger.Fatal("Failed to connect to server", zap.Error(err))
	}

	fmt.Printf("Solar gateway simulator started\n")
	fmt.Printf("  Project: %s\n", *projectID)
	fmt.Printf("  Server:  %s\n", *serverURL)
	fmt.Println("\nPress Ctrl+C to stop")

	select {}
}
