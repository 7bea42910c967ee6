package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/plus3/strider/config"
	"github.com/plus3/strider/logger"
)

func main() {
	configPath := flag.String("config", "", "YAML config overlaid on the defaults.")
	scenario := flag.String("scenario", "all", "Scenario to run, or all.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	cfg := config.Default()
	cfg.Logging.Level = "warn"
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	logger.Init(cfg.Logging)

	scenarios := FindScenarios(*scenario)
	if len(scenarios) == 0 {
		log.Fatalf("Unknown scenario %q", *scenario)
	}

	report := &Report{
		ConfigPath:     *configPath,
		TickRate:       cfg.Simulation.TickRate,
		ClimbModel:     string(cfg.Player.Climb.Model),
		Camera:         cfg.Camera.Initial,
		GCPauseMetrics: *gcPauseMetrics,
	}

	runtime.ReadMemStats(&report.MemStatsStart)
	startTime := time.Now()

	for _, s := range scenarios {
		log.Printf("Running scenario %s (%d ticks)...\n", s.Name, len(s.Frames))
		res, err := Run(cfg, s, logger.L())
		if err != nil {
			log.Fatalf("Scenario %s failed: %v", s.Name, err)
		}
		report.Results = append(report.Results, res)
	}

	report.TotalTime = time.Since(startTime)
	runtime.ReadMemStats(&report.MemStatsEnd)

	fmt.Println("\n\n--- Scenario Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}
