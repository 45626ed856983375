package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/appengine-ltd/sail-it/internal/config"
	"github.com/appengine-ltd/sail-it/internal/game"
	"github.com/appengine-ltd/sail-it/internal/logging"
	"github.com/appengine-ltd/sail-it/internal/recorder"
	"github.com/appengine-ltd/sail-it/internal/runner"
)

// version, commit, date are injected at build time (see .goreleaser.yaml).
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var (
		showVersion  bool
		configDir    string
		scenarioID   string
		scenarioFile string
		seed         int64
		scriptPath   string
		pace         bool
		durationSecs uint64
	)

	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.StringVar(&configDir, "config", ".", "directory holding sail-it.yaml")
	flag.StringVar(&scenarioID, "scenario", "", "scenario id: training_lagoon, trade_winds, storm_gauntlet, or random")
	flag.StringVar(&scenarioFile, "scenario-file", "", "YAML scenario file overriding the built-in catalog")
	flag.Int64Var(&seed, "seed", 0, "world seed, 0 picks one from the clock")
	flag.StringVar(&scriptPath, "script", "", "voyage script to run headless instead of the console")
	flag.BoolVar(&pace, "pace", false, "hold scripted runs to real time")
	flag.Uint64Var(&durationSecs, "duration", 0, "scripted run length in seconds, 0 means ten minutes")
	flag.Parse()

	if showVersion {
		fmt.Printf("Sail It %s (%s) %s\n", version, commit, date)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, configDir, scenarioID, scenarioFile, seed, scriptPath, pace, durationSecs); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configDir, scenarioID, scenarioFile string, seed int64, scriptPath string, pace bool, durationSecs uint64) error {
	if err := config.Load(configDir); err != nil {
		return err
	}

	log := logging.New(config.GetString("logLevel"))

	runCfg := game.RunConfig{
		ScenarioID:   game.ScenarioID(config.GetString("run.scenario")),
		Seed:         config.GetInt64("run.seed"),
		ScenarioFile: scenarioFile,
	}
	if scenarioID != "" {
		runCfg.ScenarioID = game.ScenarioID(scenarioID)
	}
	if seed != 0 {
		runCfg.Seed = seed
	}

	var rec *recorder.Recorder
	if recCfg := config.GetRecorderConfig(); recCfg.Enabled {
		mgr := recorder.NewManager(log)
		if err := mgr.Connect(config.GetDBConfig()); err != nil {
			return fmt.Errorf("recorder storage: %w", err)
		}
		defer mgr.Close()
		if err := mgr.Setup(); err != nil {
			return err
		}

		var sink *recorder.InfluxSink
		if influxCfg := config.GetInfluxConfig(); influxCfg.Enabled {
			s, err := recorder.NewInfluxSink(ctx, influxCfg, log)
			if err != nil {
				log.Warn().Err(err).Msg("running without influx telemetry")
			} else {
				sink = s
			}
		}

		r, err := recorder.New(mgr, recCfg, sink, log)
		if err != nil {
			return err
		}
		rec = r
	}

	opts := runner.Options{
		Run:          runCfg,
		PaceRealTime: pace || config.GetBool("run.pace"),
		MaxTicks:     durationSecs * game.TicksPerSecond,
		Recorder:     rec,
		Log:          log,
	}

	if scriptPath != "" {
		orders, err := loadScript(scriptPath)
		if err != nil {
			return err
		}
		opts.Script = orders

		r, err := runner.New(opts)
		if err != nil {
			return err
		}
		snap, err := r.Run(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("Voyage ended at tick %d with %d funds and %.0f kg aboard.\n",
			snap.Tick, snap.Funds, snap.CargoWeightKg)
		return nil
	}

	r, err := runner.New(opts)
	if err != nil {
		return err
	}
	console := runner.NewConsole(r, os.Stdin, os.Stdout)
	return console.Run(ctx)
}

func loadScript(path string) ([]runner.ScriptedOrder, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening script: %w", err)
	}
	defer f.Close()

	return runner.ParseScript(f)
}
