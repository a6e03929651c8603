package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

const configFile = "config.json"

// stop reasons reported at the end of a run
const (
	reasonExtinct     = "extinction"
	reasonMaxGen      = "generation limit"
	reasonInterrupted = "interrupted"
)

// loadConfig reads the config file, falling back to defaults, then applies env overrides
func loadConfig(filename string) (utils.Config, error) {
	config, err := utils.LoadConfig(filename)
	if err != nil {
		log.Printf("Using default configuration (%v)", err)
		config = utils.DefaultConfig()
	}
	if err = config.ApplyEnv(); err != nil {
		return config, err
	}
	if err = config.Validate(); err != nil {
		return config, err
	}
	return config, nil
}

// initializeGame builds the simulation and seeds its initial live cells
func initializeGame(config utils.Config) (*model.Simulation, error) {
	sim, err := model.NewSimulation(config.Rows, config.Cols)
	if err != nil {
		return nil, err
	}
	if err = sim.SetCells(config.LiveCells...); err != nil {
		return nil, errors.Wrap(err, "[initializeGame] failed to seed live cells")
	}
	return sim, nil
}

// displayFrame prints the state after a step
func displayFrame(w io.Writer, sim *model.Simulation, renderer *model.TerminalRenderer, clearScreen bool) {
	if clearScreen {
		renderer.Clear(w)
	}
	fmt.Fprintf(w, "Generation: %d\n", sim.Generation())
	fmt.Fprint(w, sim.String())
	fmt.Fprintf(w, "Any cell alive? %v\n\n", sim.IsAnyCellAlive())
}

// runGame steps the simulation until it dies out, hits the generation limit
// or ctx is cancelled. It returns the reason it stopped.
func runGame(
	ctx context.Context,
	w io.Writer,
	config utils.Config,
	sim *model.Simulation,
	stats *utils.Stats,
) string {
	var (
		renderer      = model.NewTerminalRenderer()
		lastFrameTime = time.Now()
	)

	for range config.MaxGenerations {
		select {
		case <-ctx.Done():
			return reasonInterrupted
		default:
		}

		frameStart := time.Now()
		sim.Step()
		stats.Update(sim.Generation(), sim.Population(), frameStart.Sub(lastFrameTime))
		lastFrameTime = frameStart

		displayFrame(w, sim, renderer, config.ClearScreen)

		if !sim.IsAnyCellAlive() {
			return reasonExtinct
		}

		if config.FrameRate > 0 {
			select {
			case <-ctx.Done():
				return reasonInterrupted
			case <-time.After(config.FrameRate):
			}
		}
	}
	return reasonMaxGen
}

// logFinalStats reports how the run ended
func logFinalStats(reason string, stats *utils.Stats) {
	log.Printf("Stopped after %d generations (%s) in %.1fs",
		stats.TotalGenerations, reason, stats.Runtime().Seconds())
	log.Printf("Average: %.1f gen/sec, %.1f avg population, %d peak population",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.PeakPopulation)
}
