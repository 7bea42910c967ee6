package main

import (
	"log/slog"
	"time"

	"github.com/plus3/strider/config"
	"github.com/plus3/strider/input"
	"github.com/plus3/strider/locomotion"
	"github.com/plus3/strider/sim"
)

// Result summarises one scenario run.
type Result struct {
	Name       string
	Ticks      int
	SimTime    float64
	Stance     locomotion.Stance
	Camera     string
	Position   [3]float64
	Distance   float64
	MaxHeight  float64
	Destroyed  int
	MaxCombo   int
	StanceTime map[string]float64
	UpdateTime Stats
}

// Run plays scenario on a fresh scene built from cfg.
func Run(cfg config.Config, scenario Scenario, logger *slog.Logger) (Result, error) {
	scene, err := sim.New(cfg, input.NewScript(scenario.Frames...), logger.With("scenario", scenario.Name))
	if err != nil {
		return Result{}, err
	}
	defer scene.Close()
	scene.Body.SetPosition(scenario.Spawn)

	res := Result{
		Name:       scenario.Name,
		StanceTime: make(map[string]float64),
		UpdateTime: Stats{Samples: make([]time.Duration, 0, len(scenario.Frames))},
	}
	colliders := scene.World.Len()
	start := scene.Body.Position()
	dt := cfg.TickInterval()

	for range scenario.Frames {
		updateStart := time.Now()
		scene.Step()
		res.UpdateTime.Samples = append(res.UpdateTime.Samples, time.Since(updateStart))

		state := scene.Controller.State()
		res.StanceTime[state.Stance.String()] += dt
		res.MaxHeight = max(res.MaxHeight, scene.Body.Position().Y)
		res.MaxCombo = max(res.MaxCombo, state.Combo)
	}
	res.UpdateTime.Finalize()

	end := scene.Body.Position()
	res.Ticks = len(scenario.Frames)
	res.SimTime = scene.Elapsed()
	res.Stance = scene.Controller.Stance()
	res.Camera = scene.Camera.State().String()
	res.Position = [3]float64{end.X, end.Y, end.Z}
	res.Distance = end.Sub(start).Planar().Len()
	res.Destroyed = colliders - scene.World.Len()
	return res, nil
}
