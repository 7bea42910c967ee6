package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/strider/config"
	"github.com/plus3/strider/debugui"
	debugui_ebiten "github.com/plus3/strider/debugui/ebiten"
	input_ebiten "github.com/plus3/strider/input/ebiten"
	"github.com/plus3/strider/logger"
	"github.com/plus3/strider/sim"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
)

func main() {
	configPath := flag.String("config", "", "YAML config overlaid on the defaults.")
	logLevel := flag.String("log-level", "", "Override logging.level from the config.")
	showInspector := flag.Bool("inspector", true, "Show the Dear ImGui inspector windows.")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}
	logger.Init(cfg.Logging)

	keys, err := input_ebiten.ParseKeyMap(cfg.Input.Bindings)
	if err != nil {
		log.Fatalf("Failed to parse input bindings: %v", err)
	}
	device := input_ebiten.NewBackend(keys)

	ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	ebiten.SetWindowTitle("strider")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Simulation.TickRate)

	var imguiBackend *debugui_ebiten.ImguiBackend
	var overlay *debugui.Overlay
	if *showInspector {
		imguiBackend = debugui_ebiten.NewImguiBackend("strider", ScreenWidth, ScreenHeight)
		overlay = debugui.NewOverlay()
	}

	scene, err := sim.New(cfg, &guardedBackend{device: device, overlay: overlay}, logger.L())
	if err != nil {
		log.Fatalf("Failed to build scene: %v", err)
	}
	defer scene.Close()

	if overlay != nil {
		overlay.Add(debugui.ControllerInspector(scene.Controller))
		overlay.Add(debugui.ConfigInspector(cfg.Player))
		overlay.Add(debugui.CameraInspector(scene.Camera))
		overlay.Add(debugui.AnimatorInspector(scene.Params))
		overlay.Add(debugui.NewPerformanceStats(120).Item(scene.Scheduler))
		scene.Scheduler.RegisterNamed("debugui", overlay)
	}

	logger.L().Info("scene ready",
		"tick_rate", cfg.Simulation.TickRate,
		"camera", scene.Camera.State(),
		"climb_model", cfg.Player.Climb.Model,
		"colliders", scene.World.Len())

	game := &Game{
		scene:        scene,
		device:       device,
		imguiBackend: imguiBackend,
		view:         newView(),
	}
	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("Game exited: %v", err)
	}
}
