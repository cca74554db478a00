// Command anvil is the engine's process entry point (spec.md §6): it
// derives the project root from argv[0], loads engine.config, and wires
// the framework layers in this order: logger -> frame arena -> scheduler
// -> input system -> ECS world -> (optional) project load, before
// handing off to startRenderer. No material, asset, or profiler layer is
// created here. Window creation, surface
// acquisition, and the raw Vulkan device/swapchain bring-up are the OS
// and backend collaborators spec.md §1 places out of scope; this binary
// stops at the boundary and calls startRenderer, a named hook those
// layers would implement.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/NOT-REAL-GAMES/anvil/arena"
	"github.com/NOT-REAL-GAMES/anvil/ecs"
	"github.com/NOT-REAL-GAMES/anvil/engineconfig"
	"github.com/NOT-REAL-GAMES/anvil/input"
	"github.com/NOT-REAL-GAMES/anvil/logx"
	"github.com/NOT-REAL-GAMES/anvil/project"
	"github.com/NOT-REAL-GAMES/anvil/scheduler"
)

func main() {
	projectName := flag.String("project", "", "project directory name under <root>/projects/")
	flag.Parse()

	root := project.RootFromExecutable(os.Args[0])

	cfg, result := engineconfig.Load(filepath.Join(root, "engine.config"))
	if result != engineconfig.Success {
		log.Printf("anvil: engine.config load result %v, using defaults", result)
		cfg = engineconfig.Default()
	}

	logger := logx.New(filepath.Join(root, "engine.log"), 256, logx.Info|logx.Low|logx.Medium|logx.High|logx.Assert)
	defer logger.Flush()

	frameArena, err := arena.New("frame", arena.DefaultReserve)
	if err != nil {
		logger.Log(logx.High, "arena init failed: %v", err)
		os.Exit(1)
	}
	defer frameArena.Free()

	pool := scheduler.New()
	defer pool.Shutdown()

	inputSystem := input.NewSystem()

	world := ecs.NewWorld()

	if *projectName != "" {
		layout := project.Find(root, *projectName)
		channel := inputSystem.CreateChannel(*projectName, 0)
		if err := project.LoadInputJSON(layout.InputPath(), channel); err != nil {
			logger.Log(logx.Medium, "input.json load failed: %v", err)
		}
		scene, err := project.LoadScene(layout.ScenePath())
		if err != nil {
			logger.Log(logx.Medium, "scene.json load failed: %v", err)
		} else if _, _, err := scene.Instantiate(world); err != nil {
			logger.Log(logx.Medium, "scene instantiate failed: %v", err)
		}
	}

	fmt.Printf("anvil: root=%s window=%dx%d fullscreen=%v\n", root, cfg.WindowSizeX, cfg.WindowSizeY, cfg.FullScreen)

	startRenderer(cfg, logger)
}

// startRenderer is the named boundary to the window/surface/device
// bring-up spec.md §1 places below the render graph and out of this
// module's scope. A full engine binary supplies this from its OS layer;
// here it only logs the handoff point so cmd/anvil remains buildable and
// testable without a display.
func startRenderer(cfg engineconfig.Config, logger *logx.Logger) {
	logger.Log(logx.Info, "renderer handoff: window %dx%d (surface/device bring-up is an OS-layer collaborator)", cfg.WindowSizeX, cfg.WindowSizeY)
}
