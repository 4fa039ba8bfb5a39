package main

import (
	"context"
	"flag"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/sceneloop/internal/application/game"
	"github.com/younwookim/sceneloop/internal/application/loop"
	"github.com/younwookim/sceneloop/internal/application/trace"
	"github.com/younwookim/sceneloop/internal/infrastructure/config"
)

func main() {
	// Parse command line flags
	configDir := flag.String("config", "", "Load app.json from this directory instead of the embedded config")
	traceFlag := flag.String("trace", "", "Record loop events to file (e.g., -trace trace.json)")
	headless := flag.Bool("headless", false, "Run without a window")
	frames := flag.Int("frames", 300, "Frames to run in headless mode (0 = until interrupted)")
	inspectFlag := flag.String("inspect", "", "Print a summary of a saved trace and exit")
	flag.Parse()

	if *inspectFlag != "" {
		if err := inspectTrace(*inspectFlag, os.Stdout); err != nil {
			log.Fatalf("Failed to inspect trace: %v", err)
		}
		return
	}

	loader, err := newLoader(*configDir)
	if err != nil {
		log.Fatalf("Failed to get config subfs: %v", err)
	}
	cfg, err := loader.LoadApp()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	var recorder *trace.Recorder
	if *traceFlag != "" {
		recorder = trace.NewRecorder()
		log.Printf("Tracing enabled: %s", *traceFlag)
	}

	if *headless {
		tk := loop.NewTicker(cfg.Display.Framerate)
		app := NewApp(cfg, tk, recorder)
		if err := app.Start(); err != nil {
			log.Fatal(err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		runErr := app.RunHeadless(ctx, tk, *frames)
		app.SaveTrace(*traceFlag)
		if runErr != nil {
			log.Fatal(runErr)
		}
		return
	}

	queue := &loop.Queue{}
	app := NewApp(cfg, queue, recorder)
	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
	g := game.New(queue, app.manager, app.surface)

	// Set up ebiten
	ebiten.SetWindowSize(cfg.Display.ScreenWidth*cfg.Display.Scale,
		cfg.Display.ScreenHeight*cfg.Display.Scale)
	ebiten.SetWindowTitle(cfg.Display.Title)
	ebiten.SetTPS(cfg.Display.Framerate)

	runErr := ebiten.RunGame(g)
	app.SaveTrace(*traceFlag)
	if runErr != nil {
		log.Fatal(runErr)
	}
}

func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, err
	}
	return config.NewFSLoader(fsys, "configs"), nil
}
