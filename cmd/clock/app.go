package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/fogleman/gg"

	"github.com/younwookim/sceneloop/internal/application/loop"
	"github.com/younwookim/sceneloop/internal/application/scene"
	"github.com/younwookim/sceneloop/internal/application/trace"
	"github.com/younwookim/sceneloop/internal/domain/clock"
	"github.com/younwookim/sceneloop/internal/infrastructure/config"
)

// errFramesDone ends a headless run once the requested frame count is reached
var errFramesDone = errors.New("frame limit reached")

// App wires the scene manager to a surface and a scheduler
type App struct {
	cfg      *config.AppConfig
	surface  *gg.Context
	ctrl     *loop.Controller
	manager  *scene.Manager[*gg.Context]
	recorder *trace.Recorder
}

// NewApp creates the surface sized from cfg and registers the scenes.
// recorder may be nil.
func NewApp(cfg *config.AppConfig, sched loop.Scheduler, recorder *trace.Recorder) *App {
	surface := gg.NewContext(cfg.Display.ScreenWidth, cfg.Display.ScreenHeight)
	ctrl := loop.NewController(sched)

	opts := []scene.Option[*gg.Context]{}
	if recorder != nil {
		opts = append(opts, scene.WithTracer[*gg.Context](recorder))
	}
	manager := scene.NewManager(surface, ctrl, opts...)
	clock.New().Register(manager)

	return &App{
		cfg:      cfg,
		surface:  surface,
		ctrl:     ctrl,
		manager:  manager,
		recorder: recorder,
	}
}

// Start activates the configured start scene
func (a *App) Start() error {
	if err := a.manager.Activate(a.cfg.Start.Scene, scene.Params(a.cfg.Start.Params)); err != nil {
		return fmt.Errorf("failed to start: %w", err)
	}
	return nil
}

// RunHeadless drives the app on tk until frames steps ran, the loop fails or
// ctx is done. frames <= 0 runs until ctx is done.
func (a *App) RunHeadless(ctx context.Context, tk *loop.Ticker, frames int) error {
	err := tk.Run(ctx, func() error {
		if err := a.manager.Err(); err != nil {
			return err
		}
		if frames > 0 && a.ctrl.Frames() >= uint64(frames) {
			return errFramesDone
		}
		if !a.manager.Running() && tk.Len() == 0 {
			return errFramesDone
		}
		return nil
	})
	if errors.Is(err, errFramesDone) {
		log.Printf("Headless run finished after %d frames", a.ctrl.Frames())
		return nil
	}
	return err
}

// SaveTrace writes the recorded trace if recording is enabled
func (a *App) SaveTrace(filename string) {
	if a.recorder == nil {
		return
	}
	if filename == "" {
		filename = trace.GenerateFilename()
	}
	a.recorder.Stop()
	if err := a.recorder.Save(filename); err != nil {
		log.Printf("Failed to save trace: %v", err)
		return
	}
	log.Printf("Trace saved: %s (%d events, %d frames)", filename, a.recorder.EventCount(), a.recorder.FrameCount())
}
