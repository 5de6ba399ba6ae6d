package main

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gonewx/glyphfield/pkg/config"
	"github.com/gonewx/glyphfield/pkg/engine"
	"github.com/gonewx/glyphfield/pkg/surfaces"
	"github.com/gonewx/glyphfield/pkg/systems"
)

// Options 一次无界面运行的参数
type Options struct {
	Width, Height int
	Frames        int

	// ClickAt 在第几帧之前注入点击，负数表示不点击
	ClickAt        int
	ClickX, ClickY float64 // 负数表示画布中心

	// Pointer 固定的指针位置，nil 表示保持挂载时的画布中心
	Pointer *[2]float64

	Out   string
	Every int

	Label      string
	ConfigPath string
	Seed       int64
	LinkGrid   bool
}

// Summary 运行结果
type Summary struct {
	Label     string
	Width     int
	Height    int
	Profile   string
	Particles int
	Frames    uint64
	Links     int
	Dispersed bool
	Energy    []float64
	Written   []string
}

// Run 按参数模拟并写出 PNG
func Run(opts Options) (*Summary, error) {
	if opts.Frames < 0 {
		return nil, fmt.Errorf("frames must not be negative, got %d", opts.Frames)
	}

	cfg, _, err := config.ResolveFieldConfig(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if opts.Label != "" {
		cfg.Label = opts.Label
	}
	if opts.LinkGrid {
		cfg.Render.LinkGrid = true
	}

	scheduler := engine.NewManualScheduler()
	bus := engine.NewBus()
	surface := surfaces.NewImageSurface(opts.Width, opts.Height, config.BackgroundColor.NRGBA())

	summary := &Summary{
		Label:   cfg.Label,
		Width:   opts.Width,
		Height:  opts.Height,
		Profile: cfg.ProfileFor(opts.Width).Name,
	}

	e, err := engine.New(engine.Options{
		Config:     cfg,
		Scheduler:  scheduler,
		Events:     bus,
		Rand:       rand.New(rand.NewSource(opts.Seed)),
		OnDisperse: func() { summary.Dispersed = true },
	})
	if err != nil {
		return nil, err
	}
	defer e.Teardown()

	if err := e.Mount(surface); err != nil {
		return nil, err
	}
	summary.Particles = len(e.Particles())

	if opts.Pointer != nil {
		bus.Publish(engine.Event{Kind: engine.EventPointerMove, X: opts.Pointer[0], Y: opts.Pointer[1]})
	}

	clickX, clickY := opts.ClickX, opts.ClickY
	sim := e.Simulation()
	cx, cy := sim.Center()
	if clickX < 0 {
		clickX = cx
	}
	if clickY < 0 {
		clickY = cy
	}

	summary.Energy = make([]float64, 0, opts.Frames)
	for i := 0; i < opts.Frames; i++ {
		if i == opts.ClickAt {
			bus.Publish(engine.Event{Kind: engine.EventPointerClick, X: clickX, Y: clickY})
		}
		if !scheduler.RunFrame() {
			return nil, fmt.Errorf("frame %d was not scheduled", i)
		}
		summary.Energy = append(summary.Energy, systems.KineticEnergy(e.Particles()))

		if opts.Every > 0 && (i+1)%opts.Every == 0 {
			path := framePath(opts.Out, i+1)
			if err := surface.SavePNG(path); err != nil {
				return nil, err
			}
			summary.Written = append(summary.Written, path)
		}
	}

	summary.Frames = e.Frames()
	summary.Links = e.LastStats().Links

	if opts.Out != "" && opts.Width > 0 && opts.Height > 0 {
		if err := surface.SavePNG(opts.Out); err != nil {
			return nil, err
		}
		summary.Written = append(summary.Written, opts.Out)
	}

	return summary, nil
}

// framePath 由输出路径派生序列帧路径：field.png → field_0030.png
func framePath(out string, frame int) string {
	ext := filepath.Ext(out)
	if ext == "" {
		ext = ".png"
	}
	return fmt.Sprintf("%s_%04d%s", strings.TrimSuffix(out, filepath.Ext(out)), frame, ext)
}

func parsePoint(s string) (float64, float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected x,y, got %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad x: %w", err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad y: %w", err)
	}
	return x, y, nil
}
