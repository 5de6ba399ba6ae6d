// Command term renders the particle field in a terminal with tcell.
//
// Move the mouse to push particles, click to scatter them. r restores the
// field after it fades, q or Esc quits.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gonewx/glyphfield/pkg/config"
)

var (
	labelFlag   = flag.String("label", "", "Text the particles assemble into (overrides config)")
	configFlag  = flag.String("config", "", "Path to the field config YAML (default data/field.yaml)")
	seedFlag    = flag.Int64("seed", 0, "Random seed (0 = current time)")
	fpsFlag     = flag.Int("fps", 60, "Frames per second")
	verboseFlag = flag.Bool("verbose", false, "Log to glyphfield-term.log")
)

func main() {
	flag.Parse()

	// 终端被 tcell 占用，日志只能写文件
	log.SetOutput(io.Discard)
	if *verboseFlag {
		f, err := os.OpenFile("glyphfield-term.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err == nil {
			defer f.Close()
			log.SetOutput(f)
		}
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "term: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, _, err := config.ResolveFieldConfig(*configFlag)
	if err != nil {
		return err
	}
	if *labelFlag != "" {
		cfg.Label = *labelFlag
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	host, err := NewHost(screen, cfg, seed)
	if err != nil {
		return err
	}
	defer host.Close()

	fps := max(*fpsFlag, 1)
	frame := time.Second / time.Duration(fps)
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			eventChan <- ev
			if ev == nil {
				return
			}
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !host.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			host.Tick(frame.Seconds())
		}
	}
}
