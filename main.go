package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/glyphfield/pkg/app"
	"github.com/gonewx/glyphfield/pkg/config"
	"github.com/gonewx/glyphfield/pkg/embedded"
)

var (
	verboseFlag    = flag.Bool("verbose", false, "Enable verbose logging (default off)")
	configFlag     = flag.String("config", config.DefaultConfigPath, "Path to the field config YAML")
	labelFlag      = flag.String("label", "", "Text the particles assemble into (overrides config)")
	fullscreenFlag = flag.Bool("fullscreen", false, "Start in fullscreen")
	gridFlag       = flag.Bool("link-grid", false, "Use the bucket grid for link scanning")
	seedFlag       = flag.Int64("seed", 0, "Random seed (0 = current time)")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源
	embedded.Init(dataFS)

	viewer, err := app.NewApp(app.Config{
		Verbose:    *verboseFlag,
		ConfigPath: *configFlag,
		Label:      *labelFlag,
		Fullscreen: *fullscreenFlag,
		LinkGrid:   *gridFlag,
		Seed:       *seedFlag,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化失败: %v\n", err)
		os.Exit(1)
	}

	width, height, fullscreen := viewer.WindowSettings()
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("Glyph Field")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(fullscreen)

	runErr := ebiten.RunGame(viewer)

	if err := viewer.Close(); err != nil {
		log.Printf("[Main] Warning: %v", err)
	}

	if runErr != nil && !errors.Is(runErr, ebiten.Termination) {
		fmt.Fprintf(os.Stderr, "运行失败: %v\n", runErr)
		os.Exit(1)
	}
}
