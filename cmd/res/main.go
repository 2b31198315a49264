package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/mp3/res/monitor"
	"github.com/mp3/res/mos6502"
	"github.com/mp3/res/nesrom"
	"github.com/mp3/res/render"
)

var (
	romFile    = flag.String("nes_rom", "", "Path to NES ROM to run.")
	useMonitor = flag.Bool("monitor", false, "Start the interactive CPU monitor instead of the display.")
	scale      = flag.Int("scale", 2, "Window scale factor.")
)

type game struct {
	cpu   *mos6502.CPU
	frame *render.Frame
}

// Layout returns the constant resolution of the NES and is part of
// the ebiten.Game interface. By returning constants here, we will
// force ebiten to scale the display when the window size changes.
func (g *game) Layout(w, h int) (int, int) {
	return render.NES_RES_WIDTH, render.NES_RES_HEIGHT
}

// Update is called by ebiten roughly every 1/60s. The CPU runs in its
// own goroutine and doesn't need ebiten to drive it.
func (g *game) Update() error {
	return nil
}

// Draw composes a fresh frame from the current PPU state and blits it.
func (g *game) Draw(screen *ebiten.Image) {
	g.frame.Draw(g.cpu.PPU())

	img := g.frame.Image()
	rect := img.Bounds()
	for x := 0; x < rect.Dx(); x++ {
		for y := 0; y < rect.Dy(); y++ {
			screen.Set(x, y, img.RGBAAt(x, y))
		}
	}
}

func main() {
	flag.Parse()

	rom, err := nesrom.New(*romFile)
	if err != nil {
		log.Fatalf("Invalid ROM: %v", err)
	}

	cpu := mos6502.New()
	if err := cpu.LoadCartridge(rom); err != nil {
		log.Fatalf("Couldn't load cartridge: %v", err)
	}
	cpu.Reset()

	if *useMonitor {
		if err := monitor.Run(cpu); err != nil {
			log.Fatalf("monitor: %v", err)
		}
		return
	}

	go func() {
		// https://www.nesdev.org/wiki/CPU#Frequencies
		t := time.NewTicker(time.Microsecond)
		defer t.Stop()
		for range t.C {
			halted, err := cpu.Step()
			if err != nil {
				log.Printf("cpu stopped: %v", err)
				return
			}
			if halted {
				return
			}
		}
	}()

	ebiten.SetWindowSize(render.NES_RES_WIDTH**scale, render.NES_RES_HEIGHT**scale)
	ebiten.SetWindowTitle("res")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(&game{cpu: cpu, frame: render.NewFrame()}); err != nil {
		log.Fatal(err)
	}
}
