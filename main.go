package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/profile"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode (physics shapes, collision log)")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	seed := flag.Uint64("seed", 0, "random seed for waves and drops (0 picks one from the clock)")
	watch := flag.Bool("watch", false, "hot reload prefabs/ and prefabs/scripts/ from disk")
	mute := flag.Bool("mute", false, "disable sound effects")
	profileMode := flag.String("profile", "", "write a cpu or mem profile to the working directory")
	flag.Parse()

	switch *profileMode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	default:
		log.Fatalf("unknown -profile %q, want cpu or mem", *profileMode)
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(1280, 720)
	ebiten.SetWindowTitle("horde")

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	game, err := NewGame(Options{Debug: *debug, Seed: *seed, Watch: *watch, Mute: *mute})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil && err != ebiten.Termination {
		log.Fatal(err)
	}
}
