// dvd opens a 720x480 "DVD Bounce" window with the logo bouncing off the
// walls, changing color and clicking on every hit. Pass -logo to use your
// own image instead of the built-in wordmark.
package main

import (
	"flag"
	"log"

	"github.com/phanxgames/bounce"
	"github.com/phanxgames/bounce/render"
	"github.com/phanxgames/bounce/sound"
)

func main() {
	var (
		configPath = flag.String("config", "", "JSON config file (fields missing from the file keep their defaults)")
		logoPath   = flag.String("logo", "", "logo image file (PNG, JPEG or GIF); empty uses the built-in logo")
		speed      = flag.Float64("speed", bounce.DefaultSpeed, "speed in pixels per second (overrides config)")
		angle      = flag.Float64("angle", bounce.DefaultAngleDeg, "starting angle in degrees (overrides config)")
		scale      = flag.Float64("scale", bounce.DefaultScale, "logo scale (overrides config)")
		showFPS    = flag.Bool("fps", false, "show FPS/TPS overlay")
		mute       = flag.Bool("mute", false, "disable bounce sounds")
		volume     = flag.Float64("volume", 0.3, "bounce sound volume, 0 to 1")
		debug      = flag.Bool("debug", false, "print simulation stats to stderr")
	)
	flag.Parse()

	cfg := bounce.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = bounce.LoadConfigFile(*configPath); err != nil {
			log.Fatal(err)
		}
	}
	// Flags given explicitly win over the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "speed":
			cfg.Speed = *speed
		case "angle":
			cfg.AngleDeg = *angle
		case "scale":
			cfg.Scale = *scale
		}
	})

	logo, err := render.NewLogo(*logoPath)
	if err != nil {
		log.Fatal(err)
	}

	game, err := render.NewGame(cfg, logo, render.Options{
		ShowFPS:    *showFPS,
		Debug:      *debug,
		ClearColor: render.Color{A: 1},
	})
	if err != nil {
		log.Fatal(err)
	}

	if !*mute {
		player := sound.NewPlayer(*volume)
		if err := player.Init(); err != nil {
			// Non-fatal, the screensaver runs without sound.
			log.Printf("[bounce] audio disabled: %v", err)
		} else {
			defer player.Close()
			game.SetEventSink(player)
		}
	}

	if err := render.Run(game); err != nil {
		log.Fatal(err)
	}
}
