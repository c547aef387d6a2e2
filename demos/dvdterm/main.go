// dvdterm bounces a boxed "DVD" label around the terminal. Press Esc, q or
// Ctrl-C to quit.
package main

import (
	"context"
	"flag"
	"log"
	"math"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/bounce/term"
)

func main() {
	opts := term.DefaultOptions()
	angle := flag.Float64("angle", opts.Angle*180/math.Pi, "starting angle in degrees")
	flag.Float64Var(&opts.Speed, "speed", opts.Speed, "speed in cells per second")
	flag.IntVar(&opts.FPS, "fps", opts.FPS, "frames per second")
	flag.StringVar(&opts.Label, "label", opts.Label, "text inside the box")
	flag.Parse()
	opts.Angle = *angle * math.Pi / 180

	if opts.Speed < 0 {
		log.Fatalf("speed %v must not be negative", opts.Speed)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = term.New(screen, opts).Run(ctx)
	screen.Fini()
	if err != nil && ctx.Err() == nil {
		log.Fatal(err)
	}
}
