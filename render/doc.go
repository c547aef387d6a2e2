// Package render hosts the bounce simulation in an [Ebitengine] window.
//
// [Game] implements [ebiten.Game]: each Update steps the single body by one
// fixed tick of 1/TPS seconds, and each Draw places the logo sprite at the
// body's position. Wall contacts fade the logo to the next palette color and
// are forwarded to an optional [bounce.EventSink].
//
//	logo, err := render.NewLogo("")
//	if err != nil {
//		log.Fatal(err)
//	}
//	game, err := render.NewGame(bounce.DefaultConfig(), logo, render.Options{ShowFPS: true})
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := render.Run(game); err != nil {
//		log.Fatal(err)
//	}
//
// Keys: P pause, N single step while paused, S screenshot, D debug stats,
// Esc quit.
//
// [Ebitengine]: https://ebitengine.org
package render
