// Package barrk is a tiny desktop demo built on [Ebitengine]: a window with a
// single button that barks.
//
// The package holds the core, which has no rendering dependencies:
//
//   - [Roster] is the fixed list of [Speaker] values, each with one utterance.
//   - [Selector] draws a bark that differs from the one currently shown.
//   - [Responder] maps [Interaction] changes to a new [DisplayState] and
//     prints a bark to the console on every [Timer] tick.
//
// The Ebitengine adapter lives in barrk/scene and the game loop in
// internal/app. A frame always runs in the same order: advance the timer,
// poll the interaction, invoke the responder, then draw.
//
//	roster := barrk.DefaultRoster()
//	sel := barrk.NewSelector(rand.New(rand.NewPCG(1, 2)))
//	resp, err := barrk.NewResponder(roster, sel, os.Stdout, zerolog.Nop())
//	display := barrk.InitialDisplay()
//	err = resp.OnInteraction(barrk.InteractionHovered, &display)
//
// [Ebitengine]: https://ebitengine.org
package barrk
