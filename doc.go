// Package starbutton is a two-state "star" favorite toggle for [Ebitengine]
// whose selection is rendered as a four-layer burst animation.
//
// # Quick start
//
//	button, err := starbutton.New(starbutton.Config{
//		Bounds: starbutton.Rect{X: 100, Y: 100, Width: 64, Height: 64},
//		Image:  starImage, // alpha shapes the star
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	func (g *Game) Update() error {
//		if clicked {
//			g.button.Toggle()
//		}
//		g.button.Update(float32(1.0 / float64(ebiten.TPS())))
//		return nil
//	}
//
//	func (g *Game) Draw(screen *ebiten.Image) { g.button.Draw(screen) }
//
// # Layers
//
// A [Rig] holds the control's layers, all centered on its bounds: a ring
// clipped by an even-odd annulus mask, five burst lines 72 degrees apart,
// and the image fill clipped by the bitmap. Geometry changes
// ([Button.SetBounds], [Button.SetImage]) rebuild every layer.
//
// # Animation
//
// [Button.Select] submits six keyframe [Timeline]s from the library
// ([RingScale], [RingMaskScale], [LineStrokeStart], [LineStrokeEnd],
// [LineOpacity], [ImageScale]) as one [AnimationBatch], so they begin on the
// same frame. [Button.Deselect] removes them and plays an elastic settle
// generated by [GenerateTweenValues] on the bitmap mask.
//
// Animations are run by a [Facility]. The default is an [Animator] owned by
// the button and advanced by [Button.Update]; there is no global animation
// manager. Keyframe segments and playback clocks use [gween].
//
// Themes can be loaded from YAML with [LoadConfig].
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package starbutton
