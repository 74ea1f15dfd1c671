// Package nebula renders a weighted word list as a slowly rotating 3D sphere
// of labels for [Ebitengine].
//
// # Pipeline
//
// A list of [WeightedWord] values goes through [Layout], which places each
// word on a Fibonacci sphere of radius [SphereRadius] and derives its hue
// and size from its weight. A [Director] turns every [PositionedWord] into a
// [WordNode] inside a single rotating group, and a [Container] mounts the
// director onto the screen and drives it once per frame.
//
//	c := nebula.NewContainer(1280, 720)
//	c.SetWords([]nebula.WeightedWord{
//		{Word: "climate", Weight: 1},
//		{Word: "policy", Weight: 0.5},
//	})
//	if err := c.Run(ctx, "Topic Nebula"); err != nil {
//		log.Fatal(err)
//	}
//
// For full control, call [Container.Mount] yourself and hand the container
// to [ebiten.RunGame]; it implements [ebiten.Game].
//
// # Layout
//
// [Layout] is pure and deterministic. The same input always yields the same
// positions, colors and sizes. Weights are clamped to [0, 1] first. An empty
// list yields an empty layout and the scene shows [PlaceholderText].
//
// # Interaction
//
// Hovering a word enlarges it by [HoverScale] and tints it [HighlightColor];
// leaving restores the layout values exactly. Dragging orbits the camera
// around the origin and the wheel (or a pinch) zooms between [MinDistance]
// and [MaxDistance]. There is no panning.
//
// Container-level callbacks are registered with [Container.OnPointerEnter]
// and friends. Hover events can also be forwarded to an ECS through an
// [EventSink]; see the ecs subpackage.
//
// # Scripted runs
//
// [LoadTestScript] builds a [TestRunner] that injects hovers, drags, wheel
// steps and word list changes frame by frame and captures screenshots,
// which makes visual checks reproducible when paired with a
// [FixedStepClock].
//
// [Ebitengine]: https://ebitengine.org
package nebula
