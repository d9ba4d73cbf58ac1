// Package birthday is an interactive 3D birthday card for [Ebitengine].
//
// The card waits on a start screen, types a few intro lines, then reveals a
// small bakery with a cake and a waving figure. Blowing out the candle
// launches fireworks and opens the closing message; the letter on the table
// reopens it. Photos can be dropped onto the window until then.
//
// # Quick start
//
// The simplest way to show a card is [Run], which creates a window and game
// loop for you:
//
//	cfg := birthday.DefaultConfig()
//	cfg.Recipient = "Ada"
//	g := birthday.NewGreeting(cfg, birthday.GreetingOptions{Loader: birthday.LoadPhotoFile})
//	birthday.Run(g, birthday.RunConfig{Title: cfg.Window.Title})
//
// [Greeting] implements [ebiten.Game], so it can also be embedded in a larger
// game loop.
//
// # Scene graph
//
// Every 3D element is a [Node]. Nodes form a tree rooted at [Scene.Root] and
// inherit their parent's transform. Create nodes with [NewGroup], [NewMesh],
// [NewLight] and [NewPoints]. Geometry builders ([BoxGeometry],
// [CylinderGeometry], [SphereGeometry], [PlaneGeometry]) produce flat-shaded
// triangle meshes.
//
//	cake := birthday.NewMesh("cake", birthday.CylinderGeometry(0.7, 0.7, 0.5, 24), birthday.ColorWhite)
//	scene.Root().AddChild(cake)
//
// The [Camera] projects world space through a perspective transform. Meshes
// are painter-sorted and submitted with DrawTriangles; point clouds are drawn
// afterwards with additive blending.
//
// # Animation
//
// An [Animator] is a pure function from elapsed seconds to a local
// [Transform]. Attach one with [Scene.Animate]; [DropIn], [SlideIn], [Bob],
// [Flicker], [Spin] and [Sequence] cover the card's needs. One-shot property
// tweens use [TweenGroup] built on gween.
//
// # Fireworks
//
// [Fireworks] owns a [BurstSet] of [TotalParticles] particles in
// [BurstCount] staggered bursts. Positions are a closed-form function of the
// time since activation, so the effect is deterministic for a given
// [RandSource] and frame rate independent. Hidden particles sit at [Sentinel].
//
// # Interaction
//
// Nodes with Interactable set and an OnClick or OnHover callback are hit
// tested against their projected bounds; the nearest wins. Dragging empty
// space orbits the camera and the wheel zooms it, see [OrbitControls]. Tests
// and scripts drive input with [Scene.InjectClick], [Scene.InjectMove],
// [Scene.InjectDrag] and [Scene.InjectWheel], or with a JSON [TestRunner].
//
// # ECS integration
//
// Set an [EntityStore] via [Scene.SetEntityStore] or [GreetingOptions] to
// forward interaction and state-change events. The ecs subpackage provides a
// Donburi adapter.
//
// [Ebitengine]: https://ebitengine.org
package birthday
