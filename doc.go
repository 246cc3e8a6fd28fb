// Package easel places a framed picture on a real-world wall detected by an
// AR tracking session, and lets the user move, scale and rotate it with
// touch gestures.
//
// Easel is the placement core only. It never draws and never talks to a
// camera: the host feeds tracking, touch and gesture input as [Event] values
// and reads back a scene tree, a list of [Primitive] values and a stream of
// [Notification] values.
//
// # Quick start
//
//	engine := easel.NewEngine(easel.LoadConfigFromEnv())
//	content, _ := easel.SizedContent("poster", 2000, 1000)
//	engine.SetContent(content)
//
//	// every tracking callback, touch or gesture:
//	engine.Apply(easel.AnchorAddedEvent(now, anchor))
//
//	// every frame:
//	engine.Update(dt)
//	for _, p := range engine.Primitives() {
//		// draw p.Geometry with p.Material at p.World, faded by p.Alpha
//	}
//
// # Placement
//
// Vertical planes reported by tracking become pending regions, each shown
// as a translucent grid. The first region whose extent grows past
// [Config.CommitArea] commits a placement anchor, the grids are cleared,
// and the frame built by [BuildFrame] is hung at the anchor facing out of
// the wall. Only one object is placed per session; send a session reset
// event to start over.
//
// # Interaction
//
// A touch that lands on the placed object and is held longer than
// [Config.DragDebounce] drags it along the wall. Pinch and rotate
// recognizer updates scale and spin the object around the wall normal;
// the two may run together but neither runs during a drag.
//
// # Recording and replay
//
// Event streams can be saved as JSON with [MarshalEventLog] and replayed
// with a [Replayer]. The journal subpackage stores sessions in SQLite, the
// ebitenhost subpackage turns mouse and touch input into events, and the
// ecs subpackage mirrors notifications into a [Donburi] world. Appear fades
// use [gween].
//
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package easel
