// Package ecs connects petsprite to a [Donburi] world.
//
// Attach an [Appearance] to every creature entity and call
// [ResolveAppearances] once per tick. Entities whose state cannot be
// resolved keep their previous sprite and a [ResolveFailed] event is queued;
// subscribe to [ResolveFailedEventType] to react to it.
//
// Usage:
//
//	e := world.Create(ecs.AppearanceComponent)
//	ecs.SetVisualState(world.Entry(e), petsprite.VisualState{Stage: petsprite.StageEgg})
//	...
//	ecs.ResolveAppearances(world, manager)
//	ecs.ResolveFailedEventType.ProcessEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
