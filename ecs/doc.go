// Package ecs bridges bounce contact events into a [Donburi] world.
//
// [NewDonburiSink] publishes every wall contact as a typed event. Subscribe
// to [ContactEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	game.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
