// Package ecs provides ECS adapters for birthday's event stream.
//
// The primary adapter is [NewDonburiStore], which bridges interaction events
// (pointer enter/leave, click) and greeting state changes into a [Donburi]
// world as typed events. Subscribe to [InteractionEventType] in your ECS
// systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	greeting := birthday.NewGreeting(cfg, birthday.GreetingOptions{Store: store})
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
