package ecs

import (
	"github.com/phanxgames/birthday"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type for birthday events.
var InteractionEventType = events.NewEventType[birthday.InteractionEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Events are published to InteractionEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) birthday.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event birthday.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)
}

// StateLog records greeting state changes seen in a world.
type StateLog struct {
	Transitions []birthday.InteractionEvent
}

// TrackStates subscribes a StateLog to the world's state-change events.
// Entries appear after the world's events are processed.
func TrackStates(world donburi.World) *StateLog {
	log := &StateLog{}
	InteractionEventType.Subscribe(world, func(_ donburi.World, e birthday.InteractionEvent) {
		if e.Type == birthday.EventStateChange {
			log.Transitions = append(log.Transitions, e)
		}
	})
	return log
}

// Last returns the most recent state reached, or StateWaiting if none.
func (l *StateLog) Last() birthday.State {
	if len(l.Transitions) == 0 {
		return birthday.StateWaiting
	}
	return l.Transitions[len(l.Transitions)-1].To
}
