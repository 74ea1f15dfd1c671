package ecs

import (
	"github.com/phanxgames/nebula"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// HoverEventType is the Donburi event type for nebula hover events.
// Subscribe to this in your ECS systems to receive word enter/leave events.
var HoverEventType = events.NewEventType[nebula.HoverEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Hover events are published to HoverEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) nebula.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitHover(event nebula.HoverEvent) {
	HoverEventType.Publish(s.world, event)
}

// HoverData lists the word indices currently under at least one pointer,
// with the number of pointers over each.
type HoverData struct {
	Pointers map[int]int
	Words    map[int]string
}

// Hovered is the component holding HoverData on the tracker entity.
var Hovered = donburi.NewComponentType[HoverData]()

// TrackHover creates an entity carrying the Hovered component and keeps it
// current from HoverEventType. The data changes when the world's events
// are processed.
func TrackHover(world donburi.World) donburi.Entity {
	entity := world.Create(Hovered)
	Hovered.SetValue(world.Entry(entity), HoverData{
		Pointers: map[int]int{},
		Words:    map[int]string{},
	})
	HoverEventType.Subscribe(world, func(w donburi.World, e nebula.HoverEvent) {
		if !w.Valid(entity) {
			return
		}
		data := Hovered.Get(w.Entry(entity))
		switch e.Type {
		case nebula.EventPointerEnter:
			data.Pointers[e.Index]++
			data.Words[e.Index] = e.Word
		case nebula.EventPointerLeave:
			if data.Pointers[e.Index] <= 1 {
				delete(data.Pointers, e.Index)
				delete(data.Words, e.Index)
				return
			}
			data.Pointers[e.Index]--
		}
	})
	return entity
}
