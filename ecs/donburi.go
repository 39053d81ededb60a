package ecs

import (
	"time"

	"github.com/phanxgames/cartoon"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// StatusEvent reports a Player status transition. It is published before
// the transition takes effect.
type StatusEvent struct {
	Status cartoon.Status
}

// StepEvent reports one evaluated Player tick.
type StepEvent struct {
	Now   time.Duration
	Total time.Duration
}

// StatusEventType is the Donburi event type for player status changes.
var StatusEventType = events.NewEventType[StatusEvent]()

// StepEventType is the Donburi event type for player ticks.
var StepEventType = events.NewEventType[StepEvent]()

// DonburiObserver forwards Player callbacks into a Donburi world.
type DonburiObserver struct {
	world donburi.World
}

// NewDonburiObserver creates an observer publishing into world. Events are
// queued and delivered by ProcessEvents or events.ProcessAllEvents.
func NewDonburiObserver(world donburi.World) *DonburiObserver {
	return &DonburiObserver{world: world}
}

// Attach installs the observer's callbacks on p. Callbacks already set on p
// keep running, before the event is published.
func (o *DonburiObserver) Attach(p *cartoon.Player) {
	prevStatus, prevStep := p.OnStatus, p.OnStep
	p.OnStatus = func(s cartoon.Status) {
		if prevStatus != nil {
			prevStatus(s)
		}
		o.EmitStatus(s)
	}
	p.OnStep = func(now, total time.Duration) {
		if prevStep != nil {
			prevStep(now, total)
		}
		o.EmitStep(now, total)
	}
}

// EmitStatus publishes a StatusEvent.
func (o *DonburiObserver) EmitStatus(s cartoon.Status) {
	StatusEventType.Publish(o.world, StatusEvent{Status: s})
}

// EmitStep publishes a StepEvent.
func (o *DonburiObserver) EmitStep(now, total time.Duration) {
	StepEventType.Publish(o.world, StepEvent{Now: now, Total: total})
}
