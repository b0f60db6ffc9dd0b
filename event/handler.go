package event

// Handler handles the events produced by a simulation once a tick is flushed. Handlers are called from the
// goroutine running the tick, after the simulation of all bodies has finished.
type Handler interface {
	HandleBlockCollision(ev BlockCollisionEvent)
	HandleEntityCollision(ev EntityCollisionEvent)
	HandlePhysicsStopped(ev PhysicsStoppedEvent)
	HandleTick(ev TickEvent)
}

// NopHandler implements Handler without doing anything. It may be embedded to only implement some of the
// methods.
type NopHandler struct{}

func (NopHandler) HandleBlockCollision(BlockCollisionEvent)   {}
func (NopHandler) HandleEntityCollision(EntityCollisionEvent) {}
func (NopHandler) HandlePhysicsStopped(PhysicsStoppedEvent)   {}
func (NopHandler) HandleTick(TickEvent)                       {}

// Dispatch calls the method of the handler matching the event.
func Dispatch(h Handler, ev Event) {
	switch ev := ev.(type) {
	case BlockCollisionEvent:
		h.HandleBlockCollision(ev)
	case EntityCollisionEvent:
		h.HandleEntityCollision(ev)
	case PhysicsStoppedEvent:
		h.HandlePhysicsStopped(ev)
	case TickEvent:
		h.HandleTick(ev)
	}
}
