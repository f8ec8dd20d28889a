package types

type EventKind uint8

const (
	EventFire EventKind = iota + 1
	EventMisfire
	EventHit
	EventDying
)

func (k EventKind) String() string {
	switch k {
	case EventFire:
		return "fire"
	case EventMisfire:
		return "misfire"
	case EventHit:
		return "hit"
	case EventDying:
		return "dying"
	default:
		return "unknown"
	}
}

// Event is a combat notification produced during a tick.
// Fields that do not apply to the kind are zero.
type Event struct {
	Kind    EventKind
	Shooter ID
	Missile ID
	Target  ID
	Range   float64
	Power   float64
}

func NewFireEvent(m *Missile) Event {
	return Event{
		Kind:    EventFire,
		Shooter: m.Owner(),
		Missile: m.ID(),
		Range:   m.Range(),
		Power:   m.Power(),
	}
}

func NewMisfireEvent(shooter ID) Event {
	return Event{
		Kind:    EventMisfire,
		Shooter: shooter,
	}
}

func NewHitEvent(m *Missile, target ID) Event {
	return Event{
		Kind:    EventHit,
		Shooter: m.Owner(),
		Missile: m.ID(),
		Target:  target,
	}
}

func NewDyingEvent(m *Missile) Event {
	return Event{
		Kind:    EventDying,
		Shooter: m.Owner(),
		Missile: m.ID(),
	}
}
