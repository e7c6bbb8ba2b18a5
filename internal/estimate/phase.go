package estimate

import "fmt"

// Phase is the lifecycle position of an AI request.
type Phase int

const (
	Idle Phase = iota
	InFlight
	Succeeded
	Failed
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case InFlight:
		return "in_flight"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Busy reports whether a request is currently running.
func (p Phase) Busy() bool { return p == InFlight }

// Event moves a request between phases.
type Event int

const (
	Start Event = iota
	Resolve
	Reject
)

func (e Event) String() string {
	switch e {
	case Start:
		return "start"
	case Resolve:
		return "resolve"
	case Reject:
		return "reject"
	default:
		return fmt.Sprintf("event(%d)", int(e))
	}
}

// transitions is the full table of legal request transitions. A settled
// request may be started again; an in-flight one may only settle.
var transitions = map[Phase]map[Event]Phase{
	Idle:      {Start: InFlight},
	InFlight:  {Resolve: Succeeded, Reject: Failed},
	Succeeded: {Start: InFlight},
	Failed:    {Start: InFlight},
}

// Next returns the phase reached from p on e.
func (p Phase) Next(e Event) (Phase, error) {
	if next, ok := transitions[p][e]; ok {
		return next, nil
	}
	if p == InFlight && e == Start {
		return p, ErrBusy
	}
	return p, fmt.Errorf("%w: %s on %s", ErrInvalidTransition, e, p)
}
