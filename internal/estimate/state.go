package estimate

import (
	"fmt"

	"github.com/Simplici0/printcost/internal/pricing"
)

// State is everything a session owns: the estimate record, the phase of
// both AI requests and the last optimization suggestions.
type State struct {
	Input       pricing.CostInput
	Generate    Phase
	Optimize    Phase
	Suggestions string
}

// NewState returns the state of a freshly loaded form.
func NewState() State {
	return State{Input: pricing.DefaultInput()}
}

// Action is a change request applied through Reduce.
type Action interface {
	action()
}

type (
	FieldChanged     struct{ Field, Raw string }
	CurrencyChanged  struct{ Code string }
	Reset            struct{}
	Replaced         struct{ Input pricing.CostInput }
	GenerateStarted  struct{}
	GenerateResolved struct{ Input pricing.CostInput }
	GenerateRejected struct{}
	OptimizeStarted  struct{}
	OptimizeResolved struct{ Suggestions string }
	OptimizeRejected struct{}
)

func (FieldChanged) action()     {}
func (CurrencyChanged) action()  {}
func (Reset) action()            {}
func (Replaced) action()         {}
func (GenerateStarted) action()  {}
func (GenerateResolved) action() {}
func (GenerateRejected) action() {}
func (OptimizeStarted) action()  {}
func (OptimizeResolved) action() {}
func (OptimizeRejected) action() {}

// Reduce returns the state that results from applying a to s. On error the
// returned state equals s.
func Reduce(s State, a Action) (State, error) {
	var err error
	switch a := a.(type) {
	case FieldChanged:
		var in pricing.CostInput
		if in, err = setField(s.Input, a.Field, a.Raw); err != nil {
			return s, err
		}
		s.Input = in

	case CurrencyChanged:
		s.Input.Currency = pricing.NormalizeCurrency(a.Code)

	case Reset:
		s.Input = pricing.DefaultInput()
		s.Suggestions = ""

	case Replaced:
		s.Input = a.Input
		s.Input.Currency = pricing.NormalizeCurrency(a.Input.Currency)
		s.Suggestions = ""

	case GenerateStarted:
		if s.Generate, err = s.Generate.Next(Start); err != nil {
			return s, err
		}

	case GenerateResolved:
		if s.Generate, err = s.Generate.Next(Resolve); err != nil {
			return s, err
		}
		s.Input = a.Input

	case GenerateRejected:
		if s.Generate, err = s.Generate.Next(Reject); err != nil {
			return s, err
		}

	case OptimizeStarted:
		if s.Optimize, err = s.Optimize.Next(Start); err != nil {
			return s, err
		}
		s.Suggestions = ""

	case OptimizeResolved:
		if s.Optimize, err = s.Optimize.Next(Resolve); err != nil {
			return s, err
		}
		s.Suggestions = a.Suggestions

	case OptimizeRejected:
		if s.Optimize, err = s.Optimize.Next(Reject); err != nil {
			return s, err
		}

	default:
		return s, fmt.Errorf("unsupported action %T", a)
	}

	return s, nil
}
