package estimate

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/Simplici0/printcost/internal/ai"
	"github.com/Simplici0/printcost/internal/pricing"
)

// Generator proposes a full estimate from a free-text job description.
type Generator interface {
	GenerateEstimates(ctx context.Context, in ai.EstimatesInput) (ai.EstimatesOutput, error)
}

// Advisor returns free-text suggestions for a serialized estimate.
type Advisor interface {
	SuggestOptimizations(ctx context.Context, in ai.OptimizationInput) (ai.OptimizationOutput, error)
}

// Archive stores a snapshot of an estimate and returns its id.
type Archive interface {
	Save(ctx context.Context, in pricing.CostInput, costs pricing.CalculatedCosts) (int64, error)
}

// Deps are the collaborators shared by every session.
type Deps struct {
	Generator Generator
	Advisor   Advisor
	Archive   Archive
	Logger    *slog.Logger
}

// View is a consistent read of a session, with costs derived from the input.
type View struct {
	Input       pricing.CostInput
	Costs       pricing.CalculatedCosts
	Generating  bool
	Optimizing  bool
	Suggestions string
}

// Session owns one estimate record. All mutations go through Reduce while
// holding mu; AI calls run without the lock so the form stays editable.
type Session struct {
	mu      sync.Mutex
	state   State
	notices []Notice
	deps    Deps
	log     *slog.Logger
}

// NewSession returns a session holding the default estimate.
func NewSession(deps Deps) *Session {
	log := deps.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Session{state: NewState(), deps: deps, log: log}
}

// View returns the current record and its freshly calculated costs.
func (s *Session) View() View {
	s.mu.Lock()
	st := s.state
	s.mu.Unlock()

	return View{
		Input:       st.Input,
		Costs:       pricing.Calculate(st.Input),
		Generating:  st.Generate.Busy(),
		Optimizing:  st.Optimize.Busy(),
		Suggestions: st.Suggestions,
	}
}

// State returns a copy of the raw session state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch applies a to the session state.
func (s *Session) Dispatch(a Action) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dispatchLocked(a)
}

func (s *Session) dispatchLocked(a Action) error {
	next, err := Reduce(s.state, a)
	if err != nil {
		return err
	}
	s.state = next
	return nil
}

// SetField updates one field from its raw text.
func (s *Session) SetField(name, raw string) error {
	return s.Dispatch(FieldChanged{Field: name, Raw: raw})
}

// SetCurrency selects the display currency.
func (s *Session) SetCurrency(code string) error {
	return s.Dispatch(CurrencyChanged{Code: code})
}

// Apply updates every known field present in values and ignores the rest.
// It returns the number of fields applied.
func (s *Session) Apply(values map[string]string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	applied := 0
	for _, name := range FieldNames {
		raw, ok := values[name]
		if !ok {
			continue
		}
		if err := s.dispatchLocked(FieldChanged{Field: name, Raw: raw}); err == nil {
			applied++
		}
	}
	return applied
}

// Reset restores the default estimate.
func (s *Session) Reset() {
	_ = s.Dispatch(Reset{})
}

// Load replaces the whole record, e.g. with an archived quote.
func (s *Session) Load(in pricing.CostInput) {
	_ = s.Dispatch(Replaced{Input: in})
}

// Notify queues a notice for the next render.
func (s *Session) Notify(n Notice) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notices = append(s.notices, n)
}

// DrainNotices returns the queued notices and empties the queue.
func (s *Session) DrainNotices() []Notice {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.notices
	s.notices = nil
	return out
}

// Generate asks the generator for an estimate of description and, on
// success, replaces the whole record with it. A blank description is
// rejected before any call. Failures leave the record untouched and queue a
// single error notice. The call is not cancelled when ctx is.
func (s *Session) Generate(ctx context.Context, description string) error {
	description = strings.TrimSpace(description)
	if description == "" {
		s.Notify(noticeEmptyDescription)
		return ErrEmptyDescription
	}

	if err := s.Dispatch(GenerateStarted{}); err != nil {
		return err
	}

	var (
		out ai.EstimatesOutput
		err error
	)
	if s.deps.Generator == nil {
		err = ErrNotConfigured
	} else {
		out, err = s.deps.Generator.GenerateEstimates(context.WithoutCancel(ctx), ai.EstimatesInput{Prompt: description})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.log.Error("generate estimates failed", "err", err)
		_ = s.dispatchLocked(GenerateRejected{})
		s.notices = append(s.notices, noticeGenerateFailed)
		return fmt.Errorf("generate estimates: %w", err)
	}

	if err := s.dispatchLocked(GenerateResolved{Input: InputFromEstimates(out)}); err != nil {
		return err
	}
	s.notices = append(s.notices, noticeGenerated)
	return nil
}

type costDetails struct {
	Input pricing.CostInput       `json:"input"`
	Costs pricing.CalculatedCosts `json:"calculatedCosts"`
}

// SuggestOptimizations sends the current estimate to the advisor and keeps
// its answer verbatim. The record itself is never modified.
func (s *Session) SuggestOptimizations(ctx context.Context) error {
	s.mu.Lock()
	if err := s.dispatchLocked(OptimizeStarted{}); err != nil {
		s.mu.Unlock()
		return err
	}
	in := s.state.Input
	s.mu.Unlock()

	var (
		out ai.OptimizationOutput
		err error
	)
	details, err := json.MarshalIndent(costDetails{Input: in, Costs: pricing.Calculate(in)}, "", "  ")
	if err == nil {
		if s.deps.Advisor == nil {
			err = ErrNotConfigured
		} else {
			out, err = s.deps.Advisor.SuggestOptimizations(context.WithoutCancel(ctx), ai.OptimizationInput{CostEstimationDetails: string(details)})
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.log.Error("suggest optimizations failed", "err", err)
		_ = s.dispatchLocked(OptimizeRejected{})
		s.notices = append(s.notices, noticeOptimizeFailed)
		return fmt.Errorf("suggest optimizations: %w", err)
	}

	return s.dispatchLocked(OptimizeResolved{Suggestions: out.OptimizationSuggestions})
}

// Save hands a snapshot of the estimate to the archive. Without an archive
// it only confirms to the user.
func (s *Session) Save(ctx context.Context) (int64, error) {
	view := s.View()

	var id int64
	if s.deps.Archive != nil {
		var err error
		id, err = s.deps.Archive.Save(ctx, view.Input, view.Costs)
		if err != nil {
			s.log.Error("save estimate failed", "err", err)
			s.Notify(noticeSaveFailed)
			return 0, fmt.Errorf("save estimate: %w", err)
		}
	}

	s.Notify(noticeSaved)
	return id, nil
}
