// Package wizard models the multi-step project form as a finite-state
// accumulator. Reducers are pure: every transition returns a new State and
// never mutates the input, so callers can keep snapshots for undo or replay.
package wizard

import (
	"fmt"
	"time"

	"github.com/emateapp/emate/internal/domain"
	"github.com/emateapp/emate/internal/model"
	"github.com/emateapp/emate/internal/service"
)

type Step int

const (
	StepDetails Step = iota
	StepDates
	StepOutcomes
	StepReview
)

func (s Step) String() string {
	switch s {
	case StepDetails:
		return "details"
	case StepDates:
		return "dates"
	case StepOutcomes:
		return "outcomes"
	case StepReview:
		return "review"
	default:
		return "unknown"
	}
}

// State carries everything collected so far. The zero value is not usable;
// start from New.
type State struct {
	Step Step

	Name             string
	Description      string
	Discipline       string
	RoleTitle        string
	Company          string
	Responsibilities string

	StartDate time.Time
	EndDate   *time.Time
	Status    model.ProjectStatus

	Milestones []service.MilestoneInput
	Outcomes   []service.OutcomeInput
}

func New() State {
	return State{Step: StepDetails}
}

// Input is a payload bound to a single step. Applying it on any other step
// fails.
type Input interface {
	step() Step
}

type DetailsInput struct {
	Name             string
	Description      string
	Discipline       string
	RoleTitle        string
	Company          string
	Responsibilities string
}

func (DetailsInput) step() Step { return StepDetails }

type DatesInput struct {
	StartDate  time.Time
	EndDate    *time.Time
	Status     model.ProjectStatus
	Milestones []service.MilestoneInput
}

func (DatesInput) step() Step { return StepDates }

type OutcomesInput struct {
	Outcomes []service.OutcomeInput
}

func (OutcomesInput) step() Step { return StepOutcomes }

// Apply merges a step payload into the state. The state stays on its current
// step; advancing is a separate Next call so validation happens exactly once.
func Apply(s State, in Input) (State, error) {
	if in.step() != s.Step {
		return s, fmt.Errorf("%w: %s input on %s step", domain.ErrInvalidInput, in.step(), s.Step)
	}

	switch v := in.(type) {
	case DetailsInput:
		s.Name = v.Name
		s.Description = v.Description
		s.Discipline = v.Discipline
		s.RoleTitle = v.RoleTitle
		s.Company = v.Company
		s.Responsibilities = v.Responsibilities
	case DatesInput:
		s.StartDate = v.StartDate
		s.EndDate = cloneTime(v.EndDate)
		s.Status = v.Status
		s.Milestones = cloneMilestones(v.Milestones)
	case OutcomesInput:
		s.Outcomes = cloneOutcomes(v.Outcomes)
	default:
		return s, fmt.Errorf("%w: unsupported input %T", domain.ErrInvalidInput, in)
	}
	return s, nil
}

// Next validates the current step's accumulated data and advances. Review is
// terminal.
func Next(s State) (State, error) {
	if err := validateStep(s); err != nil {
		return s, err
	}

	switch s.Step {
	case StepDetails:
		s.Step = StepDates
	case StepDates:
		s.Step = StepOutcomes
	case StepOutcomes:
		s.Step = StepReview
	case StepReview:
		return s, fmt.Errorf("%w: already on the final step", domain.ErrInvalidInput)
	}
	return s, nil
}

// Prev steps back without validation; collected data is kept.
func Prev(s State) (State, error) {
	if s.Step == StepDetails {
		return s, fmt.Errorf("%w: already on the first step", domain.ErrInvalidInput)
	}
	s.Step--
	return s, nil
}

// Complete yields the project payload. Only the Review step completes, so a
// caller cannot skip validation by finishing early.
func Complete(s State) (service.ProjectInput, error) {
	if s.Step != StepReview {
		return service.ProjectInput{}, fmt.Errorf("%w: completion requires the review step, currently on %s", domain.ErrInvalidInput, s.Step)
	}

	return service.ProjectInput{
		Name:             s.Name,
		Description:      s.Description,
		StartDate:        s.StartDate,
		EndDate:          cloneTime(s.EndDate),
		Status:           s.Status,
		Discipline:       s.Discipline,
		RoleTitle:        s.RoleTitle,
		Company:          s.Company,
		Responsibilities: s.Responsibilities,
		Milestones:       cloneMilestones(s.Milestones),
		Outcomes:         cloneOutcomes(s.Outcomes),
	}, nil
}

func validateStep(s State) error {
	switch s.Step {
	case StepDetails:
		if s.Name == "" {
			return fmt.Errorf("%w: project name is required", domain.ErrInvalidInput)
		}
	case StepDates:
		if s.StartDate.IsZero() {
			return fmt.Errorf("%w: start date is required", domain.ErrInvalidInput)
		}
		if s.EndDate != nil && s.EndDate.Before(s.StartDate) {
			return fmt.Errorf("%w: end date precedes start date", domain.ErrInvalidInput)
		}
	case StepOutcomes:
		seen := make(map[int]bool, len(s.Outcomes))
		for _, o := range s.Outcomes {
			if o.Number < 1 || o.Number > model.OutcomeCount {
				return fmt.Errorf("%w: outcome %d out of range", domain.ErrInvalidOutcome, o.Number)
			}
			if seen[o.Number] {
				return fmt.Errorf("%w: outcome %d", domain.ErrDuplicateOutcome, o.Number)
			}
			seen[o.Number] = true
		}
	}
	return nil
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

func cloneMilestones(in []service.MilestoneInput) []service.MilestoneInput {
	if in == nil {
		return nil
	}
	out := make([]service.MilestoneInput, len(in))
	copy(out, in)
	return out
}

func cloneOutcomes(in []service.OutcomeInput) []service.OutcomeInput {
	if in == nil {
		return nil
	}
	out := make([]service.OutcomeInput, len(in))
	copy(out, in)
	return out
}
