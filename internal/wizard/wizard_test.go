package wizard_test

import (
	"testing"
	"time"

	"github.com/emateapp/emate/internal/domain"
	"github.com/emateapp/emate/internal/service"
	"github.com/emateapp/emate/internal/wizard"
	"github.com/stretchr/testify/assert"
)

func respPtr(s string) *string { return &s }

func TestWizardHappyPath(t *testing.T) {
	start := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC)

	s := wizard.New()
	assert.Equal(t, wizard.StepDetails, s.Step)

	s, err := wizard.Apply(s, wizard.DetailsInput{
		Name:       "Water treatment works",
		Discipline: "Civil",
		RoleTitle:  "Engineer in Training",
		Company:    "Acme Consulting",
	})
	assert.NoError(t, err)

	s, err = wizard.Next(s)
	assert.NoError(t, err)
	assert.Equal(t, wizard.StepDates, s.Step)

	s, err = wizard.Apply(s, wizard.DatesInput{
		StartDate: start,
		EndDate:   &end,
		Milestones: []service.MilestoneInput{
			{Title: "Detailed design", Date: start.AddDate(0, 2, 0)},
		},
	})
	assert.NoError(t, err)

	s, err = wizard.Next(s)
	assert.NoError(t, err)
	assert.Equal(t, wizard.StepOutcomes, s.Step)

	s, err = wizard.Apply(s, wizard.OutcomesInput{
		Outcomes: []service.OutcomeInput{
			{Number: 1, Response: respPtr("Defined the problem scope.")},
			{Number: 5, Response: respPtr("Ran the risk assessment.")},
		},
	})
	assert.NoError(t, err)

	s, err = wizard.Next(s)
	assert.NoError(t, err)
	assert.Equal(t, wizard.StepReview, s.Step)

	input, err := wizard.Complete(s)
	assert.NoError(t, err)
	assert.Equal(t, "Water treatment works", input.Name)
	assert.Equal(t, start, input.StartDate)
	assert.Len(t, input.Milestones, 1)
	assert.Len(t, input.Outcomes, 2)
}

func TestWizardStepGates(t *testing.T) {
	t.Run("input bound to another step is rejected", func(t *testing.T) {
		s := wizard.New()
		_, err := wizard.Apply(s, wizard.OutcomesInput{})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("details step requires a name", func(t *testing.T) {
		s := wizard.New()
		_, err := wizard.Next(s)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("dates step requires a start date", func(t *testing.T) {
		s := advanceTo(t, wizard.StepDates)
		_, err := wizard.Next(s)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("end date cannot precede start date", func(t *testing.T) {
		s := advanceTo(t, wizard.StepDates)
		start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, -3, 0)

		s, err := wizard.Apply(s, wizard.DatesInput{StartDate: start, EndDate: &end})
		assert.NoError(t, err)

		_, err = wizard.Next(s)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("outcome numbers are validated", func(t *testing.T) {
		s := advanceTo(t, wizard.StepOutcomes)

		s, err := wizard.Apply(s, wizard.OutcomesInput{
			Outcomes: []service.OutcomeInput{{Number: 12}},
		})
		assert.NoError(t, err, "apply accepts, the gate rejects")

		_, err = wizard.Next(s)
		assert.ErrorIs(t, err, domain.ErrInvalidOutcome)
	})

	t.Run("duplicate outcomes are rejected", func(t *testing.T) {
		s := advanceTo(t, wizard.StepOutcomes)

		s, err := wizard.Apply(s, wizard.OutcomesInput{
			Outcomes: []service.OutcomeInput{{Number: 2}, {Number: 2}},
		})
		assert.NoError(t, err)

		_, err = wizard.Next(s)
		assert.ErrorIs(t, err, domain.ErrDuplicateOutcome)
	})
}

func TestWizardCompleteOnlyFromReview(t *testing.T) {
	s := wizard.New()

	_, err := wizard.Complete(s)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	s = advanceTo(t, wizard.StepOutcomes)
	_, err = wizard.Complete(s)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestWizardPrevKeepsData(t *testing.T) {
	s := advanceTo(t, wizard.StepDates)

	s, err := wizard.Prev(s)
	assert.NoError(t, err)
	assert.Equal(t, wizard.StepDetails, s.Step)
	assert.Equal(t, "Water treatment works", s.Name)

	_, err = wizard.Prev(s)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cannot step back from the first step")
}

func TestWizardReducersArePure(t *testing.T) {
	s := wizard.New()

	applied, err := wizard.Apply(s, wizard.DetailsInput{Name: "Changed"})
	assert.NoError(t, err)
	assert.Empty(t, s.Name, "input state is untouched")
	assert.Equal(t, "Changed", applied.Name)
}

// advanceTo walks a valid state forward until the requested step.
func advanceTo(t *testing.T, target wizard.Step) wizard.State {
	t.Helper()

	s := wizard.New()
	s, err := wizard.Apply(s, wizard.DetailsInput{Name: "Water treatment works"})
	assert.NoError(t, err)

	for s.Step < target {
		if s.Step == wizard.StepDates {
			s, err = wizard.Apply(s, wizard.DatesInput{
				StartDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			})
			assert.NoError(t, err)
		}
		s, err = wizard.Next(s)
		assert.NoError(t, err)
	}
	return s
}
