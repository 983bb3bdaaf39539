package recipe

import (
	"fmt"
	"math"

	"github.com/google/uuid"
)

// MaxStepNumber is the largest step number storage can hold.
const MaxStepNumber = math.MaxInt32

// Step is one numbered instruction of a recipe. The step number is fixed at
// construction.
type Step struct {
	recipeID    uuid.UUID
	stepNumber  int
	description string
}

// NewStep creates a step for the given recipe.
func NewStep(r *Recipe, stepNumber int, description string) (Step, error) {
	if r == nil {
		return Step{}, fmt.Errorf("%w: no recipe provided", ErrInvalidArgument)
	}
	return newStep(r.id, stepNumber, description)
}

func newStep(recipeID uuid.UUID, stepNumber int, description string) (Step, error) {
	if stepNumber <= 0 || stepNumber > MaxStepNumber {
		return Step{}, fmt.Errorf("%w: step number must be between 1 and %d, got %d", ErrInvalidArgument, MaxStepNumber, stepNumber)
	}
	s := Step{recipeID: recipeID, stepNumber: stepNumber}
	if err := s.SetDescription(description); err != nil {
		return Step{}, err
	}
	return s, nil
}

func (s Step) RecipeID() uuid.UUID { return s.recipeID }

func (s Step) StepNumber() int { return s.stepNumber }

func (s Step) Description() string { return s.description }

func (s *Step) SetDescription(description string) error {
	if description == "" {
		return fmt.Errorf("%w: no description provided", ErrInvalidArgument)
	}
	s.description = description
	return nil
}

func (s Step) validate() error {
	_, err := newStep(s.recipeID, s.stepNumber, s.description)
	return err
}
