// Package recipe holds the recipe aggregate: a recipe owns its ingredients
// and steps, guards the rules that span those collections and estimates the
// blood alcohol content a consumer reaches after drinking it.
package recipe

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MinIngredients is the smallest ingredient list a recipe accepts on
// replacement.
const MinIngredients = 2

// Recipe is the aggregate root. Its collections are private copies: callers
// read copies and write through the setters, which validate the whole new
// collection before swapping it in.
type Recipe struct {
	id              uuid.UUID
	creator         string
	title           string
	tasteProfiles   []TasteProfile
	visibility      Visibility
	timeCreated     time.Time
	description     string
	timeLastUpdated time.Time
	ingredients     []Ingredient
	steps           []Step
}

// Option configures the initial collections of a new recipe.
type Option func(*Recipe) error

// WithIngredients sets the initial ingredients. Each entry must be valid on
// its own; the count and name rules of SetIngredients are not applied.
func WithIngredients(ingredients ...Ingredient) Option {
	return func(r *Recipe) error {
		for _, i := range ingredients {
			if err := i.validate(); err != nil {
				return err
			}
		}
		r.ingredients = append([]Ingredient(nil), ingredients...)
		return nil
	}
}

// WithSteps sets the initial steps without the step number uniqueness check.
func WithSteps(steps ...Step) Option {
	return func(r *Recipe) error {
		for _, s := range steps {
			if err := s.validate(); err != nil {
				return err
			}
		}
		r.steps = append([]Step(nil), steps...)
		return nil
	}
}

// NewRecipe creates a recipe owned by creator, the creating user's username.
// The creation time is stamped here and cannot be supplied by the caller. An
// empty description leaves the description unset.
func NewRecipe(
	creator string,
	title string,
	tasteProfiles []TasteProfile,
	visibility Visibility,
	description string,
	timeLastUpdated time.Time,
	opts ...Option,
) (*Recipe, error) {
	return build(uuid.New(), creator, title, tasteProfiles, visibility, time.Now().UTC(), description, timeLastUpdated, opts...)
}

func build(
	id uuid.UUID,
	creator string,
	title string,
	tasteProfiles []TasteProfile,
	visibility Visibility,
	timeCreated time.Time,
	description string,
	timeLastUpdated time.Time,
	opts ...Option,
) (*Recipe, error) {
	if creator == "" {
		return nil, fmt.Errorf("%w: no creator provided", ErrInvalidArgument)
	}
	r := &Recipe{
		id:              id,
		creator:         creator,
		timeCreated:     timeCreated,
		description:     description,
		timeLastUpdated: timeLastUpdated,
		ingredients:     []Ingredient{},
		steps:           []Step{},
	}
	if err := r.SetTitle(title); err != nil {
		return nil, err
	}
	if err := r.SetTasteProfiles(tasteProfiles); err != nil {
		return nil, err
	}
	if err := r.SetVisibility(visibility); err != nil {
		return nil, err
	}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Recipe) ID() uuid.UUID { return r.id }

// Creator returns the username of the user who created the recipe.
func (r *Recipe) Creator() string { return r.creator }

func (r *Recipe) Title() string { return r.title }

func (r *Recipe) SetTitle(title string) error {
	if title == "" {
		return fmt.Errorf("%w: no title provided", ErrInvalidArgument)
	}
	r.title = title
	return nil
}

func (r *Recipe) TasteProfiles() []TasteProfile {
	return append([]TasteProfile{}, r.tasteProfiles...)
}

func (r *Recipe) SetTasteProfiles(tasteProfiles []TasteProfile) error {
	for _, t := range tasteProfiles {
		if !t.Valid() {
			return fmt.Errorf("%w: unknown taste profile %q", ErrInvalidArgument, t)
		}
	}
	r.tasteProfiles = append([]TasteProfile{}, tasteProfiles...)
	return nil
}

func (r *Recipe) Visibility() Visibility { return r.visibility }

// IsPublic reports whether anyone may see the recipe.
func (r *Recipe) IsPublic() bool { return r.visibility == Public }

func (r *Recipe) SetVisibility(visibility Visibility) error {
	if !visibility.Valid() {
		return fmt.Errorf("%w: unknown visibility %q", ErrInvalidArgument, visibility)
	}
	r.visibility = visibility
	return nil
}

func (r *Recipe) TimeCreated() time.Time { return r.timeCreated }

// Description returns ErrNotSet when the recipe has no description.
func (r *Recipe) Description() (string, error) {
	if r.description == "" {
		return "", fmt.Errorf("description is %w", ErrNotSet)
	}
	return r.description, nil
}

// SetDescription replaces the description. The empty string clears it.
func (r *Recipe) SetDescription(description string) {
	r.description = description
}

func (r *Recipe) TimeLastUpdated() time.Time { return r.timeLastUpdated }

func (r *Recipe) SetTimeLastUpdated(t time.Time) {
	r.timeLastUpdated = t
}

func (r *Recipe) Ingredients() []Ingredient {
	return append([]Ingredient{}, r.ingredients...)
}

// SetIngredients replaces the ingredient list. The list must hold at least
// MinIngredients valid entries with distinct names; otherwise the current
// list is kept.
func (r *Recipe) SetIngredients(ingredients []Ingredient) error {
	if len(ingredients) < MinIngredients {
		return fmt.Errorf("%w: got %d", ErrTooFewIngredients, len(ingredients))
	}
	if err := checkIngredients(ingredients); err != nil {
		return err
	}
	r.ingredients = append([]Ingredient{}, ingredients...)
	return nil
}

// RenameIngredient renames the ingredient at index, keeping names unique.
func (r *Recipe) RenameIngredient(index int, name string) error {
	if index < 0 || index >= len(r.ingredients) {
		return fmt.Errorf("%w: ingredient index %d out of range", ErrInvalidArgument, index)
	}
	renamed := r.ingredients[index]
	if err := renamed.SetName(name); err != nil {
		return err
	}
	return r.ReplaceIngredient(index, renamed)
}

// ReplaceIngredient swaps the ingredient at index for ingredient, keeping
// names unique.
func (r *Recipe) ReplaceIngredient(index int, ingredient Ingredient) error {
	if index < 0 || index >= len(r.ingredients) {
		return fmt.Errorf("%w: ingredient index %d out of range", ErrInvalidArgument, index)
	}
	next := r.Ingredients()
	next[index] = ingredient
	if err := checkIngredients(next); err != nil {
		return err
	}
	r.ingredients = next
	return nil
}

func checkIngredients(ingredients []Ingredient) error {
	seen := make(map[string]struct{}, len(ingredients))
	for _, i := range ingredients {
		if err := i.validate(); err != nil {
			return err
		}
		if _, ok := seen[i.name]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateName, i.name)
		}
		seen[i.name] = struct{}{}
	}
	return nil
}

func (r *Recipe) Steps() []Step {
	return append([]Step{}, r.steps...)
}

// SetSteps replaces the step list. Step numbers must be distinct; otherwise
// the current list is kept.
func (r *Recipe) SetSteps(steps []Step) error {
	seen := make(map[int]struct{}, len(steps))
	for _, s := range steps {
		if err := s.validate(); err != nil {
			return err
		}
		if _, ok := seen[s.stepNumber]; ok {
			return fmt.Errorf("%w: %d", ErrDuplicateStepNumber, s.stepNumber)
		}
		seen[s.stepNumber] = struct{}{}
	}
	r.steps = append([]Step{}, steps...)
	return nil
}

// RewriteStep changes the description of the step numbered stepNumber.
func (r *Recipe) RewriteStep(stepNumber int, description string) error {
	for idx := range r.steps {
		if r.steps[idx].stepNumber != stepNumber {
			continue
		}
		return r.steps[idx].SetDescription(description)
	}
	return fmt.Errorf("%w: no step numbered %d", ErrInvalidArgument, stepNumber)
}

func (r *Recipe) clone() *Recipe {
	c := *r
	c.tasteProfiles = r.TasteProfiles()
	c.ingredients = r.Ingredients()
	c.steps = r.Steps()
	return &c
}
