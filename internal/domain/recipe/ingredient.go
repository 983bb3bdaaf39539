package recipe

import (
	"fmt"
	"math"

	"github.com/google/uuid"
)

// Ingredient is a named liquid measure with its alcohol content. It keeps the
// ID of the recipe it was created for; it does not own or reach into that
// recipe.
type Ingredient struct {
	recipeID   uuid.UUID
	name       string
	volumeInMl float64
	abv        float64
}

// NewIngredient creates an ingredient for the given recipe.
func NewIngredient(r *Recipe, name string, volumeInMl, abv float64) (Ingredient, error) {
	if r == nil {
		return Ingredient{}, fmt.Errorf("%w: no recipe provided", ErrInvalidArgument)
	}
	return newIngredient(r.id, name, volumeInMl, abv)
}

func newIngredient(recipeID uuid.UUID, name string, volumeInMl, abv float64) (Ingredient, error) {
	var i Ingredient
	i.recipeID = recipeID
	if err := i.SetName(name); err != nil {
		return Ingredient{}, err
	}
	if err := i.SetVolumeInMl(volumeInMl); err != nil {
		return Ingredient{}, err
	}
	if err := i.SetAbv(abv); err != nil {
		return Ingredient{}, err
	}
	return i, nil
}

// RecipeID returns the ID of the recipe the ingredient was created for.
func (i Ingredient) RecipeID() uuid.UUID { return i.recipeID }

func (i Ingredient) Name() string { return i.name }

func (i Ingredient) VolumeInMl() float64 { return i.volumeInMl }

// Abv returns the alcohol by volume as a percentage in [0, 100].
func (i Ingredient) Abv() float64 { return i.abv }

// SetName renames the ingredient. Uniqueness within a recipe is only checked
// when the ingredient is handed to the recipe.
func (i *Ingredient) SetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: no name provided", ErrInvalidArgument)
	}
	i.name = name
	return nil
}

func (i *Ingredient) SetVolumeInMl(volumeInMl float64) error {
	if !(volumeInMl >= 0) || math.IsInf(volumeInMl, 1) {
		return fmt.Errorf("%w: volume in milliliters must be a finite non-negative number, got %v", ErrInvalidArgument, volumeInMl)
	}
	i.volumeInMl = volumeInMl
	return nil
}

func (i *Ingredient) SetAbv(abv float64) error {
	if !(abv >= 0 && abv <= 100) {
		return fmt.Errorf("%w: alcohol by volume must be between 0 and 100, got %v", ErrInvalidArgument, abv)
	}
	i.abv = abv
	return nil
}

// alcoholGrams is the mass of ethanol the ingredient carries.
func (i Ingredient) alcoholGrams() float64 {
	return i.volumeInMl * (i.abv / 100) * EthanolDensity
}

func (i Ingredient) validate() error {
	_, err := newIngredient(i.recipeID, i.name, i.volumeInMl, i.abv)
	return err
}
