package recipe

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Version is a frozen copy of a recipe tagged with a positive version number.
// It has no mutators; edit the live Recipe and snapshot it again instead.
type Version struct {
	number int
	recipe *Recipe
}

// NewVersion builds a recipe from the given fields and freezes it as version
// versionNumber.
func NewVersion(
	creator string,
	title string,
	tasteProfiles []TasteProfile,
	visibility Visibility,
	description string,
	timeLastUpdated time.Time,
	versionNumber int,
	opts ...Option,
) (*Version, error) {
	r, err := NewRecipe(creator, title, tasteProfiles, visibility, description, timeLastUpdated, opts...)
	if err != nil {
		return nil, err
	}
	return newVersion(r, versionNumber)
}

// Snapshot freezes the current state of r as version versionNumber. Later
// changes to r do not affect the returned version.
func (r *Recipe) Snapshot(versionNumber int) (*Version, error) {
	return newVersion(r.clone(), versionNumber)
}

func newVersion(r *Recipe, number int) (*Version, error) {
	if number <= 0 {
		return nil, fmt.Errorf("%w: version number must be positive, got %d", ErrInvalidArgument, number)
	}
	return &Version{number: number, recipe: r}, nil
}

func (v *Version) VersionNumber() int { return v.number }

// RecipeID returns the ID of the recipe this version was taken from.
func (v *Version) RecipeID() uuid.UUID { return v.recipe.id }

func (v *Version) Creator() string { return v.recipe.creator }

func (v *Version) Title() string { return v.recipe.title }

func (v *Version) TasteProfiles() []TasteProfile { return v.recipe.TasteProfiles() }

func (v *Version) Visibility() Visibility { return v.recipe.visibility }

func (v *Version) IsPublic() bool { return v.recipe.IsPublic() }

func (v *Version) TimeCreated() time.Time { return v.recipe.timeCreated }

func (v *Version) Description() (string, error) { return v.recipe.Description() }

func (v *Version) TimeLastUpdated() time.Time { return v.recipe.timeLastUpdated }

func (v *Version) Ingredients() []Ingredient { return v.recipe.Ingredients() }

func (v *Version) Steps() []Step { return v.recipe.Steps() }

func (v *Version) CalculateBAC(c Consumer) (float64, error) { return v.recipe.CalculateBAC(c) }

func (v *Version) AlcoholGrams() float64 { return v.recipe.AlcoholGrams() }

// Recipe returns an editable copy of the snapshot.
func (v *Version) Recipe() *Recipe { return v.recipe.clone() }
