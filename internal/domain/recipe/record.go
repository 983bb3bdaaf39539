package recipe

import (
	"time"

	"github.com/google/uuid"
)

type (
	// Record is the flat, exported form of a recipe used by storage.
	Record struct {
		ID              uuid.UUID          `json:"id"`
		Creator         string             `json:"creator"`
		Title           string             `json:"title"`
		TasteProfiles   []TasteProfile     `json:"taste_profiles"`
		Visibility      Visibility         `json:"visibility"`
		TimeCreated     time.Time          `json:"time_created"`
		Description     string             `json:"description,omitempty"`
		TimeLastUpdated time.Time          `json:"time_last_updated"`
		Ingredients     []IngredientRecord `json:"ingredients"`
		Steps           []StepRecord       `json:"steps"`
	}

	IngredientRecord struct {
		Name       string  `json:"name"`
		VolumeInMl float64 `json:"volume_in_ml"`
		Abv        float64 `json:"abv"`
	}

	StepRecord struct {
		StepNumber  int    `json:"step_number"`
		Description string `json:"description"`
	}

	VersionRecord struct {
		VersionNumber int    `json:"version_number"`
		Recipe        Record `json:"recipe"`
	}
)

// Record exports the recipe's state.
func (r *Recipe) Record() Record {
	rec := Record{
		ID:              r.id,
		Creator:         r.creator,
		Title:           r.title,
		TasteProfiles:   r.TasteProfiles(),
		Visibility:      r.visibility,
		TimeCreated:     r.timeCreated,
		Description:     r.description,
		TimeLastUpdated: r.timeLastUpdated,
		Ingredients:     make([]IngredientRecord, 0, len(r.ingredients)),
		Steps:           make([]StepRecord, 0, len(r.steps)),
	}
	for _, i := range r.ingredients {
		rec.Ingredients = append(rec.Ingredients, IngredientRecord{Name: i.name, VolumeInMl: i.volumeInMl, Abv: i.abv})
	}
	for _, s := range r.steps {
		rec.Steps = append(rec.Steps, StepRecord{StepNumber: s.stepNumber, Description: s.description})
	}
	return rec
}

// FromRecord rebuilds a recipe, keeping its ID and creation time. Fields are
// validated as in NewRecipe; stored collections are loaded as initial
// collections.
func FromRecord(rec Record) (*Recipe, error) {
	ingredients := make([]Ingredient, 0, len(rec.Ingredients))
	for _, ir := range rec.Ingredients {
		i, err := newIngredient(rec.ID, ir.Name, ir.VolumeInMl, ir.Abv)
		if err != nil {
			return nil, err
		}
		ingredients = append(ingredients, i)
	}
	steps := make([]Step, 0, len(rec.Steps))
	for _, sr := range rec.Steps {
		s, err := newStep(rec.ID, sr.StepNumber, sr.Description)
		if err != nil {
			return nil, err
		}
		steps = append(steps, s)
	}
	return build(
		rec.ID,
		rec.Creator,
		rec.Title,
		rec.TasteProfiles,
		rec.Visibility,
		rec.TimeCreated,
		rec.Description,
		rec.TimeLastUpdated,
		WithIngredients(ingredients...),
		WithSteps(steps...),
	)
}

func (v *Version) Record() VersionRecord {
	return VersionRecord{VersionNumber: v.number, Recipe: v.recipe.Record()}
}

func VersionFromRecord(rec VersionRecord) (*Version, error) {
	r, err := FromRecord(rec.Recipe)
	if err != nil {
		return nil, err
	}
	return newVersion(r, rec.VersionNumber)
}
