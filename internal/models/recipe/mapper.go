package recipeModel

import (
	"encoding/json"
	"fmt"

	"github.com/gmaschi/go-recipes-social/internal/domain/recipe"
	db "github.com/gmaschi/go-recipes-social/internal/services/datastore/postgresql/recipes/sqlc"
)

// FromAggregate rebuilds the domain recipe from its stored rows
func FromAggregate(agg db.RecipeAggregate) (*recipe.Recipe, error) {
	rec := recipe.Record{
		ID:              agg.Recipe.ID,
		Creator:         agg.Recipe.Creator,
		Title:           agg.Recipe.Title,
		TasteProfiles:   make([]recipe.TasteProfile, 0, len(agg.Recipe.TasteProfiles)),
		Visibility:      recipe.Visibility(agg.Recipe.Visibility),
		TimeCreated:     agg.Recipe.CreatedAt,
		Description:     agg.Recipe.Description,
		TimeLastUpdated: agg.Recipe.UpdatedAt,
		Ingredients:     make([]recipe.IngredientRecord, 0, len(agg.Ingredients)),
		Steps:           make([]recipe.StepRecord, 0, len(agg.Steps)),
	}
	for _, t := range agg.Recipe.TasteProfiles {
		rec.TasteProfiles = append(rec.TasteProfiles, recipe.TasteProfile(t))
	}
	for _, i := range agg.Ingredients {
		rec.Ingredients = append(rec.Ingredients, recipe.IngredientRecord{Name: i.Name, VolumeInMl: i.VolumeInMl, Abv: i.Abv})
	}
	for _, s := range agg.Steps {
		rec.Steps = append(rec.Steps, recipe.StepRecord{StepNumber: int(s.StepNumber), Description: s.Description})
	}

	r, err := recipe.FromRecord(rec)
	if err != nil {
		return nil, fmt.Errorf("stored recipe %s is corrupt: %w", agg.Recipe.ID, err)
	}
	return r, nil
}

// CreateTxParams maps a new domain recipe to the rows that store it
func CreateTxParams(r *recipe.Recipe) db.CreateRecipeTxParams {
	rec := r.Record()
	return db.CreateRecipeTxParams{
		Recipe: db.CreateRecipeParams{
			ID:            rec.ID,
			Creator:       rec.Creator,
			Title:         rec.Title,
			Description:   rec.Description,
			TasteProfiles: tasteProfileStrings(rec.TasteProfiles),
			Visibility:    string(rec.Visibility),
			CreatedAt:     rec.TimeCreated,
			UpdatedAt:     rec.TimeLastUpdated,
		},
		Ingredients: IngredientParams(r.Ingredients()),
		Steps:       StepParams(r.Steps()),
	}
}

// UpdateParams maps the scalar fields of a domain recipe to an update
func UpdateParams(r *recipe.Recipe) db.UpdateRecipeParams {
	rec := r.Record()
	return db.UpdateRecipeParams{
		ID:            rec.ID,
		Title:         rec.Title,
		Description:   rec.Description,
		TasteProfiles: tasteProfileStrings(rec.TasteProfiles),
		Visibility:    string(rec.Visibility),
		UpdatedAt:     rec.TimeLastUpdated,
	}
}

// UpdateTxParams maps a whole domain recipe, collections included
func UpdateTxParams(r *recipe.Recipe) db.UpdateRecipeTxParams {
	return db.UpdateRecipeTxParams{
		Recipe:      UpdateParams(r),
		Ingredients: IngredientParams(r.Ingredients()),
		Steps:       StepParams(r.Steps()),
	}
}

func IngredientParams(ingredients []recipe.Ingredient) []db.CreateIngredientParams {
	params := make([]db.CreateIngredientParams, 0, len(ingredients))
	for _, i := range ingredients {
		params = append(params, db.CreateIngredientParams{
			RecipeID:   i.RecipeID(),
			Name:       i.Name(),
			VolumeInMl: i.VolumeInMl(),
			Abv:        i.Abv(),
		})
	}
	return params
}

func StepParams(steps []recipe.Step) []db.CreateStepParams {
	params := make([]db.CreateStepParams, 0, len(steps))
	for _, s := range steps {
		params = append(params, db.CreateStepParams{
			RecipeID:    s.RecipeID(),
			StepNumber:  int32(s.StepNumber()),
			Description: s.Description(),
		})
	}
	return params
}

// VersionParams serializes a version snapshot for storage
func VersionParams(v *recipe.Version) (db.CreateRecipeVersionParams, error) {
	snapshot, err := json.Marshal(v.Record().Recipe)
	if err != nil {
		return db.CreateRecipeVersionParams{}, err
	}
	return db.CreateRecipeVersionParams{
		RecipeID:      v.RecipeID(),
		VersionNumber: int32(v.VersionNumber()),
		Snapshot:      snapshot,
	}, nil
}

// FromVersionRow rebuilds a version from its stored snapshot
func FromVersionRow(row db.RecipeVersion) (*recipe.Version, error) {
	var rec recipe.Record
	if err := json.Unmarshal(row.Snapshot, &rec); err != nil {
		return nil, fmt.Errorf("stored version %d of recipe %s is corrupt: %w", row.VersionNumber, row.RecipeID, err)
	}
	return recipe.VersionFromRecord(recipe.VersionRecord{
		VersionNumber: int(row.VersionNumber),
		Recipe:        rec,
	})
}

// ParseTasteProfiles converts request values to domain taste profiles
func ParseTasteProfiles(values []string) ([]recipe.TasteProfile, error) {
	profiles := make([]recipe.TasteProfile, 0, len(values))
	for _, v := range values {
		t, err := recipe.ParseTasteProfile(v)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, t)
	}
	return profiles, nil
}

// Ingredients builds domain ingredients for r from request values
func Ingredients(r *recipe.Recipe, reqs []IngredientRequest) ([]recipe.Ingredient, error) {
	ingredients := make([]recipe.Ingredient, 0, len(reqs))
	for _, req := range reqs {
		i, err := recipe.NewIngredient(r, req.Name, req.VolumeInMl, req.Abv)
		if err != nil {
			return nil, err
		}
		ingredients = append(ingredients, i)
	}
	return ingredients, nil
}

// Steps builds domain steps for r from request values
func Steps(r *recipe.Recipe, reqs []StepRequest) ([]recipe.Step, error) {
	steps := make([]recipe.Step, 0, len(reqs))
	for _, req := range reqs {
		s, err := recipe.NewStep(r, req.StepNumber, req.Description)
		if err != nil {
			return nil, err
		}
		steps = append(steps, s)
	}
	return steps, nil
}

func NewRecipeResponse(r *recipe.Recipe) RecipeResponse {
	rec := r.Record()
	res := RecipeResponse{
		ID:            rec.ID,
		Creator:       rec.Creator,
		Title:         rec.Title,
		Description:   rec.Description,
		TasteProfiles: tasteProfileStrings(rec.TasteProfiles),
		Visibility:    string(rec.Visibility),
		IsPublic:      r.IsPublic(),
		AlcoholGrams:  r.AlcoholGrams(),
		CreatedAt:     rec.TimeCreated,
		UpdatedAt:     rec.TimeLastUpdated,
		Ingredients:   make([]IngredientResponse, 0, len(rec.Ingredients)),
		Steps:         make([]StepResponse, 0, len(rec.Steps)),
	}
	for _, i := range rec.Ingredients {
		res.Ingredients = append(res.Ingredients, IngredientResponse(i))
	}
	for _, s := range rec.Steps {
		res.Steps = append(res.Steps, StepResponse(s))
	}
	return res
}

func NewVersionResponse(v *recipe.Version) VersionResponse {
	return VersionResponse{
		VersionNumber: v.VersionNumber(),
		Recipe:        NewRecipeResponse(v.Recipe()),
	}
}

func NewListResponse(row db.Recipe) ListResponse {
	return ListResponse{
		ID:            row.ID,
		Creator:       row.Creator,
		Title:         row.Title,
		Description:   row.Description,
		TasteProfiles: row.TasteProfiles,
		Visibility:    row.Visibility,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}

func tasteProfileStrings(profiles []recipe.TasteProfile) []string {
	out := make([]string, 0, len(profiles))
	for _, t := range profiles {
		out = append(out, string(t))
	}
	return out
}
