package recipeModel

import (
	"time"

	"github.com/google/uuid"
)

type (
	IngredientResponse struct {
		Name       string  `json:"name"`
		VolumeInMl float64 `json:"volume_in_ml"`
		Abv        float64 `json:"abv"`
	}

	StepResponse struct {
		StepNumber  int    `json:"step_number"`
		Description string `json:"description"`
	}

	RecipeResponse struct {
		ID            uuid.UUID            `json:"id"`
		Creator       string               `json:"creator"`
		Title         string               `json:"title"`
		Description   string               `json:"description,omitempty"`
		TasteProfiles []string             `json:"taste_profiles"`
		Visibility    string               `json:"visibility"`
		IsPublic      bool                 `json:"is_public"`
		AlcoholGrams  float64              `json:"alcohol_grams"`
		CreatedAt     time.Time            `json:"created_at"`
		UpdatedAt     time.Time            `json:"updated_at"`
		Ingredients   []IngredientResponse `json:"ingredients"`
		Steps         []StepResponse       `json:"steps"`
	}

	// ListResponse is the summary shown when listing recipes
	ListResponse struct {
		ID            uuid.UUID `json:"id"`
		Creator       string    `json:"creator"`
		Title         string    `json:"title"`
		Description   string    `json:"description,omitempty"`
		TasteProfiles []string  `json:"taste_profiles"`
		Visibility    string    `json:"visibility"`
		CreatedAt     time.Time `json:"created_at"`
		UpdatedAt     time.Time `json:"updated_at"`
	}

	VersionResponse struct {
		VersionNumber int            `json:"version_number"`
		Recipe        RecipeResponse `json:"recipe"`
	}

	BACResponse struct {
		RecipeID      uuid.UUID `json:"recipe_id"`
		VersionNumber int       `json:"version_number,omitempty"`
		Username      string    `json:"username"`
		AlcoholGrams  float64   `json:"alcohol_grams"`
		BAC           float64   `json:"bac"`
	}
)
